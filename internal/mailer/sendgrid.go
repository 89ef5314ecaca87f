package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Message is one outbound plain-text email.
type Message struct {
	ToEmail string
	ToName  string
	Subject string
	Body    string
}

// Mailer sends notification emails.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// SendGrid delivers mail through the SendGrid v3 REST API.
type SendGrid struct {
	apiKey    string
	baseURL   string
	fromEmail string
	fromName  string
	http      httpDoer
}

// NewSendGrid builds a SendGrid mailer. The API key is checked at send time
// so the server can still boot without outbound mail configured.
func NewSendGrid(apiKey, fromEmail, fromName string) *SendGrid {
	return &SendGrid{
		apiKey:    strings.TrimSpace(apiKey),
		baseURL:   "https://api.sendgrid.com",
		fromEmail: strings.TrimSpace(fromEmail),
		fromName:  strings.TrimSpace(fromName),
		http:      &http.Client{Timeout: 30 * time.Second},
	}
}

// SetHTTPClient swaps the HTTP client, mainly for tests.
func (m *SendGrid) SetHTTPClient(client httpDoer) {
	if client != nil {
		m.http = client
	}
}

// SetBaseURL overrides the API endpoint, mainly for tests.
func (m *SendGrid) SetBaseURL(baseURL string) {
	trimmed := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if trimmed != "" {
		m.baseURL = trimmed
	}
}

type emailAddress struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

type personalization struct {
	To []emailAddress `json:"to"`
}

type mailContent struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

type sendRequest struct {
	Personalizations []personalization `json:"personalizations"`
	From             emailAddress      `json:"from"`
	Subject          string            `json:"subject"`
	Content          []mailContent     `json:"content"`
}

// Send posts one message to the v3 mail/send endpoint.
func (m *SendGrid) Send(ctx context.Context, msg Message) error {
	if m.apiKey == "" {
		return errors.New("sendgrid api key is not configured")
	}
	if strings.TrimSpace(msg.ToEmail) == "" {
		return errors.New("recipient email is required")
	}

	payload := sendRequest{
		Personalizations: []personalization{{
			To: []emailAddress{{Email: msg.ToEmail, Name: msg.ToName}},
		}},
		From:    emailAddress{Email: m.fromEmail, Name: m.fromName},
		Subject: msg.Subject,
		Content: []mailContent{{Type: "text/plain", Value: msg.Body}},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode mail payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.baseURL+"/v3/mail/send", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build mail request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+m.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.http.Do(req)
	if err != nil {
		return fmt.Errorf("send mail request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return fmt.Errorf("sendgrid responded %d: %s", resp.StatusCode, strings.TrimSpace(string(detail)))
	}

	return nil
}
