package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"
)

type doerStub struct {
	status  int
	lastReq *http.Request
	body    []byte
}

func (d *doerStub) Do(req *http.Request) (*http.Response, error) {
	d.lastReq = req
	d.body, _ = io.ReadAll(req.Body)
	return &http.Response{
		StatusCode: d.status,
		Body:       io.NopCloser(bytes.NewReader([]byte(`{"errors":[{"message":"bad request"}]}`))),
		Header:     make(http.Header),
	}, nil
}

func TestSendGridSendBuildsRequest(t *testing.T) {
	m := NewSendGrid("sg-key", "hola@example.com", "Lucía Herranz")
	doer := &doerStub{status: http.StatusAccepted}
	m.SetHTTPClient(doer)

	err := m.Send(context.Background(), Message{
		ToEmail: "maria@example.com",
		ToName:  "María",
		Subject: "Hemos recibido tu mensaje",
		Body:    "Gracias por escribir.",
	})
	if err != nil {
		t.Fatalf("failed to send: %v", err)
	}

	if doer.lastReq.URL.String() != "https://api.sendgrid.com/v3/mail/send" {
		t.Fatalf("unexpected url: %s", doer.lastReq.URL)
	}
	if got := doer.lastReq.Header.Get("Authorization"); got != "Bearer sg-key" {
		t.Fatalf("unexpected authorization header: %s", got)
	}

	var payload sendRequest
	if err := json.Unmarshal(doer.body, &payload); err != nil {
		t.Fatalf("failed to decode payload: %v", err)
	}
	if len(payload.Personalizations) != 1 || payload.Personalizations[0].To[0].Email != "maria@example.com" {
		t.Fatalf("unexpected recipients: %+v", payload.Personalizations)
	}
	if payload.From.Email != "hola@example.com" || payload.Subject != "Hemos recibido tu mensaje" {
		t.Fatalf("unexpected envelope: %+v", payload)
	}
	if len(payload.Content) != 1 || payload.Content[0].Type != "text/plain" {
		t.Fatalf("unexpected content: %+v", payload.Content)
	}
}

func TestSendGridSendRejectsErrorStatus(t *testing.T) {
	m := NewSendGrid("sg-key", "hola@example.com", "")
	m.SetHTTPClient(&doerStub{status: http.StatusBadRequest})

	err := m.Send(context.Background(), Message{ToEmail: "maria@example.com", Subject: "x", Body: "y"})
	if err == nil {
		t.Fatalf("expected error for 400 response")
	}
	if !strings.Contains(err.Error(), "400") {
		t.Fatalf("expected status in error, got %v", err)
	}
}

func TestSendGridSendRequiresConfiguration(t *testing.T) {
	m := NewSendGrid("", "hola@example.com", "")
	if err := m.Send(context.Background(), Message{ToEmail: "maria@example.com"}); err == nil {
		t.Fatalf("expected error without api key")
	}

	m = NewSendGrid("sg-key", "hola@example.com", "")
	if err := m.Send(context.Background(), Message{}); err == nil {
		t.Fatalf("expected error without recipient")
	}
}
