package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sopranosite/internal/mailer"
	"golang.org/x/sync/errgroup"
)

// ErrContactInvalidInput marks a submission missing a required field. It is
// returned before any email dispatch is attempted.
var ErrContactInvalidInput = errors.New("invalid contact input")

// ContactService validates contact-form submissions and dispatches the two
// notification emails.
type ContactService struct {
	mail       mailer.Mailer
	adminEmail string
}

// ContactInput mirrors the contact form fields. Nombre, Email and Mensaje are
// required; the rest are optional.
type ContactInput struct {
	Nombre     string
	Email      string
	Telefono   string
	TipoEvento string
	Mensaje    string
}

// NewContactService creates a ContactService instance.
func NewContactService(mail mailer.Mailer, adminEmail string) *ContactService {
	return &ContactService{mail: mail, adminEmail: strings.TrimSpace(adminEmail)}
}

// Submit sends the visitor confirmation and the admin alert in parallel.
// Either failure surfaces as one generic error; a mail already accepted by
// the provider is not recalled.
func (s *ContactService) Submit(ctx context.Context, input ContactInput) error {
	input.Nombre = strings.TrimSpace(input.Nombre)
	input.Email = strings.TrimSpace(input.Email)
	input.Mensaje = strings.TrimSpace(input.Mensaje)
	if input.Nombre == "" || input.Email == "" || input.Mensaje == "" {
		return ErrContactInvalidInput
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return s.mail.Send(ctx, s.confirmationMessage(input))
	})
	g.Go(func() error {
		return s.mail.Send(ctx, s.adminMessage(input))
	})

	if err := g.Wait(); err != nil {
		return fmt.Errorf("send contact emails: %w", err)
	}
	return nil
}

func (s *ContactService) confirmationMessage(input ContactInput) mailer.Message {
	preview := input.Mensaje
	if len([]rune(preview)) > 100 {
		preview = string([]rune(preview)[:100]) + "..."
	}

	return mailer.Message{
		ToEmail: input.Email,
		ToName:  input.Nombre,
		Subject: "Hemos recibido tu mensaje",
		Body: fmt.Sprintf(
			"Hola %s,\n\nGracias por tu mensaje. Te responderemos lo antes posible.\n\nTu mensaje:\n%s\n",
			input.Nombre, preview,
		),
	}
}

func (s *ContactService) adminMessage(input ContactInput) mailer.Message {
	telefono := input.Telefono
	if strings.TrimSpace(telefono) == "" {
		telefono = "No proporcionado"
	}
	tipoEvento := input.TipoEvento
	if strings.TrimSpace(tipoEvento) == "" {
		tipoEvento = "No especificado"
	}

	return mailer.Message{
		ToEmail: s.adminEmail,
		Subject: fmt.Sprintf("Nuevo mensaje de contacto de %s", input.Nombre),
		Body: fmt.Sprintf(
			"Nombre: %s\nEmail: %s\nTeléfono: %s\nTipo de evento: %s\n\nMensaje:\n%s\n",
			input.Nombre, input.Email, telefono, tipoEvento, input.Mensaje,
		),
	}
}
