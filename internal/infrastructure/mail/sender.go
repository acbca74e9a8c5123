// Package mail implementa el puerto MailSender sobre un relay SMTP mediante
// gomail. La sesión usa STARTTLS cuando el relay lo anuncia y se cierra en
// cada envío.
package mail

import (
	"context"
	"fmt"

	gomail "gopkg.in/gomail.v2"

	"github.com/malkitsweets/invoicing-api/internal/application/invoicing"
	"github.com/malkitsweets/invoicing-api/pkg/logger"
)

var _ invoicing.MailSender = (*Sender)(nil)

// Sender envía correos con adjunto a través del relay configurado. Cada
// mensaje lleva copia oculta al remitente como registro de salida.
type Sender struct {
	dialer *gomail.Dialer
	from   string
	log    *logger.Logger
}

// New construye el sender con las credenciales del relay.
func New(host string, port int, username, password, from string, log *logger.Logger) *Sender {
	return &Sender{
		dialer: gomail.NewDialer(host, port, username, password),
		from:   from,
		log:    log,
	}
}

// Send arma el mensaje de texto plano con el PDF adjunto y lo transmite. El
// contexto no corta la sesión SMTP; existe por consistencia con el puerto.
func (s *Sender) Send(ctx context.Context, recipient, subject, body, attachmentPath string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", recipient)
	m.SetHeader("Bcc", s.from)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)
	if attachmentPath != "" {
		m.Attach(attachmentPath)
	}

	if err := s.dialer.DialAndSend(m); err != nil {
		s.log.Error().Err(err).Str("recipient", recipient).Msg("fallo el envío de correo")
		return fmt.Errorf("mail: enviar a %s: %w", recipient, err)
	}
	s.log.Info().Str("recipient", recipient).Str("subject", subject).Msg("correo enviado")
	return nil
}
