// Package invoicing orquesta la emisión de facturas: numeración, armado del
// documento, render a PDF, envío por correo, registro en el libro y archivo.
package invoicing

import (
	"context"

	"github.com/malkitsweets/invoicing-api/internal/domain/entity"
)

// DocumentRenderer renderiza el documento armado a bytes de PDF.
type DocumentRenderer interface {
	Render(ctx context.Context, doc entity.InvoiceDocument) ([]byte, error)
}

// MailSender envía el artefacto como adjunto al destinatario, siempre con
// copia oculta al remitente configurado. La sesión SMTP se cierra en todos
// los caminos, con éxito o sin él.
type MailSender interface {
	Send(ctx context.Context, recipient, subject, body, attachmentPath string) error
}
