// Package googledrive implementa el puerto ArchiveStore sobre la API v3 de
// Google Drive. El archivo es una carpeta con nombre fijo donde se sube una
// copia de cada PDF emitido.
package googledrive

import (
	"context"
	"fmt"
	"io"

	"google.golang.org/api/drive/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"github.com/malkitsweets/invoicing-api/internal/domain/repository"
)

const folderMimeType = "application/vnd.google-apps.folder"

var _ repository.ArchiveStore = (*Archive)(nil)

// Archive adaptador del archivo de objetos sobre Google Drive.
type Archive struct {
	svc *drive.Service
}

// New construye el cliente de Drive con credenciales de cuenta de servicio.
func New(ctx context.Context, credentialsJSON []byte) (*Archive, error) {
	svc, err := drive.NewService(ctx,
		option.WithCredentialsJSON(credentialsJSON),
		option.WithScopes(drive.DriveScope),
	)
	if err != nil {
		return nil, fmt.Errorf("drive: crear cliente: %w", err)
	}
	return &Archive{svc: svc}, nil
}

// EnsureFolder devuelve el id de la carpeta con ese nombre, creándola si no
// existe. Llamadas repetidas con el mismo nombre reutilizan la misma carpeta.
func (a *Archive) EnsureFolder(ctx context.Context, name string) (string, error) {
	query := fmt.Sprintf("mimeType='%s' and name='%s' and trashed=false", folderMimeType, name)
	list, err := a.svc.Files.List().
		Q(query).
		Spaces("drive").
		Fields("files(id, name)").
		Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("drive: buscar carpeta %q: %w", name, err)
	}
	if len(list.Files) > 0 {
		return list.Files[0].Id, nil
	}

	folder, err := a.svc.Files.Create(&drive.File{
		Name:     name,
		MimeType: folderMimeType,
	}).Fields("id").Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("drive: crear carpeta %q: %w", name, err)
	}
	return folder.Id, nil
}

// Upload sube el contenido como archivo nuevo dentro de la carpeta. No
// deduplica por nombre: cada emisión deja su propia copia.
func (a *Archive) Upload(ctx context.Context, folderID, fileName string, content io.Reader, mimeType string) error {
	_, err := a.svc.Files.Create(&drive.File{
		Name:    fileName,
		Parents: []string{folderID},
	}).
		Media(content, googleapi.ContentType(mimeType)).
		Fields("id").
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("drive: subir %q: %w", fileName, err)
	}
	return nil
}
