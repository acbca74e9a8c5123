package repository

import (
	"context"
	"io"
)

// ArchiveStore almacén de objetos por nombre dentro de una carpeta lógica.
type ArchiveStore interface {
	// EnsureFolder busca la carpeta por nombre y la crea si no existe.
	// Es idempotente; devuelve el identificador de la carpeta.
	EnsureFolder(ctx context.Context, name string) (string, error)
	// Upload sube el contenido como fileName dentro de la carpeta folderID.
	Upload(ctx context.Context, folderID, fileName string, content io.Reader, mimeType string) error
}
