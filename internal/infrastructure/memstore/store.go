// Package memstore implementa los puertos de almacenamiento en memoria, con
// el mismo contrato que los adaptadores de Google. Es el doble de pruebas de
// la suite y sirve para desarrollo sin credenciales. Cada operación puede
// fallar a demanda inyectando un error en el campo Fail correspondiente.
package memstore

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/malkitsweets/invoicing-api/internal/domain/repository"
)

var _ repository.LedgerStore = (*Store)(nil)

// Store libro tabular en memoria. La fila 1 de cada región es la cabecera,
// igual que en la hoja de cálculo real.
type Store struct {
	mu      sync.Mutex
	regions map[repository.Region][][]string

	FailList   error
	FailAppend error
	FailUpdate error
	FailDelete error
}

// NewStore construye un libro vacío.
func NewStore() *Store {
	return &Store{regions: make(map[repository.Region][][]string)}
}

// Seed reemplaza el contenido completo de la región, cabecera incluida.
func (s *Store) Seed(region repository.Region, rows [][]string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.regions[region] = copyRows(rows)
}

// ListRows devuelve una copia de todas las filas de la región.
func (s *Store) ListRows(_ context.Context, region repository.Region) ([][]string, error) {
	if s.FailList != nil {
		return nil, s.FailList
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyRows(s.regions[region]), nil
}

// AppendRow agrega la fila, inicializando la cabecera si la región está vacía.
func (s *Store) AppendRow(_ context.Context, region repository.Region, values []string) error {
	if s.FailAppend != nil {
		return s.FailAppend
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.regions[region]) == 0 {
		s.regions[region] = append(s.regions[region], region.Headers())
	}
	s.regions[region] = append(s.regions[region], copyRow(values))
	return nil
}

// UpdateRow sobrescribe la fila indicada. La cabecera (fila 1) no se toca.
func (s *Store) UpdateRow(_ context.Context, region repository.Region, rowNumber int, values []string) error {
	if s.FailUpdate != nil {
		return s.FailUpdate
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	rows := s.regions[region]
	if rowNumber < 2 || rowNumber > len(rows) {
		return fmt.Errorf("memstore: fila %d fuera de rango en %s", rowNumber, region)
	}
	rows[rowNumber-1] = copyRow(values)
	return nil
}

// DeleteRow elimina la fila indicada desplazando las siguientes hacia arriba.
func (s *Store) DeleteRow(_ context.Context, region repository.Region, rowNumber int) error {
	if s.FailDelete != nil {
		return s.FailDelete
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	rows := s.regions[region]
	if rowNumber < 2 || rowNumber > len(rows) {
		return fmt.Errorf("memstore: fila %d fuera de rango en %s", rowNumber, region)
	}
	s.regions[region] = append(rows[:rowNumber-1], rows[rowNumber:]...)
	return nil
}

// Rows expone el contenido actual de la región para los asserts de los tests.
func (s *Store) Rows(region repository.Region) [][]string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyRows(s.regions[region])
}

func copyRows(rows [][]string) [][]string {
	out := make([][]string, len(rows))
	for i, r := range rows {
		out[i] = copyRow(r)
	}
	return out
}

func copyRow(row []string) []string {
	out := make([]string, len(row))
	copy(out, row)
	return out
}

// ── Archivo de objetos ────────────────────────────────────────────────────────

var _ repository.ArchiveStore = (*Archive)(nil)

// Upload un archivo subido, registrado para inspección posterior.
type Upload struct {
	FolderID string
	FileName string
	MimeType string
	Content  []byte
}

// Archive archivo de objetos en memoria.
type Archive struct {
	mu      sync.Mutex
	folders map[string]string
	uploads []Upload

	FailEnsure error
	FailUpload error
}

// NewArchive construye un archivo vacío.
func NewArchive() *Archive {
	return &Archive{folders: make(map[string]string)}
}

// EnsureFolder devuelve siempre el mismo id para el mismo nombre.
func (a *Archive) EnsureFolder(_ context.Context, name string) (string, error) {
	if a.FailEnsure != nil {
		return "", a.FailEnsure
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	if id, ok := a.folders[name]; ok {
		return id, nil
	}
	id := fmt.Sprintf("folder-%d", len(a.folders)+1)
	a.folders[name] = id
	return id, nil
}

// Upload registra el archivo subido.
func (a *Archive) Upload(_ context.Context, folderID, fileName string, content io.Reader, mimeType string) error {
	if a.FailUpload != nil {
		return a.FailUpload
	}
	data, err := io.ReadAll(content)
	if err != nil {
		return fmt.Errorf("memstore: leer contenido de %s: %w", fileName, err)
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	a.uploads = append(a.uploads, Upload{
		FolderID: folderID,
		FileName: fileName,
		MimeType: mimeType,
		Content:  data,
	})
	return nil
}

// Uploads devuelve los archivos subidos hasta el momento.
func (a *Archive) Uploads() []Upload {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]Upload, len(a.uploads))
	copy(out, a.uploads)
	return out
}
