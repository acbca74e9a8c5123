// Package googlesheets implementa el puerto LedgerStore sobre la API v4 de
// Google Sheets. Cada región del libro es una pestaña de la hoja de cálculo
// y se direcciona por su título en notación A1.
package googlesheets

import (
	"context"
	"fmt"
	"sync"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/malkitsweets/invoicing-api/internal/domain/repository"
)

var _ repository.LedgerStore = (*Store)(nil)

// Store adaptador del libro tabular sobre una hoja de cálculo de Google.
type Store struct {
	svc           *sheets.Service
	spreadsheetID string

	mu       sync.Mutex
	sheetIDs map[string]int64 // título de pestaña -> sheetId, cacheado
}

// New construye el cliente de Sheets con credenciales de cuenta de servicio.
func New(ctx context.Context, credentialsJSON []byte, spreadsheetID string) (*Store, error) {
	svc, err := sheets.NewService(ctx,
		option.WithCredentialsJSON(credentialsJSON),
		option.WithScopes(sheets.SpreadsheetsScope),
	)
	if err != nil {
		return nil, fmt.Errorf("sheets: crear cliente: %w", err)
	}
	return &Store{svc: svc, spreadsheetID: spreadsheetID}, nil
}

// ListRows devuelve todas las filas de la región, cabecera incluida. Las
// celdas llegan ya formateadas por la API, así que cada valor se reduce a su
// representación de texto.
func (s *Store) ListRows(ctx context.Context, region repository.Region) ([][]string, error) {
	resp, err := s.svc.Spreadsheets.Values.Get(s.spreadsheetID, string(region)).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("sheets: leer %s: %w", region, err)
	}
	rows := make([][]string, 0, len(resp.Values))
	for _, raw := range resp.Values {
		row := make([]string, 0, len(raw))
		for _, cell := range raw {
			row = append(row, cellString(cell))
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// AppendRow agrega una fila al final de la región. Si la región está
// completamente vacía escribe primero la fila de cabeceras canónica.
func (s *Store) AppendRow(ctx context.Context, region repository.Region, values []string) error {
	rows, err := s.ListRows(ctx, region)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		if err := s.append(ctx, region, region.Headers()); err != nil {
			return fmt.Errorf("sheets: inicializar cabeceras de %s: %w", region, err)
		}
	}
	if err := s.append(ctx, region, values); err != nil {
		return fmt.Errorf("sheets: agregar fila a %s: %w", region, err)
	}
	return nil
}

// UpdateRow sobrescribe la fila indicada empezando en la columna A. La fila 1
// es la cabecera y no se toca.
func (s *Store) UpdateRow(ctx context.Context, region repository.Region, rowNumber int, values []string) error {
	if rowNumber < 2 {
		return fmt.Errorf("sheets: fila %d fuera de rango en %s", rowNumber, region)
	}
	vr := &sheets.ValueRange{Values: [][]interface{}{toAnyRow(values)}}
	_, err := s.svc.Spreadsheets.Values.
		Update(s.spreadsheetID, fmt.Sprintf("%s!A%d", region, rowNumber), vr).
		ValueInputOption("USER_ENTERED").
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("sheets: actualizar fila %d de %s: %w", rowNumber, region, err)
	}
	return nil
}

// DeleteRow elimina físicamente la fila, desplazando hacia arriba las
// siguientes. Requiere el sheetId numérico de la pestaña.
func (s *Store) DeleteRow(ctx context.Context, region repository.Region, rowNumber int) error {
	if rowNumber < 2 {
		return fmt.Errorf("sheets: fila %d fuera de rango en %s", rowNumber, region)
	}
	sheetID, err := s.sheetID(ctx, region)
	if err != nil {
		return err
	}
	req := &sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{{
			DeleteDimension: &sheets.DeleteDimensionRequest{
				Range: &sheets.DimensionRange{
					SheetId:    sheetID,
					Dimension:  "ROWS",
					StartIndex: int64(rowNumber - 1), // los índices de la API son base 0
					EndIndex:   int64(rowNumber),
				},
			},
		}},
	}
	if _, err := s.svc.Spreadsheets.BatchUpdate(s.spreadsheetID, req).Context(ctx).Do(); err != nil {
		return fmt.Errorf("sheets: eliminar fila %d de %s: %w", rowNumber, region, err)
	}
	return nil
}

func (s *Store) append(ctx context.Context, region repository.Region, values []string) error {
	vr := &sheets.ValueRange{Values: [][]interface{}{toAnyRow(values)}}
	_, err := s.svc.Spreadsheets.Values.
		Append(s.spreadsheetID, string(region), vr).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).Do()
	return err
}

// sheetID resuelve el id numérico de la pestaña, con caché bajo mutex porque
// los títulos no cambian durante la vida del proceso.
func (s *Store) sheetID(ctx context.Context, region repository.Region) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if id, ok := s.sheetIDs[string(region)]; ok {
		return id, nil
	}
	meta, err := s.svc.Spreadsheets.Get(s.spreadsheetID).Fields("sheets.properties").Context(ctx).Do()
	if err != nil {
		return 0, fmt.Errorf("sheets: leer metadatos del libro: %w", err)
	}
	if s.sheetIDs == nil {
		s.sheetIDs = make(map[string]int64)
	}
	for _, sh := range meta.Sheets {
		if sh.Properties != nil {
			s.sheetIDs[sh.Properties.Title] = sh.Properties.SheetId
		}
	}
	id, ok := s.sheetIDs[string(region)]
	if !ok {
		return 0, fmt.Errorf("sheets: la pestaña %s no existe en el libro", region)
	}
	return id, nil
}

func toAnyRow(values []string) []interface{} {
	row := make([]interface{}, len(values))
	for i, v := range values {
		row[i] = v
	}
	return row
}

func cellString(v interface{}) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}
