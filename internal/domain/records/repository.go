package records

import (
	"context"
	"fmt"
)

type Repository interface {
	Create(ctx context.Context, rec ClinicalRecord) error

	// ListByPatient devuelve las fichas del paciente, más reciente primero.
	ListByPatient(ctx context.Context, patientID string) ([]ClinicalRecord, error)

	Scanner
}

// Scanner recorre todas las fichas por páginas. cursor "" pide la primera
// página; un next "" indica que no quedan más.
type Scanner interface {
	ScanPage(ctx context.Context, cursor string, limit int) (items []ClinicalRecord, next string, err error)
}

// maxScanPages corta un store que devuelva siempre el mismo cursor.
const maxScanPages = 1_000_000

// ScanAll drena el scan completo en memoria. Cualquier error aborta todo:
// no hay resultados parciales.
func ScanAll(ctx context.Context, s Scanner, pageSize int) ([]ClinicalRecord, error) {
	if pageSize <= 0 {
		pageSize = 500
	}

	var (
		all    []ClinicalRecord
		cursor string
	)
	for page := 0; page < maxScanPages; page++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		items, next, err := s.ScanPage(ctx, cursor, pageSize)
		if err != nil {
			return nil, fmt.Errorf("scan page %d: %w", page, err)
		}
		all = append(all, items...)
		if next == "" {
			return all, nil
		}
		if next == cursor {
			return nil, fmt.Errorf("scan page %d: cursor did not advance", page)
		}
		cursor = next
	}
	return nil, fmt.Errorf("scan exceeded %d pages", maxScanPages)
}
