package catalog

import "context"

// Repository es de solo lectura: la carga del catálogo queda fuera del servicio.
type Repository interface {
	List(ctx context.Context) ([]Medication, error)
}
