package memory

import (
	"context"

	"vet-clinic-records/internal/domain/catalog"
)

// DefaultMedications es el catálogo con el que arranca el store en memoria.
var DefaultMedications = []catalog.Medication{
	{ID: "med-amoxicilina-250", Name: "Amoxicilina 250 mg", Cost: 4500},
	{ID: "med-cefalexina-500", Name: "Cefalexina 500 mg", Cost: 6200},
	{ID: "med-meloxicam-1", Name: "Meloxicam 1 mg", Cost: 3800},
	{ID: "med-tramadol-50", Name: "Tramadol 50 mg", Cost: 5100},
	{ID: "med-metronidazol-250", Name: "Metronidazol 250 mg", Cost: 2900},
	{ID: "med-prednisolona-20", Name: "Prednisolona 20 mg", Cost: 3300},
	{ID: "med-ivermectina-10", Name: "Ivermectina 10 mg", Cost: 2000},
	{ID: "med-furosemida-40", Name: "Furosemida 40 mg", Cost: 2700},
}

// catalogRepo es de sólo lectura: items no cambia después de construirse,
// así que no necesita lock.
type catalogRepo struct {
	items []catalog.Medication
}

// NewCatalogRepo sin argumentos usa DefaultMedications.
func NewCatalogRepo(items ...catalog.Medication) catalog.Repository {
	if len(items) == 0 {
		items = DefaultMedications
	}
	return &catalogRepo{items: append([]catalog.Medication(nil), items...)}
}

func (r *catalogRepo) List(ctx context.Context) ([]catalog.Medication, error) {
	return append([]catalog.Medication(nil), r.items...), nil
}
