package records

import (
	"context"
	"errors"
	"fmt"

	"vet-clinic-records/internal/platform/apperr"
)

// DoctorResolver completa nombre y especialidad de las asignaciones que
// vienen sólo con id. Hace un lookup por id distinto por llamada.
type DoctorResolver struct {
	doctors DoctorLookup
}

func NewDoctorResolver(doctors DoctorLookup) *DoctorResolver {
	return &DoctorResolver{doctors: doctors}
}

// Resolve modifica recs en el lugar. Un médico inexistente deja la
// asignación sin nombre; cualquier otro error aborta.
func (r *DoctorResolver) Resolve(ctx context.Context, recs []ClinicalRecord) error {
	if r == nil || r.doctors == nil {
		return nil
	}

	type entry struct {
		name, specialty string
		found           bool
	}
	cache := map[string]entry{}

	for i := range recs {
		for j := range recs[i].Procedures {
			docs := recs[i].Procedures[j].Doctors
			for k := range docs {
				d := &docs[k]
				if d.Name != "" || d.ID == "" {
					continue
				}
				e, ok := cache[d.ID]
				if !ok {
					doc, err := r.doctors.GetByID(ctx, d.ID)
					switch {
					case err == nil:
						e = entry{name: doc.Name, specialty: doc.Specialty, found: true}
					case errors.Is(err, apperr.ErrNotFound):
						e = entry{}
					default:
						return fmt.Errorf("resolve doctor %s: %w", d.ID, err)
					}
					cache[d.ID] = e
				}
				if e.found {
					d.Name = e.name
					if d.Specialty == "" {
						d.Specialty = e.specialty
					}
				}
			}
		}
	}
	return nil
}
