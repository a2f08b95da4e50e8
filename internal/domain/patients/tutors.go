package patients

import (
	"context"

	"vet-clinic-records/internal/domain/tutors"
)

// TutorLookup es lo único que pacientes necesita de tutores.
// *tutors.Service lo implementa.
type TutorLookup interface {
	GetByID(ctx context.Context, id string) (tutors.Tutor, error)
}
