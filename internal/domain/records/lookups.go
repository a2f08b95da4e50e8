package records

import (
	"context"

	"vet-clinic-records/internal/domain/doctors"
	"vet-clinic-records/internal/domain/patients"
	"vet-clinic-records/internal/domain/tutors"
)

// Lo que fichas necesita de los otros módulos. Los *Service de cada módulo
// los implementan.

type PatientLookup interface {
	GetByID(ctx context.Context, id string) (patients.Patient, error)
}

type TutorLookup interface {
	GetByID(ctx context.Context, id string) (tutors.Tutor, error)
}

type DoctorLookup interface {
	GetByID(ctx context.Context, id string) (doctors.Doctor, error)
}
