package patients

import (
	"context"
	"strings"

	"vet-clinic-records/internal/platform/apperr"

	"github.com/google/uuid"
)

var (
	ErrNotFound     = apperr.NotFound("Paciente no encontrado")
	ErrInvalidInput = apperr.Validation("Datos de paciente inválidos")
)

type Service struct {
	repo   Repository
	tutors TutorLookup
	newID  func() string
}

func NewService(repo Repository, tutors TutorLookup) *Service {
	return &Service{
		repo:   repo,
		tutors: tutors,
		newID:  uuid.NewString,
	}
}

type CreateInput struct {
	TutorID string
	Name    string
	Species string
	Breed   string
	Sex     string
}

// Create valida campos, verifica que el tutor exista y recién ahí escribe.
// La verificación y la escritura no son atómicas.
func (s *Service) Create(ctx context.Context, in CreateInput) (Patient, error) {
	p := Patient{
		TutorID: strings.TrimSpace(in.TutorID),
		Name:    strings.TrimSpace(in.Name),
		Species: strings.TrimSpace(in.Species),
		Breed:   strings.TrimSpace(in.Breed),
		Sex:     strings.TrimSpace(in.Sex),
	}

	for _, req := range []struct {
		value string
		msg   string
	}{
		{p.TutorID, "Falta tutor del paciente"},
		{p.Name, "Falta nombre del paciente"},
		{p.Species, "Falta especie del paciente"},
		{p.Breed, "Falta raza del paciente"},
		{p.Sex, "Falta sexo del paciente"},
	} {
		if req.value == "" {
			return Patient{}, apperr.Validation(req.msg)
		}
	}

	if _, err := s.tutors.GetByID(ctx, p.TutorID); err != nil {
		return Patient{}, err
	}

	p.ID = s.newID()
	if err := s.repo.Create(ctx, p); err != nil {
		return Patient{}, err
	}
	return p, nil
}

func (s *Service) List(ctx context.Context) ([]Patient, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetByID(ctx context.Context, id string) (Patient, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Patient{}, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

// ListByTutor verifica que el tutor exista y devuelve sus pacientes.
func (s *Service) ListByTutor(ctx context.Context, tutorID string) ([]Patient, error) {
	tutorID = strings.TrimSpace(tutorID)
	if _, err := s.tutors.GetByID(ctx, tutorID); err != nil {
		return nil, err
	}
	return s.repo.ListByTutor(ctx, tutorID)
}

// UpdateInput: nil = no tocar.
type UpdateInput struct {
	TutorID *string
	Name    *string
	Species *string
	Breed   *string
	Sex     *string
}

func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (Patient, error) {
	current, err := s.GetByID(ctx, id)
	if err != nil {
		return Patient{}, err
	}

	for _, f := range []struct {
		src *string
		dst *string
	}{
		{in.Name, &current.Name},
		{in.Species, &current.Species},
		{in.Breed, &current.Breed},
		{in.Sex, &current.Sex},
	} {
		if f.src == nil {
			continue
		}
		v := strings.TrimSpace(*f.src)
		if v == "" {
			return Patient{}, ErrInvalidInput
		}
		*f.dst = v
	}

	if in.TutorID != nil {
		tutorID := strings.TrimSpace(*in.TutorID)
		if tutorID == "" {
			return Patient{}, ErrInvalidInput
		}
		if tutorID != current.TutorID {
			if _, err := s.tutors.GetByID(ctx, tutorID); err != nil {
				return Patient{}, err
			}
			current.TutorID = tutorID
		}
	}

	if err := s.repo.Update(ctx, current); err != nil {
		return Patient{}, err
	}
	return current, nil
}
