package doctors

import (
	"context"
	"strings"

	"vet-clinic-records/internal/platform/apperr"

	"github.com/google/uuid"
)

var (
	ErrNotFound      = apperr.NotFound("Médico no encontrado")
	ErrMissingName   = apperr.Validation("Falta nombre del medico")
	ErrMissingSpec   = apperr.Validation("Falta especialidad del medico")
	ErrInvalidStatus = apperr.Validation("Estado inválido, use ACTIVO o INACTIVO")
	ErrInvalidInput  = apperr.Validation("Datos de médico inválidos")
)

type Service struct {
	repo  Repository
	newID func() string
}

func NewService(repo Repository) *Service {
	return &Service{
		repo:  repo,
		newID: uuid.NewString,
	}
}

type CreateInput struct {
	Name      string
	Specialty string
	// Status vacío => ACTIVO.
	Status string
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Doctor, error) {
	d := Doctor{
		Name:      strings.TrimSpace(in.Name),
		Specialty: strings.TrimSpace(in.Specialty),
		Status:    StatusActive,
	}
	if d.Name == "" {
		return Doctor{}, ErrMissingName
	}
	if d.Specialty == "" {
		return Doctor{}, ErrMissingSpec
	}
	if raw := strings.TrimSpace(in.Status); raw != "" {
		st, err := parseStatus(raw)
		if err != nil {
			return Doctor{}, err
		}
		d.Status = st
	}

	d.ID = s.newID()
	if err := s.repo.Create(ctx, d); err != nil {
		return Doctor{}, err
	}
	return d, nil
}

func (s *Service) List(ctx context.Context) ([]Doctor, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetByID(ctx context.Context, id string) (Doctor, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Doctor{}, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

type UpdateInput struct {
	Name      *string
	Specialty *string
	Status    *string
}

func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (Doctor, error) {
	current, err := s.GetByID(ctx, id)
	if err != nil {
		return Doctor{}, err
	}

	if in.Name != nil {
		v := strings.TrimSpace(*in.Name)
		if v == "" {
			return Doctor{}, ErrInvalidInput
		}
		current.Name = v
	}
	if in.Specialty != nil {
		v := strings.TrimSpace(*in.Specialty)
		if v == "" {
			return Doctor{}, ErrInvalidInput
		}
		current.Specialty = v
	}
	if in.Status != nil {
		st, err := parseStatus(*in.Status)
		if err != nil {
			return Doctor{}, err
		}
		current.Status = st
	}

	if err := s.repo.Update(ctx, current); err != nil {
		return Doctor{}, err
	}
	return current, nil
}

// ToggleStatus lee el estado actual y guarda el alternado.
// Lectura y escritura no son atómicas.
func (s *Service) ToggleStatus(ctx context.Context, id string) (Doctor, error) {
	current, err := s.GetByID(ctx, id)
	if err != nil {
		return Doctor{}, err
	}
	current.Status = current.Status.Toggled()
	if err := s.repo.Update(ctx, current); err != nil {
		return Doctor{}, err
	}
	return current, nil
}

func parseStatus(raw string) (Status, error) {
	st := Status(strings.ToUpper(strings.TrimSpace(raw)))
	if !st.Valid() {
		return "", ErrInvalidStatus
	}
	return st, nil
}
