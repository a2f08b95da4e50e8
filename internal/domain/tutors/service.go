package tutors

import (
	"context"
	"sort"
	"strings"

	"vet-clinic-records/internal/platform/apperr"

	"github.com/google/uuid"
)

var (
	ErrNotFound      = apperr.NotFound("Tutor no encontrado")
	ErrMissingFields = apperr.Validation("Faltan campos requeridos: nombre, email, telefono")
	ErrInvalidInput  = apperr.Validation("Datos de tutor inválidos")
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
	Name    string
	Email   string
	Phone   string
	Address string
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Tutor, error) {
	t := Tutor{
		Name:    strings.TrimSpace(in.Name),
		Email:   strings.TrimSpace(in.Email),
		Phone:   strings.TrimSpace(in.Phone),
		Address: strings.TrimSpace(in.Address),
	}
	if t.Name == "" || t.Email == "" || t.Phone == "" {
		return Tutor{}, ErrMissingFields
	}

	t.ID = s.newID()
	if err := s.repo.Create(ctx, t); err != nil {
		return Tutor{}, err
	}
	return t, nil
}

// List devuelve todos los tutores ordenados por nombre.
func (s *Service) List(ctx context.Context) ([]Tutor, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Name < items[j].Name
	})
	return items, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Tutor, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Tutor{}, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

// UpdateInput: nil = no tocar.
type UpdateInput struct {
	Name    *string
	Email   *string
	Phone   *string
	Address *string
}

func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (Tutor, error) {
	current, err := s.GetByID(ctx, id)
	if err != nil {
		return Tutor{}, err
	}

	for _, f := range []struct {
		src *string
		dst *string
	}{
		{in.Name, &current.Name},
		{in.Email, &current.Email},
		{in.Phone, &current.Phone},
	} {
		if f.src == nil {
			continue
		}
		v := strings.TrimSpace(*f.src)
		if v == "" {
			return Tutor{}, ErrInvalidInput
		}
		*f.dst = v
	}
	if in.Address != nil {
		current.Address = strings.TrimSpace(*in.Address)
	}

	if err := s.repo.Update(ctx, current); err != nil {
		return Tutor{}, err
	}
	return current, nil
}
