package memory

import (
	"context"
	"errors"
	"strings"
	"sync"

	"vet-clinic-records/internal/domain/doctors"
)

type doctorRepo struct {
	mu   sync.RWMutex
	byID map[string]doctors.Doctor
}

func NewDoctorRepo() doctors.Repository {
	return &doctorRepo{
		byID: make(map[string]doctors.Doctor),
	}
}

func (r *doctorRepo) Create(ctx context.Context, d doctors.Doctor) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(d.ID) == "" {
		return errors.New("doctor id required")
	}
	if _, exists := r.byID[d.ID]; exists {
		return errors.New("doctor already exists")
	}
	r.byID[d.ID] = d
	return nil
}

func (r *doctorRepo) GetByID(ctx context.Context, id string) (doctors.Doctor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	d, ok := r.byID[id]
	if !ok {
		return doctors.Doctor{}, doctors.ErrNotFound
	}
	return d, nil
}

func (r *doctorRepo) List(ctx context.Context) ([]doctors.Doctor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]doctors.Doctor, 0, len(r.byID))
	for _, d := range r.byID {
		out = append(out, d)
	}
	return out, nil
}

func (r *doctorRepo) Update(ctx context.Context, d doctors.Doctor) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[d.ID]; !exists {
		return doctors.ErrNotFound
	}
	r.byID[d.ID] = d
	return nil
}
