package memory

import (
	"context"
	"errors"
	"strings"
	"sync"

	"vet-clinic-records/internal/domain/tutors"
)

type tutorRepo struct {
	mu   sync.RWMutex
	byID map[string]tutors.Tutor
}

func NewTutorRepo() tutors.Repository {
	return &tutorRepo{
		byID: make(map[string]tutors.Tutor),
	}
}

func (r *tutorRepo) Create(ctx context.Context, t tutors.Tutor) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(t.ID) == "" {
		return errors.New("tutor id required")
	}
	if _, exists := r.byID[t.ID]; exists {
		return errors.New("tutor already exists")
	}
	r.byID[t.ID] = t
	return nil
}

func (r *tutorRepo) GetByID(ctx context.Context, id string) (tutors.Tutor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.byID[id]
	if !ok {
		return tutors.Tutor{}, tutors.ErrNotFound
	}
	return t, nil
}

func (r *tutorRepo) List(ctx context.Context) ([]tutors.Tutor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]tutors.Tutor, 0, len(r.byID))
	for _, t := range r.byID {
		out = append(out, t)
	}
	return out, nil
}

func (r *tutorRepo) Update(ctx context.Context, t tutors.Tutor) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[t.ID]; !exists {
		return tutors.ErrNotFound
	}
	r.byID[t.ID] = t
	return nil
}
