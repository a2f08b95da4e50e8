package doctors

import (
	"context"
	"testing"

	"vet-clinic-records/internal/platform/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testRepo struct {
	byID map[string]Doctor
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Doctor{}}
}

func (r *testRepo) Create(_ context.Context, d Doctor) error {
	r.byID[d.ID] = d
	return nil
}

func (r *testRepo) GetByID(_ context.Context, id string) (Doctor, error) {
	d, ok := r.byID[id]
	if !ok {
		return Doctor{}, ErrNotFound
	}
	return d, nil
}

func (r *testRepo) List(_ context.Context) ([]Doctor, error) {
	out := make([]Doctor, 0, len(r.byID))
	for _, d := range r.byID {
		out = append(out, d)
	}
	return out, nil
}

func (r *testRepo) Update(_ context.Context, d Doctor) error {
	if _, ok := r.byID[d.ID]; !ok {
		return ErrNotFound
	}
	r.byID[d.ID] = d
	return nil
}

func TestStatus_Toggled(t *testing.T) {
	assert.Equal(t, StatusInactive, StatusActive.Toggled())
	assert.Equal(t, StatusActive, StatusInactive.Toggled())
	assert.Equal(t, StatusActive, Status("").Toggled())
	assert.Equal(t, StatusActive, Status("VACACIONES").Toggled())
}

func TestService_Create_DefaultsActive(t *testing.T) {
	svc := NewService(newTestRepo())

	d, err := svc.Create(context.Background(), CreateInput{Name: "Dra. Soto", Specialty: "Cirugía"})
	require.NoError(t, err)
	assert.Equal(t, StatusActive, d.Status)

	d, err = svc.Create(context.Background(), CreateInput{Name: "Dr. Pérez", Specialty: "Dermatología", Status: "inactivo"})
	require.NoError(t, err)
	assert.Equal(t, StatusInactive, d.Status)
}

func TestService_Create_Validation(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	_, err := svc.Create(context.Background(), CreateInput{Specialty: "Cirugía"})
	require.ErrorIs(t, err, ErrMissingName)

	_, err = svc.Create(context.Background(), CreateInput{Name: "Dra. Soto"})
	require.ErrorIs(t, err, apperr.ErrValidation)

	_, err = svc.Create(context.Background(), CreateInput{Name: "Dra. Soto", Specialty: "Cirugía", Status: "X"})
	require.ErrorIs(t, err, ErrInvalidStatus)

	assert.Empty(t, repo.byID)
}

func TestService_ToggleStatus_TwiceIsIdentity(t *testing.T) {
	for _, start := range []Status{StatusActive, StatusInactive} {
		repo := newTestRepo()
		repo.byID["m1"] = Doctor{ID: "m1", Name: "Dra. Soto", Specialty: "Cirugía", Status: start}
		svc := NewService(repo)

		once, err := svc.ToggleStatus(context.Background(), "m1")
		require.NoError(t, err)
		assert.NotEqual(t, start, once.Status)

		twice, err := svc.ToggleStatus(context.Background(), "m1")
		require.NoError(t, err)
		assert.Equal(t, start, twice.Status)
		assert.Equal(t, start, repo.byID["m1"].Status)
	}
}

func TestService_ToggleStatus_NotFound(t *testing.T) {
	_, err := NewService(newTestRepo()).ToggleStatus(context.Background(), "missing")
	require.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestService_Update_KeepsAbsentFields(t *testing.T) {
	repo := newTestRepo()
	repo.byID["m1"] = Doctor{ID: "m1", Name: "Dra. Soto", Specialty: "Cirugía", Status: StatusActive}
	svc := NewService(repo)

	spec := "Traumatología"
	d, err := svc.Update(context.Background(), "m1", UpdateInput{Specialty: &spec})
	require.NoError(t, err)
	assert.Equal(t, "Dra. Soto", d.Name)
	assert.Equal(t, "Traumatología", d.Specialty)
	assert.Equal(t, StatusActive, d.Status)
}
