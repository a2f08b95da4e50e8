package tutors

import (
	"context"
	"errors"
	"testing"

	"vet-clinic-records/internal/platform/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

type testRepo struct {
	byID    map[string]Tutor
	creates int
	listErr error
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Tutor{}}
}

func (r *testRepo) Create(_ context.Context, t Tutor) error {
	if _, ok := r.byID[t.ID]; ok {
		return errors.New("repo: already exists")
	}
	r.creates++
	r.byID[t.ID] = t
	return nil
}

func (r *testRepo) GetByID(_ context.Context, id string) (Tutor, error) {
	t, ok := r.byID[id]
	if !ok {
		return Tutor{}, ErrNotFound
	}
	return t, nil
}

func (r *testRepo) List(_ context.Context) ([]Tutor, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	out := make([]Tutor, 0, len(r.byID))
	for _, t := range r.byID {
		out = append(out, t)
	}
	return out, nil
}

func (r *testRepo) Update(_ context.Context, t Tutor) error {
	if _, ok := r.byID[t.ID]; !ok {
		return ErrNotFound
	}
	r.byID[t.ID] = t
	return nil
}

// -------------------------
// Tests
// -------------------------

func TestService_Create_UniqueIDsMatchGetByID(t *testing.T) {
	svc := NewService(newTestRepo())
	ctx := context.Background()

	seen := map[string]struct{}{}
	for i := 0; i < 20; i++ {
		created, err := svc.Create(ctx, CreateInput{Name: "Ana", Email: "ana@mail.cl", Phone: "+56 9 1234"})
		require.NoError(t, err)

		_, dup := seen[created.ID]
		require.False(t, dup, "duplicated id %s", created.ID)
		seen[created.ID] = struct{}{}

		got, err := svc.GetByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, created, got)
	}
}

func TestService_Create_MissingFields(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	for _, in := range []CreateInput{
		{Email: "a@b.c", Phone: "1"},
		{Name: "Ana", Phone: "1"},
		{Name: "Ana", Email: "a@b.c", Phone: "   "},
	} {
		_, err := svc.Create(context.Background(), in)
		require.ErrorIs(t, err, apperr.ErrValidation)
	}
	assert.Zero(t, repo.creates, "validation must happen before any write")
}

func TestService_List_SortedByName(t *testing.T) {
	repo := newTestRepo()
	repo.byID["1"] = Tutor{ID: "1", Name: "Carla"}
	repo.byID["2"] = Tutor{ID: "2", Name: "Alberto"}
	repo.byID["3"] = Tutor{ID: "3", Name: "Beatriz"}

	items, err := NewService(repo).List(context.Background())
	require.NoError(t, err)

	names := []string{items[0].Name, items[1].Name, items[2].Name}
	assert.Equal(t, []string{"Alberto", "Beatriz", "Carla"}, names)
}

func TestService_List_PropagatesStoreError(t *testing.T) {
	repo := newTestRepo()
	repo.listErr = errors.New("scan failed")

	_, err := NewService(repo).List(context.Background())
	require.Error(t, err)
	assert.NotErrorIs(t, err, apperr.ErrNotFound)
}

func TestService_Update_PartialAndNotFound(t *testing.T) {
	repo := newTestRepo()
	repo.byID["t1"] = Tutor{ID: "t1", Name: "Ana", Email: "ana@mail.cl", Phone: "1", Address: "Calle 1"}
	svc := NewService(repo)

	email := "nuevo@mail.cl"
	updated, err := svc.Update(context.Background(), "t1", UpdateInput{Email: &email})
	require.NoError(t, err)
	assert.Equal(t, "nuevo@mail.cl", updated.Email)
	assert.Equal(t, "Ana", updated.Name)
	assert.Equal(t, "Calle 1", repo.byID["t1"].Address)

	empty := " "
	_, err = svc.Update(context.Background(), "t1", UpdateInput{Name: &empty})
	require.ErrorIs(t, err, apperr.ErrValidation)

	_, err = svc.Update(context.Background(), "missing", UpdateInput{Email: &email})
	require.ErrorIs(t, err, ErrNotFound)
}
