package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testRepo struct {
	items []Medication
	err   error
}

func (r testRepo) List(context.Context) ([]Medication, error) {
	if r.err != nil {
		return nil, r.err
	}
	return append([]Medication(nil), r.items...), nil
}

func TestService_CostIndex(t *testing.T) {
	svc := NewService(testRepo{items: []Medication{
		{ID: "1", Name: " Amoxicilina 250 mg ", Cost: 1200},
		{ID: "2", Name: "Meloxicam 1 mg", Cost: 850.5},
		{ID: "3", Name: "", Cost: 99},
	}})

	idx, err := svc.CostIndex(context.Background())
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{
		"Amoxicilina 250 mg": 1200,
		"Meloxicam 1 mg":     850.5,
	}, idx)
}

func TestService_List_SortedByName(t *testing.T) {
	svc := NewService(testRepo{items: []Medication{{Name: "Tramadol"}, {Name: "Amoxicilina"}}})

	items, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Amoxicilina", items[0].Name)
}

func TestService_CostIndex_Error(t *testing.T) {
	_, err := NewService(testRepo{err: errors.New("boom")}).CostIndex(context.Background())
	require.Error(t, err)
}
