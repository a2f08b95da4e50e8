package memory

import (
	"context"
	"sync"
	"testing"

	"vet-clinic-records/internal/domain/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogRepo_DefaultsAndCopies(t *testing.T) {
	repo := NewCatalogRepo()

	items, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, items, len(DefaultMedications))

	items[0].Cost = -1
	again, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, DefaultMedications[0], again[0])
}

func TestCatalogRepo_ConcurrentReads(t *testing.T) {
	repo := NewCatalogRepo(catalog.Medication{ID: "m1", Name: "Meloxicam 1 mg", Cost: 3800})

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			items, err := repo.List(context.Background())
			assert.NoError(t, err)
			assert.Len(t, items, 1)
		}()
	}
	wg.Wait()
}
