package memory

import (
	"context"
	"math"
	"testing"
	"time"

	"vet-clinic-records/internal/domain/records"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordRepo_ScanAllPages(t *testing.T) {
	repo := NewRecordRepo()
	ctx := context.Background()
	for i := 0; i < 5; i++ {
		require.NoError(t, repo.Create(ctx, records.ClinicalRecord{ID: string(rune('a' + i))}))
	}

	all, err := records.ScanAll(ctx, repo, 2)
	require.NoError(t, err)
	require.Len(t, all, 5)
	assert.Equal(t, "a", all[0].ID)
	assert.Equal(t, "e", all[4].ID)

	_, _, err = repo.ScanPage(ctx, "nope", 2)
	assert.Error(t, err)
}

func TestRecordRepo_ScanPage_HugeLimitAfterCursor(t *testing.T) {
	repo := NewRecordRepo()
	ctx := context.Background()
	for _, id := range []string{"a", "b", "c"} {
		require.NoError(t, repo.Create(ctx, records.ClinicalRecord{ID: id, PatientID: "p1"}))
	}

	page, next, err := repo.ScanPage(ctx, "1", math.MaxInt)
	require.NoError(t, err)
	assert.Len(t, page, 2)
	assert.Empty(t, next)

	page, next, err = repo.ScanPage(ctx, "0", 2)
	require.NoError(t, err)
	assert.Len(t, page, 2)
	assert.Equal(t, "2", next)
}

func TestRecordRepo_ListByPatientNewestFirstAndIsolated(t *testing.T) {
	repo := NewRecordRepo()
	ctx := context.Background()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Create(ctx, records.ClinicalRecord{ID: "old", PatientID: "p1", Time: base,
		Procedures: []records.Procedure{{Name: "X", Doctors: []records.AssignedDoctor{{ID: "m1"}}}}}))
	require.NoError(t, repo.Create(ctx, records.ClinicalRecord{ID: "new", PatientID: "p1", Time: base.Add(time.Hour)}))
	require.NoError(t, repo.Create(ctx, records.ClinicalRecord{ID: "other", PatientID: "p2", Time: base}))

	got, err := repo.ListByPatient(ctx, "p1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "new", got[0].ID)

	got[1].Procedures[0].Doctors[0].Name = "mutado"
	again, err := repo.ListByPatient(ctx, "p1")
	require.NoError(t, err)
	assert.Empty(t, again[1].Procedures[0].Doctors[0].Name)
}

func TestRecordRepo_DuplicateID(t *testing.T) {
	repo := NewRecordRepo()
	ctx := context.Background()
	require.NoError(t, repo.Create(ctx, records.ClinicalRecord{ID: "x"}))
	assert.Error(t, repo.Create(ctx, records.ClinicalRecord{ID: "x"}))
}
