package memory

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"sync"

	"vet-clinic-records/internal/domain/records"
)

// recordRepo guarda las fichas en orden de alta; el cursor del scan es el
// offset dentro de ese orden.
type recordRepo struct {
	mu    sync.RWMutex
	items []records.ClinicalRecord
	ids   map[string]struct{}
}

func NewRecordRepo() records.Repository {
	return &recordRepo{
		ids: make(map[string]struct{}),
	}
}

func (r *recordRepo) Create(ctx context.Context, rec records.ClinicalRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if rec.ID == "" {
		return errors.New("record id required")
	}
	if _, exists := r.ids[rec.ID]; exists {
		return errors.New("record already exists")
	}
	r.ids[rec.ID] = struct{}{}
	r.items = append(r.items, cloneRecord(rec))
	return nil
}

func (r *recordRepo) ListByPatient(ctx context.Context, patientID string) ([]records.ClinicalRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]records.ClinicalRecord, 0)
	for _, rec := range r.items {
		if rec.PatientID == patientID {
			out = append(out, cloneRecord(rec))
		}
	}

	// más reciente primero
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Time.After(out[j].Time)
	})
	return out, nil
}

func (r *recordRepo) ScanPage(ctx context.Context, cursor string, limit int) ([]records.ClinicalRecord, string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	start := 0
	if cursor != "" {
		n, err := strconv.Atoi(cursor)
		if err != nil || n < 0 {
			return nil, "", fmt.Errorf("memory: invalid cursor %q", cursor)
		}
		start = n
	}
	if limit <= 0 {
		limit = len(r.items)
	}
	if start >= len(r.items) {
		return []records.ClinicalRecord{}, "", nil
	}

	// limit se compara contra lo que queda para no desbordar start+limit
	end, next := len(r.items), ""
	if limit < len(r.items)-start {
		end = start + limit
		next = strconv.Itoa(end)
	}

	out := make([]records.ClinicalRecord, 0, end-start)
	for _, rec := range r.items[start:end] {
		out = append(out, cloneRecord(rec))
	}
	return out, next, nil
}

// cloneRecord copia los slices para que el resolver de médicos no modifique
// lo guardado.
func cloneRecord(rec records.ClinicalRecord) records.ClinicalRecord {
	rec.Vaccines = append([]string(nil), rec.Vaccines...)
	procs := make([]records.Procedure, len(rec.Procedures))
	for i, p := range rec.Procedures {
		p.Medications = append([]string(nil), p.Medications...)
		p.Doctors = append([]records.AssignedDoctor(nil), p.Doctors...)
		procs[i] = p
	}
	rec.Procedures = procs
	return rec
}
