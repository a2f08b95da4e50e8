package records

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"testing"
	"time"

	"vet-clinic-records/internal/domain/doctors"
	"vet-clinic-records/internal/domain/patients"
	"vet-clinic-records/internal/domain/tutors"
	"vet-clinic-records/internal/platform/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// -------------------------
// Fakes
// -------------------------

type testRepo struct {
	recs    []ClinicalRecord
	scanErr error
	pages   int
}

func (r *testRepo) Create(_ context.Context, rec ClinicalRecord) error {
	r.recs = append(r.recs, rec)
	return nil
}

func (r *testRepo) ListByPatient(_ context.Context, patientID string) ([]ClinicalRecord, error) {
	var out []ClinicalRecord
	for _, rec := range r.recs {
		if rec.PatientID == patientID {
			out = append(out, rec)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Time.After(out[j].Time) })
	return out, nil
}

// ScanPage usa el offset como cursor.
func (r *testRepo) ScanPage(_ context.Context, cursor string, limit int) ([]ClinicalRecord, string, error) {
	r.pages++
	if r.scanErr != nil && r.pages > 1 {
		return nil, "", r.scanErr
	}
	start := 0
	if cursor != "" {
		start, _ = strconv.Atoi(cursor)
	}
	end := start + limit
	if end >= len(r.recs) {
		return r.recs[start:], "", nil
	}
	return r.recs[start:end], strconv.Itoa(end), nil
}

type fakePatients map[string]patients.Patient

func (f fakePatients) GetByID(_ context.Context, id string) (patients.Patient, error) {
	p, ok := f[id]
	if !ok {
		return patients.Patient{}, patients.ErrNotFound
	}
	return p, nil
}

type fakeTutors map[string]tutors.Tutor

func (f fakeTutors) GetByID(_ context.Context, id string) (tutors.Tutor, error) {
	t, ok := f[id]
	if !ok {
		return tutors.Tutor{}, tutors.ErrNotFound
	}
	return t, nil
}

type fakeDoctors struct {
	byID  map[string]doctors.Doctor
	calls int
	err   error
}

func (f *fakeDoctors) GetByID(_ context.Context, id string) (doctors.Doctor, error) {
	f.calls++
	if f.err != nil {
		return doctors.Doctor{}, f.err
	}
	d, ok := f.byID[id]
	if !ok {
		return doctors.Doctor{}, doctors.ErrNotFound
	}
	return d, nil
}

func newFixture() (*Service, *testRepo, *fakeDoctors) {
	repo := &testRepo{}
	docs := &fakeDoctors{byID: map[string]doctors.Doctor{
		"m1": {ID: "m1", Name: "Dra. Soto", Specialty: "Cirugía"},
	}}
	svc := NewService(repo, Deps{
		Patients: fakePatients{"p1": {ID: "p1", TutorID: "t1"}},
		Tutors:   fakeTutors{"t1": {ID: "t1", Name: "Ana"}},
		Doctors:  docs,
		PageSize: 2,
	})
	return svc, repo, docs
}

// -------------------------
// Tests
// -------------------------

func TestScanAll_DrainsEveryPage(t *testing.T) {
	repo := &testRepo{}
	for i := 0; i < 7; i++ {
		repo.recs = append(repo.recs, ClinicalRecord{ID: strconv.Itoa(i)})
	}

	all, err := ScanAll(context.Background(), repo, 3)
	require.NoError(t, err)
	assert.Len(t, all, 7)
	assert.Equal(t, 3, repo.pages)
}

func TestScanAll_NoPartialResults(t *testing.T) {
	repo := &testRepo{recs: make([]ClinicalRecord, 5), scanErr: errors.New("throttled")}

	all, err := ScanAll(context.Background(), repo, 2)
	require.Error(t, err)
	assert.Nil(t, all)
}

type stuckScanner struct{}

func (stuckScanner) ScanPage(context.Context, string, int) ([]ClinicalRecord, string, error) {
	return []ClinicalRecord{{}}, "same", nil
}

func TestScanAll_CursorMustAdvance(t *testing.T) {
	_, err := ScanAll(context.Background(), stuckScanner{}, 10)
	require.Error(t, err)
}

func TestService_History_EmptyShell(t *testing.T) {
	svc, _, _ := newFixture()

	h, err := svc.History(context.Background(), "sin-fichas")
	require.NoError(t, err)
	assert.Equal(t, BuildHistory("sin-fichas", nil), h)
}

func TestService_History_ResolvesIDOnlyDoctorsAndTutor(t *testing.T) {
	svc, repo, docs := newFixture()
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	repo.recs = []ClinicalRecord{
		{PatientID: "p1", TutorID: "t1", Time: now, Procedures: []Procedure{
			{Name: "Cirugía menor", Doctors: []AssignedDoctor{{ID: "m1"}}},
			{Name: "Sutura", Doctors: []AssignedDoctor{{ID: "m1"}, {ID: "m404"}}},
		}},
	}

	h, err := svc.History(context.Background(), "p1")
	require.NoError(t, err)
	require.NotNil(t, h.TutorName)
	assert.Equal(t, "Ana", *h.TutorName)
	assert.Equal(t, "Dra. Soto (Cirugía)", h.Entries[1].Doctors)
	assert.Equal(t, "Dra. Soto (Cirugía)", h.Entries[2].Doctors)
	assert.Equal(t, 2, docs.calls, "one lookup per distinct id")
}

func TestService_History_UnknownTutorGivesNullName(t *testing.T) {
	svc, repo, _ := newFixture()
	repo.recs = []ClinicalRecord{{PatientID: "p1", TutorID: "borrado"}}

	h, err := svc.History(context.Background(), "p1")
	require.NoError(t, err)
	require.NotNil(t, h.TutorID)
	assert.Nil(t, h.TutorName)
}

func TestService_History_DoctorStoreFailureFailsWhole(t *testing.T) {
	svc, repo, docs := newFixture()
	docs.err = errors.New("timeout")
	repo.recs = []ClinicalRecord{{PatientID: "p1", TutorID: "t1", Procedures: []Procedure{
		{Name: "X", Doctors: []AssignedDoctor{{ID: "m1"}}},
	}}}

	_, err := svc.History(context.Background(), "p1")
	require.Error(t, err)
	assert.NotErrorIs(t, err, apperr.ErrNotFound)
}

func TestService_Vaccines(t *testing.T) {
	svc, repo, _ := newFixture()
	repo.recs = []ClinicalRecord{
		{PatientID: "p1", Vaccines: []string{"Rabia", "Parvovirus"}},
		{PatientID: "p1", Vaccines: []string{"Rabia"}},
		{PatientID: "otro", Vaccines: []string{"Leptospira"}},
	}

	v, err := svc.Vaccines(context.Background(), "p1")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Rabia", "Parvovirus"}, v)
}

func TestService_ProcedureRanking_DefaultLimit(t *testing.T) {
	svc, repo, _ := newFixture()
	for _, name := range []string{"A", "B", "C", "D", "E", "F", "G"} {
		repo.recs = append(repo.recs, ClinicalRecord{Procedures: []Procedure{{Name: name, Cost: 1}}})
	}

	out, err := svc.ProcedureRanking(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, out, DefaultRankingLimit)
}

func TestService_Create(t *testing.T) {
	svc, repo, _ := newFixture()
	fixed := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	rec, err := svc.Create(context.Background(), "p1", CreateInput{
		ConsultationCost: 30000,
		Vaccines:         []string{" Rabia ", ""},
		Procedures: []ProcedureInput{
			{Name: "Sutura", Cost: 12000, Medications: []string{"Cefalexina 500 mg"}, DoctorIDs: []string{"m1"}},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "t1", rec.TutorID)
	assert.Equal(t, fixed, rec.Time)
	assert.Equal(t, []string{"Rabia"}, rec.Vaccines)
	assert.Equal(t, []AssignedDoctor{{ID: "m1", Name: "Dra. Soto", Specialty: "Cirugía"}}, rec.Procedures[0].Doctors)
	require.Len(t, repo.recs, 1)
}

func TestService_Create_Failures(t *testing.T) {
	svc, repo, _ := newFixture()
	ctx := context.Background()

	_, err := svc.Create(ctx, "nope", CreateInput{})
	require.ErrorIs(t, err, patients.ErrNotFound)

	_, err = svc.Create(ctx, "p1", CreateInput{Procedures: []ProcedureInput{{Name: "X", DoctorIDs: []string{"m404"}}}})
	require.ErrorIs(t, err, apperr.ErrNotFound)

	_, err = svc.Create(ctx, "p1", CreateInput{Procedures: []ProcedureInput{{Name: " "}}})
	require.ErrorIs(t, err, ErrMissingProcedureName)

	_, err = svc.Create(ctx, "p1", CreateInput{ConsultationCost: -1})
	require.ErrorIs(t, err, apperr.ErrValidation)

	assert.Empty(t, repo.recs)
}
