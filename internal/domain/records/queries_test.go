package records

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRankProcedures_Example(t *testing.T) {
	recs := []ClinicalRecord{
		{Procedures: []Procedure{{Name: "A", Cost: 10}}},
		{Procedures: []Procedure{{Name: "A", Cost: 20}}},
		{Procedures: []Procedure{{Name: "B", Cost: 5}}},
	}

	got := RankProcedures(recs, 2)
	assert.Equal(t, []RankingEntry{
		{Procedure: "A", Total: 2, Spend: 30},
		{Procedure: "B", Total: 1, Spend: 5},
	}, got)
}

func TestRankProcedures_LimitAndStableTies(t *testing.T) {
	recs := []ClinicalRecord{
		{Procedures: []Procedure{{Name: "X"}, {Name: "Y"}, {Name: "Z"}}},
		{Procedures: []Procedure{{Name: "Z"}, {Name: ""}}},
	}

	got := RankProcedures(recs, 5)
	require.Len(t, got, 3)
	assert.Equal(t, "Z", got[0].Procedure)
	assert.Equal(t, "X", got[1].Procedure)
	assert.Equal(t, "Y", got[2].Procedure)

	assert.Len(t, RankProcedures(recs, 1), 1)
	assert.NotNil(t, RankProcedures(nil, 3))
}

func TestDistinctVaccines(t *testing.T) {
	recs := []ClinicalRecord{
		{Vaccines: []string{"Rabia", "Parvovirus"}},
		{Vaccines: []string{"Rabia"}},
	}
	assert.ElementsMatch(t, []string{"Rabia", "Parvovirus"}, DistinctVaccines(recs))
	assert.Equal(t, DistinctVaccines(recs), DistinctVaccines(recs))
	assert.Empty(t, DistinctVaccines(nil))
}

func TestBuildHistory_EmptyShell(t *testing.T) {
	h := BuildHistory("p1", nil)
	assert.Equal(t, "p1", h.PatientID)
	assert.Nil(t, h.TutorID)
	assert.Nil(t, h.TutorName)
	assert.NotNil(t, h.Procedures)
	assert.Empty(t, h.Procedures)
	assert.NotNil(t, h.Entries)
	assert.Empty(t, h.Entries)
}

func TestBuildHistory_Entries(t *testing.T) {
	t1 := time.Date(2024, 5, 2, 10, 0, 0, 0, time.UTC)
	t0 := t1.AddDate(0, -1, 0)
	recs := []ClinicalRecord{
		{TutorID: "t1", Time: t1, ConsultationCost: 30000, Procedures: []Procedure{
			{Name: "Radiografía", Cost: 15000, Medications: []string{"Meloxicam 1 mg"}, Doctors: []AssignedDoctor{
				{ID: "m1", Name: "Dra. Soto", Specialty: "Imagenología"},
				{ID: "m2", Name: "Dr. Pérez", Specialty: "Traumatología"},
			}},
		}},
		{TutorID: "t0", Time: t0, ConsultationCost: 25000, Procedures: []Procedure{
			{Name: "Radiografía", Cost: 14000, Doctors: []AssignedDoctor{{ID: "gone"}}},
			{Name: "Vacunación", Cost: 8000},
		}},
	}

	h := BuildHistory("p1", recs)
	require.NotNil(t, h.TutorID)
	assert.Equal(t, "t1", *h.TutorID)
	assert.Equal(t, []string{"Radiografía", "Vacunación"}, h.Procedures)

	require.Len(t, h.Entries, 5)
	assert.Equal(t, EntryConsultation, h.Entries[0].Kind)
	assert.Equal(t, "Costo base de consulta médica", h.Entries[0].Description)
	assert.Equal(t, 30000.0, h.Entries[0].Cost)
	assert.Equal(t, EntryProcedure, h.Entries[1].Kind)
	assert.Equal(t, "Dra. Soto (Imagenología), Dr. Pérez (Traumatología)", h.Entries[1].Doctors)
	assert.Equal(t, []string{"Meloxicam 1 mg"}, h.Entries[1].Medications)
	assert.Equal(t, t0, h.Entries[2].Time)
	assert.Equal(t, "Médico no disponible", h.Entries[3].Doctors)
	assert.Equal(t, "Médico no disponible", h.Entries[4].Doctors)
}

func TestBuildHistoryAndSheet_EmptyTutorIDIsNull(t *testing.T) {
	recs := []ClinicalRecord{{PatientID: "p", Procedures: []Procedure{{Name: "Control", Cost: 10}}}}

	h := BuildHistory("p", recs)
	assert.Nil(t, h.TutorID)
	raw, err := json.Marshal(h)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"idTutor":null`)

	s := BuildSheet("p", recs)
	assert.Nil(t, s.TutorID)
	raw, err = json.Marshal(s)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"idTutor":null`)
}

func TestBuildSheet(t *testing.T) {
	recs := []ClinicalRecord{
		{TutorID: "t1", WeightKg: 12.5, TempC: 38.6, BloodPressure: "120/80", ConsultationCost: 30000,
			Vaccines:   []string{"Rabia", "Parvovirus"},
			Procedures: []Procedure{{Name: "Curación", Cost: 5000}}},
		{TutorID: "t1", Vaccines: []string{"Rabia"}},
	}

	s := BuildSheet("p1", recs)
	assert.Equal(t, []string{"Rabia", "Parvovirus"}, s.Vaccines)
	require.Len(t, s.Visits, 2)
	assert.Equal(t, Vitals{WeightKg: 12.5, BloodPressure: "120/80", TempC: 38.6}, s.Visits[0].Vitals)
	assert.Equal(t, []SheetProcedure{{Name: "Curación", Cost: 5000, Medications: []string{}}}, s.Visits[0].Procedures)
	assert.NotNil(t, s.Visits[1].Procedures)

	empty := BuildSheet("p2", nil)
	assert.Nil(t, empty.TutorID)
	assert.Empty(t, empty.Vaccines)
	assert.Empty(t, empty.Visits)
}

func TestMonthKey_UsesUTC(t *testing.T) {
	loc := time.FixedZone("CLT", -4*3600)
	// 31 de enero 22:00 en -04 es 1 de febrero en UTC.
	ts := time.Date(2024, 1, 31, 22, 0, 0, 0, loc)
	assert.Equal(t, "2024-02", MonthKey(ts))
}

func TestClinicalRecord_TotalCost(t *testing.T) {
	rec := ClinicalRecord{ConsultationCost: 100, Procedures: []Procedure{{Cost: 50}, {Cost: 25.5}}}
	assert.InDelta(t, 175.5, rec.TotalCost(), 1e-9)
}
