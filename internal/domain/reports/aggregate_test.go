package reports

import (
	"testing"
	"time"

	"vet-clinic-records/internal/domain/records"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 15, 0, 0, 0, time.UTC)
}

func TestMonthlyVolume_Average(t *testing.T) {
	recs := []records.ClinicalRecord{
		{Time: at(2024, 3, 1), ConsultationCost: 60, Procedures: []records.Procedure{{Cost: 40}}},
		{Time: at(2024, 3, 20), ConsultationCost: 300},
		{Time: at(2024, 1, 5), ConsultationCost: 10},
	}

	got := MonthlyVolumeByMonth(recs)
	assert.Equal(t, []MonthlyVolume{
		{Month: "2024-01", Visits: 1, AvgSpend: 10},
		{Month: "2024-03", Visits: 2, AvgSpend: 200},
	}, got)
}

func TestMonthlyVolume_RoundsToCents(t *testing.T) {
	recs := []records.ClinicalRecord{
		{Time: at(2024, 2, 1), ConsultationCost: 10},
		{Time: at(2024, 2, 2), ConsultationCost: 10},
		{Time: at(2024, 2, 3), ConsultationCost: 0.01},
	}
	got := MonthlyVolumeByMonth(recs)
	require.Len(t, got, 1)
	assert.Equal(t, 6.67, got[0].AvgSpend)
}

func TestSpecialtyDistribution(t *testing.T) {
	recs := []records.ClinicalRecord{
		{Procedures: []records.Procedure{
			{Doctors: []records.AssignedDoctor{{Specialty: "Cirugía"}, {Specialty: "Anestesia"}}},
			{Doctors: []records.AssignedDoctor{{Specialty: "Cirugía"}}},
			{},
		}},
		{Procedures: []records.Procedure{
			{Doctors: []records.AssignedDoctor{{ID: "m9"}, {Specialty: "Anestesia"}}},
		}},
	}

	assert.Equal(t, []SpecialtyCount{
		{Specialty: "Cirugía", Total: 2},
		{Specialty: "Anestesia", Total: 2},
		{Specialty: "Sin especialidad", Total: 1},
	}, SpecialtyDistribution(recs))
}

func TestTopMedications(t *testing.T) {
	recs := []records.ClinicalRecord{
		{Procedures: []records.Procedure{{Medications: []string{"Meloxicam 1 mg", " Tramadol 50 mg", ""}}}},
		{Procedures: []records.Procedure{{Medications: []string{"Tramadol 50 mg"}}, {Medications: []string{"Cefalexina 500 mg"}}}},
	}

	assert.Equal(t, []MedicationCount{
		{Medication: "Tramadol 50 mg", Count: 2},
		{Medication: "Meloxicam 1 mg", Count: 1},
	}, TopMedications(recs, 2))

	assert.Len(t, TopMedications(recs, 0), 3)
}

func TestRevenueVsCost_ProfitIdentity(t *testing.T) {
	costs := map[string]float64{"Meloxicam 1 mg": 0.1, "Tramadol 50 mg": 0.2}
	recs := []records.ClinicalRecord{
		{Time: at(2024, 4, 1), ConsultationCost: 100.005, Procedures: []records.Procedure{
			{Cost: 0.1, Medications: []string{"Meloxicam 1 mg", "Tramadol 50 mg", "Desconocido"}},
		}},
		{Time: at(2024, 4, 9), ConsultationCost: 0.2},
		{Time: at(2024, 5, 1), ConsultationCost: 50, Procedures: []records.Procedure{
			{Medications: []string{"Tramadol 50 mg"}},
		}},
	}

	got := RevenueVsCost(recs, costs)
	require.Len(t, got, 2)
	assert.Equal(t, "2024-04", got[0].Month)
	assert.Equal(t, 0.3, got[0].MedCost)
	assert.Equal(t, 50.0, got[1].Revenue)
	assert.Equal(t, 0.2, got[1].MedCost)

	for _, b := range got {
		assert.Equal(t, round2(b.Revenue-b.MedCost), b.Profit, b.Month)
		assert.Equal(t, round2(b.Revenue), b.Revenue)
		assert.Equal(t, round2(b.MedCost), b.MedCost)
	}
}

func TestVaccineDemand_Order(t *testing.T) {
	recs := []records.ClinicalRecord{
		{Time: at(2024, 2, 1), Vaccines: []string{"Rabia"}},
		{Time: at(2024, 1, 1), Vaccines: []string{"Rabia", "Parvovirus"}},
		{Time: at(2024, 1, 8), Vaccines: []string{"Parvovirus"}},
		{Time: at(2024, 2, 3), Vaccines: []string{"Leptospira"}},
	}

	assert.Equal(t, []VaccineDemand{
		{Month: "2024-01", Vaccine: "Parvovirus", Applications: 2},
		{Month: "2024-01", Vaccine: "Rabia", Applications: 1},
		{Month: "2024-02", Vaccine: "Rabia", Applications: 1},
		{Month: "2024-02", Vaccine: "Leptospira", Applications: 1},
	}, VaccineDemandByMonth(recs))
}
