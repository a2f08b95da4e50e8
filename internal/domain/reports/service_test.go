package reports

import (
	"context"
	"errors"
	"testing"

	"vet-clinic-records/internal/domain/doctors"
	"vet-clinic-records/internal/domain/records"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pagedScanner entrega una página por llamada; failAt >= 0 hace fallar esa página.
type pagedScanner struct {
	pages  [][]records.ClinicalRecord
	failAt int
}

func (s *pagedScanner) ScanPage(_ context.Context, cursor string, _ int) ([]records.ClinicalRecord, string, error) {
	i := 0
	if cursor != "" {
		i = int(cursor[0] - '0')
	}
	if i == s.failAt {
		return nil, "", errors.New("provisioned throughput exceeded")
	}
	next := ""
	if i+1 < len(s.pages) {
		next = string(rune('0' + i + 1))
	}
	return s.pages[i], next, nil
}

type staticCosts map[string]float64

func (c staticCosts) CostIndex(context.Context) (map[string]float64, error) { return c, nil }

type doctorsByID map[string]doctors.Doctor

func (d doctorsByID) GetByID(_ context.Context, id string) (doctors.Doctor, error) {
	doc, ok := d[id]
	if !ok {
		return doctors.Doctor{}, doctors.ErrNotFound
	}
	return doc, nil
}

func TestService_MonthlyVolume_AcrossPages(t *testing.T) {
	scanner := &pagedScanner{failAt: -1, pages: [][]records.ClinicalRecord{
		{{Time: at(2024, 3, 1), ConsultationCost: 100}},
		{{Time: at(2024, 3, 2), ConsultationCost: 300}},
	}}
	svc := NewService(scanner, nil, staticCosts{}, 1)

	out, err := svc.MonthlyVolume(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []MonthlyVolume{{Month: "2024-03", Visits: 2, AvgSpend: 200}}, out)
}

func TestService_ScanFailureIsAllOrNothing(t *testing.T) {
	scanner := &pagedScanner{failAt: 1, pages: [][]records.ClinicalRecord{
		{{Time: at(2024, 3, 1), Vaccines: []string{"Rabia"}}},
		{{Time: at(2024, 3, 2)}},
	}}
	svc := NewService(scanner, nil, staticCosts{}, 1)

	out, err := svc.VaccineDemand(context.Background())
	require.Error(t, err)
	assert.Nil(t, out)
}

func TestService_SpecialtyDistribution_ResolvesIDs(t *testing.T) {
	scanner := &pagedScanner{failAt: -1, pages: [][]records.ClinicalRecord{
		{{Procedures: []records.Procedure{{Doctors: []records.AssignedDoctor{{ID: "m1"}, {ID: "m2"}}}}}},
	}}
	resolver := records.NewDoctorResolver(doctorsByID{"m1": {ID: "m1", Name: "Dra. Soto", Specialty: "Cirugía"}})
	svc := NewService(scanner, resolver, staticCosts{}, 10)

	out, err := svc.SpecialtyDistribution(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []SpecialtyCount{
		{Specialty: "Cirugía", Total: 1},
		{Specialty: "Sin especialidad", Total: 1},
	}, out)
}

func TestService_RevenueVsCost_UsesCatalog(t *testing.T) {
	scanner := &pagedScanner{failAt: -1, pages: [][]records.ClinicalRecord{
		{{Time: at(2024, 6, 1), ConsultationCost: 1000, Procedures: []records.Procedure{
			{Cost: 500, Medications: []string{"Meloxicam 1 mg", "Meloxicam 1 mg"}},
		}}},
	}}
	svc := NewService(scanner, nil, staticCosts{"Meloxicam 1 mg": 120.5}, 10)

	out, err := svc.RevenueVsCost(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []MonthlyBalance{{Month: "2024-06", Revenue: 1500, MedCost: 241, Profit: 1259}}, out)
}
