package reports

import (
	"context"

	"vet-clinic-records/internal/domain/records"
)

// CostSource entrega el mapa nombre -> costo unitario del catálogo.
// *catalog.Service lo implementa.
type CostSource interface {
	CostIndex(ctx context.Context) (map[string]float64, error)
}

// Service drena el scan de fichas y reduce con las funciones de aggregate.go.
// Cada request hace su propio scan completo.
type Service struct {
	records  records.Scanner
	resolver *records.DoctorResolver
	costs    CostSource
	pageSize int
}

func NewService(scanner records.Scanner, resolver *records.DoctorResolver, costs CostSource, pageSize int) *Service {
	return &Service{
		records:  scanner,
		resolver: resolver,
		costs:    costs,
		pageSize: pageSize,
	}
}

func (s *Service) scan(ctx context.Context) ([]records.ClinicalRecord, error) {
	return records.ScanAll(ctx, s.records, s.pageSize)
}

func (s *Service) MonthlyVolume(ctx context.Context) ([]MonthlyVolume, error) {
	recs, err := s.scan(ctx)
	if err != nil {
		return nil, err
	}
	return MonthlyVolumeByMonth(recs), nil
}

// SpecialtyDistribution necesita la especialidad de cada asignación, así que
// resuelve las que vienen sólo con id.
func (s *Service) SpecialtyDistribution(ctx context.Context) ([]SpecialtyCount, error) {
	recs, err := s.scan(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.resolver.Resolve(ctx, recs); err != nil {
		return nil, err
	}
	return SpecialtyDistribution(recs), nil
}

func (s *Service) TopMedications(ctx context.Context, limit int) ([]MedicationCount, error) {
	recs, err := s.scan(ctx)
	if err != nil {
		return nil, err
	}
	return TopMedications(recs, limit), nil
}

// RevenueVsCost carga el catálogo una vez antes del scan.
func (s *Service) RevenueVsCost(ctx context.Context) ([]MonthlyBalance, error) {
	costs, err := s.costs.CostIndex(ctx)
	if err != nil {
		return nil, err
	}
	recs, err := s.scan(ctx)
	if err != nil {
		return nil, err
	}
	return RevenueVsCost(recs, costs), nil
}

func (s *Service) VaccineDemand(ctx context.Context) ([]VaccineDemand, error) {
	recs, err := s.scan(ctx)
	if err != nil {
		return nil, err
	}
	return VaccineDemandByMonth(recs), nil
}
