package catalog

import (
	"context"
	"sort"
	"strings"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]Medication, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].Name < items[j].Name })
	return items, nil
}

// CostIndex arma el mapa nombre -> costo unitario. Las claves van sin
// espacios alrededor; si hay duplicados gana la última entrada.
func (s *Service) CostIndex(ctx context.Context) (map[string]float64, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	idx := make(map[string]float64, len(items))
	for _, m := range items {
		name := strings.TrimSpace(m.Name)
		if name == "" {
			continue
		}
		idx[name] = m.Cost
	}
	return idx, nil
}
