package service

import (
	"context"
	"fmt"

	"hallbook/internal/domain"
	"hallbook/internal/port"
)

// TariffService defines the tariff administration contract. The table is
// always replaced wholesale; per-item edits happen client-side against the
// full snapshot.
type TariffService interface {
	Get(ctx context.Context) (*domain.TariffTable, error)
	Replace(ctx context.Context, table *domain.TariffTable) error
}

type tariffService struct {
	tariffs port.TariffStore
}

// NewTariffService creates a new TariffService implementation.
func NewTariffService(tariffs port.TariffStore) TariffService {
	return &tariffService{tariffs: tariffs}
}

func (s *tariffService) Get(ctx context.Context) (*domain.TariffTable, error) {
	table, err := s.tariffs.Get(ctx)
	if err != nil {
		return nil, err
	}
	return table, nil
}

func (s *tariffService) Replace(ctx context.Context, table *domain.TariffTable) error {
	if err := validateTable(table); err != nil {
		return err
	}
	if err := s.tariffs.Replace(ctx, table); err != nil {
		return fmt.Errorf("tariffService.Replace: %w", err)
	}
	return nil
}

func validateTable(table *domain.TariffTable) error {
	if table == nil || len(table.Categories) == 0 {
		return domain.NewValidationError("categories", "tariff table must have at least one category")
	}
	for _, cat := range table.Categories {
		if cat.Name == "" {
			return domain.NewValidationError("category.name", "category name cannot be empty")
		}
		seen := make(map[string]bool, len(cat.Items))
		for _, it := range cat.Items {
			if it.Label == "" {
				return domain.NewValidationError(cat.Name, "item label cannot be empty")
			}
			if it.UnitPrice < 0 {
				return domain.NewValidationError(
					fmt.Sprintf("%s / %s", cat.Name, it.Label), "unit price cannot be negative")
			}
			if seen[it.Label] {
				return domain.NewValidationError(
					fmt.Sprintf("%s / %s", cat.Name, it.Label), "duplicate item label in category")
			}
			seen[it.Label] = true
		}
	}
	return nil
}
