package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"hallbook/internal/domain"
	"hallbook/internal/port"
)

// The tariff table is stored as one JSONB snapshot row. Category and item
// order inside the snapshot is the order quotes render in, so the document is
// persisted verbatim rather than normalized into rows.
type tariffRepo struct {
	db *sqlx.DB
}

// NewTariffRepo creates a new PostgreSQL-backed TariffStore.
func NewTariffRepo(db *sqlx.DB) port.TariffStore {
	return &tariffRepo{db: db}
}

func (r *tariffRepo) Get(ctx context.Context) (*domain.TariffTable, error) {
	var raw []byte
	err := r.db.GetContext(ctx, &raw,
		"SELECT categories FROM tariffs ORDER BY updated_at DESC LIMIT 1")
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrTariffNotConfigured
		}
		return nil, fmt.Errorf("tariffRepo.Get: %w", err)
	}

	var table domain.TariffTable
	if err := json.Unmarshal(raw, &table.Categories); err != nil {
		return nil, fmt.Errorf("tariffRepo.Get unmarshal: %w", err)
	}
	return &table, nil
}

func (r *tariffRepo) Replace(ctx context.Context, table *domain.TariffTable) error {
	raw, err := json.Marshal(table.Categories)
	if err != nil {
		return fmt.Errorf("tariffRepo.Replace marshal: %w", err)
	}

	query := `INSERT INTO tariffs (id, categories, updated_at)
		VALUES (1, $1, $2)
		ON CONFLICT (id) DO UPDATE SET categories = $1, updated_at = $2`

	if _, err := r.db.ExecContext(ctx, query, raw, time.Now().UTC()); err != nil {
		return fmt.Errorf("tariffRepo.Replace: %w", err)
	}
	return nil
}
