package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

type TablesRepository interface {
	ListTables(ctx context.Context) ([]string, error)
}

type tablesRepository struct {
	db *sqlx.DB
}

func NewTablesRepository(db *sqlx.DB) TablesRepository {
	return &tablesRepository{db: db}
}

func (r *tablesRepository) ListTables(ctx context.Context) ([]string, error) {
	var tables []string

	err := r.db.SelectContext(ctx, &tables, `
			SELECT table_name
			FROM information_schema.tables
			WHERE table_schema = 'public'
			ORDER BY table_name
		`)

	if err != nil {
		return nil, fmt.Errorf("ошибка при чтении списка таблиц: %w", err)
	}

	return tables, nil
}
