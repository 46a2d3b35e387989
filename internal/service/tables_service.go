package service

import (
	"context"

	"myblog/internal/repository"
)

// Таблицы, которые создаёт миграция; по ним проверяется готовность схемы
var expectedTables = []string{
	"comments",
	"dislikes",
	"email_token",
	"hashtags",
	"image_mapper",
	"likes",
	"post_hashtag",
	"posts",
	"users",
}

type SchemaStatus struct {
	Tables  []string
	Missing []string
}

type TablesService interface {
	SchemaStatus(ctx context.Context) (*SchemaStatus, error)
}

type tablesService struct {
	tablesRepo repository.TablesRepository
}

func NewTablesService(tablesRepo repository.TablesRepository) TablesService {
	return &tablesService{tablesRepo: tablesRepo}
}

func (t *tablesService) SchemaStatus(ctx context.Context) (*SchemaStatus, error) {
	tables, err := t.tablesRepo.ListTables(ctx)
	if err != nil {
		return nil, err
	}

	present := make(map[string]bool, len(tables))
	for _, table := range tables {
		present[table] = true
	}

	missing := make([]string, 0)
	for _, table := range expectedTables {
		if !present[table] {
			missing = append(missing, table)
		}
	}

	return &SchemaStatus{Tables: tables, Missing: missing}, nil
}
