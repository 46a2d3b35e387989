package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"myblog/internal/apperrors"
	"myblog/internal/models"
)

type imageMapperRepository struct {
	db *sqlx.DB
}

func NewImageMapperRepository(db *sqlx.DB) ImageMapperRepository {
	return &imageMapperRepository{db: db}
}

func (r *imageMapperRepository) Create(ctx context.Context, mapper *models.ImageMapper) error {
	query := `
		INSERT INTO image_mapper (image_id, image_name, image_url)
		VALUES (:image_id, :image_name, :image_url)
	`

	_, err := r.db.NamedExecContext(ctx, query, mapper)
	if err != nil {
		return apperrors.DataCreation(fmt.Sprintf("ошибка при сохранении изображения: %v", err))
	}

	return nil
}

// GetByURL - nil без ошибки, если записи нет: удаление несуществующего
// изображения должно быть молчаливым no-op
func (r *imageMapperRepository) GetByURL(ctx context.Context, imageURL string) (*models.ImageMapper, error) {
	var mapper models.ImageMapper

	query := `SELECT * FROM image_mapper WHERE image_url = $1`

	err := r.db.GetContext(ctx, &mapper, query, imageURL)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("ошибка при получении изображения: %w", err)
	}

	return &mapper, nil
}

func (r *imageMapperRepository) Delete(ctx context.Context, imageID string) error {
	query := `DELETE FROM image_mapper WHERE image_id = $1`

	_, err := r.db.ExecContext(ctx, query, imageID)
	if err != nil {
		return fmt.Errorf("ошибка при удалении изображения: %w", err)
	}

	return nil
}
