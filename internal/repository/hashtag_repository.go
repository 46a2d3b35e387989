package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"myblog/internal/models"
)

type hashtagRepository struct {
	db *sqlx.DB
}

func NewHashtagRepository(db *sqlx.DB) HashtagRepository {
	return &hashtagRepository{db: db}
}

func (r *hashtagRepository) GetForPost(ctx context.Context, postID int) ([]models.Hashtag, error) {
	var hashtags []models.Hashtag

	query := `
		SELECT h.hashtag_id, h.hashtag FROM hashtags h
		JOIN post_hashtag ph ON ph.hashtag_id = h.hashtag_id
		WHERE ph.post_id = $1
		ORDER BY h.hashtag
	`

	err := r.db.SelectContext(ctx, &hashtags, query, postID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении хештегов поста: %w", err)
	}

	return hashtags, nil
}

func (r *hashtagRepository) GetPostIDsByHashtag(ctx context.Context, hashtag string) ([]int, error) {
	var postIDs []int

	query := `
		SELECT ph.post_id FROM post_hashtag ph
		JOIN hashtags h ON h.hashtag_id = ph.hashtag_id
		WHERE h.hashtag = $1
		ORDER BY ph.post_id
	`

	err := r.db.SelectContext(ctx, &postIDs, query, hashtag)
	if err != nil {
		return nil, fmt.Errorf("ошибка при поиске постов по хештегу: %w", err)
	}

	return postIDs, nil
}
