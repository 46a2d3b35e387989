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

type PostRepositoryImpl struct {
	db *sqlx.DB
}

func NewPostRepository(db *sqlx.DB) *PostRepositoryImpl {
	return &PostRepositoryImpl{db: db}
}

// Create - вставка поста и привязка хештегов одной транзакцией
func (r *PostRepositoryImpl) Create(ctx context.Context, post *models.Post, hashtags []string) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("ошибка при открытии транзакции: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO posts (user_id, post_title, post_content, post_image)
		VALUES ($1, $2, $3, $4)
		RETURNING post_id, posted_at
	`

	err = tx.QueryRowxContext(ctx, query,
		post.UserID,
		post.PostTitle,
		post.PostContent,
		post.PostImage,
	).Scan(&post.PostID, &post.PostedAt)
	if err != nil {
		return apperrors.DataCreation(fmt.Sprintf("ошибка при создании поста: %v", err))
	}

	for _, hashtag := range hashtags {
		if err := attachHashtag(ctx, tx, post.PostID, hashtag); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("ошибка при фиксации транзакции: %w", err)
	}

	return nil
}

func (r *PostRepositoryImpl) GetByID(ctx context.Context, postID int) (*models.Post, error) {
	var post models.Post

	query := `SELECT * FROM posts WHERE post_id = $1`

	err := r.db.GetContext(ctx, &post, query, postID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ItemNotFound(fmt.Sprintf("Post with id %d not found", postID))
		}
		return nil, fmt.Errorf("ошибка при получении поста: %w", err)
	}

	return &post, nil
}

func (r *PostRepositoryImpl) GetAll(ctx context.Context) ([]models.Post, error) {
	var posts []models.Post

	query := `SELECT * FROM posts ORDER BY posted_at DESC`

	err := r.db.SelectContext(ctx, &posts, query)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении постов: %w", err)
	}

	return posts, nil
}

func (r *PostRepositoryImpl) GetByUserID(ctx context.Context, userID int) ([]models.Post, error) {
	var posts []models.Post

	query := `SELECT * FROM posts WHERE user_id = $1 ORDER BY posted_at DESC`

	err := r.db.SelectContext(ctx, &posts, query, userID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении постов пользователя: %w", err)
	}

	return posts, nil
}

// Update - обновление поста и пересинхронизация хештегов одной транзакцией:
// убираем связи, которых больше нет в тексте, добавляем новые
func (r *PostRepositoryImpl) Update(ctx context.Context, post *models.Post, hashtags []string) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("ошибка при открытии транзакции: %w", err)
	}
	defer tx.Rollback()

	query := `
		UPDATE posts SET
			post_title = :post_title,
			post_content = :post_content,
			post_image = :post_image
		WHERE post_id = :post_id
	`

	result, err := tx.NamedExecContext(ctx, query, post)
	if err != nil {
		return apperrors.DataCreation(fmt.Sprintf("ошибка при обновлении поста: %v", err))
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке обновленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return apperrors.ItemNotFound(fmt.Sprintf("Post with id %d not found", post.PostID))
	}

	var previous []models.Hashtag
	err = tx.SelectContext(ctx, &previous, `
		SELECT h.hashtag_id, h.hashtag FROM hashtags h
		JOIN post_hashtag ph ON ph.hashtag_id = h.hashtag_id
		WHERE ph.post_id = $1
	`, post.PostID)
	if err != nil {
		return fmt.Errorf("ошибка при получении хештегов поста: %w", err)
	}

	newSet := make(map[string]bool, len(hashtags))
	for _, hashtag := range hashtags {
		newSet[hashtag] = true
	}

	previousSet := make(map[string]bool, len(previous))
	for _, prev := range previous {
		previousSet[prev.Hashtag] = true
		if !newSet[prev.Hashtag] {
			_, err = tx.ExecContext(ctx,
				`DELETE FROM post_hashtag WHERE post_id = $1 AND hashtag_id = $2`,
				post.PostID, prev.HashtagID)
			if err != nil {
				return fmt.Errorf("ошибка при удалении связи хештега: %w", err)
			}
		}
	}

	for _, hashtag := range hashtags {
		if previousSet[hashtag] {
			continue
		}
		if err := attachHashtag(ctx, tx, post.PostID, hashtag); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("ошибка при фиксации транзакции: %w", err)
	}

	return nil
}

func (r *PostRepositoryImpl) Delete(ctx context.Context, postID int) error {
	// комментарии, лайки, дизлайки и связи хештегов удаляются каскадом по FK
	query := `DELETE FROM posts WHERE post_id = $1`

	result, err := r.db.ExecContext(ctx, query, postID)
	if err != nil {
		return fmt.Errorf("ошибка при удалении поста: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке удаленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return apperrors.ItemNotFound(fmt.Sprintf("Post with id %d not found", postID))
	}

	return nil
}

// attachHashtag - находим существующую строку хештега по тексту или создаём новую,
// затем связываем с постом
func attachHashtag(ctx context.Context, tx *sqlx.Tx, postID int, hashtag string) error {
	var hashtagID int

	err := tx.GetContext(ctx, &hashtagID, `SELECT hashtag_id FROM hashtags WHERE hashtag = $1`, hashtag)
	if errors.Is(err, sql.ErrNoRows) {
		err = tx.GetContext(ctx, &hashtagID, `INSERT INTO hashtags (hashtag) VALUES ($1) RETURNING hashtag_id`, hashtag)
	}
	if err != nil {
		return apperrors.DataCreation(fmt.Sprintf("ошибка при создании хештега: %v", err))
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO post_hashtag (post_id, hashtag_id) VALUES ($1, $2)`,
		postID, hashtagID)
	if err != nil {
		return apperrors.DataCreation(fmt.Sprintf("ошибка при привязке хештега: %v", err))
	}

	return nil
}
