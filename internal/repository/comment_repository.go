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

type commentRepository struct {
	db *sqlx.DB
}

func NewCommentRepository(db *sqlx.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(ctx context.Context, comment *models.Comment) error {
	query := `
		INSERT INTO comments (user_id, post_id, comment_content)
		VALUES ($1, $2, $3)
		RETURNING comment_id, commented_at
	`

	err := r.db.QueryRowxContext(ctx, query,
		comment.UserID,
		comment.PostID,
		comment.CommentContent,
	).Scan(&comment.CommentID, &comment.CommentedAt)
	if err != nil {
		return apperrors.DataCreation(fmt.Sprintf("ошибка при создании комментария: %v", err))
	}

	return nil
}

func (r *commentRepository) GetByID(ctx context.Context, commentID int) (*models.Comment, error) {
	var comment models.Comment

	query := `SELECT * FROM comments WHERE comment_id = $1`

	err := r.db.GetContext(ctx, &comment, query, commentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ItemNotFound(fmt.Sprintf("Comment with id %d not found", commentID))
		}
		return nil, fmt.Errorf("ошибка при получении комментария: %w", err)
	}

	return &comment, nil
}

func (r *commentRepository) GetByPostID(ctx context.Context, postID int) ([]models.Comment, error) {
	var comments []models.Comment

	query := `SELECT * FROM comments WHERE post_id = $1 ORDER BY commented_at`

	err := r.db.SelectContext(ctx, &comments, query, postID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении комментариев поста: %w", err)
	}

	return comments, nil
}

func (r *commentRepository) UpdateContent(ctx context.Context, commentID int, content string) error {
	query := `UPDATE comments SET comment_content = $1 WHERE comment_id = $2`

	result, err := r.db.ExecContext(ctx, query, content, commentID)
	if err != nil {
		return fmt.Errorf("ошибка при обновлении комментария: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке обновленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return apperrors.ItemNotFound(fmt.Sprintf("Comment with id %d not found", commentID))
	}

	return nil
}

func (r *commentRepository) Delete(ctx context.Context, commentID int) error {
	query := `DELETE FROM comments WHERE comment_id = $1`

	result, err := r.db.ExecContext(ctx, query, commentID)
	if err != nil {
		return fmt.Errorf("ошибка при удалении комментария: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке удаленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return apperrors.ItemNotFound(fmt.Sprintf("Comment with id %d not found", commentID))
	}

	return nil
}
