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

type emailTokenRepository struct {
	db *sqlx.DB
}

func NewEmailTokenRepository(db *sqlx.DB) EmailTokenRepository {
	return &emailTokenRepository{db: db}
}

func (r *emailTokenRepository) Create(ctx context.Context, token *models.EmailToken) error {
	query := `
		INSERT INTO email_token (token, email, old_email, is_verified, expires_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	err := r.db.QueryRowxContext(ctx, query,
		token.Token,
		token.Email,
		token.OldEmail,
		token.IsVerified,
		token.ExpiresAt,
	).Scan(&token.ID)
	if err != nil {
		return apperrors.DataCreation(fmt.Sprintf("ошибка при создании email токена: %v", err))
	}

	return nil
}

func (r *emailTokenRepository) GetByToken(ctx context.Context, token string) (*models.EmailToken, error) {
	var emailToken models.EmailToken

	query := `SELECT * FROM email_token WHERE token = $1`

	err := r.db.GetContext(ctx, &emailToken, query, token)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.InvalidEmailToken("The token is invalid or has expired.")
		}
		return nil, fmt.Errorf("ошибка при получении email токена: %w", err)
	}

	return &emailToken, nil
}

func (r *emailTokenRepository) MarkVerified(ctx context.Context, token string) error {
	query := `UPDATE email_token SET is_verified = TRUE WHERE token = $1`

	result, err := r.db.ExecContext(ctx, query, token)
	if err != nil {
		return fmt.Errorf("ошибка при подтверждении email токена: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке обновленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return apperrors.InvalidEmailToken("The token is invalid or has expired.")
	}

	return nil
}

func (r *emailTokenRepository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM email_token WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("ошибка при удалении email токена: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке удаленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return apperrors.InvalidEmailToken("The token is invalid or has expired.")
	}

	return nil
}
