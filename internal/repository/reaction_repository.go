package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"myblog/internal/apperrors"
)

type reactionRepository struct {
	db *sqlx.DB
}

func NewReactionRepository(db *sqlx.DB) ReactionRepository {
	return &reactionRepository{db: db}
}

// Like - лайк и дизлайк взаимоисключающие для пары (user, post).
// Повторный лайк - no-op; существующий дизлайк снимается в той же транзакции.
func (r *reactionRepository) Like(ctx context.Context, postID, userID int) error {
	return r.react(ctx, postID, userID, "likes", "dislikes")
}

func (r *reactionRepository) Dislike(ctx context.Context, postID, userID int) error {
	return r.react(ctx, postID, userID, "dislikes", "likes")
}

func (r *reactionRepository) react(ctx context.Context, postID, userID int, table, opposite string) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("ошибка при открытии транзакции: %w", err)
	}
	defer tx.Rollback()

	var count int
	err = tx.GetContext(ctx, &count,
		fmt.Sprintf(`SELECT COUNT(*) FROM %s WHERE post_id = $1 AND user_id = $2`, table),
		postID, userID)
	if err != nil {
		return fmt.Errorf("ошибка при проверке реакции: %w", err)
	}

	if count > 0 {
		return nil
	}

	_, err = tx.ExecContext(ctx,
		fmt.Sprintf(`DELETE FROM %s WHERE post_id = $1 AND user_id = $2`, opposite),
		postID, userID)
	if err != nil {
		return fmt.Errorf("ошибка при снятии противоположной реакции: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		fmt.Sprintf(`INSERT INTO %s (user_id, post_id) VALUES ($1, $2)`, table),
		userID, postID)
	if err != nil {
		return apperrors.DataCreation(fmt.Sprintf("ошибка при добавлении реакции: %v", err))
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("ошибка при фиксации транзакции: %w", err)
	}

	return nil
}

func (r *reactionRepository) RemoveLike(ctx context.Context, postID, userID int) error {
	return r.remove(ctx, postID, userID, "likes", "Like not found")
}

func (r *reactionRepository) RemoveDislike(ctx context.Context, postID, userID int) error {
	return r.remove(ctx, postID, userID, "dislikes", "Dislike not found")
}

func (r *reactionRepository) remove(ctx context.Context, postID, userID int, table, notFound string) error {
	result, err := r.db.ExecContext(ctx,
		fmt.Sprintf(`DELETE FROM %s WHERE post_id = $1 AND user_id = $2`, table),
		postID, userID)
	if err != nil {
		return fmt.Errorf("ошибка при удалении реакции: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке удаленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return apperrors.ItemNotFound(notFound)
	}

	return nil
}

func (r *reactionRepository) GetLikerIDs(ctx context.Context, postID int) ([]int, error) {
	return r.reactorIDs(ctx, postID, "likes")
}

func (r *reactionRepository) GetDislikerIDs(ctx context.Context, postID int) ([]int, error) {
	return r.reactorIDs(ctx, postID, "dislikes")
}

func (r *reactionRepository) reactorIDs(ctx context.Context, postID int, table string) ([]int, error) {
	var userIDs []int

	err := r.db.SelectContext(ctx, &userIDs,
		fmt.Sprintf(`SELECT user_id FROM %s WHERE post_id = $1 ORDER BY user_id`, table),
		postID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении реакций поста: %w", err)
	}

	return userIDs, nil
}
