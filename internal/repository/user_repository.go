package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"golang.org/x/crypto/bcrypt"
	"myblog/internal/apperrors"
	"myblog/internal/models"
)

type userRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) CreateUser(ctx context.Context, user *models.User, password string) error {
	// create password hash
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("ошибка при хешировании пароля: %w", err)
	}

	user.PasswordHash = string(hashedPassword)

	query := `
		INSERT INTO users (username, email, password_hash, firstname, lastname, dob, is_admin, is_active, acct_deactivated, image_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING user_id, created_at
	`

	err = r.db.QueryRowxContext(ctx, query,
		user.Username,
		user.Email,
		user.PasswordHash,
		user.Firstname,
		user.Lastname,
		user.Dob,
		user.IsAdmin,
		user.IsActive,
		user.AcctDeactivated,
		user.ImageURL,
	).Scan(&user.UserID, &user.CreatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key value") {
			return apperrors.EmailExists("User with this email already exists.")
		}
		return apperrors.DataCreation(fmt.Sprintf("ошибка при создании пользователя: %v", err))
	}

	return nil
}

func (r *userRepository) GetUserByID(ctx context.Context, userID int) (*models.User, error) {
	var user models.User

	query := `SELECT * FROM users WHERE user_id = $1`

	err := r.db.GetContext(ctx, &user, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.UserNotFound(fmt.Sprintf("User with id %d cannot be found", userID))
		}
		return nil, fmt.Errorf("ошибка при получении пользователя: %w", err)
	}

	return &user, nil
}

func (r *userRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User

	query := `SELECT * FROM users WHERE email = $1`

	err := r.db.GetContext(ctx, &user, query, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.UserNotFound(fmt.Sprintf("User with email %s cannot be found.", email))
		}
		return nil, fmt.Errorf("ошибка при получении пользователя по email: %w", err)
	}

	return &user, nil
}

func (r *userRepository) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User

	query := `SELECT * FROM users WHERE username = $1`

	err := r.db.GetContext(ctx, &user, query, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.UserNotFound(fmt.Sprintf("User with username %s cannot be found.", username))
		}
		return nil, fmt.Errorf("ошибка при получении пользователя по username: %w", err)
	}

	return &user, nil
}

// GetUserByEmailOrUsername - идентификатор логина может быть email или username
func (r *userRepository) GetUserByEmailOrUsername(ctx context.Context, identifier string) (*models.User, error) {
	user, err := r.GetUserByEmail(ctx, identifier)
	if err == nil {
		return user, nil
	}

	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		return nil, err
	}

	return r.GetUserByUsername(ctx, identifier)
}

func (r *userRepository) GetAllUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User

	query := `SELECT * FROM users ORDER BY user_id`

	err := r.db.SelectContext(ctx, &users, query)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении списка пользователей: %w", err)
	}

	return users, nil
}

func (r *userRepository) UpdateProfile(ctx context.Context, user *models.User) error {
	query := `
		UPDATE users
		SET firstname = :firstname, lastname = :lastname, username = :username, dob = :dob, image_url = :image_url
		WHERE user_id = :user_id
	`

	result, err := r.db.NamedExecContext(ctx, query, user)
	if err != nil {
		return apperrors.DataCreation(fmt.Sprintf("ошибка при обновлении профиля: %v", err))
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке обновленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return apperrors.UserNotFound(fmt.Sprintf("User with id %d cannot be found", user.UserID))
	}

	return nil
}

func (r *userRepository) UpdatePassword(ctx context.Context, userID int, password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("ошибка при хешировании пароля: %w", err)
	}

	query := `UPDATE users SET password_hash = $1 WHERE user_id = $2`

	result, err := r.db.ExecContext(ctx, query, string(hashedPassword), userID)
	if err != nil {
		return fmt.Errorf("ошибка при обновлении пароля: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке обновленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return apperrors.UserNotFound(fmt.Sprintf("User with id %d cannot be found", userID))
	}

	return nil
}

func (r *userRepository) UpdateEmail(ctx context.Context, oldEmail, newEmail string) error {
	query := `UPDATE users SET email = $1 WHERE email = $2`

	result, err := r.db.ExecContext(ctx, query, newEmail, oldEmail)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key value") {
			return apperrors.EmailExists("User with this email already exists.")
		}
		return fmt.Errorf("ошибка при обновлении email: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке обновленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return apperrors.UserNotFound(fmt.Sprintf("User with email %s cannot be found.", oldEmail))
	}

	return nil
}

func (r *userRepository) SetActive(ctx context.Context, userID int, active bool) error {
	query := `UPDATE users SET is_active = $1 WHERE user_id = $2`

	result, err := r.db.ExecContext(ctx, query, active, userID)
	if err != nil {
		return fmt.Errorf("ошибка при активации пользователя: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке обновленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return apperrors.UserNotFound(fmt.Sprintf("User with id %d cannot be found", userID))
	}

	return nil
}

func (r *userRepository) SetDeactivated(ctx context.Context, userID int, deactivated bool) error {
	query := `UPDATE users SET acct_deactivated = $1 WHERE user_id = $2`

	result, err := r.db.ExecContext(ctx, query, deactivated, userID)
	if err != nil {
		return fmt.Errorf("ошибка при деактивации пользователя: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке обновленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return apperrors.UserNotFound(fmt.Sprintf("User with id %d cannot be found", userID))
	}

	return nil
}

func (r *userRepository) DeleteUserByEmail(ctx context.Context, email string) error {
	query := `DELETE FROM users WHERE email = $1`

	result, err := r.db.ExecContext(ctx, query, email)
	if err != nil {
		return fmt.Errorf("ошибка при удалении пользователя: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке удаленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return apperrors.UserNotFound(fmt.Sprintf("User with email %s cannot be found.", email))
	}

	return nil
}

func (r *userRepository) UsernameExists(ctx context.Context, username string) (bool, error) {
	var count int

	query := `SELECT COUNT(*) FROM users WHERE username = $1`

	err := r.db.GetContext(ctx, &count, query, username)
	if err != nil {
		return false, fmt.Errorf("ошибка при проверке username: %w", err)
	}

	return count > 0, nil
}
