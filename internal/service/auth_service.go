package service

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"myblog/internal/apperrors"
	"myblog/internal/config"
	"myblog/internal/models"
	"myblog/internal/repository"
)

// Claims - полезная нагрузка bearer токена
type Claims struct {
	UserID  int
	IsAdmin bool
}

type AuthService interface {
	Login(ctx context.Context, identifier, password string) (string, error)
	GenerateToken(user *models.User) (string, error)
	DecodeToken(tokenString string) (*Claims, error)
}

type authService struct {
	userRepo repository.UserRepository
	cfg      *config.Config
}

func NewAuthService(userRepo repository.UserRepository, cfg *config.Config) AuthService {
	return &authService{
		userRepo: userRepo,
		cfg:      cfg,
	}
}

// Login - идентификатор может быть email или username
func (s *authService) Login(ctx context.Context, identifier, password string) (string, error) {
	user, err := s.userRepo.GetUserByEmailOrUsername(ctx, identifier)
	if err != nil {
		return "", apperrors.InvalidCredentials("Login fail. Check your username, email, or password.")
	}

	if !user.IsActive {
		return "", apperrors.UserNotActive("User is not yet activated. Check your email for activation link or try to reactivate your account.")
	}

	if user.AcctDeactivated {
		return "", apperrors.AccountDeactivated("Your account has been deactivated by the admin.")
	}

	// checking that the password hash is the same
	err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password))
	if err != nil {
		return "", apperrors.InvalidCredentials("Login fail. Check your username, email, or password.")
	}

	return s.GenerateToken(user)
}

func (s *authService) GenerateToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id":  user.UserID,
		"is_admin": user.IsAdmin,
		"exp":      time.Now().Add(s.cfg.AccessTokenDuration).Unix(),
		"iat":      time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString([]byte(s.cfg.JWTSecretKey))
	if err != nil {
		return "", fmt.Errorf("ошибка подписи токена: %w", err)
	}

	return tokenString, nil
}

func (s *authService) DecodeToken(tokenString string) (*Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("неожиданный метод подписи: %v", token.Header["alg"])
		}
		return []byte(s.cfg.JWTSecretKey), nil
	})
	if err != nil {
		return nil, apperrors.JWTDecodeError(err.Error())
	}

	if !token.Valid {
		return nil, apperrors.JWTDecodeError("token is invalid")
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, apperrors.JWTDecodeError("unexpected claims format")
	}

	userID, ok1 := mapClaims["user_id"].(float64)
	isAdmin, ok2 := mapClaims["is_admin"].(bool)
	if !ok1 || !ok2 {
		return nil, apperrors.JWTDecodeError("unexpected claims format")
	}

	return &Claims{
		UserID:  int(userID),
		IsAdmin: isAdmin,
	}, nil
}
