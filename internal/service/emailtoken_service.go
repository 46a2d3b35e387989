package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"myblog/internal/apperrors"
	"myblog/internal/config"
	"myblog/internal/models"
	"myblog/internal/repository"
)

// EmailTokenService - одноразовые токены подтверждения email.
// Жизненный цикл: Pending -> Verified -> Consumed (строка удаляется).
type EmailTokenService interface {
	Generate(ctx context.Context, email string, oldEmail *string) (string, error)
	Verify(ctx context.Context, token string) error
	Consume(ctx context.Context, token string) (string, *string, error)
}

type emailTokenService struct {
	tokenRepo repository.EmailTokenRepository
	cfg       *config.Config
}

func NewEmailTokenService(tokenRepo repository.EmailTokenRepository, cfg *config.Config) EmailTokenService {
	return &emailTokenService{
		tokenRepo: tokenRepo,
		cfg:       cfg,
	}
}

func generateToken() (string, error) {
	buf := make([]byte, 20)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("ошибка генерации токена: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

func (s *emailTokenService) Generate(ctx context.Context, email string, oldEmail *string) (string, error) {
	token, err := generateToken()
	if err != nil {
		return "", err
	}

	emailToken := &models.EmailToken{
		Token:     token,
		Email:     email,
		OldEmail:  oldEmail,
		ExpiresAt: time.Now().Add(s.cfg.EmailTokenTTL),
	}

	if err := s.tokenRepo.Create(ctx, emailToken); err != nil {
		return "", err
	}

	return token, nil
}

func (s *emailTokenService) Verify(ctx context.Context, token string) error {
	emailToken, err := s.tokenRepo.GetByToken(ctx, token)
	if err != nil {
		return err
	}

	if time.Now().After(emailToken.ExpiresAt) {
		return apperrors.InvalidEmailToken("The token is invalid or has expired.")
	}

	return s.tokenRepo.MarkVerified(ctx, token)
}

// Consume - требует Verified; удаляет строку и возвращает email
// (и old_email для сценария смены email)
func (s *emailTokenService) Consume(ctx context.Context, token string) (string, *string, error) {
	emailToken, err := s.tokenRepo.GetByToken(ctx, token)
	if err != nil {
		return "", nil, err
	}

	if time.Now().After(emailToken.ExpiresAt) {
		return "", nil, apperrors.InvalidEmailToken("The token is invalid or has expired.")
	}

	if !emailToken.IsVerified {
		return "", nil, apperrors.InvalidEmailToken("Your token is yet to be verified. Check your email for verification link.")
	}

	if err := s.tokenRepo.Delete(ctx, emailToken.ID); err != nil {
		return "", nil, err
	}

	return emailToken.Email, emailToken.OldEmail, nil
}
