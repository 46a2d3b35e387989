package service

import (
	"context"

	"github.com/stretchr/testify/mock"
	"myblog/internal/models"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateUser(ctx context.Context, user *models.User, password string) error {
	args := m.Called(ctx, user, password)
	return args.Error(0)
}

func (m *MockUserRepository) GetUserByID(ctx context.Context, userID int) (*models.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetUserByEmailOrUsername(ctx context.Context, identifier string) (*models.User, error) {
	args := m.Called(ctx, identifier)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetAllUsers(ctx context.Context) ([]models.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserRepository) UpdateProfile(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdatePassword(ctx context.Context, userID int, password string) error {
	args := m.Called(ctx, userID, password)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateEmail(ctx context.Context, oldEmail, newEmail string) error {
	args := m.Called(ctx, oldEmail, newEmail)
	return args.Error(0)
}

func (m *MockUserRepository) SetActive(ctx context.Context, userID int, active bool) error {
	args := m.Called(ctx, userID, active)
	return args.Error(0)
}

func (m *MockUserRepository) SetDeactivated(ctx context.Context, userID int, deactivated bool) error {
	args := m.Called(ctx, userID, deactivated)
	return args.Error(0)
}

func (m *MockUserRepository) DeleteUserByEmail(ctx context.Context, email string) error {
	args := m.Called(ctx, email)
	return args.Error(0)
}

func (m *MockUserRepository) UsernameExists(ctx context.Context, username string) (bool, error) {
	args := m.Called(ctx, username)
	return args.Bool(0), args.Error(1)
}

type MockEmailTokenRepository struct {
	mock.Mock
}

func (m *MockEmailTokenRepository) Create(ctx context.Context, token *models.EmailToken) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *MockEmailTokenRepository) GetByToken(ctx context.Context, token string) (*models.EmailToken, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.EmailToken), args.Error(1)
}

func (m *MockEmailTokenRepository) MarkVerified(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *MockEmailTokenRepository) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockEmailTokenService struct {
	mock.Mock
}

func (m *MockEmailTokenService) Generate(ctx context.Context, email string, oldEmail *string) (string, error) {
	args := m.Called(ctx, email, oldEmail)
	return args.String(0), args.Error(1)
}

func (m *MockEmailTokenService) Verify(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *MockEmailTokenService) Consume(ctx context.Context, token string) (string, *string, error) {
	args := m.Called(ctx, token)
	if args.Get(1) == nil {
		return args.String(0), nil, args.Error(2)
	}
	return args.String(0), args.Get(1).(*string), args.Error(2)
}

// noopMailer - письма уходят в фоне, в тестах их просто глотаем
type noopMailer struct{}

func (noopMailer) Send(to []string, subject, html string) error {
	return nil
}
