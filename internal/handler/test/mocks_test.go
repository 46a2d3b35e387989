package test

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"
	"myblog/internal/models"
	"myblog/internal/service"
)

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, identifier, password string) (string, error) {
	args := m.Called(ctx, identifier, password)
	return args.String(0), args.Error(1)
}

func (m *MockAuthService) GenerateToken(user *models.User) (string, error) {
	args := m.Called(user)
	return args.String(0), args.Error(1)
}

func (m *MockAuthService) DecodeToken(tokenString string) (*service.Claims, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Claims), args.Error(1)
}

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Signup(ctx context.Context, req service.SignupRequest) (*models.User, string, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).(*models.User), args.String(1), args.Error(2)
}

func (m *MockUserService) ActivateAccount(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *MockUserService) GetProfile(ctx context.Context, userID int) (*models.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserService) UpdateProfile(ctx context.Context, userID int, req service.UpdateProfileRequest) (*models.User, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserService) ForgetPassword(ctx context.Context, email string) (string, error) {
	args := m.Called(ctx, email)
	return args.String(0), args.Error(1)
}

func (m *MockUserService) VerifyResetToken(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *MockUserService) UpdatePasswordByToken(ctx context.Context, token, newPassword string) error {
	args := m.Called(ctx, token, newPassword)
	return args.Error(0)
}

func (m *MockUserService) ChangePassword(ctx context.Context, userID int, newPassword string) error {
	args := m.Called(ctx, userID, newPassword)
	return args.Error(0)
}

func (m *MockUserService) RequestEmailChange(ctx context.Context, userID int, newEmail string) (string, error) {
	args := m.Called(ctx, userID, newEmail)
	return args.String(0), args.Error(1)
}

func (m *MockUserService) ConfirmEmailChange(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *MockUserService) GetAllUsers(ctx context.Context) ([]models.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserService) SetDeactivated(ctx context.Context, userID int, deactivated bool) error {
	args := m.Called(ctx, userID, deactivated)
	return args.Error(0)
}

func (m *MockUserService) DeleteUserByEmail(ctx context.Context, email string) error {
	args := m.Called(ctx, email)
	return args.Error(0)
}

type MockPostService struct {
	mock.Mock
}

func (m *MockPostService) postView(args mock.Arguments) (*models.PostView, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PostView), args.Error(1)
}

func (m *MockPostService) postViews(args mock.Arguments) ([]models.PostView, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.PostView), args.Error(1)
}

func (m *MockPostService) CreatePost(ctx context.Context, userID int, title, content string, imageURL *string) (*models.PostView, error) {
	return m.postView(m.Called(ctx, userID, title, content, imageURL))
}

func (m *MockPostService) GetPost(ctx context.Context, postID int) (*models.PostView, error) {
	return m.postView(m.Called(ctx, postID))
}

func (m *MockPostService) GetAllPosts(ctx context.Context) ([]models.PostView, error) {
	return m.postViews(m.Called(ctx))
}

func (m *MockPostService) GetUserPosts(ctx context.Context, userID int) ([]models.PostView, error) {
	return m.postViews(m.Called(ctx, userID))
}

func (m *MockPostService) UpdatePost(ctx context.Context, postID, userID int, req service.PostUpdateRequest) (*models.PostView, error) {
	return m.postView(m.Called(ctx, postID, userID, req))
}

func (m *MockPostService) DeletePost(ctx context.Context, postID, userID int) error {
	args := m.Called(ctx, postID, userID)
	return args.Error(0)
}

func (m *MockPostService) GetPostsByHashtag(ctx context.Context, hashtag string) ([]models.PostView, error) {
	return m.postViews(m.Called(ctx, hashtag))
}

func (m *MockPostService) AddComment(ctx context.Context, postID, userID int, content string) (*models.PostView, error) {
	return m.postView(m.Called(ctx, postID, userID, content))
}

func (m *MockPostService) EditComment(ctx context.Context, commentID, userID int, content string) (*models.Comment, error) {
	args := m.Called(ctx, commentID, userID, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Comment), args.Error(1)
}

func (m *MockPostService) DeleteComment(ctx context.Context, commentID, userID int) error {
	args := m.Called(ctx, commentID, userID)
	return args.Error(0)
}

func (m *MockPostService) LikePost(ctx context.Context, postID, userID int) (*models.PostView, error) {
	return m.postView(m.Called(ctx, postID, userID))
}

func (m *MockPostService) RemoveLike(ctx context.Context, postID, userID int) (*models.PostView, error) {
	return m.postView(m.Called(ctx, postID, userID))
}

func (m *MockPostService) DislikePost(ctx context.Context, postID, userID int) (*models.PostView, error) {
	return m.postView(m.Called(ctx, postID, userID))
}

func (m *MockPostService) RemoveDislike(ctx context.Context, postID, userID int) (*models.PostView, error) {
	return m.postView(m.Called(ctx, postID, userID))
}

type MockImageService struct {
	mock.Mock
}

func (m *MockImageService) Upload(ctx context.Context, folderName, originalFilename string, file io.Reader, size int64) (string, error) {
	args := m.Called(ctx, folderName, originalFilename, file, size)
	return args.String(0), args.Error(1)
}

func (m *MockImageService) DeleteByURL(ctx context.Context, imageURL string) error {
	args := m.Called(ctx, imageURL)
	return args.Error(0)
}

type MockTablesService struct {
	mock.Mock
}

func (m *MockTablesService) SchemaStatus(ctx context.Context) (*service.SchemaStatus, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.SchemaStatus), args.Error(1)
}
