package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"myblog/internal/apperrors"
	"myblog/internal/models"
)

type MockPostRepository struct {
	mock.Mock
}

func (m *MockPostRepository) Create(ctx context.Context, post *models.Post, hashtags []string) error {
	args := m.Called(ctx, post, hashtags)
	return args.Error(0)
}

func (m *MockPostRepository) GetByID(ctx context.Context, postID int) (*models.Post, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

func (m *MockPostRepository) GetAll(ctx context.Context) ([]models.Post, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Post), args.Error(1)
}

func (m *MockPostRepository) GetByUserID(ctx context.Context, userID int) ([]models.Post, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Post), args.Error(1)
}

func (m *MockPostRepository) Update(ctx context.Context, post *models.Post, hashtags []string) error {
	args := m.Called(ctx, post, hashtags)
	return args.Error(0)
}

func (m *MockPostRepository) Delete(ctx context.Context, postID int) error {
	args := m.Called(ctx, postID)
	return args.Error(0)
}

type MockHashtagRepository struct {
	mock.Mock
}

func (m *MockHashtagRepository) GetForPost(ctx context.Context, postID int) ([]models.Hashtag, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Hashtag), args.Error(1)
}

func (m *MockHashtagRepository) GetPostIDsByHashtag(ctx context.Context, hashtag string) ([]int, error) {
	args := m.Called(ctx, hashtag)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int), args.Error(1)
}

type MockCommentRepository struct {
	mock.Mock
}

func (m *MockCommentRepository) Create(ctx context.Context, comment *models.Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *MockCommentRepository) GetByID(ctx context.Context, commentID int) (*models.Comment, error) {
	args := m.Called(ctx, commentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Comment), args.Error(1)
}

func (m *MockCommentRepository) GetByPostID(ctx context.Context, postID int) ([]models.Comment, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Comment), args.Error(1)
}

func (m *MockCommentRepository) UpdateContent(ctx context.Context, commentID int, content string) error {
	args := m.Called(ctx, commentID, content)
	return args.Error(0)
}

func (m *MockCommentRepository) Delete(ctx context.Context, commentID int) error {
	args := m.Called(ctx, commentID)
	return args.Error(0)
}

type MockReactionRepository struct {
	mock.Mock
}

func (m *MockReactionRepository) Like(ctx context.Context, postID, userID int) error {
	args := m.Called(ctx, postID, userID)
	return args.Error(0)
}

func (m *MockReactionRepository) Dislike(ctx context.Context, postID, userID int) error {
	args := m.Called(ctx, postID, userID)
	return args.Error(0)
}

func (m *MockReactionRepository) RemoveLike(ctx context.Context, postID, userID int) error {
	args := m.Called(ctx, postID, userID)
	return args.Error(0)
}

func (m *MockReactionRepository) RemoveDislike(ctx context.Context, postID, userID int) error {
	args := m.Called(ctx, postID, userID)
	return args.Error(0)
}

func (m *MockReactionRepository) GetLikerIDs(ctx context.Context, postID int) ([]int, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int), args.Error(1)
}

func (m *MockReactionRepository) GetDislikerIDs(ctx context.Context, postID int) ([]int, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int), args.Error(1)
}

type postServiceMocks struct {
	posts     *MockPostRepository
	hashtags  *MockHashtagRepository
	comments  *MockCommentRepository
	reactions *MockReactionRepository
	users     *MockUserRepository
	images    *MockImageService
}

func newPostService() (PostService, *postServiceMocks) {
	m := &postServiceMocks{
		posts:     new(MockPostRepository),
		hashtags:  new(MockHashtagRepository),
		comments:  new(MockCommentRepository),
		reactions: new(MockReactionRepository),
		users:     new(MockUserRepository),
		images:    new(MockImageService),
	}
	svc := NewPostService(m.posts, m.hashtags, m.comments, m.reactions, m.users, m.images)
	return svc, m
}

// expectAssembly - заглушки для сборки PostView пустого поста
func (m *postServiceMocks) expectAssembly(postID int) {
	m.hashtags.On("GetForPost", mock.Anything, postID).Return([]models.Hashtag{}, nil)
	m.comments.On("GetByPostID", mock.Anything, postID).Return([]models.Comment{}, nil)
	m.reactions.On("GetLikerIDs", mock.Anything, postID).Return([]int{}, nil)
	m.reactions.On("GetDislikerIDs", mock.Anything, postID).Return([]int{}, nil)
}

func TestFindHashtags(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		expected []string
	}{
		{
			name:     "Хештег в начале строки",
			content:  "#lagos is beautiful",
			expected: []string{"lagos"},
		},
		{
			name:     "Несколько хештегов",
			content:  "my trip #travel to #lagos was great #travel",
			expected: []string{"travel", "lagos"},
		},
		{
			name:     "Дубликаты в разном регистре схлопываются",
			content:  "#Lagos #lagos #LAGOS",
			expected: []string{"lagos"},
		},
		{
			name:     "Решётка в середине слова не считается",
			content:  "foo#bar baz",
			expected: nil,
		},
		{
			name:     "Текст без хештегов",
			content:  "just a plain post",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FindHashtags(tt.content))
		})
	}
}

func TestPostService_CreatePost(t *testing.T) {
	svc, m := newPostService()

	m.posts.On("Create", mock.Anything, mock.Anything, []string{"lagos"}).
		Run(func(args mock.Arguments) {
			args.Get(1).(*models.Post).PostID = 10
		}).
		Return(nil)
	m.expectAssembly(10)

	view, err := svc.CreatePost(context.Background(), 1, "My trip", "Travelling to #lagos", nil)

	require.NoError(t, err)
	assert.Equal(t, 10, view.PostID)
	assert.Equal(t, 1, view.UserID)
	assert.Equal(t, "My trip", view.PostTitle)
	assert.Zero(t, view.TotalLikes)
	m.posts.AssertExpectations(t)
}

func TestPostService_UpdatePost(t *testing.T) {
	t.Run("Чужой пост редактировать нельзя", func(t *testing.T) {
		svc, m := newPostService()

		m.posts.On("GetByID", mock.Anything, 10).
			Return(&models.Post{PostID: 10, UserID: 1}, nil)

		newTitle := "edited"
		_, err := svc.UpdatePost(context.Background(), 10, 2, PostUpdateRequest{PostTitle: &newTitle})

		var appErr *apperrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "operation_forbidden_error", appErr.Code)
		m.posts.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Новая картинка вытесняет старую", func(t *testing.T) {
		svc, m := newPostService()

		oldImage := "http://minio:9000/myblog/post-images/old.png"
		m.posts.On("GetByID", mock.Anything, 10).
			Return(&models.Post{PostID: 10, UserID: 1, PostContent: "text", PostImage: &oldImage}, nil)
		m.images.On("DeleteByURL", mock.Anything, oldImage).Return(nil)
		m.posts.On("Update", mock.Anything, mock.Anything, mock.Anything).Return(nil)
		m.expectAssembly(10)

		newImage := "http://minio:9000/myblog/post-images/new.png"
		view, err := svc.UpdatePost(context.Background(), 10, 1, PostUpdateRequest{PostImage: &newImage})

		require.NoError(t, err)
		require.NotNil(t, view.PostImage)
		assert.Equal(t, newImage, *view.PostImage)
		m.images.AssertExpectations(t)
	})

	t.Run("Хештеги пересчитываются по новому тексту", func(t *testing.T) {
		svc, m := newPostService()

		m.posts.On("GetByID", mock.Anything, 10).
			Return(&models.Post{PostID: 10, UserID: 1, PostContent: "old #lagos"}, nil)
		m.posts.On("Update", mock.Anything, mock.Anything, []string{"travel"}).Return(nil)
		m.expectAssembly(10)

		newContent := "new #travel"
		_, err := svc.UpdatePost(context.Background(), 10, 1, PostUpdateRequest{PostContent: &newContent})

		require.NoError(t, err)
		m.posts.AssertExpectations(t)
	})
}

func TestPostService_DeletePost(t *testing.T) {
	t.Run("Удаление вместе с картинкой", func(t *testing.T) {
		svc, m := newPostService()

		image := "http://minio:9000/myblog/post-images/pic.png"
		m.posts.On("GetByID", mock.Anything, 10).
			Return(&models.Post{PostID: 10, UserID: 1, PostImage: &image}, nil)
		m.images.On("DeleteByURL", mock.Anything, image).Return(nil)
		m.posts.On("Delete", mock.Anything, 10).Return(nil)

		require.NoError(t, svc.DeletePost(context.Background(), 10, 1))
		m.images.AssertExpectations(t)
		m.posts.AssertExpectations(t)
	})

	t.Run("Чужой пост удалять нельзя", func(t *testing.T) {
		svc, m := newPostService()

		m.posts.On("GetByID", mock.Anything, 10).
			Return(&models.Post{PostID: 10, UserID: 1}, nil)

		err := svc.DeletePost(context.Background(), 10, 2)

		var appErr *apperrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "operation_forbidden_error", appErr.Code)
	})
}

func TestPostService_GetPostsByHashtag(t *testing.T) {
	svc, m := newPostService()

	// ввод нормализуется: решётка и регистр значения не имеют
	m.hashtags.On("GetPostIDsByHashtag", mock.Anything, "lagos").Return([]int{10}, nil)
	m.posts.On("GetByID", mock.Anything, 10).
		Return(&models.Post{PostID: 10, UserID: 1, PostTitle: "Trip"}, nil)
	m.expectAssembly(10)

	views, err := svc.GetPostsByHashtag(context.Background(), "#Lagos")

	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, 10, views[0].PostID)
	m.hashtags.AssertExpectations(t)
}

func TestPostService_AddComment(t *testing.T) {
	t.Run("Комментарий попадает в представление поста", func(t *testing.T) {
		svc, m := newPostService()

		m.posts.On("GetByID", mock.Anything, 10).
			Return(&models.Post{PostID: 10, UserID: 1}, nil)
		m.comments.On("Create", mock.Anything, mock.Anything).Return(nil)
		m.hashtags.On("GetForPost", mock.Anything, 10).Return([]models.Hashtag{}, nil)
		m.comments.On("GetByPostID", mock.Anything, 10).
			Return([]models.Comment{{CommentID: 5, UserID: 2, PostID: 10, CommentContent: "nice"}}, nil)
		m.reactions.On("GetLikerIDs", mock.Anything, 10).Return([]int{}, nil)
		m.reactions.On("GetDislikerIDs", mock.Anything, 10).Return([]int{}, nil)
		m.users.On("GetUserByID", mock.Anything, 2).
			Return(&models.User{UserID: 2, Username: "adaeze.okafor12345"}, nil)

		view, err := svc.AddComment(context.Background(), 10, 2, "nice")

		require.NoError(t, err)
		assert.Equal(t, 1, view.TotalComments)
		require.Len(t, view.Comments, 1)
		assert.Equal(t, "adaeze.okafor12345", view.Comments[0].Username)
		assert.Equal(t, "nice", view.Comments[0].Comment)
	})

	t.Run("Комментарий к несуществующему посту", func(t *testing.T) {
		svc, m := newPostService()

		m.posts.On("GetByID", mock.Anything, 99).
			Return(nil, apperrors.ItemNotFound("The post cannot be found."))

		_, err := svc.AddComment(context.Background(), 99, 2, "nice")

		var appErr *apperrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "item_not_found_error", appErr.Code)
		m.comments.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestPostService_EditComment(t *testing.T) {
	t.Run("Автор меняет текст", func(t *testing.T) {
		svc, m := newPostService()

		m.comments.On("GetByID", mock.Anything, 5).
			Return(&models.Comment{CommentID: 5, UserID: 2, PostID: 10, CommentContent: "old"}, nil)
		m.comments.On("UpdateContent", mock.Anything, 5, "new").Return(nil)

		comment, err := svc.EditComment(context.Background(), 5, 2, "new")

		require.NoError(t, err)
		assert.Equal(t, "new", comment.CommentContent)
	})

	t.Run("Чужой комментарий", func(t *testing.T) {
		svc, m := newPostService()

		m.comments.On("GetByID", mock.Anything, 5).
			Return(&models.Comment{CommentID: 5, UserID: 2}, nil)

		_, err := svc.EditComment(context.Background(), 5, 3, "new")

		var appErr *apperrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "operation_forbidden_error", appErr.Code)
		m.comments.AssertNotCalled(t, "UpdateContent", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestPostService_Reactions(t *testing.T) {
	t.Run("Лайк пересчитывает счётчики", func(t *testing.T) {
		svc, m := newPostService()

		m.posts.On("GetByID", mock.Anything, 10).
			Return(&models.Post{PostID: 10, UserID: 1}, nil)
		m.reactions.On("Like", mock.Anything, 10, 2).Return(nil)
		m.hashtags.On("GetForPost", mock.Anything, 10).Return([]models.Hashtag{}, nil)
		m.comments.On("GetByPostID", mock.Anything, 10).Return([]models.Comment{}, nil)
		m.reactions.On("GetLikerIDs", mock.Anything, 10).Return([]int{2}, nil)
		m.reactions.On("GetDislikerIDs", mock.Anything, 10).Return([]int{}, nil)
		m.users.On("GetUserByID", mock.Anything, 2).
			Return(&models.User{UserID: 2, Username: "adaeze.okafor12345"}, nil)

		view, err := svc.LikePost(context.Background(), 10, 2)

		require.NoError(t, err)
		assert.Equal(t, 1, view.TotalLikes)
		assert.Equal(t, []string{"adaeze.okafor12345"}, view.LikedBy)
	})

	t.Run("Лайк несуществующего поста", func(t *testing.T) {
		svc, m := newPostService()

		m.posts.On("GetByID", mock.Anything, 99).
			Return(nil, apperrors.ItemNotFound("The post cannot be found."))

		_, err := svc.LikePost(context.Background(), 99, 2)

		var appErr *apperrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "item_not_found_error", appErr.Code)
		m.reactions.AssertNotCalled(t, "Like", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Снятие несуществующего лайка", func(t *testing.T) {
		svc, m := newPostService()

		m.reactions.On("RemoveLike", mock.Anything, 10, 2).
			Return(apperrors.ItemNotFound("Like not found"))

		_, err := svc.RemoveLike(context.Background(), 10, 2)

		var appErr *apperrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "item_not_found_error", appErr.Code)
	})
}
