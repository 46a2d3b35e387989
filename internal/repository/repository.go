package repository

import (
	"context"
	"myblog/internal/models"

	"github.com/jmoiron/sqlx"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User, password string) error
	GetUserByID(ctx context.Context, userID int) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	GetUserByEmailOrUsername(ctx context.Context, identifier string) (*models.User, error)
	GetAllUsers(ctx context.Context) ([]models.User, error)
	UpdateProfile(ctx context.Context, user *models.User) error
	UpdatePassword(ctx context.Context, userID int, password string) error
	UpdateEmail(ctx context.Context, oldEmail, newEmail string) error
	SetActive(ctx context.Context, userID int, active bool) error
	SetDeactivated(ctx context.Context, userID int, deactivated bool) error
	DeleteUserByEmail(ctx context.Context, email string) error
	UsernameExists(ctx context.Context, username string) (bool, error)
}

type EmailTokenRepository interface {
	Create(ctx context.Context, token *models.EmailToken) error
	GetByToken(ctx context.Context, token string) (*models.EmailToken, error)
	MarkVerified(ctx context.Context, token string) error
	Delete(ctx context.Context, id int) error
}

type PostRepository interface {
	Create(ctx context.Context, post *models.Post, hashtags []string) error
	GetByID(ctx context.Context, postID int) (*models.Post, error)
	GetAll(ctx context.Context) ([]models.Post, error)
	GetByUserID(ctx context.Context, userID int) ([]models.Post, error)
	Update(ctx context.Context, post *models.Post, hashtags []string) error
	Delete(ctx context.Context, postID int) error
}

type HashtagRepository interface {
	GetForPost(ctx context.Context, postID int) ([]models.Hashtag, error)
	GetPostIDsByHashtag(ctx context.Context, hashtag string) ([]int, error)
}

type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	GetByID(ctx context.Context, commentID int) (*models.Comment, error)
	GetByPostID(ctx context.Context, postID int) ([]models.Comment, error)
	UpdateContent(ctx context.Context, commentID int, content string) error
	Delete(ctx context.Context, commentID int) error
}

type ReactionRepository interface {
	Like(ctx context.Context, postID, userID int) error
	Dislike(ctx context.Context, postID, userID int) error
	RemoveLike(ctx context.Context, postID, userID int) error
	RemoveDislike(ctx context.Context, postID, userID int) error
	GetLikerIDs(ctx context.Context, postID int) ([]int, error)
	GetDislikerIDs(ctx context.Context, postID int) ([]int, error)
}

type ImageMapperRepository interface {
	Create(ctx context.Context, mapper *models.ImageMapper) error
	GetByURL(ctx context.Context, imageURL string) (*models.ImageMapper, error)
	Delete(ctx context.Context, imageID string) error
}

type Repository struct {
	User        UserRepository
	EmailToken  EmailTokenRepository
	Post        PostRepository
	Hashtag     HashtagRepository
	Comment     CommentRepository
	Reaction    ReactionRepository
	ImageMapper ImageMapperRepository
	Tables      TablesRepository
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{
		User:        NewUserRepository(db),
		EmailToken:  NewEmailTokenRepository(db),
		Post:        NewPostRepository(db),
		Hashtag:     NewHashtagRepository(db),
		Comment:     NewCommentRepository(db),
		Reaction:    NewReactionRepository(db),
		ImageMapper: NewImageMapperRepository(db),
		Tables:      NewTablesRepository(db),
	}
}
