package service

import (
	"myblog/internal/config"
	"myblog/internal/mailer"
	"myblog/internal/repository"
	"myblog/internal/storage"
)

type Service struct {
	Auth       AuthService
	User       UserService
	Post       PostService
	Image      ImageService
	EmailToken EmailTokenService
	Tables     TablesService
}

func NewService(rep *repository.Repository, cfg *config.Config, storage storage.Storage, mail mailer.Mailer) *Service {
	emailTokens := NewEmailTokenService(rep.EmailToken, cfg)
	images := NewImageService(rep.ImageMapper, storage)

	return &Service{
		Auth:       NewAuthService(rep.User, cfg),
		User:       NewUserService(rep.User, emailTokens, images, mail, cfg),
		Post:       NewPostService(rep.Post, rep.Hashtag, rep.Comment, rep.Reaction, rep.User, images),
		Image:      images,
		EmailToken: emailTokens,
		Tables:     NewTablesService(rep.Tables),
	}
}
