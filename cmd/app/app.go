package app

import (
	"log"

	"myblog/internal/config"
	"myblog/internal/database"
	"myblog/internal/mailer"
	"myblog/internal/repository"
	"myblog/internal/service"
	"myblog/internal/storage"
)

func App(cfg *config.Config) (*database.DB, *repository.Repository, *service.Service) {
	// connection DB
	db, err := database.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("Не удалось подключиться к БД: %v", err)
	}

	// connection MinIO
	minioClient, err := storage.NewMinIOClient(cfg)
	if err != nil {
		log.Fatalf("Не удалось инициализировать MinIO: %v", err)
	}

	mail := mailer.NewSMTPMailer(cfg)

	// enabling dependencies
	repo := repository.NewRepository(db.DB)

	services := service.NewService(repo, cfg, minioClient, mail)

	return db, repo, services
}
