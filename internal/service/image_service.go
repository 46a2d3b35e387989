package service

import (
	"context"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/google/uuid"

	"myblog/internal/apperrors"
	"myblog/internal/models"
	"myblog/internal/repository"
	"myblog/internal/storage"
)

var allowedImageExtensions = []string{"jpeg", "jpg", "png", "bmp", "webp", "ico"}

// ImageService - посредник между загрузкой файлов и облачным хранилищем.
// Запись в image_mapper позволяет потом найти объект по публичному URL.
type ImageService interface {
	Upload(ctx context.Context, folderName, originalFilename string, file io.Reader, size int64) (string, error)
	DeleteByURL(ctx context.Context, imageURL string) error
}

type imageService struct {
	imageRepo repository.ImageMapperRepository
	storage   storage.Storage
}

func NewImageService(imageRepo repository.ImageMapperRepository, storage storage.Storage) ImageService {
	return &imageService{
		imageRepo: imageRepo,
		storage:   storage,
	}
}

func (s *imageService) Upload(ctx context.Context, folderName, originalFilename string, file io.Reader, size int64) (string, error) {
	parts := strings.Split(originalFilename, ".")
	ext := strings.ToLower(parts[len(parts)-1])

	allowed := false
	for _, allowedExt := range allowedImageExtensions {
		if ext == allowedExt {
			allowed = true
			break
		}
	}

	if !allowed {
		return "", apperrors.ImageFormatNotSupported("The uploaded file should be one of: jpeg, jpg, png, bmp, webp, ico")
	}

	fileName := uuid.New().String() + "." + ext

	objectName, imageURL, err := s.storage.UploadImage(ctx, folderName, fileName, file, size)
	if err != nil {
		return "", fmt.Errorf("ошибка загрузки изображения: %w", err)
	}

	mapper := &models.ImageMapper{
		ImageID:   objectName,
		ImageName: fileName,
		ImageURL:  imageURL,
	}

	if err := s.imageRepo.Create(ctx, mapper); err != nil {
		// откатываем загрузку, чтобы не оставить объект без записи
		s.storage.DeleteImage(ctx, objectName)
		return "", err
	}

	return imageURL, nil
}

// DeleteByURL - отсутствие записи не считается ошибкой
func (s *imageService) DeleteByURL(ctx context.Context, imageURL string) error {
	mapper, err := s.imageRepo.GetByURL(ctx, imageURL)
	if err != nil {
		return err
	}

	if mapper == nil {
		return nil
	}

	if err := s.storage.DeleteImage(ctx, mapper.ImageID); err != nil {
		log.Printf("Предупреждение: не удалось удалить объект из хранилища: %v", err)
	}

	return s.imageRepo.Delete(ctx, mapper.ImageID)
}
