package storage

import (
	"context"
	"fmt"
	"io"
	"mime"
	"path/filepath"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"myblog/internal/config"
)

type Storage interface {
	UploadImage(ctx context.Context, folderName, fileName string, file io.Reader, size int64) (string, string, error)
	DeleteImage(ctx context.Context, objectName string) error
}

type MinIOClient struct {
	client *minio.Client
	config *config.Config
}

func NewMinIOClient(cfg *config.Config) (*MinIOClient, error) {
	client, err := minio.New(cfg.MinIO.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinIO.AccessKey, cfg.MinIO.SecretKey, ""),
		Secure: cfg.MinIO.UseSSL,
		Region: cfg.MinIO.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("ошибка при создании MinIO клиента: %w", err)
	}

	ctx := context.Background()

	exists, err := client.BucketExists(ctx, cfg.MinIO.BucketName)
	if err != nil {
		return nil, fmt.Errorf("ошибка при проверке бакета: %w", err)
	}

	if !exists {
		err = client.MakeBucket(ctx, cfg.MinIO.BucketName, minio.MakeBucketOptions{Region: cfg.MinIO.Region})
		if err != nil {
			return nil, fmt.Errorf("ошибка при создании бакета: %w", err)
		}
	}

	return &MinIOClient{client: client, config: cfg}, nil
}

// UploadImage - кладёт файл в бакет под folderName/fileName и возвращает
// имя объекта и публичный URL
func (m *MinIOClient) UploadImage(ctx context.Context, folderName, fileName string, file io.Reader, size int64) (string, string, error) {
	fileExt := strings.ToLower(filepath.Ext(fileName))

	contentType := mime.TypeByExtension(fileExt)
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	objectName := fmt.Sprintf("%s/%s", folderName, fileName)

	_, err := m.client.PutObject(ctx, m.config.MinIO.BucketName, objectName, file, size,
		minio.PutObjectOptions{
			ContentType: contentType,
			UserMetadata: map[string]string{
				"original-filename": fileName,
			},
		})
	if err != nil {
		return "", "", fmt.Errorf("ошибка загрузки в MinIO: %w", err)
	}

	scheme := "http"
	if m.config.MinIO.UseSSL {
		scheme = "https"
	}

	imageURL := fmt.Sprintf("%s://%s/%s/%s",
		scheme,
		m.config.MinIO.Endpoint,
		m.config.MinIO.BucketName,
		objectName)

	return objectName, imageURL, nil
}

func (m *MinIOClient) DeleteImage(ctx context.Context, objectName string) error {
	err := m.client.RemoveObject(ctx, m.config.MinIO.BucketName, objectName,
		minio.RemoveObjectOptions{})
	if err != nil {
		return fmt.Errorf("ошибка удаления из MinIO: %w", err)
	}
	return nil
}
