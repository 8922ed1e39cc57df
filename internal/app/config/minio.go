package config

import (
	"context"
	"log"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

var MinioClient *minio.Client

// InitMinio подключается к MinIO и гарантирует существование bucket для рисунков.
func InitMinio(cfg *Config) *minio.Client {
	client, err := minio.New(cfg.MinioEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinioAccessKey, cfg.MinioSecretKey, ""),
		Secure: false,
	})
	if err != nil {
		log.Fatalf("Ошибка подключения к MinIO: %v", err)
	}

	MinioClient = client
	log.Println("Подключение к MinIO успешно")

	ctx := context.Background()
	exists, err := MinioClient.BucketExists(ctx, cfg.MinioBucket)
	if err != nil {
		log.Fatalf("Ошибка проверки bucket: %v", err)
	}
	if !exists {
		if err := MinioClient.MakeBucket(ctx, cfg.MinioBucket, minio.MakeBucketOptions{}); err != nil {
			log.Fatalf("Ошибка создания bucket: %v", err)
		}
		log.Printf("Bucket %q создан", cfg.MinioBucket)
	} else {
		log.Printf("Bucket %q найден", cfg.MinioBucket)
	}

	return client
}
