package initializers

import (
	"context"

	log "github.com/sirupsen/logrus"

	filestorage "talent-bridge-backend/lib/file-storage"
	s3client "talent-bridge-backend/s3"
)

func InitS3() {
	minioClient, err := s3client.NewClient()
	if err != nil {
		log.WithError(err).Error("Ошибка инициализации клиента S3")
		return
	}

	// Проверка соединения
	_, err = minioClient.ListBuckets(context.Background())
	if err != nil {
		log.WithError(err).Error("S3 соединение не удалось — ListBuckets вернул ошибку")
	}

	if err = s3client.MakeBucket(context.Background()); err != nil {
		log.WithError(err).Error("Ошибка создания бакета S3")
	}

	filestorage.NewHandler(minioClient)
	log.Info("S3 клиент успешно инициализирован")
}
