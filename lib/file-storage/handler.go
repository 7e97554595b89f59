package filestorage

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"

	"talent-bridge-backend/config"
)

type Provider interface {
	UploadResume(ctx context.Context, fileName string, fileReader io.Reader, fileSize int64) (fileID string, err error)
	GetResume(ctx context.Context, fileID string) ([]byte, error)
}

var Instance Provider

func NewHandler(client *minio.Client) {
	Instance = &impl{
		s3client: client,
	}
}

type impl struct {
	s3client *minio.Client
}

func (i impl) UploadResume(ctx context.Context, fileName string, fileReader io.Reader, fileSize int64) (string, error) {
	fileID := fmt.Sprintf("resume/%s-%s", uuid.New().String(), fileName)
	_, err := i.s3client.PutObject(ctx, config.Conf.S3.BucketName, fileID, fileReader, fileSize,
		minio.PutObjectOptions{ContentType: "application/octet-stream"})
	if err != nil {
		return "", err
	}
	return fileID, nil
}

func (i impl) GetResume(ctx context.Context, fileID string) ([]byte, error) {
	object, err := i.s3client.GetObject(ctx, config.Conf.S3.BucketName, fileID, minio.GetObjectOptions{})
	if err != nil {
		return nil, err
	}
	defer object.Close()
	buf := bytes.Buffer{}
	if _, err = io.Copy(&buf, object); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
