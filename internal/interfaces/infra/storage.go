package infra

import (
	"context"

	"github.com/sunr3d/orders-zipper/models"
)

//go:generate go run github.com/vektra/mockery/v2@v2.53.2 --name=BlobStorage --output=../../../mocks
type BlobStorage interface {
	// Put перезаписывает объект целиком.
	Put(ctx context.Context, target models.UploadTarget, data []byte) error
	// Get нужен для проверки загруженного архива в тестах, сервис его не вызывает.
	Get(ctx context.Context, container, name string) (*models.StoredBlob, error)
}
