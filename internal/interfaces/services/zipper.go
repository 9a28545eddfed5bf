package services

import (
	"context"

	"github.com/sunr3d/orders-zipper/models"
)

//go:generate go run github.com/vektra/mockery/v2@v2.53.2 --name=ZipService --output=../../../mocks
type ZipService interface {
	BuildArchive(ctx context.Context, files []models.FileDescriptor) ([]byte, []models.ArchiveEntry, error)
	Upload(ctx context.Context, files []models.FileDescriptor) error
}
