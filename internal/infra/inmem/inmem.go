package inmem

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/sunr3d/orders-zipper/internal/interfaces/infra"
	"github.com/sunr3d/orders-zipper/models"
)

var _ infra.BlobStorage = (*inmemStorage)(nil)

type inmemStorage struct {
	logger *zap.Logger
	blobs  map[string]*models.StoredBlob
	mu     sync.RWMutex
}

func New(log *zap.Logger) infra.BlobStorage {
	return &inmemStorage{
		logger: log,
		blobs:  make(map[string]*models.StoredBlob),
	}
}

func (s *inmemStorage) Put(ctx context.Context, target models.UploadTarget, data []byte) error {
	select {
	case <-ctx.Done():
		return fmt.Errorf("%w: %v", ErrContextDone, ctx.Err())
	default:
	}

	if target.Container == "" || target.Blob == "" {
		return ErrTargetEmpty
	}

	blob := &models.StoredBlob{
		Container:   target.Container,
		Name:        target.Blob,
		ContentType: target.ContentType,
		Data:        append([]byte(nil), data...),
		UpdatedAt:   time.Now(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.blobs[key(target.Container, target.Blob)] = blob
	s.logger.Info("объект сохранен в памяти",
		zap.String("container", target.Container),
		zap.String("blob", target.Blob),
		zap.Int("size", len(data)),
	)

	return nil
}

func (s *inmemStorage) Get(ctx context.Context, container, name string) (*models.StoredBlob, error) {
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%w: %v", ErrContextDone, ctx.Err())
	default:
	}

	if container == "" || name == "" {
		return nil, ErrTargetEmpty
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	blob, exists := s.blobs[key(container, name)]
	if !exists {
		return nil, ErrBlobNotFound
	}

	out := *blob
	out.Data = append([]byte(nil), blob.Data...)
	return &out, nil
}

func key(container, name string) string {
	return container + "/" + name
}
