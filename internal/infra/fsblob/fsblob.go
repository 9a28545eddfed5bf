// Package fsblob хранит объекты на локальном диске в виде
// <root>/<container>/<name> рядом с файлом метаданных <name>.meta.json.
package fsblob

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/sunr3d/orders-zipper/internal/interfaces/infra"
	"github.com/sunr3d/orders-zipper/models"
)

const metaSuffix = ".meta.json"

var _ infra.BlobStorage = (*fsStorage)(nil)

type fsStorage struct {
	logger *zap.Logger
	root   string
}

type blobMeta struct {
	ContentType string `json:"content_type"`
}

func New(log *zap.Logger, root string) infra.BlobStorage {
	return &fsStorage{
		logger: log,
		root:   root,
	}
}

func (s *fsStorage) Put(ctx context.Context, target models.UploadTarget, data []byte) error {
	select {
	case <-ctx.Done():
		return fmt.Errorf("%w: %v", ErrContextDone, ctx.Err())
	default:
	}

	path, err := s.path(target.Container, target.Blob)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("%w: %v", ErrMkdirFailed, err)
	}

	if err := writeFileAtomic(path, data); err != nil {
		return err
	}

	meta, err := json.Marshal(blobMeta{ContentType: target.ContentType})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrFileWriteFailed, err)
	}
	if err := writeFileAtomic(path+metaSuffix, meta); err != nil {
		return err
	}

	s.logger.Info("объект сохранен на диск",
		zap.String("path", path),
		zap.Int("size", len(data)),
	)

	return nil
}

func (s *fsStorage) Get(ctx context.Context, container, name string) (*models.StoredBlob, error) {
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%w: %v", ErrContextDone, ctx.Err())
	default:
	}

	path, err := s.path(container, name)
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrBlobNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFileReadFailed, err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFileReadFailed, err)
	}

	blob := &models.StoredBlob{
		Container: container,
		Name:      name,
		Data:      data,
		UpdatedAt: info.ModTime(),
	}

	if raw, err := os.ReadFile(path + metaSuffix); err == nil {
		var meta blobMeta
		if err := json.Unmarshal(raw, &meta); err == nil {
			blob.ContentType = meta.ContentType
		}
	}

	return blob, nil
}

func (s *fsStorage) path(container, name string) (string, error) {
	if container == "" || name == "" {
		return "", ErrTargetEmpty
	}
	for _, part := range []string{container, name} {
		if strings.ContainsAny(part, `/\`) || part == "." || part == ".." {
			return "", fmt.Errorf("%w: %q", ErrInvalidName, part)
		}
	}

	return filepath.Join(s.root, container, name), nil
}

// writeFileAtomic пишет во временный файл и переименовывает его,
// чтобы читатель не увидел наполовину записанный объект.
func writeFileAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrFileCreateFailed, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: %v", ErrFileWriteFailed, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: %v", ErrFileWriteFailed, err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: %v", ErrRenameFailed, err)
	}

	return nil
}
