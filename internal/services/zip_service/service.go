// Package zip_service упаковывает присланные файлы в zip-архив и загружает
// его в хранилище.
//
// Запрос целиком, все декодированные файлы и готовый архив держатся в памяти,
// ограничения на размер нет. Сервис рассчитан на небольшие пакеты файлов.
package zip_service

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/klauspost/compress/flate"
	"go.uber.org/zap"

	"github.com/sunr3d/orders-zipper/internal/config"
	"github.com/sunr3d/orders-zipper/internal/interfaces/infra"
	"github.com/sunr3d/orders-zipper/internal/interfaces/services"
	"github.com/sunr3d/orders-zipper/models"
)

var _ services.ZipService = (*zipService)(nil)

type zipService struct {
	storage  infra.BlobStorage
	logger   *zap.Logger
	target   models.UploadTarget
	level    int
	validate *validator.Validate
}

func New(log *zap.Logger, cfg *config.Config, storage infra.BlobStorage) services.ZipService {
	return &zipService{
		storage:  storage,
		logger:   log,
		target:   models.OrdersReadyTarget,
		level:    cfg.CompressionLevel,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// EntryName возвращает имя файла в архиве; index начинается с 1.
func EntryName(file models.FileDescriptor, index int) string {
	if file.FileName != "" {
		return file.FileName
	}
	return "file" + strconv.Itoa(index) + ".xml"
}

func (s *zipService) Upload(ctx context.Context, files []models.FileDescriptor) error {
	data, entries, err := s.BuildArchive(ctx, files)
	if err != nil {
		return err
	}

	if err := s.storage.Put(ctx, s.target, data); err != nil {
		return fmt.Errorf("%w: %v", ErrUpload, err)
	}

	s.logger.Info("архив загружен в хранилище",
		zap.String("container", s.target.Container),
		zap.String("blob", s.target.Blob),
		zap.Int("files", len(entries)),
		zap.Int("size", len(data)),
	)

	return nil
}

func (s *zipService) BuildArchive(ctx context.Context, files []models.FileDescriptor) ([]byte, []models.ArchiveEntry, error) {
	select {
	case <-ctx.Done():
		return nil, nil, fmt.Errorf("%w: %v", ErrContextDone, ctx.Err())
	default:
	}

	entries, err := s.decode(ctx, files)
	if err != nil {
		return nil, nil, err
	}

	data, err := s.buildZip(entries)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrArchiveBuild, err)
	}

	return data, entries, nil
}

func (s *zipService) decode(ctx context.Context, files []models.FileDescriptor) ([]models.ArchiveEntry, error) {
	entries := make([]models.ArchiveEntry, 0, len(files))

	for i, file := range files {
		index := i + 1

		if err := s.validate.StructCtx(ctx, file); err != nil {
			return nil, fmt.Errorf("%w: файл №%d: %v", ErrInvalidDescriptor, index, err)
		}

		data, err := base64.StdEncoding.DecodeString(stripBase64Whitespace(*file.FileContent))
		if err != nil {
			return nil, fmt.Errorf("%w: файл №%d: %v", ErrInvalidContent, index, err)
		}

		entries = append(entries, models.ArchiveEntry{
			Name: EntryName(file, index),
			Data: data,
		})
	}

	return entries, nil
}

// stripBase64Whitespace убирает пробелы, табы и переводы строк, которые
// отправители вставляют в длинные base64-строки.
func stripBase64Whitespace(s string) string {
	if !strings.ContainsAny(s, " \t\r\n") {
		return s
	}
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\r', '\n':
			return -1
		}
		return r
	}, s)
}

// buildZip пишет записи в порядке следования. Время модификации не
// заполняется, поэтому одинаковый вход дает побайтно одинаковый архив.
// Повторяющиеся имена не отсекаются: в архив попадают обе записи.
func (s *zipService) buildZip(entries []models.ArchiveEntry) ([]byte, error) {
	var buf bytes.Buffer

	zipWriter := zip.NewWriter(&buf)
	zipWriter.RegisterCompressor(zip.Deflate, func(out io.Writer) (io.WriteCloser, error) {
		return flate.NewWriter(out, s.level)
	})

	for _, entry := range entries {
		w, err := zipWriter.Create(entry.Name)
		if err != nil {
			return nil, fmt.Errorf("запись %q: %w", entry.Name, err)
		}

		if _, err := w.Write(entry.Data); err != nil {
			return nil, fmt.Errorf("запись %q: %w", entry.Name, err)
		}
	}

	if err := zipWriter.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
