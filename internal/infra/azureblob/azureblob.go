package azureblob

import (
	"context"
	"fmt"
	"io"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/blob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/bloberror"
	"go.uber.org/zap"

	"github.com/sunr3d/orders-zipper/internal/interfaces/infra"
	"github.com/sunr3d/orders-zipper/models"
)

var _ infra.BlobStorage = (*azureStorage)(nil)

// blobClient - подмножество методов *azblob.Client, которые используются хранилищем.
type blobClient interface {
	UploadBuffer(ctx context.Context, containerName, blobName string, buffer []byte, o *azblob.UploadBufferOptions) (azblob.UploadBufferResponse, error)
	DownloadStream(ctx context.Context, containerName, blobName string, o *azblob.DownloadStreamOptions) (azblob.DownloadStreamResponse, error)
}

type azureStorage struct {
	logger *zap.Logger
	client blobClient
}

// New создает клиент по строке подключения. Повторы запросов в SDK отключены:
// ошибка загрузки сразу возвращается вызывающему.
func New(log *zap.Logger, connectionString string) (infra.BlobStorage, error) {
	if connectionString == "" {
		return nil, ErrNoConnectionString
	}

	client, err := azblob.NewClientFromConnectionString(connectionString, &azblob.ClientOptions{
		ClientOptions: azcore.ClientOptions{
			Retry: policy.RetryOptions{MaxRetries: -1},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrClientCreate, err)
	}

	return newWithClient(log, client), nil
}

func newWithClient(log *zap.Logger, client blobClient) *azureStorage {
	return &azureStorage{
		logger: log,
		client: client,
	}
}

func (s *azureStorage) Put(ctx context.Context, target models.UploadTarget, data []byte) error {
	if target.Container == "" || target.Blob == "" {
		return ErrTargetEmpty
	}

	opts := &azblob.UploadBufferOptions{}
	if target.ContentType != "" {
		opts.HTTPHeaders = &blob.HTTPHeaders{BlobContentType: to.Ptr(target.ContentType)}
	}

	if _, err := s.client.UploadBuffer(ctx, target.Container, target.Blob, data, opts); err != nil {
		return fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}

	s.logger.Info("объект загружен в Azure Storage",
		zap.String("container", target.Container),
		zap.String("blob", target.Blob),
		zap.Int("size", len(data)),
	)

	return nil
}

func (s *azureStorage) Get(ctx context.Context, container, name string) (*models.StoredBlob, error) {
	if container == "" || name == "" {
		return nil, ErrTargetEmpty
	}

	resp, err := s.client.DownloadStream(ctx, container, name, nil)
	if err != nil {
		if bloberror.HasCode(err, bloberror.BlobNotFound, bloberror.ContainerNotFound) {
			return nil, ErrBlobNotFound
		}
		return nil, fmt.Errorf("%w: %v", ErrDownloadFailed, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDownloadFailed, err)
	}

	stored := &models.StoredBlob{
		Container: container,
		Name:      name,
		Data:      data,
	}
	if resp.ContentType != nil {
		stored.ContentType = *resp.ContentType
	}
	if resp.LastModified != nil {
		stored.UpdatedAt = *resp.LastModified
	}

	return stored, nil
}
