package api

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/sunr3d/orders-zipper/internal/config"
	"github.com/sunr3d/orders-zipper/internal/infra/inmem"
	"github.com/sunr3d/orders-zipper/internal/interfaces/infra"
	"github.com/sunr3d/orders-zipper/internal/services/zip_service"
	"github.com/sunr3d/orders-zipper/mocks"
	"github.com/sunr3d/orders-zipper/models"
)

const scenarioBody = `[{"FileName":"a.xml","FileContent":"PGE+PC9hPg=="},{"FileContent":"PGI+PC9iPg=="}]`

func setupTestAPI(t *testing.T) (*ZipAPI, infra.BlobStorage) {
	logger := zaptest.NewLogger(t)
	cfg := &config.Config{CompressionLevel: -1}

	storage := inmem.New(logger)
	service := zip_service.New(logger, cfg, storage)

	return New(service, logger), storage
}

func text(s string) *string {
	return &s
}

func postFiles(api *ZipAPI, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	api.UploadFiles(w, req)
	return w
}

func storedEntries(t *testing.T, storage infra.BlobStorage) map[string]string {
	t.Helper()

	blob, err := storage.Get(context.Background(), "ordersready", "files.zip")
	require.NoError(t, err)

	r, err := zip.NewReader(bytes.NewReader(blob.Data), int64(len(blob.Data)))
	require.NoError(t, err)

	out := make(map[string]string, len(r.File))
	for _, f := range r.File {
		rc, err := f.Open()
		require.NoError(t, err)
		data, err := io.ReadAll(rc)
		rc.Close()
		require.NoError(t, err)
		out[f.Name] = string(data)
	}
	return out
}

func TestZipAPI_UploadFiles_Success(t *testing.T) {
	api, storage := setupTestAPI(t)

	w := postFiles(api, scenarioBody)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Zip file successfully uploaded to Blob Storage.", w.Body.String())
	assert.Equal(t, map[string]string{
		"a.xml":     "<a></a>",
		"file2.xml": "<b></b>",
	}, storedEntries(t, storage))
}

func TestZipAPI_UploadFiles_UnknownFieldsIgnored(t *testing.T) {
	api, storage := setupTestAPI(t)

	w := postFiles(api, `[{"FileName":"x.xml","FileContent":"PHgvPg==","Extra":42}]`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, map[string]string{"x.xml": "<x/>"}, storedEntries(t, storage))
}

func TestZipAPI_UploadFiles_EmptyBody(t *testing.T) {
	for name, body := range map[string]string{"пустое": "", "пробелы": "  \n\t"} {
		t.Run(name, func(t *testing.T) {
			api, storage := setupTestAPI(t)

			w := postFiles(api, body)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, "Invalid input. The request body is null or empty.", w.Body.String())

			_, err := storage.Get(context.Background(), "ordersready", "files.zip")
			assert.ErrorIs(t, err, inmem.ErrBlobNotFound)
		})
	}
}

func TestZipAPI_UploadFiles_NilBody(t *testing.T) {
	api, _ := setupTestAPI(t)

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.Body = nil
	w := httptest.NewRecorder()
	api.UploadFiles(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, msgEmptyBody, w.Body.String())
}

func TestZipAPI_UploadFiles_InvalidJSON(t *testing.T) {
	tests := map[string]string{
		"мусор":      "invalid json",
		"объект":     `{"FileName":"a.xml","FileContent":"PGE+PC9hPg=="}`,
		"null":       "null",
		"тип":        `[{"FileName":1,"FileContent":"PGE+PC9hPg=="}]`,
		"обрезанный": `[{"FileName":"a.xml"`,
	}

	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			api, storage := setupTestAPI(t)

			w := postFiles(api, body)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, msgInvalidInput, w.Body.String())

			_, err := storage.Get(context.Background(), "ordersready", "files.zip")
			assert.ErrorIs(t, err, inmem.ErrBlobNotFound)
		})
	}
}

func TestZipAPI_UploadFiles_InvalidBase64KeepsExisting(t *testing.T) {
	api, storage := setupTestAPI(t)

	require.Equal(t, http.StatusOK, postFiles(api, scenarioBody).Code)
	before, err := storage.Get(context.Background(), "ordersready", "files.zip")
	require.NoError(t, err)

	w := postFiles(api, `[{"FileName":"a.xml","FileContent":"PGE+PC9hPg=="},{"FileContent":"@@not-base64@@"}]`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, msgInvalidInput, w.Body.String())

	after, err := storage.Get(context.Background(), "ordersready", "files.zip")
	require.NoError(t, err)
	assert.Equal(t, before.Data, after.Data)
}

func TestZipAPI_UploadFiles_MissingContent(t *testing.T) {
	api, _ := setupTestAPI(t)

	w := postFiles(api, `[{"FileName":"a.xml"}]`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestZipAPI_UploadFiles_EmptyContent(t *testing.T) {
	api, storage := setupTestAPI(t)

	w := postFiles(api, `[{"FileName":"e.xml","FileContent":""}]`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, map[string]string{"e.xml": ""}, storedEntries(t, storage))
}

func TestZipAPI_UploadFiles_Base64WithWhitespace(t *testing.T) {
	api, storage := setupTestAPI(t)

	w := postFiles(api, `[{"FileName":"a.xml","FileContent":"PGE+ PC9h\tPg==\r\n"}]`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, map[string]string{"a.xml": "<a></a>"}, storedEntries(t, storage))
}

func TestZipAPI_UploadFiles_BOMPrefixedBody(t *testing.T) {
	api, storage := setupTestAPI(t)

	w := postFiles(api, "\xEF\xBB\xBF"+scenarioBody)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, map[string]string{
		"a.xml":     "<a></a>",
		"file2.xml": "<b></b>",
	}, storedEntries(t, storage))
}

func TestZipAPI_UploadFiles_BOMOnlyBody(t *testing.T) {
	api, _ := setupTestAPI(t)

	w := postFiles(api, "\xEF\xBB\xBF")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, msgEmptyBody, w.Body.String())
}

func TestZipAPI_UploadFiles_Idempotent(t *testing.T) {
	api, storage := setupTestAPI(t)

	require.Equal(t, http.StatusOK, postFiles(api, scenarioBody).Code)
	first, err := storage.Get(context.Background(), "ordersready", "files.zip")
	require.NoError(t, err)

	require.Equal(t, http.StatusOK, postFiles(api, scenarioBody).Code)
	second, err := storage.Get(context.Background(), "ordersready", "files.zip")
	require.NoError(t, err)

	assert.Equal(t, first.Data, second.Data)
}

func TestZipAPI_UploadFiles_StorageError(t *testing.T) {
	logger := zaptest.NewLogger(t)
	storage := mocks.NewBlobStorage(t)
	storage.On("Put", mock.Anything, models.OrdersReadyTarget, mock.Anything).
		Return(errors.New("AuthenticationFailed: secret-account-key")).Once()

	api := New(zip_service.New(logger, &config.Config{CompressionLevel: -1}, storage), logger)

	w := postFiles(api, scenarioBody)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "secret-account-key")
}

func TestZipAPI_UploadFiles_ServiceError(t *testing.T) {
	service := mocks.NewZipService(t)
	service.On("Upload", mock.Anything, mock.Anything).
		Return(fmt.Errorf("%w: disk full", zip_service.ErrArchiveBuild)).Once()

	api := New(service, zaptest.NewLogger(t))

	w := postFiles(api, scenarioBody)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "disk full")
}

func TestZipAPI_UploadFiles_PassesDescriptorsInOrder(t *testing.T) {
	service := mocks.NewZipService(t)
	service.On("Upload", mock.Anything, []models.FileDescriptor{
		{FileName: "a.xml", FileContent: text("PGE+PC9hPg==")},
		{FileContent: text("PGI+PC9iPg==")},
	}).Return(nil).Once()

	api := New(service, zaptest.NewLogger(t))

	w := postFiles(api, scenarioBody)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestZipAPI_Health(t *testing.T) {
	api, _ := setupTestAPI(t)

	w := httptest.NewRecorder()
	api.Health(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}
