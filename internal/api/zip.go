package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/sunr3d/orders-zipper/internal/interfaces/services"
	"github.com/sunr3d/orders-zipper/internal/middleware"
	"github.com/sunr3d/orders-zipper/internal/services/zip_service"
	"github.com/sunr3d/orders-zipper/models"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

type ZipAPI struct {
	service services.ZipService
	logger  *zap.Logger
}

func New(service services.ZipService, logger *zap.Logger) *ZipAPI {
	return &ZipAPI{
		service: service,
		logger:  logger,
	}
}

// POST /
func (h *ZipAPI) UploadFiles(w http.ResponseWriter, r *http.Request) {
	log := h.logger.With(zap.String("request_id", middleware.RequestIDFromContext(r.Context())))
	log.Info("получен запрос на упаковку файлов")

	var body []byte
	if r.Body != nil {
		var err error
		body, err = io.ReadAll(r.Body)
		if err != nil {
			log.Error("ошибка чтения тела запроса", zap.Error(err))
			writeInternalError(w)
			return
		}
	}

	body = bytes.TrimPrefix(body, utf8BOM)

	if len(bytes.TrimSpace(body)) == 0 {
		writeText(w, http.StatusBadRequest, msgEmptyBody)
		return
	}

	var files []models.FileDescriptor
	if err := json.Unmarshal(body, &files); err != nil {
		log.Error("ошибка парсинга JSON запроса", zap.Error(err))
		writeText(w, http.StatusBadRequest, msgInvalidInput)
		return
	}
	if files == nil {
		log.Error("ошибка парсинга JSON запроса: ожидается массив, получен null")
		writeText(w, http.StatusBadRequest, msgInvalidInput)
		return
	}

	if err := h.service.Upload(r.Context(), files); err != nil {
		if zip_service.IsInvalidInput(err) {
			log.Error("некорректные данные файлов", zap.Error(err))
			writeText(w, http.StatusBadRequest, msgInvalidInput)
			return
		}

		log.Error("ошибка упаковки и загрузки архива", zap.Error(err))
		writeInternalError(w)
		return
	}

	log.Info(msgUploaded, zap.Int("files", len(files)))
	writeText(w, http.StatusOK, msgUploaded)
}

// GET /health
func (h *ZipAPI) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(healthResp{Status: "ok"}); err != nil {
		h.logger.Error("ошибка кодирования JSON ответа", zap.Error(err))
	}
}

func writeText(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	w.Write([]byte(msg))
}

func writeInternalError(w http.ResponseWriter) {
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}
