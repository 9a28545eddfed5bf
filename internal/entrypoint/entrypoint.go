package entrypoint

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/sunr3d/orders-zipper/internal/api"
	"github.com/sunr3d/orders-zipper/internal/config"
	"github.com/sunr3d/orders-zipper/internal/infra/azureblob"
	"github.com/sunr3d/orders-zipper/internal/infra/fsblob"
	"github.com/sunr3d/orders-zipper/internal/infra/inmem"
	"github.com/sunr3d/orders-zipper/internal/interfaces/infra"
	"github.com/sunr3d/orders-zipper/internal/middleware"
	"github.com/sunr3d/orders-zipper/internal/server"
	"github.com/sunr3d/orders-zipper/internal/services/zip_service"
)

func Run(cfg *config.Config, log *zap.Logger) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("некорректная конфигурация: %w", err)
	}

	storage, err := NewStorage(cfg, log)
	if err != nil {
		return err
	}

	svc := zip_service.New(log, cfg, storage)
	controller := api.New(svc, log)

	srv := server.New(cfg.HTTPHost, cfg.HTTPPort, cfg.HTTPTimeout, NewRouter(controller, log), log)
	return srv.Start()
}

func NewStorage(cfg *config.Config, log *zap.Logger) (infra.BlobStorage, error) {
	switch cfg.StorageBackend {
	case config.StorageAzure:
		storage, err := azureblob.New(log, cfg.StorageConnectionString)
		if err != nil {
			return nil, fmt.Errorf("не удалось подключиться к Azure Storage: %w", err)
		}
		log.Info("используется Azure Blob Storage")
		return storage, nil
	case config.StorageFS:
		log.Info("используется локальное хранилище", zap.String("path", cfg.StorageDir))
		return fsblob.New(log, cfg.StorageDir), nil
	case config.StorageMemory:
		log.Warn("используется хранилище в памяти, архивы не сохраняются между запусками")
		return inmem.New(log), nil
	default:
		return nil, fmt.Errorf("%w: %q", config.ErrUnknownBackend, cfg.StorageBackend)
	}
}

func NewRouter(controller *api.ZipAPI, log *zap.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID())
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.ReqLogger(log))
	r.Use(middleware.Recovery(log))

	r.Post("/", controller.UploadFiles)
	r.Post("/api/zip", controller.UploadFiles)
	r.Get("/health", controller.Health)

	return r
}
