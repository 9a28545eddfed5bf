package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"go.uber.org/zap"

	"github.com/sunr3d/orders-zipper/internal/config"
	"github.com/sunr3d/orders-zipper/internal/entrypoint"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "не удалось загрузить .env: %v\n", err)
		os.Exit(1)
	}

	var cfg config.Config
	if err := envconfig.Process("", &cfg); err != nil {
		fmt.Fprintf(os.Stderr, "не удалось прочитать конфигурацию: %v\n", err)
		os.Exit(1)
	}

	log, err := newLogger(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "не удалось создать логгер: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	if err := entrypoint.Run(&cfg, log); err != nil {
		log.Fatal("сервис завершился с ошибкой", zap.Error(err))
	}
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, err
	}

	zcfg := zap.NewProductionConfig()
	zcfg.Level = lvl
	return zcfg.Build()
}
