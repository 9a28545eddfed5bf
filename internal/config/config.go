package config

import (
	"fmt"
	"time"
)

const (
	StorageAzure  = "azure"
	StorageFS     = "fs"
	StorageMemory = "memory"
)

type Config struct {
	HTTPHost    string        `envconfig:"HTTP_HOST" default:""`
	HTTPPort    string        `envconfig:"HTTP_PORT" default:"8080"`
	HTTPTimeout time.Duration `envconfig:"HTTP_TIMEOUT" default:"30s"`
	LogLevel    string        `envconfig:"LOG_LEVEL" default:"info"`

	StorageBackend          string `envconfig:"STORAGE_BACKEND" default:"azure"`
	StorageConnectionString string `envconfig:"AZURE_STORAGE_CONNECTION_STRING"`
	StorageDir              string `envconfig:"STORAGE_DIR" default:"./storage"`

	CompressionLevel int `envconfig:"COMPRESSION_LEVEL" default:"-1"`
}

func (c *Config) Validate() error {
	switch c.StorageBackend {
	case StorageAzure:
		if c.StorageConnectionString == "" {
			return ErrNoConnectionString
		}
	case StorageFS:
		if c.StorageDir == "" {
			return ErrNoStorageDir
		}
	case StorageMemory:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownBackend, c.StorageBackend)
	}

	if c.CompressionLevel < -1 || c.CompressionLevel > 9 {
		return fmt.Errorf("%w: %d", ErrCompressionLevel, c.CompressionLevel)
	}

	return nil
}
