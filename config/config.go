package config

import (
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"fotolio/internal/infrastructure/blobfs"
	"fotolio/internal/infrastructure/broker"
	"fotolio/internal/infrastructure/database"
	"fotolio/internal/infrastructure/minio"
	"fotolio/internal/presentation"
	"fotolio/pkg/logger"
)

const (
	BlobBackendFS    = "fs"
	BlobBackendMinIO = "minio"
)

// Config represents the configs used by services on system.
type Config struct {
	Environment     string                 `yaml:"environment"`
	Server          ServerConfig           `yaml:"server"`
	DBConfig        database.Config        `yaml:"db_config"`
	BlobStore       BlobStoreConfig        `yaml:"blob_store"`
	BrokerConfig    broker.Config          `yaml:"broker_config"`
	PublisherConfig broker.PublisherConfig `yaml:"publisher_config"`
	MinIOClient     minio.ClientConfig     `yaml:"minio_client"`
	MinIOStore      minio.StoreConfig      `yaml:"minio_store"`
	Auth            presentation.AuthConfig `yaml:"auth"`
	Logger          logger.Config          `yaml:"logger"`
}

type ServerConfig struct {
	Address   string `yaml:"address"`
	BodyLimit string `yaml:"body_limit"`
}

// BlobStoreConfig selects the backend holding the photo bytes.
type BlobStoreConfig struct {
	Backend string        `yaml:"backend"`
	FS      blobfs.Config `yaml:"fs"`
}

func Load(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, Error{
			reason: err.Error(),
		}
	}
	defer file.Close()

	config := &Config{}

	decoder := yaml.NewDecoder(file)

	if err := decoder.Decode(config); err != nil {
		return nil, Error{
			reason: err.Error(),
		}
	}

	if config.Environment != "prod" {
		if err := godotenv.Load(); err != nil {
			return nil, Error{
				reason: err.Error(),
			}
		}
	}

	config.DBConfig.URI = os.Getenv("DATABASE_URI")
	config.BrokerConfig.URI = os.Getenv("BROKER_URI")
	config.MinIOClient.AccessKey = os.Getenv("MINIO_ROOT_USER")
	config.MinIOClient.SecretKey = os.Getenv("MINIO_ROOT_PASSWORD")
	config.Auth.Secret = os.Getenv("JWT_SECRET")

	if err = config.basicCheck(); err != nil {
		return nil, Error{
			reason: err.Error(),
		}
	}

	return config, nil
}

// basicCheck validates the basic stuff in config.
func (c *Config) basicCheck() error {
	if c.BlobStore.Backend != BlobBackendFS && c.BlobStore.Backend != BlobBackendMinIO {
		return Error{reason: "blob_store.backend must be fs or minio"}
	}

	return nil
}
