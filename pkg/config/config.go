package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

var Empty = new(Config)

type Config struct {
	AppEnv        string `envconfig:"APP_ENV"`
	Port          int    `envconfig:"PORT" default:"8000"`
	SentryDSN     string `envconfig:"SENTRY_DSN"`
	AllowOrigins  string `envconfig:"ALLOW_ORIGINS"`
	RateLimit     int    `envconfig:"RATE_LIMIT" default:"20"`
	MoviesPerPage int    `envconfig:"MOVIES_PER_PAGE" default:"20"`

	Mongo struct {
		URI              string        `envconfig:"MONGO_URI" default:"mongodb://localhost:27017"`
		Database         string        `envconfig:"MONGO_DATABASE" default:"sample_mflix"`
		ConnectTimeout   time.Duration `envconfig:"MONGO_CONNECT_TIMEOUT" default:"10s"`
		OperationTimeout time.Duration `envconfig:"MONGO_OPERATION_TIMEOUT" default:"15s"`
	}
}

func LoadConfig() (*Config, error) {
	// load default .env file, ignore the error
	_ = godotenv.Load()

	cfg := new(Config)
	err := envconfig.Process("", cfg)
	if err != nil {
		return nil, fmt.Errorf("load config error: %v", err)
	}

	return cfg, nil
}
