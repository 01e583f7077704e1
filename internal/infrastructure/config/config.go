package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port       string `env:"PORT,        default=8080"`
	Env        string `env:"ENV,         default=development"`
	LogLevel   string `env:"LOG_LEVEL,   default=info"`
	CORSOrigin string `env:"CORS_ORIGIN, default=http://localhost:3000"`

	JWT   JWTConfig
	Mongo MongoConfig
	Redis RedisConfig
}

// JWTConfig holds the token signing settings. The secret has no default and
// must be supplied through the environment.
type JWTConfig struct {
	Secret   string        `env:"JWT_SECRET, required"`
	TokenTTL time.Duration `env:"TOKEN_TTL,  default=1h"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=employee_system"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}
	return &cfg, nil
}
