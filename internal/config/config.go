package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Server Server
	DB     DB
}

type Server struct {
	Addr string `env:"HTTP_ADDR" env-default:":8080"`
}

type DB struct {
	// Full connection URL: credentials, host, port and database name embedded.
	DSN string `env:"POSTGRES_DSN" env-required:"true"`
}

func New() (*Config, error) {
	var cfg Config

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	return &cfg, nil
}
