package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	App      App
	HTTP     HTTP
	Probe    Probe
	Metrics  Metrics
	Log      Log
	Pricing  Pricing
	Checkout Checkout
	Redis    Redis
}

type App struct {
	Name    string `env:"APP_NAME" envDefault:"robux-topup"`
	Version string `env:"APP_VERSION" envDefault:"dev"`
}

type HTTP struct {
	ListenAddress   string        `env:"HTTP_LISTEN" envDefault:":8080"`
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"10s"`
	// LogFieldMaxLen truncates logged request and response bodies.
	LogFieldMaxLen int `env:"LOG_FIELD_MAX_LEN" envDefault:"2048"`
}

type Probe struct {
	ListenAddress string `env:"PROBE_LISTEN" envDefault:":8081"`
}

type Metrics struct {
	ListenAddress string `env:"METRICS_LISTEN" envDefault:":9090"`
}

type Log struct {
	Level  slog.Level `env:"LOG_LEVEL" envDefault:"INFO"`
	Format string     `env:"LOG_FORMAT" envDefault:"text"`
}

func Load() (Config, error) {
	_ = godotenv.Load()

	var config Config

	if err := env.Parse(&config); err != nil {
		return Config{}, fmt.Errorf("env.Parse: %w", err)
	}

	return config, nil
}
