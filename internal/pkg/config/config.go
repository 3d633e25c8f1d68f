package config

import (
	"time"

	"github.com/ardanlabs/conf"
)

// Config is parsed from WORKFORCE_* environment variables and flags.
type Config struct {
	Web struct {
		Host            string        `conf:"default:0.0.0.0:5000"`
		ShutdownTimeout time.Duration `conf:"default:20s"`
	}
	DB struct {
		Username   string `conf:"default:postgres"`
		Password   string `conf:"default:postgres,noprint"`
		Host       string `conf:"default:localhost"`
		Port       string `conf:"default:5432"`
		Name       string `conf:"default:workforce"`
		DisableTLS bool   `conf:"default:true"`
		Debug      bool   `conf:"default:false"`
	}
	Redis struct {
		Addr     string `conf:"default:localhost:6379"`
		Password string `conf:"noprint"`
	}
	TemplatePath string `conf:"default:./static/sample_template.xlsx"`
	SeedFile     string
}

const prefix = "WORKFORCE"

func NewConfig(args []string) (*Config, error) {
	var cfg Config

	if err := conf.Parse(args, prefix, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Usage renders the flag/env help text for main to print on conf.ErrHelpWanted.
func Usage() (string, error) {
	var cfg Config
	return conf.Usage(prefix, &cfg)
}
