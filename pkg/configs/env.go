package configs

import (
	"fmt"
	"os"
	"sync"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

// AppVersion is stamped at build time via -ldflags.
var AppVersion = "dev"

// EnvConfig holds every runtime setting the service reads from the
// environment. The DB block selects the SQL Server instance backing the
// inventories table.
type EnvConfig struct {
	Server struct {
		Port    string `env:"PORT" envDefault:"5000"`
		AppName string `env:"APP_NAME" envDefault:"inventory-go"`
		Env     string `env:"APP_ENV" envDefault:"production"`
	}
	DB struct {
		User     string `env:"DBUSER,required"`
		Password string `env:"DBPASS,required"`
		Host     string `env:"DBHOST,required"`
		Port     string `env:"DBPORT" envDefault:"1433"`
		Name     string `env:"DBNAME,required"`
	}
}

// IsDebug reports whether the service runs in a development environment.
func (c *EnvConfig) IsDebug() bool {
	return c.Server.Env == "dev" || c.Server.Env == "local"
}

var (
	configInstance *EnvConfig
	once           sync.Once
)

// loadConfig reads .env (when present) and parses the environment into an
// EnvConfig. Missing required variables are reported as a single error.
func loadConfig() (*EnvConfig, error) {
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			return nil, fmt.Errorf("load .env: %w", err)
		}
	}

	config := &EnvConfig{}
	if err := env.Parse(config); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	return config, nil
}

// GetConfig returns the singleton EnvConfig. The environment is read once;
// later calls return the cached instance.
func GetConfig() *EnvConfig {
	once.Do(func() {
		cfg, err := loadConfig()
		if err != nil {
			log.Fatalf("configuration error: %v", err)
		}
		configInstance = cfg
	})
	return configInstance
}
