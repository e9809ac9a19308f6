package db

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"time"

	"gorm.io/driver/sqlserver"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/sh5080/inventory-go/pkg/configs"
	model "github.com/sh5080/inventory-go/pkg/types/models"
)

// Connect opens the SQL Server connection described by cfg and ensures the
// inventories table exists. Credentials are URL-escaped so passwords with
// @ : / ? survive the DSN.
func Connect(cfg *configs.EnvConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("sqlserver://%s:%s@%s:%s?database=%s",
		url.QueryEscape(cfg.DB.User),
		url.QueryEscape(cfg.DB.Password),
		cfg.DB.Host,
		cfg.DB.Port,
		cfg.DB.Name,
	)

	var newLogr logger.Interface
	if cfg.IsDebug() {
		newLogr = logger.New(
			log.New(os.Stdout, "\r\n", log.LstdFlags),
			logger.Config{
				SlowThreshold:             time.Second,
				LogLevel:                  logger.Info,
				IgnoreRecordNotFoundError: true,
				Colorful:                  false,
			},
		)
	} else {
		newLogr = logger.Default.LogMode(logger.Error)
	}

	gdb, err := gorm.Open(sqlserver.Open(dsn), &gorm.Config{
		Logger: newLogr,
	})
	if err != nil {
		return nil, fmt.Errorf("connect to %s:%s: %w", cfg.DB.Host, cfg.DB.Port, err)
	}

	if err := Migrate(gdb); err != nil {
		return nil, err
	}
	return gdb, nil
}

// Migrate creates or updates the inventories table.
func Migrate(gdb *gorm.DB) error {
	if err := gdb.AutoMigrate(&model.Inventory{}); err != nil {
		return fmt.Errorf("migrate inventories: %w", err)
	}
	return nil
}
