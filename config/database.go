package config

import (
	"context"
	"fmt"
	"hackaplan/migrations"
	"log/slog"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/schema"
)

// OpenDB opens a gorm connection using the naming conventions of the hackaplan schema.
func OpenDB(dsn string) (*gorm.DB, error) {
	return gorm.Open(postgres.Open(dsn), &gorm.Config{
		NamingStrategy: schema.NamingStrategy{
			TablePrefix:   migrations.Schema + ".",
			SingularTable: false,
		},
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
}

// InitDB connects to postgres and brings the schema up to date.
func InitDB(ctx context.Context, cfg *Config) (*gorm.DB, error) {
	db, err := OpenDB(cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	slog.Info("Connected to PostgreSQL", "host", cfg.DatabaseHost, "db", cfg.DatabaseName)

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if err := migrations.Up(ctx, sqlDB); err != nil {
		return nil, err
	}
	version, err := migrations.Version(ctx, sqlDB)
	if err != nil {
		return nil, err
	}
	slog.Info("Database schema synchronized", "version", version)
	return db, nil
}
