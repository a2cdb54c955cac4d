package db

import (
	"context"
	"log"
	"strings"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Config struct {
	DatabaseURL     string
	PoolSize        int
	PoolRecycle     time.Duration
	PoolPrePing     bool
	ConnectTimeout  time.Duration
	ApplicationName string
}

func Open(cfg Config) (*gorm.DB, error) {
	// Raise the slow query threshold so AutoMigrate schema introspection
	// doesn't flood the log.
	customLogger := logger.New(
		log.New(log.Writer(), "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             1 * time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)

	gormCfg := &gorm.Config{
		Logger:                   customLogger,
		PrepareStmt:              true,
		DisableNestedTransaction: false,
	}

	databaseURL := cfg.DatabaseURL
	if databaseURL != "" {
		params := []string{}

		// All timestamps are stored in UTC.
		if !containsParam(databaseURL, "timezone") {
			params = append(params, "timezone=UTC")
		}

		if !containsParam(databaseURL, "connect_timeout") {
			params = append(params, "connect_timeout=10")
		}

		// application_name helps with monitoring and connection tracking.
		if cfg.ApplicationName != "" && !containsParam(databaseURL, "application_name") {
			params = append(params, "application_name="+cfg.ApplicationName)
		}

		// For production, consider 'require' or 'verify-full'.
		if !containsParam(databaseURL, "sslmode") {
			params = append(params, "sslmode=disable")
		}

		if len(params) > 0 {
			separator := "?"
			if strings.Contains(databaseURL, "?") {
				separator = "&"
			}
			databaseURL = databaseURL + separator + strings.Join(params, "&")
		}
	}

	dial := postgres.Open(databaseURL)
	db, err := gorm.Open(dial, gormCfg)
	if err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	sqlDB.SetMaxOpenConns(cfg.PoolSize)

	// Keep half the pool warm for reuse (minimum 2).
	idleConns := cfg.PoolSize / 2
	if idleConns < 2 {
		idleConns = 2
	}
	sqlDB.SetMaxIdleConns(idleConns)

	sqlDB.SetConnMaxLifetime(cfg.PoolRecycle)
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)

	if cfg.PoolPrePing {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.ConnectTimeout)
		defer cancel()
		if err := sqlDB.PingContext(ctx); err != nil {
			log.Printf("db ping error: %v", err)
		}
	}

	// Session-level guards against runaway queries and lock waits.
	optimizationQueries := []string{
		"SET timezone = 'UTC'",
		"SET statement_timeout = '30s'",
		"SET lock_timeout = '10s'",
	}

	for _, query := range optimizationQueries {
		if _, err := sqlDB.Exec(query); err != nil {
			log.Printf("warning: failed to execute optimization query '%s': %v", query, err)
		}
	}

	return db, nil
}

func containsParam(url string, param string) bool {
	if param == "" {
		return strings.Contains(url, "?") || strings.Contains(url, "&")
	}
	return strings.Contains(url, param+"=")
}
