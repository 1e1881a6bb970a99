package db

import (
	"context"
	"errors"
	"fmt"
	stdlog "log"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"norms-hub/internal/config"
)

// ErrUnavailable is returned by repositories when no remote store connection
// exists. Read paths classify it as an empty result; write paths surface it.
var ErrUnavailable = errors.New("remote store unavailable")

// Connect opens the remote store connection. A failure is not fatal: the
// caller keeps a nil handle and the service runs in demo mode.
func Connect(cfg config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%v user=%v password=%v dbname=%v port=%v sslmode=disable",
		cfg.DBHost,
		cfg.DBUser,
		cfg.DBPassword,
		cfg.DBName,
		cfg.DBPort,
	)

	level := logger.Warn
	if cfg.Environment == "production" {
		level = logger.Error
	}
	gormLogger := logger.New(
		stdlog.New(os.Stdout, "\r\n", stdlog.LstdFlags),
		logger.Config{
			SlowThreshold: time.Second,
			LogLevel:      level,
			Colorful:      cfg.Environment != "production",
		},
	)

	gdb, err := gorm.Open(postgres.Open(dsn), &gorm.Config{Logger: gormLogger})
	if err != nil {
		return nil, err
	}

	// gorm.Open does not always dial; verify the store actually answers so
	// demo mode engages at startup rather than on the first request.
	sqlDB, err := gdb.DB()
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, err
	}

	log.Info().Str("host", cfg.DBHost).Str("database", cfg.DBName).Msg("Connected to remote store")
	return gdb, nil
}

func Close(gdb *gorm.DB) {
	if gdb == nil {
		return
	}
	sqlDB, err := gdb.DB()
	if err != nil {
		return
	}
	if err := sqlDB.Close(); err != nil {
		log.Warn().Err(err).Msg("Failed to close remote store connection")
	}
}

// IsMissingTable reports whether err indicates the expected schema has not
// been created yet (Postgres undefined_table).
func IsMissingTable(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "42P01") || strings.Contains(msg, "does not exist")
}

// Status is the outcome of the connectivity probe. It feeds user-facing
// messaging only; mode selection is driven by read results.
type Status string

const (
	StatusConnected     Status = "connected"
	StatusTablesMissing Status = "tables_missing"
	StatusUnreachable   Status = "unreachable"
	StatusUnconfigured  Status = "unconfigured"
)

// Probe checks whether the remote store is reachable and carries the expected
// tables.
func Probe(ctx context.Context, gdb *gorm.DB) Status {
	if gdb == nil {
		return StatusUnconfigured
	}
	sqlDB, err := gdb.DB()
	if err != nil {
		return StatusUnreachable
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return StatusUnreachable
	}
	if !gdb.WithContext(ctx).Migrator().HasTable("profiles") {
		return StatusTablesMissing
	}
	return StatusConnected
}
