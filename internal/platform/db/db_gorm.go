// Package db manages the process-wide database connection pool.
package db

import (
	"fmt"
	"log"
	"os"
	"time"

	gpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"user_backend/internal/feature/users/domain/entity"
)

// connectTimeout is the total window for startup connection attempts.
const connectTimeout = 60 * time.Second

// Config holds the database connection settings.
type Config struct {
	User     string
	Password string
	Name     string
	Host     string
	Port     string
}

// LoadConfigFromEnv reads the connection settings from POSTGRES_* environment
// variables, falling back to local development defaults.
func LoadConfigFromEnv() Config {
	return Config{
		User:     envOr("POSTGRES_USER", "app"),
		Password: envOr("POSTGRES_PASSWORD", "secret"),
		Name:     envOr("POSTGRES_DB", "app"),
		Host:     envOr("POSTGRES_HOST", "127.0.0.1"),
		Port:     envOr("POSTGRES_PORT", "5431"),
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// BuildDSN assembles the PostgreSQL connection string from the config.
func BuildDSN(cfg Config) string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		cfg.Host, cfg.User, cfg.Password, cfg.Name, cfg.Port)
}

// OpenFunc opens a gorm connection for the given DSN.
type OpenFunc func(dsn string) (*gorm.DB, error)

// ConnectWithRetry keeps calling open until it succeeds or the timeout
// elapses. The database container often comes up after the service does.
func ConnectWithRetry(dsn string, timeout time.Duration, open OpenFunc) (*gorm.DB, error) {
	deadline := time.Now().Add(timeout)
	for {
		db, err := open(dsn)
		if err == nil {
			return db, nil
		}
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("db connect failed after %s: %w", timeout, err)
		}
		log.Printf("DB connect failed, retrying...: %v", err)
		time.Sleep(3 * time.Second)
	}
}

// OpenDB builds the pool from the environment, runs migrations and returns
// the shared handle. TranslateError turns driver duplicate-key errors into
// gorm.ErrDuplicatedKey so adapters can map them uniformly.
func OpenDB() *gorm.DB {
	dsn := BuildDSN(LoadConfigFromEnv())

	db, err := ConnectWithRetry(dsn, connectTimeout, func(dsn string) (*gorm.DB, error) {
		return gorm.Open(gpostgres.Open(dsn), &gorm.Config{TranslateError: true})
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	if err := db.AutoMigrate(&entity.User{}); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	return db
}
