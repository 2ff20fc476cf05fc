package db

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	migrate "github.com/golang-migrate/migrate/v4"
	// Blank imports register the postgres driver and file source for golang-migrate.
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/diewo77/portfolio-app/internal/models"
)

// ConnectAndMigrate opens the database named by dsn and brings the schema up
// to date. A postgres:// DSN (or key=value list) selects the postgres driver;
// anything else is treated as an sqlite file path. With MIGRATIONS=1 the
// postgres path runs the SQL migrations in ./migrations via golang-migrate;
// otherwise GORM AutoMigrate keeps dev setups working without tooling.
func ConnectAndMigrate(dsn string) (*gorm.DB, error) {
	dsn = strings.TrimSpace(dsn)
	if dsn == "" {
		return nil, fmt.Errorf("database DSN is empty")
	}

	logLevel := logger.Silent
	if os.Getenv("DB_DEBUG") == "1" {
		logLevel = logger.Info
	}
	cfg := &gorm.Config{Logger: logger.Default.LogMode(logLevel)}

	var conn *gorm.DB
	var err error
	if isPostgresDSN(dsn) {
		dsn = normalizePostgresDSN(dsn)
		// Postgres may still be starting up (compose, CI); retry briefly.
		for i := 0; i < 10; i++ {
			conn, err = gorm.Open(postgres.Open(dsn), cfg)
			if err == nil {
				break
			}
			time.Sleep(2 * time.Second)
		}
	} else {
		conn, err = gorm.Open(sqlite.Open(dsn), cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	if pingErr := conn.Exec("SELECT 1").Error; pingErr != nil {
		return nil, fmt.Errorf("db ping failed: %w", pingErr)
	}

	if migrationsRequested() && isPostgresDSN(dsn) {
		if err := runSQLMigrations(dsn); err != nil {
			return nil, fmt.Errorf("sql migrations failed: %w", err)
		}
	} else {
		if err := conn.AutoMigrate(&models.User{}, &models.GalleryItem{}); err != nil {
			return nil, fmt.Errorf("automigrate: %w", err)
		}
	}

	if v := strings.ToLower(os.Getenv("DB_SEED")); v == "1" || v == "true" || v == "yes" {
		seed(conn)
	}
	return conn, nil
}

func migrationsRequested() bool {
	v := strings.ToLower(os.Getenv("MIGRATIONS"))
	return v == "1" || v == "true" || v == "yes"
}

func isPostgresDSN(dsn string) bool {
	lower := strings.ToLower(dsn)
	if strings.HasPrefix(lower, "postgres://") || strings.HasPrefix(lower, "postgresql://") {
		return true
	}
	return strings.Contains(lower, "host=") || strings.Contains(lower, "dbname=")
}

// normalizePostgresDSN trims quotes/whitespace and defaults sslmode for
// key=value DSNs so local setups do not need to spell it out.
func normalizePostgresDSN(raw string) string {
	s := strings.TrimSpace(raw)
	s = strings.Trim(s, "\"'")
	lower := strings.ToLower(s)
	if strings.HasPrefix(lower, "postgres://") || strings.HasPrefix(lower, "postgresql://") {
		return s
	}
	s = strings.Join(strings.Fields(s), " ")
	if !strings.Contains(strings.ToLower(s), "sslmode=") {
		s += " sslmode=disable"
	}
	return s
}

// runSQLMigrations executes migrations in ./migrations using the file source.
func runSQLMigrations(dsn string) error {
	m, err := migrate.New("file://migrations", dsn)
	if err != nil {
		return err
	}
	if err = m.Up(); err != nil && err != migrate.ErrNoChange {
		return err
	}
	return nil
}

// seed inserts a couple of demo gallery rows for empty dev databases.
func seed(conn *gorm.DB) {
	items := []models.GalleryItem{
		{Header: "Sunset", Paragraph: "Golden hour over the harbour, shot on film.", Image: "/static/img/sunset.jpg", Category: "photography"},
		{Header: "Skyline", Paragraph: "City skyline study in charcoal and ink.", Image: "/static/img/skyline.jpg", Category: "drawing"},
	}
	for _, it := range items {
		var existing models.GalleryItem
		if err := conn.Where("header = ?", it.Header).First(&existing).Error; errors.Is(err, gorm.ErrRecordNotFound) {
			conn.Create(&it)
		}
	}
}
