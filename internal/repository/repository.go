// Package repository provides methods to work with DB
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jhanaviii/AI-Travel-Agent/internal/model"
	"github.com/jhanaviii/AI-Travel-Agent/internal/repository/destpostgres"
	"github.com/wb-go/wbf/config"
	"github.com/wb-go/wbf/dbpg"
)

type DestinationRepo interface {
	ListDestinations(ctx context.Context, continent string, limit int) ([]model.Destination, error)
	GetDestination(ctx context.Context, id string) (*model.Destination, error)
	ListContinents(ctx context.Context) ([]model.Continent, error)
	CreateVisualization(ctx context.Context, v *model.Visualization) error
	ListVisualizations(ctx context.Context, limit int) ([]model.Visualization, error)
	Ping(ctx context.Context) error
}

func NewPostgresDestinationRepo(dbconn *dbpg.DB) DestinationRepo {
	return destpostgres.PostgresRepo{DB: dbconn}
}

// ConnectWithRetries gives up after retryCount attempts; the app keeps serving built-in data without a DB
func ConnectWithRetries(appConfig *config.Config, retryCount int, idleTime time.Duration) (*dbpg.DB, error) {
	dsnLink := appConfig.GetString("POSTGRES_DSN")
	if dsnLink == "" {
		return nil, errors.New("POSTGRES_DSN is not set")
	}

	dbOptions := dbpg.Options{
		MaxOpenConns:    5,
		MaxIdleConns:    5,
		ConnMaxLifetime: 10 * time.Minute,
	}
	var dbConn *dbpg.DB
	var err error

	for i := range retryCount {
		dbConn, err = dbpg.New(dsnLink, nil, &dbOptions)
		if err == nil {
			err = dbConn.Master.Ping()
		}
		if err == nil {
			return dbConn, nil
		}
		if i < retryCount-1 {
			log.Printf("Failed to connect to PGDB: %s\nWaiting %v before next retry...", err, idleTime)
			time.Sleep(idleTime)
		}
	}

	return nil, fmt.Errorf("failed to connect to DB after %d tries: %w", retryCount, err)
}

func MigrateWithRetries(db *sql.DB, migrationsPath string, retries int, idle time.Duration) error {
	var err error
	for i := range retries {
		log.Printf("Migration try #%d...", i+1)
		if err = runMigrate(db, migrationsPath); err == nil {
			return nil
		}
		if i < retries-1 {
			log.Printf("Migration try #%d was unsuccessful: %v. Waiting %v before next try...", i+1, err, idle)
			time.Sleep(idle)
		}
	}
	return fmt.Errorf("out of migration retries: %w", err)
}

func runMigrate(db *sql.DB, migrationsPath string) error {
	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return err
	}

	absPath, err := filepath.Abs(migrationsPath)
	if err != nil {
		return err
	}

	sourceURL := "file://" + absPath
	log.Println("Running migrations from:", sourceURL)

	m, err := migrate.NewWithDatabaseInstance(
		sourceURL,
		"postgres",
		driver,
	)
	if err != nil {
		return err
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}

	log.Println("Database migrations applied successfully")
	return nil
}
