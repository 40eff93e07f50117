package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"relance-server/internal/observability"

	"github.com/jmoiron/sqlx"
)

// TestDB wraps a PostgreSQL database used by the integration tests
type TestDB struct {
	db    *sqlx.DB
	Store Store
}

// SetupTestDB connects to the database named by TEST_DB_* and applies the
// migrations. The test is skipped when TEST_DB_HOST is unset.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	dbHost := os.Getenv("TEST_DB_HOST")
	if dbHost == "" {
		t.Skip("TEST_DB_HOST not set, skipping integration test")
	}
	dbPort := getEnvOr("TEST_DB_PORT", "5432")
	dbUser := getEnvOr("TEST_DB_USER", "relance_user")
	dbPass := getEnvOr("TEST_DB_PASSWORD", "relance_password")
	dbName := getEnvOr("TEST_DB_NAME", "relance_db")

	connStr := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		dbUser, dbPass, dbHost, dbPort, dbName)

	db, err := sqlx.Open("pgx", connStr)
	if err != nil {
		t.Fatalf("failed to connect to database: %v", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		t.Fatalf("failed to ping database: %v", err)
	}
	t.Cleanup(func() {
		db.Close()
	})

	if err := runMigrations(db); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	tdb := &TestDB{db: db, Store: NewWithDB(db, observability.NewNopLogger())}
	tdb.Truncate(t)
	return tdb
}

func getEnvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// runMigrations applies all migration files to the database
func runMigrations(db *sqlx.DB) error {
	migrationsDir := "../../migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		return fmt.Errorf("migrations directory not found")
	}

	files, err := filepath.Glob(filepath.Join(migrationsDir, "V*.sql"))
	if err != nil {
		return fmt.Errorf("failed to read migration files: %w", err)
	}
	if len(files) == 0 {
		return fmt.Errorf("no migration files found in %s", migrationsDir)
	}
	sort.Strings(files)

	for _, file := range files {
		content, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("failed to read migration file %s: %w", file, err)
		}
		if _, err := db.Exec(string(content)); err != nil {
			return fmt.Errorf("failed to execute migration %s: %w", filepath.Base(file), err)
		}
	}
	return nil
}

// Truncate clears all relance tables while preserving schema
func (tdb *TestDB) Truncate(t *testing.T) {
	t.Helper()
	tables := []string{
		"relance_deliveries",
		"relance_targets",
		"relance_campaigns",
		"relance_configs",
		"relance_message_templates",
	}
	for _, table := range tables {
		if _, err := tdb.db.Exec(fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table)); err != nil {
			t.Fatalf("failed to truncate table %s: %v", table, err)
		}
	}
}

// WithContext returns a context for testing
func (tdb *TestDB) WithContext() context.Context {
	return context.Background()
}
