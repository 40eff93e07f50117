package store

import (
	"errors"
	"fmt"
	"strings"

	"relance-server/internal/observability"

	_ "github.com/jackc/pgx/v5/stdlib" // Import the pgx stdlib for sqlx
	"github.com/jmoiron/sqlx"
)

var (
	ErrNotFound = errors.New("not found")
	// ErrTargetExists is returned when a referral already holds an active or paused
	// target in the same campaign.
	ErrTargetExists = errors.New("target already exists for campaign")
	// ErrStaleTarget is returned when a conditional target update matched no row,
	// typically because another writer completed or advanced it first.
	ErrStaleTarget = errors.New("target changed concurrently")
	// ErrStaleCampaign is returned when a campaign status transition matched no row.
	ErrStaleCampaign = errors.New("campaign status changed concurrently")
)

type Store struct {
	db     *sqlx.DB
	logger *observability.Logger
}

func New(connectionString string, logger *observability.Logger) (Store, error) {
	db, err := sqlx.Open("pgx", connectionString)
	if err != nil {
		return Store{}, fmt.Errorf("failed to open database: %w", err)
	}
	return Store{db: db, logger: logger}, nil
}

// NewWithDB wraps an existing connection. Used by tests with sqlmock.
func NewWithDB(db *sqlx.DB, logger *observability.Logger) Store {
	return Store{db: db, logger: logger}
}

// GetDB returns the underlying database connection
func (s *Store) GetDB() *sqlx.DB {
	return s.db
}

// prefixColumns qualifies a comma separated column list with a table alias.
func prefixColumns(alias, columns string) string {
	parts := strings.Split(columns, ",")
	for i, p := range parts {
		parts[i] = alias + "." + strings.TrimSpace(p)
	}
	return strings.Join(parts, ", ")
}
