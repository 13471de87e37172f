package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

// Supported database drivers
const (
	DriverSQLite   = "sqlite3"
	DriverPostgres = "postgres"
)

// Repository handles database operations for products, users and chat history
type Repository struct {
	db     *sqlx.DB
	driver string
}

// NewRepository opens a database connection and verifies it
func NewRepository(driver, dsn string, maxConn, maxIdleConn int) (*Repository, error) {
	if driver != DriverSQLite && driver != DriverPostgres {
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	db, err := sqlx.Connect(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if driver == DriverSQLite {
		// a single writer avoids "database is locked" under concurrent requests
		maxConn = 1
		maxIdleConn = 1
	}
	db.SetMaxOpenConns(maxConn)
	db.SetMaxIdleConns(maxIdleConn)
	db.SetConnMaxLifetime(5 * time.Minute)
	db.SetConnMaxIdleTime(2 * time.Minute)

	return &Repository{db: db, driver: driver}, nil
}

// NewFromDB wraps an existing connection
func NewFromDB(db *sqlx.DB) *Repository {
	return &Repository{db: db, driver: db.DriverName()}
}

// Driver returns the database driver name
func (r *Repository) Driver() string {
	return r.driver
}

// Ping checks the database connection
func (r *Repository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

// Close closes the database connection
func (r *Repository) Close() error {
	return r.db.Close()
}
