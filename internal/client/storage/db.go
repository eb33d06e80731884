// Package storage opens the local client database and keeps its schema
// current. The database holds the persisted session state only.
package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ChetanGaurkhede/client-store-rating/internal/client/migrations"
	"github.com/ChetanGaurkhede/client-store-rating/internal/client/repositories/state"
	"github.com/pressly/goose/v3"

	_ "modernc.org/sqlite"
)

type Repositories struct {
	State state.Repository
	DB    *sql.DB
}

func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, ".")
}

func InitDatabase(ctx context.Context, dsn string) (*Repositories, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	if err := RunMigrations(ctx, db); err != nil {
		return nil, err
	}

	return &Repositories{
		State: state.NewSQLiteRepository(db),
		DB:    db,
	}, nil
}
