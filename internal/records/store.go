package records

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"

	pgmigrations "github.com/SahilSawant11/mizu/internal/records/migrations/postgres"
	sqlitemigrations "github.com/SahilSawant11/mizu/internal/records/migrations/sqlite"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

// Store bundles an open database handle with the repository bound to it.
// The store variant is chosen once, at startup; the two variants never
// coexist in one process. Callers own the lifecycle: open at startup,
// Close on the way out.
type Store struct {
	DB   *sql.DB
	Repo Repository
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.DB.Close()
}

// OpenSQLite opens (or creates) the embedded database at path, runs its
// migrations, and returns a single-user store.
func OpenSQLite(ctx context.Context, path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("sqlite open error: %w", err)
	}

	goose.SetBaseFS(sqlitemigrations.Migrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		db.Close()
		return nil, fmt.Errorf("goose dialect error: %w", err)
	}
	if err := goose.UpContext(ctx, db, "."); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration error: %w", err)
	}

	return &Store{DB: db, Repo: NewSQLiteRepository(db)}, nil
}

// OpenPostgres connects to the hosted database, runs its migrations, and
// returns an owner-scoped store.
func OpenPostgres(ctx context.Context, dsn string) (*Store, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("db ping error: %w", err)
	}

	goose.SetBaseFS(pgmigrations.Migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		db.Close()
		return nil, fmt.Errorf("goose dialect error: %w", err)
	}
	if err := goose.UpContext(ctx, db, "."); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration error: %w", err)
	}

	return &Store{DB: db, Repo: NewPostgresRepository(db)}, nil
}
