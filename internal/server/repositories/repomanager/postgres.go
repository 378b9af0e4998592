// Package repomanager provides a concrete RepositoryManager for PostgreSQL,
// wiring together repository constructors and database migrations (via goose).
package repomanager

import (
	"context"
	"database/sql"

	"github.com/Svmi93/projetHygieneResto-sub000/internal/dbx"
	"github.com/Svmi93/projetHygieneResto-sub000/internal/server/migrations"
	"github.com/Svmi93/projetHygieneResto-sub000/internal/server/repositories/equipments"
	"github.com/Svmi93/projetHygieneResto-sub000/internal/server/repositories/photos"
	"github.com/Svmi93/projetHygieneResto-sub000/internal/server/repositories/temperatures"
	"github.com/Svmi93/projetHygieneResto-sub000/internal/server/repositories/traceability"
	"github.com/Svmi93/projetHygieneResto-sub000/internal/server/repositories/users"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// PostgresRepositoryManager vends PostgreSQL-backed repository implementations
// and exposes a schema migration hook.
type PostgresRepositoryManager struct{}

func (m *PostgresRepositoryManager) Users(db dbx.DBTX) users.Repository {
	return users.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Equipments(db dbx.DBTX) equipments.Repository {
	return equipments.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Temperatures(db dbx.DBTX) temperatures.Repository {
	return temperatures.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Traceability(db dbx.DBTX) traceability.Repository {
	return traceability.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Photos(db dbx.DBTX) photos.Repository {
	return photos.NewPostgresRepository(db)
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations sets up goose with the embedded migrations and runs them
// against the provided database connection.
func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}
	return gooseUpContext(ctx, db, ".")
}

// NewPostgresRepositoryManager constructs a PostgreSQL-backed RepositoryManager.
func NewPostgresRepositoryManager() RepositoryManager {
	return &PostgresRepositoryManager{}
}
