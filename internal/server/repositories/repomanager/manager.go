package repomanager

import (
	"context"
	"database/sql"

	"github.com/Svmi93/projetHygieneResto-sub000/internal/dbx"
	"github.com/Svmi93/projetHygieneResto-sub000/internal/server/repositories/equipments"
	"github.com/Svmi93/projetHygieneResto-sub000/internal/server/repositories/photos"
	"github.com/Svmi93/projetHygieneResto-sub000/internal/server/repositories/temperatures"
	"github.com/Svmi93/projetHygieneResto-sub000/internal/server/repositories/traceability"
	"github.com/Svmi93/projetHygieneResto-sub000/internal/server/repositories/users"
)

// RepositoryManager binds repositories to a DBTX so services can run them
// on the pool or inside a transaction.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Equipments(db dbx.DBTX) equipments.Repository
	Temperatures(db dbx.DBTX) temperatures.Repository
	Traceability(db dbx.DBTX) traceability.Repository
	Photos(db dbx.DBTX) photos.Repository
}
