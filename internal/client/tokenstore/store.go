// Package tokenstore persists the CLI session (bearer token and cached user
// profile) in a local SQLite database.
package tokenstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Svmi93/projetHygieneResto-sub000/internal/client/migrations"
	"github.com/Svmi93/projetHygieneResto-sub000/internal/client/repositories/metadata"
	"github.com/Svmi93/projetHygieneResto-sub000/internal/dbx"
	"github.com/Svmi93/projetHygieneResto-sub000/internal/dto"
	"github.com/pressly/goose/v3"

	_ "modernc.org/sqlite"
)

const (
	tokenKey = "auth_token"
	userKey  = "auth_user"
)

// ErrNoSession is returned by Load when no complete session is stored.
var ErrNoSession = errors.New("no stored session")

// Store is safe for concurrent use; SQLite serialises writers.
type Store struct {
	db *sql.DB
}

// runMigrations applies the embedded client schema.
func runMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return err
	}
	return goose.UpContext(ctx, db, ".")
}

// Open opens (creating if needed) the store at dsn and migrates it.
func Open(ctx context.Context, dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	// a single connection keeps ":memory:" databases shared
	db.SetMaxOpenConns(1)

	if err := runMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("session store migrations: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) repo(db dbx.DBTX) metadata.Repository {
	return metadata.NewSQLiteRepository(db)
}

// Load returns the stored token and profile. A half-written or undecodable
// session is wiped and reported as ErrNoSession.
func (s *Store) Load(ctx context.Context) (string, *dto.UserProfile, error) {
	r := s.repo(s.db)

	token, err := r.Get(ctx, tokenKey)
	if err != nil {
		return "", nil, err
	}
	rawUser, err := r.Get(ctx, userKey)
	if err != nil {
		return "", nil, err
	}

	if len(token) == 0 && len(rawUser) == 0 {
		return "", nil, ErrNoSession
	}

	var user dto.UserProfile
	if len(token) == 0 || len(rawUser) == 0 || json.Unmarshal(rawUser, &user) != nil || user.Validate() != nil {
		if err := s.Clear(ctx); err != nil {
			return "", nil, err
		}
		return "", nil, ErrNoSession
	}

	return string(token), &user, nil
}

// Save stores token and profile atomically.
func (s *Store) Save(ctx context.Context, token string, user *dto.UserProfile) error {
	if token == "" || user == nil {
		return errors.New("token and user are required")
	}
	raw, err := json.Marshal(user)
	if err != nil {
		return err
	}

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		r := s.repo(tx)
		if err := r.Set(ctx, tokenKey, []byte(token)); err != nil {
			return err
		}
		return r.Set(ctx, userKey, raw)
	})
}

// SaveProfile replaces the cached profile, keeping the token.
func (s *Store) SaveProfile(ctx context.Context, user *dto.UserProfile) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return s.repo(s.db).Set(ctx, userKey, raw)
}

// Clear removes the session. Clearing an empty store is a no-op.
func (s *Store) Clear(ctx context.Context) error {
	return s.repo(s.db).Delete(ctx, tokenKey, userKey)
}
