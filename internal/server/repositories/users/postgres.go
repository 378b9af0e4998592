package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Svmi93/projetHygieneResto-sub000/internal/common"
	"github.com/Svmi93/projetHygieneResto-sub000/internal/dbx"
	"github.com/Svmi93/projetHygieneResto-sub000/internal/roles"
	"github.com/Svmi93/projetHygieneResto-sub000/internal/server/models"
)

const userColumns = `id, email, password_hash, role, company_name, siret, parent_admin_siret,
	first_name, last_name, phone, address, logo_url, created_at`

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts the user and fills ID and CreatedAt. A duplicate email or
// SIRET yields common.ErrorAlreadyExists; an unknown parent SIRET yields
// common.ErrorNotFound.
func (r *PostgresRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	query :=
		`INSERT INTO users (email, password_hash, role, company_name, siret, parent_admin_siret,
			first_name, last_name, phone, address, logo_url)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		 RETURNING id, created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		user.Email, user.PasswordHash, user.Role.String(), user.CompanyName,
		dbx.NullString(user.Siret), dbx.NullString(user.ParentAdminSiret),
		user.FirstName, user.LastName, user.Phone, user.Address, user.LogoURL,
	).Scan(&user.ID, &user.CreatedAt)

	if err != nil {
		return nil, dbx.WriteError(err)
	}

	return user, nil
}

func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	return r.getOne(ctx, query, email)
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return r.getOne(ctx, query, id)
}

func (r *PostgresRepository) List(ctx context.Context) ([]*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY created_at`
	return r.getMany(ctx, query)
}

// ListByParentSiret returns the employees attached to an admin_client tenant.
func (r *PostgresRepository) ListByParentSiret(ctx context.Context, siret string) ([]*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE parent_admin_siret = $1 ORDER BY last_name, first_name`
	return r.getMany(ctx, query, siret)
}

func (r *PostgresRepository) Update(ctx context.Context, user *models.User) error {
	query :=
		`UPDATE users SET email = $2, password_hash = $3, role = $4, company_name = $5, siret = $6,
			parent_admin_siret = $7, first_name = $8, last_name = $9, phone = $10, address = $11, logo_url = $12
		 WHERE id = $1
		 `

	res, err := r.db.ExecContext(ctx, query,
		user.ID, user.Email, user.PasswordHash, user.Role.String(), user.CompanyName,
		dbx.NullString(user.Siret), dbx.NullString(user.ParentAdminSiret),
		user.FirstName, user.LastName, user.Phone, user.Address, user.LogoURL,
	)
	if err != nil {
		return dbx.WriteError(err)
	}

	return dbx.ExpectOneRow(res)
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return dbx.ExpectOneRow(res)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (*models.User, error) {
	var (
		u                       models.User
		role                    string
		siret, parentAdminSiret sql.NullString
	)

	err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &role, &u.CompanyName, &siret, &parentAdminSiret,
		&u.FirstName, &u.LastName, &u.Phone, &u.Address, &u.LogoURL, &u.CreatedAt)
	if err != nil {
		return nil, err
	}

	u.Role, err = roles.Parse(role)
	if err != nil {
		return nil, err
	}
	u.Siret = siret.String
	u.ParentAdminSiret = parentAdminSiret.String

	return &u, nil
}

func (r *PostgresRepository) getOne(ctx context.Context, query string, args ...any) (*models.User, error) {
	user, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return user, nil
}

func (r *PostgresRepository) getMany(ctx context.Context, query string, args ...any) ([]*models.User, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]*models.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan error: %w", err)
		}
		result = append(result, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
