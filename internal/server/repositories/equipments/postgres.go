package equipments

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Svmi93/projetHygieneResto-sub000/internal/common"
	"github.com/Svmi93/projetHygieneResto-sub000/internal/dbx"
	"github.com/Svmi93/projetHygieneResto-sub000/internal/server/models"
)

// PostgresRepository stores equipments over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, e *models.Equipment) (*models.Equipment, error) {
	query := `
		INSERT INTO equipments (admin_client_siret, name, type, min_temp, max_temp)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`
	err := r.db.QueryRowContext(ctx, query, e.AdminClientSiret, e.Name, e.Type, e.MinTemp, e.MaxTemp).
		Scan(&e.ID, &e.CreatedAt)
	if err != nil {
		return nil, dbx.WriteError(err)
	}
	return e, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Equipment, error) {
	query := `SELECT id, admin_client_siret, name, type, min_temp, max_temp, created_at FROM equipments WHERE id = $1`

	e := &models.Equipment{}
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&e.ID, &e.AdminClientSiret, &e.Name, &e.Type, &e.MinTemp, &e.MaxTemp, &e.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return e, nil
}

// ListBySiret returns the tenant's equipments ordered by name.
func (r *PostgresRepository) ListBySiret(ctx context.Context, siret string) ([]*models.Equipment, error) {
	query := `
		SELECT id, admin_client_siret, name, type, min_temp, max_temp, created_at FROM equipments
		WHERE admin_client_siret = $1
		ORDER BY name
	`
	rows, err := r.db.QueryContext(ctx, query, siret)
	if err != nil {
		return nil, fmt.Errorf("failed to select equipments: %w", err)
	}
	defer rows.Close()

	result := make([]*models.Equipment, 0)
	for rows.Next() {
		var item models.Equipment
		if err := rows.Scan(&item.ID, &item.AdminClientSiret, &item.Name, &item.Type, &item.MinTemp, &item.MaxTemp, &item.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *PostgresRepository) Update(ctx context.Context, e *models.Equipment) error {
	query := `UPDATE equipments SET name = $2, type = $3, min_temp = $4, max_temp = $5 WHERE id = $1`
	res, err := r.db.ExecContext(ctx, query, e.ID, e.Name, e.Type, e.MinTemp, e.MaxTemp)
	if err != nil {
		return dbx.WriteError(err)
	}
	return dbx.ExpectOneRow(res)
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM equipments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete equipment: %w", err)
	}
	return dbx.ExpectOneRow(res)
}
