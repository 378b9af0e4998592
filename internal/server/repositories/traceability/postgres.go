package traceability

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Svmi93/projetHygieneResto-sub000/internal/common"
	"github.com/Svmi93/projetHygieneResto-sub000/internal/dbx"
	"github.com/Svmi93/projetHygieneResto-sub000/internal/server/models"
)

const recordColumns = `id, admin_client_siret, created_by, product_name, batch_number,
	transformation_date, use_by_date, photo_id, notes, created_at`

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, rec *models.TraceabilityRecord) (*models.TraceabilityRecord, error) {
	query := `
		INSERT INTO traceability_records (admin_client_siret, created_by, product_name, batch_number,
			transformation_date, use_by_date, photo_id, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at
	`
	err := r.db.QueryRowContext(ctx, query,
		rec.AdminClientSiret, dbx.NullString(rec.CreatedBy), rec.ProductName, rec.BatchNumber,
		rec.TransformationDate, rec.UseByDate, dbx.NullString(rec.PhotoID), rec.Notes,
	).Scan(&rec.ID, &rec.CreatedAt)
	if err != nil {
		return nil, dbx.WriteError(err)
	}
	return rec, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.TraceabilityRecord, error) {
	rec, err := scanRecord(r.db.QueryRowContext(ctx, `SELECT `+recordColumns+` FROM traceability_records WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return rec, nil
}

func (r *PostgresRepository) ListBySiret(ctx context.Context, siret string) ([]*models.TraceabilityRecord, error) {
	return r.list(ctx, `SELECT `+recordColumns+` FROM traceability_records WHERE admin_client_siret = $1 ORDER BY created_at DESC`, siret)
}

func (r *PostgresRepository) ListAll(ctx context.Context) ([]*models.TraceabilityRecord, error) {
	return r.list(ctx, `SELECT `+recordColumns+` FROM traceability_records ORDER BY created_at DESC`)
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM traceability_records WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete traceability record: %w", err)
	}
	return dbx.ExpectOneRow(res)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (*models.TraceabilityRecord, error) {
	var (
		rec                models.TraceabilityRecord
		createdBy, photoID sql.NullString
	)
	if err := row.Scan(&rec.ID, &rec.AdminClientSiret, &createdBy, &rec.ProductName, &rec.BatchNumber,
		&rec.TransformationDate, &rec.UseByDate, &photoID, &rec.Notes, &rec.CreatedAt); err != nil {
		return nil, err
	}
	rec.CreatedBy = createdBy.String
	rec.PhotoID = photoID.String
	return &rec, nil
}

func (r *PostgresRepository) list(ctx context.Context, query string, args ...any) ([]*models.TraceabilityRecord, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to select traceability records: %w", err)
	}
	defer rows.Close()

	result := make([]*models.TraceabilityRecord, 0)
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
