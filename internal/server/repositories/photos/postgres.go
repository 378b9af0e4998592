package photos

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Svmi93/projetHygieneResto-sub000/internal/common"
	"github.com/Svmi93/projetHygieneResto-sub000/internal/dbx"
	"github.com/Svmi93/projetHygieneResto-sub000/internal/server/models"
)

// PostgresRepository implements photo metadata storage over a dbx.DBTX.
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a photo row; the object itself is uploaded separately
// through a presigned URL.
func (r *PostgresRepository) Create(ctx context.Context, p *models.Photo) (*models.Photo, error) {
	query := `
		INSERT INTO photos (admin_client_siret, uploaded_by, storage_key, content_type, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`
	err := r.db.QueryRowContext(ctx, query,
		p.AdminClientSiret, dbx.NullString(p.UploadedBy), p.StorageKey, p.ContentType, p.Status,
	).Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		return nil, dbx.WriteError(err)
	}
	return p, nil
}

// GetByID returns the photo row used to authorize and build presigned URLs.
func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Photo, error) {
	query := `SELECT id, admin_client_siret, uploaded_by, storage_key, content_type, status, created_at FROM photos WHERE id = $1`

	p, err := scanPhoto(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("failed to select photo: %w", err)
	}
	return p, nil
}

// ListBySiret returns every photo of the tenant, newest first.
func (r *PostgresRepository) ListBySiret(ctx context.Context, siret string) ([]*models.Photo, error) {
	query := `
		SELECT id, admin_client_siret, uploaded_by, storage_key, content_type, status, created_at FROM photos
		WHERE admin_client_siret = $1
		ORDER BY created_at DESC
	`
	rows, err := r.db.QueryContext(ctx, query, siret)
	if err != nil {
		return nil, fmt.Errorf("failed to select photos: %w", err)
	}
	defer rows.Close()

	result := make([]*models.Photo, 0)
	for rows.Next() {
		p, err := scanPhoto(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// MarkUploaded flips a pending photo to uploaded. Exactly one row must be affected.
func (r *PostgresRepository) MarkUploaded(ctx context.Context, id string) error {
	query := `UPDATE photos SET status = 'uploaded' WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to mark uploaded: %w", err)
	}
	return dbx.ExpectOneRow(result)
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM photos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete photo: %w", err)
	}
	return dbx.ExpectOneRow(result)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPhoto(row rowScanner) (*models.Photo, error) {
	var (
		p          models.Photo
		uploadedBy sql.NullString
	)
	if err := row.Scan(&p.ID, &p.AdminClientSiret, &uploadedBy, &p.StorageKey, &p.ContentType, &p.Status, &p.CreatedAt); err != nil {
		return nil, err
	}
	p.UploadedBy = uploadedBy.String
	return &p, nil
}
