package temperatures

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Svmi93/projetHygieneResto-sub000/internal/dbx"
	"github.com/Svmi93/projetHygieneResto-sub000/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, rec *models.TemperatureRecord) (*models.TemperatureRecord, error) {
	query := `
		INSERT INTO temperature_records (equipment_id, admin_client_siret, recorded_by, temperature, recorded_at, notes, compliant)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	err := r.db.QueryRowContext(ctx, query,
		rec.EquipmentID, rec.AdminClientSiret, dbx.NullString(rec.RecordedBy),
		rec.Temperature, rec.RecordedAt, rec.Notes, rec.Compliant,
	).Scan(&rec.ID)
	if err != nil {
		return nil, dbx.WriteError(err)
	}
	return rec, nil
}

func (r *PostgresRepository) ListBySiret(ctx context.Context, siret, equipmentID string) ([]*models.TemperatureRecord, error) {
	query := `
		SELECT id, equipment_id, admin_client_siret, recorded_by, temperature, recorded_at, notes, compliant
		FROM temperature_records
		WHERE admin_client_siret = $1 AND ($2 = '' OR equipment_id::text = $2)
		ORDER BY recorded_at DESC
	`
	rows, err := r.db.QueryContext(ctx, query, siret, equipmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to select temperatures: %w", err)
	}
	defer rows.Close()

	result := make([]*models.TemperatureRecord, 0)
	for rows.Next() {
		var (
			item       models.TemperatureRecord
			recordedBy sql.NullString
		)
		if err := rows.Scan(&item.ID, &item.EquipmentID, &item.AdminClientSiret, &recordedBy,
			&item.Temperature, &item.RecordedAt, &item.Notes, &item.Compliant); err != nil {
			return nil, err
		}
		item.RecordedBy = recordedBy.String
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
