package temperatures

import (
	"context"

	"github.com/Svmi93/projetHygieneResto-sub000/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, r *models.TemperatureRecord) (*models.TemperatureRecord, error)
	// ListBySiret returns the tenant's readings, newest first. A non-empty
	// equipmentID narrows the result to that equipment.
	ListBySiret(ctx context.Context, siret, equipmentID string) ([]*models.TemperatureRecord, error)
}
