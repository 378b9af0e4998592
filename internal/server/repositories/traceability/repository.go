package traceability

import (
	"context"

	"github.com/Svmi93/projetHygieneResto-sub000/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, r *models.TraceabilityRecord) (*models.TraceabilityRecord, error)
	GetByID(ctx context.Context, id string) (*models.TraceabilityRecord, error)
	ListBySiret(ctx context.Context, siret string) ([]*models.TraceabilityRecord, error)
	ListAll(ctx context.Context) ([]*models.TraceabilityRecord, error)
	Delete(ctx context.Context, id string) error
}
