package equipments

import (
	"context"

	"github.com/Svmi93/projetHygieneResto-sub000/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, e *models.Equipment) (*models.Equipment, error)
	GetByID(ctx context.Context, id string) (*models.Equipment, error)
	ListBySiret(ctx context.Context, siret string) ([]*models.Equipment, error)
	Update(ctx context.Context, e *models.Equipment) error
	Delete(ctx context.Context, id string) error
}
