package photos

import (
	"context"

	"github.com/Svmi93/projetHygieneResto-sub000/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, p *models.Photo) (*models.Photo, error)
	GetByID(ctx context.Context, id string) (*models.Photo, error)
	ListBySiret(ctx context.Context, siret string) ([]*models.Photo, error)
	MarkUploaded(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}
