package models

import (
	"time"

	"github.com/Svmi93/projetHygieneResto-sub000/internal/dto"
)

// Photo upload states.
const (
	PhotoStatusPending  = "pending"
	PhotoStatusUploaded = "uploaded"
)

// Photo describes an image whose bytes live in object storage under StorageKey.
type Photo struct {
	ID               string
	AdminClientSiret string
	UploadedBy       string
	StorageKey       string
	ContentType      string
	Status           string
	CreatedAt        time.Time
}

func (p *Photo) DTO() *dto.Photo {
	return &dto.Photo{
		ID:               p.ID,
		AdminClientSiret: p.AdminClientSiret,
		UploadedBy:       p.UploadedBy,
		ContentType:      p.ContentType,
		Status:           p.Status,
		CreatedAt:        p.CreatedAt,
	}
}
