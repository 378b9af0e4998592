package models

import (
	"time"

	"github.com/Svmi93/projetHygieneResto-sub000/internal/dto"
)

// TraceabilityRecord follows a food batch of a tenant.
type TraceabilityRecord struct {
	ID                 string
	AdminClientSiret   string
	CreatedBy          string
	ProductName        string
	BatchNumber        string
	TransformationDate time.Time
	UseByDate          time.Time
	PhotoID            string
	Notes              string
	CreatedAt          time.Time
}

func (r *TraceabilityRecord) DTO() *dto.TraceabilityRecord {
	return &dto.TraceabilityRecord{
		ID:                 r.ID,
		AdminClientSiret:   r.AdminClientSiret,
		CreatedBy:          r.CreatedBy,
		ProductName:        r.ProductName,
		BatchNumber:        r.BatchNumber,
		TransformationDate: r.TransformationDate.Format(dto.DateLayout),
		UseByDate:          r.UseByDate.Format(dto.DateLayout),
		PhotoID:            r.PhotoID,
		Notes:              r.Notes,
		CreatedAt:          r.CreatedAt,
	}
}
