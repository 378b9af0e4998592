package models

import (
	"time"

	"github.com/Svmi93/projetHygieneResto-sub000/internal/dto"
)

// Equipment is a refrigeration unit owned by a tenant.
type Equipment struct {
	ID               string
	AdminClientSiret string
	Name             string
	Type             string
	MinTemp          float64
	MaxTemp          float64
	CreatedAt        time.Time
}

// InRange reports whether t lies within the equipment's allowed range.
func (e *Equipment) InRange(t float64) bool {
	return t >= e.MinTemp && t <= e.MaxTemp
}

func (e *Equipment) DTO() *dto.Equipment {
	return &dto.Equipment{
		ID:               e.ID,
		AdminClientSiret: e.AdminClientSiret,
		Name:             e.Name,
		Type:             e.Type,
		MinTemp:          e.MinTemp,
		MaxTemp:          e.MaxTemp,
		CreatedAt:        e.CreatedAt,
	}
}

// TemperatureRecord is one reading taken on an equipment.
type TemperatureRecord struct {
	ID               string
	EquipmentID      string
	AdminClientSiret string
	RecordedBy       string
	Temperature      float64
	RecordedAt       time.Time
	Notes            string
	Compliant        bool
}

func (r *TemperatureRecord) DTO() *dto.TemperatureRecord {
	return &dto.TemperatureRecord{
		ID:               r.ID,
		EquipmentID:      r.EquipmentID,
		AdminClientSiret: r.AdminClientSiret,
		RecordedBy:       r.RecordedBy,
		Temperature:      r.Temperature,
		RecordedAt:       r.RecordedAt,
		Notes:            r.Notes,
		Compliant:        r.Compliant,
	}
}
