package services

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/Svmi93/projetHygieneResto-sub000/internal/common"
	"github.com/Svmi93/projetHygieneResto-sub000/internal/dto"
	"github.com/Svmi93/projetHygieneResto-sub000/internal/server/auth"
	"github.com/Svmi93/projetHygieneResto-sub000/internal/server/models"
	"github.com/Svmi93/projetHygieneResto-sub000/internal/server/repositories/repomanager"
)

// TemperatureService records equipment readings and flags those outside
// the equipment's allowed range.
type TemperatureService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	now         func() time.Time
}

func NewTemperatureService(db *sql.DB, m repomanager.RepositoryManager) *TemperatureService {
	return &TemperatureService{db: db, repomanager: m, now: time.Now}
}

func (s *TemperatureService) Record(ctx context.Context, caller auth.Identity, req dto.TemperatureRequest) (*dto.TemperatureRecord, error) {
	siret, err := ownTenant(caller)
	if err != nil {
		return nil, err
	}

	ve := common.NewValidationError()
	if req.EquipmentID == "" {
		ve.Add("equipmentId", "required")
	} else if !validID(req.EquipmentID) {
		ve.Add("equipmentId", "unknown equipment")
	}
	if req.Temperature == nil {
		ve.Add("temperature", "required")
	}
	if err := ve.OrNil(); err != nil {
		return nil, err
	}

	e, err := loadEquipment(ctx, s.repomanager.Equipments(s.db), caller, req.EquipmentID)
	if err != nil {
		return nil, err
	}

	recordedAt := s.now().UTC()
	if req.RecordedAt != nil {
		recordedAt = req.RecordedAt.UTC()
	}

	rec, err := s.repomanager.Temperatures(s.db).Create(ctx, &models.TemperatureRecord{
		EquipmentID:      e.ID,
		AdminClientSiret: siret,
		RecordedBy:       caller.UserID,
		Temperature:      *req.Temperature,
		RecordedAt:       recordedAt,
		Notes:            strings.TrimSpace(req.Notes),
		Compliant:        e.InRange(*req.Temperature),
	})
	if err != nil {
		return nil, fmt.Errorf("error recording temperature: %w", err)
	}
	return rec.DTO(), nil
}

// List returns the tenant's readings, optionally for a single equipment.
func (s *TemperatureService) List(ctx context.Context, caller auth.Identity, equipmentID string) ([]*dto.TemperatureRecord, error) {
	siret, err := ownTenant(caller)
	if err != nil {
		return nil, err
	}

	items, err := s.repomanager.Temperatures(s.db).ListBySiret(ctx, siret, equipmentID)
	if err != nil {
		return nil, fmt.Errorf("error listing temperatures: %w", err)
	}

	result := make([]*dto.TemperatureRecord, 0, len(items))
	for _, r := range items {
		result = append(result, r.DTO())
	}
	return result, nil
}
