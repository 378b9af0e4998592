package services

import (
	"context"

	"github.com/Svmi93/projetHygieneResto-sub000/internal/dto"
)

type EquipmentAPI interface {
	ListEquipments(ctx context.Context) ([]*dto.Equipment, error)
	CreateEquipment(ctx context.Context, req dto.EquipmentRequest) (*dto.Equipment, error)
	UpdateEquipment(ctx context.Context, id string, req dto.EquipmentRequest) (*dto.Equipment, error)
	DeleteEquipment(ctx context.Context, id string) error
	ListTemperatures(ctx context.Context, equipmentID string) ([]*dto.TemperatureRecord, error)
	RecordTemperature(ctx context.Context, req dto.TemperatureRequest) (*dto.TemperatureRecord, error)
}

// EquipmentService covers cold-storage equipment and its temperature log.
type EquipmentService struct {
	api EquipmentAPI
}

func NewEquipmentService(api EquipmentAPI) *EquipmentService {
	return &EquipmentService{api: api}
}

func (s *EquipmentService) List(ctx context.Context) ([]*dto.Equipment, error) {
	return s.api.ListEquipments(ctx)
}

func (s *EquipmentService) Create(ctx context.Context, req dto.EquipmentRequest) (*dto.Equipment, error) {
	return s.api.CreateEquipment(ctx, req)
}

func (s *EquipmentService) Update(ctx context.Context, id string, req dto.EquipmentRequest) (*dto.Equipment, error) {
	return s.api.UpdateEquipment(ctx, id, req)
}

func (s *EquipmentService) Delete(ctx context.Context, id string) error {
	return s.api.DeleteEquipment(ctx, id)
}

func (s *EquipmentService) Temperatures(ctx context.Context, equipmentID string) ([]*dto.TemperatureRecord, error) {
	return s.api.ListTemperatures(ctx, equipmentID)
}

func (s *EquipmentService) RecordTemperature(ctx context.Context, equipmentID string, celsius float64) (*dto.TemperatureRecord, error) {
	return s.api.RecordTemperature(ctx, dto.TemperatureRequest{EquipmentID: equipmentID, Temperature: &celsius})
}
