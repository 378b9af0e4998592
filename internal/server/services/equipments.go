package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Svmi93/projetHygieneResto-sub000/internal/common"
	"github.com/Svmi93/projetHygieneResto-sub000/internal/dto"
	"github.com/Svmi93/projetHygieneResto-sub000/internal/roles"
	"github.com/Svmi93/projetHygieneResto-sub000/internal/server/auth"
	"github.com/Svmi93/projetHygieneResto-sub000/internal/server/models"
	"github.com/Svmi93/projetHygieneResto-sub000/internal/server/repositories/repomanager"
)

// EquipmentService manages the refrigeration units of a tenant. Employees
// read them; only the admin_client changes them.
type EquipmentService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewEquipmentService(db *sql.DB, m repomanager.RepositoryManager) *EquipmentService {
	return &EquipmentService{db: db, repomanager: m}
}

func (s *EquipmentService) List(ctx context.Context, caller auth.Identity) ([]*dto.Equipment, error) {
	siret, err := ownTenant(caller)
	if err != nil {
		return nil, err
	}

	items, err := s.repomanager.Equipments(s.db).ListBySiret(ctx, siret)
	if err != nil {
		return nil, fmt.Errorf("error listing equipments: %w", err)
	}

	result := make([]*dto.Equipment, 0, len(items))
	for _, e := range items {
		result = append(result, e.DTO())
	}
	return result, nil
}

func (s *EquipmentService) Get(ctx context.Context, caller auth.Identity, id string) (*dto.Equipment, error) {
	e, err := loadEquipment(ctx, s.repomanager.Equipments(s.db), caller, id)
	if err != nil {
		return nil, err
	}
	return e.DTO(), nil
}

func (s *EquipmentService) Create(ctx context.Context, caller auth.Identity, req dto.EquipmentRequest) (*dto.Equipment, error) {
	if caller.Role != roles.AdminClient {
		return nil, common.ErrorForbidden
	}
	siret, err := ownTenant(caller)
	if err != nil {
		return nil, err
	}
	if err := validateEquipment(req); err != nil {
		return nil, err
	}

	e, err := s.repomanager.Equipments(s.db).Create(ctx, &models.Equipment{
		AdminClientSiret: siret,
		Name:             req.Name,
		Type:             req.Type,
		MinTemp:          req.MinTemp,
		MaxTemp:          req.MaxTemp,
	})
	if err != nil {
		return nil, fmt.Errorf("error creating equipment: %w", err)
	}
	return e.DTO(), nil
}

func (s *EquipmentService) Update(ctx context.Context, caller auth.Identity, id string, req dto.EquipmentRequest) (*dto.Equipment, error) {
	if caller.Role != roles.AdminClient {
		return nil, common.ErrorForbidden
	}
	repo := s.repomanager.Equipments(s.db)
	e, err := loadEquipment(ctx, repo, caller, id)
	if err != nil {
		return nil, err
	}
	if err := validateEquipment(req); err != nil {
		return nil, err
	}

	e.Name, e.Type, e.MinTemp, e.MaxTemp = req.Name, req.Type, req.MinTemp, req.MaxTemp
	if err := repo.Update(ctx, e); err != nil {
		return nil, fmt.Errorf("error updating equipment: %w", err)
	}
	return e.DTO(), nil
}

func (s *EquipmentService) Delete(ctx context.Context, caller auth.Identity, id string) error {
	if caller.Role != roles.AdminClient {
		return common.ErrorForbidden
	}
	repo := s.repomanager.Equipments(s.db)
	if _, err := loadEquipment(ctx, repo, caller, id); err != nil {
		return err
	}
	if err := repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("error deleting equipment: %w", err)
	}
	return nil
}

func validateEquipment(req dto.EquipmentRequest) error {
	ve := common.NewValidationError()
	checkRequired(ve, "name", req.Name)
	if req.MinTemp > req.MaxTemp {
		ve.Add("maxTemp", "must be greater than or equal to minTemp")
	}
	return ve.OrNil()
}

// equipmentGetter is the slice of equipments.Repository needed to load one unit.
type equipmentGetter interface {
	GetByID(ctx context.Context, id string) (*models.Equipment, error)
}

// loadEquipment returns the unit when it belongs to the caller's tenant.
// Units of other tenants are reported as not found.
func loadEquipment(ctx context.Context, repo equipmentGetter, caller auth.Identity, id string) (*models.Equipment, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	e, err := repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !canAccess(caller, e.AdminClientSiret) {
		return nil, common.ErrorNotFound
	}
	return e, nil
}
