package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Svmi93/projetHygieneResto-sub000/internal/common"
	"github.com/Svmi93/projetHygieneResto-sub000/internal/dto"
	"github.com/Svmi93/projetHygieneResto-sub000/internal/roles"
	"github.com/Svmi93/projetHygieneResto-sub000/internal/server/auth"
	"github.com/Svmi93/projetHygieneResto-sub000/internal/server/config"
	"github.com/Svmi93/projetHygieneResto-sub000/internal/server/models"
	"github.com/Svmi93/projetHygieneResto-sub000/internal/server/repositories/repomanager"
)

// EmployeeService lets an admin_client manage the employer accounts bound
// to its SIRET.
type EmployeeService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	bcryptCost  int
}

func NewEmployeeService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *EmployeeService {
	return &EmployeeService{db: db, repomanager: m, bcryptCost: cfg.BcryptCost}
}

func (s *EmployeeService) List(ctx context.Context, caller auth.Identity) ([]*dto.Employee, error) {
	siret, err := s.adminTenant(caller)
	if err != nil {
		return nil, err
	}

	users, err := s.repomanager.Users(s.db).ListByParentSiret(ctx, siret)
	if err != nil {
		return nil, fmt.Errorf("error listing employees: %w", err)
	}

	result := make([]*dto.Employee, 0, len(users))
	for _, u := range users {
		result = append(result, u.Employee())
	}
	return result, nil
}

func (s *EmployeeService) Create(ctx context.Context, caller auth.Identity, req dto.EmployeeRequest) (*dto.Employee, error) {
	siret, err := s.adminTenant(caller)
	if err != nil {
		return nil, err
	}

	email := normalizeEmail(req.Email)
	ve := common.NewValidationError()
	checkEmail(ve, "email", email)
	checkPassword(ve, "password", req.Password)
	checkRequired(ve, "firstName", req.FirstName)
	checkRequired(ve, "lastName", req.LastName)
	if err := ve.OrNil(); err != nil {
		return nil, err
	}

	hash, err := auth.HashPassword(req.Password, s.bcryptCost)
	if err != nil {
		return nil, common.ErrorInternal
	}

	u, err := s.repomanager.Users(s.db).Create(ctx, &models.User{
		Email:            email,
		PasswordHash:     hash,
		Role:             roles.Employer,
		ParentAdminSiret: siret,
		FirstName:        req.FirstName,
		LastName:         req.LastName,
		Phone:            req.Phone,
	})
	if err != nil {
		return nil, fmt.Errorf("error creating employee: %w", err)
	}
	return u.Employee(), nil
}

// Update changes an employee's details; the password only when one is given.
func (s *EmployeeService) Update(ctx context.Context, caller auth.Identity, id string, req dto.EmployeeRequest) (*dto.Employee, error) {
	u, err := s.get(ctx, caller, id)
	if err != nil {
		return nil, err
	}

	email := normalizeEmail(req.Email)
	ve := common.NewValidationError()
	checkEmail(ve, "email", email)
	if req.Password != "" {
		checkPassword(ve, "password", req.Password)
	}
	checkRequired(ve, "firstName", req.FirstName)
	checkRequired(ve, "lastName", req.LastName)
	if err := ve.OrNil(); err != nil {
		return nil, err
	}

	u.Email = email
	u.FirstName = req.FirstName
	u.LastName = req.LastName
	u.Phone = req.Phone
	if req.Password != "" {
		if u.PasswordHash, err = auth.HashPassword(req.Password, s.bcryptCost); err != nil {
			return nil, common.ErrorInternal
		}
	}

	if err := s.repomanager.Users(s.db).Update(ctx, u); err != nil {
		return nil, fmt.Errorf("error updating employee: %w", err)
	}
	return u.Employee(), nil
}

func (s *EmployeeService) Delete(ctx context.Context, caller auth.Identity, id string) error {
	if _, err := s.get(ctx, caller, id); err != nil {
		return err
	}
	if err := s.repomanager.Users(s.db).Delete(ctx, id); err != nil {
		return fmt.Errorf("error deleting employee: %w", err)
	}
	return nil
}

func (s *EmployeeService) adminTenant(caller auth.Identity) (string, error) {
	if caller.Role != roles.AdminClient {
		return "", common.ErrorForbidden
	}
	return ownTenant(caller)
}

// get loads an employee of the caller's tenant. Accounts of other tenants
// are reported as not found.
func (s *EmployeeService) get(ctx context.Context, caller auth.Identity, id string) (*models.User, error) {
	siret, err := s.adminTenant(caller)
	if err != nil {
		return nil, err
	}
	if err := checkID(id); err != nil {
		return nil, err
	}

	u, err := s.repomanager.Users(s.db).GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error loading employee: %w", err)
	}
	if u.Role != roles.Employer || u.ParentAdminSiret != siret {
		return nil, common.ErrorNotFound
	}
	return u, nil
}
