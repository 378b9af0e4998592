package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Svmi93/projetHygieneResto-sub000/internal/common"
	"github.com/Svmi93/projetHygieneResto-sub000/internal/dto"
	"github.com/Svmi93/projetHygieneResto-sub000/internal/roles"
	"github.com/Svmi93/projetHygieneResto-sub000/internal/server/auth"
	"github.com/Svmi93/projetHygieneResto-sub000/internal/server/config"
	"github.com/Svmi93/projetHygieneResto-sub000/internal/server/models"
	"github.com/Svmi93/projetHygieneResto-sub000/internal/server/repositories/repomanager"
)

// AdminUserService is the super_admin's view over every account.
type AdminUserService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	bcryptCost  int
}

func NewAdminUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *AdminUserService {
	return &AdminUserService{db: db, repomanager: m, bcryptCost: cfg.BcryptCost}
}

func (s *AdminUserService) List(ctx context.Context, caller auth.Identity) ([]*dto.UserProfile, error) {
	if caller.Role != roles.SuperAdmin {
		return nil, common.ErrorForbidden
	}

	users, err := s.repomanager.Users(s.db).List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing users: %w", err)
	}

	result := make([]*dto.UserProfile, 0, len(users))
	for _, u := range users {
		result = append(result, u.Profile())
	}
	return result, nil
}

func (s *AdminUserService) Get(ctx context.Context, caller auth.Identity, id string) (*dto.UserProfile, error) {
	if caller.Role != roles.SuperAdmin {
		return nil, common.ErrorForbidden
	}
	if err := checkID(id); err != nil {
		return nil, err
	}

	u, err := s.repomanager.Users(s.db).GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return u.Profile(), nil
}

func (s *AdminUserService) Create(ctx context.Context, caller auth.Identity, req dto.UserRequest) (*dto.UserProfile, error) {
	if caller.Role != roles.SuperAdmin {
		return nil, common.ErrorForbidden
	}

	u := &models.User{}
	if err := s.apply(u, req, true); err != nil {
		return nil, err
	}

	u, err := s.repomanager.Users(s.db).Create(ctx, u)
	if err != nil {
		return nil, fmt.Errorf("error creating user: %w", err)
	}
	return u.Profile(), nil
}

// Update replaces the account's details; the password only when one is given.
func (s *AdminUserService) Update(ctx context.Context, caller auth.Identity, id string, req dto.UserRequest) (*dto.UserProfile, error) {
	if caller.Role != roles.SuperAdmin {
		return nil, common.ErrorForbidden
	}
	if err := checkID(id); err != nil {
		return nil, err
	}

	repo := s.repomanager.Users(s.db)
	u, err := repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.apply(u, req, false); err != nil {
		return nil, err
	}
	if err := repo.Update(ctx, u); err != nil {
		return nil, fmt.Errorf("error updating user: %w", err)
	}
	return u.Profile(), nil
}

// Delete removes an account. A super_admin cannot delete itself.
func (s *AdminUserService) Delete(ctx context.Context, caller auth.Identity, id string) error {
	if caller.Role != roles.SuperAdmin || caller.UserID == id {
		return common.ErrorForbidden
	}
	if err := checkID(id); err != nil {
		return err
	}
	if err := s.repomanager.Users(s.db).Delete(ctx, id); err != nil {
		return fmt.Errorf("error deleting user: %w", err)
	}
	return nil
}

// apply validates req and copies it onto u, enforcing the role invariants:
// an admin_client owns a SIRET, an employer points at one, a super_admin has neither.
// The role is fixed at creation; an update may omit it or repeat it.
func (s *AdminUserService) apply(u *models.User, req dto.UserRequest, creating bool) error {
	email := normalizeEmail(req.Email)

	ve := common.NewValidationError()
	checkEmail(ve, "email", email)
	if creating || req.Password != "" {
		checkPassword(ve, "password", req.Password)
	}

	role := req.Role
	if !creating {
		if role != 0 && role != u.Role {
			ve.Add("role", "cannot be changed")
		}
		role = u.Role
	}

	siret, parent := req.Siret, req.ParentAdminSiret
	switch role {
	case roles.SuperAdmin:
		siret, parent = "", ""
	case roles.AdminClient:
		if !dto.ValidSiret(siret) {
			ve.Add("siret", "must be 14 digits")
		}
		parent = ""
	case roles.Employer:
		if !dto.ValidSiret(parent) {
			ve.Add("parentAdminSiret", "must be 14 digits")
		}
		siret = ""
	default:
		ve.Add("role", "required")
	}
	if err := ve.OrNil(); err != nil {
		return err
	}

	if req.Password != "" {
		hash, err := auth.HashPassword(req.Password, s.bcryptCost)
		if err != nil {
			return common.ErrorInternal
		}
		u.PasswordHash = hash
	}

	u.Email = email
	u.Role = role
	u.Siret = siret
	u.ParentAdminSiret = parent
	u.CompanyName = req.CompanyName
	u.FirstName = req.FirstName
	u.LastName = req.LastName
	u.Phone = req.Phone
	u.Address = req.Address
	u.LogoURL = req.LogoURL
	return nil
}
