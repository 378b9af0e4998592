// Package models defines the server-side records persisted in Postgres and
// their conversion to the wire contract.
package models

import (
	"time"

	"github.com/Svmi93/projetHygieneResto-sub000/internal/dto"
	"github.com/Svmi93/projetHygieneResto-sub000/internal/roles"
)

// User is any account: super_admin, admin_client (tenant owner) or employer.
type User struct {
	ID               string
	Email            string
	PasswordHash     string
	Role             roles.Role
	CompanyName      string
	Siret            string
	ParentAdminSiret string
	FirstName        string
	LastName         string
	Phone            string
	Address          string
	LogoURL          string
	CreatedAt        time.Time
}

// TenantSiret is the SIRET that scopes the user's business data.
func (u *User) TenantSiret() string {
	switch u.Role {
	case roles.AdminClient:
		return u.Siret
	case roles.Employer:
		return u.ParentAdminSiret
	default:
		return ""
	}
}

func (u *User) Profile() *dto.UserProfile {
	return &dto.UserProfile{
		ID:               u.ID,
		Email:            u.Email,
		Role:             u.Role,
		CompanyName:      u.CompanyName,
		Siret:            u.Siret,
		ParentAdminSiret: u.ParentAdminSiret,
		LogoURL:          u.LogoURL,
		FirstName:        u.FirstName,
		LastName:         u.LastName,
		Phone:            u.Phone,
		Address:          u.Address,
	}
}

func (u *User) Employee() *dto.Employee {
	return &dto.Employee{
		ID:               u.ID,
		Email:            u.Email,
		FirstName:        u.FirstName,
		LastName:         u.LastName,
		Phone:            u.Phone,
		ParentAdminSiret: u.ParentAdminSiret,
	}
}
