package dto

import (
	"errors"
	"regexp"

	"github.com/Svmi93/projetHygieneResto-sub000/internal/roles"
)

var (
	// ErrMissingSiret is returned for an admin_client profile without its own SIRET.
	ErrMissingSiret = errors.New("admin_client requires a siret")
	// ErrMissingParentSiret is returned for an employer profile without the owning admin_client SIRET.
	ErrMissingParentSiret = errors.New("employer requires a parent admin siret")
	// ErrInvalidRole is returned when a profile carries no valid role.
	ErrInvalidRole = errors.New("invalid role")
)

var siretPattern = regexp.MustCompile(`^[0-9]{14}$`)

// ValidSiret reports whether s looks like a SIRET number (14 digits).
func ValidSiret(s string) bool {
	return siretPattern.MatchString(s)
}

// UserProfile is the authenticated user as returned by login and verification.
type UserProfile struct {
	ID               string     `json:"id"`
	Email            string     `json:"email"`
	Role             roles.Role `json:"role"`
	CompanyName      string     `json:"companyName,omitempty"`
	Siret            string     `json:"siret,omitempty"`
	ParentAdminSiret string     `json:"parentAdminSiret,omitempty"`
	LogoURL          string     `json:"logoUrl,omitempty"`
	FirstName        string     `json:"firstName,omitempty"`
	LastName         string     `json:"lastName,omitempty"`
	Phone            string     `json:"phone,omitempty"`
	Address          string     `json:"address,omitempty"`
}

// Validate checks the role-dependent invariants of a profile.
func (p *UserProfile) Validate() error {
	switch p.Role {
	case roles.SuperAdmin:
		return nil
	case roles.AdminClient:
		if p.Siret == "" {
			return ErrMissingSiret
		}
		return nil
	case roles.Employer:
		if p.ParentAdminSiret == "" {
			return ErrMissingParentSiret
		}
		return nil
	default:
		return ErrInvalidRole
	}
}

// TenantSiret returns the SIRET scoping the data the profile may see.
// A super_admin is not bound to a tenant and gets an empty string.
func (p *UserProfile) TenantSiret() string {
	switch p.Role {
	case roles.AdminClient:
		return p.Siret
	case roles.Employer:
		return p.ParentAdminSiret
	case roles.SuperAdmin:
		return ""
	default:
		return ""
	}
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest is the admin_client signup payload.
type RegisterRequest struct {
	CompanyName string `json:"nom_entreprise"`
	LastName    string `json:"nom_client"`
	FirstName   string `json:"prenom_client"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	Phone       string `json:"telephone,omitempty"`
	Address     string `json:"adresse,omitempty"`
	Siret       string `json:"siret"`
	Role        string `json:"role"`
}

// AuthResponse is returned by login and registration.
type AuthResponse struct {
	Token string       `json:"token"`
	User  *UserProfile `json:"user"`
}

type VerifyResponse struct {
	User *UserProfile `json:"user"`
}

// ErrorResponse is the body of every non-2xx answer.
type ErrorResponse struct {
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors,omitempty"`
}
