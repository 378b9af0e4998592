// Package services contains server-side business logic. Every operation on
// tenant data receives the caller's auth.Identity and is scoped to the
// caller's SIRET; only a super_admin crosses tenants.
package services

import (
	"fmt"
	"net/mail"
	"strings"

	"github.com/Svmi93/projetHygieneResto-sub000/internal/common"
	"github.com/Svmi93/projetHygieneResto-sub000/internal/dto"
	"github.com/Svmi93/projetHygieneResto-sub000/internal/roles"
	"github.com/Svmi93/projetHygieneResto-sub000/internal/server/auth"
	"github.com/google/uuid"
)

const minPasswordLength = 6

// ownTenant returns the caller's tenant SIRET, failing for callers bound to none.
func ownTenant(caller auth.Identity) (string, error) {
	if caller.Role == roles.SuperAdmin || caller.Siret == "" {
		return "", common.ErrorForbidden
	}
	return caller.Siret, nil
}

// tenantScope resolves the SIRET named in a request. Tenant users may only
// name their own and other tenants are reported as not found; a super_admin
// may name any well-formed one.
func tenantScope(caller auth.Identity, siret string) (string, error) {
	if caller.Role == roles.SuperAdmin {
		if !dto.ValidSiret(siret) {
			ve := common.NewValidationError()
			ve.Add("siret", "must be 14 digits")
			return "", ve
		}
		return siret, nil
	}
	if caller.Siret == "" {
		return "", common.ErrorForbidden
	}
	if siret != caller.Siret {
		return "", common.ErrorNotFound
	}
	return siret, nil
}

// canAccess reports whether the caller may touch a row owned by tenant siret.
func canAccess(caller auth.Identity, siret string) bool {
	if caller.Role == roles.SuperAdmin {
		return true
	}
	return caller.Siret != "" && caller.Siret == siret
}

// checkID rejects ids that cannot name a row. Malformed ids are reported as
// not found.
func checkID(id string) error {
	if !validID(id) {
		return common.ErrorNotFound
	}
	return nil
}

// validID accepts only the canonical 36-character form; uuid.Parse also
// takes urn and braced forms that Postgres rejects.
func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil && len(id) == 36
}

func normalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func checkEmail(ve *common.ValidationError, field, email string) {
	if email == "" {
		ve.Add(field, "required")
		return
	}
	if _, err := mail.ParseAddress(email); err != nil {
		ve.Add(field, "invalid email address")
	}
}

func checkPassword(ve *common.ValidationError, field, password string) {
	if len(password) < minPasswordLength {
		ve.Add(field, fmt.Sprintf("must be at least %d characters", minPasswordLength))
	}
}

func checkRequired(ve *common.ValidationError, field, value string) {
	if strings.TrimSpace(value) == "" {
		ve.Add(field, "required")
	}
}
