// Package roles defines the closed set of account roles and the helpers used
// to make authorization decisions on them.
package roles

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrUnknownRole is returned when a string does not name one of the known roles.
var ErrUnknownRole = errors.New("unknown role")

// Role is the account role of a user. The zero value is not a valid role.
type Role uint8

const (
	// SuperAdmin manages every account across all tenants.
	SuperAdmin Role = iota + 1
	// AdminClient is a business (tenant) owner identified by its SIRET.
	AdminClient
	// Employer is an employee account attached to an AdminClient's SIRET.
	Employer
)

// All lists every valid role.
var All = []Role{SuperAdmin, AdminClient, Employer}

// Parse converts the wire representation into a Role.
func Parse(s string) (Role, error) {
	switch s {
	case "super_admin":
		return SuperAdmin, nil
	case "admin_client":
		return AdminClient, nil
	case "employer":
		return Employer, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownRole, s)
	}
}

// String returns the wire representation of the role.
func (r Role) String() string {
	switch r {
	case SuperAdmin:
		return "super_admin"
	case AdminClient:
		return "admin_client"
	case Employer:
		return "employer"
	default:
		return ""
	}
}

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case SuperAdmin, AdminClient, Employer:
		return true
	default:
		return false
	}
}

func (r Role) MarshalJSON() ([]byte, error) {
	if !r.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownRole, r)
	}
	return json.Marshal(r.String())
}

func (r *Role) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// Set is a set of roles. An empty Set places no role restriction.
type Set []Role

// SetOf builds a Set from the given roles.
func SetOf(rs ...Role) Set {
	return Set(rs)
}

// Contains reports whether r belongs to the set. An empty set contains every
// valid role.
func (s Set) Contains(r Role) bool {
	if !r.Valid() {
		return false
	}
	if len(s) == 0 {
		return true
	}
	for _, allowed := range s {
		if allowed == r {
			return true
		}
	}
	return false
}
