package session

import "github.com/Svmi93/projetHygieneResto-sub000/internal/dto"

type State int

const (
	Uninitialized State = iota
	Verifying
	Authenticated
	Anonymous
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case Verifying:
		return "verifying"
	case Authenticated:
		return "authenticated"
	case Anonymous:
		return "anonymous"
	default:
		return "unknown"
	}
}

// Snapshot is an immutable view of the session at one instant.
type Snapshot struct {
	State     State
	User      *dto.UserProfile
	IsLoading bool
	LastError string
}

func (s Snapshot) IsAuthenticated() bool {
	return s.State == Authenticated && s.User != nil
}
