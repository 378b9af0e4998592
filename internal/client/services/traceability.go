// Package services holds the CLI's feature services. Each one is a thin layer
// over the HTTP wrapper that picks the right endpoint for the current profile.
package services

import (
	"context"
	"errors"

	"github.com/Svmi93/projetHygieneResto-sub000/internal/dto"
	"github.com/Svmi93/projetHygieneResto-sub000/internal/roles"
)

// ErrNoTenant is returned when a tenant-scoped call is made without a SIRET.
var ErrNoTenant = errors.New("no tenant siret for this account")

type TraceabilityAPI interface {
	CreateTraceability(ctx context.Context, req dto.TraceabilityRequest) (*dto.TraceabilityRecord, error)
	ListTraceabilityByClient(ctx context.Context, siret string) ([]*dto.TraceabilityRecord, error)
	ListAllTraceability(ctx context.Context) ([]*dto.TraceabilityRecord, error)
	DeleteTraceability(ctx context.Context, id string) error
}

type TraceabilityService struct {
	api TraceabilityAPI
}

func NewTraceabilityService(api TraceabilityAPI) *TraceabilityService {
	return &TraceabilityService{api: api}
}

// List returns the records visible to user. Tenant accounts always go
// through their own client endpoint; only a super_admin reads the global list.
func (s *TraceabilityService) List(ctx context.Context, user *dto.UserProfile) ([]*dto.TraceabilityRecord, error) {
	if user.Role == roles.SuperAdmin {
		return s.api.ListAllTraceability(ctx)
	}
	siret := user.TenantSiret()
	if siret == "" {
		return nil, ErrNoTenant
	}
	return s.api.ListTraceabilityByClient(ctx, siret)
}

func (s *TraceabilityService) Create(ctx context.Context, req dto.TraceabilityRequest) (*dto.TraceabilityRecord, error) {
	return s.api.CreateTraceability(ctx, req)
}

func (s *TraceabilityService) Delete(ctx context.Context, id string) error {
	return s.api.DeleteTraceability(ctx, id)
}
