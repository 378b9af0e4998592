package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Svmi93/projetHygieneResto-sub000/internal/common"
	"github.com/Svmi93/projetHygieneResto-sub000/internal/dbx"
	"github.com/Svmi93/projetHygieneResto-sub000/internal/dto"
	"github.com/Svmi93/projetHygieneResto-sub000/internal/roles"
	"github.com/Svmi93/projetHygieneResto-sub000/internal/server/auth"
	"github.com/Svmi93/projetHygieneResto-sub000/internal/server/models"
	"github.com/Svmi93/projetHygieneResto-sub000/internal/server/repositories/repomanager"
)

type TraceabilityService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewTraceabilityService(db *sql.DB, m repomanager.RepositoryManager) *TraceabilityService {
	return &TraceabilityService{db: db, repomanager: m}
}

// Create stores a record for the caller's tenant. An attached photo must
// belong to the same tenant.
func (s *TraceabilityService) Create(ctx context.Context, caller auth.Identity, req dto.TraceabilityRequest) (*dto.TraceabilityRecord, error) {
	siret, err := ownTenant(caller)
	if err != nil {
		return nil, err
	}

	ve := common.NewValidationError()
	checkRequired(ve, "productName", req.ProductName)
	transformed := parseDate(ve, "transformationDate", req.TransformationDate)
	useBy := parseDate(ve, "useByDate", req.UseByDate)
	if !transformed.IsZero() && !useBy.IsZero() && useBy.Before(transformed) {
		ve.Add("useByDate", "must not be before transformationDate")
	}
	if req.PhotoID != "" && !validID(req.PhotoID) {
		ve.Add("photoId", "unknown photo")
	}
	if err := ve.OrNil(); err != nil {
		return nil, err
	}

	rec := &models.TraceabilityRecord{
		AdminClientSiret:   siret,
		CreatedBy:          caller.UserID,
		ProductName:        strings.TrimSpace(req.ProductName),
		BatchNumber:        strings.TrimSpace(req.BatchNumber),
		TransformationDate: transformed,
		UseByDate:          useBy,
		PhotoID:            req.PhotoID,
		Notes:              strings.TrimSpace(req.Notes),
	}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if rec.PhotoID != "" {
			p, err := s.repomanager.Photos(tx).GetByID(ctx, rec.PhotoID)
			if err != nil {
				if errors.Is(err, common.ErrorNotFound) {
					return photoNotFound()
				}
				return err
			}
			if p.AdminClientSiret != siret {
				return photoNotFound()
			}
		}
		var err error
		rec, err = s.repomanager.Traceability(tx).Create(ctx, rec)
		return err
	})
	if err != nil {
		var ve *common.ValidationError
		if errors.As(err, &ve) {
			return nil, ve
		}
		return nil, fmt.Errorf("error creating traceability record: %w", err)
	}

	return rec.DTO(), nil
}

// ListByClient returns the records of tenant siret. Tenant users may only
// read their own tenant.
func (s *TraceabilityService) ListByClient(ctx context.Context, caller auth.Identity, siret string) ([]*dto.TraceabilityRecord, error) {
	siret, err := tenantScope(caller, siret)
	if err != nil {
		return nil, err
	}

	items, err := s.repomanager.Traceability(s.db).ListBySiret(ctx, siret)
	if err != nil {
		return nil, fmt.Errorf("error listing traceability records: %w", err)
	}
	return traceabilityDTOs(items), nil
}

// ListAll returns the records of every tenant; super_admin only.
func (s *TraceabilityService) ListAll(ctx context.Context, caller auth.Identity) ([]*dto.TraceabilityRecord, error) {
	if caller.Role != roles.SuperAdmin {
		return nil, common.ErrorForbidden
	}

	items, err := s.repomanager.Traceability(s.db).ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing traceability records: %w", err)
	}
	return traceabilityDTOs(items), nil
}

// Delete removes a record. Employees cannot delete records.
func (s *TraceabilityService) Delete(ctx context.Context, caller auth.Identity, id string) error {
	if caller.Role == roles.Employer {
		return common.ErrorForbidden
	}

	if err := checkID(id); err != nil {
		return err
	}

	repo := s.repomanager.Traceability(s.db)
	rec, err := repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !canAccess(caller, rec.AdminClientSiret) {
		return common.ErrorNotFound
	}
	if err := repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("error deleting traceability record: %w", err)
	}
	return nil
}

func traceabilityDTOs(items []*models.TraceabilityRecord) []*dto.TraceabilityRecord {
	result := make([]*dto.TraceabilityRecord, 0, len(items))
	for _, r := range items {
		result = append(result, r.DTO())
	}
	return result
}

func photoNotFound() error {
	ve := common.NewValidationError()
	ve.Add("photoId", "unknown photo")
	return ve
}

// parseDate reads a calendar date; 2024-02-30 and the like are rejected.
func parseDate(ve *common.ValidationError, field, value string) time.Time {
	if value == "" {
		ve.Add(field, "required")
		return time.Time{}
	}
	t, err := time.Parse(dto.DateLayout, value)
	if err != nil {
		ve.Add(field, "must be a date formatted as YYYY-MM-DD")
		return time.Time{}
	}
	return t
}
