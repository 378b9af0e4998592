package services

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Svmi93/projetHygieneResto-sub000/internal/dto"
	"github.com/Svmi93/projetHygieneResto-sub000/internal/roles"
)

type PhotoAPI interface {
	RequestPhotoUpload(ctx context.Context, contentType string) (*dto.PhotoUploadResponse, error)
	UploadToPresignedURL(ctx context.Context, url, contentType string, data []byte) error
	ConfirmPhoto(ctx context.Context, id string) error
	PhotoURL(ctx context.Context, id string) (string, error)
	ListPhotos(ctx context.Context, siret string) ([]*dto.Photo, error)
	DeletePhoto(ctx context.Context, id string) error
}

type PhotoService struct {
	api PhotoAPI
}

func NewPhotoService(api PhotoAPI) *PhotoService {
	return &PhotoService{api: api}
}

// Upload sends data to object storage through a presigned URL and marks the
// photo uploaded. The content type is sniffed from the bytes.
func (s *PhotoService) Upload(ctx context.Context, data []byte) (*dto.Photo, error) {
	contentType := http.DetectContentType(data)

	resp, err := s.api.RequestPhotoUpload(ctx, contentType)
	if err != nil {
		return nil, err
	}
	if err := s.api.UploadToPresignedURL(ctx, resp.UploadURL, contentType, data); err != nil {
		return nil, fmt.Errorf("photo upload: %w", err)
	}
	if err := s.api.ConfirmPhoto(ctx, resp.Photo.ID); err != nil {
		return nil, err
	}
	return resp.Photo, nil
}

// List lists the photos of user's tenant. A super_admin names the tenant
// explicitly with siret.
func (s *PhotoService) List(ctx context.Context, user *dto.UserProfile, siret string) ([]*dto.Photo, error) {
	if user.Role != roles.SuperAdmin {
		siret = user.TenantSiret()
	}
	if siret == "" {
		return nil, ErrNoTenant
	}
	return s.api.ListPhotos(ctx, siret)
}

func (s *PhotoService) URL(ctx context.Context, id string) (string, error) {
	return s.api.PhotoURL(ctx, id)
}

func (s *PhotoService) Delete(ctx context.Context, id string) error {
	return s.api.DeletePhoto(ctx, id)
}
