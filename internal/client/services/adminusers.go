package services

import (
	"context"

	"github.com/Svmi93/projetHygieneResto-sub000/internal/dto"
)

type AdminUserAPI interface {
	ListUsers(ctx context.Context) ([]*dto.UserProfile, error)
	GetUser(ctx context.Context, id string) (*dto.UserProfile, error)
	CreateUser(ctx context.Context, req dto.UserRequest) (*dto.UserProfile, error)
	UpdateUser(ctx context.Context, id string, req dto.UserRequest) (*dto.UserProfile, error)
	DeleteUser(ctx context.Context, id string) error
}

type AdminUserService struct {
	api AdminUserAPI
}

func NewAdminUserService(api AdminUserAPI) *AdminUserService {
	return &AdminUserService{api: api}
}

func (s *AdminUserService) List(ctx context.Context) ([]*dto.UserProfile, error) {
	return s.api.ListUsers(ctx)
}

func (s *AdminUserService) Get(ctx context.Context, id string) (*dto.UserProfile, error) {
	return s.api.GetUser(ctx, id)
}

func (s *AdminUserService) Create(ctx context.Context, req dto.UserRequest) (*dto.UserProfile, error) {
	return s.api.CreateUser(ctx, req)
}

func (s *AdminUserService) Update(ctx context.Context, id string, req dto.UserRequest) (*dto.UserProfile, error) {
	return s.api.UpdateUser(ctx, id, req)
}

func (s *AdminUserService) Delete(ctx context.Context, id string) error {
	return s.api.DeleteUser(ctx, id)
}
