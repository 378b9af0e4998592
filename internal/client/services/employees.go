package services

import (
	"context"

	"github.com/Svmi93/projetHygieneResto-sub000/internal/dto"
)

type EmployeeAPI interface {
	ListEmployees(ctx context.Context) ([]*dto.Employee, error)
	CreateEmployee(ctx context.Context, req dto.EmployeeRequest) (*dto.Employee, error)
	UpdateEmployee(ctx context.Context, id string, req dto.EmployeeRequest) (*dto.Employee, error)
	DeleteEmployee(ctx context.Context, id string) error
}

type EmployeeService struct {
	api EmployeeAPI
}

func NewEmployeeService(api EmployeeAPI) *EmployeeService {
	return &EmployeeService{api: api}
}

func (s *EmployeeService) List(ctx context.Context) ([]*dto.Employee, error) {
	return s.api.ListEmployees(ctx)
}

func (s *EmployeeService) Create(ctx context.Context, req dto.EmployeeRequest) (*dto.Employee, error) {
	return s.api.CreateEmployee(ctx, req)
}

func (s *EmployeeService) Update(ctx context.Context, id string, req dto.EmployeeRequest) (*dto.Employee, error) {
	return s.api.UpdateEmployee(ctx, id, req)
}

func (s *EmployeeService) Delete(ctx context.Context, id string) error {
	return s.api.DeleteEmployee(ctx, id)
}
