package rest

import (
	"context"

	"github.com/Svmi93/projetHygieneResto-sub000/internal/dto"
	"github.com/Svmi93/projetHygieneResto-sub000/internal/server/auth"
)

type UserService interface {
	Register(ctx context.Context, req dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(ctx context.Context, email, password string) (*dto.AuthResponse, error)
	Verify(ctx context.Context, token string) (*dto.UserProfile, error)
	Authenticate(ctx context.Context, token string) (auth.Identity, error)
}

type EmployeeService interface {
	List(ctx context.Context, caller auth.Identity) ([]*dto.Employee, error)
	Create(ctx context.Context, caller auth.Identity, req dto.EmployeeRequest) (*dto.Employee, error)
	Update(ctx context.Context, caller auth.Identity, id string, req dto.EmployeeRequest) (*dto.Employee, error)
	Delete(ctx context.Context, caller auth.Identity, id string) error
}

type EquipmentService interface {
	List(ctx context.Context, caller auth.Identity) ([]*dto.Equipment, error)
	Get(ctx context.Context, caller auth.Identity, id string) (*dto.Equipment, error)
	Create(ctx context.Context, caller auth.Identity, req dto.EquipmentRequest) (*dto.Equipment, error)
	Update(ctx context.Context, caller auth.Identity, id string, req dto.EquipmentRequest) (*dto.Equipment, error)
	Delete(ctx context.Context, caller auth.Identity, id string) error
}

type TemperatureService interface {
	Record(ctx context.Context, caller auth.Identity, req dto.TemperatureRequest) (*dto.TemperatureRecord, error)
	List(ctx context.Context, caller auth.Identity, equipmentID string) ([]*dto.TemperatureRecord, error)
}

type TraceabilityService interface {
	Create(ctx context.Context, caller auth.Identity, req dto.TraceabilityRequest) (*dto.TraceabilityRecord, error)
	ListByClient(ctx context.Context, caller auth.Identity, siret string) ([]*dto.TraceabilityRecord, error)
	ListAll(ctx context.Context, caller auth.Identity) ([]*dto.TraceabilityRecord, error)
	Delete(ctx context.Context, caller auth.Identity, id string) error
}

type PhotoService interface {
	RequestUpload(ctx context.Context, caller auth.Identity, req dto.PhotoUploadRequest) (*dto.PhotoUploadResponse, error)
	Confirm(ctx context.Context, caller auth.Identity, id string) error
	URL(ctx context.Context, caller auth.Identity, id string) (*dto.PhotoURLResponse, error)
	ListByClient(ctx context.Context, caller auth.Identity, siret string) ([]*dto.Photo, error)
	Delete(ctx context.Context, caller auth.Identity, id string) error
}

type AdminUserService interface {
	List(ctx context.Context, caller auth.Identity) ([]*dto.UserProfile, error)
	Get(ctx context.Context, caller auth.Identity, id string) (*dto.UserProfile, error)
	Create(ctx context.Context, caller auth.Identity, req dto.UserRequest) (*dto.UserProfile, error)
	Update(ctx context.Context, caller auth.Identity, id string, req dto.UserRequest) (*dto.UserProfile, error)
	Delete(ctx context.Context, caller auth.Identity, id string) error
}

// Services groups the business services the handlers delegate to.
type Services struct {
	Users        UserService
	Employees    EmployeeService
	Equipments   EquipmentService
	Temperatures TemperatureService
	Traceability TraceabilityService
	Photos       PhotoService
	AdminUsers   AdminUserService
}
