package rest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Svmi93/projetHygieneResto-sub000/internal/common"
	"github.com/Svmi93/projetHygieneResto-sub000/internal/dto"
	"github.com/Svmi93/projetHygieneResto-sub000/internal/logging"
	"github.com/Svmi93/projetHygieneResto-sub000/internal/roles"
	"github.com/Svmi93/projetHygieneResto-sub000/internal/server/auth"
)

const (
	tenantA = "12345678900012"

	superToken    = "super-token"
	adminToken    = "admin-token"
	employeeToken = "employee-token"
)

var identities = map[string]auth.Identity{
	superToken:    {UserID: "u-super", Role: roles.SuperAdmin},
	adminToken:    {UserID: "u-admin", Role: roles.AdminClient, Siret: tenantA},
	employeeToken: {UserID: "u-emp", Role: roles.Employer, Siret: tenantA},
}

type fakeUsers struct {
	loginResp  *dto.AuthResponse
	loginErr   error
	regResp    *dto.AuthResponse
	regErr     error
	registered dto.RegisterRequest
	verifyErr  error
	authErr    error
	deleted    map[string]bool
}

func (f *fakeUsers) Register(_ context.Context, req dto.RegisterRequest) (*dto.AuthResponse, error) {
	f.registered = req
	return f.regResp, f.regErr
}

func (f *fakeUsers) Login(_ context.Context, email, password string) (*dto.AuthResponse, error) {
	return f.loginResp, f.loginErr
}

func (f *fakeUsers) Verify(_ context.Context, token string) (*dto.UserProfile, error) {
	if f.verifyErr != nil {
		return nil, f.verifyErr
	}
	id, ok := identities[token]
	if !ok {
		return nil, common.ErrorUnauthorized
	}
	return &dto.UserProfile{ID: id.UserID, Role: id.Role, Siret: id.Siret}, nil
}

func (f *fakeUsers) Authenticate(_ context.Context, token string) (auth.Identity, error) {
	if f.authErr != nil {
		return auth.Identity{}, f.authErr
	}
	id, ok := identities[token]
	if !ok || f.deleted[id.UserID] {
		return auth.Identity{}, common.ErrorUnauthorized
	}
	return id, nil
}

type fakeEmployees struct {
	err     error
	deleted string
}

func (f *fakeEmployees) List(context.Context, auth.Identity) ([]*dto.Employee, error) {
	return []*dto.Employee{{ID: "e1", Email: "e1@resto.fr"}}, f.err
}

func (f *fakeEmployees) Create(_ context.Context, _ auth.Identity, req dto.EmployeeRequest) (*dto.Employee, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &dto.Employee{ID: "e2", Email: req.Email}, nil
}

func (f *fakeEmployees) Update(_ context.Context, _ auth.Identity, id string, req dto.EmployeeRequest) (*dto.Employee, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &dto.Employee{ID: id, Email: req.Email}, nil
}

func (f *fakeEmployees) Delete(_ context.Context, _ auth.Identity, id string) error {
	f.deleted = id
	return f.err
}

type fakeEquipments struct {
	err    error
	caller auth.Identity
}

func (f *fakeEquipments) List(_ context.Context, caller auth.Identity) ([]*dto.Equipment, error) {
	f.caller = caller
	if f.err != nil {
		return nil, f.err
	}
	return []*dto.Equipment{}, nil
}

func (f *fakeEquipments) Get(_ context.Context, _ auth.Identity, id string) (*dto.Equipment, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &dto.Equipment{ID: id}, nil
}

func (f *fakeEquipments) Create(_ context.Context, _ auth.Identity, req dto.EquipmentRequest) (*dto.Equipment, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &dto.Equipment{ID: "eq1", Name: req.Name}, nil
}

func (f *fakeEquipments) Update(_ context.Context, _ auth.Identity, id string, req dto.EquipmentRequest) (*dto.Equipment, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &dto.Equipment{ID: id, Name: req.Name}, nil
}

func (f *fakeEquipments) Delete(context.Context, auth.Identity, string) error {
	return f.err
}

type fakeTemperatures struct {
	equipmentID string
}

func (f *fakeTemperatures) Record(_ context.Context, _ auth.Identity, req dto.TemperatureRequest) (*dto.TemperatureRecord, error) {
	return &dto.TemperatureRecord{ID: "t1", EquipmentID: req.EquipmentID}, nil
}

func (f *fakeTemperatures) List(_ context.Context, _ auth.Identity, equipmentID string) ([]*dto.TemperatureRecord, error) {
	f.equipmentID = equipmentID
	return []*dto.TemperatureRecord{}, nil
}

type fakeTraceability struct {
	siret string
	err   error
}

func (f *fakeTraceability) Create(_ context.Context, _ auth.Identity, req dto.TraceabilityRequest) (*dto.TraceabilityRecord, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &dto.TraceabilityRecord{ID: "tr1", ProductName: req.ProductName}, nil
}

func (f *fakeTraceability) ListByClient(_ context.Context, _ auth.Identity, siret string) ([]*dto.TraceabilityRecord, error) {
	f.siret = siret
	return []*dto.TraceabilityRecord{}, f.err
}

func (f *fakeTraceability) ListAll(context.Context, auth.Identity) ([]*dto.TraceabilityRecord, error) {
	return []*dto.TraceabilityRecord{}, f.err
}

func (f *fakeTraceability) Delete(context.Context, auth.Identity, string) error {
	return f.err
}

type fakePhotos struct {
	confirmed string
}

func (f *fakePhotos) RequestUpload(_ context.Context, _ auth.Identity, req dto.PhotoUploadRequest) (*dto.PhotoUploadResponse, error) {
	return &dto.PhotoUploadResponse{Photo: &dto.Photo{ID: "p1", ContentType: req.ContentType}, UploadURL: "http://s3/put"}, nil
}

func (f *fakePhotos) Confirm(_ context.Context, _ auth.Identity, id string) error {
	f.confirmed = id
	return nil
}

func (f *fakePhotos) URL(_ context.Context, _ auth.Identity, id string) (*dto.PhotoURLResponse, error) {
	return &dto.PhotoURLResponse{URL: "http://s3/get/" + id}, nil
}

func (f *fakePhotos) ListByClient(context.Context, auth.Identity, string) ([]*dto.Photo, error) {
	return []*dto.Photo{}, nil
}

func (f *fakePhotos) Delete(context.Context, auth.Identity, string) error {
	return nil
}

type fakeAdminUsers struct {
	err error
}

func (f *fakeAdminUsers) List(context.Context, auth.Identity) ([]*dto.UserProfile, error) {
	return []*dto.UserProfile{{ID: "u1"}}, f.err
}

func (f *fakeAdminUsers) Get(_ context.Context, _ auth.Identity, id string) (*dto.UserProfile, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &dto.UserProfile{ID: id}, nil
}

func (f *fakeAdminUsers) Create(_ context.Context, _ auth.Identity, req dto.UserRequest) (*dto.UserProfile, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &dto.UserProfile{ID: "u2", Email: req.Email, Role: req.Role}, nil
}

func (f *fakeAdminUsers) Update(_ context.Context, _ auth.Identity, id string, req dto.UserRequest) (*dto.UserProfile, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &dto.UserProfile{ID: id, Email: req.Email}, nil
}

func (f *fakeAdminUsers) Delete(context.Context, auth.Identity, string) error {
	return f.err
}

type fakeServices struct {
	users        *fakeUsers
	employees    *fakeEmployees
	equipments   *fakeEquipments
	temperatures *fakeTemperatures
	traceability *fakeTraceability
	photos       *fakePhotos
	adminUsers   *fakeAdminUsers
}

func newTestServer(t *testing.T) (*Server, *fakeServices) {
	t.Helper()

	f := &fakeServices{
		users:        &fakeUsers{},
		employees:    &fakeEmployees{},
		equipments:   &fakeEquipments{},
		temperatures: &fakeTemperatures{},
		traceability: &fakeTraceability{},
		photos:       &fakePhotos{},
		adminUsers:   &fakeAdminUsers{},
	}
	svcs := Services{
		Users:        f.users,
		Employees:    f.employees,
		Equipments:   f.equipments,
		Temperatures: f.temperatures,
		Traceability: f.traceability,
		Photos:       f.photos,
		AdminUsers:   f.adminUsers,
	}
	return NewServer("127.0.0.1:0", logging.NewNopLogger(), svcs, time.Second), f
}

func do(t *testing.T, s *Server, method, path, token, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set(common.AuthorizationHeaderName, common.BearerPrefix+token)
	}
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}
