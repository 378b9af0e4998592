package services

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/Svmi93/projetHygieneResto-sub000/internal/common"
	"github.com/Svmi93/projetHygieneResto-sub000/internal/dbx"
	"github.com/Svmi93/projetHygieneResto-sub000/internal/roles"
	"github.com/Svmi93/projetHygieneResto-sub000/internal/server/auth"
	"github.com/Svmi93/projetHygieneResto-sub000/internal/server/config"
	"github.com/Svmi93/projetHygieneResto-sub000/internal/server/models"
	"github.com/Svmi93/projetHygieneResto-sub000/internal/server/repositories/equipments"
	"github.com/Svmi93/projetHygieneResto-sub000/internal/server/repositories/photos"
	"github.com/Svmi93/projetHygieneResto-sub000/internal/server/repositories/temperatures"
	"github.com/Svmi93/projetHygieneResto-sub000/internal/server/repositories/traceability"
	"github.com/Svmi93/projetHygieneResto-sub000/internal/server/repositories/users"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const (
	tenantA = "12345678900012"
	tenantB = "98765432100019"

	equipmentID = "6f1c1a52-93f4-4d0e-9b1a-2f5c8e0d7a11"
	photoA      = "0d4e6b0a-3c1f-4a8e-8f52-61b7c9a2e301"
	photoB      = "a8b2f0c4-5e7d-4c6b-9a13-d04e2f6b7c02"
	traceA      = "3e9a7c21-0b4d-4f6a-8c5e-1d2b3a4c5e01"
	traceB      = "c1d2e3f4-a5b6-4c7d-8e9f-0a1b2c3d4e02"
)

var (
	superAdmin = auth.Identity{UserID: "sa", Role: roles.SuperAdmin}
	adminA     = auth.Identity{UserID: "admin-a", Role: roles.AdminClient, Siret: tenantA}
	employeeA  = auth.Identity{UserID: "emp-a", Role: roles.Employer, Siret: tenantA}
	adminB     = auth.Identity{UserID: "admin-b", Role: roles.AdminClient, Siret: tenantB}
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.SecretKey = "test-secret"
	cfg.AccessTokenValidityDuration = time.Hour
	cfg.BcryptCost = bcrypt.MinCost
	return cfg
}

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

// fakeStore is an in-memory stand-in for every repository.
type fakeStore struct {
	mu           sync.Mutex
	seq          int
	users        map[string]*models.User
	equipments   map[string]*models.Equipment
	temperatures []*models.TemperatureRecord
	traceability map[string]*models.TraceabilityRecord
	photos       map[string]*models.Photo

	failWith error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users:        map[string]*models.User{},
		equipments:   map[string]*models.Equipment{},
		traceability: map[string]*models.TraceabilityRecord{},
		photos:       map[string]*models.Photo{},
	}
}

func (f *fakeStore) nextID() string {
	f.seq++
	return fmt.Sprintf("00000000-0000-4000-8000-%012d", f.seq)
}

type fakeRepoManager struct{ s *fakeStore }

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error  { return nil }
func (m *fakeRepoManager) Users(dbx.DBTX) users.Repository               { return (*fakeUsers)(m.s) }
func (m *fakeRepoManager) Equipments(dbx.DBTX) equipments.Repository     { return (*fakeEquipments)(m.s) }
func (m *fakeRepoManager) Temperatures(dbx.DBTX) temperatures.Repository { return (*fakeTemperatures)(m.s) }
func (m *fakeRepoManager) Traceability(dbx.DBTX) traceability.Repository { return (*fakeTraceability)(m.s) }
func (m *fakeRepoManager) Photos(dbx.DBTX) photos.Repository             { return (*fakePhotos)(m.s) }

type fakeUsers fakeStore

func (f *fakeUsers) Create(_ context.Context, u *models.User) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return nil, f.failWith
	}
	for _, other := range f.users {
		if other.Email == u.Email || (u.Siret != "" && other.Siret == u.Siret) {
			return nil, common.ErrorAlreadyExists
		}
	}
	u.ID = (*fakeStore)(f).nextID()
	u.CreatedAt = time.Now()
	cp := *u
	f.users[u.ID] = &cp
	return u, nil
}

func (f *fakeUsers) GetByEmail(_ context.Context, email string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return nil, f.failWith
	}
	for _, u := range f.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (f *fakeUsers) GetByID(_ context.Context, id string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return nil, f.failWith
	}
	u, ok := f.users[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUsers) List(_ context.Context) ([]*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	result := make([]*models.User, 0)
	for _, u := range f.users {
		cp := *u
		result = append(result, &cp)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (f *fakeUsers) ListByParentSiret(_ context.Context, siret string) ([]*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	result := make([]*models.User, 0)
	for _, u := range f.users {
		if u.ParentAdminSiret == siret {
			cp := *u
			result = append(result, &cp)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (f *fakeUsers) Update(_ context.Context, u *models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.users[u.ID]; !ok {
		return common.ErrorNotFound
	}
	cp := *u
	f.users[u.ID] = &cp
	return nil
}

func (f *fakeUsers) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.users[id]; !ok {
		return common.ErrorNotFound
	}
	delete(f.users, id)
	return nil
}

type fakeEquipments fakeStore

func (f *fakeEquipments) Create(_ context.Context, e *models.Equipment) (*models.Equipment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	e.ID = (*fakeStore)(f).nextID()
	cp := *e
	f.equipments[e.ID] = &cp
	return e, nil
}

func (f *fakeEquipments) GetByID(_ context.Context, id string) (*models.Equipment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	e, ok := f.equipments[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	cp := *e
	return &cp, nil
}

func (f *fakeEquipments) ListBySiret(_ context.Context, siret string) ([]*models.Equipment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	result := make([]*models.Equipment, 0)
	for _, e := range f.equipments {
		if e.AdminClientSiret == siret {
			cp := *e
			result = append(result, &cp)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

func (f *fakeEquipments) Update(_ context.Context, e *models.Equipment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *e
	f.equipments[e.ID] = &cp
	return nil
}

func (f *fakeEquipments) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.equipments, id)
	return nil
}

type fakeTemperatures fakeStore

func (f *fakeTemperatures) Create(_ context.Context, r *models.TemperatureRecord) (*models.TemperatureRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	r.ID = (*fakeStore)(f).nextID()
	cp := *r
	f.temperatures = append(f.temperatures, &cp)
	return r, nil
}

func (f *fakeTemperatures) ListBySiret(_ context.Context, siret, equipmentID string) ([]*models.TemperatureRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	result := make([]*models.TemperatureRecord, 0)
	for _, r := range f.temperatures {
		if r.AdminClientSiret == siret && (equipmentID == "" || r.EquipmentID == equipmentID) {
			cp := *r
			result = append(result, &cp)
		}
	}
	return result, nil
}

type fakeTraceability fakeStore

func (f *fakeTraceability) Create(_ context.Context, r *models.TraceabilityRecord) (*models.TraceabilityRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	r.ID = (*fakeStore)(f).nextID()
	cp := *r
	f.traceability[r.ID] = &cp
	return r, nil
}

func (f *fakeTraceability) GetByID(_ context.Context, id string) (*models.TraceabilityRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.traceability[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	cp := *r
	return &cp, nil
}

func (f *fakeTraceability) ListBySiret(_ context.Context, siret string) ([]*models.TraceabilityRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	result := make([]*models.TraceabilityRecord, 0)
	for _, r := range f.traceability {
		if r.AdminClientSiret == siret {
			cp := *r
			result = append(result, &cp)
		}
	}
	return result, nil
}

func (f *fakeTraceability) ListAll(_ context.Context) ([]*models.TraceabilityRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	result := make([]*models.TraceabilityRecord, 0)
	for _, r := range f.traceability {
		cp := *r
		result = append(result, &cp)
	}
	return result, nil
}

func (f *fakeTraceability) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.traceability[id]; !ok {
		return common.ErrorNotFound
	}
	delete(f.traceability, id)
	return nil
}

type fakePhotos fakeStore

func (f *fakePhotos) Create(_ context.Context, p *models.Photo) (*models.Photo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p.ID = (*fakeStore)(f).nextID()
	cp := *p
	f.photos[p.ID] = &cp
	return p, nil
}

func (f *fakePhotos) GetByID(_ context.Context, id string) (*models.Photo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.photos[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	cp := *p
	return &cp, nil
}

func (f *fakePhotos) ListBySiret(_ context.Context, siret string) ([]*models.Photo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	result := make([]*models.Photo, 0)
	for _, p := range f.photos {
		if p.AdminClientSiret == siret {
			cp := *p
			result = append(result, &cp)
		}
	}
	return result, nil
}

func (f *fakePhotos) MarkUploaded(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.photos[id]
	if !ok {
		return common.ErrorNotFound
	}
	p.Status = models.PhotoStatusUploaded
	return nil
}

func (f *fakePhotos) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.photos[id]; !ok {
		return common.ErrorNotFound
	}
	delete(f.photos, id)
	return nil
}
