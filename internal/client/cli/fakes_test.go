package cli

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/Svmi93/projetHygieneResto-sub000/internal/client/session"
	"github.com/Svmi93/projetHygieneResto-sub000/internal/dto"
	"github.com/Svmi93/projetHygieneResto-sub000/internal/roles"
)

const tenantSiret = "12345678900012"

var (
	superUser = &dto.UserProfile{ID: "u-super", Email: "root@haccp.test", Role: roles.SuperAdmin}
	adminUser = &dto.UserProfile{ID: "u-admin", Email: "chef@bistro.test", Role: roles.AdminClient,
		CompanyName: "Bistro", Siret: tenantSiret}
	employeeUser = &dto.UserProfile{ID: "u-emp", Email: "cook@bistro.test", Role: roles.Employer,
		ParentAdminSiret: tenantSiret}
)

// stubInputs answers prompts in order and returns the given password.
// Running out of answers behaves like EOF on stdin.
func stubInputs(t *testing.T, password string, answers ...string) *[]string {
	t.Helper()
	var prompts []string
	origST, origGP := getSimpleText, getPassword
	getSimpleText = func(_ *bufio.Reader, prompt string, _ io.Writer) (string, error) {
		prompts = append(prompts, prompt)
		if len(answers) == 0 {
			return "", io.EOF
		}
		a := answers[0]
		answers = answers[1:]
		return a, nil
	}
	getPassword = func(_ io.Writer) ([]byte, error) { return []byte(password), nil }
	t.Cleanup(func() {
		getSimpleText = origST
		getPassword = origGP
	})
	return &prompts
}

type fakeSession struct {
	snap      session.Snapshot
	listeners []func(session.Snapshot)

	initErr  error
	loginAs  *dto.UserProfile
	loginErr error
	regErr   error

	loginEmail, loginPassword string
	registered                *dto.RegisterRequest
	loggedOut                 int
	inited, disposed          bool
}

func sessionAs(u *dto.UserProfile) *fakeSession {
	if u == nil {
		return &fakeSession{snap: session.Snapshot{State: session.Anonymous}}
	}
	return &fakeSession{snap: session.Snapshot{State: session.Authenticated, User: u}}
}

func (f *fakeSession) Init(context.Context) error { f.inited = true; return f.initErr }
func (f *fakeSession) Dispose()                   { f.disposed = true }
func (f *fakeSession) OnChange(fn func(session.Snapshot)) {
	f.listeners = append(f.listeners, fn)
}
func (f *fakeSession) Snapshot() session.Snapshot { return f.snap }

func (f *fakeSession) set(s session.Snapshot) {
	f.snap = s
	for _, fn := range f.listeners {
		fn(s)
	}
}

func (f *fakeSession) Login(_ context.Context, email, password string) error {
	f.loginEmail, f.loginPassword = email, password
	if f.loginErr != nil {
		f.set(session.Snapshot{State: session.Anonymous, LastError: f.loginErr.Error()})
		return f.loginErr
	}
	f.set(session.Snapshot{State: session.Authenticated, User: f.loginAs})
	return nil
}

func (f *fakeSession) Register(_ context.Context, req dto.RegisterRequest) (*dto.UserProfile, error) {
	f.registered = &req
	if f.regErr != nil {
		return nil, f.regErr
	}
	return &dto.UserProfile{ID: "new", Email: req.Email, Role: roles.AdminClient, Siret: req.Siret}, nil
}

func (f *fakeSession) Logout(context.Context) error {
	f.loggedOut++
	f.set(session.Snapshot{State: session.Anonymous})
	return nil
}

// fakeBackend implements every feature service and records calls.
type fakeBackend struct {
	calls []string
	err   error

	employees    []*dto.Employee
	equipment    []*dto.Equipment
	temperatures []*dto.TemperatureRecord
	records      []*dto.TraceabilityRecord
	photos       []*dto.Photo
	users        []*dto.UserProfile

	lastEmployee  dto.EmployeeRequest
	lastEquipment dto.EquipmentRequest
	lastTrace     dto.TraceabilityRequest
	lastUser      dto.UserRequest
	lastCelsius   float64
	lastUpload    []byte
	lastSiret     string
	lastID        string
}

func (b *fakeBackend) call(name string) error {
	b.calls = append(b.calls, name)
	return b.err
}

type employeesAPI struct{ *fakeBackend }

func (e employeesAPI) List(context.Context) ([]*dto.Employee, error) {
	return e.employees, e.call("employees.list")
}
func (e employeesAPI) Create(_ context.Context, req dto.EmployeeRequest) (*dto.Employee, error) {
	e.lastEmployee = req
	if err := e.call("employees.create"); err != nil {
		return nil, err
	}
	return &dto.Employee{ID: "emp-1", Email: req.Email}, nil
}
func (e employeesAPI) Delete(_ context.Context, id string) error {
	e.lastID = id
	return e.call("employees.delete")
}

type equipmentAPI struct{ *fakeBackend }

func (e equipmentAPI) List(context.Context) ([]*dto.Equipment, error) {
	return e.equipment, e.call("equipment.list")
}
func (e equipmentAPI) Create(_ context.Context, req dto.EquipmentRequest) (*dto.Equipment, error) {
	e.lastEquipment = req
	if err := e.call("equipment.create"); err != nil {
		return nil, err
	}
	return &dto.Equipment{ID: "eq-1", Name: req.Name}, nil
}
func (e equipmentAPI) Delete(_ context.Context, id string) error {
	e.lastID = id
	return e.call("equipment.delete")
}
func (e equipmentAPI) Temperatures(_ context.Context, id string) ([]*dto.TemperatureRecord, error) {
	e.lastID = id
	return e.temperatures, e.call("equipment.temperatures")
}
func (e equipmentAPI) RecordTemperature(_ context.Context, id string, celsius float64) (*dto.TemperatureRecord, error) {
	e.lastID, e.lastCelsius = id, celsius
	if err := e.call("equipment.record"); err != nil {
		return nil, err
	}
	return &dto.TemperatureRecord{ID: "t-1", EquipmentID: id, Temperature: celsius, Compliant: celsius <= 4}, nil
}

type traceabilityAPI struct{ *fakeBackend }

func (t traceabilityAPI) List(_ context.Context, u *dto.UserProfile) ([]*dto.TraceabilityRecord, error) {
	return t.records, t.call("traceability.list:" + u.Role.String())
}
func (t traceabilityAPI) Create(_ context.Context, req dto.TraceabilityRequest) (*dto.TraceabilityRecord, error) {
	t.lastTrace = req
	if err := t.call("traceability.create"); err != nil {
		return nil, err
	}
	return &dto.TraceabilityRecord{ID: "tr-1"}, nil
}
func (t traceabilityAPI) Delete(_ context.Context, id string) error {
	t.lastID = id
	return t.call("traceability.delete")
}

type photosAPI struct{ *fakeBackend }

func (p photosAPI) Upload(_ context.Context, data []byte) (*dto.Photo, error) {
	p.lastUpload = data
	if err := p.call("photos.upload"); err != nil {
		return nil, err
	}
	return &dto.Photo{ID: "ph-1"}, nil
}
func (p photosAPI) List(_ context.Context, _ *dto.UserProfile, siret string) ([]*dto.Photo, error) {
	p.lastSiret = siret
	return p.photos, p.call("photos.list")
}
func (p photosAPI) URL(_ context.Context, id string) (string, error) {
	p.lastID = id
	return "https://storage.test/" + id, p.call("photos.url")
}

type usersAPI struct{ *fakeBackend }

func (u usersAPI) List(context.Context) ([]*dto.UserProfile, error) {
	return u.users, u.call("users.list")
}
func (u usersAPI) Create(_ context.Context, req dto.UserRequest) (*dto.UserProfile, error) {
	u.lastUser = req
	if err := u.call("users.create"); err != nil {
		return nil, err
	}
	return &dto.UserProfile{ID: "usr-1", Email: req.Email, Role: req.Role}, nil
}
func (u usersAPI) Delete(_ context.Context, id string) error {
	u.lastID = id
	return u.call("users.delete")
}

var errBackend = errors.New("backend down")

func newTestApp(t *testing.T, sess *fakeSession) (*App, *fakeBackend, *bytes.Buffer, *[]string) {
	t.Helper()
	lines := capturePrint(t)
	b := &fakeBackend{}
	out := &bytes.Buffer{}
	a := &App{
		session:      sess,
		employees:    employeesAPI{b},
		equipment:    equipmentAPI{b},
		traceability: traceabilityAPI{b},
		photos:       photosAPI{b},
		users:        usersAPI{b},
		reader:       bufio.NewReader(&bytes.Buffer{}),
		out:          out,
	}
	sess.OnChange(a.onSessionChange)
	return a, b, out, lines
}
