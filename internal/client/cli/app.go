package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"

	"github.com/Svmi93/projetHygieneResto-sub000/internal/client/apiclient"
	"github.com/Svmi93/projetHygieneResto-sub000/internal/client/config"
	"github.com/Svmi93/projetHygieneResto-sub000/internal/client/events"
	"github.com/Svmi93/projetHygieneResto-sub000/internal/client/services"
	"github.com/Svmi93/projetHygieneResto-sub000/internal/client/session"
	"github.com/Svmi93/projetHygieneResto-sub000/internal/client/tokenstore"
	"github.com/Svmi93/projetHygieneResto-sub000/internal/dto"
	"github.com/Svmi93/projetHygieneResto-sub000/internal/filex"
	"github.com/Svmi93/projetHygieneResto-sub000/internal/logging"
)

// sessionIface is the part of the session controller the CLI drives.
type sessionIface interface {
	Init(ctx context.Context) error
	Dispose()
	OnChange(fn func(session.Snapshot))
	Snapshot() session.Snapshot
	Login(ctx context.Context, email, password string) error
	Register(ctx context.Context, req dto.RegisterRequest) (*dto.UserProfile, error)
	Logout(ctx context.Context) error
}

type employeeService interface {
	List(ctx context.Context) ([]*dto.Employee, error)
	Create(ctx context.Context, req dto.EmployeeRequest) (*dto.Employee, error)
	Delete(ctx context.Context, id string) error
}

type equipmentService interface {
	List(ctx context.Context) ([]*dto.Equipment, error)
	Create(ctx context.Context, req dto.EquipmentRequest) (*dto.Equipment, error)
	Delete(ctx context.Context, id string) error
	Temperatures(ctx context.Context, equipmentID string) ([]*dto.TemperatureRecord, error)
	RecordTemperature(ctx context.Context, equipmentID string, celsius float64) (*dto.TemperatureRecord, error)
}

type traceabilityService interface {
	List(ctx context.Context, user *dto.UserProfile) ([]*dto.TraceabilityRecord, error)
	Create(ctx context.Context, req dto.TraceabilityRequest) (*dto.TraceabilityRecord, error)
	Delete(ctx context.Context, id string) error
}

type photoService interface {
	Upload(ctx context.Context, data []byte) (*dto.Photo, error)
	List(ctx context.Context, user *dto.UserProfile, siret string) ([]*dto.Photo, error)
	URL(ctx context.Context, id string) (string, error)
}

type userAdminService interface {
	List(ctx context.Context) ([]*dto.UserProfile, error)
	Create(ctx context.Context, req dto.UserRequest) (*dto.UserProfile, error)
	Delete(ctx context.Context, id string) error
}

type App struct {
	config       *config.Config
	session      sessionIface
	employees    employeeService
	equipment    equipmentService
	traceability traceabilityService
	photos       photoService
	users        userAdminService

	reader  *bufio.Reader
	out     io.Writer
	closeFn func() error

	mu        sync.Mutex
	lastState session.State
}

// NewApp opens the session store and wires the API client, the session
// controller and the feature services around one event bus.
func NewApp(c *config.Config) (*App, error) {
	ctx := context.Background()

	if err := filex.EnsureParentDir(c.StorePath); err != nil {
		return nil, err
	}
	store, err := tokenstore.Open(ctx, c.StorePath)
	if err != nil {
		return nil, fmt.Errorf("open session store: %w", err)
	}

	logger := logging.NewTextLogger(os.Stderr, slog.LevelWarn)

	bus := events.NewBus()
	api := apiclient.New(c.ServerURL, c.RequestTimeout, bus)
	sess := session.New(store, api, bus, logger)
	api.SetTokenSource(sess)

	a := &App{
		config:       c,
		session:      sess,
		employees:    services.NewEmployeeService(api),
		equipment:    services.NewEquipmentService(api),
		traceability: services.NewTraceabilityService(api),
		photos:       services.NewPhotoService(api),
		users:        services.NewAdminUserService(api),
		reader:       bufio.NewReader(os.Stdin),
		out:          os.Stdout,
		closeFn:      store.Close,
	}
	sess.OnChange(a.onSessionChange)
	return a, nil
}

// Run restores the session, then serves commands until the user exits or
// input ends.
func (a *App) Run(ctx context.Context) error {
	defer func() {
		if a.closeFn != nil {
			_ = a.closeFn()
		}
	}()

	if err := a.session.Init(ctx); err != nil {
		printlnFn("Stored session discarded:", err)
	}
	defer a.session.Dispose()

	printlnFn("Welcome to the hygiene tracker CLI (type 'help' for commands)")

	if snap := a.session.Snapshot(); snap.IsAuthenticated() {
		a.setLastState(snap.State)
		printlnFn("Logged in as", snap.User.Email)
		a.report(a.Home(ctx))
	} else {
		printlnFn("Not logged in. Use 'login' or 'register'.")
	}

	runREPL(ctx, a, a.status, bufio.NewScanner(a.reader))
	return nil
}

func (a *App) isLoggedIn() bool {
	return a.session.Snapshot().IsAuthenticated()
}

func (a *App) status() string {
	snap := a.session.Snapshot()
	if !snap.IsAuthenticated() {
		return "(anonymous)"
	}
	return fmt.Sprintf("(%s %s)", snap.User.Email, snap.User.Role)
}

func (a *App) setLastState(s session.State) {
	a.mu.Lock()
	a.lastState = s
	a.mu.Unlock()
}

// onSessionChange tells the user when the server ended their session.
func (a *App) onSessionChange(snap session.Snapshot) {
	a.mu.Lock()
	prev := a.lastState
	a.lastState = snap.State
	a.mu.Unlock()

	if prev == session.Authenticated && snap.State == session.Anonymous && snap.LastError != "" {
		printlnFn("Session ended:", snap.LastError)
	}
}

// report prints a command failure. Commands return errors instead of
// printing them so tests can assert on them.
func (a *App) report(err error) {
	if err != nil {
		printlnFn("Error:", err)
	}
}
