// Package session owns "who is logged in" for the CLI: it restores a stored
// session at startup, performs login and logout, and tears the session down
// when the backend rejects its token.
package session

import (
	"context"
	"errors"
	"sync"

	"github.com/Svmi93/projetHygieneResto-sub000/internal/client/apiclient"
	"github.com/Svmi93/projetHygieneResto-sub000/internal/client/events"
	"github.com/Svmi93/projetHygieneResto-sub000/internal/client/tokenstore"
	"github.com/Svmi93/projetHygieneResto-sub000/internal/dto"
	"github.com/Svmi93/projetHygieneResto-sub000/internal/logging"
)

const (
	msgUnreachable    = "server unreachable"
	msgSessionExpired = "session expired, please log in again"
)

var ErrNotInitialized = errors.New("session not initialized")

type Store interface {
	Load(ctx context.Context) (string, *dto.UserProfile, error)
	Save(ctx context.Context, token string, user *dto.UserProfile) error
	SaveProfile(ctx context.Context, user *dto.UserProfile) error
	Clear(ctx context.Context) error
}

type AuthAPI interface {
	Login(ctx context.Context, email, password string) (*dto.AuthResponse, error)
	Register(ctx context.Context, req dto.RegisterRequest) (*dto.AuthResponse, error)
	VerifyToken(ctx context.Context) (*dto.UserProfile, error)
}

type Subscriber interface {
	Subscribe(fn func(events.Event)) func()
}

type Controller struct {
	store  Store
	api    AuthAPI
	bus    Subscriber
	logger logging.Logger

	// mu guards the fields below and serialises every write to store.
	mu          sync.Mutex
	state       State
	token       string
	user        *dto.UserProfile
	lastErr     string
	listeners   []func(Snapshot)
	unsubscribe func()
}

func New(store Store, api AuthAPI, bus Subscriber, l logging.Logger) *Controller {
	return &Controller{
		store:  store,
		api:    api,
		bus:    bus,
		logger: l.With("module", "session"),
	}
}

// Init subscribes to unauthorized events and restores the stored session,
// if any. The returned error only reports why restoring failed; the
// controller is usable (Anonymous) either way.
func (c *Controller) Init(ctx context.Context) error {
	c.mu.Lock()
	if c.unsubscribe == nil {
		c.unsubscribe = c.bus.Subscribe(c.onEvent)
	}
	c.mu.Unlock()

	return c.VerifyToken(ctx)
}

// Dispose stops listening for events. Safe to call more than once.
func (c *Controller) Dispose() {
	c.mu.Lock()
	unsubscribe := c.unsubscribe
	c.unsubscribe = nil
	c.mu.Unlock()

	if unsubscribe != nil {
		unsubscribe()
	}
}

// OnChange registers fn to be called with the new snapshot after every state
// transition.
func (c *Controller) OnChange(fn func(Snapshot)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.listeners = append(c.listeners, fn)
}

func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

func (c *Controller) IsAuthenticated() bool {
	return c.Snapshot().IsAuthenticated()
}

// Token returns the bearer token to attach to API calls, "" when anonymous.
func (c *Controller) Token() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.token
}

func (c *Controller) snapshotLocked() Snapshot {
	return Snapshot{
		State:     c.state,
		User:      c.user,
		IsLoading: c.state == Uninitialized || c.state == Verifying,
		LastError: c.lastErr,
	}
}

// setLocked applies a transition and returns the listeners to notify.
func (c *Controller) setLocked(state State, token string, user *dto.UserProfile, lastErr string) (Snapshot, []func(Snapshot)) {
	c.state = state
	c.token = token
	c.user = user
	c.lastErr = lastErr
	return c.snapshotLocked(), append([]func(Snapshot){}, c.listeners...)
}

func notify(snap Snapshot, listeners []func(Snapshot)) {
	for _, fn := range listeners {
		fn(snap)
	}
}

func (c *Controller) transition(state State, token string, user *dto.UserProfile, lastErr string) {
	c.mu.Lock()
	snap, listeners := c.setLocked(state, token, user, lastErr)
	c.mu.Unlock()
	notify(snap, listeners)
}

// VerifyToken re-validates the stored token with the backend. Without a
// stored session it settles in Anonymous without any network call. Any
// failure wipes the stored session.
func (c *Controller) VerifyToken(ctx context.Context) error {
	token, _, err := c.store.Load(ctx)
	if err != nil {
		if !errors.Is(err, tokenstore.ErrNoSession) {
			c.logger.Warn(ctx, "session store unreadable", "error", err)
		}
		c.mu.Lock()
		_ = c.store.Clear(ctx)
		snap, listeners := c.setLocked(Anonymous, "", nil, "")
		c.mu.Unlock()
		notify(snap, listeners)
		return nil
	}

	c.transition(Verifying, token, nil, "")

	user, err := c.api.VerifyToken(ctx)
	if err == nil && user != nil {
		err = user.Validate()
	} else if err == nil {
		err = dto.ErrInvalidRole
	}

	c.mu.Lock()
	if err != nil {
		if clearErr := c.store.Clear(ctx); clearErr != nil {
			c.logger.Error(ctx, "failed to clear session store", "error", clearErr)
		}
		snap, listeners := c.setLocked(Anonymous, "", nil, errorMessage(err))
		c.mu.Unlock()
		notify(snap, listeners)
		c.logger.Info(ctx, "stored session rejected", "error", err)
		return err
	}

	if saveErr := c.store.SaveProfile(ctx, user); saveErr != nil {
		c.logger.Warn(ctx, "failed to refresh cached profile", "error", saveErr)
	}
	snap, listeners := c.setLocked(Authenticated, token, user, "")
	c.mu.Unlock()
	notify(snap, listeners)
	return nil
}

// Login authenticates with the backend. On failure the stored session is
// left untouched and the controller stays Anonymous.
func (c *Controller) Login(ctx context.Context, email, password string) error {
	c.mu.Lock()
	prevErr := c.lastErr
	snap, listeners := c.setLocked(Verifying, "", nil, prevErr)
	c.mu.Unlock()
	notify(snap, listeners)

	resp, err := c.api.Login(ctx, email, password)
	if err == nil {
		switch {
		case resp == nil || resp.Token == "" || resp.User == nil:
			err = errors.New("incomplete login response")
		default:
			err = resp.User.Validate()
		}
	}
	if err != nil {
		c.transition(Anonymous, "", nil, errorMessage(err))
		return err
	}

	c.mu.Lock()
	if err := c.store.Save(ctx, resp.Token, resp.User); err != nil {
		snap, listeners := c.setLocked(Anonymous, "", nil, err.Error())
		c.mu.Unlock()
		notify(snap, listeners)
		return err
	}
	snap, listeners = c.setLocked(Authenticated, resp.Token, resp.User, "")
	c.mu.Unlock()
	notify(snap, listeners)

	c.logger.Info(ctx, "logged in", "user_id", resp.User.ID, "role", resp.User.Role.String())
	return nil
}

// Register creates an admin_client account. It never authenticates; the
// user logs in afterwards.
func (c *Controller) Register(ctx context.Context, req dto.RegisterRequest) (*dto.UserProfile, error) {
	resp, err := c.api.Register(ctx, req)
	if err != nil {
		c.mu.Lock()
		c.lastErr = errorMessage(err)
		c.mu.Unlock()
		return nil, err
	}
	return resp.User, nil
}

// Logout wipes the stored session unconditionally. Idempotent.
func (c *Controller) Logout(ctx context.Context) error {
	c.mu.Lock()
	err := c.store.Clear(ctx)
	wasAnonymous := c.state == Anonymous && c.token == ""
	snap, listeners := c.setLocked(Anonymous, "", nil, "")
	c.mu.Unlock()

	if !wasAnonymous {
		notify(snap, listeners)
	}
	return err
}

// onEvent tears down an authenticated session on the first unauthorized
// event. Later events find the controller Anonymous and are ignored.
func (c *Controller) onEvent(e events.Event) {
	if e.Kind != events.KindUnauthorized {
		return
	}

	c.mu.Lock()
	if c.state != Authenticated {
		c.mu.Unlock()
		return
	}
	ctx := context.Background()
	if err := c.store.Clear(ctx); err != nil {
		c.logger.Error(ctx, "failed to clear session store", "error", err)
	}
	snap, listeners := c.setLocked(Anonymous, "", nil, msgSessionExpired)
	c.mu.Unlock()

	c.logger.Info(ctx, "session rejected by server", "status", e.Status, "method", e.Method, "path", e.Path)
	notify(snap, listeners)
}

// errorMessage turns an API failure into the text shown to the user.
func errorMessage(err error) string {
	if errors.Is(err, apiclient.ErrUnavailable) {
		return msgUnreachable
	}
	var apiErr *apiclient.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Error()
	}
	return err.Error()
}
