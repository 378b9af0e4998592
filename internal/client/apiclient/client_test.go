package apiclient

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/Svmi93/projetHygieneResto-sub000/internal/client/events"
	"github.com/Svmi93/projetHygieneResto-sub000/internal/dto"
	"github.com/Svmi93/projetHygieneResto-sub000/internal/roles"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticToken string

func (s staticToken) Token() string { return string(s) }

type recordingBus struct {
	mu     sync.Mutex
	events []events.Event
}

func (b *recordingBus) Publish(e events.Event) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = append(b.events, e)
}

func (b *recordingBus) all() []events.Event {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]events.Event(nil), b.events...)
}

func newClient(t *testing.T, h http.HandlerFunc, token string) (*Client, *recordingBus) {
	t.Helper()
	ts := httptest.NewServer(h)
	t.Cleanup(ts.Close)

	bus := &recordingBus{}
	c := New(ts.URL+"/", time.Second, bus)
	c.SetTokenSource(staticToken(token))
	return c, bus
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func TestDo_AttachesBearerToken(t *testing.T) {
	var gotAuth string
	c, _ := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		writeJSON(w, http.StatusOK, []dto.Equipment{{ID: "eq1"}})
	}, "jwt")

	items, err := c.ListEquipments(context.Background())

	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Bearer jwt", gotAuth)
}

func TestDo_NoTokenNoHeader(t *testing.T) {
	var hasAuth bool
	c, _ := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, hasAuth = r.Header["Authorization"]
		writeJSON(w, http.StatusOK, dto.AuthResponse{Token: "jwt"})
	}, "")

	_, err := c.Login(context.Background(), "a@resto.fr", "secret1")

	require.NoError(t, err)
	assert.False(t, hasAuth)
}

func TestDo_UnauthorizedPublishesBeforeReturning(t *testing.T) {
	for _, status := range []int{http.StatusUnauthorized, http.StatusForbidden} {
		c, bus := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, status, dto.ErrorResponse{Message: "invalid or expired token"})
		}, "stale")

		_, err := c.ListUsers(context.Background())

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrUnauthorized)
		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, status, apiErr.Status)

		got := bus.all()
		require.Len(t, got, 1)
		assert.Equal(t, events.Event{Kind: events.KindUnauthorized, Status: status, Method: http.MethodGet, Path: "/admin/users"}, got[0])
	}
}

func TestDo_CredentialCallsDoNotPublish(t *testing.T) {
	c, bus := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnauthorized, dto.ErrorResponse{Message: "invalid email or password"})
	}, "")

	_, err := c.Login(context.Background(), "a@resto.fr", "wrong")
	require.Error(t, err)
	assert.Equal(t, "invalid email or password", err.Error())

	_, err = c.Register(context.Background(), dto.RegisterRequest{Email: "a@resto.fr"})
	require.Error(t, err)

	assert.Empty(t, bus.all())
}

func TestDo_VerifyTokenRejectionPublishes(t *testing.T) {
	c, bus := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusForbidden, dto.ErrorResponse{Message: "forbidden"})
	}, "jwt")

	_, err := c.VerifyToken(context.Background())

	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Len(t, bus.all(), 1)
}

func TestDo_OtherErrorsKeepBackendMessage(t *testing.T) {
	c, bus := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{
			Message: "validation failed",
			Errors:  map[string]string{"maxTemp": "must be >= minTemp"},
		})
	}, "jwt")

	_, err := c.CreateEquipment(context.Background(), dto.EquipmentRequest{Name: "Frigo"})

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Equal(t, "validation failed", apiErr.Error())
	assert.Equal(t, "must be >= minTemp", apiErr.Errors["maxTemp"])
	assert.NotErrorIs(t, err, ErrUnauthorized)
	assert.Empty(t, bus.all())
}

func TestDo_ErrorWithoutBodyUsesStatusText(t *testing.T) {
	c, _ := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}, "jwt")

	err := c.DeletePhoto(context.Background(), "p1")

	require.Error(t, err)
	assert.Equal(t, "Bad Gateway", err.Error())
}

func TestDo_ServerUnreachable(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	ts.Close()

	bus := &recordingBus{}
	c := New(ts.URL, time.Second, bus)

	_, err := c.ListAllTraceability(context.Background())

	assert.ErrorIs(t, err, ErrUnavailable)
	assert.Empty(t, bus.all())
}

func TestDo_Timeout(t *testing.T) {
	release := make(chan struct{})
	c, _ := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}, "jwt")
	defer close(release)
	c.timeout = 50 * time.Millisecond

	_, err := c.ListEmployees(context.Background())

	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestEndpoints_PathsAndPayloads(t *testing.T) {
	type call struct{ method, uri string }
	var got []call
	var lastBody map[string]any

	c, _ := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		got = append(got, call{r.Method, r.URL.RequestURI()})
		lastBody = nil
		_ = json.NewDecoder(r.Body).Decode(&lastBody)

		switch {
		case r.Method == http.MethodDelete, r.URL.Path == "/photos/p 1/confirm":
			w.WriteHeader(http.StatusNoContent)
		case r.URL.Path == "/photos/p1/url":
			writeJSON(w, http.StatusOK, dto.PhotoURLResponse{URL: "http://s3/get"})
		case r.URL.Path == "/auth/verify-token":
			writeJSON(w, http.StatusOK, dto.VerifyResponse{User: &dto.UserProfile{ID: "u1", Role: roles.Employer}})
		case r.Method == http.MethodGet:
			writeJSON(w, http.StatusOK, []any{})
		default:
			writeJSON(w, http.StatusOK, map[string]any{})
		}
	}, "jwt")
	ctx := context.Background()

	user, err := c.VerifyToken(ctx)
	require.NoError(t, err)
	assert.Equal(t, roles.Employer, user.Role)

	_, err = c.ListTemperatures(ctx, "eq 1")
	require.NoError(t, err)

	_, err = c.RequestPhotoUpload(ctx, "image/png")
	require.NoError(t, err)
	assert.Equal(t, "image/png", lastBody["contentType"])

	require.NoError(t, c.ConfirmPhoto(ctx, "p 1"))

	u, err := c.PhotoURL(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, "http://s3/get", u)

	_, err = c.UpdateUser(ctx, "u1", dto.UserRequest{Email: "x@resto.fr"})
	require.NoError(t, err)
	assert.NotContains(t, lastBody, "role")

	require.NoError(t, c.DeleteTraceability(ctx, "tr1"))

	assert.Equal(t, []call{
		{http.MethodPost, "/auth/verify-token"},
		{http.MethodGet, "/admin-client/temperatures?equipmentId=eq+1"},
		{http.MethodPost, "/photos/upload-url"},
		{http.MethodPost, "/photos/p%201/confirm"},
		{http.MethodGet, "/photos/p1/url"},
		{http.MethodPut, "/admin/users/u1"},
		{http.MethodDelete, "/traceability/tr1"},
	}, got)
}

func TestUploadToPresignedURL(t *testing.T) {
	var gotCT string
	var gotAuth bool
	c, _ := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotCT = r.Header.Get("Content-Type")
		_, gotAuth = r.Header["Authorization"]
		w.WriteHeader(http.StatusOK)
	}, "jwt")

	err := c.UploadToPresignedURL(context.Background(), c.baseURL+"/bucket/key", "image/webp", []byte("data"))

	require.NoError(t, err)
	assert.Equal(t, "image/webp", gotCT)
	assert.False(t, gotAuth, "presigned uploads must not carry the API token")
}

func TestAPIError_Unwrap(t *testing.T) {
	assert.True(t, errors.Is(&APIError{Status: http.StatusUnauthorized}, ErrUnauthorized))
	assert.True(t, errors.Is(&APIError{Status: http.StatusForbidden}, ErrUnauthorized))
	assert.False(t, errors.Is(&APIError{Status: http.StatusNotFound}, ErrUnauthorized))
}
