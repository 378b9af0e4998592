package rest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/Svmi93/projetHygieneResto-sub000/internal/common"
	"github.com/Svmi93/projetHygieneResto-sub000/internal/dto"
	"github.com/Svmi93/projetHygieneResto-sub000/internal/logging"
	"github.com/Svmi93/projetHygieneResto-sub000/internal/server/services"
)

const maxBodyBytes = 1 << 20

var (
	errBadRequestBody = errors.New("invalid request body")
	errMissingToken   = errors.New("missing bearer token")
	errInvalidToken   = errors.New("invalid or expired token")
	errNoRoute        = errors.New("not found")
	errNoMethod       = errors.New("method not allowed")
	errInsufficient   = errors.New("insufficient role permissions")
)

type responder struct {
	logger logging.Logger
}

func (r responder) writeJSON(ctx context.Context, w http.ResponseWriter, status int, payload any) {
	if status == http.StatusNoContent || payload == nil {
		w.WriteHeader(status)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		r.logger.Error(ctx, "failed to encode response", "request_id", requestIDFrom(ctx), "error", err)
	}
}

func (r responder) writeError(ctx context.Context, w http.ResponseWriter, status int, err error) {
	r.writeJSON(ctx, w, status, dto.ErrorResponse{Message: err.Error()})
}

// handleServiceError maps a service error to its status and {message} body.
// Unclassified errors are logged and answered with a generic 500.
func (r responder) handleServiceError(ctx context.Context, w http.ResponseWriter, err error) {
	var ve *common.ValidationError
	switch {
	case errors.As(err, &ve):
		r.writeJSON(ctx, w, http.StatusBadRequest, dto.ErrorResponse{Message: "validation failed", Errors: ve.FieldErrors})
	case errors.Is(err, services.ErrInvalidCredentials):
		r.writeJSON(ctx, w, http.StatusUnauthorized, dto.ErrorResponse{Message: "invalid email or password"})
	case errors.Is(err, common.ErrorUnauthorized):
		r.writeJSON(ctx, w, http.StatusUnauthorized, dto.ErrorResponse{Message: errInvalidToken.Error()})
	case errors.Is(err, common.ErrorForbidden):
		r.writeJSON(ctx, w, http.StatusForbidden, dto.ErrorResponse{Message: "forbidden"})
	case errors.Is(err, common.ErrorNotFound):
		r.writeJSON(ctx, w, http.StatusNotFound, dto.ErrorResponse{Message: "not found"})
	case errors.Is(err, common.ErrorAlreadyExists):
		r.writeJSON(ctx, w, http.StatusConflict, dto.ErrorResponse{Message: "already exists"})
	default:
		r.logger.Error(ctx, "request failed", "request_id", requestIDFrom(ctx), "error", err)
		r.writeJSON(ctx, w, http.StatusInternalServerError, dto.ErrorResponse{Message: common.ErrorInternal.Error()})
	}
}

// decodeJSON reads a JSON body of at most maxBodyBytes into v.
func decodeJSON(w http.ResponseWriter, req *http.Request, v any) error {
	body := http.MaxBytesReader(w, req.Body, maxBodyBytes)
	dec := json.NewDecoder(body)
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("%w: %v", errBadRequestBody, err)
	}
	if dec.More() {
		return errBadRequestBody
	}
	_, _ = io.Copy(io.Discard, body)
	return nil
}
