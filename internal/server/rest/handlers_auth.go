package rest

import (
	"net/http"

	"github.com/Svmi93/projetHygieneResto-sub000/internal/dto"
)

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	s.responder.writeJSON(r.Context(), w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.responder.writeError(r.Context(), w, http.StatusBadRequest, errBadRequestBody)
		return
	}

	resp, err := s.services.Users.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		s.responder.handleServiceError(r.Context(), w, err)
		return
	}

	s.logger.Info(r.Context(), "Logged in", "user_id", resp.User.ID, "role", resp.User.Role.String())
	s.responder.writeJSON(r.Context(), w, http.StatusOK, resp)
}

func (s *Server) register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.responder.writeError(r.Context(), w, http.StatusBadRequest, errBadRequestBody)
		return
	}

	resp, err := s.services.Users.Register(r.Context(), req)
	if err != nil {
		s.responder.handleServiceError(r.Context(), w, err)
		return
	}

	s.logger.Info(r.Context(), "Registered", "user_id", resp.User.ID, "siret", resp.User.Siret)
	s.responder.writeJSON(r.Context(), w, http.StatusCreated, resp)
}

// verifyToken reads the bearer token itself: a missing or stale token is
// the answer, not a precondition.
func (s *Server) verifyToken(w http.ResponseWriter, r *http.Request) {
	token := bearerToken(r)
	if token == "" {
		s.responder.writeError(r.Context(), w, http.StatusUnauthorized, errMissingToken)
		return
	}

	user, err := s.services.Users.Verify(r.Context(), token)
	if err != nil {
		s.responder.handleServiceError(r.Context(), w, err)
		return
	}

	s.responder.writeJSON(r.Context(), w, http.StatusOK, dto.VerifyResponse{User: user})
}
