package rest

import (
	"net/http"

	"github.com/Svmi93/projetHygieneResto-sub000/internal/dto"
	"github.com/Svmi93/projetHygieneResto-sub000/internal/server/auth"
	"github.com/gorilla/mux"
)

func (s *Server) listUsers(w http.ResponseWriter, r *http.Request, caller auth.Identity) {
	items, err := s.services.AdminUsers.List(r.Context(), caller)
	s.respond(w, r, http.StatusOK, items, err)
}

func (s *Server) getUser(w http.ResponseWriter, r *http.Request, caller auth.Identity) {
	item, err := s.services.AdminUsers.Get(r.Context(), caller, mux.Vars(r)["id"])
	s.respond(w, r, http.StatusOK, item, err)
}

func (s *Server) createUser(w http.ResponseWriter, r *http.Request, caller auth.Identity) {
	var req dto.UserRequest
	if !s.decode(w, r, &req) {
		return
	}
	item, err := s.services.AdminUsers.Create(r.Context(), caller, req)
	s.respond(w, r, http.StatusCreated, item, err)
}

func (s *Server) updateUser(w http.ResponseWriter, r *http.Request, caller auth.Identity) {
	var req dto.UserRequest
	if !s.decode(w, r, &req) {
		return
	}
	item, err := s.services.AdminUsers.Update(r.Context(), caller, mux.Vars(r)["id"], req)
	s.respond(w, r, http.StatusOK, item, err)
}

func (s *Server) deleteUser(w http.ResponseWriter, r *http.Request, caller auth.Identity) {
	err := s.services.AdminUsers.Delete(r.Context(), caller, mux.Vars(r)["id"])
	s.respond(w, r, http.StatusNoContent, nil, err)
}
