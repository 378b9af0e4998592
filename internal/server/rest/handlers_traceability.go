package rest

import (
	"net/http"

	"github.com/Svmi93/projetHygieneResto-sub000/internal/dto"
	"github.com/Svmi93/projetHygieneResto-sub000/internal/server/auth"
	"github.com/gorilla/mux"
)

func (s *Server) createTraceability(w http.ResponseWriter, r *http.Request, caller auth.Identity) {
	var req dto.TraceabilityRequest
	if !s.decode(w, r, &req) {
		return
	}
	item, err := s.services.Traceability.Create(r.Context(), caller, req)
	s.respond(w, r, http.StatusCreated, item, err)
}

func (s *Server) listAllTraceability(w http.ResponseWriter, r *http.Request, caller auth.Identity) {
	items, err := s.services.Traceability.ListAll(r.Context(), caller)
	s.respond(w, r, http.StatusOK, items, err)
}

func (s *Server) listClientTraceability(w http.ResponseWriter, r *http.Request, caller auth.Identity) {
	items, err := s.services.Traceability.ListByClient(r.Context(), caller, mux.Vars(r)["siret"])
	s.respond(w, r, http.StatusOK, items, err)
}

func (s *Server) deleteTraceability(w http.ResponseWriter, r *http.Request, caller auth.Identity) {
	err := s.services.Traceability.Delete(r.Context(), caller, mux.Vars(r)["id"])
	s.respond(w, r, http.StatusNoContent, nil, err)
}

func (s *Server) requestPhotoUpload(w http.ResponseWriter, r *http.Request, caller auth.Identity) {
	var req dto.PhotoUploadRequest
	if !s.decode(w, r, &req) {
		return
	}
	resp, err := s.services.Photos.RequestUpload(r.Context(), caller, req)
	s.respond(w, r, http.StatusCreated, resp, err)
}

func (s *Server) confirmPhoto(w http.ResponseWriter, r *http.Request, caller auth.Identity) {
	err := s.services.Photos.Confirm(r.Context(), caller, mux.Vars(r)["id"])
	s.respond(w, r, http.StatusNoContent, nil, err)
}

func (s *Server) photoURL(w http.ResponseWriter, r *http.Request, caller auth.Identity) {
	resp, err := s.services.Photos.URL(r.Context(), caller, mux.Vars(r)["id"])
	s.respond(w, r, http.StatusOK, resp, err)
}

func (s *Server) listClientPhotos(w http.ResponseWriter, r *http.Request, caller auth.Identity) {
	items, err := s.services.Photos.ListByClient(r.Context(), caller, mux.Vars(r)["siret"])
	s.respond(w, r, http.StatusOK, items, err)
}

func (s *Server) deletePhoto(w http.ResponseWriter, r *http.Request, caller auth.Identity) {
	err := s.services.Photos.Delete(r.Context(), caller, mux.Vars(r)["id"])
	s.respond(w, r, http.StatusNoContent, nil, err)
}
