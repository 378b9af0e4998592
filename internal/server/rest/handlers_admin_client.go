package rest

import (
	"net/http"

	"github.com/Svmi93/projetHygieneResto-sub000/internal/dto"
	"github.com/Svmi93/projetHygieneResto-sub000/internal/server/auth"
	"github.com/gorilla/mux"
)

func (s *Server) listEmployees(w http.ResponseWriter, r *http.Request, caller auth.Identity) {
	items, err := s.services.Employees.List(r.Context(), caller)
	s.respond(w, r, http.StatusOK, items, err)
}

func (s *Server) createEmployee(w http.ResponseWriter, r *http.Request, caller auth.Identity) {
	var req dto.EmployeeRequest
	if !s.decode(w, r, &req) {
		return
	}
	item, err := s.services.Employees.Create(r.Context(), caller, req)
	s.respond(w, r, http.StatusCreated, item, err)
}

func (s *Server) updateEmployee(w http.ResponseWriter, r *http.Request, caller auth.Identity) {
	var req dto.EmployeeRequest
	if !s.decode(w, r, &req) {
		return
	}
	item, err := s.services.Employees.Update(r.Context(), caller, mux.Vars(r)["id"], req)
	s.respond(w, r, http.StatusOK, item, err)
}

func (s *Server) deleteEmployee(w http.ResponseWriter, r *http.Request, caller auth.Identity) {
	err := s.services.Employees.Delete(r.Context(), caller, mux.Vars(r)["id"])
	s.respond(w, r, http.StatusNoContent, nil, err)
}

func (s *Server) listEquipments(w http.ResponseWriter, r *http.Request, caller auth.Identity) {
	items, err := s.services.Equipments.List(r.Context(), caller)
	s.respond(w, r, http.StatusOK, items, err)
}

func (s *Server) getEquipment(w http.ResponseWriter, r *http.Request, caller auth.Identity) {
	item, err := s.services.Equipments.Get(r.Context(), caller, mux.Vars(r)["id"])
	s.respond(w, r, http.StatusOK, item, err)
}

func (s *Server) createEquipment(w http.ResponseWriter, r *http.Request, caller auth.Identity) {
	var req dto.EquipmentRequest
	if !s.decode(w, r, &req) {
		return
	}
	item, err := s.services.Equipments.Create(r.Context(), caller, req)
	s.respond(w, r, http.StatusCreated, item, err)
}

func (s *Server) updateEquipment(w http.ResponseWriter, r *http.Request, caller auth.Identity) {
	var req dto.EquipmentRequest
	if !s.decode(w, r, &req) {
		return
	}
	item, err := s.services.Equipments.Update(r.Context(), caller, mux.Vars(r)["id"], req)
	s.respond(w, r, http.StatusOK, item, err)
}

func (s *Server) deleteEquipment(w http.ResponseWriter, r *http.Request, caller auth.Identity) {
	err := s.services.Equipments.Delete(r.Context(), caller, mux.Vars(r)["id"])
	s.respond(w, r, http.StatusNoContent, nil, err)
}

func (s *Server) listTemperatures(w http.ResponseWriter, r *http.Request, caller auth.Identity) {
	items, err := s.services.Temperatures.List(r.Context(), caller, r.URL.Query().Get("equipmentId"))
	s.respond(w, r, http.StatusOK, items, err)
}

func (s *Server) recordTemperature(w http.ResponseWriter, r *http.Request, caller auth.Identity) {
	var req dto.TemperatureRequest
	if !s.decode(w, r, &req) {
		return
	}
	item, err := s.services.Temperatures.Record(r.Context(), caller, req)
	s.respond(w, r, http.StatusCreated, item, err)
}

// decode reads the JSON body, answering 400 itself on failure.
func (s *Server) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := decodeJSON(w, r, v); err != nil {
		s.responder.writeError(r.Context(), w, http.StatusBadRequest, errBadRequestBody)
		return false
	}
	return true
}

// respond writes payload with status, or the mapped error when err is set.
func (s *Server) respond(w http.ResponseWriter, r *http.Request, status int, payload any, err error) {
	if err != nil {
		s.responder.handleServiceError(r.Context(), w, err)
		return
	}
	s.responder.writeJSON(r.Context(), w, status, payload)
}
