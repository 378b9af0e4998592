package rest

import (
	"net/http"

	"github.com/Svmi93/projetHygieneResto-sub000/internal/roles"
	"github.com/Svmi93/projetHygieneResto-sub000/internal/server/auth"
	"github.com/gorilla/mux"
)

var (
	anyRole        = roles.SetOf()
	superAdminOnly = roles.SetOf(roles.SuperAdmin)
	adminOnly      = roles.SetOf(roles.AdminClient)
	tenantUsers    = roles.SetOf(roles.AdminClient, roles.Employer)
	tenantManagers = roles.SetOf(roles.SuperAdmin, roles.AdminClient)
)

type identityHandler func(w http.ResponseWriter, r *http.Request, caller auth.Identity)

func (s *Server) routes() *mux.Router {
	r := mux.NewRouter()
	r.Use(requestLogger(s.logger), s.metrics.middleware)
	// mux skips middleware for requests that match no route.
	r.NotFoundHandler = s.unmatched(http.StatusNotFound, errNoRoute)
	r.MethodNotAllowedHandler = s.unmatched(http.StatusMethodNotAllowed, errNoMethod)

	r.Handle("/metrics", metricsHandler(s.registry)).Methods(http.MethodGet)
	r.HandleFunc("/health", s.health).Methods(http.MethodGet)

	r.HandleFunc("/auth/login", s.login).Methods(http.MethodPost)
	r.HandleFunc("/auth/register", s.register).Methods(http.MethodPost)
	r.HandleFunc("/auth/verify-token", s.verifyToken).Methods(http.MethodPost)

	api := r.NewRoute().Subrouter()
	api.Use(s.authenticate)

	s.handle(api, "/admin-client/employees", adminOnly, s.listEmployees).Methods(http.MethodGet)
	s.handle(api, "/admin-client/employees", adminOnly, s.createEmployee).Methods(http.MethodPost)
	s.handle(api, "/admin-client/employees/{id}", adminOnly, s.updateEmployee).Methods(http.MethodPut)
	s.handle(api, "/admin-client/employees/{id}", adminOnly, s.deleteEmployee).Methods(http.MethodDelete)

	s.handle(api, "/admin-client/equipments", tenantUsers, s.listEquipments).Methods(http.MethodGet)
	s.handle(api, "/admin-client/equipments", adminOnly, s.createEquipment).Methods(http.MethodPost)
	s.handle(api, "/admin-client/equipments/{id}", tenantUsers, s.getEquipment).Methods(http.MethodGet)
	s.handle(api, "/admin-client/equipments/{id}", adminOnly, s.updateEquipment).Methods(http.MethodPut)
	s.handle(api, "/admin-client/equipments/{id}", adminOnly, s.deleteEquipment).Methods(http.MethodDelete)

	s.handle(api, "/admin-client/temperatures", tenantUsers, s.listTemperatures).Methods(http.MethodGet)
	s.handle(api, "/admin-client/temperatures", tenantUsers, s.recordTemperature).Methods(http.MethodPost)

	s.handle(api, "/traceability", tenantUsers, s.createTraceability).Methods(http.MethodPost)
	s.handle(api, "/traceability", superAdminOnly, s.listAllTraceability).Methods(http.MethodGet)
	s.handle(api, "/traceability/client/{siret}", anyRole, s.listClientTraceability).Methods(http.MethodGet)
	s.handle(api, "/traceability/{id}", tenantManagers, s.deleteTraceability).Methods(http.MethodDelete)

	s.handle(api, "/photos/upload-url", tenantUsers, s.requestPhotoUpload).Methods(http.MethodPost)
	s.handle(api, "/photos/client/{siret}", anyRole, s.listClientPhotos).Methods(http.MethodGet)
	s.handle(api, "/photos/{id}/url", anyRole, s.photoURL).Methods(http.MethodGet)
	s.handle(api, "/photos/{id}/confirm", tenantUsers, s.confirmPhoto).Methods(http.MethodPost)
	s.handle(api, "/photos/{id}", anyRole, s.deletePhoto).Methods(http.MethodDelete)

	s.handle(api, "/admin/users", superAdminOnly, s.listUsers).Methods(http.MethodGet)
	s.handle(api, "/admin/users", superAdminOnly, s.createUser).Methods(http.MethodPost)
	s.handle(api, "/admin/users/{id}", superAdminOnly, s.getUser).Methods(http.MethodGet)
	s.handle(api, "/admin/users/{id}", superAdminOnly, s.updateUser).Methods(http.MethodPut)
	s.handle(api, "/admin/users/{id}", superAdminOnly, s.deleteUser).Methods(http.MethodDelete)

	return r
}

func (s *Server) unmatched(status int, err error) http.Handler {
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.responder.writeError(r.Context(), w, status, err)
	})
	return requestLogger(s.logger)(s.metrics.middleware(h))
}

// handle registers h behind the role check and hands it the caller's identity.
func (s *Server) handle(r *mux.Router, path string, allowed roles.Set, h identityHandler) *mux.Route {
	return r.Handle(path, s.requireRole(allowed, http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		caller, _ := identityFrom(req.Context())
		h(w, req, caller)
	})))
}
