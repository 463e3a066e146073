package v1alpha1

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/render"
	api "github.com/renalecon/transplant-planner/api/v1alpha1"
	"github.com/renalecon/transplant-planner/internal/handlers/v1alpha1/mappers"
	"github.com/renalecon/transplant-planner/internal/projection"
)

// (GET /api/v1alpha1/parameters)
func (s *ServiceHandler) ListParameterRanges(w http.ResponseWriter, r *http.Request) {
	_ = render.Render(w, r, mappers.ParameterRangesToApi(projection.DefaultRanges()))
}

// (GET /api/v1alpha1/sessions)
func (s *ServiceHandler) ListSessions(w http.ResponseWriter, r *http.Request) {
	sessions, err := s.sessionSrv.ListSessions(r.Context())
	if err != nil {
		s.replyServiceError(w, r, err)
		return
	}
	_ = render.Render(w, r, mappers.SessionListToApi(sessions))
}

// (POST /api/v1alpha1/sessions)
func (s *ServiceHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	var form api.SessionCreate
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		s.replyError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := s.validator.Struct(form); err != nil {
		s.replyError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	session, err := s.sessionSrv.CreateSession(r.Context(), form.Name, form.Parameters)
	if err != nil {
		s.replyServiceError(w, r, err)
		return
	}

	render.Status(r, http.StatusCreated)
	_ = render.Render(w, r, mappers.SessionToApi(*session))
}

// (GET /api/v1alpha1/sessions/{id})
func (s *ServiceHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	id, ok := s.sessionID(w, r)
	if !ok {
		return
	}

	session, err := s.sessionSrv.GetSession(r.Context(), id)
	if err != nil {
		s.replyServiceError(w, r, err)
		return
	}
	_ = render.Render(w, r, mappers.SessionToApi(*session))
}

// (DELETE /api/v1alpha1/sessions/{id})
func (s *ServiceHandler) DeleteSession(w http.ResponseWriter, r *http.Request) {
	id, ok := s.sessionID(w, r)
	if !ok {
		return
	}

	if err := s.sessionSrv.DeleteSession(r.Context(), id); err != nil {
		s.replyServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// (PATCH /api/v1alpha1/sessions/{id}/parameters)
func (s *ServiceHandler) UpdateParameters(w http.ResponseWriter, r *http.Request) {
	id, ok := s.sessionID(w, r)
	if !ok {
		return
	}

	var form api.ParametersUpdate
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		s.replyError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := s.validator.Struct(form); err != nil {
		s.replyError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	session, err := s.sessionSrv.UpdateParameters(r.Context(), id, form.Parameters)
	if err != nil {
		s.replyServiceError(w, r, err)
		return
	}
	_ = render.Render(w, r, mappers.SessionToApi(*session))
}

// (POST /api/v1alpha1/sessions/{id}/reset)
func (s *ServiceHandler) ResetParameters(w http.ResponseWriter, r *http.Request) {
	id, ok := s.sessionID(w, r)
	if !ok {
		return
	}

	session, err := s.sessionSrv.ResetParameters(r.Context(), id)
	if err != nil {
		s.replyServiceError(w, r, err)
		return
	}
	_ = render.Render(w, r, mappers.SessionToApi(*session))
}
