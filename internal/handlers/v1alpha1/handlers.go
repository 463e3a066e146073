// Package v1alpha1 exposes the REST surface: session management plus the
// projection, sensitivity, summary and report endpoints derived from it.
package v1alpha1

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/google/uuid"
	api "github.com/renalecon/transplant-planner/api/v1alpha1"
	"github.com/renalecon/transplant-planner/internal/handlers/validator"
	"github.com/renalecon/transplant-planner/internal/service"
	"github.com/renalecon/transplant-planner/pkg/requestid"
)

type ServiceHandler struct {
	sessionSrv     *service.SessionService
	projectionSrv  *service.ProjectionService
	sensitivitySrv *service.SensitivityService
	summarySrv     *service.SummaryService
	reportSrv      *service.ReportService
	validator      *validator.Validator
}

func NewServiceHandler(
	sessionSrv *service.SessionService,
	projectionSrv *service.ProjectionService,
	sensitivitySrv *service.SensitivityService,
	summarySrv *service.SummaryService,
	reportSrv *service.ReportService,
) *ServiceHandler {
	v := validator.NewValidator()
	v.Register(validator.NewSessionValidationRules()...)

	return &ServiceHandler{
		sessionSrv:     sessionSrv,
		projectionSrv:  projectionSrv,
		sensitivitySrv: sensitivitySrv,
		summarySrv:     summarySrv,
		reportSrv:      reportSrv,
		validator:      v,
	}
}

func (s *ServiceHandler) RegisterRoutes(router chi.Router) {
	router.Get("/parameters", s.ListParameterRanges)

	router.Route("/sessions", func(r chi.Router) {
		r.Get("/", s.ListSessions)
		r.Post("/", s.CreateSession)

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", s.GetSession)
			r.Delete("/", s.DeleteSession)
			r.Patch("/parameters", s.UpdateParameters)
			r.Post("/reset", s.ResetParameters)

			r.Get("/modality-costs", s.GetModalityCosts)
			r.Get("/projection", s.GetProjection)
			r.Get("/sensitivity", s.GetSensitivity)
			r.Get("/summary", s.GetSummary)
			r.Get("/report", s.GetReport)
		})
	})
}

// sessionID pulls and parses the {id} route parameter. On failure the 400
// reply has already been written.
func (s *ServiceHandler) sessionID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		s.replyError(w, r, http.StatusBadRequest, "invalid session id")
		return uuid.Nil, false
	}
	return id, true
}

func (s *ServiceHandler) replyError(w http.ResponseWriter, r *http.Request, status int, message string) {
	render.Status(r, status)
	_ = render.Render(w, r, api.Error{
		Message:   message,
		RequestId: requestid.FromContextPtr(r.Context()),
	})
}

// replyServiceError maps the service error taxonomy onto HTTP statuses.
func (s *ServiceHandler) replyServiceError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	switch err.(type) {
	case *service.ErrResourceNotFound:
		status = http.StatusNotFound
	case *service.ErrInvalidParameter, *service.ErrUnsupportedFormat:
		status = http.StatusBadRequest
	case *service.ErrSessionAlreadyExists:
		status = http.StatusConflict
	}
	s.replyError(w, r, status, err.Error())
}
