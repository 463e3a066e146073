package v1alpha1

import (
	"fmt"
	"net/http"

	"github.com/go-chi/render"
	"github.com/renalecon/transplant-planner/internal/handlers/v1alpha1/mappers"
	"github.com/renalecon/transplant-planner/internal/service/report/types"
)

// (GET /api/v1alpha1/sessions/{id}/projection)
func (s *ServiceHandler) GetProjection(w http.ResponseWriter, r *http.Request) {
	id, ok := s.sessionID(w, r)
	if !ok {
		return
	}

	result, err := s.projectionSrv.Compute(r.Context(), id)
	if err != nil {
		s.replyServiceError(w, r, err)
		return
	}
	_ = render.Render(w, r, mappers.ProjectionToApi(result))
}

// (GET /api/v1alpha1/sessions/{id}/modality-costs)
func (s *ServiceHandler) GetModalityCosts(w http.ResponseWriter, r *http.Request) {
	id, ok := s.sessionID(w, r)
	if !ok {
		return
	}

	costs, err := s.projectionSrv.ModalityCosts(r.Context(), id)
	if err != nil {
		s.replyServiceError(w, r, err)
		return
	}
	_ = render.Render(w, r, mappers.ModalityCostsToApi(costs))
}

// (GET /api/v1alpha1/sessions/{id}/sensitivity)
func (s *ServiceHandler) GetSensitivity(w http.ResponseWriter, r *http.Request) {
	id, ok := s.sessionID(w, r)
	if !ok {
		return
	}

	outcome, err := s.sensitivitySrv.Analyze(r.Context(), id)
	if err != nil {
		s.replyServiceError(w, r, err)
		return
	}
	_ = render.Render(w, r, mappers.SensitivityToApi(outcome))
}

// (GET /api/v1alpha1/sessions/{id}/summary)
func (s *ServiceHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	id, ok := s.sessionID(w, r)
	if !ok {
		return
	}

	summary, err := s.summarySrv.Summarize(r.Context(), id)
	if err != nil {
		s.replyServiceError(w, r, err)
		return
	}
	_ = render.Render(w, r, mappers.SummaryToApi(summary))
}

// (GET /api/v1alpha1/sessions/{id}/report?format=csv)
func (s *ServiceHandler) GetReport(w http.ResponseWriter, r *http.Request) {
	id, ok := s.sessionID(w, r)
	if !ok {
		return
	}

	format := r.URL.Query().Get("format")
	if format == "" {
		format = string(types.ReportFormatCSV)
	}

	document, err := s.reportSrv.Render(r.Context(), id, format)
	if err != nil {
		s.replyServiceError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=projection-%s.%s", id, format))
	_, _ = w.Write([]byte(document))
}
