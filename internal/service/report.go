package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/renalecon/transplant-planner/internal/service/report/csv"
	"github.com/renalecon/transplant-planner/internal/service/report/types"
	"github.com/renalecon/transplant-planner/internal/store"
	"github.com/renalecon/transplant-planner/pkg/metrics"
)

// ReportService renders a session's projection into a downloadable document.
type ReportService struct {
	store         store.Store
	sessionSrv    *SessionService
	projectionSrv *ProjectionService
	renderers     map[types.ReportFormat]types.Renderer
}

func NewReportService(store store.Store, sessionSrv *SessionService, projectionSrv *ProjectionService) *ReportService {
	renderers := make(map[types.ReportFormat]types.Renderer)
	for _, r := range []types.Renderer{csv.NewRenderer()} {
		renderers[r.SupportedFormat()] = r
	}
	return &ReportService{
		store:         store,
		sessionSrv:    sessionSrv,
		projectionSrv: projectionSrv,
		renderers:     renderers,
	}
}

// Render produces the report for a session in the requested format.
func (s *ReportService) Render(ctx context.Context, sessionID uuid.UUID, format string) (string, error) {
	renderer, ok := s.renderers[types.ReportFormat(format)]
	if !ok {
		return "", NewErrUnsupportedFormat(format)
	}

	session, err := s.sessionSrv.GetSession(ctx, sessionID)
	if err != nil {
		return "", err
	}

	values, err := ParameterSet(session).Snapshot()
	if err != nil {
		return "", fmt.Errorf("failed to snapshot parameters: %w", err)
	}

	result, err := ComputeFromSnapshot(values)
	if err != nil {
		return "", err
	}

	metrics.IncreaseProjectionsComputedMetric("report")
	return renderer.Render(&types.ReportData{
		Session:     session,
		Values:      values,
		Input:       result.Input,
		Series:      result.Series,
		GeneratedAt: time.Now().UTC(),
	})
}
