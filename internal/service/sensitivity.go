package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/renalecon/transplant-planner/internal/projection"
	"github.com/renalecon/transplant-planner/internal/store"
	"github.com/renalecon/transplant-planner/pkg/metrics"
)

// SensitivityService re-runs the projection pipeline under perturbed cost
// inputs and reports low/base/high ranges for the headline metrics.
type SensitivityService struct {
	store      store.Store
	sessionSrv *SessionService
	deltas     projection.CostDeltas
}

func NewSensitivityService(store store.Store, sessionSrv *SessionService, deltas projection.CostDeltas) *SensitivityService {
	return &SensitivityService{store: store, sessionSrv: sessionSrv, deltas: deltas}
}

// Analyze runs the three sensitivity passes for a session's current snapshot.
func (s *SensitivityService) Analyze(ctx context.Context, sessionID uuid.UUID) (*projection.Outcome, error) {
	session, err := s.sessionSrv.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	set := ParameterSet(session)
	values, err := set.Snapshot()
	if err != nil {
		return nil, fmt.Errorf("failed to snapshot parameters: %w", err)
	}

	outcome, err := projection.NewAnalyzer(set, s.deltas).Run(values)
	if err != nil {
		return nil, fmt.Errorf("sensitivity analysis failed: %w", err)
	}

	metrics.IncreaseSensitivityRunsMetric()
	return outcome, nil
}

// AnalyzeSnapshot runs the sensitivity passes on an already-resolved snapshot
// against the default bounds. Used by the CLI.
func (s *SensitivityService) AnalyzeSnapshot(values projection.ValueSnapshot) (*projection.Outcome, error) {
	return AnalyzeSnapshot(values, s.deltas)
}

func AnalyzeSnapshot(values projection.ValueSnapshot, deltas projection.CostDeltas) (*projection.Outcome, error) {
	return projection.NewAnalyzer(projection.DefaultRanges(), deltas).Run(values)
}
