package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/renalecon/transplant-planner/internal/projection"
	"github.com/renalecon/transplant-planner/internal/store"
	"github.com/renalecon/transplant-planner/pkg/metrics"
)

// ProjectionResult bundles one full engine run for a session.
type ProjectionResult struct {
	Values        projection.ValueSnapshot
	Input         projection.ProjectionInput
	Series        *projection.ResultSeries
	BreakEvenYear float64
	AnnualBurden  float64
}

// ProjectionService runs the engine pipeline on a session's current snapshot.
type ProjectionService struct {
	store      store.Store
	sessionSrv *SessionService
}

func NewProjectionService(store store.Store, sessionSrv *SessionService) *ProjectionService {
	return &ProjectionService{store: store, sessionSrv: sessionSrv}
}

// Compute snapshots the session's ParameterSet and runs the full projection.
func (s *ProjectionService) Compute(ctx context.Context, sessionID uuid.UUID) (*ProjectionResult, error) {
	session, err := s.sessionSrv.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	values, err := ParameterSet(session).Snapshot()
	if err != nil {
		return nil, fmt.Errorf("failed to snapshot parameters: %w", err)
	}

	result, err := ComputeFromSnapshot(values)
	if err != nil {
		return nil, err
	}

	metrics.IncreaseProjectionsComputedMetric("projection")
	return result, nil
}

// ComputeFromSnapshot runs the engine on an already-resolved snapshot. Used by
// the CLI, which has no session store behind it.
func ComputeFromSnapshot(values projection.ValueSnapshot) (*ProjectionResult, error) {
	in, err := projection.NewProjectionInput(values)
	if err != nil {
		return nil, err
	}
	series, err := projection.ProjectScenarios(in)
	if err != nil {
		return nil, err
	}

	nDial, err := values.Get(projection.KeyPrevalentDialysis)
	if err != nil {
		return nil, err
	}

	return &ProjectionResult{
		Values:        values,
		Input:         in,
		Series:        series,
		BreakEvenYear: projection.BreakEvenYear(in.DialysisCost, in.TransplantYear1, in.TransplantMaint),
		AnnualBurden:  projection.CurrentAnnualBurden(nDial, in.DialysisCost),
	}, nil
}

// ModalityCosts derives the five display modality costs for a session.
func (s *ProjectionService) ModalityCosts(ctx context.Context, sessionID uuid.UUID) ([]projection.ModalityCost, error) {
	session, err := s.sessionSrv.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	values, err := ParameterSet(session).Snapshot()
	if err != nil {
		return nil, fmt.Errorf("failed to snapshot parameters: %w", err)
	}
	return projection.ModalityCosts(values)
}
