package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/renalecon/transplant-planner/internal/projection"
	"github.com/renalecon/transplant-planner/internal/store"
	"github.com/renalecon/transplant-planner/internal/store/model"
	"go.uber.org/zap"
)

// SessionService owns the mutable parameter configurations. Out-of-range
// values are clamped here, at the write boundary, so the engine downstream
// only ever sees in-range snapshots.
type SessionService struct {
	store store.Store
}

func NewSessionService(store store.Store) *SessionService {
	return &SessionService{store: store}
}

// CreateSession seeds a session with the default parameter values, applies the
// optional initial overrides (clamped) and persists it.
func (s *SessionService) CreateSession(ctx context.Context, name string, overrides map[string]float64) (*model.Session, error) {
	values, err := applyOverrides(defaultValues(), overrides)
	if err != nil {
		return nil, err
	}

	session, err := s.store.Session().Create(ctx, model.Session{
		ID:         uuid.New(),
		Name:       name,
		Parameters: model.MakeJSONField(values),
	})
	if err != nil {
		if errors.Is(err, store.ErrDuplicateKey) {
			return nil, NewErrSessionAlreadyExists(name)
		}
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	zap.S().Named("session_service").Infow("session created", "id", session.ID, "name", name)
	return session, nil
}

func (s *SessionService) GetSession(ctx context.Context, id uuid.UUID) (*model.Session, error) {
	session, err := s.store.Session().Get(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return nil, NewErrSessionNotFound(id)
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return session, nil
}

func (s *SessionService) ListSessions(ctx context.Context) (model.SessionList, error) {
	sessions, err := s.store.Session().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	return sessions, nil
}

func (s *SessionService) DeleteSession(ctx context.Context, id uuid.UUID) error {
	if err := s.store.Session().Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// UpdateParameters merges the incoming values into the session, clamping each
// into its declared range. Unknown parameter names are rejected.
func (s *SessionService) UpdateParameters(ctx context.Context, id uuid.UUID, updates map[string]float64) (*model.Session, error) {
	session, err := s.GetSession(ctx, id)
	if err != nil {
		return nil, err
	}

	values, err := applyOverrides(session.Parameters.Data, updates)
	if err != nil {
		return nil, err
	}

	updated, err := s.store.Session().UpdateParameters(ctx, id, values)
	if err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return nil, NewErrSessionNotFound(id)
		}
		return nil, fmt.Errorf("failed to update parameters: %w", err)
	}
	return updated, nil
}

// ResetParameters restores a session to the default parameter values.
func (s *SessionService) ResetParameters(ctx context.Context, id uuid.UUID) (*model.Session, error) {
	updated, err := s.store.Session().UpdateParameters(ctx, id, defaultValues())
	if err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return nil, NewErrSessionNotFound(id)
		}
		return nil, fmt.Errorf("failed to reset parameters: %w", err)
	}
	return updated, nil
}

// ParameterSet materializes a session's projection.Set: bounds from the
// default ranges, current values from the session row.
func ParameterSet(session *model.Session) projection.Set {
	set := projection.DefaultRanges()
	for k, v := range session.Parameters.Data {
		if r, ok := set[k]; ok {
			r.Value = r.Clamp(v)
			set[k] = r
		}
	}
	return set
}

func defaultValues() map[string]float64 {
	// DefaultRanges always snapshots cleanly, its key set is complete.
	values, _ := projection.DefaultRanges().Snapshot()
	return values
}

func applyOverrides(base map[string]float64, overrides map[string]float64) (map[string]float64, error) {
	ranges := projection.DefaultRanges()
	out := make(map[string]float64, len(base))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range overrides {
		r, ok := ranges[k]
		if !ok {
			return nil, NewErrUnknownParameter(k)
		}
		out[k] = r.Clamp(v)
	}
	return out, nil
}
