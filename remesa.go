package remesa

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/avelarq/remesa/internal/logging"
	"github.com/avelarq/remesa/pkg/adapters/memory"
	"github.com/avelarq/remesa/pkg/domain"
	"github.com/avelarq/remesa/pkg/engine"
	"github.com/avelarq/remesa/pkg/ports"
	"github.com/avelarq/remesa/pkg/session"
)

// Version is the library version reported by the CLI and the HTTP API.
const Version = "0.3.0"

// Service is the high-level entry point for the remesa library. It wires the
// dialogue engine to a session manager and owns per-turn locking, so callers
// can fire concurrent turns without further coordination.
type Service struct {
	engine   *engine.Engine
	sessions *session.Manager

	store      ports.StateStore
	locker     ports.DistributedLocker
	logger     *slog.Logger
	engineOpts []engine.Option
}

// Option defines a functional option for configuring the Service.
type Option func(*Service)

// WithStore injects a custom state store, replacing the default in-memory one.
func WithStore(store ports.StateStore) Option {
	return func(s *Service) {
		s.store = store
	}
}

// WithLocker enables distributed locking for multi-replica deployments.
func WithLocker(locker ports.DistributedLocker) Option {
	return func(s *Service) {
		s.locker = locker
	}
}

// WithLogger sets a custom structured logger for the service.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithEngineOptions forwards options to the underlying dialogue engine.
// Mostly useful in tests for deterministic clocks and transaction IDs.
func WithEngineOptions(opts ...engine.Option) Option {
	return func(s *Service) {
		s.engineOpts = append(s.engineOpts, opts...)
	}
}

// New initializes a new remesa Service.
func New(opts ...Option) (*Service, error) {
	svc := &Service{}
	for _, opt := range opts {
		opt(svc)
	}

	if svc.logger == nil {
		svc.logger = logging.NewNop()
	}
	if svc.store == nil {
		svc.store = memory.NewStore()
	}

	managerOpts := []session.Option{session.WithLogger(svc.logger)}
	if svc.locker != nil {
		managerOpts = append(managerOpts, session.WithLocker(svc.locker))
	}
	svc.sessions = session.NewManager(svc.store, managerOpts...)

	engineOpts := append([]engine.Option{engine.WithLogger(svc.logger)}, svc.engineOpts...)
	svc.engine = engine.New(engineOpts...)

	return svc, nil
}

// ProcessTurn runs one conversational turn for the session, creating the
// session on first use and persisting the resulting state. Turns for the
// same session are serialized; turns for different sessions run in parallel.
func (s *Service) ProcessTurn(ctx context.Context, sessionID, utterance string) (*ports.TurnResult, error) {
	if sessionID == "" {
		return nil, fmt.Errorf("session ID is required")
	}

	var result *ports.TurnResult
	err := s.sessions.WithLock(ctx, sessionID, func(ctx context.Context) error {
		state, err := s.sessions.Store().Load(ctx, sessionID)
		if errors.Is(err, domain.ErrSessionNotFound) {
			state = domain.NewState(sessionID)
		} else if err != nil {
			return fmt.Errorf("load session: %w", err)
		}

		turn, err := s.engine.ProcessTurn(ctx, state, utterance)
		if err != nil {
			return err
		}

		if err := s.sessions.Store().Save(ctx, sessionID, state); err != nil {
			return fmt.Errorf("save session: %w", err)
		}

		result = &ports.TurnResult{
			State:    turn.State,
			Response: turn.Response,
			Action:   turn.Action,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// State returns the current snapshot of a session.
func (s *Service) State(ctx context.Context, sessionID string) (*domain.State, error) {
	return s.sessions.Load(ctx, sessionID)
}

// Reset discards a session so the next turn starts a fresh transfer.
func (s *Service) Reset(ctx context.Context, sessionID string) error {
	return s.sessions.Delete(ctx, sessionID)
}

// Sessions lists the IDs of all known sessions.
func (s *Service) Sessions(ctx context.Context) ([]string, error) {
	return s.sessions.List(ctx)
}
