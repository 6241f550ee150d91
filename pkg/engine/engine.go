/*
Package engine implements the slot-filling dialogue policy for a transfer
conversation and the transfer executor.

One call to ProcessTurn runs a whole turn to completion: correction detection,
extraction, per-candidate validation, state mutation, and response
composition. The engine holds no session state of its own; the caller owns
the State and must serialize turns per session.
*/
package engine

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/avelarq/remesa/internal/extract"
	"github.com/avelarq/remesa/internal/logging"
	"github.com/avelarq/remesa/internal/validate"
	"github.com/avelarq/remesa/pkg/domain"
)

// Engine is the per-turn dialogue policy. It is stateless and safe for
// concurrent use across sessions.
type Engine struct {
	log   *slog.Logger
	now   func() time.Time
	newID func() string
}

// Option configures the Engine.
type Option func(*Engine)

// WithLogger sets a structured logger for turn-level debug events.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.log = logger
	}
}

// WithClock overrides the time source. Used in tests for deterministic
// transfer timestamps.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

// WithTransactionIDs overrides the transaction ID generator. Used in tests.
func WithTransactionIDs(newID func() string) Option {
	return func(e *Engine) {
		e.newID = newID
	}
}

// New creates an Engine with the given options.
func New(opts ...Option) *Engine {
	e := &Engine{
		log:   logging.NewNop(),
		now:   time.Now,
		newID: newTransactionID,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Turn is the outcome of one processed utterance. Response must be surfaced
// to the user verbatim whenever Action is not domain.ActionNone.
type Turn struct {
	State    *domain.State
	Response string
	Action   domain.Action
}

// ProcessTurn runs one conversational turn against the session state,
// mutating it in place. The caller must hold exclusive access to the state
// for the duration of the call.
func (e *Engine) ProcessTurn(ctx context.Context, state *domain.State, utterance string) (*Turn, error) {
	if state == nil {
		return nil, fmt.Errorf("process turn: nil state")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var (
		turn *Turn
		err  error
	)
	switch {
	case state.Ended():
		turn = &Turn{State: state, Response: endedMessage(state), Action: domain.ActionNone}
	case state.Phase == domain.PhaseReadyToConfirm:
		turn, err = e.confirmTurn(state, utterance)
	default:
		turn, err = e.collectTurn(state, utterance)
	}
	if err != nil {
		return nil, err
	}

	e.log.Debug("turn processed",
		"session_id", state.SessionID,
		"phase", state.Phase,
		"action", turn.Action,
		"missing", len(state.Details.MissingRequired()),
	)
	return turn, nil
}

// confirmTurn interprets an utterance while the session awaits confirmation.
// A targeted correction is honored first; then the utterance is read as a
// yes/no answer. Anything unintelligible re-asks the question.
func (e *Engine) confirmTurn(state *domain.State, utterance string) (*Turn, error) {
	if candidate, ok := extract.DetectCorrection(utterance); ok {
		if err := validate.Apply(&state.Details, candidate); err != nil {
			rejection, rErr := asRejection(err)
			if rErr != nil {
				return nil, rErr
			}
			// The prior validated value stays; re-confirmation is still open.
			return &Turn{
				State:    state,
				Response: rejectionMessage(rejection) + "\n\n" + confirmationPrompt(state),
				Action:   domain.ActionRejected,
			}, nil
		}
		// A successful correction keeps the session in ReadyToConfirm; the
		// full set must be re-confirmed before execution.
		return &Turn{
			State:    state,
			Response: updatedNote(candidate.Field, &state.Details) + "\n\n" + confirmationPrompt(state),
			Action:   domain.ActionFieldsUpdated,
		}, nil
	}

	switch classifyConfirmation(utterance) {
	case intentAffirm:
		result, err := e.Execute(state)
		if err != nil {
			return nil, fmt.Errorf("execute transfer: %w", err)
		}
		return &Turn{State: state, Response: receipt(result), Action: domain.ActionExecuted}, nil
	case intentNegative:
		state.Phase = domain.PhaseCancelled
		return &Turn{State: state, Response: cancelledMessage(), Action: domain.ActionCancelled}, nil
	default:
		return &Turn{State: state, Response: confirmationPrompt(state), Action: domain.ActionNone}, nil
	}
}

// collectTurn runs the collection algorithm: cancellation, then correction,
// then extraction with per-candidate validation.
func (e *Engine) collectTurn(state *domain.State, utterance string) (*Turn, error) {
	if isCancellation(utterance) {
		state.Phase = domain.PhaseCancelled
		return &Turn{State: state, Response: cancelledMessage(), Action: domain.ActionCancelled}, nil
	}

	// A correction turn skips normal extraction entirely.
	if candidate, ok := extract.DetectCorrection(utterance); ok {
		if err := validate.Apply(&state.Details, candidate); err != nil {
			rejection, rErr := asRejection(err)
			if rErr != nil {
				return nil, rErr
			}
			return e.finishCollecting(state, "", []*validate.RejectionError{rejection})
		}
		return e.finishCollecting(state, updatedNote(candidate.Field, &state.Details), nil)
	}

	candidates := extract.Extract(utterance, state.Details.Missing())
	if len(candidates) == 0 {
		// Conversational filler: greet and re-prompt without touching state.
		return &Turn{State: state, Response: fillerResponse(state), Action: domain.ActionNone}, nil
	}

	var (
		applied    int
		rejections []*validate.RejectionError
	)
	for _, candidate := range candidates {
		if err := validate.Apply(&state.Details, candidate); err != nil {
			rejection, rErr := asRejection(err)
			if rErr != nil {
				return nil, rErr
			}
			rejections = append(rejections, rejection)
			continue
		}
		applied++
	}
	if applied == 0 && len(rejections) == 0 {
		return &Turn{State: state, Response: fillerResponse(state), Action: domain.ActionNone}, nil
	}
	return e.finishCollecting(state, "", rejections)
}

// finishCollecting recomputes missing fields after updates and composes the
// fixed-shape response: note, summary, rejection hints, then the next prompt
// or the confirmation question.
func (e *Engine) finishCollecting(state *domain.State, note string, rejections []*validate.RejectionError) (*Turn, error) {
	action := domain.ActionFieldsUpdated
	if len(rejections) > 0 {
		action = domain.ActionRejected
	}

	if state.Details.Complete() {
		state.Phase = domain.PhaseReadyToConfirm
		if action != domain.ActionRejected {
			action = domain.ActionReadyToConfirm
		}
		return &Turn{
			State:    state,
			Response: compose(note, rejectionMessages(rejections), confirmationPrompt(state)),
			Action:   action,
		}, nil
	}

	response := compose(
		note,
		collectedSummary(&state.Details),
		rejectionMessages(rejections),
		nextPrompt(state),
	)
	return &Turn{State: state, Response: response, Action: action}, nil
}

func asRejection(err error) (*validate.RejectionError, error) {
	rejection, ok := validationRejection(err)
	if !ok {
		return nil, fmt.Errorf("apply candidate: %w", err)
	}
	return rejection, nil
}

func newTransactionID() string {
	return uuid.NewString()
}
