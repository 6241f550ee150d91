package ports

import (
	"context"

	"github.com/avelarq/remesa/pkg/domain"
)

// TurnResult is the adapter-facing outcome of one processed utterance.
type TurnResult struct {
	State    *domain.State
	Response string
	Action   domain.Action
}

// TurnProcessor defines the session-level dialogue surface consumed by
// transport adapters (HTTP, CLI). Implementations own locking and
// persistence; adapters only route utterances.
type TurnProcessor interface {
	// ProcessTurn runs one conversational turn for the session, creating it
	// on first use, and returns the response to surface to the user.
	ProcessTurn(ctx context.Context, sessionID, utterance string) (*TurnResult, error)

	// State returns the current snapshot of a session.
	// Returns domain.ErrSessionNotFound if the session does not exist.
	State(ctx context.Context, sessionID string) (*domain.State, error)

	// Reset discards a session so the next turn starts a fresh transfer.
	Reset(ctx context.Context, sessionID string) error

	// Sessions lists the IDs of all known sessions.
	Sessions(ctx context.Context) ([]string, error)
}
