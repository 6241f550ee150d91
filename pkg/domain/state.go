package domain

import "time"

// Phase is the coarse progress of a session.
type Phase string

const (
	PhaseCollecting     Phase = "collecting"       // Gathering fields turn by turn
	PhaseReadyToConfirm Phase = "readyToConfirm"   // All required fields present, awaiting yes/no
	PhaseCompleted      Phase = "completed"        // Transfer executed; state is frozen
	PhaseCancelled      Phase = "cancelled"        // User backed out; state is frozen
)

// Terminal reports whether the phase accepts no further mutation.
func (p Phase) Terminal() bool {
	return p == PhaseCompleted || p == PhaseCancelled
}

// State represents the current snapshot of one transfer conversation.
type State struct {
	// SessionID identifies the conversation this state belongs to.
	SessionID string `json:"sessionId"`

	// Phase indicates where the session is in its lifecycle.
	Phase Phase `json:"phase"`

	// Details holds the validated field values collected so far.
	Details Details `json:"values"`

	// Result is set exactly once, when the transfer executes.
	Result *TransferResult `json:"result,omitempty"`

	// Sealed carries the encrypted payload envelope when an at-rest
	// encryption middleware wraps the store. Empty otherwise.
	Sealed string `json:"sealed,omitempty"`
}

// NewState creates a clean collecting state for a session.
func NewState(sessionID string) *State {
	return &State{
		SessionID: sessionID,
		Phase:     PhaseCollecting,
	}
}

// Ended reports whether the session reached a terminal phase.
func (s *State) Ended() bool {
	return s.Phase.Terminal()
}

// Copy returns a deep copy of the state.
func (s *State) Copy() *State {
	out := *s
	out.Details = s.Details.Copy()
	if s.Result != nil {
		result := *s.Result
		result.Details = s.Result.Details.Copy()
		out.Result = &result
	}
	return &out
}

// TransferResult is the synthetic outcome of an executed transfer.
// It echoes the validated details so the host can render a receipt without
// re-reading the session.
type TransferResult struct {
	TransactionID string    `json:"transactionId"`
	Details       Details   `json:"details"`
	Timestamp     time.Time `json:"timestamp"`
}

// Action describes what a processed turn did to the session. Hosts use it to
// decide whether to log, persist, or short-circuit; they must surface the
// accompanying response text verbatim whenever the action is not ActionNone.
type Action string

const (
	ActionNone           Action = "none"
	ActionFieldsUpdated  Action = "fieldsUpdated"
	ActionRejected       Action = "rejected"
	ActionReadyToConfirm Action = "readyToConfirm"
	ActionExecuted       Action = "executed"
	ActionCancelled      Action = "cancelled"
)
