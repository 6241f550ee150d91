package engine

import (
	"fmt"
	"strings"

	"github.com/avelarq/remesa/pkg/domain"
)

// Execute performs the transfer for a confirmed session and transitions it
// to Completed. It is idempotent: calling it again on a completed session
// returns the stored result wrapped in domain.ErrAlreadyCompleted, and never
// issues a second transaction ID.
func (e *Engine) Execute(state *domain.State) (*domain.TransferResult, error) {
	if state.Phase == domain.PhaseCompleted {
		if state.Result != nil {
			return state.Result, domain.ErrAlreadyCompleted
		}
		return nil, fmt.Errorf("%w: completed session has no result", domain.ErrAlreadyCompleted)
	}
	if state.Phase == domain.PhaseCancelled {
		return nil, fmt.Errorf("%w: session is cancelled", domain.ErrPrecondition)
	}
	if missing := state.Details.MissingRequired(); len(missing) > 0 {
		return nil, fmt.Errorf("%w: missing %s", domain.ErrPrecondition, missing[0])
	}

	result := &domain.TransferResult{
		TransactionID: transactionID(e.newID()),
		Details:       state.Details.Copy(),
		Timestamp:     e.now().UTC(),
	}
	state.Result = result
	state.Phase = domain.PhaseCompleted

	e.log.Info("transfer executed",
		"session_id", state.SessionID,
		"transaction_id", result.TransactionID,
		"country", result.Details.Country,
		"delivery_method", result.Details.DeliveryMethod,
	)
	return result, nil
}

// transactionID derives the customer-facing reference from a fresh UUID:
// "TXN-" plus the first twelve hex characters, uppercased.
func transactionID(id string) string {
	hex := strings.ReplaceAll(id, "-", "")
	if len(hex) > 12 {
		hex = hex[:12]
	}
	return "TXN-" + strings.ToUpper(hex)
}
