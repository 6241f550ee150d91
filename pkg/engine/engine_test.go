package engine

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avelarq/remesa/pkg/domain"
)

func newTestEngine() *Engine {
	return New(
		WithClock(func() time.Time { return time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC) }),
		WithTransactionIDs(func() string { return "0f8fad5b-d9cb-469f-a165-70867728950e" }),
	)
}

func turn(t *testing.T, e *Engine, state *domain.State, utterance string) *Turn {
	t.Helper()
	out, err := e.ProcessTurn(context.Background(), state, utterance)
	require.NoError(t, err, "utterance %q", utterance)
	return out
}

// TestFullTransferFlow walks a realistic five-turn conversation from greeting
// to an executed transfer.
func TestFullTransferFlow(t *testing.T) {
	e := newTestEngine()
	state := domain.NewState("sess-1")

	t.Run("greeting does not touch state", func(t *testing.T) {
		out := turn(t, e, state, "Hi!")
		assert.Equal(t, domain.ActionNone, out.Action)
		assert.Equal(t, domain.PhaseCollecting, state.Phase)
		assert.Contains(t, out.Response, "Hello!")
		assert.Empty(t, state.Details.BeneficiaryName)
	})

	t.Run("amount and name in one utterance", func(t *testing.T) {
		out := turn(t, e, state, "I want to send $100 to Daniela Varela")
		assert.Equal(t, domain.ActionFieldsUpdated, out.Action)
		require.NotNil(t, state.Details.Amount)
		assert.Equal(t, "100", state.Details.Amount.String())
		assert.Equal(t, "Daniela Varela", state.Details.BeneficiaryName)
		// The next prompt asks for the account, addressing the beneficiary.
		assert.Contains(t, out.Response, "Daniela Varela")
		assert.Contains(t, out.Response, "account number")
	})

	t.Run("account number with keyword", func(t *testing.T) {
		out := turn(t, e, state, "Her account is AC12629233")
		assert.Equal(t, domain.ActionFieldsUpdated, out.Action)
		assert.Equal(t, "AC12629233", state.Details.AccountNumber)
		assert.Contains(t, out.Response, "What currency")
	})

	t.Run("bare currency code", func(t *testing.T) {
		out := turn(t, e, state, "USD")
		assert.Equal(t, domain.ActionFieldsUpdated, out.Action)
		assert.Equal(t, "USD", state.Details.Currency)
		assert.Contains(t, out.Response, "Which country")
	})

	t.Run("country and delivery complete the set", func(t *testing.T) {
		out := turn(t, e, state, "Mexico, by cash pickup")
		assert.Equal(t, domain.ActionReadyToConfirm, out.Action)
		assert.Equal(t, domain.PhaseReadyToConfirm, state.Phase)
		assert.Equal(t, "MEXICO", state.Details.Country)
		assert.Equal(t, "Cash Pickup", state.Details.DeliveryMethod)
		assert.Contains(t, out.Response, "Great, I have everything!")
		assert.Contains(t, out.Response, "proceed with the transfer")
	})

	t.Run("affirmation executes the transfer", func(t *testing.T) {
		out := turn(t, e, state, "Yes")
		assert.Equal(t, domain.ActionExecuted, out.Action)
		assert.Equal(t, domain.PhaseCompleted, state.Phase)
		require.NotNil(t, state.Result)
		assert.Equal(t, "TXN-0F8FAD5BD9CB", state.Result.TransactionID)
		assert.Contains(t, out.Response, "Transfer successful!")
		assert.Contains(t, out.Response, state.Result.TransactionID)
	})

	t.Run("completed session is frozen", func(t *testing.T) {
		out := turn(t, e, state, "send 50 to Carlos")
		assert.Equal(t, domain.ActionNone, out.Action)
		assert.Contains(t, out.Response, "already completed")
		assert.Equal(t, "100", state.Details.Amount.String())
	})
}

func TestCollectingSummaryAccumulates(t *testing.T) {
	e := newTestEngine()
	state := domain.NewState("sess-2")

	turn(t, e, state, "Maria Lopez")
	out := turn(t, e, state, "2500.50")

	require.NotNil(t, state.Details.Amount)
	assert.Equal(t, "2500.5", state.Details.Amount.String())
	assert.Contains(t, out.Response, "Here's what I have so far:")
	assert.Contains(t, out.Response, "Maria Lopez")
}

func TestCorrectionDuringCollection(t *testing.T) {
	e := newTestEngine()
	state := domain.NewState("sess-3")

	turn(t, e, state, "send $100 to account AC12629233")
	require.NotNil(t, state.Details.Amount)

	out := turn(t, e, state, "change the amount to 250")
	assert.Equal(t, domain.ActionFieldsUpdated, out.Action)
	assert.Equal(t, "250", state.Details.Amount.String())
	// Only the targeted field moved.
	assert.Equal(t, "AC12629233", state.Details.AccountNumber)
	assert.Contains(t, out.Response, "updated the amount to 250")
}

func TestCorrectionWhileReadyToConfirm(t *testing.T) {
	e := newTestEngine()
	state := readyState("sess-4")

	t.Run("valid correction stays in confirmation", func(t *testing.T) {
		out := turn(t, e, state, "change amount to 200")
		assert.Equal(t, domain.ActionFieldsUpdated, out.Action)
		assert.Equal(t, domain.PhaseReadyToConfirm, state.Phase)
		assert.Equal(t, "200", state.Details.Amount.String())
		assert.Contains(t, out.Response, "proceed with the transfer")
	})

	t.Run("invalid correction keeps the prior value", func(t *testing.T) {
		out := turn(t, e, state, "change the currency to ZZZ")
		assert.Equal(t, domain.ActionRejected, out.Action)
		assert.Equal(t, domain.PhaseReadyToConfirm, state.Phase)
		assert.Equal(t, "USD", state.Details.Currency)
		assert.Contains(t, out.Response, `"ZZZ" is not a valid currency`)
	})

	t.Run("unintelligible answer re-asks", func(t *testing.T) {
		out := turn(t, e, state, "hmm what do you mean")
		assert.Equal(t, domain.ActionNone, out.Action)
		assert.Equal(t, domain.PhaseReadyToConfirm, state.Phase)
		assert.Contains(t, out.Response, "proceed with the transfer")
	})
}

func TestNegativeAnswerCancels(t *testing.T) {
	e := newTestEngine()
	state := readyState("sess-5")

	out := turn(t, e, state, "No")
	assert.Equal(t, domain.ActionCancelled, out.Action)
	assert.Equal(t, domain.PhaseCancelled, state.Phase)
	assert.Nil(t, state.Result)

	after := turn(t, e, state, "yes")
	assert.Equal(t, domain.ActionNone, after.Action)
	assert.Contains(t, after.Response, "ended")
}

func TestCancellationDuringCollection(t *testing.T) {
	e := newTestEngine()
	state := domain.NewState("sess-6")
	turn(t, e, state, "send 300 to Honduras")

	out := turn(t, e, state, "never mind")
	assert.Equal(t, domain.ActionCancelled, out.Action)
	assert.Equal(t, domain.PhaseCancelled, state.Phase)
}

func TestUnsupportedCountryRejected(t *testing.T) {
	e := newTestEngine()
	state := domain.NewState("sess-7")
	turn(t, e, state, "send $50 to Jose Martinez")
	turn(t, e, state, "account AC99887766")

	out := turn(t, e, state, "Peru")
	assert.Equal(t, domain.ActionRejected, out.Action)
	assert.Empty(t, state.Details.Country)
	assert.Contains(t, out.Response, `"Peru" is not a valid country`)
	// The follow-up prompt still comes from the normal priority order.
	assert.Contains(t, out.Response, "What currency")
}

func TestExecuteIdempotent(t *testing.T) {
	e := newTestEngine()
	state := readyState("sess-8")

	first, err := e.Execute(state)
	require.NoError(t, err)
	require.NotNil(t, first)

	second, err := e.Execute(state)
	assert.ErrorIs(t, err, domain.ErrAlreadyCompleted)
	require.NotNil(t, second)
	assert.Equal(t, first.TransactionID, second.TransactionID)
}

func TestExecutePreconditions(t *testing.T) {
	e := newTestEngine()

	t.Run("incomplete details", func(t *testing.T) {
		state := domain.NewState("sess-9")
		_, err := e.Execute(state)
		assert.ErrorIs(t, err, domain.ErrPrecondition)
	})

	t.Run("cancelled session", func(t *testing.T) {
		state := readyState("sess-10")
		state.Phase = domain.PhaseCancelled
		_, err := e.Execute(state)
		assert.ErrorIs(t, err, domain.ErrPrecondition)
	})
}

// TestBeneficiaryNameIsOptional confirms the name never blocks the
// confirmation gate: account number alone identifies the recipient.
func TestBeneficiaryNameIsOptional(t *testing.T) {
	e := newTestEngine()
	state := domain.NewState("sess-11")

	turn(t, e, state, "send $75 to account ACC-445566")
	turn(t, e, state, "USD")
	out := turn(t, e, state, "to Guatemala by mobile wallet")

	assert.Equal(t, domain.ActionReadyToConfirm, out.Action)
	assert.Equal(t, domain.PhaseReadyToConfirm, state.Phase)
	assert.Empty(t, state.Details.BeneficiaryName)
	assert.Contains(t, out.Response, "ACC-445566")
}

func TestLocalCurrencyNoteInSummary(t *testing.T) {
	e := newTestEngine()
	state := readyState("sess-12")
	state.Details.Country = "COLOMBIA"

	out := turn(t, e, state, "so what now")
	assert.True(t, strings.Contains(out.Response, "COLOMBIA (local currency: COP)"),
		"expected local currency note, got: %s", out.Response)
}

// readyState builds a fully-collected state sitting at the confirmation gate.
func readyState(sessionID string) *domain.State {
	state := domain.NewState(sessionID)
	amount := decimal.NewFromInt(100)
	state.Details.Amount = &amount
	state.Details.Currency = "USD"
	state.Details.AccountNumber = "AC12629233"
	state.Details.BeneficiaryName = "Daniela Varela"
	state.Details.Country = "MEXICO"
	state.Details.DeliveryMethod = "Bank Transfer"
	state.Phase = domain.PhaseReadyToConfirm
	return state
}
