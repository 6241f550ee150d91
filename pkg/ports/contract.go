package ports

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avelarq/remesa/pkg/domain"
)

// RunStateStoreContract runs a suite of tests to verify that a StateStore
// implementation adheres to the defined interface contract.
func RunStateStoreContract(t *testing.T, store StateStore) {
	ctx := context.Background()
	sessionID := "contract-test-session-" + time.Now().Format("20060102150405")

	t.Run("Save and Load", func(t *testing.T) {
		state := domain.NewState(sessionID)
		amount := decimal.RequireFromString("150.75")
		state.Details.Amount = &amount
		state.Details.Currency = "USD"
		state.Details.Country = "HONDURAS"

		err := store.Save(ctx, sessionID, state)
		require.NoError(t, err, "Save should not return error")

		loaded, err := store.Load(ctx, sessionID)
		require.NoError(t, err, "Load should not return error")
		assert.Equal(t, domain.PhaseCollecting, loaded.Phase)
		assert.Equal(t, "USD", loaded.Details.Currency)
		require.NotNil(t, loaded.Details.Amount)
		assert.True(t, loaded.Details.Amount.Equal(amount), "amount must survive the round trip exactly")
	})

	t.Run("Save is an overwrite", func(t *testing.T) {
		state := domain.NewState(sessionID)
		state.Phase = domain.PhaseCancelled
		require.NoError(t, store.Save(ctx, sessionID, state))

		loaded, err := store.Load(ctx, sessionID)
		require.NoError(t, err)
		assert.Equal(t, domain.PhaseCancelled, loaded.Phase)
	})

	t.Run("Load Non-Existent", func(t *testing.T) {
		_, err := store.Load(ctx, "non-existent-"+sessionID)
		assert.ErrorIs(t, err, domain.ErrSessionNotFound)
	})

	t.Run("Delete", func(t *testing.T) {
		err := store.Save(ctx, sessionID, domain.NewState(sessionID))
		require.NoError(t, err)

		err = store.Delete(ctx, sessionID)
		require.NoError(t, err, "Delete should not return error")

		_, err = store.Load(ctx, sessionID)
		assert.ErrorIs(t, err, domain.ErrSessionNotFound, "Load after Delete should return ErrSessionNotFound")
	})

	t.Run("List", func(t *testing.T) {
		id1 := sessionID + "-1"
		id2 := sessionID + "-2"
		require.NoError(t, store.Save(ctx, id1, domain.NewState(id1)))
		require.NoError(t, store.Save(ctx, id2, domain.NewState(id2)))

		defer func() {
			_ = store.Delete(ctx, id1)
			_ = store.Delete(ctx, id2)
		}()

		sessions, err := store.List(ctx)
		require.NoError(t, err)
		assert.Contains(t, sessions, id1)
		assert.Contains(t, sessions, id2)
	})

	t.Run("Executed result survives the round trip", func(t *testing.T) {
		state := domain.NewState(sessionID)
		amount := decimal.NewFromInt(100)
		state.Details.Amount = &amount
		state.Phase = domain.PhaseCompleted
		state.Result = &domain.TransferResult{
			TransactionID: "TXN-0F8FAD5BD9CB",
			Details:       state.Details.Copy(),
			Timestamp:     time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC),
		}
		require.NoError(t, store.Save(ctx, sessionID, state))
		defer func() { _ = store.Delete(ctx, sessionID) }()

		loaded, err := store.Load(ctx, sessionID)
		require.NoError(t, err)
		require.NotNil(t, loaded.Result)
		assert.Equal(t, "TXN-0F8FAD5BD9CB", loaded.Result.TransactionID)
		assert.True(t, loaded.Result.Timestamp.Equal(state.Result.Timestamp))
	})
}
