package middleware_test

import (
	"context"
	"crypto/rand"
	"io"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avelarq/remesa/pkg/domain"
	"github.com/avelarq/remesa/pkg/persistence/middleware"
)

func generateKey(t *testing.T) []byte {
	k := make([]byte, 32)
	if _, err := io.ReadFull(rand.Reader, k); err != nil {
		t.Fatal(err)
	}
	return k
}

func collectingState(sessionID string) *domain.State {
	state := domain.NewState(sessionID)
	amount := decimal.NewFromInt(100)
	state.Details.Amount = &amount
	state.Details.AccountNumber = "AC12629233"
	state.Details.BeneficiaryName = "Daniela Varela"
	return state
}

func TestEncryptionMiddleware_Roundtrip(t *testing.T) {
	underlyingStore := NewMockStore()
	key := generateKey(t)
	mw := middleware.NewEncryptionMiddleware(middleware.EncryptionConfig{ActiveKey: key})
	secureStore := mw(underlyingStore)

	ctx := context.Background()
	sessionID := "test-session"
	original := collectingState(sessionID)

	require.NoError(t, secureStore.Save(ctx, sessionID, original))

	// The backing store must only see the opaque envelope.
	stored, err := underlyingStore.Load(ctx, sessionID)
	require.NoError(t, err)
	assert.NotEmpty(t, stored.Sealed)
	assert.Empty(t, stored.Details.AccountNumber, "account number must not reach the store in the clear")
	assert.Empty(t, stored.Details.BeneficiaryName)
	assert.Nil(t, stored.Details.Amount)
	assert.Equal(t, domain.PhaseCollecting, stored.Phase, "phase stays visible for monitoring")

	// Loading through the middleware restores the full state.
	loaded, err := secureStore.Load(ctx, sessionID)
	require.NoError(t, err)
	assert.Equal(t, "AC12629233", loaded.Details.AccountNumber)
	assert.Equal(t, "Daniela Varela", loaded.Details.BeneficiaryName)
	require.NotNil(t, loaded.Details.Amount)
	assert.Equal(t, "100", loaded.Details.Amount.String())
	assert.Empty(t, loaded.Sealed)
}

func TestEncryptionMiddleware_KeyRotation(t *testing.T) {
	underlyingStore := NewMockStore()
	oldKey := generateKey(t)
	newKey := generateKey(t)
	ctx := context.Background()
	sessionID := "rotated-session"

	// Save with the old key.
	oldStore := middleware.NewEncryptionMiddleware(middleware.EncryptionConfig{ActiveKey: oldKey})(underlyingStore)
	require.NoError(t, oldStore.Save(ctx, sessionID, collectingState(sessionID)))

	// Load with the new key active and the old one as fallback.
	rotatedStore := middleware.NewEncryptionMiddleware(middleware.EncryptionConfig{
		ActiveKey:    newKey,
		FallbackKeys: [][]byte{oldKey},
	})(underlyingStore)

	loaded, err := rotatedStore.Load(ctx, sessionID)
	require.NoError(t, err)
	assert.Equal(t, "AC12629233", loaded.Details.AccountNumber)

	// Without the fallback the ciphertext is unreadable.
	strictStore := middleware.NewEncryptionMiddleware(middleware.EncryptionConfig{ActiveKey: newKey})(underlyingStore)
	_, err = strictStore.Load(ctx, sessionID)
	assert.Error(t, err)
}

func TestEncryptionMiddleware_RejectsPlaintextState(t *testing.T) {
	underlyingStore := NewMockStore()
	ctx := context.Background()

	// A state written without the middleware must not be readable through it.
	require.NoError(t, underlyingStore.Save(ctx, "plain", collectingState("plain")))

	secureStore := middleware.NewEncryptionMiddleware(middleware.EncryptionConfig{ActiveKey: generateKey(t)})(underlyingStore)
	_, err := secureStore.Load(ctx, "plain")
	assert.Error(t, err)
}
