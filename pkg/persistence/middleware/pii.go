package middleware

import (
	"context"
	"strings"

	"github.com/avelarq/remesa/pkg/domain"
	"github.com/avelarq/remesa/pkg/ports"
)

type redactionMiddleware struct {
	next ports.StateStore
}

// NewRedactionMiddleware creates a middleware that strips personal data from
// states before they reach the backing store. It is meant for archival or
// read-model stores: the redaction is lossy, so a store wrapped with it
// cannot resume in-flight sessions.
func NewRedactionMiddleware() Middleware {
	return func(next ports.StateStore) ports.StateStore {
		return &redactionMiddleware{next: next}
	}
}

func (m *redactionMiddleware) Save(ctx context.Context, sessionID string, state *domain.State) error {
	cloned := state.Copy()

	redactDetails(&cloned.Details)
	if cloned.Result != nil {
		redactDetails(&cloned.Result.Details)
	}

	return m.next.Save(ctx, sessionID, cloned)
}

func (m *redactionMiddleware) Load(ctx context.Context, sessionID string) (*domain.State, error) {
	return m.next.Load(ctx, sessionID)
}

func (m *redactionMiddleware) Delete(ctx context.Context, sessionID string) error {
	return m.next.Delete(ctx, sessionID)
}

func (m *redactionMiddleware) List(ctx context.Context) ([]string, error) {
	return m.next.List(ctx)
}

func redactDetails(d *domain.Details) {
	d.AccountNumber = maskAccount(d.AccountNumber)
	d.BeneficiaryName = maskName(d.BeneficiaryName)
}

// maskAccount keeps the last four characters: "AC12629233" -> "******9233".
func maskAccount(account string) string {
	if account == "" {
		return ""
	}
	if len(account) <= 4 {
		return strings.Repeat("*", len(account))
	}
	return strings.Repeat("*", len(account)-4) + account[len(account)-4:]
}

// maskName keeps initials: "Daniela Varela" -> "D. V.".
func maskName(name string) string {
	if name == "" {
		return ""
	}
	var initials []string
	for _, token := range strings.Fields(name) {
		initials = append(initials, string([]rune(token)[0])+".")
	}
	return strings.Join(initials, " ")
}
