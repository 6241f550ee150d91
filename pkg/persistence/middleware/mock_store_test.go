package middleware_test

import (
	"context"

	"github.com/avelarq/remesa/pkg/domain"
)

// MockStore is a plain map-backed store so the tests can inspect exactly
// what the middleware handed to the persistence layer.
type MockStore struct {
	data map[string]*domain.State
}

func NewMockStore() *MockStore {
	return &MockStore{data: make(map[string]*domain.State)}
}

func (m *MockStore) Save(ctx context.Context, sessionID string, state *domain.State) error {
	m.data[sessionID] = state
	return nil
}

func (m *MockStore) Load(ctx context.Context, sessionID string) (*domain.State, error) {
	state, ok := m.data[sessionID]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return state, nil
}

func (m *MockStore) Delete(ctx context.Context, sessionID string) error {
	delete(m.data, sessionID)
	return nil
}

func (m *MockStore) List(ctx context.Context) ([]string, error) {
	ids := make([]string, 0, len(m.data))
	for id := range m.data {
		ids = append(ids, id)
	}
	return ids, nil
}
