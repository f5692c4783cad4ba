package profile

import (
	"context"
	"sync"
)

// MockProfileService implements Service in memory for unit tests. Records go
// through the same JSON encoding as the Firestore store.
type MockProfileService struct {
	mu     sync.Mutex
	states map[string]string
	writes int
}

// NewMockProfileService creates a new mock service.
func NewMockProfileService() *MockProfileService {
	return &MockProfileService{states: make(map[string]string)}
}

func (m *MockProfileService) Create(ctx context.Context, userID string) (*UserProfile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.states[userID]; exists {
		return nil, ErrAlreadyExists
	}
	p := NewStore(UserProfile{}).Snapshot()
	state, err := encodeState(p)
	if err != nil {
		return nil, err
	}
	m.states[userID] = state
	m.writes++
	return &p, nil
}

func (m *MockProfileService) Get(ctx context.Context, userID string) (*UserProfile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	state, exists := m.states[userID]
	if !exists {
		return nil, ErrNotFound
	}
	p, err := decodeState(state)
	if err != nil {
		return nil, err
	}
	p = NewStore(p).Snapshot()
	return &p, nil
}

func (m *MockProfileService) Update(ctx context.Context, userID, action string, fn Mutation) (*UserProfile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	state, exists := m.states[userID]
	if !exists {
		return nil, ErrNotFound
	}
	current, err := decodeState(state)
	if err != nil {
		return nil, err
	}
	next, changed, err := applyMutation(current, fn)
	if err != nil {
		return nil, err
	}
	if changed {
		encoded, err := encodeState(next)
		if err != nil {
			return nil, err
		}
		m.states[userID] = encoded
		m.writes++
	}
	return &next, nil
}

// Seed stores p for userID, replacing any existing record.
func (m *MockProfileService) Seed(userID string, p UserProfile) error {
	state, err := encodeState(p)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.states[userID] = state
	return nil
}

// Writes returns how many times a record was written.
func (m *MockProfileService) Writes() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.writes
}

// Compile-time interface check
var _ Service = (*MockProfileService)(nil)
