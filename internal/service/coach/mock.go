package coach

import (
	"context"
	"sync"
)

// MockCoachService implements Service for unit tests. It echoes the phase
// name back unless Err is set.
type MockCoachService struct {
	Err error

	mu       sync.Mutex
	requests []Request
}

// NewMockCoachService creates a new mock service.
func NewMockCoachService() *MockCoachService {
	return &MockCoachService{}
}

func (m *MockCoachService) Reply(_ context.Context, req Request) (*Reply, error) {
	m.mu.Lock()
	m.requests = append(m.requests, req)
	m.mu.Unlock()

	if m.Err != nil {
		return nil, m.Err
	}
	return &Reply{Reply: "Keep going with " + req.Context.PhaseName + "."}, nil
}

// Requests returns the requests received so far.
func (m *MockCoachService) Requests() []Request {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Request(nil), m.requests...)
}

// Compile-time interface check
var _ Service = (*MockCoachService)(nil)
