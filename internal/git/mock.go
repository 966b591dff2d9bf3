package git

import (
	"context"
	"sync"
)

// MockGitClient implements GitClient for testing
type MockGitClient struct {
	mu        sync.Mutex
	available bool
	inits     []string
	ctx       context.Context

	// Hooks for testing error scenarios
	InitError error
}

// NewMockGitClient creates a new MockGitClient with git available
func NewMockGitClient() *MockGitClient {
	return &MockGitClient{
		available: true,
		ctx:       context.Background(),
	}
}

// SetAvailable controls whether the mock reports git on the search path
func (m *MockGitClient) SetAvailable(available bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.available = available
}

// Available reports the configured availability
func (m *MockGitClient) Available() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.available
}

// Init records the requested repository initialization
func (m *MockGitClient) Init(dir string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.InitError != nil {
		return m.InitError
	}

	m.inits = append(m.inits, dir)
	return nil
}

// Inits returns the directories Init was called for
func (m *MockGitClient) Inits() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string{}, m.inits...)
}

// WithContext returns the same mock bound to ctx
func (m *MockGitClient) WithContext(ctx context.Context) GitClient {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ctx = ctx
	return m
}
