package toolchain

import (
	"context"
	"fmt"
	"strings"
	"sync"
)

// MockRunner implements Runner for testing without spawning processes
type MockRunner struct {
	mu      sync.Mutex
	tools   map[string]string // tool name -> resolved path
	outputs map[string]string // invocation key -> stdout
	calls   []MockCall

	// Hooks for testing error scenarios, keyed by tool name
	RunErrors    map[string]error
	AttachErrors map[string]error
}

// MockCall records a single tool invocation
type MockCall struct {
	Tool string
	Dir  string
	Args []string
}

// NewMockRunner creates a new MockRunner with no tools on the path
func NewMockRunner() *MockRunner {
	return &MockRunner{
		tools:        make(map[string]string),
		outputs:      make(map[string]string),
		RunErrors:    make(map[string]error),
		AttachErrors: make(map[string]error),
	}
}

// AddTool makes a tool resolvable via Look
func (m *MockRunner) AddTool(tool, path string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tools[tool] = path
}

// SetOutput fixes the standard output returned for an invocation
func (m *MockRunner) SetOutput(tool string, args []string, output string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.outputs[invocationKey(tool, args)] = output
}

func (m *MockRunner) Look(tool string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	path, ok := m.tools[tool]
	if !ok {
		return "", fmt.Errorf("%s not found on PATH", tool)
	}
	return path, nil
}

func (m *MockRunner) Output(ctx context.Context, dir, tool string, args ...string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.calls = append(m.calls, MockCall{Tool: tool, Dir: dir, Args: args})

	if err, ok := m.RunErrors[tool]; ok && err != nil {
		return "", err
	}

	output, ok := m.outputs[invocationKey(tool, args)]
	if !ok {
		return "", fmt.Errorf("no mocked output for %s", invocationKey(tool, args))
	}
	return output, nil
}

func (m *MockRunner) Run(ctx context.Context, dir, tool string, args ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.calls = append(m.calls, MockCall{Tool: tool, Dir: dir, Args: args})

	if err, ok := m.RunErrors[tool]; ok && err != nil {
		return err
	}
	return nil
}

func (m *MockRunner) Attach(ctx context.Context, dir, tool string, args ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.calls = append(m.calls, MockCall{Tool: tool, Dir: dir, Args: args})

	if err, ok := m.AttachErrors[tool]; ok && err != nil {
		return err
	}
	return nil
}

// Calls returns all recorded invocations
func (m *MockRunner) Calls() []MockCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]MockCall{}, m.calls...)
}

// CallsTo returns the recorded invocations of a single tool
func (m *MockRunner) CallsTo(tool string) []MockCall {
	m.mu.Lock()
	defer m.mu.Unlock()

	var calls []MockCall
	for _, call := range m.calls {
		if call.Tool == tool {
			calls = append(calls, call)
		}
	}
	return calls
}

func invocationKey(tool string, args []string) string {
	return strings.Join(append([]string{tool}, args...), " ")
}
