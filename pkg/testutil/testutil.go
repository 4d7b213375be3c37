// Package testutil provides testing utilities for the blitzscan application
package testutil

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"
)

// MockCommandRunner implements runner.CommandRunner for testing
type MockCommandRunner struct {
	mu        sync.RWMutex
	commands  []ExecutedCommand
	responses map[string]CommandResponse
}

type ExecutedCommand struct {
	Command string
	Args    []string
	Context context.Context
}

type CommandResponse struct {
	Output []byte
	Error  error
	Delay  time.Duration
}

func NewMockCommandRunner() *MockCommandRunner {
	return &MockCommandRunner{
		responses: make(map[string]CommandResponse),
	}
}

func (m *MockCommandRunner) Run(ctx context.Context, command string, args []string) ([]byte, error) {
	m.mu.Lock()
	m.commands = append(m.commands, ExecutedCommand{
		Command: command,
		Args:    args,
		Context: ctx,
	})
	m.mu.Unlock()

	key := command + " " + strings.Join(args, " ")

	m.mu.RLock()
	response, exists := m.responses[key]
	m.mu.RUnlock()

	if exists {
		if response.Delay > 0 {
			time.Sleep(response.Delay)
		}
		return response.Output, response.Error
	}

	return nil, nil
}

func (m *MockCommandRunner) SetResponse(command string, args []string, response CommandResponse) {
	key := command + " " + strings.Join(args, " ")
	m.mu.Lock()
	m.responses[key] = response
	m.mu.Unlock()
}

func (m *MockCommandRunner) GetExecutedCommands() []ExecutedCommand {
	m.mu.RLock()
	defer m.mu.RUnlock()

	commands := make([]ExecutedCommand, len(m.commands))
	copy(commands, m.commands)
	return commands
}

func (m *MockCommandRunner) Reset() {
	m.mu.Lock()
	m.commands = nil
	m.responses = make(map[string]CommandResponse)
	m.mu.Unlock()
}

// TempDir creates a temporary directory for testing and returns a cleanup function
func TempDir(t *testing.T, prefix string) (string, func()) {
	t.Helper()

	dir, err := os.MkdirTemp("", prefix)
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}

	cleanup := func() {
		if err := os.RemoveAll(dir); err != nil {
			t.Errorf("Failed to clean up temp dir %s: %v", dir, err)
		}
	}

	return dir, cleanup
}

// CreateTestFile creates a test file with the given content
func CreateTestFile(t *testing.T, dir, filename, content string) string {
	t.Helper()

	filePath := filepath.Join(dir, filename)
	if err := os.WriteFile(filePath, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to create test file %s: %v", filePath, err)
	}

	return filePath
}

// WithTimeout creates a context with timeout for tests
func WithTimeout(t *testing.T, timeout time.Duration) (context.Context, context.CancelFunc) {
	t.Helper()
	return context.WithTimeout(context.Background(), timeout)
}
