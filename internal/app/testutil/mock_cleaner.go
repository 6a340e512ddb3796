package testutil

import (
	"context"
	"strings"
	"sync"

	"github.com/stretchr/testify/mock"
)

// MockCleaner is a mock implementation of the api.Cleaner interface. Without
// expectations it trims the input and returns it, or DefaultError if set.
type MockCleaner struct {
	mock.Mock
	mu sync.Mutex

	DefaultError error
	// Block makes Clean wait for context cancellation
	Block bool

	inputs []string
}

// Clean implements the api.Cleaner interface
func (m *MockCleaner) Clean(ctx context.Context, text string) (string, error) {
	m.mu.Lock()
	m.inputs = append(m.inputs, text)
	hasExpectations := len(m.ExpectedCalls) > 0
	defaultErr, block := m.DefaultError, m.Block
	m.mu.Unlock()

	if hasExpectations {
		args := m.Called(ctx, text)
		return args.String(0), args.Error(1)
	}
	if block {
		<-ctx.Done()
		return "", ctx.Err()
	}
	if defaultErr != nil {
		return "", defaultErr
	}
	return strings.TrimSpace(text), nil
}

// Inputs returns every text passed to Clean
func (m *MockCleaner) Inputs() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.inputs...)
}
