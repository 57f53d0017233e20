package llm

import (
	"context"
	"sync"

	"github.com/serenoapp/server/domain/repositories"
)

// MockResponse is a canned response for the MockGenerator.
type MockResponse struct {
	Text string
	Err  error
}

// MockGenerator is a deterministic TextGenerator for testing.
// It returns canned responses in FIFO order and records all requests.
type MockGenerator struct {
	mu        sync.Mutex
	responses []MockResponse
	Calls     []repositories.GenerationRequest
}

var _ repositories.TextGenerator = (*MockGenerator)(nil)

// NewMockGenerator creates a MockGenerator with the given canned responses.
func NewMockGenerator(responses ...MockResponse) *MockGenerator {
	return &MockGenerator{responses: responses}
}

// Generate returns the next canned response, or ErrProviderUnavailable
// once the queue is empty.
func (m *MockGenerator) Generate(_ context.Context, req repositories.GenerationRequest) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, req)

	if len(m.responses) == 0 {
		return "", &ErrProviderUnavailable{}
	}

	resp := m.responses[0]
	m.responses = m.responses[1:]

	if resp.Err != nil {
		return "", resp.Err
	}
	return resp.Text, nil
}

// CallCount returns the number of Generate calls made.
func (m *MockGenerator) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}
