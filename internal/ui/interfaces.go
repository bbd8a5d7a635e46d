package ui

// TableRenderer defines the interface for tabular output
type TableRenderer interface {
	Render(headers []string, rows [][]string) error
}

// Ensure Table implements TableRenderer interface
var _ TableRenderer = (*Table)(nil)

// MockRenderer for testing
type MockRenderer struct {
	RenderError error

	// Call tracking
	RenderCalled bool
	Headers      []string
	Rows         [][]string
}

// Render mocks table rendering and captures its input
func (m *MockRenderer) Render(headers []string, rows [][]string) error {
	m.RenderCalled = true
	m.Headers = headers
	m.Rows = rows
	return m.RenderError
}

// Reset clears all tracking data for fresh test
func (m *MockRenderer) Reset() {
	m.RenderCalled = false
	m.Headers = nil
	m.Rows = nil
}
