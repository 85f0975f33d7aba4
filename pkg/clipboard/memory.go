package clipboard

import "sync"

// Memory is an in-process clipboard. It backs dry runs and tests.
type Memory struct {
	mu       sync.Mutex
	text     string
	writes   []string
	insecure bool
	missing  bool
	failWith error
}

// NewMemory creates an empty, available and secure in-memory clipboard
func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) Available() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return !m.missing
}

func (m *Memory) Secure() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return !m.insecure
}

func (m *Memory) WriteText(text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return m.failWith
	}
	m.text = text
	m.writes = append(m.writes, text)
	return nil
}

func (m *Memory) ReadText() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.text, nil
}

// SetAvailable toggles whether the capability is present
func (m *Memory) SetAvailable(available bool) {
	m.mu.Lock()
	m.missing = !available
	m.mu.Unlock()
}

// SetSecure toggles the trusted-context flag
func (m *Memory) SetSecure(secure bool) {
	m.mu.Lock()
	m.insecure = !secure
	m.mu.Unlock()
}

// FailWith makes every following write return err; nil restores normal writes
func (m *Memory) FailWith(err error) {
	m.mu.Lock()
	m.failWith = err
	m.mu.Unlock()
}

// Writes returns every successful write in order
func (m *Memory) Writes() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.writes...)
}
