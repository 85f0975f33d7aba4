package clipboard

import (
	"fmt"

	"github.com/atotto/clipboard"
)

// System is the OS clipboard as exposed by github.com/atotto/clipboard
type System struct{}

// NewSystem creates the system backend
func NewSystem() *System {
	return &System{}
}

// Available is false when atotto/clipboard found no usable helper at init
func (s *System) Available() bool {
	return !clipboard.Unsupported
}

func (s *System) Secure() bool {
	return true
}

func (s *System) WriteText(text string) error {
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("system clipboard write: %w", err)
	}
	return nil
}

func (s *System) ReadText() (string, error) {
	text, err := clipboard.ReadAll()
	if err != nil {
		return "", fmt.Errorf("system clipboard read: %w", err)
	}
	return text, nil
}
