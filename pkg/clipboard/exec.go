package clipboard

import (
	"bytes"
	"fmt"
	"os/exec"
	"strings"
)

// Command is one external clipboard utility with its write and read arguments
type Command struct {
	Write []string
	Read  []string
}

// DefaultCommands lists the utilities tried by the exec backend, in order
var DefaultCommands = []Command{
	{Write: []string{"xclip", "-selection", "clipboard"}, Read: []string{"xclip", "-selection", "clipboard", "-o"}},
	{Write: []string{"xsel", "--clipboard", "--input"}, Read: []string{"xsel", "--clipboard", "--output"}},
	{Write: []string{"wl-copy"}, Read: []string{"wl-paste", "--no-newline"}},
	{Write: []string{"pbcopy"}, Read: []string{"pbpaste"}}, // macOS
	{Write: []string{"clip"}},                                // Windows
}

// Exec writes to the clipboard by piping text into an external utility
type Exec struct {
	Commands []Command
	lookPath func(string) (string, error)
}

// NewExec creates an exec backend using DefaultCommands
func NewExec() *Exec {
	return &Exec{Commands: DefaultCommands, lookPath: exec.LookPath}
}

// has reports whether the named utility is on PATH
func (e *Exec) has(name string) bool {
	lookPath := e.lookPath
	if lookPath == nil {
		lookPath = exec.LookPath
	}
	_, err := lookPath(name)
	return err == nil
}

// installed returns the commands whose write utility is on PATH
func (e *Exec) installed() []Command {
	var found []Command
	for _, c := range e.Commands {
		if len(c.Write) == 0 {
			continue
		}
		if e.has(c.Write[0]) {
			found = append(found, c)
		}
	}
	return found
}

func (e *Exec) Available() bool {
	return len(e.installed()) > 0
}

// Secure is always true for a local process
func (e *Exec) Secure() bool {
	return true
}

// WriteText copies text using the first utility that succeeds
func (e *Exec) WriteText(text string) error {
	commands := e.installed()
	if len(commands) == 0 {
		return fmt.Errorf("no clipboard utility found (tried %s)", e.names())
	}

	var lastErr error
	for _, c := range commands {
		cmd := exec.Command(c.Write[0], c.Write[1:]...)
		cmd.Stdin = strings.NewReader(text)
		if err := cmd.Run(); err != nil {
			lastErr = fmt.Errorf("%s: %w", c.Write[0], err)
			continue
		}
		return nil
	}
	return lastErr
}

// ReadText returns the clipboard contents using the first utility that succeeds
func (e *Exec) ReadText() (string, error) {
	var lastErr error = fmt.Errorf("no clipboard reader found (tried %s)", e.names())
	for _, c := range e.installed() {
		if len(c.Read) == 0 {
			continue
		}
		if !e.has(c.Read[0]) {
			continue
		}
		var out bytes.Buffer
		cmd := exec.Command(c.Read[0], c.Read[1:]...)
		cmd.Stdout = &out
		if err := cmd.Run(); err != nil {
			lastErr = fmt.Errorf("%s: %w", c.Read[0], err)
			continue
		}
		return out.String(), nil
	}
	return "", lastErr
}

func (e *Exec) names() string {
	names := make([]string, 0, len(e.Commands))
	for _, c := range e.Commands {
		if len(c.Write) > 0 {
			names = append(names, c.Write[0])
		}
	}
	return strings.Join(names, ", ")
}
