package clipboard

import (
	"fmt"
	"sort"
	"strings"
)

// Platform is a host clipboard capability
type Platform interface {
	// Available reports whether the capability is present at all
	Available() bool
	// Secure reports whether the current context is trusted to use it
	Secure() bool
	// WriteText replaces the clipboard contents with text
	WriteText(text string) error
}

// Reader is implemented by platforms that can read the clipboard back
type Reader interface {
	ReadText() (string, error)
}

// Backend names accepted by Open
const (
	BackendAuto   = "auto"
	BackendSystem = "system"
	BackendNative = "native"
	BackendExec   = "exec"
	BackendOSC52  = "osc52"
	BackendMemory = "memory"
)

// autoOrder is the preference order used by the auto backend
var autoOrder = []string{BackendSystem, BackendExec, BackendOSC52, BackendNative}

// Supported reports whether p can be used right now
func Supported(p Platform) bool {
	return p != nil && p.Available() && p.Secure()
}

// Backends returns every backend name accepted by Open
func Backends() []string {
	names := []string{BackendAuto, BackendSystem, BackendNative, BackendExec, BackendOSC52, BackendMemory}
	sort.Strings(names[1:])
	return names
}

// Open returns the platform registered under name
func Open(name string) (Platform, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", BackendAuto:
		return Auto(), nil
	case BackendSystem:
		return NewSystem(), nil
	case BackendNative:
		return NewNative(), nil
	case BackendExec:
		return NewExec(), nil
	case BackendOSC52:
		return NewOSC52(nil), nil
	case BackendMemory:
		return NewMemory(), nil
	}
	return nil, fmt.Errorf("unknown clipboard backend %q (want one of %s)", name, strings.Join(Backends(), ", "))
}

// Auto returns the first supported backend in preference order.
// When none is supported the system backend is returned so callers still
// get a consistent "not supported" answer.
func Auto() Platform {
	for _, name := range autoOrder {
		p, err := Open(name)
		if err == nil && Supported(p) {
			return p
		}
	}
	return NewSystem()
}

// BackendStatus describes one backend as seen by Probe
type BackendStatus struct {
	Name      string
	Available bool
	Secure    bool
}

// Probe reports the support status of every concrete backend
func Probe() []BackendStatus {
	var result []BackendStatus
	for _, name := range Backends() {
		if name == BackendAuto {
			continue
		}
		p, err := Open(name)
		if err != nil {
			continue
		}
		result = append(result, BackendStatus{
			Name:      name,
			Available: p.Available(),
			Secure:    p.Secure(),
		})
	}
	return result
}
