package clipboard

import (
	"fmt"
	"sync"
	"unicode/utf8"

	xclipboard "golang.design/x/clipboard"
)

var (
	nativeOnce    sync.Once
	nativeInitErr error
)

// Native talks to the window system directly through golang.design/x/clipboard.
// The library needs cgo on most platforms and panics on some failures, so
// Available is only true after Init succeeded.
type Native struct {
	init func() error
}

// NewNative creates the native backend. Init runs lazily and only once per process.
func NewNative() *Native {
	return &Native{init: initNative}
}

func initNative() error {
	nativeOnce.Do(func() {
		defer func() {
			if r := recover(); r != nil {
				nativeInitErr = fmt.Errorf("native clipboard init: %v", r)
			}
		}()
		nativeInitErr = xclipboard.Init()
	})
	return nativeInitErr
}

func (n *Native) Available() bool {
	return n.init() == nil
}

func (n *Native) Secure() bool {
	return true
}

func (n *Native) WriteText(text string) error {
	if err := n.init(); err != nil {
		return err
	}
	xclipboard.Write(xclipboard.FmtText, []byte(text))
	return nil
}

func (n *Native) ReadText() (string, error) {
	if err := n.init(); err != nil {
		return "", err
	}
	data := xclipboard.Read(xclipboard.FmtText)
	// basic sanity check
	if !utf8.Valid(data) {
		return "", fmt.Errorf("native clipboard holds non-text data")
	}
	return string(data), nil
}
