// Package copier tracks the outcome of clipboard writes for a user interface:
// whether something was just copied, what it was, and what went wrong last.
//
// A Controller owns three observable fields (copied, copied text, last error)
// and at most one pending auto-reset timer. Copy and Clear call the platform
// synchronously; run them on a goroutine if the caller must not block.
//
// Overlapping Copy/Clear calls are not serialised. Each completion overwrites
// the shared state, so whichever platform call finishes last wins.
package copier

import (
	"sync"
	"time"

	"github.com/cnharrison/copy-tui/internal/log"
	"github.com/cnharrison/copy-tui/pkg/clipboard"
)

// DefaultTimeout is how long Copied stays true after a successful copy
const DefaultTimeout = 2000 * time.Millisecond

// Option configures a Controller
type Option func(*Controller)

// WithTimeout sets the auto-reset delay. Zero disables auto-reset and
// negative values are treated as zero.
func WithTimeout(d time.Duration) Option {
	return func(c *Controller) {
		if d < 0 {
			log.Warn("copier: negative timeout %v treated as 0 (auto-reset disabled)", d)
			d = 0
		}
		c.timeout = d
	}
}

// WithOnSuccess registers a callback invoked with the text after each successful copy
func WithOnSuccess(f func(text string)) Option {
	return func(c *Controller) { c.onSuccess = f }
}

// WithOnError registers a callback invoked with every captured failure
func WithOnError(f func(err error)) Option {
	return func(c *Controller) { c.onError = f }
}

// WithClock replaces the timer service, mainly for tests
func WithClock(clock Clock) Option {
	return func(c *Controller) { c.clock = clock }
}

// Controller exposes clipboard copy/clear with transient success state
type Controller struct {
	platform  clipboard.Platform
	clock     Clock
	timeout   time.Duration
	onSuccess func(string)
	onError   func(error)

	mu       sync.Mutex
	copied   bool
	text     string
	hasText  bool
	err      error
	timer    Timer
	timerGen uint64
	closed   bool

	subMu   sync.Mutex
	subs    map[int]func(State)
	nextSub int
}

// New creates a controller writing through platform. A nil platform is
// allowed and simply reports as unsupported.
func New(platform clipboard.Platform, opts ...Option) *Controller {
	c := &Controller{
		platform: platform,
		clock:    RealClock(),
		timeout:  DefaultTimeout,
		subs:     make(map[int]func(State)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// IsSupported reports whether the platform is present and trusted. It is
// evaluated on every call.
func (c *Controller) IsSupported() bool {
	return clipboard.Supported(c.platform)
}

// Copied reports whether the last copy succeeded and its reset delay is still running
func (c *Controller) Copied() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.copied
}

// CopiedText returns the text of the last successful copy, if any
func (c *Controller) CopiedText() (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.text, c.hasText
}

// Err returns the last captured failure
func (c *Controller) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.err
}

// Timeout returns the effective auto-reset delay
func (c *Controller) Timeout() time.Duration {
	return c.timeout
}

// State returns a snapshot of all observable fields
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stateLocked()
}

func (c *Controller) stateLocked() State {
	return State{
		Copied:     c.copied,
		CopiedText: c.text,
		HasText:    c.hasText,
		Err:        c.err,
		Supported:  c.IsSupported(),
	}
}

// Subscribe registers f to be called with a fresh snapshot after every state
// change. The returned function removes the subscription.
func (c *Controller) Subscribe(f func(State)) (unsubscribe func()) {
	c.subMu.Lock()
	id := c.nextSub
	c.nextSub++
	c.subs[id] = f
	c.subMu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			c.subMu.Lock()
			delete(c.subs, id)
			c.subMu.Unlock()
		})
	}
}

func (c *Controller) notify(s State) {
	c.subMu.Lock()
	subs := make([]func(State), 0, len(c.subs))
	for _, f := range c.subs {
		subs = append(subs, f)
	}
	c.subMu.Unlock()

	for _, f := range subs {
		f(s)
	}
}

// Copy writes text to the clipboard and reports whether it succeeded.
// Failures never escape; they are stored in Err and passed to OnError.
func (c *Controller) Copy(text string) bool {
	if !c.IsSupported() {
		c.fail(ErrUnsupported, false)
		return false
	}

	if err := c.write(OpCopy, text); err != nil {
		log.Debug("copier: copy failed: %v", err)
		c.fail(err, true)
		return false
	}

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return true
	}
	c.copied = true
	c.text = text
	c.hasText = true
	c.err = nil
	if c.timeout > 0 {
		c.armTimerLocked()
	}
	s := c.stateLocked()
	c.mu.Unlock()

	log.Debug("copier: copied %d bytes", len(text))
	if c.onSuccess != nil {
		c.onSuccess(text)
	}
	c.notify(s)
	return true
}

// Clear empties the clipboard and, on success, resets all state like Reset.
// A failed clear records the error but keeps Copied and CopiedText.
func (c *Controller) Clear() bool {
	if !c.IsSupported() {
		c.fail(ErrUnsupported, false)
		return false
	}

	if err := c.write(OpClear, ""); err != nil {
		log.Debug("copier: clear failed: %v", err)
		c.fail(err, false)
		return false
	}

	c.Reset()
	return true
}

// Reset clears copied, copied text and error and cancels the pending
// auto-reset. It is safe to call any number of times.
func (c *Controller) Reset() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.stopTimerLocked()
	c.copied = false
	c.text = ""
	c.hasText = false
	c.err = nil
	s := c.stateLocked()
	c.mu.Unlock()

	c.notify(s)
}

// Close cancels the pending auto-reset. Later completions, timer callbacks
// and subscriber notifications are dropped.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	c.stopTimerLocked()
}

// write calls the platform, turning a panic into a failure value
func (c *Controller) write(op Op, text string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = normalize(op, r)
		}
	}()
	return c.platform.WriteText(text)
}

// fail stores err, optionally dropping the copied state, and reports it
func (c *Controller) fail(err error, dropCopied bool) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.err = err
	if dropCopied {
		c.copied = false
		c.text = ""
		c.hasText = false
	}
	s := c.stateLocked()
	c.mu.Unlock()

	if c.onError != nil {
		c.onError(err)
	}
	c.notify(s)
}

// armTimerLocked replaces any pending auto-reset with a new one
func (c *Controller) armTimerLocked() {
	c.stopTimerLocked()
	gen := c.timerGen
	c.timer = c.clock.AfterFunc(c.timeout, func() { c.expire(gen) })
}

// stopTimerLocked cancels the pending auto-reset. Bumping the generation
// makes a callback that already started a no-op.
func (c *Controller) stopTimerLocked() {
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	c.timerGen++
}

func (c *Controller) expire(gen uint64) {
	c.mu.Lock()
	if c.closed || gen != c.timerGen {
		c.mu.Unlock()
		return
	}
	c.timer = nil
	c.copied = false
	s := c.stateLocked()
	c.mu.Unlock()

	log.Debug("copier: auto-reset after %v", c.timeout)
	c.notify(s)
}
