package copier

import (
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/cnharrison/copy-tui/pkg/clipboard"
)

// scriptedPlatform fails or panics on demand and counts writes
type scriptedPlatform struct {
	mu        sync.Mutex
	available bool
	secure    bool
	writes    []string
	err       error
	panicWith any
	block     chan struct{}
}

func newScripted() *scriptedPlatform {
	return &scriptedPlatform{available: true, secure: true}
}

func (p *scriptedPlatform) Available() bool { return p.available }
func (p *scriptedPlatform) Secure() bool    { return p.secure }

func (p *scriptedPlatform) WriteText(text string) error {
	if p.block != nil {
		<-p.block
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.writes = append(p.writes, text)
	if p.panicWith != nil {
		panic(p.panicWith)
	}
	return p.err
}

func (p *scriptedPlatform) writeCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.writes)
}

func newTestController(p clipboard.Platform, opts ...Option) (*Controller, *fakeClock) {
	clock := newFakeClock()
	opts = append([]Option{WithClock(clock)}, opts...)
	return New(p, opts...), clock
}

func assertState(t *testing.T, c *Controller, copied bool, text string, hasText bool) {
	t.Helper()
	if got := c.Copied(); got != copied {
		t.Errorf("Copied() = %v, want %v", got, copied)
	}
	gotText, gotHas := c.CopiedText()
	if gotHas != hasText || gotText != text {
		t.Errorf("CopiedText() = (%q, %v), want (%q, %v)", gotText, gotHas, text, hasText)
	}
}

func TestNewInitialState(t *testing.T) {
	c, _ := newTestController(clipboard.NewMemory())

	assertState(t, c, false, "", false)
	if c.Err() != nil {
		t.Errorf("Expected no error, got %v", c.Err())
	}
	if !c.IsSupported() {
		t.Error("Expected memory platform to be supported")
	}
	if c.Timeout() != DefaultTimeout {
		t.Errorf("Expected default timeout %v, got %v", DefaultTimeout, c.Timeout())
	}
	if c.State().Phase() != PhaseIdle {
		t.Errorf("Expected idle phase, got %v", c.State().Phase())
	}
}

func TestCopySuccessForAnyText(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{name: "simple", text: "Hello"},
		{name: "empty", text: ""},
		{name: "long", text: strings.Repeat("abc", 100000)},
		{name: "unicode", text: "héllo wörld 世界 🐱‍👤 ​"},
		{name: "control characters", text: "tab\tnew\nline\x00nul"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mem := clipboard.NewMemory()
			c, _ := newTestController(mem)

			if !c.Copy(tt.text) {
				t.Fatalf("Copy returned false: %v", c.Err())
			}
			assertState(t, c, true, tt.text, true)
			if c.Err() != nil {
				t.Errorf("Expected no error, got %v", c.Err())
			}
			if got, _ := mem.ReadText(); got != tt.text {
				t.Error("Platform did not receive the copied text")
			}
		})
	}
}

func TestCopyAutoResetTiming(t *testing.T) {
	c, clock := newTestController(clipboard.NewMemory(), WithTimeout(2000*time.Millisecond))

	if !c.Copy("Hello") {
		t.Fatal("Copy returned false")
	}
	assertState(t, c, true, "Hello", true)

	clock.Advance(1999 * time.Millisecond)
	assertState(t, c, true, "Hello", true)

	clock.Advance(1 * time.Millisecond)
	assertState(t, c, false, "Hello", true)

	if c.State().Phase() != PhaseStale {
		t.Errorf("Expected stale phase after auto-reset, got %v", c.State().Phase())
	}
}

func TestZeroTimeoutNeverResets(t *testing.T) {
	c, clock := newTestController(clipboard.NewMemory(), WithTimeout(0))

	c.Copy("sticky")
	if clock.Pending() != 0 {
		t.Errorf("Expected no timer with zero timeout, got %d", clock.Pending())
	}
	clock.Advance(24 * time.Hour)
	assertState(t, c, true, "sticky", true)
}

func TestNegativeTimeoutTreatedAsZero(t *testing.T) {
	c, clock := newTestController(clipboard.NewMemory(), WithTimeout(-5*time.Millisecond))

	if c.Timeout() != 0 {
		t.Errorf("Expected negative timeout to clamp to 0, got %v", c.Timeout())
	}
	if !c.Copy("x") {
		t.Fatal("Copy should still succeed with a negative timeout")
	}
	clock.Advance(time.Hour)
	assertState(t, c, true, "x", true)
}

func TestSecondCopyRestartsTimer(t *testing.T) {
	c, clock := newTestController(clipboard.NewMemory(), WithTimeout(1000*time.Millisecond))

	c.Copy("first")
	clock.Advance(600 * time.Millisecond)
	c.Copy("second")

	if clock.Pending() != 1 {
		t.Errorf("Expected exactly one pending timer, got %d", clock.Pending())
	}

	// The first timer would have fired at 1000ms
	clock.Advance(500 * time.Millisecond)
	assertState(t, c, true, "second", true)

	clock.Advance(499 * time.Millisecond)
	assertState(t, c, true, "second", true)

	clock.Advance(1 * time.Millisecond)
	assertState(t, c, false, "second", true)
}

func TestResetClearsEverythingIdempotently(t *testing.T) {
	p := newScripted()
	c, clock := newTestController(p)

	c.Copy("Hello")
	c.Reset()
	assertState(t, c, false, "", false)
	if clock.Pending() != 0 {
		t.Errorf("Reset should cancel the pending timer, %d left", clock.Pending())
	}

	p.err = errors.New("denied")
	c.Copy("again")
	if c.Err() == nil {
		t.Fatal("Expected error before reset")
	}

	c.Reset()
	c.Reset()
	assertState(t, c, false, "", false)
	if c.Err() != nil {
		t.Errorf("Reset should clear the error, got %v", c.Err())
	}
	clock.Advance(time.Hour)
	assertState(t, c, false, "", false)
}

func TestCopyFailure(t *testing.T) {
	denied := errors.New("permission denied")

	tests := []struct {
		name      string
		err       error
		panicWith any
		wantMsg   string
		wantSame  bool
	}{
		{name: "error returned", err: denied, wantMsg: "permission denied", wantSame: true},
		{name: "error panicked", panicWith: denied, wantMsg: "permission denied", wantSame: true},
		{name: "string panicked", panicWith: "boom", wantMsg: "Failed to copy text. boom"},
		{name: "number panicked", panicWith: 42, wantMsg: "Failed to copy text. 42"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newScripted()
			var successCalls int
			var gotErr error
			c, _ := newTestController(p,
				WithOnSuccess(func(string) { successCalls++ }),
				WithOnError(func(err error) { gotErr = err }),
			)

			c.Copy("before")
			p.err = tt.err
			p.panicWith = tt.panicWith

			if c.Copy("after") {
				t.Fatal("Copy should report failure")
			}
			assertState(t, c, false, "", false)
			if c.Err() == nil || c.Err().Error() != tt.wantMsg {
				t.Errorf("Err() = %v, want %q", c.Err(), tt.wantMsg)
			}
			if tt.wantSame && !errors.Is(c.Err(), denied) {
				t.Errorf("Expected error to pass through unchanged, got %#v", c.Err())
			}
			if gotErr != c.Err() {
				t.Errorf("OnError got %v, want %v", gotErr, c.Err())
			}
			if successCalls != 1 {
				t.Errorf("OnSuccess should only fire for the first copy, fired %d times", successCalls)
			}
			if c.State().Phase() != PhaseFailed {
				t.Errorf("Expected failed phase, got %v", c.State().Phase())
			}
		})
	}
}

func TestFailureErrorType(t *testing.T) {
	p := newScripted()
	p.panicWith = "boom"
	c, _ := newTestController(p)

	c.Copy("x")
	var fe *FailureError
	if !errors.As(c.Err(), &fe) {
		t.Fatalf("Expected *FailureError, got %T", c.Err())
	}
	if fe.Op != OpCopy || fe.Value != "boom" {
		t.Errorf("Unexpected failure %+v", fe)
	}
}

func TestSuccessAfterFailureClearsError(t *testing.T) {
	p := newScripted()
	c, _ := newTestController(p)

	p.err = errors.New("nope")
	c.Copy("x")
	p.err = nil

	if !c.Copy("y") {
		t.Fatal("Copy should succeed")
	}
	if c.Err() != nil {
		t.Errorf("Expected error cleared, got %v", c.Err())
	}
	assertState(t, c, true, "y", true)
}

func TestClearSuccessResetsState(t *testing.T) {
	mem := clipboard.NewMemory()
	c, clock := newTestController(mem)

	c.Copy("Hello")
	if !c.Clear() {
		t.Fatalf("Clear returned false: %v", c.Err())
	}
	assertState(t, c, false, "", false)
	if clock.Pending() != 0 {
		t.Errorf("Clear should cancel the pending timer, %d left", clock.Pending())
	}
	if got, _ := mem.ReadText(); got != "" {
		t.Errorf("Expected clipboard emptied, got %q", got)
	}
	if w := mem.Writes(); len(w) != 2 || w[1] != "" {
		t.Errorf("Expected an empty-string write, got %q", w)
	}
}

func TestClearFailurePreservesCopiedState(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		panicWith any
		wantMsg   string
	}{
		{name: "error returned", err: errors.New("locked"), wantMsg: "locked"},
		{name: "string panicked", panicWith: "boom", wantMsg: "Failed to clear clipboard. boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newScripted()
			var gotErr error
			c, _ := newTestController(p, WithOnError(func(err error) { gotErr = err }))

			c.Copy("keep me")
			p.err = tt.err
			p.panicWith = tt.panicWith

			if c.Clear() {
				t.Fatal("Clear should report failure")
			}
			assertState(t, c, true, "keep me", true)
			if c.Err() == nil || c.Err().Error() != tt.wantMsg {
				t.Errorf("Err() = %v, want %q", c.Err(), tt.wantMsg)
			}
			if gotErr == nil {
				t.Error("OnError should fire for a failed clear")
			}
		})
	}
}

func TestUnsupported(t *testing.T) {
	tests := []struct {
		name      string
		available bool
		secure    bool
	}{
		{name: "capability missing", available: false, secure: true},
		{name: "insecure context", available: true, secure: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newScripted()
			p.available = tt.available
			p.secure = tt.secure
			var errs []error
			c, _ := newTestController(p, WithOnError(func(err error) { errs = append(errs, err) }))

			if c.IsSupported() {
				t.Fatal("Expected unsupported")
			}
			if c.Copy("x") {
				t.Error("Copy should return false when unsupported")
			}
			if c.Clear() {
				t.Error("Clear should return false when unsupported")
			}
			if p.writeCount() != 0 {
				t.Errorf("Platform must not be called, got %d writes", p.writeCount())
			}
			if !errors.Is(c.Err(), ErrUnsupported) || c.Err().Error() != "Clipboard API is not supported" {
				t.Errorf("Unexpected error %v", c.Err())
			}
			if len(errs) != 2 {
				t.Errorf("Expected OnError twice, got %d", len(errs))
			}
			assertState(t, c, false, "", false)
		})
	}
}

func TestNilPlatformIsUnsupported(t *testing.T) {
	c, _ := newTestController(nil)
	if c.IsSupported() {
		t.Error("nil platform should be unsupported")
	}
	if c.Copy("x") {
		t.Error("Copy should fail without a platform")
	}
	if !errors.Is(c.Err(), ErrUnsupported) {
		t.Errorf("Expected ErrUnsupported, got %v", c.Err())
	}
}

func TestSupportIsRecomputed(t *testing.T) {
	mem := clipboard.NewMemory()
	c, _ := newTestController(mem)

	mem.SetSecure(false)
	if c.IsSupported() {
		t.Error("Expected unsupported after context became insecure")
	}
	mem.SetSecure(true)
	if !c.IsSupported() {
		t.Error("Expected supported again")
	}
}

func TestUnsupportedCopyKeepsPreviousText(t *testing.T) {
	mem := clipboard.NewMemory()
	c, _ := newTestController(mem)

	c.Copy("Hello")
	mem.SetAvailable(false)
	c.Copy("World")

	_, hasText := c.CopiedText()
	if !hasText {
		t.Error("Unsupported copy must not touch the copied text")
	}
	if !errors.Is(c.Err(), ErrUnsupported) {
		t.Errorf("Expected ErrUnsupported, got %v", c.Err())
	}
}

func TestCallbacks(t *testing.T) {
	var got []string
	c, _ := newTestController(clipboard.NewMemory(),
		WithOnSuccess(func(text string) { got = append(got, text) }),
	)

	c.Copy("one")
	c.Copy("two")
	c.Reset()
	c.Clear()

	if strings.Join(got, ",") != "one,two" {
		t.Errorf("OnSuccess calls = %v, want [one two]", got)
	}
}

func TestSubscribeNotifiesOnEveryChange(t *testing.T) {
	p := newScripted()
	c, clock := newTestController(p, WithTimeout(100*time.Millisecond))

	var phases []Phase
	unsubscribe := c.Subscribe(func(s State) { phases = append(phases, s.Phase()) })

	c.Copy("a")
	clock.Advance(100 * time.Millisecond)
	p.err = errors.New("x")
	c.Copy("b")
	c.Reset()

	want := []Phase{PhaseCopied, PhaseStale, PhaseFailed, PhaseIdle}
	if len(phases) != len(want) {
		t.Fatalf("Got phases %v, want %v", phases, want)
	}
	for i := range want {
		if phases[i] != want[i] {
			t.Errorf("phase[%d] = %v, want %v", i, phases[i], want[i])
		}
	}

	unsubscribe()
	unsubscribe()
	c.Reset()
	if len(phases) != len(want) {
		t.Errorf("Unsubscribed callback still fired: %v", phases)
	}
}

func TestSubscriberCanReadController(t *testing.T) {
	c, _ := newTestController(clipboard.NewMemory())
	var seen string
	c.Subscribe(func(s State) {
		// must not deadlock
		seen, _ = c.CopiedText()
	})
	c.Copy("reentrant")
	if seen != "reentrant" {
		t.Errorf("Subscriber saw %q", seen)
	}
}

func TestCloseCancelsTimerAndDropsLateResults(t *testing.T) {
	p := newScripted()
	p.block = make(chan struct{})
	var callbacks int
	c, clock := newTestController(p,
		WithOnSuccess(func(string) { callbacks++ }),
		WithOnError(func(error) { callbacks++ }),
	)
	notified := 0
	c.Subscribe(func(State) { notified++ })

	done := make(chan bool)
	go func() { done <- c.Copy("late") }()

	c.Close()
	c.Close()
	close(p.block)
	<-done

	assertState(t, c, false, "", false)
	if callbacks != 0 || notified != 0 {
		t.Errorf("No callbacks expected after Close, got %d callbacks, %d notifications", callbacks, notified)
	}
	if clock.Pending() != 0 {
		t.Errorf("Expected no pending timers after Close, got %d", clock.Pending())
	}
}

func TestCloseStopsPendingReset(t *testing.T) {
	c, clock := newTestController(clipboard.NewMemory(), WithTimeout(50*time.Millisecond))
	c.Copy("x")
	c.Close()
	clock.Advance(time.Second)
	// state is frozen as it was at close
	assertState(t, c, true, "x", true)
}

func TestStaleTimerCallbackIgnored(t *testing.T) {
	c, _ := newTestController(clipboard.NewMemory(), WithTimeout(10*time.Millisecond))
	c.Copy("first")

	c.mu.Lock()
	staleGen := c.timerGen
	c.mu.Unlock()

	c.Copy("second")
	// simulate the first timer firing after it lost the race with Stop
	c.expire(staleGen)
	assertState(t, c, true, "second", true)
}

func TestOverlappingCopiesLastCompletionWins(t *testing.T) {
	p := newScripted()
	p.block = make(chan struct{})
	c, _ := newTestController(p, WithTimeout(0))

	var wg sync.WaitGroup
	for _, text := range []string{"a", "b", "c"} {
		wg.Add(1)
		go func(text string) {
			defer wg.Done()
			c.Copy(text)
		}(text)
	}
	close(p.block)
	wg.Wait()

	got, _ := c.CopiedText()
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.writes) != 3 {
		t.Fatalf("Expected 3 writes, got %d", len(p.writes))
	}
	found := false
	for _, w := range p.writes {
		if w == got {
			found = true
		}
	}
	if !found || !c.Copied() {
		t.Errorf("Final text %q should be one of the written values %v", got, p.writes)
	}
}

func TestRealClockFires(t *testing.T) {
	c := New(clipboard.NewMemory(), WithTimeout(10*time.Millisecond))
	defer c.Close()

	fired := make(chan struct{}, 1)
	c.Subscribe(func(s State) {
		if !s.Copied && s.HasText {
			fired <- struct{}{}
		}
	})
	c.Copy("tick")

	select {
	case <-fired:
	case <-time.After(2 * time.Second):
		t.Fatal("auto-reset never fired with the real clock")
	}
}
