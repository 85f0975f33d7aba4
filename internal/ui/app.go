package ui

import (
	"fmt"
	"time"

	"github.com/rivo/tview"

	"github.com/cnharrison/copy-tui/internal/config"
	"github.com/cnharrison/copy-tui/internal/format"
	"github.com/cnharrison/copy-tui/internal/log"
	"github.com/cnharrison/copy-tui/pkg/clipboard"
	"github.com/cnharrison/copy-tui/pkg/copier"
)

const (
	// Animation and timing constants
	animationIntervalMs  = 500
	animationCycleFrames = 4
	pulseCycleFrames     = 2

	// Layout constants
	stateViewHeight     = 7
	textAreaHeightRatio = 2
	buttonRowHeight     = 1
	maxStatusTextLength = 40

	helloWorldText      = "Hello World"
	initialTextAreaText = "try writing here"
)

// Application is the interactive clipboard demo
type Application struct {
	app       *tview.Application
	copier    *copier.Controller
	platform  clipboard.Platform
	backend   string
	formatter *format.ContentFormatter

	// UI state
	state          copier.State
	pretty         bool
	animationFrame int
	focusIndex     int
	modalOpen      bool

	// Confirmation/status messages
	confirmationMessage string
	confirmationEnd     time.Time
	statusDuration      time.Duration

	// queue runs f on the UI goroutine, spawn runs clipboard calls off it.
	// Tests swap both for direct calls.
	queue func(f func())
	spawn func(f func())

	unsubscribe   func()
	stopAnimation chan struct{}

	// UI components
	topBar      *tview.TextView
	stateView   *tview.TextView
	textArea    *tview.TextArea
	previewView *tview.TextView
	pasteView   *tview.TextView
	helloButton *tview.Button
	textButton  *tview.Button
	resetButton *tview.Button
	clearButton *tview.Button
	bottomBar   *tview.TextView
	layout      *tview.Flex
}

// NewApplication creates the demo around platform using cfg
func NewApplication(platform clipboard.Platform, cfg *config.Config) *Application {
	app := &Application{
		app:            tview.NewApplication(),
		platform:       platform,
		backend:        cfg.Backend,
		formatter:      format.NewContentFormatter(),
		pretty:         cfg.Pretty,
		statusDuration: cfg.StatusDuration(),
		stopAnimation:  make(chan struct{}),
	}
	app.queue = func(f func()) { app.app.QueueUpdateDraw(f) }
	app.spawn = func(f func()) { go f() }

	app.copier = copier.New(platform,
		copier.WithTimeout(cfg.Timeout()),
		copier.WithOnSuccess(app.onCopySuccess),
		copier.WithOnError(app.onCopyError),
	)
	app.state = app.copier.State()

	return app
}

// Controller exposes the clipboard controller driving the UI
func (app *Application) Controller() *copier.Controller {
	return app.copier
}

// Run starts the TUI application and blocks until it exits
func (app *Application) Run() error {
	app.setupUI()
	app.setupEventHandling()
	app.startAnimationLoop()
	defer app.shutdown()

	// Initialize display
	app.applyState(app.copier.State())
	app.updatePreview()
	app.updateFocusStyles()
	app.updateBottomBar()

	log.Info("ui: starting with timeout %v, supported=%v", app.copier.Timeout(), app.copier.IsSupported())
	return app.app.SetRoot(app.layout, true).SetFocus(app.textArea).Run()
}

// shutdown tears down the controller like an unmount
func (app *Application) shutdown() {
	close(app.stopAnimation)
	if app.unsubscribe != nil {
		app.unsubscribe()
	}
	app.copier.Close()
}

// showStatusMessage shows a temporary status message
func (app *Application) showStatusMessage(msg string) {
	app.confirmationMessage = msg
	app.confirmationEnd = time.Now().Add(app.statusDuration)
	app.updateBottomBar()
}

// onCopySuccess runs on the goroutine that performed the copy
func (app *Application) onCopySuccess(text string) {
	app.queue(func() {
		app.showStatusMessage(fmt.Sprintf("Copied %s to clipboard!", quoteForStatus(text)))
	})
}

func (app *Application) onCopyError(err error) {
	log.Warn("ui: clipboard error: %v", err)
	app.queue(func() {
		app.showStatusMessage(fmt.Sprintf("[red]Clipboard error:[white] %s", tview.Escape(err.Error())))
	})
}
