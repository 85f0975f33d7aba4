package ui

import (
	"time"

	"github.com/cnharrison/copy-tui/pkg/copier"
)

// setupEventHandling configures all event handlers
func (app *Application) setupEventHandling() {
	// Re-render whenever the controller state changes
	app.unsubscribe = app.copier.Subscribe(func(s copier.State) {
		app.queue(func() {
			app.applyState(s)
		})
	})

	app.textArea.SetChangedFunc(func() {
		app.updatePreview()
		app.styleCopyButtons()
	})

	app.textArea.SetFocusFunc(func() {
		app.focusIndex = 0
		app.updateFocusStyles()
	})

	// Set main input capture
	app.app.SetInputCapture(app.handleInput)
}

// startAnimationLoop pulses the focus arrow and expires status messages
func (app *Application) startAnimationLoop() {
	go func() {
		ticker := time.NewTicker(animationIntervalMs * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-app.stopAnimation:
				return
			case <-ticker.C:
				app.queue(func() {
					app.animationFrame++
					app.updateFocusStyles()
					app.updateBottomBar()
				})
			}
		}
	}()
}
