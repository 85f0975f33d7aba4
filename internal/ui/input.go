package ui

import (
	"github.com/gdamore/tcell/v2"
)

// handleInput handles all keyboard input for the application
func (app *Application) handleInput(event *tcell.EventKey) *tcell.EventKey {
	// Modals handle their own keys
	if app.modalOpen {
		return event
	}

	// Focus cycling works everywhere else
	switch event.Key() {
	case tcell.KeyTab:
		app.cycleFocus(1)
		return nil
	case tcell.KeyBacktab:
		app.cycleFocus(-1)
		return nil
	}

	// Let the text area receive everything else while typing
	if app.focusIndex == 0 {
		if event.Key() == tcell.KeyEscape {
			app.cycleFocus(1)
			return nil
		}
		if event.Key() == tcell.KeyCtrlY {
			app.copyTextArea()
			return nil
		}
		return event
	}

	switch event.Rune() {
	case '?':
		app.showHelpModal()
		return nil
	case 'q':
		app.app.Stop()
		return nil
	case 'i': // back to the text area
		app.setFocusIndex(0)
		return nil
	case '1':
		app.copyHelloWorld()
		return nil
	case '2', 'y':
		app.copyTextArea()
		return nil
	case 'r':
		app.resetState()
		return nil
	case 'x':
		app.clearClipboard()
		return nil
	case 'p':
		app.readClipboard()
		return nil
	case 'f':
		app.togglePretty()
		return nil
	case 'E':
		app.editTextArea()
		return nil
	}
	return event
}

// cycleFocus moves focus by delta through the focusable primitives
func (app *Application) cycleFocus(delta int) {
	n := len(app.focusables())
	app.setFocusIndex(((app.focusIndex+delta)%n + n) % n)
}

func (app *Application) setFocusIndex(index int) {
	app.focusIndex = index
	app.app.SetFocus(app.focusables()[index])
	app.updateFocusStyles()
}
