package ui

import (
	"fmt"

	"github.com/rivo/tview"

	"github.com/cnharrison/copy-tui/internal/log"
	"github.com/cnharrison/copy-tui/pkg/clipboard"
)

// Clipboard calls may block on an external tool, so every action runs
// through spawn and reports back through the controller subscription.

// copyHelloWorld copies the fixed demo string
func (app *Application) copyHelloWorld() {
	app.spawn(func() {
		app.copier.Copy(helloWorldText)
	})
}

// copyTextArea copies the text area contents, pretty-printed when enabled
func (app *Application) copyTextArea() {
	text := app.textToCopy()
	app.spawn(func() {
		app.copier.Copy(text)
	})
}

// resetState clears the controller state without touching the clipboard
func (app *Application) resetState() {
	app.spawn(func() {
		app.copier.Reset()
	})
	app.showStatusMessage("State reset")
}

// clearClipboard empties the clipboard and resets the state
func (app *Application) clearClipboard() {
	app.spawn(func() {
		if app.copier.Clear() {
			app.queue(func() {
				app.showStatusMessage("Clipboard cleared")
			})
		}
	})
}

// readClipboard shows the current clipboard contents in the paste pane
func (app *Application) readClipboard() {
	reader, ok := app.platform.(clipboard.Reader)
	if !ok {
		app.showStatusMessage("[yellow]This backend cannot read the clipboard[white]")
		return
	}

	app.spawn(func() {
		text, err := reader.ReadText()
		app.queue(func() {
			if err != nil {
				log.Warn("ui: clipboard read failed: %v", err)
				app.showStatusMessage(fmt.Sprintf("[red]Read failed:[white] %s", tview.Escape(err.Error())))
				return
			}
			if text == "" {
				app.pasteView.SetText("(clipboard is empty)")
			} else {
				app.pasteView.SetText(text)
			}
			app.pasteView.ScrollToBeginning()
			app.showStatusMessage(fmt.Sprintf("Read %d characters from clipboard", len([]rune(text))))
		})
	})
}

// togglePretty switches pretty-printing of copied text area contents
func (app *Application) togglePretty() {
	app.pretty = !app.pretty
	app.updatePreview()
	app.styleCopyButtons()
	if app.pretty {
		app.showStatusMessage("Pretty-print [green]on[white]")
	} else {
		app.showStatusMessage("Pretty-print [red]off[white]")
	}
}

// editTextArea opens the text area contents in $EDITOR
func (app *Application) editTextArea() {
	content := app.textArea.GetText()
	ext := getExtensionFromContentType(app.formatter.DetectContentType(content, ""))

	var (
		edited string
		err    error
	)
	app.app.Suspend(func() {
		edited, err = app.openInEditor(content, ext)
	})
	if err != nil {
		log.Warn("ui: editor failed: %v", err)
		app.showResultModal(fmt.Sprintf("[red]✗[white] Editor failed!\n\n[red]Error:[white] %s", tview.Escape(err.Error())))
		return
	}

	app.textArea.SetText(edited, true)
	app.showStatusMessage("Text updated from editor")
}
