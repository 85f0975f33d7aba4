package ui

import (
	"os"
	"os/exec"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/cnharrison/copy-tui/internal/format"
)

// showHelpModal displays the help modal
func (app *Application) showHelpModal() {
	helpText := `[yellow]📋 COPY TUI - Command Help[white]

[yellow]Navigation:[white]
  [cyan]Tab/Shift+Tab[white]  Cycle focus between text area and buttons
  [cyan]Esc[white]            Leave the text area
  [cyan]i[white]              Back to the text area
  [cyan]Enter[white]          Press the focused button

[yellow]Clipboard:[white]
  [cyan]1[white]              Copy "Hello World"
  [cyan]2/y[white]            Copy the text area (Ctrl+Y while typing)
  [cyan]r[white]              Reset state (clipboard untouched)
  [cyan]x[white]              Clear state and clipboard
  [cyan]p[white]              Read the clipboard back

[yellow]Text:[white]
  [cyan]f[white]              Toggle pretty-printing of copied text
  [cyan]E[white]              Edit the text area in $EDITOR
  [cyan]q[white]              Quit application

[yellow]State:[white]
  Copied turns back to false after the configured timeout.
  A timeout of 0 keeps it until the next reset.`

	// Create help text view
	helpView := tview.NewTextView()
	helpView.SetDynamicColors(true)
	helpView.SetText(helpText)
	helpView.SetTextAlign(tview.AlignLeft)
	helpView.SetBorder(true)
	helpView.SetTitle(" 🆘 Help ")
	helpView.SetTitleAlign(tview.AlignCenter)
	helpView.SetBorderColor(tcell.ColorYellow)

	// Create a flex container for centering
	helpContainer := tview.NewFlex().SetDirection(tview.FlexRow)
	helpContainer.AddItem(nil, 0, 1, false) // Top spacer
	helpContainer.AddItem(
		tview.NewFlex().
			AddItem(nil, 0, 1, false).     // Left spacer
			AddItem(helpView, 0, 2, true). // Help content (wider)
			AddItem(nil, 0, 1, false),     // Right spacer
		0, 2, true)
	helpContainer.AddItem(nil, 0, 1, false) // Bottom spacer

	helpContainer.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Rune() == 'q' || event.Key() == tcell.KeyEscape || event.Rune() == '?' {
			app.closeModal()
			return nil
		}
		return event
	})

	app.modalOpen = true
	app.app.SetFocus(helpContainer)
	app.app.SetRoot(helpContainer, true)
}

// showResultModal displays the result of an operation
func (app *Application) showResultModal(result string) {
	resultView := tview.NewTextView()
	resultView.SetDynamicColors(true)
	resultView.SetText(result + "\n\n[dim]Press any key to close[white]")
	resultView.SetTextAlign(tview.AlignLeft)
	resultView.SetBorder(true)
	resultView.SetTitle(" 📄 Result ")
	resultView.SetTitleAlign(tview.AlignCenter)
	resultView.SetBorderColor(tcell.ColorGreen)

	// Create a centered container
	resultContainer := tview.NewFlex().SetDirection(tview.FlexRow)
	resultContainer.AddItem(nil, 0, 1, false) // Top spacer
	resultContainer.AddItem(
		tview.NewFlex().
			AddItem(nil, 0, 1, false).       // Left spacer
			AddItem(resultView, 0, 3, true). // Result content (larger)
			AddItem(nil, 0, 1, false),       // Right spacer
		0, 2, true)
	resultContainer.AddItem(nil, 0, 1, false) // Bottom spacer

	resultContainer.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		app.closeModal()
		return nil
	})

	app.modalOpen = true
	app.app.SetFocus(resultContainer)
	app.app.SetRoot(resultContainer, true)
}

// closeModal returns to the main layout and restores focus
func (app *Application) closeModal() {
	app.modalOpen = false
	app.app.SetRoot(app.layout, true)
	app.setFocusIndex(app.focusIndex)
}

// openInEditor opens content in the system editor
func (app *Application) openInEditor(content, extension string) (string, error) {
	editor := os.Getenv("EDITOR")
	if editor == "" {
		editor = "vi" // fallback
	}

	// Create temporary file
	tmpFile, err := os.CreateTemp("", "copy-tui-edit-*."+extension)
	if err != nil {
		return "", err
	}
	defer os.Remove(tmpFile.Name())

	if _, err := tmpFile.WriteString(content); err != nil {
		tmpFile.Close()
		return "", err
	}
	tmpFile.Close()

	cmd := exec.Command(editor, tmpFile.Name())
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return "", err
	}

	// Read back the edited content
	editedContent, err := os.ReadFile(tmpFile.Name())
	if err != nil {
		return "", err
	}

	return string(editedContent), nil
}

// getExtensionFromContentType returns a file extension for a detected content type
func getExtensionFromContentType(contentType string) string {
	switch contentType {
	case format.TypeJSON:
		return "json"
	case format.TypeHTML:
		return "html"
	case format.TypeXML:
		return "xml"
	case format.TypeCSS:
		return "css"
	case format.TypeJavaScript:
		return "js"
	default:
		return "txt"
	}
}
