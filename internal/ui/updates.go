package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/cnharrison/copy-tui/pkg/copier"
)

// applyState stores a controller snapshot and refreshes everything derived from it
func (app *Application) applyState(s copier.State) {
	app.state = s
	app.stateView.SetText(renderState(s))
	app.styleCopyButtons()
}

// renderState formats a snapshot for the state panel
func renderState(s copier.State) string {
	var b strings.Builder

	copied := "[red]false[white]"
	if s.Copied {
		copied = "[green]true[white]"
	}
	b.WriteString(fmt.Sprintf(" copied:     %s\n", copied))

	if s.HasText {
		b.WriteString(fmt.Sprintf(" copiedText: [cyan]%s[white]\n", tview.Escape(quoteForStatus(s.CopiedText))))
	} else {
		b.WriteString(" copiedText: [dim]null[white]\n")
	}

	if s.Err != nil {
		b.WriteString(fmt.Sprintf(" error:      [red]%s[white]\n", tview.Escape(s.Err.Error())))
	} else {
		b.WriteString(" error:      [dim]null[white]\n")
	}

	supported := "[red]false[white]"
	if s.Supported {
		supported = "[green]true[white]"
	}
	b.WriteString(fmt.Sprintf(" supported:  %s\n", supported))
	b.WriteString(fmt.Sprintf(" phase:      [yellow]%s[white]", s.Phase()))

	return b.String()
}

// updatePreview shows the text area as it would be copied
func (app *Application) updatePreview() {
	raw := app.textArea.GetText()
	contentType := app.formatter.DetectContentType(raw, "")

	if app.pretty {
		app.previewView.SetText(app.formatter.FormatContent(raw, contentType))
	} else if raw == "" {
		app.previewView.SetText("[dim]No content[white]")
	} else {
		app.previewView.SetText(tview.Escape(raw))
	}
	app.previewView.SetTitle(fmt.Sprintf(" 🔍 Preview (%s) ", contentType))
	app.previewView.ScrollToBeginning()
}

// updateBottomBar updates the status/bottom bar
func (app *Application) updateBottomBar() {
	var statusText strings.Builder

	// Check if we have an active confirmation message
	if time.Now().Before(app.confirmationEnd) && app.confirmationMessage != "" {
		// Show animated confirmation
		pulse := []string{"●", "◐", "◑", "◒", "◓", "○"}
		pulseFrame := (app.animationFrame / pulseCycleFrames) % len(pulse)

		statusText.WriteString(fmt.Sprintf(" [yellow]%s [white]%s",
			pulse[pulseFrame], app.confirmationMessage))
	} else {
		// Show regular status
		app.confirmationMessage = ""

		statusText.WriteString(fmt.Sprintf("Backend: [cyan]%s[white]", app.backend))
		if !app.state.Supported {
			statusText.WriteString(" [red](unsupported)[white]")
		}

		if timeout := app.copier.Timeout(); timeout > 0 {
			statusText.WriteString(fmt.Sprintf(" | Reset after %v", timeout))
		} else {
			statusText.WriteString(" | [yellow]Auto-reset off[white]")
		}

		if app.pretty {
			statusText.WriteString(" | [green]Pretty[white]")
		}
	}

	app.bottomBar.SetText(" " + statusText.String() + " ")
}

// updateFocusStyles updates the focus styling with blinking arrows
func (app *Application) updateFocusStyles() {
	if app.focusIndex == 0 {
		app.textArea.SetBorderColor(tcell.ColorWhite)
		app.textArea.SetTitle(fmt.Sprintf(" [cyan]%s[white] ✏️  Text ", app.getBlinkingArrows()))
	} else {
		app.textArea.SetBorderColor(tcell.ColorDarkCyan)
		app.textArea.SetTitle(" ✏️  Text ")
	}
	app.updateButtonLabels()
}
