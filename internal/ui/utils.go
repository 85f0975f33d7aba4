package ui

import (
	"fmt"
	"strings"
)

// textToCopy returns what the text area button copies
func (app *Application) textToCopy() string {
	text := app.textArea.GetText()
	if app.pretty {
		text, _ = app.formatter.AutoPretty(text)
	}
	return text
}

// getBlinkingArrows returns blinking arrow characters
func (app *Application) getBlinkingArrows() string {
	if app.animationFrame%animationCycleFrames < pulseCycleFrames {
		return "►"
	}
	return " "
}

// quoteForStatus quotes text for the status bar, flattened and truncated
func quoteForStatus(text string) string {
	flat := strings.Join(strings.Fields(text), " ")
	runes := []rune(flat)
	if len(runes) > maxStatusTextLength {
		flat = string(runes[:maxStatusTextLength-1]) + "…"
	}
	return fmt.Sprintf("%q", flat)
}
