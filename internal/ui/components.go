package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// setupUI creates and configures all UI components
func (app *Application) setupUI() {
	// Configure tview for transparent background
	tview.Styles.PrimitiveBackgroundColor = tcell.ColorDefault
	tview.Styles.ContrastBackgroundColor = tcell.ColorDefault

	app.createComponents()
	app.styleComponents()
	app.createLayout()
}

// createComponents initializes all UI components
func (app *Application) createComponents() {
	// Top menu bar
	app.topBar = tview.NewTextView().
		SetText("[::b][yellow] 📋 COPY TUI - Press ? for Help [white]").
		SetDynamicColors(true).
		SetTextAlign(tview.AlignCenter)

	// Controller state
	app.stateView = tview.NewTextView().SetDynamicColors(true)

	// Editable text to copy
	app.textArea = tview.NewTextArea().SetPlaceholder(initialTextAreaText)
	app.textArea.SetText(initialTextAreaText, true)

	// Formatted preview of what will be copied
	app.previewView = tview.NewTextView().SetDynamicColors(true).SetWrap(true).SetWordWrap(true)

	// Clipboard read-back
	app.pasteView = tview.NewTextView().SetDynamicColors(false).SetWrap(true)
	app.pasteView.SetText("Press p to read the clipboard back here")

	// Actions
	app.helloButton = tview.NewButton(`Copy "Hello World"`).SetSelectedFunc(app.copyHelloWorld)
	app.textButton = tview.NewButton("Copy textarea").SetSelectedFunc(app.copyTextArea)
	app.resetButton = tview.NewButton("Reset State").SetSelectedFunc(app.resetState)
	app.clearButton = tview.NewButton("Clear State and Clipboard").SetSelectedFunc(app.clearClipboard)

	// Status/bottom bar
	app.bottomBar = tview.NewTextView().SetDynamicColors(true).SetTextAlign(tview.AlignLeft)
}

// styleComponents applies styling to all components
func (app *Application) styleComponents() {
	app.stateView.SetBorder(true).SetTitle(" 🧠 State ").SetTitleAlign(tview.AlignCenter).SetBorderColor(tcell.ColorTeal)
	app.textArea.SetBorder(true).SetTitle(" ✏️  Text ").SetTitleAlign(tview.AlignCenter).SetBorderColor(tcell.ColorDarkCyan)
	app.previewView.SetBorder(true).SetTitle(" 🔍 Preview ").SetTitleAlign(tview.AlignCenter).SetBorderColor(tcell.ColorDarkBlue)
	app.pasteView.SetBorder(true).SetTitle(" 📥 Clipboard ").SetTitleAlign(tview.AlignCenter).SetBorderColor(tcell.ColorDarkMagenta)

	for _, button := range []*tview.Button{app.resetButton, app.clearButton} {
		button.SetStyle(tcell.StyleDefault.Background(tcell.ColorRed).Foreground(tcell.ColorWhite))
		button.SetActivatedStyle(tcell.StyleDefault.Background(tcell.ColorWhite).Foreground(tcell.ColorRed))
	}
	app.styleCopyButtons()
}

// styleCopyButtons colours copy buttons green while their text is the one just copied
func (app *Application) styleCopyButtons() {
	buttons := []struct {
		button *tview.Button
		text   string
	}{
		{app.helloButton, helloWorldText},
		{app.textButton, app.textToCopy()},
	}

	for _, b := range buttons {
		color := tcell.ColorBlue
		if app.state.Copied && app.state.HasText && app.state.CopiedText == b.text {
			color = tcell.ColorGreen
		}
		b.button.SetStyle(tcell.StyleDefault.Background(color).Foreground(tcell.ColorWhite))
		b.button.SetActivatedStyle(tcell.StyleDefault.Background(tcell.ColorWhite).Foreground(color))
	}
	app.updateButtonLabels()
}

// updateButtonLabels sets button labels, marking the focused one with an arrow
func (app *Application) updateButtonLabels() {
	hello := `Copy "Hello World"`
	if app.state.Copied {
		hello = "Copied! ✓"
	}

	labels := []struct {
		button *tview.Button
		label  string
	}{
		{app.helloButton, hello},
		{app.textButton, "Copy textarea"},
		{app.resetButton, "Reset State"},
		{app.clearButton, "Clear State and Clipboard"},
	}
	for i, l := range labels {
		if app.focusIndex == i+1 {
			l.button.SetLabel(app.getBlinkingArrows() + " " + l.label)
		} else {
			l.button.SetLabel(l.label)
		}
	}
}

// focusables lists the primitives Tab cycles through, in order
func (app *Application) focusables() []tview.Primitive {
	return []tview.Primitive{app.textArea, app.helloButton, app.textButton, app.resetButton, app.clearButton}
}
