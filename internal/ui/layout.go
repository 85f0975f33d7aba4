package ui

import (
	"github.com/rivo/tview"
)

// createLayout builds the main application layout
func (app *Application) createLayout() {
	buttonRow := tview.NewFlex().SetDirection(tview.FlexColumn).
		AddItem(app.helloButton, 0, 1, false).
		AddItem(nil, 1, 0, false).
		AddItem(app.textButton, 0, 1, false).
		AddItem(nil, 1, 0, false).
		AddItem(app.resetButton, 0, 1, false).
		AddItem(nil, 1, 0, false).
		AddItem(app.clearButton, 0, 1, false)

	// Text on the left, formatted preview on the right
	editorRow := tview.NewFlex().SetDirection(tview.FlexColumn).
		AddItem(app.textArea, 0, 1, true).
		AddItem(app.previewView, 0, 1, false)

	// Main layout
	app.layout = tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(app.topBar, 1, 0, false).
		AddItem(app.stateView, stateViewHeight, 0, false).
		AddItem(editorRow, 0, textAreaHeightRatio, true).
		AddItem(buttonRow, buttonRowHeight, 0, false).
		AddItem(app.pasteView, 0, 1, false).
		AddItem(app.bottomBar, 1, 0, false)
}
