package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// GameSetupUI is the start screen: pick display options and start a game.
type GameSetupUI struct {
	form      *tview.Form
	flex      *tview.Flex
	showMoves bool
	onStart   func(showMoves bool)
}

// NewGameSetup creates the setup form. onStart receives the marker preference.
func NewGameSetup(showMoves bool, onStart func(showMoves bool), onCancel func(), onColors func()) *GameSetupUI {
	setup := &GameSetupUI{
		showMoves: showMoves,
		onStart:   onStart,
	}

	form := tview.NewForm()

	form.AddCheckbox("Show legal moves", showMoves, func(checked bool) {
		setup.showMoves = checked
	})

	form.AddButton("Start Game", setup.start)

	form.AddButton("Board Color", func() {
		if onColors != nil {
			onColors()
		}
	})

	form.AddButton("Quit", func() {
		onCancel()
	})

	form.SetBorder(true)
	form.SetTitle(" New Game · Black moves first ")
	form.SetTitleAlign(tview.AlignCenter)
	form.SetBorderColor(MenuColors.Border)
	form.SetButtonBackgroundColor(MenuColors.ButtonBG)
	form.SetButtonTextColor(MenuColors.ButtonText)

	helpText := tview.NewTextView().
		SetText("Tab/Shift+Tab: navigate  |  Space: toggle  |  Enter: confirm").
		SetTextAlign(tview.AlignCenter)
	helpText.SetTextColor(tcell.ColorGray)

	flex := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(form, 0, 1, true).
		AddItem(helpText, 1, 0, false)

	setup.form = form
	setup.flex = flex
	return setup
}

// Form returns the flex container with form and help text.
func (s *GameSetupUI) Form() *tview.Flex {
	return s.flex
}

func (s *GameSetupUI) start() {
	s.onStart(s.showMoves)
}

// ShowMoves returns the current state of the markers checkbox.
func (s *GameSetupUI) ShowMoves() bool {
	return s.showMoves
}

// SetInputCapture sets the input capture function for the form.
func (s *GameSetupUI) SetInputCapture(capture func(event *tcell.EventKey) *tcell.EventKey) {
	s.form.SetInputCapture(capture)
}
