package ui

import (
	"fmt"

	"github.com/rivo/tview"

	"termothello/engine"
	"termothello/types"
)

// maxVisibleMoves is how many history entries fit in the panel.
const maxVisibleMoves = 12

// GameInfoPanel displays the score and move history alongside the board.
type GameInfoPanel struct {
	box *tview.TextView
	eng engine.GameEngine
}

// NewGameInfoPanel creates a new game info panel.
func NewGameInfoPanel() *GameInfoPanel {
	panel := &GameInfoPanel{
		box: tview.NewTextView(),
	}

	panel.box.SetDynamicColors(true)
	panel.box.SetBorder(false)
	panel.box.SetTextAlign(tview.AlignLeft)

	return panel
}

// Box returns the underlying tview component.
func (p *GameInfoPanel) Box() *tview.TextView {
	return p.box
}

// SetEngine updates the panel from the current game.
func (p *GameInfoPanel) SetEngine(eng engine.GameEngine) {
	p.eng = eng
	p.refresh()
}

// refresh updates the panel text.
func (p *GameInfoPanel) refresh() {
	if p.eng == nil {
		p.box.SetText("")
		return
	}

	var text string

	text += "[white::b]Game Info[-:-:-]\n"
	text += "[dimgray]──────────────────────[-:-:-]\n"

	black, white := p.eng.Score()
	text += fmt.Sprintf("[white]Black:[-:-:-] %d\n", black)
	text += fmt.Sprintf("[white]White:[-:-:-] %d\n", white)

	history := p.eng.History()
	text += fmt.Sprintf("[white]Move:[-:-:-] %d\n", len(history))

	if p.eng.Status() == types.InProgress {
		text += fmt.Sprintf("[white]To move:[-:-:-] %s\n", p.eng.Turn())
	} else {
		text += "[yellow]Game over[-]\n"
	}

	if len(history) > 0 {
		text += "\n[white::b]Moves[-:-:-]\n"
		text += "[dimgray]──────────────────────[-:-:-]\n"

		start := 0
		if len(history) > maxVisibleMoves {
			start = len(history) - maxVisibleMoves
		}

		for i := start; i < len(history); i++ {
			m := history[i]

			colorStr := "[white]B[-]"
			if m.Color == types.White {
				colorStr = "[dimgray]W[-]"
			}

			coord := "pass"
			if !m.Pass {
				coord = fmt.Sprintf("%s +%d", m.Coord, m.Flipped)
			}

			marker := " "
			if i == len(history)-1 {
				marker = "[white]>[-]"
			}

			text += fmt.Sprintf("%s[dimgray]%3d.[-] %s %s\n", marker, m.Number, colorStr, coord)
		}

		if start > 0 {
			text += fmt.Sprintf("[dimgray]  ··· %d earlier[-]\n", start)
		}
	}

	p.box.SetText(text)
}

// CreateGameLayout creates the main game layout with board and side panel.
func CreateGameLayout(board *BoardUI, hint *tview.TextView) *tview.Flex {
	mainFlex := tview.NewFlex()
	RebuildNormalLayout(mainFlex, board, hint)
	return mainFlex
}

// CreateCenteredForm creates a centered form container for the setup screen.
func CreateCenteredForm(form tview.Primitive, maxWidth int) *tview.Flex {
	centered := tview.NewFlex().SetDirection(tview.FlexColumn)
	centered.AddItem(nil, 0, 1, false)        // Left spacer
	centered.AddItem(form, maxWidth, 0, true) // Form with max width
	centered.AddItem(nil, 0, 1, false)        // Right spacer

	return centered
}

// RebuildNormalLayout restores the normal game layout with board, info panel, and hint.
func RebuildNormalLayout(gameFrame *tview.Flex, board *BoardUI, hint *tview.TextView) {
	gameFrame.Clear()

	infoPanel := NewGameInfoPanel()
	board.infoPanel = infoPanel
	infoPanel.SetEngine(board.eng)

	// board | info panel
	boardRow := tview.NewFlex().SetDirection(tview.FlexColumn)
	boardRow.AddItem(board.Box, 0, 1, true)
	boardRow.AddItem(infoPanel.Box(), 26, 0, false)

	// board area on top, status bar at bottom
	gameFrame.SetDirection(tview.FlexRow)
	gameFrame.AddItem(boardRow, 0, 1, true)
	gameFrame.AddItem(hint, 4, 0, false)
}

// BuildFocusLayout builds the focus mode layout with just the centered board.
func BuildFocusLayout(gameFrame *tview.Flex, board *BoardUI) {
	gameFrame.Clear()

	boardWidth := types.BoardSize*2 + boardLeft
	boardHeight := types.BoardSize + boardTop

	gameFrame.SetDirection(tview.FlexRow)
	gameFrame.AddItem(nil, 0, 1, false) // top spacer

	centerRow := tview.NewFlex().SetDirection(tview.FlexColumn)
	centerRow.AddItem(nil, 0, 1, false)
	centerRow.AddItem(board.Box, boardWidth, 0, true)
	centerRow.AddItem(nil, 0, 1, false)

	gameFrame.AddItem(centerRow, boardHeight, 0, true)
	gameFrame.AddItem(nil, 0, 1, false) // bottom spacer
}
