// Package ui specifies custom controls for tview to play Othello in the terminal.
package ui

import (
	"fmt"
	"log/slog"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"termothello/config"
	"termothello/engine"
	"termothello/types"
)

// Indexes into BoardUI.styles.
const (
	styleBoard = iota
	styleBoardAlt
	styleBlack
	styleWhite
	styleMarker
	styleLabel
	styleCursorFG
	styleCursorBG
	styleLastPlayed
)

// Board drawing offsets: one label row on top, two label columns on the left.
const (
	boardLeft = 3
	boardTop  = 1
)

type BoardUI struct {
	Box       *tview.Box
	hint      *tview.TextView
	cfg       *config.Config
	eng       engine.GameEngine
	log       *slog.Logger
	styles    []tcell.Color
	infoPanel *GameInfoPanel
	selRow    int
	selCol    int
	lastMove  types.Coord
	hasLast   bool
	showMoves bool
	notice    string
	focusMode bool
}

// ToggleFocusMode toggles focus mode and returns the new state.
func (g *BoardUI) ToggleFocusMode() bool {
	g.focusMode = !g.focusMode
	g.refreshHint()
	return g.focusMode
}

// SetFocusMode sets focus mode to the given state.
func (g *BoardUI) SetFocusMode(enabled bool) {
	g.focusMode = enabled
	g.refreshHint()
}

// ToggleMoveMarkers switches legal-move markers on or off.
func (g *BoardUI) ToggleMoveMarkers() bool {
	g.showMoves = !g.showMoves
	return g.showMoves
}

// SetMoveMarkers sets whether legal moves are marked.
func (g *BoardUI) SetMoveMarkers(enabled bool) {
	g.showMoves = enabled
}

// SetLogger replaces the logger used for move records.
func (g *BoardUI) SetLogger(logger *slog.Logger) {
	g.log = logger
}

func (g *BoardUI) SelectedTile() *types.Coord {
	if g.selRow == -1 && g.selCol == -1 {
		return nil
	}
	return &types.Coord{Row: g.selRow, Col: g.selCol}
}

// MoveSelection moves the cursor by dRow rows and dCol columns. The first call
// places the cursor on the last move, or the first legal move.
func (g *BoardUI) MoveSelection(dRow, dCol int) {
	if g.eng == nil || g.eng.Status() == types.Over {
		g.ResetSelection()
		return
	}
	if g.SelectedTile() == nil {
		switch legal := g.eng.LegalMoves(); {
		case g.hasLast:
			g.selRow, g.selCol = g.lastMove.Row, g.lastMove.Col
		case !legal.Empty():
			first := legal.Coords()[0]
			g.selRow, g.selCol = first.Row, first.Col
		default:
			g.selRow, g.selCol = types.BoardSize/2, types.BoardSize/2
		}
		return
	}
	next := types.Coord{Row: g.selRow + dRow, Col: g.selCol + dCol}
	if !next.InBounds() {
		return
	}
	g.selRow, g.selCol = next.Row, next.Col
}

func (g *BoardUI) ResetSelection() {
	g.selRow = -1
	g.selCol = -1
}

func NewBoard(c *config.Config, hint *tview.TextView, logger *slog.Logger) *BoardUI {
	board := &BoardUI{
		Box:       tview.NewBox(),
		hint:      hint,
		log:       logger,
		selRow:    -1,
		selCol:    -1,
		showMoves: c.ShowMoves,
	}
	board.SetConfig(c)
	board.Box.SetDrawFunc(board.draw)
	return board
}

func (g *BoardUI) draw(screen tcell.Screen, x int, y int, width int, height int) (int, int, int, int) {
	if g.eng == nil {
		return x, y, 1, 1
	}
	var legal engine.MoveSet
	if g.showMoves && g.eng.Status() == types.InProgress {
		legal = g.eng.LegalMoves()
	}
	theme := g.cfg.Theme

	for r := 0; r < types.BoardSize; r++ {
		for c := 0; c < types.BoardSize; c++ {
			pos := types.Coord{Row: r, Col: c}
			bg := g.styles[styleBoard]
			if (r+c)%2 == 1 {
				bg = g.styles[styleBoardAlt]
			}
			fg := g.styles[styleMarker]
			drawRune := theme.Symbols.EmptyCell

			switch g.eng.Cell(pos) {
			case types.Black:
				drawRune, fg = theme.Symbols.BlackDisc, g.styles[styleBlack]
			case types.White:
				drawRune, fg = theme.Symbols.WhiteDisc, g.styles[styleWhite]
			default:
				if legal.Contains(pos) {
					drawRune = theme.Symbols.Marker
				}
			}

			if r == g.selRow && c == g.selCol {
				if theme.DrawCursorBackground {
					bg = g.styles[styleCursorBG]
				} else if g.eng.Cell(pos) == types.Empty {
					drawRune, fg = theme.Symbols.Marker, g.styles[styleCursorFG]
				}
			} else if g.hasLast && pos == g.lastMove && theme.DrawLastPlayedBackground {
				bg = g.styles[styleLastPlayed]
			}

			drawCell(screen, tcell.StyleDefault.Background(bg).Foreground(fg), drawRune, r, c, x+boardLeft, y+boardTop)
		}
	}
	drawCoordinates(screen, x, y, g)
	return x, y, types.BoardSize*2 + boardLeft, types.BoardSize + boardTop
}

// ConnectEngine starts showing e on the board.
func (g *BoardUI) ConnectEngine(e engine.GameEngine) {
	g.eng = e
	g.hasLast = false
	g.notice = ""
	g.ResetSelection()
	g.refreshHint()
}

// PlayMove plays pos for the side to move and advances the turn.
func (g *BoardUI) PlayMove(pos types.Coord) {
	if g.eng == nil || g.eng.Status() == types.Over {
		return
	}
	res, err := g.eng.AttemptMove(pos)
	if err != nil {
		g.log.Debug("rejected move", "coord", pos.String(), "error", err)
		g.notice = "Invalid move. Try again."
		g.refreshHint()
		return
	}
	g.log.Info("move", "color", res.Color.String(), "coord", res.Coord.String(), "flipped", res.Flipped)
	g.lastMove, g.hasLast = pos, true
	g.notice = ""

	turn, err := g.eng.AdvanceTurn()
	for _, side := range turn.Passed {
		g.log.Info("forced pass", "color", side.String())
		g.notice += fmt.Sprintf("%s player has no valid move.\n", side)
	}
	if err == nil && !turn.Continues {
		g.notice += "No more moves possible.\n"
		g.ResetSelection()
		if verdict, err := g.eng.Result(); err == nil {
			black, white := g.eng.Score()
			g.log.Info("game over", "black", black, "white", white, "verdict", verdict.String())
		}
	}
	g.refreshHint()
}

func (g *BoardUI) SetConfig(c *config.Config) {
	colors := c.Theme.Colors
	g.styles = []tcell.Color{
		tcell.PaletteColor(colors.BoardColor),        // styleBoard
		tcell.PaletteColor(colors.BoardColorAlt),     // styleBoardAlt
		tcell.PaletteColor(colors.BlackColor),        // styleBlack
		tcell.PaletteColor(colors.WhiteColor),        // styleWhite
		tcell.PaletteColor(colors.MarkerColor),       // styleMarker
		tcell.PaletteColor(colors.LabelColor),        // styleLabel
		tcell.PaletteColor(colors.CursorColorFG),     // styleCursorFG
		tcell.PaletteColor(colors.CursorColorBG),     // styleCursorBG
		tcell.PaletteColor(colors.LastPlayedColorBG), // styleLastPlayed
	}
	g.cfg = c
}

func (g *BoardUI) refreshHint() {
	if g.infoPanel != nil {
		g.infoPanel.SetEngine(g.eng)
	}

	if g.focusMode {
		g.hint.SetText("  f to toggle")
		return
	}
	if g.eng == nil {
		g.hint.SetText("")
		return
	}

	var statusLine, turnLine, controlsLine string
	if g.notice != "" {
		statusLine = "  " + g.notice
	}

	if g.eng.Status() == types.Over {
		result := "Game isn't over."
		if verdict, err := g.eng.Result(); err == nil {
			result = verdict.String()
		}
		turnLine = fmt.Sprintf("  Result: %s\n", result)
		controlsLine = "  q · return to menu"
	} else {
		turnLine = fmt.Sprintf("  %s to move\n", g.eng.Turn())
		controlsLine = "  hjkl/↑↓←→ move   ⏎ play   m markers   f focus   q quit"
	}

	g.hint.SetText(fmt.Sprintf("%s%s%s", statusLine, turnLine, controlsLine))
}

// IsFinished returns true if the game is over.
func (g *BoardUI) IsFinished() bool {
	return g.eng != nil && g.eng.Status() == types.Over
}

// drawCell draws one board cell, two characters wide
func drawCell(s tcell.Screen, style tcell.Style, r rune, row, col, l, t int) {
	s.SetContent(l+col*2, t+row, r, nil, style)
	s.SetContent(l+col*2+1, t+row, ' ', nil, style)
}

// drawCoordinates labels columns along the top and rows down the left, both a-h.
func drawCoordinates(s tcell.Screen, x, y int, ui *BoardUI) {
	style := tcell.StyleDefault.Foreground(ui.styles[styleLabel])
	highlight := style.Background(ui.styles[styleCursorBG])

	for i := 0; i < types.BoardSize; i++ {
		label := rune(types.Label(i))

		colStyle := style
		if i == ui.selCol {
			colStyle = highlight
		}
		s.SetContent(x+boardLeft+i*2, y, label, nil, colStyle)
		s.SetContent(x+boardLeft+i*2+1, y, ' ', nil, colStyle)

		rowStyle := style
		if i == ui.selRow {
			rowStyle = highlight
		}
		s.SetContent(x+1, y+boardTop+i, label, nil, rowStyle)
	}
	s.Show()
}
