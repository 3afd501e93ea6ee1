package ui

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"termothello/config"
	"termothello/engine"
	"termothello/logging"
	"termothello/types"
)

func newTestBoard(t *testing.T, eng engine.GameEngine, showMoves bool) (*BoardUI, *tview.TextView) {
	t.Helper()
	cfg := config.DefaultConfig
	cfg.ShowMoves = showMoves
	hint := tview.NewTextView()
	board := NewBoard(&cfg, hint, logging.Discard())
	board.ConnectEngine(eng)
	return board, hint
}

func drawToScreen(t *testing.T, board *BoardUI) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	t.Cleanup(screen.Fini)
	screen.SetSize(40, 20)
	board.Box.SetRect(0, 0, 40, 20)
	board.Box.Draw(screen)
	return screen
}

// cellAt returns the rune and foreground drawn for a board cell.
func cellAt(screen tcell.SimulationScreen, pos types.Coord) (rune, tcell.Color) {
	r, _, style, _ := screen.GetContent(boardLeft+pos.Col*2, boardTop+pos.Row)
	fg, _, _ := style.Decompose()
	return r, fg
}

func mustCoord(t *testing.T, s string) types.Coord {
	t.Helper()
	c, err := types.ParseCoord(s)
	require.NoError(t, err)
	return c
}

func TestDrawLabels(t *testing.T) {
	board, _ := newTestBoard(t, engine.NewGame(), false)
	screen := drawToScreen(t, board)

	for i := 0; i < types.BoardSize; i++ {
		want := rune(types.Label(i))
		col, _, _, _ := screen.GetContent(boardLeft+i*2, 0)
		row, _, _, _ := screen.GetContent(1, boardTop+i)
		assert.Equal(t, want, col, "column label %d", i)
		assert.Equal(t, want, row, "row label %d", i)
	}
}

func TestDrawOpeningDiscs(t *testing.T) {
	board, _ := newTestBoard(t, engine.NewGame(), false)
	screen := drawToScreen(t, board)
	theme := config.DefaultTheme

	tests := []struct {
		coord string
		disc  rune
		fg    int
	}{
		{"dd", theme.Symbols.WhiteDisc, theme.Colors.WhiteColor},
		{"ee", theme.Symbols.WhiteDisc, theme.Colors.WhiteColor},
		{"de", theme.Symbols.BlackDisc, theme.Colors.BlackColor},
		{"ed", theme.Symbols.BlackDisc, theme.Colors.BlackColor},
	}
	for _, tt := range tests {
		r, fg := cellAt(screen, mustCoord(t, tt.coord))
		assert.Equal(t, tt.disc, r, tt.coord)
		assert.Equal(t, tcell.PaletteColor(tt.fg), fg, tt.coord)
	}
}

func TestDrawMoveMarkers(t *testing.T) {
	marker := config.DefaultTheme.Symbols.Marker
	empty := config.DefaultTheme.Symbols.EmptyCell

	board, _ := newTestBoard(t, engine.NewGame(), true)
	screen := drawToScreen(t, board)
	for _, s := range []string{"cd", "dc", "ef", "fe"} {
		r, _ := cellAt(screen, mustCoord(t, s))
		assert.Equal(t, marker, r, s)
	}
	r, _ := cellAt(screen, mustCoord(t, "aa"))
	assert.Equal(t, empty, r)

	board.ToggleMoveMarkers()
	screen = drawToScreen(t, board)
	r, _ = cellAt(screen, mustCoord(t, "cd"))
	assert.Equal(t, empty, r, "markers off")
}

func TestPlayMove(t *testing.T) {
	game := engine.NewGame()
	board, hint := newTestBoard(t, game, false)

	board.PlayMove(mustCoord(t, "cd"))

	assert.Equal(t, types.Black, game.Cell(mustCoord(t, "cd")))
	assert.Equal(t, types.White, game.Turn())
	assert.Contains(t, hint.GetText(true), "White to move")
}

func TestPlayIllegalMove(t *testing.T) {
	game := engine.NewGame()
	board, hint := newTestBoard(t, game, false)

	board.PlayMove(mustCoord(t, "aa"))

	assert.Contains(t, hint.GetText(true), "Invalid move. Try again.")
	black, white := game.Score()
	assert.Equal(t, 2, black)
	assert.Equal(t, 2, white)
	assert.Equal(t, types.Black, game.Turn())
}

func TestPlayMoveEndsGame(t *testing.T) {
	rows := []string{"BW......"}
	for len(rows) < types.BoardSize {
		rows = append(rows, "........")
	}
	b, err := engine.ParseBoard(rows)
	require.NoError(t, err)
	game := engine.NewFromBoard(b, types.Black)
	board, hint := newTestBoard(t, game, false)

	board.PlayMove(mustCoord(t, "ac"))

	require.True(t, board.IsFinished())
	text := hint.GetText(true)
	assert.Contains(t, text, "No more moves possible.")
	assert.Contains(t, text, "Black wins by 3 points!")
	assert.Nil(t, board.SelectedTile(), "selection should be cleared after the game ends")
}

func TestMoveSelection(t *testing.T) {
	board, _ := newTestBoard(t, engine.NewGame(), false)
	require.Nil(t, board.SelectedTile())

	// First press lands on the first legal move in row-major order.
	board.MoveSelection(0, 1)
	require.NotNil(t, board.SelectedTile())
	assert.Equal(t, mustCoord(t, "cd"), *board.SelectedTile())

	board.MoveSelection(1, 0)
	assert.Equal(t, mustCoord(t, "dd"), *board.SelectedTile())

	board.MoveSelection(-10, 0)
	assert.Equal(t, mustCoord(t, "dd"), *board.SelectedTile(), "out of bounds move is ignored")

	board.ResetSelection()
	assert.Nil(t, board.SelectedTile())
}

func TestGameInfoPanel(t *testing.T) {
	game := engine.NewGame()
	panel := NewGameInfoPanel()

	panel.SetEngine(game)
	text := panel.Box().GetText(true)
	assert.Contains(t, text, "Black: 2")
	assert.Contains(t, text, "To move: Black")

	_, err := game.AttemptMove(mustCoord(t, "cd"))
	require.NoError(t, err)
	_, err = game.AdvanceTurn()
	require.NoError(t, err)

	panel.SetEngine(game)
	text = panel.Box().GetText(true)
	for _, want := range []string{"Black: 4", "White: 1", "cd +1", "To move: White"} {
		assert.Contains(t, text, want)
	}
}

func TestGameSetupShowMoves(t *testing.T) {
	var started, got bool
	setup := NewGameSetup(true, func(showMoves bool) {
		started = true
		got = showMoves
	}, func() {}, nil)

	require.True(t, setup.ShowMoves(), "checkbox starts from the config value")
	setup.start()
	assert.True(t, started)
	assert.True(t, got)
}
