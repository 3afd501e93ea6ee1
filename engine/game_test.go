package engine

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"termothello/types"
)

func TestNewGame(t *testing.T) {
	g := NewGame()

	black, white := g.Score()
	assert.Equal(t, 2, black)
	assert.Equal(t, 2, white)
	assert.Equal(t, types.Black, g.Turn())
	assert.Equal(t, types.InProgress, g.Status())
	legal := g.LegalMoves()
	assert.Equal(t, 4, legal.Len())
	assert.Empty(t, g.History())

	_, err := g.Result()
	assert.ErrorIs(t, err, ErrGameNotOver)
}

func TestGame_AttemptMove(t *testing.T) {
	t.Run("opening move", func(t *testing.T) {
		// Given: a new game
		g := NewGame()

		// When: Black plays row c, column d
		res, err := g.AttemptMove(coord(t, "cd"))
		require.NoError(t, err)

		// Then: one White disc flips and the turn is not yet advanced
		assert.Equal(t, MoveResult{Coord: coord(t, "cd"), Color: types.Black, Flipped: 1}, res)
		black, white := g.Score()
		assert.Equal(t, 4, black)
		assert.Equal(t, 1, white)
		assert.Equal(t, types.Black, g.Cell(coord(t, "dd")))
		assert.Equal(t, types.Black, g.Turn())
		assert.Equal(t, []MoveRecord{{Number: 1, Color: types.Black, Coord: coord(t, "cd"), Flipped: 1}}, g.History())

		// When: the turn is advanced
		turn, err := g.AdvanceTurn()
		require.NoError(t, err)

		// Then: White is to move with a fresh move set
		assert.True(t, turn.Continues)
		assert.Equal(t, types.White, turn.Turn)
		assert.Empty(t, turn.Passed)
		assert.Equal(t, types.White, g.Turn())
		legal := g.LegalMoves()
		board := g.Board()
		assert.Equal(t, board.LegalMovesFor(types.White), legal)
	})

	t.Run("move not in legal set is rejected without mutation", func(t *testing.T) {
		g := NewGame()
		before := g.Board()

		for _, pos := range []types.Coord{coord(t, "aa"), coord(t, "dd"), coord(t, "ce"), {Row: 8, Col: 0}, {Row: -1, Col: 3}} {
			_, err := g.AttemptMove(pos)
			assert.ErrorIs(t, err, ErrIllegalMove, pos.String())
		}

		assert.Equal(t, before, g.Board())
		assert.Equal(t, types.Black, g.Turn())
		black, white := g.Score()
		assert.Equal(t, 2, black)
		assert.Equal(t, 2, white)
		assert.Empty(t, g.History())
	})

	t.Run("second move in the same turn", func(t *testing.T) {
		g := NewGame()
		_, err := g.AttemptMove(coord(t, "cd"))
		require.NoError(t, err)
		before := g.Board()

		_, err = g.AttemptMove(coord(t, "dc"))

		assert.ErrorIs(t, err, ErrMoveCommitted)
		assert.Equal(t, before, g.Board())
	})

	t.Run("malformed input never reaches the board", func(t *testing.T) {
		g := NewGame()
		before := g.Board()

		_, err := types.ParseCoord("zz")
		require.ErrorIs(t, err, types.ErrInvalidInput)

		assert.Equal(t, before, g.Board())
		assert.Equal(t, types.Black, g.Turn())
	})
}

func TestGame_AdvanceTurn(t *testing.T) {
	t.Run("forced pass keeps the turn", func(t *testing.T) {
		// Given: White has no move, Black can play ac
		b := mustParseBoard(t,
			"BW......",
			"........",
			"........",
			"........",
			"........",
			"........",
			"........",
			"........",
		)
		g := NewFromBoard(b, types.Black)

		// When: the turn is advanced
		res, err := g.AdvanceTurn()
		require.NoError(t, err)

		// Then: White is skipped and the board is untouched
		assert.True(t, res.Continues)
		assert.Equal(t, types.Black, res.Turn)
		assert.Equal(t, []types.Color{types.White}, res.Passed)
		assert.Equal(t, b, g.Board())
		legal := g.LegalMoves()
		assert.Equal(t, []types.Coord{coord(t, "ac")}, legal.Coords())
		assert.Equal(t, []MoveRecord{{Number: 1, Color: types.White, Coord: types.NoCoord, Pass: true}}, g.History())

		// When: Black takes the last White disc
		_, err = g.AttemptMove(coord(t, "ac"))
		require.NoError(t, err)
		res, err = g.AdvanceTurn()
		require.NoError(t, err)

		// Then: nobody can move and Black wins
		assert.False(t, res.Continues)
		assert.Equal(t, []types.Color{types.White, types.Black}, res.Passed)
		assert.Equal(t, types.Over, g.Status())
		verdict, err := g.Result()
		require.NoError(t, err)
		assert.Equal(t, Verdict{Winner: types.Black, Margin: 3}, verdict)
		assert.Equal(t, "Black wins by 3 points!", verdict.String())
	})

	t.Run("double stalemate ends the game", func(t *testing.T) {
		tests := []struct {
			name string
			rows []string
			want Verdict
			text string
		}{
			{
				name: "draw",
				rows: []string{"B.......", "........", "........", "........", "........", "........", "........", ".......W"},
				want: Verdict{},
				text: "Draw!",
			},
			{
				name: "white ahead",
				rows: []string{"W......W", "........", "........", "........", "........", "........", "........", ".......B"},
				want: Verdict{Winner: types.White, Margin: 1},
				text: "White wins by 1 points!",
			},
			{
				name: "full board",
				rows: []string{"BBBBBBBB", "BBBBBBBB", "BBBBBBBB", "BBBBBBBB", "WWWWWWWW", "WWWWWWWW", "WWWWWWWW", "WWWWWWBB"},
				want: Verdict{Winner: types.Black, Margin: 4},
				text: "Black wins by 4 points!",
			},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				b := mustParseBoard(t, tt.rows...)
				g := NewFromBoard(b, types.Black)

				res, err := g.AdvanceTurn()
				require.NoError(t, err)

				// the stuck side to move passes first
				assert.False(t, res.Continues)
				assert.Equal(t, []types.Color{types.Black, types.White}, res.Passed)
				assert.Equal(t, types.Over, g.Status())
				assert.Equal(t, b, g.Board())
				verdict, err := g.Result()
				require.NoError(t, err)
				assert.Equal(t, tt.want, verdict)
				assert.Equal(t, tt.text, verdict.String())
			})
		}
	})

	t.Run("stuck side to move is recorded once", func(t *testing.T) {
		b := mustParseBoard(t, "B.......", "........", "........", "........", "........", "........", "........", ".......W")
		g := NewFromBoard(b, types.White)

		res, err := g.AdvanceTurn()
		require.NoError(t, err)

		assert.False(t, res.Continues)
		assert.Equal(t, []types.Color{types.White, types.Black}, res.Passed)
		assert.Equal(t, []MoveRecord{
			{Number: 1, Color: types.White, Coord: types.NoCoord, Pass: true},
			{Number: 2, Color: types.Black, Coord: types.NoCoord, Pass: true},
		}, g.History())
	})

	t.Run("stuck side to move hands over to a side that can play", func(t *testing.T) {
		b := mustParseBoard(t, "BW......", "........", "........", "........", "........", "........", "........", "........")
		g := NewFromBoard(b, types.White)

		res, err := g.AdvanceTurn()
		require.NoError(t, err)

		assert.True(t, res.Continues)
		assert.Equal(t, types.Black, res.Turn)
		assert.Equal(t, []types.Color{types.White}, res.Passed)
		history := g.History()
		require.Len(t, history, 1)
		assert.True(t, history[0].Pass)
		assert.False(t, history[0].Coord.InBounds())
		assert.Equal(t, "--", history[0].Coord.String())
	})

	t.Run("calls after game over are no-ops", func(t *testing.T) {
		b := mustParseBoard(t, "B.......", "........", "........", "........", "........", "........", "........", ".......W")
		g := NewFromBoard(b, types.White)
		_, err := g.AdvanceTurn()
		require.NoError(t, err)
		history := g.History()

		res, err := g.AdvanceTurn()
		assert.ErrorIs(t, err, ErrGameOver)
		assert.False(t, res.Continues)

		_, err = g.AttemptMove(coord(t, "ab"))
		assert.ErrorIs(t, err, ErrGameOver)

		assert.Equal(t, b, g.Board())
		assert.Equal(t, history, g.History())
		assert.Equal(t, types.Over, g.Status())
	})
}

func TestGame_ScoreBookkeeping(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		r := rand.New(rand.NewSource(seed))
		g := NewGame()

		for {
			black, white := g.Score()
			board := g.Board()
			require.Equal(t, board.Count(types.Black), black)
			require.Equal(t, board.Count(types.White), white)

			legal := g.LegalMoves()
			require.False(t, legal.Empty(), "side to move must have a move while the game continues")
			coords := legal.Coords()
			_, err := g.AttemptMove(coords[r.Intn(len(coords))])
			require.NoError(t, err)

			nb, nw := g.Score()
			require.Equal(t, black+white+1, nb+nw)

			res, err := g.AdvanceTurn()
			require.NoError(t, err)
			if !res.Continues {
				break
			}
		}

		black, white := g.Score()
		board := g.Board()
		assert.Equal(t, board.Count(types.Black), black)
		assert.Equal(t, board.Count(types.White), white)
		verdict, err := g.Result()
		require.NoError(t, err)
		switch {
		case black == white:
			assert.Equal(t, Verdict{}, verdict)
		case black > white:
			assert.Equal(t, Verdict{Winner: types.Black, Margin: black - white}, verdict)
		default:
			assert.Equal(t, Verdict{Winner: types.White, Margin: white - black}, verdict)
		}
	}
}
