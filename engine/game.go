package engine

import (
	"fmt"

	"termothello/types"
)

// Black moves first.
const firstToMove = types.Black

// MoveRecord is one entry in the game history: a placement or a forced pass.
// Passes carry types.NoCoord.
type MoveRecord struct {
	Number  int
	Color   types.Color
	Coord   types.Coord
	Flipped int
	Pass    bool
}

// MoveResult describes a committed placement.
type MoveResult struct {
	Coord   types.Coord
	Color   types.Color
	Flipped int
}

// TurnResult is returned by AdvanceTurn. Continues is false once the game is over.
// Passed lists, in order, the sides that had no legal move and were skipped.
type TurnResult struct {
	Continues bool
	Turn      types.Color
	Passed    []types.Color
}

// Verdict is the final outcome. Winner is Empty for a draw.
type Verdict struct {
	Winner types.Color
	Margin int
}

func (v Verdict) String() string {
	if v.Winner == types.Empty {
		return "Draw!"
	}
	return fmt.Sprintf("%s wins by %d points!", v.Winner, v.Margin)
}

// Game owns the board, the legal-move cache and the turn state.
type Game struct {
	board     Board
	moves     MoveSet
	turn      types.Color
	status    types.Status
	black     int
	white     int
	committed bool
	history   []MoveRecord
}

// NewGame starts a game from the standard position with Black to move.
func NewGame() *Game {
	return NewFromBoard(NewBoard(), firstToMove)
}

// NewFromBoard starts a game from an arbitrary position.
func NewFromBoard(b Board, toMove types.Color) *Game {
	if toMove != types.White {
		toMove = types.Black
	}
	g := &Game{
		board:  b,
		turn:   toMove,
		status: types.InProgress,
		black:  b.Count(types.Black),
		white:  b.Count(types.White),
	}
	g.moves.Rebuild(&g.board, g.turn)
	return g
}

// AttemptMove plays pos for the side to move. A rejected move leaves the game untouched.
// The turn is not advanced; call AdvanceTurn afterwards.
func (g *Game) AttemptMove(pos types.Coord) (MoveResult, error) {
	if g.status == types.Over {
		return MoveResult{}, ErrGameOver
	}
	if g.committed {
		return MoveResult{}, ErrMoveCommitted
	}
	if !g.moves.Contains(pos) {
		return MoveResult{}, fmt.Errorf("%w: %s is not available to %s", ErrIllegalMove, pos, g.turn)
	}

	next := g.board
	flipped := next.ApplyMove(pos, g.turn, g.turn.Opponent())
	if flipped == 0 {
		return MoveResult{}, fmt.Errorf("%w: %s flips nothing", ErrIllegalMove, pos)
	}
	g.board = next
	g.updateCount(flipped)
	g.committed = true
	g.history = append(g.history, MoveRecord{
		Number:  len(g.history) + 1,
		Color:   g.turn,
		Coord:   pos,
		Flipped: flipped,
	})

	return MoveResult{Coord: pos, Color: g.turn, Flipped: flipped}, nil
}

// AdvanceTurn hands the turn to the opponent. If the opponent cannot move the turn
// comes back; if neither side can move the game is over. A side to move that had no
// legal move to begin with is recorded as the first pass.
func (g *Game) AdvanceTurn() (TurnResult, error) {
	if g.status == types.Over {
		return TurnResult{Turn: g.turn}, ErrGameOver
	}

	var passed []types.Color
	tries := 2
	if !g.committed && g.moves.Empty() {
		passed = append(passed, g.turn)
		g.recordPass()
		tries = 1
	}
	g.committed = false

	for i := 0; i < tries; i++ {
		g.switchTurn()
		if !g.moves.Empty() {
			return TurnResult{Continues: true, Turn: g.turn, Passed: passed}, nil
		}
		passed = append(passed, g.turn)
		g.recordPass()
	}

	g.status = types.Over
	return TurnResult{Turn: g.turn, Passed: passed}, nil
}

func (g *Game) recordPass() {
	g.history = append(g.history, MoveRecord{
		Number: len(g.history) + 1,
		Color:  g.turn,
		Coord:  types.NoCoord,
		Pass:   true,
	})
}

// Result returns the verdict of a finished game.
func (g *Game) Result() (Verdict, error) {
	if g.status != types.Over {
		return Verdict{}, ErrGameNotOver
	}
	switch {
	case g.black > g.white:
		return Verdict{Winner: types.Black, Margin: g.black - g.white}, nil
	case g.white > g.black:
		return Verdict{Winner: types.White, Margin: g.white - g.black}, nil
	}
	return Verdict{}, nil
}

func (g *Game) switchTurn() {
	g.turn = g.turn.Opponent()
	g.moves.Rebuild(&g.board, g.turn)
}

func (g *Game) updateCount(flipped int) {
	if g.turn == types.Black {
		g.black += flipped + 1
		g.white -= flipped
	} else {
		g.white += flipped + 1
		g.black -= flipped
	}
}

// Cell returns the content of pos.
func (g *Game) Cell(pos types.Coord) types.Color {
	return g.board.At(pos)
}

// Board returns a copy of the current board.
func (g *Game) Board() Board {
	return g.board
}

// LegalMoves returns a copy of the legal-move cache for the side to move.
func (g *Game) LegalMoves() MoveSet {
	return g.moves
}

func (g *Game) Turn() types.Color {
	return g.turn
}

func (g *Game) Status() types.Status {
	return g.status
}

// Score returns the disc counts.
func (g *Game) Score() (black, white int) {
	return g.black, g.white
}

// History returns a copy of the placements and passes so far.
func (g *Game) History() []MoveRecord {
	out := make([]MoveRecord, len(g.history))
	copy(out, g.history)
	return out
}
