// Package engine implements the Othello rules: board, legal moves and turn order.
package engine

import "termothello/types"

// GameEngine is what a driver needs to render and play a game.
type GameEngine interface {
	// Cell returns the content of pos.
	Cell(pos types.Coord) types.Color

	// LegalMoves returns the moves available to the side to move.
	LegalMoves() MoveSet

	// Turn returns the side to move.
	Turn() types.Color

	// Status reports whether the game is still in progress.
	Status() types.Status

	// Score returns the disc counts for Black and White.
	Score() (black, white int)

	// AttemptMove plays pos for the side to move without advancing the turn.
	// Returns ErrIllegalMove if pos is not a legal move.
	AttemptMove(pos types.Coord) (MoveResult, error)

	// AdvanceTurn passes the turn on, skipping a side that cannot move.
	AdvanceTurn() (TurnResult, error)

	// Result returns the verdict once the game is over.
	Result() (Verdict, error)

	// History returns placements and forced passes in order.
	History() []MoveRecord
}

var _ GameEngine = (*Game)(nil)
