package engine

import "errors"

var (
	ErrIllegalMove   = errors.New("illegal move")
	ErrGameOver      = errors.New("game is over")
	ErrGameNotOver   = errors.New("game is not over")
	ErrMoveCommitted = errors.New("move already played this turn")
)
