// Package types contains shared data structures for termothello.
package types

import (
	"errors"
	"fmt"
)

// BoardSize is the number of rows and columns on the board.
const BoardSize = 8

// ErrInvalidInput is returned when a move string cannot be parsed.
var ErrInvalidInput = errors.New("invalid move input")

// Color is the content of a board cell. The side to move is always Black or White.
type Color uint8

const (
	Empty Color = iota
	Black
	White
)

// Opponent returns the other side. Empty has no opponent.
func (c Color) Opponent() Color {
	switch c {
	case Black:
		return White
	case White:
		return Black
	}
	return Empty
}

// Symbol returns the single character used by the text board.
func (c Color) Symbol() byte {
	switch c {
	case Black:
		return 'B'
	case White:
		return 'W'
	}
	return '.'
}

func (c Color) String() string {
	switch c {
	case Black:
		return "Black"
	case White:
		return "White"
	}
	return "Empty"
}

// ColorFromSymbol is the inverse of Color.Symbol.
func ColorFromSymbol(b byte) (Color, bool) {
	switch b {
	case 'B':
		return Black, true
	case 'W':
		return White, true
	case '.':
		return Empty, true
	}
	return Empty, false
}

// Status is the lifecycle state of a game.
type Status uint8

const (
	InProgress Status = iota
	Over
)

func (s Status) String() string {
	if s == Over {
		return "over"
	}
	return "in progress"
}

// Coord is a zero-based (row, column) position on the board.
type Coord struct {
	Row int
	Col int
}

// NoCoord marks the absence of a position, e.g. on a pass. It is never in bounds.
var NoCoord = Coord{Row: -1, Col: -1}

// InBounds reports whether the coordinate lies on the board.
func (c Coord) InBounds() bool {
	return c.Row >= 0 && c.Row < BoardSize && c.Col >= 0 && c.Col < BoardSize
}

// Step returns the coordinate offset by the given deltas.
func (c Coord) Step(dRow, dCol int) Coord {
	return Coord{Row: c.Row + dRow, Col: c.Col + dCol}
}

// String renders the coordinate as two labels, row first: (2, 3) -> "cd".
func (c Coord) String() string {
	if c == NoCoord {
		return "--"
	}
	if !c.InBounds() {
		return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
	}
	return string([]byte{Label(c.Row), Label(c.Col)})
}

// Label returns the axis label for a row or column index.
func Label(i int) byte {
	return byte('a' + i)
}

// ParseCoord reads a move typed as two characters in a..h, row then column.
func ParseCoord(s string) (Coord, error) {
	if len(s) != 2 {
		return Coord{}, fmt.Errorf("%w: %q must be two characters", ErrInvalidInput, s)
	}
	if !isLabel(s[0]) || !isLabel(s[1]) {
		return Coord{}, fmt.Errorf("%w: %q is outside a-%c", ErrInvalidInput, s, Label(BoardSize-1))
	}
	return Coord{Row: int(s[0] - 'a'), Col: int(s[1] - 'a')}, nil
}

func isLabel(b byte) bool {
	return b >= 'a' && b < 'a'+BoardSize
}
