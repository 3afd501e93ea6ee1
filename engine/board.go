package engine

import (
	"fmt"
	"strings"

	"termothello/types"
)

// directions are the eight compass offsets as (row, column) deltas.
var directions = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Board is an 8x8 grid of cells. It is a value type; copying a Board copies the grid.
type Board struct {
	cells [types.BoardSize][types.BoardSize]types.Color
}

// NewBoard returns the standard starting position.
func NewBoard() Board {
	var b Board
	mid := types.BoardSize / 2
	b.cells[mid-1][mid-1] = types.White
	b.cells[mid][mid] = types.White
	b.cells[mid-1][mid] = types.Black
	b.cells[mid][mid-1] = types.Black
	return b
}

// ParseBoard builds a board from eight rows of 'B', 'W' and '.' characters.
func ParseBoard(rows []string) (Board, error) {
	var b Board
	if len(rows) != types.BoardSize {
		return b, fmt.Errorf("board needs %d rows, got %d", types.BoardSize, len(rows))
	}
	for r, row := range rows {
		if len(row) != types.BoardSize {
			return b, fmt.Errorf("row %c: want %d cells, got %d", types.Label(r), types.BoardSize, len(row))
		}
		for c := 0; c < types.BoardSize; c++ {
			color, ok := types.ColorFromSymbol(row[c])
			if !ok {
				return b, fmt.Errorf("row %c: unknown cell %q", types.Label(r), row[c])
			}
			b.cells[r][c] = color
		}
	}
	return b, nil
}

// At returns the cell at pos. pos must be in bounds.
func (b *Board) At(pos types.Coord) types.Color {
	return b.cells[pos.Row][pos.Col]
}

func (b *Board) set(pos types.Coord, c types.Color) {
	b.cells[pos.Row][pos.Col] = c
}

// IsCapturingDirection reports whether moving at origin captures along (dRow, dCol):
// the neighbour must hold opponent, and the run of opponent cells must end on a self
// cell before an empty cell or the edge.
func (b *Board) IsCapturingDirection(origin types.Coord, dRow, dCol int, self, opponent types.Color) bool {
	next := origin.Step(dRow, dCol)
	if !next.InBounds() || b.At(next) != opponent {
		return false
	}
	for {
		next = next.Step(dRow, dCol)
		if !next.InBounds() {
			return false
		}
		switch b.At(next) {
		case self:
			return true
		case types.Empty:
			return false
		}
	}
}

// HasAnyLegalDirection reports whether pos is empty and captures in at least one direction.
func (b *Board) HasAnyLegalDirection(pos types.Coord, self, opponent types.Color) bool {
	if b.At(pos) != types.Empty {
		return false
	}
	for _, d := range directions {
		if b.IsCapturingDirection(pos, d[0], d[1], self, opponent) {
			return true
		}
	}
	return false
}

// ApplyMove places self at pos and flips every captured run. It returns the number
// of discs flipped. The caller must have checked that the move is legal.
func (b *Board) ApplyMove(pos types.Coord, self, opponent types.Color) int {
	flipped := 0
	for _, d := range directions {
		if !b.IsCapturingDirection(pos, d[0], d[1], self, opponent) {
			continue
		}
		for next := pos.Step(d[0], d[1]); b.At(next) != self; next = next.Step(d[0], d[1]) {
			b.set(next, self)
			flipped++
		}
	}
	b.set(pos, self)
	return flipped
}

// LegalMovesFor scans the whole board for moves available to side.
func (b *Board) LegalMovesFor(side types.Color) MoveSet {
	var moves MoveSet
	opponent := side.Opponent()
	for r := 0; r < types.BoardSize; r++ {
		for c := 0; c < types.BoardSize; c++ {
			pos := types.Coord{Row: r, Col: c}
			if b.HasAnyLegalDirection(pos, side, opponent) {
				moves.Insert(pos)
			}
		}
	}
	return moves
}

// Count returns the number of cells holding color.
func (b *Board) Count(color types.Color) int {
	n := 0
	for r := range b.cells {
		for _, cell := range b.cells[r] {
			if cell == color {
				n++
			}
		}
	}
	return n
}

// String renders the grid as eight lines of symbols, the inverse of ParseBoard.
func (b *Board) String() string {
	var sb strings.Builder
	for r := range b.cells {
		for _, cell := range b.cells[r] {
			sb.WriteByte(cell.Symbol())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
