package console

import (
	"strings"

	"termothello/engine"
	"termothello/types"
)

// moveMarker replaces a cell that is a legal move when hints are on.
const moveMarker = '*'

// RenderBoard draws the board as text: a header of column labels, then one line per
// row starting with its row label. Both axes are labelled a-h.
func RenderBoard(eng engine.GameEngine, showMoves bool) string {
	var legal engine.MoveSet
	if showMoves && eng.Status() == types.InProgress {
		legal = eng.LegalMoves()
	}

	var sb strings.Builder
	sb.WriteString("  ")
	for c := 0; c < types.BoardSize; c++ {
		sb.WriteByte(types.Label(c))
	}
	sb.WriteByte('\n')

	for r := 0; r < types.BoardSize; r++ {
		sb.WriteByte(types.Label(r))
		sb.WriteByte(' ')
		for c := 0; c < types.BoardSize; c++ {
			pos := types.Coord{Row: r, Col: c}
			if legal.Contains(pos) {
				sb.WriteByte(moveMarker)
			} else {
				sb.WriteByte(eng.Cell(pos).Symbol())
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
