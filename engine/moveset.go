package engine

import "termothello/types"

// MoveSet is the set of legal destination cells for one side.
type MoveSet struct {
	cells [types.BoardSize][types.BoardSize]bool
	n     int
}

// Insert adds pos to the set. Inserting an existing member is a no-op.
func (m *MoveSet) Insert(pos types.Coord) {
	if m.cells[pos.Row][pos.Col] {
		return
	}
	m.cells[pos.Row][pos.Col] = true
	m.n++
}

// Contains reports membership. Out-of-bounds coordinates are never members.
func (m *MoveSet) Contains(pos types.Coord) bool {
	return pos.InBounds() && m.cells[pos.Row][pos.Col]
}

func (m *MoveSet) Empty() bool {
	return m.n == 0
}

func (m *MoveSet) Len() int {
	return m.n
}

// Coords lists the members in row-major order.
func (m *MoveSet) Coords() []types.Coord {
	coords := make([]types.Coord, 0, m.n)
	for r := range m.cells {
		for c, ok := range m.cells[r] {
			if ok {
				coords = append(coords, types.Coord{Row: r, Col: c})
			}
		}
	}
	return coords
}

// Rebuild replaces the contents with a fresh scan of b for side.
func (m *MoveSet) Rebuild(b *Board, side types.Color) {
	*m = b.LegalMovesFor(side)
}
