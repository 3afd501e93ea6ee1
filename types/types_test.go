package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCoord(t *testing.T) {
	t.Run("valid corners and centre", func(t *testing.T) {
		cases := map[string]Coord{
			"aa": {Row: 0, Col: 0},
			"hh": {Row: 7, Col: 7},
			"cd": {Row: 2, Col: 3},
			"ha": {Row: 7, Col: 0},
		}
		for in, want := range cases {
			got, err := ParseCoord(in)
			require.NoError(t, err, in)
			assert.Equal(t, want, got, in)
			assert.Equal(t, in, got.String())
		}
	})

	t.Run("wrong length", func(t *testing.T) {
		for _, in := range []string{"", "a", "abc", "cd\n"} {
			_, err := ParseCoord(in)
			assert.ErrorIs(t, err, ErrInvalidInput, in)
		}
	})

	t.Run("characters out of range", func(t *testing.T) {
		for _, in := range []string{"ai", "za", "A1", "11", "c4", "CD"} {
			_, err := ParseCoord(in)
			assert.ErrorIs(t, err, ErrInvalidInput, in)
		}
	})
}

func TestCoordInBounds(t *testing.T) {
	assert.True(t, Coord{0, 0}.InBounds())
	assert.True(t, Coord{7, 7}.InBounds())
	assert.False(t, Coord{-1, 0}.InBounds())
	assert.False(t, Coord{0, 8}.InBounds())
	assert.Equal(t, Coord{3, 5}, Coord{4, 4}.Step(-1, 1))
	assert.False(t, NoCoord.InBounds())
	assert.Equal(t, "--", NoCoord.String())
	assert.NotEqual(t, Coord{}, NoCoord)
}

func TestColor(t *testing.T) {
	assert.Equal(t, White, Black.Opponent())
	assert.Equal(t, Black, White.Opponent())
	assert.Equal(t, Empty, Empty.Opponent())

	for _, c := range []Color{Empty, Black, White} {
		got, ok := ColorFromSymbol(c.Symbol())
		require.True(t, ok)
		assert.Equal(t, c, got)
	}
	_, ok := ColorFromSymbol('x')
	assert.False(t, ok)

	assert.Equal(t, "Black", Black.String())
	assert.Equal(t, "White", White.String())
}
