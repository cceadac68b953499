package palette_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/swarmcolor/palette"
)

func TestNew_Validation(t *testing.T) {
	_, err := palette.New(nil)
	require.ErrorIs(t, err, palette.ErrEmptyPalette)

	_, err = palette.New([]string{"red", ""})
	require.ErrorIs(t, err, palette.ErrEmptyToken)

	_, err = palette.New([]string{"red", "blue", "red"})
	require.ErrorIs(t, err, palette.ErrDuplicateToken)
}

func TestPalette_ActivePrefix(t *testing.T) {
	src := []string{"a", "b", "c", "d"}
	p, err := palette.New(src)
	require.NoError(t, err)
	src[0] = "mutated"
	require.Equal(t, "a", p.Token(0), "New must copy its input")

	active, err := p.Active(2)
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b"}, active)

	active[0] = "x"
	again, _ := p.Active(2)
	require.Equal(t, "a", again[0], "Active must return a copy")

	_, err = p.Active(0)
	require.ErrorIs(t, err, palette.ErrActiveSizeOutOfRange)
	_, err = p.Active(5)
	require.ErrorIs(t, err, palette.ErrActiveSizeOutOfRange)

	i, ok := p.Index("c")
	require.True(t, ok)
	require.Equal(t, 2, i)
	_, ok = p.Index("z")
	require.False(t, ok)
	require.Equal(t, "", p.Token(9))
}

func TestDefault(t *testing.T) {
	p := palette.Default()
	require.Equal(t, 12, p.Size())
	require.Equal(t, "cyan", p.Token(0))
	require.Equal(t, "navy", p.Token(11))
	require.Equal(t, p.Tokens(), palette.DefaultTokens())
}
