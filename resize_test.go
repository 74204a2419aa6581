package seamcarve

import (
	"errors"
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResizeTo(t *testing.T) {
	for name, opt := range strategies() {
		t.Run(name, func(t *testing.T) {
			c := New(randomGrid(rand.New(rand.NewSource(8)), 6, 12), opt())
			start := slices.Clone(c.Pixels())

			steps, err := c.ResizeTo(5)
			require.NoError(t, err)
			require.Equal(t, 7, steps)
			require.Equal(t, 5, c.Width())

			steps, err = c.ResizeTo(9)
			require.NoError(t, err)
			require.Equal(t, 4, steps)
			require.Equal(t, 3, c.Depth())

			steps, err = c.ResizeTo(9)
			require.NoError(t, err)
			require.Zero(t, steps)

			_, err = c.ResizeTo(12)
			require.NoError(t, err)
			require.Equal(t, start, c.Pixels())
		})
	}
}

func TestResizeToErrors(t *testing.T) {
	c := New(randomGrid(rand.New(rand.NewSource(9)), 3, 6))

	_, err := c.ResizeTo(1)
	require.True(t, errors.Is(err, ErrWidthTooSmall), "got %v", err)

	_, err = c.ResizeTo(7)
	require.True(t, errors.Is(err, ErrNoHistory), "got %v", err)

	require.Equal(t, 6, c.Width())
	require.Zero(t, c.Depth())
}
