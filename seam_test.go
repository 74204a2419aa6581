package seamcarve

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTrace(t *testing.T) {
	cases := []struct {
		name string
		cost [][]int
		want Seam
	}{
		{"first minimum of top row", [][]int{{3, 1, 1, 2}}, Seam{1}},
		{"left border keeps edge on tie", [][]int{{0, 5}, {3, 3}}, Seam{0, 0}},
		{"left border moves when cheaper", [][]int{{0, 5}, {3, 2}}, Seam{0, 1}},
		{"right border steps in on tie", [][]int{{5, 0}, {3, 3}}, Seam{1, 0}},
		{"right border stays when cheaper", [][]int{{5, 0}, {3, 2}}, Seam{1, 1}},
		{"left wins over right", [][]int{{9, 0, 9}, {1, 5, 1}}, Seam{1, 0}},
		{"right wins over middle", [][]int{{9, 0, 9}, {5, 1, 1}}, Seam{1, 2}},
		{"middle when strictly cheapest", [][]int{{9, 0, 9}, {5, 1, 5}}, Seam{1, 1}},
		{"walks diagonally", [][]int{{9, 9, 0, 9}, {9, 0, 9, 9}, {0, 9, 9, 9}}, Seam{2, 1, 0}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			seam := trace(tc.cost)
			require.Equal(t, tc.want, seam)
			require.True(t, seam.Connected())
		})
	}
}

func TestSeamConnected(t *testing.T) {
	require.True(t, Seam{}.Connected())
	require.True(t, Seam{3, 4, 4, 3, 2}.Connected())
	require.False(t, Seam{0, 2}.Connected())
}
