package seamcarve

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wbrown/seamcarve/imageutil"
)

// newCost allocates a height x width cost table.
func newCost(height, width int) [][]int {
	cost := make([][]int, height)
	for h := range cost {
		cost[h] = make([]int, width)
	}
	return cost
}

func TestBackwardBuild(t *testing.T) {
	energy := [][]uint8{
		{1, 2, 3},
		{4, 0, 6},
		{7, 8, 9},
	}
	cost := newCost(3, 3)
	Backward{}.Build(cost, energy)

	require.Equal(t, [][]int{
		{8, 9, 10},
		{11, 7, 14},
		{7, 8, 9},
	}, cost)
}

func TestBackwardBuildTwoColumns(t *testing.T) {
	energy := [][]uint8{
		{5, 1},
		{2, 9},
	}
	cost := newCost(2, 2)
	Backward{}.Build(cost, energy)

	require.Equal(t, [][]int{
		{7, 3},
		{2, 9},
	}, cost)
}

func TestForwardBuild(t *testing.T) {
	gray := [][]uint8{
		{10, 20, 40},
		{0, 30, 60},
		{20, 50, 20},
	}
	f := NewForward(1)
	cost := newCost(3, 3)
	f.Build(cost, gray)

	require.Equal(t, [][]int{
		{20, 30, 10},
		{30, 60, 30},
		{30, 10, 30},
	}, cost)
	// The middle of the last row is reached from the left: its left and right
	// moves tie and left takes precedence.
	require.Equal(t, [][]int{
		{0, 0, 0},
		{30, 60, 30},
		{60, 40, 60},
	}, f.minimums)
}

func TestForwardBuildReusesScratch(t *testing.T) {
	f := NewForward(1)
	f.Build(newCost(2, 4), [][]uint8{{1, 2, 3, 4}, {4, 3, 2, 1}})
	require.Len(t, f.minimums[0], 4)

	cost := newCost(2, 3)
	f.Build(cost, [][]uint8{{1, 2, 3}, {3, 2, 1}})
	require.Len(t, f.minimums[0], 3)
	require.Equal(t, 4, cap(f.minimums[0]))
	require.Equal(t, []int{1, 2, 1}, cost[0])
}

func TestForwardEnergyMatchesGrayRow(t *testing.T) {
	grid := imageutil.CreateColorBarsImage(24, 13).Grid()

	want := make([][]uint8, len(grid))
	for h, row := range grid {
		want[h] = make([]uint8, len(row))
		imageutil.GrayRow(want[h], row)
	}

	for _, workers := range []int{0, 1, 3, 64} {
		require.Equal(t, want, NewForward(workers).Energy(grid), "workers=%d", workers)
	}
}

func TestBackwardEnergyIsSobel(t *testing.T) {
	grid := imageutil.CreateEdgeImage(20, 12).Grid()
	require.Equal(t, imageutil.SobelPacked(grid), Backward{}.Energy(grid))
}
