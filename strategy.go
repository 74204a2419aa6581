package seamcarve

import (
	"github.com/wbrown/seamcarve/imageutil"
	"github.com/wbrown/seamcarve/internal/rows"
)

// Strategy computes the per-pixel energy of an image and the cost table a
// seam is traced through.
//
// Energy is called once, at construction, with the full-size pixel grid.
// Build is called after construction and after every structural change. Its
// cost argument has one row per image row, each sized to the current width,
// and energy is the carver's spliced energy rows of the same shape.
type Strategy interface {
	Energy(grid [][]uint32) [][]uint8
	Build(cost [][]int, energy [][]uint8)
}

// Backward builds a bottom-up cumulative minimum path cost over Sobel
// gradient energy. Border columns only look at their in-range neighbors.
type Backward struct{}

// Energy returns the Sobel gradient magnitude of grid.
func (Backward) Energy(grid [][]uint32) [][]uint8 {
	return imageutil.SobelPacked(grid)
}

// Build fills cost so that cost[h][w] is the cheapest total energy of any
// path from (h, w) down to the last row.
func (Backward) Build(cost [][]int, energy [][]uint8) {
	last := len(cost) - 1
	width := len(cost[last])

	for w := 0; w < width; w++ {
		cost[last][w] = int(energy[last][w])
	}
	for h := last - 1; h >= 0; h-- {
		row, below := energy[h], cost[h+1]
		cost[h][0] = int(row[0]) + min2(below[0], below[1])
		w := 1
		for ; w < width-1; w++ {
			cost[h][w] = int(row[w]) + min3(below[w-1], below[w], below[w+1])
		}
		cost[h][w] = int(row[w]) + min2(below[w-1], below[w])
	}
}

// Forward models the cost of the horizontal adjacencies that removing a
// pixel creates, using grayscale values and wrapping neighbor columns.
// It keeps a scratch table between builds that every Build resizes and
// rewrites, so a Forward value may serve several Carvers in turn but not
// concurrently.
type Forward struct {
	// Workers is the number of goroutines converting rows to grayscale.
	// Zero means GOMAXPROCS.
	Workers int

	minimums [][]int
}

// NewForward returns a forward energy strategy converting to grayscale on
// the given number of workers.
func NewForward(workers int) *Forward {
	return &Forward{Workers: workers}
}

// Energy returns the grayscale rows of grid. Row h is converted by worker
// h mod Workers.
func (f *Forward) Energy(grid [][]uint32) [][]uint8 {
	gray := make([][]uint8, len(grid))
	rows.Partition(len(grid), f.Workers, func(_, h int) {
		gray[h] = make([]uint8, len(grid[h]))
		imageutil.GrayRow(gray[h], grid[h])
	})
	return gray
}

// Build fills cost with, for each pixel, the adjacency cost of the cheapest
// way of reaching it from the row above.
func (f *Forward) Build(cost [][]int, energy [][]uint8) {
	height := len(cost)
	width := len(cost[0])
	f.grow(height, width)
	minimums := f.minimums

	top := energy[0]
	for w := 0; w < width; w++ {
		left, right := mod(w-1, width), mod(w+1, width)
		minimums[0][w] = 0
		cost[0][w] = absInt(int(top[right]) - int(top[left]))
	}

	for h := 1; h < height; h++ {
		row, above := energy[h], energy[h-1]
		prev := minimums[h-1]
		for w := 0; w < width; w++ {
			left, right := mod(w-1, width), mod(w+1, width)

			cU := absInt(int(row[right]) - int(row[left]))
			cL := absInt(int(above[w])-int(row[left])) + cU
			cR := absInt(int(above[w])-int(row[right])) + cU

			mU := prev[w] + cU
			mL := prev[left] + cL
			mR := prev[right] + cR

			m := min3(mU, mL, mR)
			minimums[h][w] = m
			switch m {
			case mU:
				cost[h][w] = cU
			case mL:
				cost[h][w] = cL
			default:
				cost[h][w] = cR
			}
		}
	}
}

// grow sizes the scratch table to height rows of width columns, reusing
// capacity from earlier builds.
func (f *Forward) grow(height, width int) {
	if len(f.minimums) != height {
		f.minimums = make([][]int, height)
	}
	for h := range f.minimums {
		if cap(f.minimums[h]) < width {
			f.minimums[h] = make([]int, width)
		}
		f.minimums[h] = f.minimums[h][:width]
	}
}
