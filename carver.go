package seamcarve

import (
	"math"
	"slices"
)

// Carver removes and restores vertical seams of an image.
//
// The image is held as one pixel slice and one energy slice per row, both
// spliced in lockstep. Every successful Remove pushes the seam, its pixels and
// its energy values onto three parallel stacks, and Add pops them.
type Carver struct {
	height int
	width  int

	strategy Strategy

	pixels [][]uint32
	energy [][]uint8
	cost   [][]int
	buf    []uint32

	seams    []Seam
	values   [][]uint32
	energies [][]uint8
}

// Option configures a Carver.
type Option func(*Carver)

// WithStrategy selects the energy strategy. The default is Backward.
func WithStrategy(s Strategy) Option {
	return func(c *Carver) {
		c.strategy = s
	}
}

// WithForwardEnergy selects forward energy, converting to grayscale on the
// given number of workers (zero means GOMAXPROCS).
func WithForwardEnergy(workers int) Option {
	return WithStrategy(NewForward(workers))
}

// New creates a Carver for a rectangular grid of packed pixels with at least
// one row and two columns. The grid is copied; later changes to it do not
// affect the Carver.
func New(grid [][]uint32, opts ...Option) *Carver {
	c := &Carver{
		height:   len(grid),
		width:    len(grid[0]),
		strategy: Backward{},
	}
	for _, opt := range opts {
		opt(c)
	}

	c.energy = c.strategy.Energy(grid)
	c.pixels = make([][]uint32, c.height)
	c.cost = make([][]int, c.height)
	for h := 0; h < c.height; h++ {
		c.pixels[h] = slices.Clone(grid[h])
		c.cost[h] = make([]int, c.width)
	}

	c.rebuildCost()
	c.rebuildBuffer(nil, 0)
	return c
}

// Height returns the number of rows. It never changes.
func (c *Carver) Height() int {
	return c.height
}

// Width returns the current number of columns.
func (c *Carver) Width() int {
	return c.width
}

// Pixels returns the current image as a row-major buffer of Height*Width
// packed pixels. The buffer is replaced, not modified, by Remove and Add.
func (c *Carver) Pixels() []uint32 {
	return c.buf
}

// Depth returns how many removed seams Add can still restore.
func (c *Carver) Depth() int {
	return len(c.seams)
}

// Energy returns a copy of the current energy rows.
func (c *Carver) Energy() [][]uint8 {
	out := make([][]uint8, c.height)
	for h, row := range c.energy {
		out[h] = slices.Clone(row)
	}
	return out
}

// CostMap returns a copy of the current cost table.
func (c *Carver) CostMap() [][]int {
	out := make([][]int, c.height)
	for h, row := range c.cost {
		out[h] = slices.Clone(row)
	}
	return out
}

// Remove carves out the cheapest seam. When highlight is set, the seam
// columns and their immediate neighbors are painted with color in the
// resulting buffer. It returns false, changing nothing, once the image is two
// columns wide.
func (c *Carver) Remove(highlight bool, color uint32) bool {
	if c.width == 2 {
		return false
	}

	seam := trace(c.cost)
	values := make([]uint32, c.height)
	energies := make([]uint8, c.height)
	for h, col := range seam {
		values[h] = c.pixels[h][col]
		energies[h] = c.energy[h][col]
		c.pixels[h] = slices.Delete(c.pixels[h], col, col+1)
		c.energy[h] = slices.Delete(c.energy[h], col, col+1)
	}
	c.width--

	c.finish(seam, highlight, color)

	c.seams = append(c.seams, seam)
	c.values = append(c.values, values)
	c.energies = append(c.energies, energies)
	return true
}

// Add restores the most recently removed seam. Highlighting works as in
// Remove. It returns false, changing nothing, when there is nothing to
// restore.
func (c *Carver) Add(highlight bool, color uint32) bool {
	n := len(c.seams)
	if n == 0 {
		return false
	}

	seam, values, energies := c.seams[n-1], c.values[n-1], c.energies[n-1]
	c.seams[n-1], c.values[n-1], c.energies[n-1] = nil, nil, nil
	c.seams, c.values, c.energies = c.seams[:n-1], c.values[:n-1], c.energies[:n-1]

	for h, col := range seam {
		c.pixels[h] = slices.Insert(c.pixels[h], col, values[h])
		c.energy[h] = slices.Insert(c.energy[h], col, energies[h])
	}
	c.width++

	c.finish(seam, highlight, color)
	return true
}

// SetEdge gives the pixel at column x, row y the maximum energy so seams
// avoid it. The cost table only reflects the change after the next Remove or
// Add; ApplyMask rebuilds it right away. Coordinates out of range panic.
func (c *Carver) SetEdge(x, y int) {
	c.energy[y][x] = math.MaxUint8
}

// Redraw flattens the current rows into a fresh buffer without any
// highlight. The cost table is left as is.
func (c *Carver) Redraw() {
	c.rebuildBuffer(nil, 0)
}

// finish refreshes the buffer and the cost table after a splice.
func (c *Carver) finish(seam Seam, highlight bool, color uint32) {
	if highlight {
		c.rebuildBuffer(seam, color)
	} else {
		c.rebuildBuffer(nil, 0)
	}
	c.rebuildCost()
}

func (c *Carver) rebuildCost() {
	for h := range c.cost {
		c.cost[h] = c.cost[h][:c.width]
	}
	c.strategy.Build(c.cost, c.energy)
}

// rebuildBuffer flattens the pixel rows into a new buffer. A non-nil seam is
// painted with color over columns seam[h]-1 to seam[h]+1, clipped to the
// image.
func (c *Carver) rebuildBuffer(seam Seam, color uint32) {
	buf := make([]uint32, 0, c.height*c.width)
	for _, row := range c.pixels {
		buf = append(buf, row...)
	}
	for h, col := range seam {
		for x := max(col-1, 0); x <= min(col+1, c.width-1); x++ {
			buf[h*c.width+x] = color
		}
	}
	c.buf = buf
}
