package seamcarve

// Seam holds one column index per image row, top to bottom. Indices in
// adjacent rows differ by at most one.
type Seam []int

// Connected reports whether every pair of adjacent rows differs by at most
// one column.
func (s Seam) Connected() bool {
	for h := 1; h < len(s); h++ {
		if absInt(s[h]-s[h-1]) > 1 {
			return false
		}
	}
	return true
}

// trace walks the cost table from the top row down. It starts at the first
// minimum of row 0 and, in each following row, moves to the cheapest of the
// previous column and its neighbors. Ties prefer left, then right, then
// straight down; at the borders they prefer the column further from the edge
// on the right and the edge column itself on the left.
func trace(cost [][]int) Seam {
	seam := make(Seam, len(cost))
	c := minIndex(cost[0])
	seam[0] = c

	for h := 1; h < len(cost); h++ {
		row := cost[h]
		last := len(row) - 1
		switch {
		case c == 0:
			if row[1] < row[0] {
				c = 1
			}
		case c == last:
			if row[last-1] <= row[last] {
				c = last - 1
			}
		default:
			m := min3(row[c-1], row[c], row[c+1])
			if row[c-1] == m {
				c--
			} else if row[c+1] == m {
				c++
			}
		}
		seam[h] = c
	}
	return seam
}
