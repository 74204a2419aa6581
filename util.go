package seamcarve

func min2(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func min3(a, b, c int) int {
	return min2(min2(a, b), c)
}

// minIndex returns the first index holding the smallest value in row.
func minIndex(row []int) int {
	idx := 0
	for i := 1; i < len(row); i++ {
		if row[i] < row[idx] {
			idx = i
		}
	}
	return idx
}

// mod returns a modulo n in [0, n).
func mod(a, n int) int {
	r := a % n
	if r < 0 {
		r += n
	}
	return r
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
