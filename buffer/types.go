package buffer

// Pos points into the document by (row, col), both 0-based and in runes.
type Pos struct {
	Row int
	Col int
}

// OrderRange returns start and end in ascending order.
func OrderRange(a, b int) (start, end int) {
	if a <= b {
		return a, b
	}
	return b, a
}

func clampInt(v, min, max int) int {
	if max < min {
		return min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
