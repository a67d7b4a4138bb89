package model

// IsPathClear reports whether every square strictly between from and to is
// empty. from and to must share a rank, file or diagonal; any other pair, or a
// pair off the board, reports blocked. The walk is bounded by the board size.
func IsPathClear(b *Board, from, to Position) bool {
	if b.check() != nil || !from.inBounds() || !to.inBounds() {
		return false
	}
	if from == to {
		return true
	}

	rowStep := sign(to.Row - from.Row)
	colStep := sign(to.Col - from.Col)
	for step := 1; step < NumRows; step++ {
		pos := Position{Row: from.Row + step*rowStep, Col: from.Col + step*colStep}
		if pos == to {
			return true
		}
		if !pos.inBounds() || !b.at(pos).IsEmpty() {
			return false
		}
	}
	return false
}

func sign(x int) int {
	if x > 0 {
		return 1
	}
	if x < 0 {
		return -1
	}
	return 0
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
