package model

// moveContext is the geometry derived for one legality check.
type moveContext struct {
	board     *Board
	move      Move
	rowDiff   int
	colDiff   int
	mover     Square
	target    Square
	startRank int
	forward   int
}

// IsDestinationAvailable reports whether mover may land on dest: dest is
// empty or holds a piece of the other color.
func IsDestinationAvailable(mover, dest Square) bool {
	if dest.IsEmpty() {
		return true
	}
	return dest.Color != mover.Color
}

// pawnStart returns the starting row of a color's pawns and the row step that
// moves them forward. Black starts on row 1 and advances toward row 7.
func pawnStart(c Color) (startRank, forward int) {
	if c == Black {
		return 1, 1
	}
	return 6, -1
}

func validatePawn(mc moveContext) bool {
	rowDelta := mc.move.To.Row - mc.move.From.Row

	// capture
	if !mc.target.IsEmpty() {
		return rowDelta == mc.forward && mc.colDiff == 1 && mc.target.Color == mc.mover.Color.Opponent()
	}

	if mc.colDiff != 0 {
		return false
	}
	switch rowDelta {
	case mc.forward:
		return true
	case 2 * mc.forward:
		if mc.move.From.Row != mc.startRank {
			return false
		}
		between := Position{Row: mc.move.From.Row + mc.forward, Col: mc.move.From.Col}
		return mc.board.at(between).IsEmpty()
	}
	return false
}

func validateRook(mc moveContext) bool {
	if (mc.rowDiff == 0) == (mc.colDiff == 0) {
		return false
	}
	return IsDestinationAvailable(mc.mover, mc.target) && IsPathClear(mc.board, mc.move.From, mc.move.To)
}

func validateKnight(mc moveContext) bool {
	lShape := (mc.rowDiff == 1 && mc.colDiff == 2) || (mc.rowDiff == 2 && mc.colDiff == 1)
	return lShape && IsDestinationAvailable(mc.mover, mc.target)
}

func validateBishop(mc moveContext) bool {
	if mc.rowDiff != mc.colDiff || mc.rowDiff == 0 {
		return false
	}
	return IsDestinationAvailable(mc.mover, mc.target) && IsPathClear(mc.board, mc.move.From, mc.move.To)
}

func validateQueen(mc moveContext) bool {
	return validateRook(mc) || validateBishop(mc)
}

func validateKing(mc moveContext) bool {
	if mc.rowDiff > 1 || mc.colDiff > 1 || (mc.rowDiff == 0 && mc.colDiff == 0) {
		return false
	}
	return IsDestinationAvailable(mc.mover, mc.target)
}
