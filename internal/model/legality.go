package model

// IsMoveLegal reports whether m follows the movement rule of the piece on
// m.From. It never mutates the board and ignores turn order and check.
// Errors are reserved for malformed calls: an uninitialized board or a
// coordinate off the board.
func IsMoveLegal(b *Board, m Move) (bool, error) {
	if err := b.check(); err != nil {
		return false, err
	}
	if err := m.validate(); err != nil {
		return false, err
	}
	// a move must change the board
	if m.From == m.To {
		return false, nil
	}

	mover := b.at(m.From)
	if mover.IsEmpty() {
		return false, nil
	}

	startRank, forward := pawnStart(mover.Color)
	mc := moveContext{
		board:     b,
		move:      m,
		rowDiff:   abs(m.From.Row - m.To.Row),
		colDiff:   abs(m.From.Col - m.To.Col),
		mover:     mover,
		target:    b.at(m.To),
		startRank: startRank,
		forward:   forward,
	}

	switch mover.Kind {
	case Pawn:
		return validatePawn(mc), nil
	case Rook:
		return validateRook(mc), nil
	case Knight:
		return validateKnight(mc), nil
	case Bishop:
		return validateBishop(mc), nil
	case Queen:
		return validateQueen(mc), nil
	case King:
		return validateKing(mc), nil
	default:
		return false, nil
	}
}
