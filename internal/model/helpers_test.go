package model

import (
	"strings"
	"testing"
)

var letterKinds = map[byte]PieceKind{
	'p': Pawn, 'r': Rook, 'n': Knight, 'b': Bishop, 'q': Queen, 'k': King,
}

// boardFrom builds a board from eight rows of letters, row 0 first, with
// black on top the way the position is usually drawn:
//
//	boardFrom(t,
//		"r n b q k b n r",
//		"p p p p p p p p",
//		". . . . . . . .",
//		...
//	)
//
// Uppercase is white, lowercase black, '.' empty.
func boardFrom(t *testing.T, rows ...string) *Board {
	t.Helper()
	if len(rows) != NumRows {
		t.Fatalf("boardFrom called with %d rows", len(rows))
	}
	b := NewEmptyBoard()
	for r, line := range rows {
		cells := strings.Fields(line)
		if len(cells) != NumCols {
			t.Fatalf("row %d has %d squares", r, len(cells))
		}
		for c, cell := range cells {
			if cell == "." {
				continue
			}
			ch := cell[0]
			color := White
			if ch >= 'a' && ch <= 'z' {
				color = Black
			} else {
				ch += 'a' - 'A'
			}
			kind, ok := letterKinds[ch]
			if !ok {
				t.Fatalf("unknown piece %q at (%d,%d)", cell, r, c)
			}
			b.squares[r][c] = Occupied(color, kind)
		}
	}
	return b
}

func mv(fromRow, fromCol, toRow, toCol int) Move {
	return Move{From: Position{Row: fromRow, Col: fromCol}, To: Position{Row: toRow, Col: toCol}}
}

func mustPlace(t *testing.T, b *Board, row, col int, sq Square) {
	t.Helper()
	if err := b.Set(row, col, sq); err != nil {
		t.Fatalf("set (%d,%d): %v", row, col, err)
	}
}

func mustLegal(t *testing.T, b *Board, m Move) bool {
	t.Helper()
	legal, err := IsMoveLegal(b, m)
	if err != nil {
		t.Fatalf("IsMoveLegal(%s) returned error: %v", m, err)
	}
	return legal
}
