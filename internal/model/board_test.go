package model

import (
	"errors"
	"testing"

	"github.com/notnil/chess"
)

func TestNewBoardStartingLayout(t *testing.T) {
	want := boardFrom(t,
		"r n b q k b n r",
		"p p p p p p p p",
		". . . . . . . .",
		". . . . . . . .",
		". . . . . . . .",
		". . . . . . . .",
		"P P P P P P P P",
		"R N B Q K B N R",
	)
	got := NewBoard()

	for row := 0; row < NumRows; row++ {
		for col := 0; col < NumCols; col++ {
			sq, err := got.Get(row, col)
			if err != nil {
				t.Fatalf("Get(%d,%d): %v", row, col, err)
			}
			if sq != want.squares[row][col] {
				t.Errorf("(%d,%d): got %+v, want %+v", row, col, sq, want.squares[row][col])
			}
		}
	}
}

// The starting layout must agree with an independent chess implementation.
// Row 0 is the eighth rank.
func TestNewBoardMatchesReferenceEngine(t *testing.T) {
	kinds := map[chess.PieceType]PieceKind{
		chess.King:   King,
		chess.Queen:  Queen,
		chess.Rook:   Rook,
		chess.Bishop: Bishop,
		chess.Knight: Knight,
		chess.Pawn:   Pawn,
	}
	colors := map[chess.Color]Color{
		chess.White: White,
		chess.Black: Black,
	}

	ref := chess.NewGame().Position().Board()
	b := NewBoard()
	for row := 0; row < NumRows; row++ {
		for col := 0; col < NumCols; col++ {
			p := ref.Piece(chess.Square((NumRows-1-row)*8 + col))
			want := Empty
			if p != chess.NoPiece {
				want = Occupied(colors[p.Color()], kinds[p.Type()])
			}
			got, _ := b.Get(row, col)
			if got != want {
				t.Errorf("(%d,%d): got %+v, reference has %+v", row, col, got, want)
			}
		}
	}
}

func TestGetSetBounds(t *testing.T) {
	b := NewBoard()
	bad := []Position{{-1, 0}, {0, -1}, {8, 0}, {0, 8}, {8, 8}, {-1, -1}, {100, 3}}
	for _, p := range bad {
		if _, err := b.Get(p.Row, p.Col); !errors.Is(err, ErrInvalidCoordinate) {
			t.Errorf("Get%s: got %v, want ErrInvalidCoordinate", p, err)
		}
		if err := b.Set(p.Row, p.Col, Occupied(White, Queen)); !errors.Is(err, ErrInvalidCoordinate) {
			t.Errorf("Set%s: got %v, want ErrInvalidCoordinate", p, err)
		}
	}

	if err := b.Set(4, 4, Occupied(White, Queen)); err != nil {
		t.Fatalf("Set: %v", err)
	}
	sq, err := b.Get(4, 4)
	if err != nil || sq != Occupied(White, Queen) {
		t.Fatalf("Get after Set: got %+v, %v", sq, err)
	}
}

func TestSetRejectsUnknownPieces(t *testing.T) {
	b := NewEmptyBoard()
	bad := []Square{
		{Kind: Rook},
		{Kind: "dragon", Color: White},
		{Kind: Pawn, Color: "green"},
		{Color: Black},
	}
	for _, sq := range bad {
		if err := b.Set(3, 3, sq); !errors.Is(err, ErrInvalidPlacement) {
			t.Errorf("Set(%+v): got %v, want ErrInvalidPlacement", sq, err)
		}
	}
	if sq, _ := b.Get(3, 3); !sq.IsEmpty() {
		t.Errorf("a rejected square was stored: %+v", sq)
	}
	if err := b.Set(3, 3, Empty); err != nil {
		t.Errorf("Set(Empty): %v", err)
	}
}

func TestUninitializedBoard(t *testing.T) {
	var nilBoard *Board
	zero := &Board{}

	for name, b := range map[string]*Board{"nil": nilBoard, "zero": zero} {
		t.Run(name, func(t *testing.T) {
			if _, err := b.Get(0, 0); !errors.Is(err, ErrUninitializedBoard) {
				t.Errorf("Get: got %v", err)
			}
			if err := b.Set(0, 0, Empty); !errors.Is(err, ErrUninitializedBoard) {
				t.Errorf("Set: got %v", err)
			}
			if _, err := b.ApplyMove(mv(6, 0, 5, 0)); !errors.Is(err, ErrUninitializedBoard) {
				t.Errorf("ApplyMove: got %v", err)
			}
			if _, err := b.Squares(); !errors.Is(err, ErrUninitializedBoard) {
				t.Errorf("Squares: got %v", err)
			}
			if _, err := IsMoveLegal(b, mv(6, 0, 5, 0)); !errors.Is(err, ErrUninitializedBoard) {
				t.Errorf("IsMoveLegal: got %v", err)
			}
			if IsPathClear(b, Position{0, 0}, Position{0, 1}) {
				t.Errorf("IsPathClear on an uninitialized board reported clear")
			}
		})
	}
}

func TestApplyMoveRelocates(t *testing.T) {
	b := NewBoard()
	captured, err := b.ApplyMove(mv(6, 4, 4, 4))
	if err != nil {
		t.Fatalf("ApplyMove: %v", err)
	}
	if !captured.IsEmpty() {
		t.Errorf("quiet move reported capture %+v", captured)
	}
	if sq, _ := b.Get(6, 4); !sq.IsEmpty() {
		t.Errorf("origin not cleared: %+v", sq)
	}
	if sq, _ := b.Get(4, 4); sq != Occupied(White, Pawn) {
		t.Errorf("destination: got %+v", sq)
	}
}

func TestApplyMoveDoesNotCheckLegality(t *testing.T) {
	b := NewBoard()
	// a rook jumping over its own pawn onto an enemy pawn
	captured, err := b.ApplyMove(mv(7, 0, 1, 0))
	if err != nil {
		t.Fatalf("ApplyMove: %v", err)
	}
	if captured != Occupied(Black, Pawn) {
		t.Errorf("captured: got %+v", captured)
	}
	if sq, _ := b.Get(1, 0); sq != Occupied(White, Rook) {
		t.Errorf("destination: got %+v", sq)
	}
}

func TestApplyMoveRoundTrip(t *testing.T) {
	b := NewBoard()
	before, _ := b.Squares()

	if _, err := b.ApplyMove(mv(7, 1, 5, 2)); err != nil {
		t.Fatal(err)
	}
	if _, err := b.ApplyMove(mv(5, 2, 7, 1)); err != nil {
		t.Fatal(err)
	}
	after, _ := b.Squares()
	if before != after {
		t.Errorf("quiet move and its reverse did not restore the board")
	}
}

// Capturing is lossy: reversing a capture does not bring the captured piece
// back.
func TestApplyMoveCaptureIsLossy(t *testing.T) {
	b := NewEmptyBoard()
	mustPlace(t, b, 4, 4, Occupied(White, Rook))
	mustPlace(t, b, 4, 7, Occupied(Black, Knight))

	if _, err := b.ApplyMove(mv(4, 4, 4, 7)); err != nil {
		t.Fatal(err)
	}
	if _, err := b.ApplyMove(mv(4, 7, 4, 4)); err != nil {
		t.Fatal(err)
	}
	if sq, _ := b.Get(4, 4); sq != Occupied(White, Rook) {
		t.Errorf("rook not back on origin: %+v", sq)
	}
	if sq, _ := b.Get(4, 7); !sq.IsEmpty() {
		t.Errorf("captured knight reappeared: %+v", sq)
	}
}

func TestApplyMoveBounds(t *testing.T) {
	b := NewBoard()
	if _, err := b.ApplyMove(mv(6, 0, 8, 0)); !errors.Is(err, ErrInvalidCoordinate) {
		t.Errorf("got %v, want ErrInvalidCoordinate", err)
	}
	if _, err := b.ApplyMove(mv(-1, 0, 5, 0)); !errors.Is(err, ErrInvalidCoordinate) {
		t.Errorf("got %v, want ErrInvalidCoordinate", err)
	}
	if sq, _ := b.Get(6, 0); sq != Occupied(White, Pawn) {
		t.Errorf("failed move changed the board")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	b := NewBoard()
	clone, err := b.Clone()
	if err != nil {
		t.Fatal(err)
	}
	if _, err := clone.ApplyMove(mv(6, 0, 4, 0)); err != nil {
		t.Fatal(err)
	}
	if sq, _ := b.Get(6, 0); sq != Occupied(White, Pawn) {
		t.Errorf("moving on the clone changed the original")
	}
}

func TestSquareLetter(t *testing.T) {
	tests := []struct {
		sq   Square
		want string
	}{
		{Empty, "."},
		{Occupied(White, King), "K"},
		{Occupied(Black, King), "k"},
		{Occupied(White, Pawn), "P"},
		{Occupied(Black, Knight), "n"},
	}
	for _, tt := range tests {
		if got := tt.sq.Letter(); got != tt.want {
			t.Errorf("%+v.Letter() = %q, want %q", tt.sq, got, tt.want)
		}
	}
}
