package model

import (
	"fmt"
	"strings"
)

const (
	NumRows = 8
	NumCols = 8
)

type PieceKind string

func (k PieceKind) getPieceNotation() string {
	switch k {
	case King:
		return "K"
	case Queen:
		return "Q"
	case Rook:
		return "R"
	case Bishop:
		return "B"
	case Knight:
		return "N"
	case Pawn:
		return "P"
	}
	return ""
}

const (
	NoPiece PieceKind = ""
	King    PieceKind = "king"
	Queen   PieceKind = "queen"
	Rook    PieceKind = "rook"
	Bishop  PieceKind = "bishop"
	Knight  PieceKind = "knight"
	Pawn    PieceKind = "pawn"
)

type Color string

const (
	White Color = "white"
	Black Color = "black"
)

// Opponent returns the other side. The zero Color has no opponent.
func (c Color) Opponent() Color {
	switch c {
	case White:
		return Black
	case Black:
		return White
	}
	return ""
}

// Square is one cell of the board. The zero value is an empty square.
type Square struct {
	Kind  PieceKind `json:"kind,omitempty"`
	Color Color     `json:"color,omitempty"`
}

var Empty = Square{}

func Occupied(c Color, k PieceKind) Square {
	return Square{Kind: k, Color: c}
}

func (s Square) IsEmpty() bool {
	return s.Kind == NoPiece
}

func (s Square) valid() bool {
	if s.IsEmpty() {
		return s.Color == ""
	}
	if s.Kind.getPieceNotation() == "" {
		return false
	}
	return s.Color == White || s.Color == Black
}

// Letter is the single character form of the square: uppercase for white,
// lowercase for black, '.' for empty.
func (s Square) Letter() string {
	if s.IsEmpty() {
		return "."
	}
	if s.Color == Black {
		return strings.ToLower(s.Kind.getPieceNotation())
	}
	return s.Kind.getPieceNotation()
}

type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

func (p Position) inBounds() bool {
	return boundaryCheck(p.Row, p.Col)
}

func boundaryCheck(row, col int) bool {
	return row >= 0 && row < NumRows && col >= 0 && col < NumCols
}

// Board is a bare 8x8 occupancy grid. It tracks no turn, castling rights or
// king positions.
type Board struct {
	squares     [NumRows][NumCols]Square
	initialized bool
}

var backRank = [NumCols]PieceKind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// NewBoard returns the standard starting position: black on rows 0 and 1,
// white on rows 6 and 7.
func NewBoard() *Board {
	board := NewEmptyBoard()
	for col := 0; col < NumCols; col++ {
		board.squares[0][col] = Occupied(Black, backRank[col])
		board.squares[1][col] = Occupied(Black, Pawn)
		board.squares[6][col] = Occupied(White, Pawn)
		board.squares[7][col] = Occupied(White, backRank[col])
	}
	return board
}

// NewEmptyBoard returns an initialized board with no pieces on it.
func NewEmptyBoard() *Board {
	return &Board{initialized: true}
}

func (b *Board) check() error {
	if b == nil || !b.initialized {
		return ErrUninitializedBoard
	}
	return nil
}

func checkCoordinate(row, col int) error {
	if !boundaryCheck(row, col) {
		return fmt.Errorf("%w: (%d,%d)", ErrInvalidCoordinate, row, col)
	}
	return nil
}

func (b *Board) Get(row, col int) (Square, error) {
	if err := b.check(); err != nil {
		return Empty, err
	}
	if err := checkCoordinate(row, col); err != nil {
		return Empty, err
	}
	return b.squares[row][col], nil
}

// Set places sq on the board. sq must be Empty or a known kind with a color.
func (b *Board) Set(row, col int, sq Square) error {
	if err := b.check(); err != nil {
		return err
	}
	if err := checkCoordinate(row, col); err != nil {
		return err
	}
	if !sq.valid() {
		return fmt.Errorf("%w at (%d,%d): unknown piece %q %q", ErrInvalidPlacement, row, col, sq.Color, sq.Kind)
	}
	b.squares[row][col] = sq
	return nil
}

// ApplyMove relocates the piece at m.From to m.To and empties m.From. It does
// no legality checking; whatever stood on m.To is discarded and returned.
func (b *Board) ApplyMove(m Move) (Square, error) {
	if err := b.check(); err != nil {
		return Empty, err
	}
	if err := m.validate(); err != nil {
		return Empty, err
	}
	captured := b.squares[m.To.Row][m.To.Col]
	b.squares[m.To.Row][m.To.Col] = b.squares[m.From.Row][m.From.Col]
	b.squares[m.From.Row][m.From.Col] = Empty
	return captured, nil
}

// Squares returns a copy of the grid, row by row.
func (b *Board) Squares() ([NumRows][NumCols]Square, error) {
	if err := b.check(); err != nil {
		return [NumRows][NumCols]Square{}, err
	}
	return b.squares, nil
}

func (b *Board) Clone() (*Board, error) {
	if err := b.check(); err != nil {
		return nil, err
	}
	clone := *b
	return &clone, nil
}

// at reads a square the caller has already bounds checked.
func (b *Board) at(p Position) Square {
	return b.squares[p.Row][p.Col]
}
