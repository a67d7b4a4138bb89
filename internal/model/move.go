package model

import "fmt"

type Move struct {
	From Position `json:"from"`
	To   Position `json:"to"`
}

func (m Move) Equal(other Move) bool {
	return m.From == other.From && m.To == other.To
}

func (m Move) String() string {
	return fmt.Sprintf("%s->%s", m.From, m.To)
}

func (m Move) validate() error {
	if err := checkCoordinate(m.From.Row, m.From.Col); err != nil {
		return fmt.Errorf("origin: %w", err)
	}
	if err := checkCoordinate(m.To.Row, m.To.Col); err != nil {
		return fmt.Errorf("destination: %w", err)
	}
	return nil
}

// Ply is an applied move together with what it moved and what it removed.
type Ply struct {
	Seq      int    `json:"seq"` // 1-based position in the game, set when applied
	Move     Move   `json:"move"`
	Piece    Square `json:"piece"`
	Captured Square `json:"captured"`
	Notation string `json:"notation"`
}

func (p Ply) IsCapture() bool {
	return !p.Captured.IsEmpty()
}

func newPly(m Move, piece, captured Square) Ply {
	ply := Ply{Move: m, Piece: piece, Captured: captured}
	sep := "-"
	if ply.IsCapture() {
		sep = "x"
	}
	ply.Notation = fmt.Sprintf("%s%s%s%s", piece.Kind.getPieceNotation(), m.From, sep, m.To)
	return ply
}
