// Package render draws a board for a terminal.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/benbeisheim/chessrules-backend/internal/model"
	"github.com/fatih/color"
)

var (
	whitePiece = color.New(color.FgHiWhite, color.Bold)
	blackPiece = color.New(color.FgRed, color.Bold)
	emptySq    = color.New(color.FgHiBlack)
)

// Board writes one line per row, row index first, followed by a line of
// column indexes. White pieces are uppercase, black lowercase, empty squares
// '.'.
func Board(w io.Writer, b *model.Board) error {
	squares, err := b.Squares()
	if err != nil {
		return err
	}

	var sb strings.Builder
	for row, rank := range squares {
		fmt.Fprintf(&sb, "%d ", row)
		for col, sq := range rank {
			if col > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(glyph(sq))
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  ")
	for col := 0; col < model.NumCols; col++ {
		if col > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%d", col)
	}
	sb.WriteByte('\n')

	_, err = io.WriteString(w, sb.String())
	return err
}

func glyph(sq model.Square) string {
	switch {
	case sq.IsEmpty():
		return emptySq.Sprint(sq.Letter())
	case sq.Color == model.White:
		return whitePiece.Sprint(sq.Letter())
	default:
		return blackPiece.Sprint(sq.Letter())
	}
}
