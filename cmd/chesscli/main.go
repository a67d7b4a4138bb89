// Command chesscli is a terminal loop over one board: it draws the position,
// reads a move as four integers (from row, from col, to row, to col), and
// applies it when legal. Either color may move at any time.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/benbeisheim/chessrules-backend/internal/model"
	"github.com/benbeisheim/chessrules-backend/internal/render"
	"github.com/fatih/color"
	"github.com/gofiber/fiber/v2/log"
	"golang.org/x/term"
)

func main() {
	noColor := flag.Bool("no-color", false, "disable colored output")
	flag.Parse()

	color.NoColor = *noColor || !term.IsTerminal(int(os.Stdout.Fd()))
	log.SetOutput(os.Stderr)

	if err := run(os.Stdin, os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(in io.Reader, out io.Writer) error {
	board := model.NewBoard()
	history := model.NewHistory()
	scanner := bufio.NewScanner(in)

	for {
		if err := render.Board(out, board); err != nil {
			return err
		}
		fmt.Fprint(out, "move (fromRow fromCol toRow toCol, q to quit): ")
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "q" || line == "quit" {
			return nil
		}

		move, err := parseMove(line)
		if err != nil {
			fmt.Fprintf(out, "could not read move: %v\n", err)
			continue
		}

		legal, err := model.IsMoveLegal(board, move)
		switch {
		case errors.Is(err, model.ErrInvalidCoordinate):
			fmt.Fprintf(out, "rejected: %v\n", err)
			continue
		case err != nil:
			return err
		case !legal:
			fmt.Fprintf(out, "illegal move %s, try another\n", move)
			continue
		}

		if _, err := board.ApplyMove(move); err != nil {
			return err
		}
		history.Append(move)
		fmt.Fprintf(out, "moves played: %d\n", history.Len())
	}
}

func parseMove(line string) (model.Move, error) {
	var m model.Move
	n, err := fmt.Sscanf(line, "%d %d %d %d", &m.From.Row, &m.From.Col, &m.To.Row, &m.To.Col)
	if err != nil {
		return model.Move{}, err
	}
	if n != 4 {
		return model.Move{}, fmt.Errorf("want 4 numbers, got %d", n)
	}
	return m, nil
}
