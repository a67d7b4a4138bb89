// Package store persists applied moves so a game's history survives the
// process.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/benbeisheim/chessrules-backend/internal/model"
	_ "github.com/mattn/go-sqlite3"
)

const schema = `
CREATE TABLE IF NOT EXISTS plies (
	game_id  TEXT    NOT NULL,
	seq      INTEGER NOT NULL,
	from_row INTEGER NOT NULL,
	from_col INTEGER NOT NULL,
	to_row   INTEGER NOT NULL,
	to_col   INTEGER NOT NULL,
	ply      TEXT    NOT NULL,
	PRIMARY KEY (game_id, seq)
)`

type SQLite struct {
	db *sql.DB
}

// Open opens (creating if needed) the database at path and applies the
// schema. ":memory:" gives a private in-memory database.
func Open(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	// one connection so ":memory:" is shared by every query
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(`PRAGMA journal_mode=WAL; PRAGMA synchronous=NORMAL;`); err != nil {
		db.Close()
		return nil, fmt.Errorf("set pragmas: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &SQLite{db: db}, nil
}

func (s *SQLite) Close() error {
	return s.db.Close()
}

// RecordMove stores ply as the seq-th move of the game. Recording the same
// seq twice replaces the earlier row.
func (s *SQLite) RecordMove(ctx context.Context, gameID string, seq int, ply model.Ply) error {
	data, err := json.Marshal(ply)
	if err != nil {
		return fmt.Errorf("marshal ply: %w", err)
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO plies (game_id, seq, from_row, from_col, to_row, to_col, ply)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		gameID, seq, ply.Move.From.Row, ply.Move.From.Col, ply.Move.To.Row, ply.Move.To.Col, string(data))
	if err != nil {
		return fmt.Errorf("failed to store move %d of game %s: %w", seq, gameID, err)
	}
	return nil
}

// Moves returns the recorded moves of a game in sequence order.
func (s *SQLite) Moves(ctx context.Context, gameID string) ([]model.Move, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT from_row, from_col, to_row, to_col
		FROM plies
		WHERE game_id = ?
		ORDER BY seq`, gameID)
	if err != nil {
		return nil, fmt.Errorf("error querying moves: %w", err)
	}
	defer rows.Close()

	moves := make([]model.Move, 0)
	for rows.Next() {
		var m model.Move
		if err := rows.Scan(&m.From.Row, &m.From.Col, &m.To.Row, &m.To.Col); err != nil {
			return nil, fmt.Errorf("error scanning move: %w", err)
		}
		moves = append(moves, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating over rows: %w", err)
	}
	return moves, nil
}

// DeleteGame drops every recorded move of a game.
func (s *SQLite) DeleteGame(ctx context.Context, gameID string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM plies WHERE game_id = ?`, gameID); err != nil {
		return fmt.Errorf("failed to delete moves of game %s: %w", gameID, err)
	}
	return nil
}
