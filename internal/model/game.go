package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/benbeisheim/chessrules-backend/internal/ws"
	"github.com/gofiber/fiber/v2/log"
)

// Conn is the write side of an observer connection. *websocket.Conn
// satisfies it.
type Conn interface {
	WriteJSON(v interface{}) error
	Close() error
}

// observer is one connection and the newest state version written to it.
type observer struct {
	conn Conn
	sent uint64 // guarded by GameConnections.sendMu
}

// The connections for a specific game
type GameConnections struct {
	connections map[string]*observer // clientID -> observer
	mu          sync.RWMutex
	sendMu      sync.Mutex // one broadcast at a time, so versions reach each observer in order
}

// Game owns one board and the moves applied to it. It does not enforce turn
// order; any legal move of either color may be applied.
type Game struct {
	ID          string
	Name        string
	mu          sync.Mutex
	board       *Board
	history     *History
	plies       []Ply
	lastMove    *Move
	sound       string
	version     uint64
	clock       *Clock
	connections *GameConnections
}

type GameState struct {
	ID          string                   `json:"id"`
	Name        string                   `json:"name"`
	Board       [NumRows][NumCols]Square `json:"board"`
	MoveHistory []Ply                    `json:"moveHistory"`
	LastMove    *Move                    `json:"lastMove"` // nil before the first move
	Sound       string                   `json:"sound"`
	Version     uint64                   `json:"version"` // increases with every move or setup
}

// Placement puts one piece on a square when setting up a custom position.
type Placement struct {
	Position Position `json:"position"`
	Piece    Square   `json:"piece"`
}

func NewGame(id, name string) *Game {
	return &Game{
		ID:          id,
		Name:        name,
		board:       NewBoard(),
		history:     NewHistory(),
		plies:       make([]Ply, 0),
		version:     1,
		clock:       NewClock(),
		connections: NewGameConnections(),
	}
}

func NewGameConnections() *GameConnections {
	return &GameConnections{
		connections: make(map[string]*observer),
	}
}

func (g *Game) GetState() GameState {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.snapshot()
}

func (g *Game) snapshot() GameState {
	squares, _ := g.board.Squares()
	plies := make([]Ply, len(g.plies))
	copy(plies, g.plies)
	var last *Move
	if g.lastMove != nil {
		m := *g.lastMove
		last = &m
	}
	return GameState{
		ID:          g.ID,
		Name:        g.Name,
		Board:       squares,
		MoveHistory: plies,
		LastMove:    last,
		Sound:       g.sound,
		Version:     g.version,
	}
}

// History returns the moves applied so far, in order.
func (g *Game) History() []Move {
	return g.history.Moves()
}

// CheckMove reports whether move is legal on the current board without
// applying it.
func (g *Game) CheckMove(move Move) (bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.clock.Touch()

	return IsMoveLegal(g.board, move)
}

// MakeMove applies move if it is legal. An illegal but well formed move
// returns ErrIllegalMove and leaves the board untouched.
func (g *Game) MakeMove(move Move) (Ply, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	log.Debugw("making move", "game", g.ID, "move", move.String())
	g.clock.Touch()

	legal, err := IsMoveLegal(g.board, move)
	if err != nil {
		return Ply{}, err
	}
	if !legal {
		return Ply{}, fmt.Errorf("%w: %s", ErrIllegalMove, move)
	}

	piece := g.board.at(move.From)
	captured, err := g.board.ApplyMove(move)
	if err != nil {
		return Ply{}, err
	}

	ply := newPly(move, piece, captured)
	ply.Seq = len(g.plies) + 1
	g.plies = append(g.plies, ply)
	g.history.Append(move)
	g.lastMove = &move
	if ply.IsCapture() {
		g.sound = "capture"
	} else {
		g.sound = "move"
	}
	g.version++

	go g.broadcastState(g.snapshot())

	return ply, nil
}

// Setup replaces the position with an empty board plus placements and clears
// the move history.
func (g *Game) Setup(placements []Placement) error {
	board := NewEmptyBoard()
	for _, p := range placements {
		if err := board.Set(p.Position.Row, p.Position.Col, p.Piece); err != nil {
			return err
		}
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	g.clock.Touch()
	g.board = board
	g.plies = g.plies[:0]
	g.history.Reset()
	g.lastMove = nil
	g.sound = ""
	g.version++

	go g.broadcastState(g.snapshot())
	return nil
}

// RegisterConnection adds conn as the observer for clientID and sends it the
// current state. A client that already has a connection gets
// ErrDuplicateConnection and conn is left for the caller to close.
func (g *Game) RegisterConnection(clientID string, conn Conn) error {
	if clientID == "" {
		return errors.New("client id is required")
	}
	connID := fmt.Sprintf("%p", conn)
	log.Debugw("registering connection", "game", g.ID, "client", clientID, "conn", connID)

	g.connections.mu.Lock()
	if _, exists := g.connections.connections[clientID]; exists {
		// If we already have a healthy connection, keep it and reject the new one
		g.connections.mu.Unlock()
		log.Infow("rejecting duplicate connection", "game", g.ID, "client", clientID)
		return fmt.Errorf("%w: %s", ErrDuplicateConnection, clientID)
	}
	g.connections.connections[clientID] = &observer{conn: conn}
	g.connections.mu.Unlock()
	g.clock.Touch()

	g.mu.Lock()
	state := g.snapshot()
	g.mu.Unlock()

	// Send initial state...
	go g.broadcastState(state)
	return nil
}

// UnregisterConnection removes clientID only while conn is still its
// registered connection.
func (g *Game) UnregisterConnection(clientID string, conn Conn) {
	g.connections.mu.Lock()
	defer g.connections.mu.Unlock()

	// Only unregister if this is still the current connection
	if obs, exists := g.connections.connections[clientID]; exists && obs.conn == conn {
		log.Debugw("unregistering connection", "game", g.ID, "client", clientID)
		delete(g.connections.connections, clientID)
	}
}

// IdleFor is the time since the game was last checked, moved, set up or
// joined.
func (g *Game) IdleFor() time.Duration {
	return g.clock.IdleFor()
}

func (g *Game) ConnectionCount() int {
	g.connections.mu.RLock()
	defer g.connections.mu.RUnlock()
	return len(g.connections.connections)
}

// broadcastState writes state to every observer that has not yet seen it or
// anything newer. A snapshot that loses the race to a newer one is dropped.
func (g *Game) broadcastState(state GameState) {
	g.connections.sendMu.Lock()
	defer g.connections.sendMu.Unlock()

	jsonGameState, err := json.Marshal(state)
	if err != nil {
		log.Errorf("failed to marshal state for game %s: %v", g.ID, err)
		return
	}
	msg := ws.Message{
		Type:    ws.MessageTypeGameState,
		Payload: json.RawMessage(jsonGameState),
	}

	// Make a copy of the connections we need to broadcast to
	g.connections.mu.RLock()
	activeConnections := make(map[string]*observer, len(g.connections.connections))
	for clientID, obs := range g.connections.connections {
		activeConnections[clientID] = obs
	}
	g.connections.mu.RUnlock()

	// Now broadcast to each connection without holding the map lock
	for clientID, obs := range activeConnections {
		if state.Version <= obs.sent {
			continue
		}
		if err := obs.conn.WriteJSON(msg); err != nil {
			log.Warnw("failed to send state, dropping connection", "game", g.ID, "client", clientID, "error", err)
			g.connections.mu.Lock()
			if g.connections.connections[clientID] == obs {
				delete(g.connections.connections, clientID)
			}
			g.connections.mu.Unlock()
			continue
		}
		obs.sent = state.Version
	}
}
