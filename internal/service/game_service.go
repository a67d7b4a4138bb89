package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/benbeisheim/chessrules-backend/internal/model"
	petname "github.com/dustinkirkland/golang-petname"
	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
)

// MoveRecorder persists applied moves. store.SQLite implements it.
type MoveRecorder interface {
	RecordMove(ctx context.Context, gameID string, seq int, ply model.Ply) error
	Moves(ctx context.Context, gameID string) ([]model.Move, error)
	DeleteGame(ctx context.Context, gameID string) error
}

type GameService struct {
	gameManager *GameManager
	recorder    MoveRecorder
	// recordMu keeps each change and its write to the recorder together, so
	// a setup can not be followed by a move recorded from the old position.
	recordMu sync.Mutex
}

// NewGameService wires the manager to an optional recorder; a nil recorder
// keeps history in memory only.
func NewGameService(gameManager *GameManager, recorder MoveRecorder) *GameService {
	return &GameService{
		gameManager: gameManager,
		recorder:    recorder,
	}
}

// CreateGame starts a game from the standard position and returns its id and
// a human readable name.
func (gs *GameService) CreateGame() (string, string, error) {
	gameID := uuid.New().String()
	name := petname.Generate(2, "-")

	if _, err := gs.gameManager.CreateGame(gameID, name); err != nil {
		return "", "", fmt.Errorf("failed to create game: %w", err)
	}

	return gameID, name, nil
}

func (gs *GameService) GetGameState(gameID string) (model.GameState, error) {
	return gs.gameManager.GetGameState(gameID)
}

func (gs *GameService) CheckMove(gameID string, move model.Move) (bool, error) {
	return gs.gameManager.CheckMove(gameID, move)
}

func (gs *GameService) HandleMove(ctx context.Context, gameID string, move model.Move) (model.Ply, error) {
	if gs.recorder == nil {
		return gs.gameManager.MakeMove(gameID, move)
	}

	gs.recordMu.Lock()
	defer gs.recordMu.Unlock()

	ply, err := gs.gameManager.MakeMove(gameID, move)
	if err != nil {
		return model.Ply{}, err
	}
	if err := gs.recorder.RecordMove(ctx, gameID, ply.Seq, ply); err != nil {
		// the move stands; only persistence failed
		log.Errorw("failed to record move", "game", gameID, "seq", ply.Seq, "error", err)
	}
	return ply, nil
}

func (gs *GameService) SetupGame(ctx context.Context, gameID string, placements []model.Placement) error {
	game, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return err
	}
	if gs.recorder == nil {
		return game.Setup(placements)
	}

	gs.recordMu.Lock()
	defer gs.recordMu.Unlock()
	if err := game.Setup(placements); err != nil {
		return err
	}
	return gs.recorder.DeleteGame(ctx, gameID)
}

// History returns the moves of a game, from the recorder when one is
// configured.
func (gs *GameService) History(ctx context.Context, gameID string) ([]model.Move, error) {
	game, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return nil, err
	}
	if gs.recorder == nil {
		return game.History(), nil
	}
	return gs.recorder.Moves(ctx, gameID)
}

func (gs *GameService) RegisterConnection(gameID string, clientID string, conn model.Conn) error {
	return gs.gameManager.RegisterConnection(gameID, clientID, conn)
}

func (gs *GameService) UnregisterConnection(gameID string, clientID string, conn model.Conn) {
	gs.gameManager.UnregisterConnection(gameID, clientID, conn)
}
