// service/game_manager.go
package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/benbeisheim/chessrules-backend/internal/model"
	"github.com/gofiber/fiber/v2/log"
)

var (
	ErrGameNotFound = errors.New("game not found")
	ErrGameExists   = errors.New("game already exists")
)

type GameManager struct {
	games map[string]*model.Game
	mu    sync.RWMutex
}

func NewGameManager() *GameManager {
	return &GameManager{
		games: make(map[string]*model.Game),
	}
}

func (gm *GameManager) CreateGame(gameID, name string) (*model.Game, error) {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	if _, exists := gm.games[gameID]; exists {
		return nil, fmt.Errorf("%w: %s", ErrGameExists, gameID)
	}

	game := model.NewGame(gameID, name)
	gm.games[gameID] = game
	log.Infow("game created", "game", gameID, "name", name)
	return game, nil
}

func (gm *GameManager) GetGame(gameID string) (*model.Game, error) {
	gm.mu.RLock()
	defer gm.mu.RUnlock()

	game, exists := gm.games[gameID]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrGameNotFound, gameID)
	}

	return game, nil
}

func (gm *GameManager) RemoveGame(gameID string) bool {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	if _, exists := gm.games[gameID]; !exists {
		return false
	}
	delete(gm.games, gameID)
	return true
}

func (gm *GameManager) Count() int {
	gm.mu.RLock()
	defer gm.mu.RUnlock()
	return len(gm.games)
}

func (gm *GameManager) GetGameState(gameID string) (model.GameState, error) {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return model.GameState{}, err
	}
	return game.GetState(), nil
}

func (gm *GameManager) CheckMove(gameID string, move model.Move) (bool, error) {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return false, err
	}
	return game.CheckMove(move)
}

func (gm *GameManager) MakeMove(gameID string, move model.Move) (model.Ply, error) {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return model.Ply{}, err
	}
	return game.MakeMove(move)
}

func (gm *GameManager) RegisterConnection(gameID string, clientID string, conn model.Conn) error {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return err
	}
	return game.RegisterConnection(clientID, conn)
}

func (gm *GameManager) UnregisterConnection(gameID string, clientID string, conn model.Conn) {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return
	}
	game.UnregisterConnection(clientID, conn)
}

// CleanIdleGames removes games nobody has touched for maxIdle and that have no
// open connections, checking every interval until ctx is done.
func (gm *GameManager) CleanIdleGames(ctx context.Context, interval, maxIdle time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := gm.removeIdle(maxIdle); n > 0 {
				log.Infow("removed idle games", "count", n)
			}
		}
	}
}

func (gm *GameManager) removeIdle(maxIdle time.Duration) int {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	removed := 0
	for id, game := range gm.games {
		if game.ConnectionCount() == 0 && game.IdleFor() > maxIdle {
			delete(gm.games, id)
			removed++
			log.Debugw("game idle, removing", "game", id)
		}
	}
	return removed
}
