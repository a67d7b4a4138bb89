package controller

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/benbeisheim/chessrules-backend/internal/middleware"
	"github.com/benbeisheim/chessrules-backend/internal/model"
	"github.com/benbeisheim/chessrules-backend/internal/service"
	"github.com/benbeisheim/chessrules-backend/internal/ws"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/websocket/v2"
)

type WebSocketController struct {
	gameService *service.GameService
}

func NewWebSocketController(gameService *service.GameService) *WebSocketController {
	return &WebSocketController{
		gameService: gameService,
	}
}

// lockedConn serializes writes; broadcasts and replies share one connection.
type lockedConn struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

func (lc *lockedConn) WriteJSON(v interface{}) error {
	lc.mu.Lock()
	defer lc.mu.Unlock()
	return lc.conn.WriteJSON(v)
}

func (lc *lockedConn) Close() error {
	return lc.conn.Close()
}

// HandleConnection is called when a new WebSocket connection is established
func (wsc *WebSocketController) HandleConnection(c *websocket.Conn) {
	gameID := c.Params("gameId")
	clientID, _ := c.Locals(middleware.ClientIDKey).(string)
	conn := &lockedConn{conn: c}

	if err := wsc.gameService.RegisterConnection(gameID, clientID, conn); err != nil {
		log.Warnw("failed to register connection", "game", gameID, "client", clientID, "error", err)
		wsc.sendError(conn, err)
		c.Close()
		return
	}

	for {
		messageType, message, err := c.ReadMessage()
		if err != nil {
			log.Debugw("websocket read ended", "game", gameID, "client", clientID, "error", err)
			break
		}
		if messageType != websocket.TextMessage {
			continue
		}

		var msg ws.Message
		if err := json.Unmarshal(message, &msg); err != nil {
			wsc.sendError(conn, fmt.Errorf("parse error: %w", err))
			continue
		}

		reply, err := wsc.handleMessage(gameID, msg)
		if err != nil {
			wsc.sendError(conn, err)
			continue
		}
		if reply != nil {
			if err := conn.WriteJSON(reply); err != nil {
				log.Warnw("websocket write failed", "game", gameID, "client", clientID, "error", err)
				break
			}
		}
	}

	wsc.gameService.UnregisterConnection(gameID, clientID, conn)
}

// handleMessage answers one inbound message. Applied moves need no direct
// reply: the game broadcasts its new state to every observer.
func (wsc *WebSocketController) handleMessage(gameID string, msg ws.Message) (*ws.Message, error) {
	switch msg.Type {
	case ws.MessageTypeCheck:
		var move model.Move
		if err := json.Unmarshal(msg.Payload, &move); err != nil {
			return nil, err
		}
		legal, err := wsc.gameService.CheckMove(gameID, move)
		if err != nil {
			return nil, err
		}
		reply, err := ws.NewMessage(ws.MessageTypeVerdict, ws.Verdict{Legal: legal})
		if err != nil {
			return nil, err
		}
		return &reply, nil

	case ws.MessageTypeMove:
		var move model.Move
		if err := json.Unmarshal(msg.Payload, &move); err != nil {
			return nil, err
		}
		_, err := wsc.gameService.HandleMove(context.Background(), gameID, move)
		return nil, err

	default:
		return nil, fmt.Errorf("unknown message type: %s", msg.Type)
	}
}

func (wsc *WebSocketController) sendError(conn model.Conn, err error) {
	msg, mErr := ws.NewMessage(ws.MessageTypeError, ws.ErrorPayload{Error: err.Error()})
	if mErr != nil {
		return
	}
	if wErr := conn.WriteJSON(msg); wErr != nil {
		log.Debugw("failed to send error", "error", wErr)
	}
}
