package controller

import (
	"github.com/benbeisheim/chessrules-backend/internal/model"
	"github.com/benbeisheim/chessrules-backend/internal/service"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

type GameController struct {
	gameService *service.GameService
}

func NewGameController(gameService *service.GameService) *GameController {
	return &GameController{gameService: gameService}
}

// Register mounts the game routes on router.
func (gc *GameController) Register(router fiber.Router) {
	router.Post("/create", gc.CreateGame)
	router.Get("/:gameId", gc.GetGameState)
	router.Post("/:gameId/check", gc.CheckMove)
	router.Post("/:gameId/move", gc.MakeMove)
	router.Put("/:gameId/setup", gc.SetupGame)
	router.Get("/:gameId/history", gc.GetHistory)
}

func (gc *GameController) CreateGame(c *fiber.Ctx) error {
	gameID, name, err := gc.gameService.CreateGame()
	if err != nil {
		log.Errorf("create game: %v", err)
		return replyError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Game created",
		"game_id": gameID,
		"name":    name,
	})
}

func (gc *GameController) GetGameState(c *fiber.Ctx) error {
	gameState, err := gc.gameService.GetGameState(c.Params("gameId"))
	if err != nil {
		return replyError(c, err)
	}
	return c.JSON(gameState)
}

func (gc *GameController) CheckMove(c *fiber.Ctx) error {
	var move model.Move
	if err := c.BodyParser(&move); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid move body",
		})
	}

	legal, err := gc.gameService.CheckMove(c.Params("gameId"), move)
	if err != nil {
		return replyError(c, err)
	}
	return c.JSON(fiber.Map{
		"legal": legal,
	})
}

func (gc *GameController) MakeMove(c *fiber.Ctx) error {
	var move model.Move
	if err := c.BodyParser(&move); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid move body",
		})
	}

	ply, err := gc.gameService.HandleMove(c.UserContext(), c.Params("gameId"), move)
	if err != nil {
		return replyError(c, err)
	}
	return c.JSON(ply)
}

func (gc *GameController) SetupGame(c *fiber.Ctx) error {
	var body struct {
		Placements []model.Placement `json:"placements"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid setup body",
		})
	}

	gameID := c.Params("gameId")
	if err := gc.gameService.SetupGame(c.UserContext(), gameID, body.Placements); err != nil {
		return replyError(c, err)
	}

	gameState, err := gc.gameService.GetGameState(gameID)
	if err != nil {
		return replyError(c, err)
	}
	return c.JSON(gameState)
}

func (gc *GameController) GetHistory(c *fiber.Ctx) error {
	moves, err := gc.gameService.History(c.UserContext(), c.Params("gameId"))
	if err != nil {
		return replyError(c, err)
	}
	return c.JSON(fiber.Map{
		"moves": moves,
	})
}
