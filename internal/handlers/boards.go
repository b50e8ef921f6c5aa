package handlers

import (
	"fmt"

	"github.com/dhiyaancnirmal/boerd/internal/models"
	"github.com/dhiyaancnirmal/boerd/internal/services"
	"github.com/dhiyaancnirmal/boerd/internal/utils"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// BoardHandler handles board routes
type BoardHandler struct {
	DB *gorm.DB
}

// CreateBoardRequest is the body of POST /api/boards
type CreateBoardRequest struct {
	Title       string             `json:"title"`
	Description *string            `json:"description"`
	Status      models.BoardStatus `json:"status"`
}

// CreateBoard handles POST /api/boards
// @Summary Create a board
// @Description Create a board owned by the acting user. The slug is derived from the title.
// @Tags Boards
// @Accept json
// @Produce json
// @Param X-Boerd-User header string false "Acting username"
// @Param board body CreateBoardRequest true "Board"
// @Success 201 {object} models.Board
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /boards [post]
func (h *BoardHandler) CreateBoard(c *fiber.Ctx) error {
	user, err := actingUser(c)
	if err != nil {
		return err
	}

	var req CreateBoardRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "board", "Invalid request body: %v", err)
	}

	board, err := services.CreateBoard(c.UserContext(), h.DB, user.ID, req.Title, req.Description, req.Status)
	if err != nil {
		return serviceError(c, err, "User not found", "board")
	}

	return utils.SuccessResponse(c, board, fiber.StatusCreated)
}

// GetBoard handles GET /api/boards/:id
// @Summary Get a board
// @Description Get a board with its owner and blocks in position order
// @Tags Boards
// @Produce json
// @Param id path string true "Board ID"
// @Success 200 {object} services.BoardDetail
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /boards/{id} [get]
func (h *BoardHandler) GetBoard(c *fiber.Ctx) error {
	id := c.Params("id")

	detail, err := services.GetBoardByID(c.UserContext(), h.DB, id)
	if err != nil {
		return serviceError(c, err, fmt.Sprintf("Board '%s' not found", id), "board")
	}

	return utils.SuccessResponse(c, detail, fiber.StatusOK)
}

// UpdateBoard handles PATCH /api/boards/:id
// @Summary Update a board
// @Description Change title, description or status. A new title re-derives the slug.
// @Tags Boards
// @Accept json
// @Produce json
// @Param X-Boerd-User header string false "Acting username"
// @Param id path string true "Board ID"
// @Param board body services.BoardUpdate true "Changes"
// @Success 200 {object} models.Board
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /boards/{id} [patch]
func (h *BoardHandler) UpdateBoard(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := authorizeBoard(c, h.DB, id); err != nil {
		return err
	}

	var req services.BoardUpdate
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "board", "Invalid request body: %v", err)
	}

	board, err := services.UpdateBoard(c.UserContext(), h.DB, id, req)
	if err != nil {
		return serviceError(c, err, fmt.Sprintf("Board '%s' not found", id), "board")
	}

	return utils.SuccessResponse(c, board, fiber.StatusOK)
}

// DeleteBoard handles DELETE /api/boards/:id
// @Summary Delete a board
// @Description Delete a board and its connections. Blocks are kept.
// @Tags Boards
// @Produce json
// @Param X-Boerd-User header string false "Acting username"
// @Param id path string true "Board ID"
// @Success 200 {object} utils.DeletedResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /boards/{id} [delete]
func (h *BoardHandler) DeleteBoard(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := authorizeBoard(c, h.DB, id); err != nil {
		return err
	}

	if err := services.DeleteBoard(c.UserContext(), h.DB, id); err != nil {
		return serviceError(c, err, fmt.Sprintf("Board '%s' not found", id), "board")
	}

	return utils.DeletedResponse(c, id)
}

// GetUserBoards handles GET /api/users/:username/boards
// @Summary List a user's boards
// @Description Boards most recently updated first, each with five preview blocks and a block count
// @Tags Boards
// @Produce json
// @Param username path string true "Username"
// @Success 200 {array} services.BoardSummary
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /users/{username}/boards [get]
func (h *BoardHandler) GetUserBoards(c *fiber.Ctx) error {
	username := c.Params("username")

	boards, err := services.GetUserBoards(c.UserContext(), h.DB, username)
	if err != nil {
		return serviceError(c, err, fmt.Sprintf("User '%s' not found", username), "board")
	}

	return utils.SuccessResponse(c, boards, fiber.StatusOK)
}

// GetUserBoard handles GET /api/users/:username/boards/:slug
// @Summary Get a board by slug
// @Description Get a user's board by slug with its blocks in position order
// @Tags Boards
// @Produce json
// @Param username path string true "Username"
// @Param slug path string true "Board slug"
// @Success 200 {object} services.BoardDetail
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /users/{username}/boards/{slug} [get]
func (h *BoardHandler) GetUserBoard(c *fiber.Ctx) error {
	username := c.Params("username")
	slug := c.Params("slug")

	detail, err := services.GetBoardBySlug(c.UserContext(), h.DB, username, slug)
	if err != nil {
		return serviceError(c, err, fmt.Sprintf("Board '%s/%s' not found", username, slug), "board")
	}

	return utils.SuccessResponse(c, detail, fiber.StatusOK)
}

// GetPublicBoards handles GET /api/boards
// @Summary List public boards
// @Description Public boards most recently updated first, with previews and counts
// @Tags Boards
// @Produce json
// @Param limit query int false "Maximum boards (default 50)"
// @Success 200 {array} services.BoardSummary
// @Router /boards [get]
func (h *BoardHandler) GetPublicBoards(c *fiber.Ctx) error {
	boards, err := services.GetPublicBoards(c.UserContext(), h.DB, queryLimit(c, 50))
	if err != nil {
		return serviceError(c, err, "", "board")
	}

	return utils.SuccessResponse(c, boards, fiber.StatusOK)
}

// authorizeBoard loads the board and checks that the acting user owns it
func authorizeBoard(c *fiber.Ctx, db *gorm.DB, id string) error {
	board, err := services.GetBoard(c.UserContext(), db, id)
	if err != nil {
		return lookupError(err, fmt.Sprintf("Board '%s' not found", id))
	}
	return requireOwner(c, board.UserID, "board")
}
