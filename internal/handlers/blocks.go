package handlers

import (
	"fmt"

	"github.com/dhiyaancnirmal/boerd/internal/services"
	"github.com/dhiyaancnirmal/boerd/internal/storage"
	"github.com/dhiyaancnirmal/boerd/internal/utils"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// BlockHandler handles block routes
type BlockHandler struct {
	DB       *gorm.DB
	Ingestor *services.Ingestor
	Storage  storage.Adapter
}

// CreateBlockRequest is the body of POST /api/blocks
type CreateBlockRequest struct {
	Input   string `json:"input"`
	BoardID string `json:"boardId"`
}

// CreateBlock handles POST /api/blocks
// @Summary Create a block from text or a URL
// @Description Classify the input and store it as a block. URLs are enriched with page and oEmbed metadata when available.
// @Tags Blocks
// @Accept json
// @Produce json
// @Param X-Boerd-User header string false "Acting username"
// @Param block body CreateBlockRequest true "Input and optional board"
// @Success 201 {object} models.Block
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /blocks [post]
func (h *BlockHandler) CreateBlock(c *fiber.Ctx) error {
	user, err := actingUser(c)
	if err != nil {
		return err
	}

	var req CreateBlockRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "block", "Invalid request body: %v", err)
	}
	if req.BoardID != "" {
		if err := authorizeBoard(c, h.DB, req.BoardID); err != nil {
			return err
		}
	}

	block, err := h.Ingestor.CreateFromText(c.UserContext(), user.ID, req.Input, req.BoardID)
	if err != nil {
		return serviceError(c, err, fmt.Sprintf("Board '%s' not found", req.BoardID), "block")
	}

	return utils.SuccessResponse(c, block, fiber.StatusCreated)
}

// ListBlocks handles GET /api/blocks
// @Summary List recent blocks
// @Description Newest blocks across all users
// @Tags Blocks
// @Produce json
// @Param limit query int false "Maximum blocks (default 50)"
// @Success 200 {array} models.Block
// @Router /blocks [get]
func (h *BlockHandler) ListBlocks(c *fiber.Ctx) error {
	blocks, err := services.GetRecentBlocks(c.UserContext(), h.DB, queryLimit(c, 50))
	if err != nil {
		return serviceError(c, err, "", "block")
	}
	return utils.SuccessResponse(c, blocks, fiber.StatusOK)
}

// ListUserBlocks handles GET /api/users/:username/blocks
// @Summary List a user's blocks
// @Description Newest blocks owned by the user
// @Tags Blocks
// @Produce json
// @Param username path string true "Username"
// @Param limit query int false "Maximum blocks (default 50)"
// @Success 200 {array} models.Block
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /users/{username}/blocks [get]
func (h *BlockHandler) ListUserBlocks(c *fiber.Ctx) error {
	username := c.Params("username")
	user, err := services.GetUserByUsername(c.UserContext(), h.DB, username)
	if err != nil {
		return serviceError(c, err, fmt.Sprintf("User '%s' not found", username), "block")
	}

	blocks, err := services.GetUserBlocks(c.UserContext(), h.DB, user.ID, queryLimit(c, 50))
	if err != nil {
		return serviceError(c, err, "", "block")
	}
	return utils.SuccessResponse(c, blocks, fiber.StatusOK)
}

// GetBlock handles GET /api/blocks/:id
// @Summary Get a block
// @Tags Blocks
// @Produce json
// @Param id path string true "Block ID"
// @Success 200 {object} models.Block
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /blocks/{id} [get]
func (h *BlockHandler) GetBlock(c *fiber.Ctx) error {
	id := c.Params("id")

	block, err := services.GetBlock(c.UserContext(), h.DB, id)
	if err != nil {
		return serviceError(c, err, fmt.Sprintf("Block '%s' not found", id), "block")
	}
	return utils.SuccessResponse(c, block, fiber.StatusOK)
}

// UpdateBlock handles PATCH /api/blocks/:id
// @Summary Update a block
// @Description Edit a block's title and description
// @Tags Blocks
// @Accept json
// @Produce json
// @Param X-Boerd-User header string false "Acting username"
// @Param id path string true "Block ID"
// @Param block body services.BlockUpdate true "Changes"
// @Success 200 {object} models.Block
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /blocks/{id} [patch]
func (h *BlockHandler) UpdateBlock(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.authorize(c, id); err != nil {
		return err
	}

	var req services.BlockUpdate
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "block", "Invalid request body: %v", err)
	}

	block, err := services.UpdateBlock(c.UserContext(), h.DB, id, req)
	if err != nil {
		return serviceError(c, err, fmt.Sprintf("Block '%s' not found", id), "block")
	}
	return utils.SuccessResponse(c, block, fiber.StatusOK)
}

// DeleteBlock handles DELETE /api/blocks/:id
// @Summary Delete a block
// @Description Delete a block, remove it from every board and release its stored files
// @Tags Blocks
// @Produce json
// @Param X-Boerd-User header string false "Acting username"
// @Param id path string true "Block ID"
// @Success 200 {object} utils.DeletedResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /blocks/{id} [delete]
func (h *BlockHandler) DeleteBlock(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.authorize(c, id); err != nil {
		return err
	}

	if err := services.DeleteBlock(c.UserContext(), h.DB, h.Storage, id); err != nil {
		return serviceError(c, err, fmt.Sprintf("Block '%s' not found", id), "block")
	}
	return utils.DeletedResponse(c, id)
}

// GetBlockBoards handles GET /api/blocks/:id/boards
// @Summary List a block's boards
// @Description Every board the block is connected to
// @Tags Blocks
// @Produce json
// @Param id path string true "Block ID"
// @Success 200 {array} models.Board
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /blocks/{id}/boards [get]
func (h *BlockHandler) GetBlockBoards(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := services.GetBlock(c.UserContext(), h.DB, id); err != nil {
		return serviceError(c, err, fmt.Sprintf("Block '%s' not found", id), "block")
	}

	boards, err := services.GetBlockBoards(c.UserContext(), h.DB, id)
	if err != nil {
		return serviceError(c, err, "", "block")
	}
	return utils.SuccessResponse(c, boards, fiber.StatusOK)
}

func (h *BlockHandler) authorize(c *fiber.Ctx, id string) error {
	block, err := services.GetBlock(c.UserContext(), h.DB, id)
	if err != nil {
		return lookupError(err, fmt.Sprintf("Block '%s' not found", id))
	}
	return requireOwner(c, block.UserID, "block")
}
