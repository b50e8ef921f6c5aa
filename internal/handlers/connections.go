package handlers

import (
	"fmt"
	"strings"

	"github.com/dhiyaancnirmal/boerd/internal/services"
	"github.com/dhiyaancnirmal/boerd/internal/types"
	"github.com/dhiyaancnirmal/boerd/internal/utils"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ConnectionHandler handles block membership and ordering on boards.
// Every route requires the acting user to own the board.
type ConnectionHandler struct {
	DB *gorm.DB
}

// ConnectRequest is the body of POST /api/boards/:id/connections
type ConnectRequest struct {
	BlockID string `json:"blockId"`
}

// MoveRequest is the body of PUT /api/boards/:id/connections/:blockId/position
type MoveRequest struct {
	Position *types.FlexInt `json:"position" swaggertype:"integer"`
}

// ReorderRequest is the body of PUT /api/boards/:id/order
type ReorderRequest struct {
	BlockIDs types.FlexList[string] `json:"blockIds" swaggertype:"array,string"`
}

// Connect handles POST /api/boards/:id/connections
// @Summary Connect a block
// @Description Append a block to the end of a board
// @Tags Connections
// @Accept json
// @Produce json
// @Param X-Boerd-User header string false "Acting username"
// @Param id path string true "Board ID"
// @Param connection body ConnectRequest true "Block to connect"
// @Success 201 {object} models.Connection
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 409 {object} utils.ErrorResponseStruct
// @Router /boards/{id}/connections [post]
func (h *ConnectionHandler) Connect(c *fiber.Ctx) error {
	boardID := c.Params("id")
	if err := authorizeBoard(c, h.DB, boardID); err != nil {
		return err
	}

	var req ConnectRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "connection", "Invalid request body: %v", err)
	}
	if strings.TrimSpace(req.BlockID) == "" {
		return badRequest(c, "connection", "blockId is required")
	}

	conn, err := services.ConnectBlock(c.UserContext(), h.DB, req.BlockID, boardID)
	if err != nil {
		return serviceError(c, err, fmt.Sprintf("Block '%s' not found", req.BlockID), "connection")
	}

	return utils.SuccessResponse(c, conn, fiber.StatusCreated)
}

// Disconnect handles DELETE /api/boards/:id/connections/:blockId
// @Summary Disconnect a block
// @Description Remove a block from a board and close the gap. Missing connections are not an error.
// @Tags Connections
// @Produce json
// @Param X-Boerd-User header string false "Acting username"
// @Param id path string true "Board ID"
// @Param blockId path string true "Block ID"
// @Success 200 {object} utils.DeletedResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /boards/{id}/connections/{blockId} [delete]
func (h *ConnectionHandler) Disconnect(c *fiber.Ctx) error {
	boardID := c.Params("id")
	blockID := c.Params("blockId")
	if err := authorizeBoard(c, h.DB, boardID); err != nil {
		return err
	}

	if err := services.DisconnectBlock(c.UserContext(), h.DB, blockID, boardID); err != nil {
		return serviceError(c, err, "", "connection")
	}

	return utils.DeletedResponse(c, blockID)
}

// Move handles PUT /api/boards/:id/connections/:blockId/position
// @Summary Move a block
// @Description Move a connected block to a new position, shifting the blocks between
// @Tags Connections
// @Accept json
// @Produce json
// @Param X-Boerd-User header string false "Acting username"
// @Param id path string true "Board ID"
// @Param blockId path string true "Block ID"
// @Param position body MoveRequest true "New position"
// @Success 200 {array} models.Connection
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /boards/{id}/connections/{blockId}/position [put]
func (h *ConnectionHandler) Move(c *fiber.Ctx) error {
	boardID := c.Params("id")
	blockID := c.Params("blockId")
	if err := authorizeBoard(c, h.DB, boardID); err != nil {
		return err
	}

	var req MoveRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "connection", "Invalid request body: %v", err)
	}
	if req.Position == nil {
		return badRequest(c, "connection", "position is required")
	}

	if err := services.MoveBlock(c.UserContext(), h.DB, blockID, boardID, req.Position.Int()); err != nil {
		return serviceError(c, err, fmt.Sprintf("Block '%s' is not on board '%s'", blockID, boardID), "connection")
	}

	return h.order(c, boardID)
}

// Reorder handles PUT /api/boards/:id/order
// @Summary Reorder a board
// @Description Assign position = index for each listed block. Unlisted and unknown blocks are left alone.
// @Tags Connections
// @Accept json
// @Produce json
// @Param X-Boerd-User header string false "Acting username"
// @Param id path string true "Board ID"
// @Param order body ReorderRequest true "Block IDs in their new order"
// @Success 200 {array} models.Connection
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /boards/{id}/order [put]
func (h *ConnectionHandler) Reorder(c *fiber.Ctx) error {
	boardID := c.Params("id")
	if err := authorizeBoard(c, h.DB, boardID); err != nil {
		return err
	}

	var req ReorderRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "connection", "Invalid request body: %v", err)
	}
	if req.BlockIDs.Len() == 0 {
		return badRequest(c, "connection", "blockIds is required")
	}

	if err := services.ReorderBlocks(c.UserContext(), h.DB, boardID, req.BlockIDs.Slice()); err != nil {
		return serviceError(c, err, fmt.Sprintf("Board '%s' not found", boardID), "connection")
	}

	return h.order(c, boardID)
}

// order answers with the board's connections after a change
func (h *ConnectionHandler) order(c *fiber.Ctx, boardID string) error {
	conns, err := services.ListBoardBlocks(c.UserContext(), h.DB, boardID)
	if err != nil {
		return serviceError(c, err, "", "connection")
	}
	for i := range conns {
		conns[i].Block = nil
	}
	return utils.SuccessResponse(c, conns, fiber.StatusOK)
}
