// common.go
//
// Boerd: collect and organize mixed-media content on boards
// Copyright (c) 2026 The Boerd Authors (https://github.com/dhiyaancnirmal/boerd)
//
// This file is part of boerd.
// boerd is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// boerd is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with boerd.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 The Boerd Authors (https://github.com/dhiyaancnirmal/boerd)"
//    in this material, copies, or source code of derived works.

package handlers

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/dhiyaancnirmal/boerd/internal/middleware"
	"github.com/dhiyaancnirmal/boerd/internal/models"
	"github.com/dhiyaancnirmal/boerd/internal/services"
	"github.com/dhiyaancnirmal/boerd/internal/types"
	"github.com/dhiyaancnirmal/boerd/internal/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

const maxListLimit = 200

// ErrorHandler renders every error that reaches Fiber in the standard envelope.
// CustomError and fiber.Error carry their own status.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := err.Error()
	errorType := "unknown"

	var custom *types.CustomError
	var fiberErr *fiber.Error
	switch {
	case errors.As(err, &custom):
		code = custom.Code
		message = custom.Message
		errorType = custom.Type
	case errors.As(err, &fiberErr):
		code = fiberErr.Code
		message = fiberErr.Message
		if code == fiber.StatusRequestEntityTooLarge {
			errorType = "upload.validation.size"
		}
	}

	if code >= fiber.StatusInternalServerError {
		zerolog.Ctx(c.UserContext()).Error().Err(err).Int("status", code).Msg("request failed")
	}

	return c.Status(code).JSON(utils.ErrorResponseStruct{
		Status:    code,
		Message:   message,
		Ok:        false,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		URL:       c.OriginalURL(),
		Type:      errorType,
	})
}

// NotFound is the fallback for unmatched routes
func NotFound(c *fiber.Ctx) error {
	return utils.NotFoundResponse(c, "[404] Resource Not Found")
}

// serviceError maps service sentinels onto HTTP responses.
// notFoundMessage is used for ErrNotFound, errorType for the rest.
func serviceError(c *fiber.Ctx, err error, notFoundMessage, errorType string) error {
	switch {
	case errors.Is(err, services.ErrNotFound):
		return utils.NotFoundResponse(c, notFoundMessage)
	case errors.Is(err, services.ErrAlreadyConnected):
		return utils.ConflictResponse(c, "Block is already connected to this board", "connection.exists")
	case errors.Is(err, services.ErrInvalidInput):
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest, errorType+".validation.input")
	}

	zerolog.Ctx(c.UserContext()).Error().Err(err).Str("type", errorType).Msg("service call failed")
	return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, errorType)
}

// lookupError turns a failed lookup into an error for ErrorHandler, for callers
// that have not written a response yet
func lookupError(err error, notFoundMessage string) error {
	if errors.Is(err, services.ErrNotFound) {
		return types.NewCustomError(fiber.StatusNotFound, "", "%s", notFoundMessage)
	}
	return err
}

// badRequest answers 400 with a validation error type
func badRequest(c *fiber.Ctx, errorType, format string, args ...interface{}) error {
	return utils.ErrorResponse(c, fmt.Sprintf(format, args...), fiber.StatusBadRequest, errorType+".validation.input")
}

// queryLimit reads ?limit=, falling back to def and capping at maxListLimit
func queryLimit(c *fiber.Ctx, def int) int {
	raw := c.Query("limit")
	if raw == "" {
		return def
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit <= 0 {
		return def
	}
	return min(limit, maxListLimit)
}

// requireOwner refuses the request unless the acting user owns the resource
func requireOwner(c *fiber.Ctx, ownerID, errorType string) error {
	user := middleware.CurrentUser(c)
	if user == nil || user.ID != ownerID {
		return types.NewCustomError(fiber.StatusForbidden, errorType+".authorization.owner", "Only the owner may change this %s", errorType)
	}
	return nil
}

// actingUser returns the user resolved by middleware.ActingUser
func actingUser(c *fiber.Ctx) (*models.User, error) {
	user := middleware.CurrentUser(c)
	if user == nil {
		return nil, types.NewCustomError(fiber.StatusForbidden, "data.authorization.user", "No acting user")
	}
	return user, nil
}
