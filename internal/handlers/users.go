package handlers

import (
	"fmt"

	"github.com/dhiyaancnirmal/boerd/internal/services"
	"github.com/dhiyaancnirmal/boerd/internal/utils"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// UserHandler handles user profile routes
type UserHandler struct {
	DB *gorm.DB
}

// GetProfile handles GET /api/users/:username
// @Summary User profile
// @Description A user with board and block counts
// @Tags Users
// @Produce json
// @Param username path string true "Username"
// @Success 200 {object} services.UserProfile
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /users/{username} [get]
func (h *UserHandler) GetProfile(c *fiber.Ctx) error {
	username := c.Params("username")

	profile, err := services.GetUserProfile(c.UserContext(), h.DB, username)
	if err != nil {
		return serviceError(c, err, fmt.Sprintf("User '%s' not found", username), "user")
	}
	return utils.SuccessResponse(c, profile, fiber.StatusOK)
}
