package middleware

import (
	"errors"
	"strings"

	"github.com/dhiyaancnirmal/boerd/internal/models"
	"github.com/dhiyaancnirmal/boerd/internal/services"
	"github.com/dhiyaancnirmal/boerd/internal/types"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

const (
	// UserHeader names the acting user on write requests
	UserHeader = "X-Boerd-User"
	userKey    = "user"
)

// ActingUser resolves the X-Boerd-User header, or defaultUsername when it is absent,
// and stores the user in c.Locals("user"). Unknown users are refused with 403.
func ActingUser(db *gorm.DB, defaultUsername string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		username := strings.TrimSpace(c.Get(UserHeader))
		if username == "" {
			username = defaultUsername
		}
		if username == "" {
			return &types.CustomError{
				Code:    fiber.StatusForbidden,
				Message: "No acting user: send " + UserHeader + " or configure DEFAULT_USERNAME",
				Type:    "data.authorization.user",
			}
		}

		user, err := services.GetUserByUsername(c.UserContext(), db, username)
		if err != nil {
			if errors.Is(err, services.ErrNotFound) {
				return types.NewCustomError(fiber.StatusForbidden, "data.authorization.user", "Unknown user %q", username)
			}
			return err
		}

		c.Locals(userKey, user)
		zerolog.Ctx(c.UserContext()).UpdateContext(func(ctx zerolog.Context) zerolog.Context {
			return ctx.Str("user", user.Username)
		})

		return c.Next()
	}
}

// CurrentUser returns the user stored by ActingUser, or nil
func CurrentUser(c *fiber.Ctx) *models.User {
	user, _ := c.Locals(userKey).(*models.User)
	return user
}
