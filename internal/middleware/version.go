package middleware

import (
	"strings"

	"github.com/dhiyaancnirmal/boerd/internal/types"
	"github.com/gofiber/fiber/v2"
)

const (
	VersionHeader  = "X-Api-Version"
	CurrentVersion = "1.0.0"
)

// VersionMiddleware resolves X-Api-Version, rejects majors this server does not serve,
// and echoes the served version on the response
func VersionMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		version, ok := resolveVersion(c.Get(VersionHeader))
		if !ok {
			return types.NewCustomError(fiber.StatusBadRequest, "api.version",
				"Unsupported API version %q, this server speaks %s", c.Get(VersionHeader), CurrentVersion)
		}

		c.Locals("apiVersion", version)
		c.Set(VersionHeader, version)
		return c.Next()
	}
}

// APIVersion is the version resolved for this request
func APIVersion(c *fiber.Ctx) string {
	if v, ok := c.Locals("apiVersion").(string); ok {
		return v
	}
	return CurrentVersion
}

// resolveVersion accepts "", "1", "1.0", "v1" and any full 1.x.y
func resolveVersion(requested string) (string, bool) {
	v := strings.TrimPrefix(strings.TrimSpace(requested), "v")
	switch v {
	case "", "1", "1.0":
		return CurrentVersion, true
	}
	parts := strings.Split(v, ".")
	if parts[0] != "1" || len(parts) > 3 {
		return "", false
	}
	if len(parts) == 2 {
		v += ".0"
	}
	return v, true
}
