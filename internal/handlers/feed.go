package handlers

import (
	"github.com/dhiyaancnirmal/boerd/internal/services"
	"github.com/dhiyaancnirmal/boerd/internal/utils"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// FeedHandler serves the activity feed and the explore page
type FeedHandler struct {
	DB *gorm.DB
}

// GetFeed handles GET /api/feed
// @Summary Activity feed
// @Description Recent connections grouped by board and five-minute slot
// @Tags Feed
// @Produce json
// @Param limit query int false "Maximum entries (default 50)"
// @Success 200 {array} services.ActivityEntry
// @Router /feed [get]
func (h *FeedHandler) GetFeed(c *fiber.Ctx) error {
	entries, err := services.GetRecentActivity(c.UserContext(), h.DB, queryLimit(c, 50))
	if err != nil {
		return serviceError(c, err, "", "feed")
	}
	return utils.SuccessResponse(c, entries, fiber.StatusOK)
}

// GetExplore handles GET /api/explore
// @Summary Explore
// @Description Up to 20 public boards and 20 blocks
// @Tags Feed
// @Produce json
// @Param view query string false "all, channels or blocks"
// @Param sort query string false "recent or random"
// @Success 200 {object} services.ExploreContent
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /explore [get]
func (h *FeedHandler) GetExplore(c *fiber.Ctx) error {
	view := services.ExploreView(c.Query("view"))
	sort := services.ExploreSort(c.Query("sort"))

	content, err := services.GetExploreContent(c.UserContext(), h.DB, view, sort)
	if err != nil {
		return serviceError(c, err, "", "explore")
	}
	return utils.SuccessResponse(c, content, fiber.StatusOK)
}
