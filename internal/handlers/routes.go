package handlers

import (
	"github.com/dhiyaancnirmal/boerd/internal/config"
	"github.com/dhiyaancnirmal/boerd/internal/middleware"
	"github.com/dhiyaancnirmal/boerd/internal/services"
	"github.com/dhiyaancnirmal/boerd/internal/storage"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Dependencies are the collaborators the route handlers share
type Dependencies struct {
	Config   *config.Config
	DB       *gorm.DB
	Storage  storage.Adapter
	Ingestor *services.Ingestor
}

// RegisterRoutes mounts /health and the /api routes on app
func RegisterRoutes(app *fiber.App, deps Dependencies) {
	health := &HealthHandler{Config: deps.Config, DB: deps.DB, Storage: deps.Storage}
	app.Get("/health", health.Health)

	api := app.Group("/api")
	api.Use(middleware.VersionMiddleware())

	acting := middleware.ActingUser(deps.DB, deps.Config.DefaultUsername)

	users := &UserHandler{DB: deps.DB}
	boards := &BoardHandler{DB: deps.DB}
	conns := &ConnectionHandler{DB: deps.DB}
	blocks := &BlockHandler{DB: deps.DB, Ingestor: deps.Ingestor, Storage: deps.Storage}
	upload := &UploadHandler{DB: deps.DB, Ingestor: deps.Ingestor, MaxBytes: deps.Config.UploadMaxBytes}
	feed := &FeedHandler{DB: deps.DB}

	api.Get("/users/:username", users.GetProfile)
	api.Get("/users/:username/boards", boards.GetUserBoards)
	api.Get("/users/:username/boards/:slug", boards.GetUserBoard)
	api.Get("/users/:username/blocks", blocks.ListUserBlocks)

	api.Get("/boards", boards.GetPublicBoards)
	api.Post("/boards", acting, boards.CreateBoard)
	api.Get("/boards/:id", boards.GetBoard)
	api.Patch("/boards/:id", acting, boards.UpdateBoard)
	api.Delete("/boards/:id", acting, boards.DeleteBoard)

	api.Post("/boards/:id/connections", acting, conns.Connect)
	api.Delete("/boards/:id/connections/:blockId", acting, conns.Disconnect)
	api.Put("/boards/:id/connections/:blockId/position", acting, conns.Move)
	api.Put("/boards/:id/order", acting, conns.Reorder)

	api.Get("/blocks", blocks.ListBlocks)
	api.Post("/blocks", acting, blocks.CreateBlock)
	api.Get("/blocks/:id", blocks.GetBlock)
	api.Patch("/blocks/:id", acting, blocks.UpdateBlock)
	api.Delete("/blocks/:id", acting, blocks.DeleteBlock)
	api.Get("/blocks/:id/boards", blocks.GetBlockBoards)

	api.Post("/upload", acting, upload.Upload)

	api.Get("/feed", feed.GetFeed)
	api.Get("/explore", feed.GetExplore)
}
