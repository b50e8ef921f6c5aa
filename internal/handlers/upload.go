package handlers

import (
	"errors"
	"fmt"
	"io"

	"github.com/dhiyaancnirmal/boerd/internal/models"
	"github.com/dhiyaancnirmal/boerd/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// UploadHandler accepts multipart file uploads
type UploadHandler struct {
	DB       *gorm.DB
	Ingestor *services.Ingestor
	MaxBytes int64
}

// UploadResponse is the body of a successful upload
type UploadResponse struct {
	Block *models.Block `json:"block"`
}

// UploadErrorResponse is the body of a failed upload
type UploadErrorResponse struct {
	Error string `json:"error"`
}

// Upload handles POST /api/upload
// @Summary Upload a file
// @Description Store a file as a block. Images get a thumbnail and dimensions.
// @Tags Blocks
// @Accept multipart/form-data
// @Produce json
// @Param X-Boerd-User header string false "Acting username"
// @Param file formData file true "File"
// @Param boardId formData string false "Board to connect the block to"
// @Success 200 {object} UploadResponse
// @Failure 400 {object} UploadErrorResponse
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 404 {object} UploadErrorResponse
// @Failure 500 {object} UploadErrorResponse
// @Router /upload [post]
func (h *UploadHandler) Upload(c *fiber.Ctx) error {
	user, err := actingUser(c)
	if err != nil {
		return err
	}
	log := zerolog.Ctx(c.UserContext())

	header, err := c.FormFile("file")
	if err != nil || header == nil {
		return uploadError(c, fiber.StatusBadRequest, "No file provided")
	}
	if header.Size > h.MaxBytes {
		return uploadError(c, fiber.StatusBadRequest, fmt.Sprintf("File too large (max %dMB)", h.MaxBytes/(1024*1024)))
	}

	boardID := c.FormValue("boardId")
	if boardID != "" {
		if err := authorizeBoard(c, h.DB, boardID); err != nil {
			return err
		}
	}

	f, err := header.Open()
	if err != nil {
		log.Error().Err(err).Msg("failed to open upload")
		return uploadError(c, fiber.StatusInternalServerError, "Upload failed")
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, h.MaxBytes+1))
	if err != nil {
		log.Error().Err(err).Msg("failed to read upload")
		return uploadError(c, fiber.StatusInternalServerError, "Upload failed")
	}
	if int64(len(data)) > h.MaxBytes {
		return uploadError(c, fiber.StatusBadRequest, fmt.Sprintf("File too large (max %dMB)", h.MaxBytes/(1024*1024)))
	}

	block, err := h.Ingestor.CreateFromFile(c.UserContext(), user.ID, services.FileInput{
		Name:     header.Filename,
		MimeType: header.Header.Get("Content-Type"),
		Data:     data,
	}, boardID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidInput):
			return uploadError(c, fiber.StatusBadRequest, "No file provided")
		case errors.Is(err, services.ErrNotFound):
			return uploadError(c, fiber.StatusNotFound, "Board not found")
		}
		log.Error().Err(err).Str("file", header.Filename).Msg("upload failed")
		return uploadError(c, fiber.StatusInternalServerError, "Upload failed")
	}

	return c.Status(fiber.StatusOK).JSON(UploadResponse{Block: block})
}

func uploadError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(UploadErrorResponse{Error: message})
}
