package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dhiyaancnirmal/boerd/internal/models"
	"github.com/dhiyaancnirmal/boerd/internal/slug"
	"gorm.io/gorm"
)

const previewBlocks = 5

// BoardBlock is a block as it appears on a board
type BoardBlock struct {
	models.Block
	Position    int       `json:"position"`
	ConnectedAt time.Time `json:"connectedAt"`
}

// BoardDetail is a board with its owner and ordered blocks
type BoardDetail struct {
	models.Board
	Blocks []BoardBlock `json:"blocks"`
}

// BoardSummary is a board with a handful of preview blocks and its total block count
type BoardSummary struct {
	models.Board
	BlockCount    int64          `json:"blockCount"`
	PreviewBlocks []models.Block `json:"previewBlocks"`
}

// BoardUpdate holds the editable board fields. Nil fields are left alone.
type BoardUpdate struct {
	Title       *string             `json:"title"`
	Description *string             `json:"description"`
	Status      *models.BoardStatus `json:"status"`
}

// CreateBoard creates a board with a slug unique among the user's boards.
// An empty status defaults to private.
func CreateBoard(ctx context.Context, db *gorm.DB, userID, title string, description *string, status models.BoardStatus) (*models.Board, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if status == "" {
		status = models.BoardPrivate
	}
	if !status.Valid() {
		return nil, fmt.Errorf("%w: status must be public or private", ErrInvalidInput)
	}

	var board *models.Board
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var users int64
		if err := silent(tx).Model(&models.User{}).Where("id = ?", userID).Count(&users).Error; err != nil {
			return err
		}
		if users == 0 {
			return ErrNotFound
		}

		var existing []string
		if err := silent(tx).Model(&models.Board{}).Where("user_id = ?", userID).Pluck("slug", &existing).Error; err != nil {
			return err
		}

		board = &models.Board{
			Slug:        slug.GenerateUnique(title, existing),
			Title:       title,
			Description: description,
			Status:      status,
			UserID:      userID,
		}
		if err := tx.Create(board).Error; err != nil {
			return fmt.Errorf("failed to create board: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return board, nil
}

// UpdateBoard applies changes to a board. A new title re-derives the slug against
// the owner's other boards.
func UpdateBoard(ctx context.Context, db *gorm.DB, id string, update BoardUpdate) (*models.Board, error) {
	var board models.Board

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := silent(tx).Where("id = ?", id).First(&board).Error; err != nil {
			return notFound(err)
		}

		changes := map[string]interface{}{"updated_at": time.Now().UTC()}

		if update.Title != nil {
			title := strings.TrimSpace(*update.Title)
			if title == "" {
				return fmt.Errorf("%w: title must not be empty", ErrInvalidInput)
			}

			var others []string
			if err := silent(tx).Model(&models.Board{}).
				Where("user_id = ? AND id <> ?", board.UserID, board.ID).
				Pluck("slug", &others).Error; err != nil {
				return err
			}

			changes["title"] = title
			changes["slug"] = slug.GenerateUnique(title, others)
		}
		if update.Description != nil {
			changes["description"] = *update.Description
		}
		if update.Status != nil {
			if !update.Status.Valid() {
				return fmt.Errorf("%w: status must be public or private", ErrInvalidInput)
			}
			changes["status"] = *update.Status
		}

		if err := tx.Model(&board).Updates(changes).Error; err != nil {
			return fmt.Errorf("failed to update board: %w", err)
		}
		return silent(tx).Where("id = ?", id).First(&board).Error
	})
	if err != nil {
		return nil, err
	}

	return &board, nil
}

// DeleteBoard removes a board and its connections. Blocks are kept.
func DeleteBoard(ctx context.Context, db *gorm.DB, id string) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockBoard(tx, id); err != nil {
			return err
		}
		if err := tx.Where("board_id = ?", id).Delete(&models.Connection{}).Error; err != nil {
			return fmt.Errorf("failed to delete board connections: %w", err)
		}
		if err := tx.Where("id = ?", id).Delete(&models.Board{}).Error; err != nil {
			return fmt.Errorf("failed to delete board: %w", err)
		}
		return nil
	})
}

// GetBoardBySlug finds a user's board by slug, with its blocks in position order
func GetBoardBySlug(ctx context.Context, db *gorm.DB, username, boardSlug string) (*BoardDetail, error) {
	user, err := GetUserByUsername(ctx, db, username)
	if err != nil {
		return nil, err
	}

	var board models.Board
	if err := silent(db.WithContext(ctx)).
		Where("user_id = ? AND slug = ?", user.ID, boardSlug).
		First(&board).Error; err != nil {
		return nil, notFound(err)
	}
	board.User = user

	return withBlocks(ctx, db, board)
}

// GetBoard finds a board row without its blocks
func GetBoard(ctx context.Context, db *gorm.DB, id string) (*models.Board, error) {
	var board models.Board
	if err := silent(db.WithContext(ctx)).Where("id = ?", id).First(&board).Error; err != nil {
		return nil, notFound(err)
	}
	return &board, nil
}

// GetBoardByID finds a board with its owner and ordered blocks
func GetBoardByID(ctx context.Context, db *gorm.DB, id string) (*BoardDetail, error) {
	var board models.Board
	if err := silent(db.WithContext(ctx)).Preload("User").Where("id = ?", id).First(&board).Error; err != nil {
		return nil, notFound(err)
	}

	return withBlocks(ctx, db, board)
}

// GetUserBoards lists a user's boards, most recently updated first
func GetUserBoards(ctx context.Context, db *gorm.DB, username string) ([]BoardSummary, error) {
	user, err := GetUserByUsername(ctx, db, username)
	if err != nil {
		return nil, err
	}

	var boards []models.Board
	if err := silent(db.WithContext(ctx)).
		Where("user_id = ?", user.ID).
		Order("updated_at DESC").
		Find(&boards).Error; err != nil {
		return nil, err
	}
	for i := range boards {
		boards[i].User = user
	}

	return withPreviews(ctx, db, boards)
}

// GetPublicBoards lists public boards, most recently updated first
func GetPublicBoards(ctx context.Context, db *gorm.DB, limit int) ([]BoardSummary, error) {
	if limit <= 0 {
		limit = 50
	}

	var boards []models.Board
	if err := silent(db.WithContext(ctx)).
		Preload("User").
		Where("status = ?", models.BoardPublic).
		Order("updated_at DESC").
		Limit(limit).
		Find(&boards).Error; err != nil {
		return nil, err
	}

	return withPreviews(ctx, db, boards)
}

func withBlocks(ctx context.Context, db *gorm.DB, board models.Board) (*BoardDetail, error) {
	conns, err := ListBoardBlocks(ctx, db, board.ID)
	if err != nil {
		return nil, err
	}

	detail := &BoardDetail{Board: board, Blocks: make([]BoardBlock, 0, len(conns))}
	for _, conn := range conns {
		if conn.Block == nil {
			continue
		}
		detail.Blocks = append(detail.Blocks, BoardBlock{
			Block:       *conn.Block,
			Position:    conn.Position,
			ConnectedAt: conn.ConnectedAt,
		})
	}
	return detail, nil
}

func withPreviews(ctx context.Context, db *gorm.DB, boards []models.Board) ([]BoardSummary, error) {
	summaries := make([]BoardSummary, 0, len(boards))
	q := silent(db.WithContext(ctx))

	for _, board := range boards {
		var conns []models.Connection
		if err := orderedConnections(q, "boerd:board-previews").
			Preload("Block").
			Where("board_id = ?", board.ID).
			Limit(previewBlocks).
			Find(&conns).Error; err != nil {
			return nil, fmt.Errorf("failed to load previews for board %s: %w", board.ID, err)
		}

		var count int64
		if err := q.Model(&models.Connection{}).Where("board_id = ?", board.ID).Count(&count).Error; err != nil {
			return nil, err
		}

		summary := BoardSummary{Board: board, BlockCount: count, PreviewBlocks: make([]models.Block, 0, len(conns))}
		for _, conn := range conns {
			if conn.Block != nil {
				summary.PreviewBlocks = append(summary.PreviewBlocks, *conn.Block)
			}
		}
		summaries = append(summaries, summary)
	}

	return summaries, nil
}
