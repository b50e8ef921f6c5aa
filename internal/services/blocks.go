package services

import (
	"context"
	"fmt"
	"time"

	"github.com/dhiyaancnirmal/boerd/internal/models"
	"github.com/dhiyaancnirmal/boerd/internal/storage"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// BlockUpdate holds the editable block fields. Nil fields are left alone.
type BlockUpdate struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
}

// GetBlock finds a block with its owner
func GetBlock(ctx context.Context, db *gorm.DB, id string) (*models.Block, error) {
	var block models.Block
	if err := silent(db.WithContext(ctx)).Preload("User").Where("id = ?", id).First(&block).Error; err != nil {
		return nil, notFound(err)
	}
	return &block, nil
}

// UpdateBlock edits a block's title and description
func UpdateBlock(ctx context.Context, db *gorm.DB, id string, update BlockUpdate) (*models.Block, error) {
	changes := map[string]interface{}{"updated_at": time.Now().UTC()}
	if update.Title != nil {
		changes["title"] = *update.Title
	}
	if update.Description != nil {
		changes["description"] = *update.Description
	}

	result := db.WithContext(ctx).Model(&models.Block{}).Where("id = ?", id).Updates(changes)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to update block: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, ErrNotFound
	}

	return GetBlock(ctx, db, id)
}

// DeleteBlock removes a block and its connections, closing the gaps it leaves on
// each board. Stored files no other block references are removed afterwards;
// failures there are logged and ignored.
func DeleteBlock(ctx context.Context, db *gorm.DB, store storage.Adapter, id string) error {
	var block models.Block

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := silent(tx).Where("id = ?", id).First(&block).Error; err != nil {
			return notFound(err)
		}

		// boards are locked in id order so concurrent deletes cannot deadlock
		var conns []models.Connection
		if err := silent(tx).Where("block_id = ?", id).Order("board_id ASC").Find(&conns).Error; err != nil {
			return err
		}

		for _, conn := range conns {
			if err := lockBoard(tx, conn.BoardID); err != nil {
				return err
			}
			if err := tx.Delete(&conn).Error; err != nil {
				return fmt.Errorf("failed to disconnect block: %w", err)
			}
			if err := compact(tx, conn.BoardID, conn.Position); err != nil {
				return err
			}
			if err := touchBoard(tx, conn.BoardID); err != nil {
				return err
			}
		}

		if err := tx.Delete(&block).Error; err != nil {
			return fmt.Errorf("failed to delete block: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	if store != nil {
		removeAssets(ctx, db, store, block.AssetPath, block.ThumbnailPath)
	}
	return nil
}

// removeAssets deletes stored files unless another block still points at them.
// Uploads are keyed by content hash, so identical files share one object.
func removeAssets(ctx context.Context, db *gorm.DB, store storage.Adapter, paths ...*string) {
	log := zerolog.Ctx(ctx)
	for _, p := range paths {
		if p == nil || *p == "" {
			continue
		}

		var refs int64
		if err := silent(db.WithContext(ctx)).Model(&models.Block{}).
			Where("asset_path = ? OR thumbnail_path = ?", *p, *p).
			Count(&refs).Error; err != nil {
			log.Warn().Err(err).Str("path", *p).Msg("failed to count asset references")
			continue
		}
		if refs > 0 {
			continue
		}

		if err := store.Delete(ctx, *p); err != nil {
			log.Warn().Err(err).Str("path", *p).Msg("failed to delete stored asset")
		}
	}
}

// GetBlockBoards returns every board the block is connected to
func GetBlockBoards(ctx context.Context, db *gorm.DB, blockID string) ([]models.Board, error) {
	var conns []models.Connection
	if err := silent(db.WithContext(ctx)).
		Preload("Board.User").
		Where("block_id = ?", blockID).
		Order("connected_at ASC").
		Find(&conns).Error; err != nil {
		return nil, err
	}

	boards := make([]models.Board, 0, len(conns))
	for _, conn := range conns {
		if conn.Board != nil {
			boards = append(boards, *conn.Board)
		}
	}
	return boards, nil
}

// GetRecentBlocks lists the newest blocks across all users
func GetRecentBlocks(ctx context.Context, db *gorm.DB, limit int) ([]models.Block, error) {
	return listBlocks(ctx, db, "", limit)
}

// GetUserBlocks lists a user's newest blocks
func GetUserBlocks(ctx context.Context, db *gorm.DB, userID string, limit int) ([]models.Block, error) {
	return listBlocks(ctx, db, userID, limit)
}

func listBlocks(ctx context.Context, db *gorm.DB, userID string, limit int) ([]models.Block, error) {
	if limit <= 0 {
		limit = 50
	}

	q := silent(db.WithContext(ctx)).Preload("User").Order("created_at DESC").Limit(limit)
	if userID != "" {
		q = q.Where("user_id = ?", userID)
	}

	blocks := []models.Block{}
	if err := q.Find(&blocks).Error; err != nil {
		return nil, fmt.Errorf("failed to list blocks: %w", err)
	}
	return blocks, nil
}
