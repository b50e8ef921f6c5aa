// connections.go
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

package services

import (
	"context"
	"fmt"
	"time"

	"github.com/dhiyaancnirmal/boerd/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/hints"
)

// ConnectBlock appends a block to the end of a board.
// Returns ErrNotFound when either side is missing and ErrAlreadyConnected
// when the pair exists, leaving the existing row untouched.
func ConnectBlock(ctx context.Context, db *gorm.DB, blockID, boardID string) (*models.Connection, error) {
	var conn *models.Connection
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		conn, err = connectTx(tx, blockID, boardID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return conn, nil
}

// connectTx is ConnectBlock inside a caller's transaction
func connectTx(tx *gorm.DB, blockID, boardID string) (*models.Connection, error) {
	if err := lockBoard(tx, boardID); err != nil {
		return nil, err
	}

	var blocks int64
	if err := silent(tx).Model(&models.Block{}).Where("id = ?", blockID).Count(&blocks).Error; err != nil {
		return nil, err
	}
	if blocks == 0 {
		return nil, ErrNotFound
	}

	var existing int64
	if err := silent(tx).Model(&models.Connection{}).
		Where("block_id = ? AND board_id = ?", blockID, boardID).
		Count(&existing).Error; err != nil {
		return nil, err
	}
	if existing > 0 {
		return nil, ErrAlreadyConnected
	}

	next, err := nextPosition(tx, boardID)
	if err != nil {
		return nil, err
	}

	conn := &models.Connection{BlockID: blockID, BoardID: boardID, Position: next}
	if err := tx.Create(conn).Error; err != nil {
		return nil, fmt.Errorf("failed to connect block: %w", err)
	}

	if err := touchBoard(tx, boardID); err != nil {
		return nil, err
	}
	return conn, nil
}

// DisconnectBlock removes a block from a board and closes the gap it leaves.
// Compaction is deliberate: positions stay dense 0..n-1 after every mutation.
// A missing board or connection is a no-op.
func DisconnectBlock(ctx context.Context, db *gorm.DB, blockID, boardID string) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockBoard(tx, boardID); err != nil {
			if err == ErrNotFound {
				return nil
			}
			return err
		}

		var conn models.Connection
		err := silent(tx).Where("block_id = ? AND board_id = ?", blockID, boardID).First(&conn).Error
		if err != nil {
			if notFound(err) == ErrNotFound {
				return nil
			}
			return err
		}

		if err := tx.Delete(&conn).Error; err != nil {
			return fmt.Errorf("failed to disconnect block: %w", err)
		}

		if err := compact(tx, boardID, conn.Position); err != nil {
			return err
		}

		return touchBoard(tx, boardID)
	})
}

// MoveBlock moves a connected block to newPosition, shifting the blocks in
// between by one. newPosition is clamped to the board's range.
func MoveBlock(ctx context.Context, db *gorm.DB, blockID, boardID string, newPosition int) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockBoard(tx, boardID); err != nil {
			return err
		}

		var conn models.Connection
		if err := silent(tx).Where("block_id = ? AND board_id = ?", blockID, boardID).First(&conn).Error; err != nil {
			return notFound(err)
		}

		var maxPosition int
		if err := silent(tx).Model(&models.Connection{}).
			Where("board_id = ?", boardID).
			Select("COALESCE(MAX(position), 0)").
			Scan(&maxPosition).Error; err != nil {
			return err
		}

		newPosition = max(0, min(newPosition, maxPosition))
		oldPosition := conn.Position
		if newPosition == oldPosition {
			return nil
		}

		shift := tx.Model(&models.Connection{}).Where("board_id = ?", boardID)
		if newPosition > oldPosition {
			shift = shift.Where("position > ? AND position <= ?", oldPosition, newPosition).
				Update("position", gorm.Expr("position - 1"))
		} else {
			shift = shift.Where("position >= ? AND position < ?", newPosition, oldPosition).
				Update("position", gorm.Expr("position + 1"))
		}
		if shift.Error != nil {
			return fmt.Errorf("failed to shift positions: %w", shift.Error)
		}

		if err := tx.Model(&models.Connection{}).Where("id = ?", conn.ID).
			Update("position", newPosition).Error; err != nil {
			return fmt.Errorf("failed to move block: %w", err)
		}

		return touchBoard(tx, boardID)
	})
}

// ReorderBlocks sets position = index for each listed block connected to the board.
// Blocks that are not connected are ignored.
func ReorderBlocks(ctx context.Context, db *gorm.DB, boardID string, blockIDs []string) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockBoard(tx, boardID); err != nil {
			return err
		}

		for i, blockID := range blockIDs {
			if err := tx.Model(&models.Connection{}).
				Where("board_id = ? AND block_id = ?", boardID, blockID).
				Update("position", i).Error; err != nil {
				return fmt.Errorf("failed to reorder block %s: %w", blockID, err)
			}
		}

		return touchBoard(tx, boardID)
	})
}

// ListBoardBlocks returns a board's connections with their blocks, in position order
func ListBoardBlocks(ctx context.Context, db *gorm.DB, boardID string) ([]models.Connection, error) {
	var conns []models.Connection
	err := orderedConnections(silent(db.WithContext(ctx)), "boerd:board-blocks").
		Preload("Block").
		Where("board_id = ?", boardID).
		Find(&conns).Error
	if err != nil {
		return nil, err
	}
	return conns, nil
}

// orderedConnections scopes a connections query to position order, tagged for slow query logs.
// MySQL additionally gets the board index hint.
func orderedConnections(db *gorm.DB, tag string) *gorm.DB {
	q := db.Model(&models.Connection{}).Clauses(hints.Comment("select", tag))
	if db.Dialector.Name() == "mysql" {
		q = q.Clauses(hints.UseIndex("conn_board_idx"))
	}
	return q.Order("position ASC").Order("connected_at ASC")
}

// lockBoard takes a row lock on the board for the rest of the transaction.
// SQLite ignores FOR UPDATE; its database-wide write lock serializes writers instead.
func lockBoard(tx *gorm.DB, boardID string) error {
	var board models.Board
	err := silent(tx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Select("id").
		Where("id = ?", boardID).
		First(&board).Error
	return notFound(err)
}

func nextPosition(tx *gorm.DB, boardID string) (int, error) {
	var next int
	err := silent(tx).Model(&models.Connection{}).
		Clauses(hints.Comment("select", "boerd:next-position")).
		Where("board_id = ?", boardID).
		Select("COALESCE(MAX(position), -1) + 1").
		Scan(&next).Error
	if err != nil {
		return 0, fmt.Errorf("failed to read next position: %w", err)
	}
	return next, nil
}

// compact closes the gap left at position removed
func compact(tx *gorm.DB, boardID string, removed int) error {
	err := tx.Model(&models.Connection{}).
		Where("board_id = ? AND position > ?", boardID, removed).
		Update("position", gorm.Expr("position - 1")).Error
	if err != nil {
		return fmt.Errorf("failed to compact positions: %w", err)
	}
	return nil
}

func touchBoard(tx *gorm.DB, boardID string) error {
	return tx.Model(&models.Board{}).Where("id = ?", boardID).
		UpdateColumn("updated_at", time.Now().UTC()).Error
}
