package services

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/dhiyaancnirmal/boerd/internal/models"
	"gorm.io/gorm"
	"gorm.io/hints"
)

const exploreLimit = 20

// ExploreView selects which lists the explore page returns
type ExploreView string

// ExploreSort orders the explore lists
type ExploreSort string

const (
	ExploreAll      ExploreView = "all"
	ExploreChannels ExploreView = "channels"
	ExploreBlocks   ExploreView = "blocks"

	SortRecent ExploreSort = "recent"
	SortRandom ExploreSort = "random"
)

// ExploreContent holds public boards and recent blocks
type ExploreContent struct {
	Boards []models.Board `json:"boerds"`
	Blocks []models.Block `json:"blocks"`
}

// GetExploreContent returns up to 20 public boards and 20 blocks.
// Empty view and sort default to all and recent.
func GetExploreContent(ctx context.Context, db *gorm.DB, view ExploreView, sort ExploreSort) (*ExploreContent, error) {
	if view == "" {
		view = ExploreAll
	}
	if sort == "" {
		sort = SortRecent
	}
	switch view {
	case ExploreAll, ExploreChannels, ExploreBlocks:
	default:
		return nil, fmt.Errorf("%w: unknown view %q", ErrInvalidInput, view)
	}
	if sort != SortRecent && sort != SortRandom {
		return nil, fmt.Errorf("%w: unknown sort %q", ErrInvalidInput, sort)
	}

	content := &ExploreContent{Boards: []models.Board{}, Blocks: []models.Block{}}
	q := silent(db.WithContext(ctx))
	hint := hints.Comment("select", "boerd:explore")

	if view == ExploreAll || view == ExploreChannels {
		boards := q.Clauses(hint).Preload("User").Where("status = ?", models.BoardPublic).Limit(exploreLimit)
		if sort == SortRecent {
			boards = boards.Order("updated_at DESC")
		}
		if err := boards.Find(&content.Boards).Error; err != nil {
			return nil, fmt.Errorf("failed to load explore boards: %w", err)
		}
	}

	if view == ExploreAll || view == ExploreBlocks {
		blocks := q.Clauses(hint).Preload("User").Limit(exploreLimit)
		if sort == SortRecent {
			blocks = blocks.Order("created_at DESC")
		}
		if err := blocks.Find(&content.Blocks).Error; err != nil {
			return nil, fmt.Errorf("failed to load explore blocks: %w", err)
		}
	}

	if sort == SortRandom {
		rand.Shuffle(len(content.Boards), func(i, j int) {
			content.Boards[i], content.Boards[j] = content.Boards[j], content.Boards[i]
		})
		rand.Shuffle(len(content.Blocks), func(i, j int) {
			content.Blocks[i], content.Blocks[j] = content.Blocks[j], content.Blocks[i]
		})
	}

	return content, nil
}
