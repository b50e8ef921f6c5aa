package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dhiyaancnirmal/boerd/internal/models"
	"gorm.io/gorm"
	"gorm.io/hints"
)

// ActivityBucket is the width of the wall-clock slot that merges a board's connections into one entry
const ActivityBucket = 5 * time.Minute

// ActivityEntry is one feed item: blocks connected to a board within one bucket
type ActivityEntry struct {
	Board       *models.Board   `json:"board"`
	User        *models.User    `json:"user"`
	Blocks      []*models.Block `json:"blocks"`
	ConnectedAt time.Time       `json:"connectedAt"`
	Summary     string          `json:"summary"`
}

type activityKey struct {
	boardID string
	bucket  int64
}

// GetRecentActivity loads the latest connections and groups them into at most limit entries
func GetRecentActivity(ctx context.Context, db *gorm.DB, limit int) ([]ActivityEntry, error) {
	if limit <= 0 {
		limit = 50
	}

	var conns []models.Connection
	err := silent(db.WithContext(ctx)).
		Clauses(hints.Comment("select", "boerd:activity")).
		Preload("Block.User").
		Preload("Board.User").
		Order("connected_at DESC").
		Limit(limit).
		Find(&conns).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load activity: %w", err)
	}

	return GroupActivity(conns, limit), nil
}

// GroupActivity merges connections by (board, epoch-aligned bucket) keeping first-seen order.
// Entries are not re-sorted after grouping.
func GroupActivity(conns []models.Connection, limit int) []ActivityEntry {
	index := make(map[activityKey]int)
	entries := make([]ActivityEntry, 0)

	for _, conn := range conns {
		key := activityKey{boardID: conn.BoardID, bucket: bucketOf(conn.ConnectedAt)}

		i, ok := index[key]
		if !ok {
			entry := ActivityEntry{Board: conn.Board, ConnectedAt: conn.ConnectedAt}
			if conn.Board != nil {
				entry.User = conn.Board.User
			}
			entries = append(entries, entry)
			i = len(entries) - 1
			index[key] = i
		}
		if conn.Block != nil {
			entries[i].Blocks = append(entries[i].Blocks, conn.Block)
		}
	}

	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	for i := range entries {
		types := make([]models.BlockType, len(entries[i].Blocks))
		for j, block := range entries[i].Blocks {
			types[j] = block.Type
		}
		entries[i].Summary = SummarizeBlockTypes(types)
	}

	return entries
}

// bucketOf floors t to its bucket number since the epoch
func bucketOf(t time.Time) int64 {
	ms := t.UnixMilli()
	width := ActivityBucket.Milliseconds()
	bucket := ms / width
	if ms%width < 0 {
		bucket--
	}
	return bucket
}

// SummarizeBlockTypes renders counts like "3 images, 1 text, and 1 embed" in first-seen order
func SummarizeBlockTypes(types []models.BlockType) string {
	counts := make(map[models.BlockType]int)
	var order []models.BlockType
	for _, t := range types {
		if counts[t] == 0 {
			order = append(order, t)
		}
		counts[t]++
	}

	parts := make([]string, len(order))
	for i, t := range order {
		part := fmt.Sprintf("%d %s", counts[t], t)
		if counts[t] > 1 {
			part += "s"
		}
		parts[i] = part
	}

	switch len(parts) {
	case 0:
		return "0 blocks"
	case 1:
		return parts[0]
	case 2:
		return parts[0] + " and " + parts[1]
	}
	return strings.Join(parts[:len(parts)-1], ", ") + ", and " + parts[len(parts)-1]
}
