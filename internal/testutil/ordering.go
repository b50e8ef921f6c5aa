package testutil

import (
	"context"
	"fmt"
	"sort"
	"testing"

	"github.com/dhiyaancnirmal/boerd/internal/models"
	"github.com/dhiyaancnirmal/boerd/internal/services"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// AssertDensePositions fails unless the board's positions are exactly 0..n-1
func AssertDensePositions(t *testing.T, db *gorm.DB, boardID string, n int) {
	t.Helper()
	positions := BoardPositions(t, db, boardID)
	got := make([]int, 0, len(positions))
	for _, p := range positions {
		got = append(got, p)
	}
	sort.Ints(got)
	if len(got) != n {
		t.Errorf("board %s: expected %d connections, got %d (%v)", boardID, n, len(got), got)
		return
	}
	for i, p := range got {
		if p != i {
			t.Errorf("board %s: positions are not dense: %v", boardID, got)
			return
		}
	}
}

// ExerciseConcurrentOrdering hits two shared boards from many goroutines with moves,
// connects, a disconnect and block deletes, and a third board with competing
// full reorders. Every board must come out dense.
func ExerciseConcurrentOrdering(t *testing.T, db *gorm.DB) {
	t.Helper()
	ctx := context.Background()

	user := CreateUser(t, db, "ordering")
	shared := []*models.Board{
		CreateBoard(t, db, user.ID, "shared-a", models.BoardPublic),
		CreateBoard(t, db, user.ID, "shared-b", models.BoardPublic),
	}
	sorted := CreateBoard(t, db, user.ID, "sorted", models.BoardPublic)

	blocks := make([]*models.Block, 8)
	for i := range blocks {
		blocks[i] = CreateTextBlock(t, db, user.ID, fmt.Sprintf("block %d", i))
		for _, board := range shared {
			if _, err := services.ConnectBlock(ctx, db, blocks[i].ID, board.ID); err != nil {
				t.Fatalf("Failed to connect block: %v", err)
			}
		}
	}
	extras := make([]*models.Block, 4)
	for i := range extras {
		extras[i] = CreateTextBlock(t, db, user.ID, fmt.Sprintf("extra %d", i))
	}
	sortedIDs := make([]string, 4)
	for i := range sortedIDs {
		block := CreateTextBlock(t, db, user.ID, fmt.Sprintf("sorted %d", i))
		if _, err := services.ConnectBlock(ctx, db, block.ID, sorted.ID); err != nil {
			t.Fatalf("Failed to connect block: %v", err)
		}
		sortedIDs[i] = block.ID
	}

	var g errgroup.Group
	// blocks 0..4 move on both boards, targets include out-of-range values
	for i := 0; i < 40; i++ {
		board := shared[i%2]
		block := blocks[i%5]
		target := (i*7)%12 - 1
		g.Go(func() error {
			return services.MoveBlock(ctx, db, block.ID, board.ID, target)
		})
	}
	for i, block := range extras {
		board := shared[i%2]
		g.Go(func() error {
			_, err := services.ConnectBlock(ctx, db, block.ID, board.ID)
			return err
		})
	}
	g.Go(func() error {
		return services.DisconnectBlock(ctx, db, blocks[5].ID, shared[1].ID)
	})
	for _, block := range blocks[6:] {
		g.Go(func() error {
			return services.DeleteBlock(ctx, db, nil, block.ID)
		})
	}
	for shift := range sortedIDs {
		order := append(append([]string{}, sortedIDs[shift:]...), sortedIDs[:shift]...)
		g.Go(func() error {
			return services.ReorderBlocks(ctx, db, sorted.ID, order)
		})
	}

	if err := g.Wait(); err != nil {
		t.Fatalf("Concurrent board mutation failed: %v", err)
	}

	// a: blocks 0..5 plus extras 0 and 2; b: blocks 0..4 plus extras 1 and 3
	AssertDensePositions(t, db, shared[0].ID, 8)
	AssertDensePositions(t, db, shared[1].ID, 7)
	AssertDensePositions(t, db, sorted.ID, len(sortedIDs))
}
