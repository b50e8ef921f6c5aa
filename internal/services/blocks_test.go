package services_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/dhiyaancnirmal/boerd/internal/models"
	"github.com/dhiyaancnirmal/boerd/internal/services"
	"github.com/dhiyaancnirmal/boerd/internal/storage"
	"github.com/dhiyaancnirmal/boerd/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestGetBlock(t *testing.T) {
	db := testutil.NewDB(t)
	user := testutil.CreateUser(t, db, "me")
	block := testutil.CreateTextBlock(t, db, user.ID, "hello")

	got, err := services.GetBlock(context.Background(), db, block.ID)
	require.NoError(t, err)
	assert.Equal(t, "hello", *got.Content)
	require.NotNil(t, got.User)
	assert.Equal(t, "me", got.User.Username)

	_, err = services.GetBlock(context.Background(), db, "missing")
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestUpdateBlock(t *testing.T) {
	db := testutil.NewDB(t)
	user := testutil.CreateUser(t, db, "me")
	block := testutil.CreateTypedBlock(t, db, user.ID, models.BlockLink, "https://example.com")

	updated, err := services.UpdateBlock(context.Background(), db, block.ID, services.BlockUpdate{
		Title:       ptr("Example"),
		Description: ptr("A page"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Example", *updated.Title)
	assert.Equal(t, "A page", *updated.Description)
	assert.Equal(t, "https://example.com", *updated.SourceURL)

	_, err = services.UpdateBlock(context.Background(), db, "missing", services.BlockUpdate{Title: ptr("x")})
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestDeleteBlockCompactsEveryBoard(t *testing.T) {
	f := newBoardFixture(t, "A", "B", "C")
	ctx := context.Background()
	second := testutil.CreateBoard(t, f.db, f.board.UserID, "second", models.BoardPrivate)
	other := testutil.CreateTextBlock(t, f.db, f.board.UserID, "other")
	testutil.CreateConnection(t, f.db, f.blocks["B"].ID, second.ID, 0, time.Now().UTC())
	testutil.CreateConnection(t, f.db, other.ID, second.ID, 1, time.Now().UTC())

	require.NoError(t, services.DeleteBlock(ctx, f.db, nil, f.blocks["B"].ID))

	assert.Equal(t, map[string]int{f.blocks["A"].ID: 0, f.blocks["C"].ID: 1}, testutil.BoardPositions(t, f.db, f.board.ID))
	assert.Equal(t, map[string]int{other.ID: 0}, testutil.BoardPositions(t, f.db, second.ID))

	_, err := services.GetBlock(ctx, f.db, f.blocks["B"].ID)
	assert.ErrorIs(t, err, services.ErrNotFound)
	assert.ErrorIs(t, services.DeleteBlock(ctx, f.db, nil, f.blocks["B"].ID), services.ErrNotFound)
}

func TestDeleteBlocksSharingBoardsConcurrently(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	user := testutil.CreateUser(t, db, "me")
	first := testutil.CreateBoard(t, db, user.ID, "first", models.BoardPublic)
	second := testutil.CreateBoard(t, db, user.ID, "second", models.BoardPublic)

	var blocks []*models.Block
	for i := 0; i < 6; i++ {
		block := testutil.CreateTextBlock(t, db, user.ID, "shared")
		// odd blocks join the boards in the opposite order
		boards := []*models.Board{first, second}
		if i%2 == 1 {
			boards = []*models.Board{second, first}
		}
		for _, board := range boards {
			_, err := services.ConnectBlock(ctx, db, block.ID, board.ID)
			require.NoError(t, err)
		}
		blocks = append(blocks, block)
	}

	var g errgroup.Group
	for _, block := range blocks[:4] {
		g.Go(func() error {
			return services.DeleteBlock(ctx, db, nil, block.ID)
		})
	}
	require.NoError(t, g.Wait())

	testutil.AssertDensePositions(t, db, first.ID, 2)
	testutil.AssertDensePositions(t, db, second.ID, 2)
	assert.ElementsMatch(t, []string{blocks[4].ID, blocks[5].ID}, testutil.BoardOrder(t, db, first.ID))
}

func TestDeleteBlockRemovesUnsharedAssets(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	user := testutil.CreateUser(t, db, "me")
	store := storage.NewLocal(t.TempDir(), "uploads")

	stored, err := store.UploadFile(ctx, []byte("%PDF-1.4 shared"), "doc.pdf", "application/pdf")
	require.NoError(t, err)

	blocks := make([]*models.Block, 2)
	for i := range blocks {
		blocks[i] = &models.Block{Type: models.BlockPDF, AssetPath: ptr(stored.URL), UserID: user.ID}
		require.NoError(t, db.Create(blocks[i]).Error)
	}
	onDisk := filepath.Join(store.Root(), "files", filepath.Base(stored.URL))

	require.NoError(t, services.DeleteBlock(ctx, db, store, blocks[0].ID))
	assert.FileExists(t, onDisk, "still referenced by the second block")

	require.NoError(t, services.DeleteBlock(ctx, db, store, blocks[1].ID))
	_, err = os.Stat(onDisk)
	assert.True(t, os.IsNotExist(err))
}

func TestGetBlockBoards(t *testing.T) {
	f := newBoardFixture(t, "A")
	second := testutil.CreateBoard(t, f.db, f.board.UserID, "second", models.BoardPrivate)
	testutil.CreateConnection(t, f.db, f.blocks["A"].ID, second.ID, 0, time.Now().UTC())

	boards, err := services.GetBlockBoards(context.Background(), f.db, f.blocks["A"].ID)
	require.NoError(t, err)
	require.Len(t, boards, 2)
	assert.Equal(t, f.board.ID, boards[0].ID)
	assert.Equal(t, second.ID, boards[1].ID)
	require.NotNil(t, boards[0].User)
}

func TestGetRecentAndUserBlocks(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	me := testutil.CreateUser(t, db, "me")
	other := testutil.CreateUser(t, db, "other")

	base := time.Now().UTC().Add(-time.Hour)
	for i, owner := range []*models.User{me, other, me} {
		block := testutil.CreateTextBlock(t, db, owner.ID, owner.Username)
		require.NoError(t, db.Model(block).UpdateColumn("created_at", base.Add(time.Duration(i)*time.Minute)).Error)
	}

	recent, err := services.GetRecentBlocks(ctx, db, 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, "me", *recent[0].Content)
	assert.Equal(t, "other", *recent[1].Content)
	require.NotNil(t, recent[0].User)

	mine, err := services.GetUserBlocks(ctx, db, me.ID, 0)
	require.NoError(t, err)
	assert.Len(t, mine, 2)
	for _, block := range mine {
		assert.Equal(t, me.ID, block.UserID)
	}
}
