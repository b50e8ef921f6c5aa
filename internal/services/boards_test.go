package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/dhiyaancnirmal/boerd/internal/models"
	"github.com/dhiyaancnirmal/boerd/internal/services"
	"github.com/dhiyaancnirmal/boerd/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T {
	return &v
}

func TestCreateBoardSlugs(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	user := testutil.CreateUser(t, db, "me")

	first, err := services.CreateBoard(ctx, db, user.ID, "My Board", nil, "")
	require.NoError(t, err)
	assert.Equal(t, "my-board", first.Slug)
	assert.Equal(t, models.BoardPrivate, first.Status)

	second, err := services.CreateBoard(ctx, db, user.ID, "My Board", ptr("again"), models.BoardPublic)
	require.NoError(t, err)
	assert.Equal(t, "my-board-1", second.Slug)
	assert.Equal(t, "again", *second.Description)

	// slugs are only unique per user
	other := testutil.CreateUser(t, db, "other")
	third, err := services.CreateBoard(ctx, db, other.ID, "My Board", nil, "")
	require.NoError(t, err)
	assert.Equal(t, "my-board", third.Slug)
}

func TestCreateBoardValidation(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	user := testutil.CreateUser(t, db, "me")

	_, err := services.CreateBoard(ctx, db, user.ID, "   ", nil, "")
	assert.ErrorIs(t, err, services.ErrInvalidInput)

	_, err = services.CreateBoard(ctx, db, user.ID, "Title", nil, "secret")
	assert.ErrorIs(t, err, services.ErrInvalidInput)

	_, err = services.CreateBoard(ctx, db, "missing-user", "Title", nil, "")
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestUpdateBoardRenameReslugsAgainstOtherBoards(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	user := testutil.CreateUser(t, db, "me")

	taken, err := services.CreateBoard(ctx, db, user.ID, "Reading List", nil, "")
	require.NoError(t, err)
	board, err := services.CreateBoard(ctx, db, user.ID, "Drafts", nil, "")
	require.NoError(t, err)

	updated, err := services.UpdateBoard(ctx, db, board.ID, services.BoardUpdate{Title: ptr("Reading List")})
	require.NoError(t, err)
	assert.Equal(t, "Reading List", updated.Title)
	assert.Equal(t, "reading-list-1", updated.Slug)

	// renaming to its own title keeps the plain slug
	same, err := services.UpdateBoard(ctx, db, taken.ID, services.BoardUpdate{Title: ptr("Reading List")})
	require.NoError(t, err)
	assert.Equal(t, "reading-list", same.Slug)
}

func TestUpdateBoardFields(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	user := testutil.CreateUser(t, db, "me")
	board := testutil.CreateBoard(t, db, user.ID, "board", models.BoardPrivate)

	updated, err := services.UpdateBoard(ctx, db, board.ID, services.BoardUpdate{
		Description: ptr("notes"),
		Status:      ptr(models.BoardPublic),
	})
	require.NoError(t, err)
	assert.Equal(t, "board", updated.Slug)
	assert.Equal(t, "notes", *updated.Description)
	assert.Equal(t, models.BoardPublic, updated.Status)

	_, err = services.UpdateBoard(ctx, db, board.ID, services.BoardUpdate{Status: ptr(models.BoardStatus("hidden"))})
	assert.ErrorIs(t, err, services.ErrInvalidInput)

	_, err = services.UpdateBoard(ctx, db, "missing", services.BoardUpdate{Title: ptr("x")})
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestDeleteBoardKeepsBlocks(t *testing.T) {
	f := newBoardFixture(t, "A", "B")
	ctx := context.Background()

	require.NoError(t, services.DeleteBoard(ctx, f.db, f.board.ID))

	var conns, blocks int64
	require.NoError(t, f.db.Model(&models.Connection{}).Count(&conns).Error)
	require.NoError(t, f.db.Model(&models.Block{}).Count(&blocks).Error)
	assert.Zero(t, conns)
	assert.Equal(t, int64(2), blocks)

	assert.ErrorIs(t, services.DeleteBoard(ctx, f.db, f.board.ID), services.ErrNotFound)
}

func TestGetBoardBySlug(t *testing.T) {
	f := newBoardFixture(t, "A", "B", "C")
	ctx := context.Background()
	require.NoError(t, services.MoveBlock(ctx, f.db, f.blocks["A"].ID, f.board.ID, 2))

	detail, err := services.GetBoardBySlug(ctx, f.db, "me", "board")
	require.NoError(t, err)
	require.NotNil(t, detail.User)
	assert.Equal(t, "me", detail.User.Username)
	require.Len(t, detail.Blocks, 3)
	for i, block := range detail.Blocks {
		assert.Equal(t, i, block.Position)
		assert.False(t, block.ConnectedAt.IsZero())
	}
	assert.Equal(t, "A", *detail.Blocks[2].Content)

	_, err = services.GetBoardBySlug(ctx, f.db, "me", "nope")
	assert.ErrorIs(t, err, services.ErrNotFound)
	_, err = services.GetBoardBySlug(ctx, f.db, "nobody", "board")
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestGetBoardByID(t *testing.T) {
	f := newBoardFixture(t, "A")

	detail, err := services.GetBoardByID(context.Background(), f.db, f.board.ID)
	require.NoError(t, err)
	assert.Equal(t, f.board.Slug, detail.Slug)
	require.NotNil(t, detail.User)
	assert.Len(t, detail.Blocks, 1)

	_, err = services.GetBoardByID(context.Background(), f.db, "missing")
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestGetUserBoardsPreviews(t *testing.T) {
	f := newBoardFixture(t, "A", "B", "C", "D", "E", "F", "G")
	ctx := context.Background()
	empty := testutil.CreateBoard(t, f.db, f.board.UserID, "empty", models.BoardPrivate)
	require.NoError(t, f.db.Model(&models.Board{}).Where("id = ?", empty.ID).
		UpdateColumn("updated_at", time.Now().UTC().Add(-time.Hour)).Error)
	require.NoError(t, f.db.Model(&models.Board{}).Where("id = ?", f.board.ID).
		UpdateColumn("updated_at", time.Now().UTC()).Error)

	summaries, err := services.GetUserBoards(ctx, f.db, "me")
	require.NoError(t, err)
	require.Len(t, summaries, 2)

	assert.Equal(t, f.board.ID, summaries[0].ID)
	assert.Equal(t, int64(7), summaries[0].BlockCount)
	require.Len(t, summaries[0].PreviewBlocks, 5)
	assert.Equal(t, "A", *summaries[0].PreviewBlocks[0].Content)
	assert.Equal(t, "E", *summaries[0].PreviewBlocks[4].Content)

	assert.Equal(t, empty.ID, summaries[1].ID)
	assert.Zero(t, summaries[1].BlockCount)
	assert.Empty(t, summaries[1].PreviewBlocks)

	_, err = services.GetUserBoards(ctx, f.db, "nobody")
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestGetPublicBoards(t *testing.T) {
	f := newBoardFixture(t, "A")
	testutil.CreateBoard(t, f.db, f.board.UserID, "hidden", models.BoardPrivate)

	summaries, err := services.GetPublicBoards(context.Background(), f.db, 0)
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Equal(t, f.board.ID, summaries[0].ID)
	require.NotNil(t, summaries[0].User)
	assert.Equal(t, int64(1), summaries[0].BlockCount)
}
