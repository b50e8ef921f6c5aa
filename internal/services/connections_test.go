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
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

type boardFixture struct {
	db     *gorm.DB
	board  *models.Board
	blocks map[string]*models.Block
}

// newBoardFixture creates a board holding blocks named by labels, at positions 0..n-1
func newBoardFixture(t *testing.T, labels ...string) *boardFixture {
	t.Helper()
	db := testutil.NewDB(t)
	user := testutil.CreateUser(t, db, "me")
	board := testutil.CreateBoard(t, db, user.ID, "board", models.BoardPublic)

	f := &boardFixture{db: db, board: board, blocks: make(map[string]*models.Block)}
	base := time.Now().UTC().Add(-time.Hour)
	for i, label := range labels {
		block := testutil.CreateTextBlock(t, db, user.ID, label)
		testutil.CreateConnection(t, db, block.ID, board.ID, i, base.Add(time.Duration(i)*time.Second))
		f.blocks[label] = block
	}
	return f
}

// order returns the board's labels in position order
func (f *boardFixture) order(t *testing.T) []string {
	t.Helper()
	byID := make(map[string]string, len(f.blocks))
	for label, block := range f.blocks {
		byID[block.ID] = label
	}
	var labels []string
	for _, id := range testutil.BoardOrder(t, f.db, f.board.ID) {
		labels = append(labels, byID[id])
	}
	return labels
}

// assertDense checks that positions form 0..n-1 with no duplicates
func (f *boardFixture) assertDense(t *testing.T) {
	t.Helper()
	positions := testutil.BoardPositions(t, f.db, f.board.ID)
	seen := make(map[int]bool, len(positions))
	for _, p := range positions {
		assert.False(t, seen[p], "duplicate position %d", p)
		seen[p] = true
	}
	for i := 0; i < len(positions); i++ {
		assert.True(t, seen[i], "missing position %d", i)
	}
}

func TestConnectBlockAppends(t *testing.T) {
	f := newBoardFixture(t, "A", "B")
	ctx := context.Background()

	user := testutil.CreateUser(t, f.db, "other")
	c := testutil.CreateTextBlock(t, f.db, user.ID, "C")
	f.blocks["C"] = c

	conn, err := services.ConnectBlock(ctx, f.db, c.ID, f.board.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, conn.Position)
	assert.False(t, conn.ConnectedAt.IsZero())
	assert.Equal(t, []string{"A", "B", "C"}, f.order(t))
}

func TestConnectBlockEmptyBoardStartsAtZero(t *testing.T) {
	db := testutil.NewDB(t)
	user := testutil.CreateUser(t, db, "me")
	board := testutil.CreateBoard(t, db, user.ID, "empty", models.BoardPrivate)
	block := testutil.CreateTextBlock(t, db, user.ID, "first")

	conn, err := services.ConnectBlock(context.Background(), db, block.ID, board.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, conn.Position)
}

func TestConnectBlockTwiceReportsAlreadyConnected(t *testing.T) {
	f := newBoardFixture(t, "A", "B", "C")
	ctx := context.Background()

	_, err := services.ConnectBlock(ctx, f.db, f.blocks["B"].ID, f.board.ID)
	assert.ErrorIs(t, err, services.ErrAlreadyConnected)

	var conns []models.Connection
	require.NoError(t, f.db.Where("block_id = ? AND board_id = ?", f.blocks["B"].ID, f.board.ID).Find(&conns).Error)
	require.Len(t, conns, 1)
	assert.Equal(t, 1, conns[0].Position)
}

func TestConnectBlockBumpsBoardUpdatedAt(t *testing.T) {
	f := newBoardFixture(t)
	ctx := context.Background()
	stale := time.Now().UTC().Add(-24 * time.Hour)
	require.NoError(t, f.db.Model(&models.Board{}).Where("id = ?", f.board.ID).UpdateColumn("updated_at", stale).Error)

	block := testutil.CreateTextBlock(t, f.db, f.board.UserID, "A")
	_, err := services.ConnectBlock(ctx, f.db, block.ID, f.board.ID)
	require.NoError(t, err)

	var board models.Board
	require.NoError(t, f.db.First(&board, "id = ?", f.board.ID).Error)
	assert.True(t, board.UpdatedAt.After(stale.Add(time.Hour)))
}

func TestConnectBlockMissingSides(t *testing.T) {
	f := newBoardFixture(t, "A")
	ctx := context.Background()

	_, err := services.ConnectBlock(ctx, f.db, "missing-block", f.board.ID)
	assert.ErrorIs(t, err, services.ErrNotFound)

	_, err = services.ConnectBlock(ctx, f.db, f.blocks["A"].ID, "missing-board")
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestDisconnectBlockCompacts(t *testing.T) {
	f := newBoardFixture(t, "A", "B", "C", "D")

	require.NoError(t, services.DisconnectBlock(context.Background(), f.db, f.blocks["B"].ID, f.board.ID))

	positions := testutil.BoardPositions(t, f.db, f.board.ID)
	assert.Equal(t, map[string]int{
		f.blocks["A"].ID: 0,
		f.blocks["C"].ID: 1,
		f.blocks["D"].ID: 2,
	}, positions)

	var blocks int64
	require.NoError(t, f.db.Model(&models.Block{}).Count(&blocks).Error)
	assert.Equal(t, int64(4), blocks, "blocks survive disconnect")
}

func TestDisconnectBlockMissingIsNoop(t *testing.T) {
	f := newBoardFixture(t, "A")
	ctx := context.Background()

	assert.NoError(t, services.DisconnectBlock(ctx, f.db, "missing-block", f.board.ID))
	assert.NoError(t, services.DisconnectBlock(ctx, f.db, f.blocks["A"].ID, "missing-board"))
	assert.Equal(t, []string{"A"}, f.order(t))
}

func TestMoveBlock(t *testing.T) {
	tests := []struct {
		name     string
		label    string
		position int
		want     []string
	}{
		{name: "to front", label: "C", position: 0, want: []string{"C", "A", "B", "D"}},
		{name: "to back", label: "A", position: 3, want: []string{"B", "C", "D", "A"}},
		{name: "down one", label: "B", position: 2, want: []string{"A", "C", "B", "D"}},
		{name: "up one", label: "C", position: 1, want: []string{"A", "C", "B", "D"}},
		{name: "unchanged", label: "B", position: 1, want: []string{"A", "B", "C", "D"}},
		{name: "clamped high", label: "A", position: 99, want: []string{"B", "C", "D", "A"}},
		{name: "clamped low", label: "D", position: -5, want: []string{"D", "A", "B", "C"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newBoardFixture(t, "A", "B", "C", "D")

			err := services.MoveBlock(context.Background(), f.db, f.blocks[tt.label].ID, f.board.ID, tt.position)
			require.NoError(t, err)

			assert.Equal(t, tt.want, f.order(t))
			f.assertDense(t)
		})
	}
}

func TestMoveBlockSetsExactPosition(t *testing.T) {
	f := newBoardFixture(t, "A", "B", "C", "D", "E")

	require.NoError(t, services.MoveBlock(context.Background(), f.db, f.blocks["E"].ID, f.board.ID, 2))

	positions := testutil.BoardPositions(t, f.db, f.board.ID)
	assert.Equal(t, 2, positions[f.blocks["E"].ID])
	f.assertDense(t)
}

func TestMoveBlockConcurrentStaysDense(t *testing.T) {
	labels := []string{"A", "B", "C", "D", "E", "F"}
	f := newBoardFixture(t, labels...)
	ctx := context.Background()

	var g errgroup.Group
	for i := 0; i < 60; i++ {
		block := f.blocks[labels[i%len(labels)]]
		target := (i*7)%(len(labels)+2) - 1
		g.Go(func() error {
			return services.MoveBlock(ctx, f.db, block.ID, f.board.ID, target)
		})
	}
	require.NoError(t, g.Wait())

	f.assertDense(t)
	assert.ElementsMatch(t, labels, f.order(t))
}

func TestConcurrentBoardMutationsStayDense(t *testing.T) {
	testutil.ExerciseConcurrentOrdering(t, testutil.NewDB(t))
}

func TestMoveBlockNotConnected(t *testing.T) {
	f := newBoardFixture(t, "A", "B")
	stray := testutil.CreateTextBlock(t, f.db, f.board.UserID, "stray")

	err := services.MoveBlock(context.Background(), f.db, stray.ID, f.board.ID, 0)
	assert.ErrorIs(t, err, services.ErrNotFound)
	assert.Equal(t, []string{"A", "B"}, f.order(t))
}

func TestReorderBlocks(t *testing.T) {
	f := newBoardFixture(t, "A", "B", "C", "D")

	ids := []string{f.blocks["D"].ID, f.blocks["B"].ID, f.blocks["A"].ID, f.blocks["C"].ID}
	require.NoError(t, services.ReorderBlocks(context.Background(), f.db, f.board.ID, ids))

	assert.Equal(t, []string{"D", "B", "A", "C"}, f.order(t))
	f.assertDense(t)
}

func TestReorderBlocksIgnoresUnknownIDs(t *testing.T) {
	f := newBoardFixture(t, "A", "B")

	ids := []string{f.blocks["B"].ID, "not-connected", f.blocks["A"].ID}
	require.NoError(t, services.ReorderBlocks(context.Background(), f.db, f.board.ID, ids))

	positions := testutil.BoardPositions(t, f.db, f.board.ID)
	assert.Equal(t, 0, positions[f.blocks["B"].ID])
	assert.Equal(t, 2, positions[f.blocks["A"].ID])
}

func TestReorderBlocksMissingBoard(t *testing.T) {
	f := newBoardFixture(t, "A")

	err := services.ReorderBlocks(context.Background(), f.db, "missing-board", []string{f.blocks["A"].ID})
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestListBoardBlocks(t *testing.T) {
	f := newBoardFixture(t, "A", "B", "C")
	require.NoError(t, services.MoveBlock(context.Background(), f.db, f.blocks["C"].ID, f.board.ID, 0))

	conns, err := services.ListBoardBlocks(context.Background(), f.db, f.board.ID)
	require.NoError(t, err)
	require.Len(t, conns, 3)

	var contents []string
	for _, conn := range conns {
		require.NotNil(t, conn.Block)
		contents = append(contents, *conn.Block.Content)
	}
	assert.Equal(t, []string{"C", "A", "B"}, contents)
}
