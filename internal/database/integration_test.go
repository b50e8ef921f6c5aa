package database_test

import (
	"context"
	"os"
	"testing"

	"github.com/dhiyaancnirmal/boerd/internal/database"
	"github.com/dhiyaancnirmal/boerd/internal/models"
	"github.com/dhiyaancnirmal/boerd/internal/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/logger"
)

// TestIntegrationMigrate runs the migrations against real servers.
// Set BOERD_INTEGRATION=1 with a docker daemon available.
func TestIntegrationMigrate(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	if os.Getenv("BOERD_INTEGRATION") == "" {
		t.Skip("BOERD_INTEGRATION not set")
	}

	for _, dbType := range []string{"mariadb", "postgres"} {
		t.Run(dbType, func(t *testing.T) {
			ctx := context.Background()
			dc, err := testutil.StartDatabase(ctx, t, dbType)
			require.NoError(t, err)
			defer dc.Terminate(t)

			db, err := database.Connect(dc.Config, database.Options{LogLevel: logger.Silent, Log: zerolog.Nop()})
			require.NoError(t, err)
			defer database.Close(db)

			require.NoError(t, database.AutoMigrate(db))

			user := testutil.CreateUser(t, db, "me")
			block := testutil.CreateTextBlock(t, db, user.ID, "hello")
			board := testutil.CreateBoard(t, db, user.ID, "inbox", models.BoardPublic)
			testutil.CreateConnection(t, db, block.ID, board.ID, 0, block.CreatedAt)

			// cascade from boards to connections is enforced by the server
			require.NoError(t, db.Delete(&models.Board{}, "id = ?", board.ID).Error)
			var count int64
			require.NoError(t, db.Model(&models.Connection{}).Where("block_id = ?", block.ID).Count(&count).Error)
			assert.Zero(t, count)
		})
	}
}

// TestIntegrationConcurrentOrdering runs competing board mutations over a real
// connection pool, where only the board row lock keeps positions dense.
func TestIntegrationConcurrentOrdering(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	if os.Getenv("BOERD_INTEGRATION") == "" {
		t.Skip("BOERD_INTEGRATION not set")
	}

	for _, dbType := range []string{"mariadb", "postgres"} {
		t.Run(dbType, func(t *testing.T) {
			ctx := context.Background()
			dc, err := testutil.StartDatabase(ctx, t, dbType)
			require.NoError(t, err)
			defer dc.Terminate(t)

			db, err := database.Connect(dc.Config, database.Options{LogLevel: logger.Silent, Log: zerolog.Nop()})
			require.NoError(t, err)
			defer database.Close(db)
			require.NoError(t, database.AutoMigrate(db))

			sqlDB, err := db.DB()
			require.NoError(t, err)
			require.Greater(t, sqlDB.Stats().MaxOpenConnections, 1, "needs a pool to race")

			testutil.ExerciseConcurrentOrdering(t, db)
		})
	}
}
