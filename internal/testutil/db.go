// Package testutil holds fixtures shared by package tests.
package testutil

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/dhiyaancnirmal/boerd/internal/config"
	"github.com/dhiyaancnirmal/boerd/internal/database"
	"github.com/dhiyaancnirmal/boerd/internal/models"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDB opens a migrated sqlite database in a temp dir, closed on cleanup
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()
	cfg := &config.Config{
		DBType:            "sqlite-pure",
		DBDatabase:        filepath.Join(t.TempDir(), "boerd.db"),
		DBConnectionLimit: 1,
	}
	db, err := database.Connect(cfg, database.Options{LogLevel: logger.Silent, Log: zerolog.Nop()})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}
	t.Cleanup(func() {
		_ = database.Close(db)
	})
	return db
}

// CreateUser creates a user with the given username
func CreateUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()
	user := models.User{Username: username}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("Failed to create user %s: %v", username, err)
	}
	return &user
}

// CreateTextBlock creates a text block owned by userID
func CreateTextBlock(t *testing.T, db *gorm.DB, userID, content string) *models.Block {
	t.Helper()
	block := models.Block{Type: models.BlockText, Content: &content, UserID: userID}
	if err := db.Create(&block).Error; err != nil {
		t.Fatalf("Failed to create block: %v", err)
	}
	return &block
}

// CreateTypedBlock creates a URL-sourced block of the given type
func CreateTypedBlock(t *testing.T, db *gorm.DB, userID string, blockType models.BlockType, sourceURL string) *models.Block {
	t.Helper()
	block := models.Block{Type: blockType, SourceURL: &sourceURL, UserID: userID}
	if err := db.Create(&block).Error; err != nil {
		t.Fatalf("Failed to create %s block: %v", blockType, err)
	}
	return &block
}

// CreateBoard creates a board with an explicit slug and status
func CreateBoard(t *testing.T, db *gorm.DB, userID, slug string, status models.BoardStatus) *models.Board {
	t.Helper()
	board := models.Board{Slug: slug, Title: slug, Status: status, UserID: userID}
	if err := db.Create(&board).Error; err != nil {
		t.Fatalf("Failed to create board %s: %v", slug, err)
	}
	return &board
}

// CreateConnection inserts a connection row directly, bypassing ordering logic
func CreateConnection(t *testing.T, db *gorm.DB, blockID, boardID string, position int, at time.Time) *models.Connection {
	t.Helper()
	conn := models.Connection{BlockID: blockID, BoardID: boardID, Position: position, ConnectedAt: at}
	if err := db.Create(&conn).Error; err != nil {
		t.Fatalf("Failed to create connection: %v", err)
	}
	return &conn
}

// BoardOrder returns the block IDs of a board ordered by position
func BoardOrder(t *testing.T, db *gorm.DB, boardID string) []string {
	t.Helper()
	var conns []models.Connection
	if err := db.Where("board_id = ?", boardID).Order("position ASC").Find(&conns).Error; err != nil {
		t.Fatalf("Failed to load board order: %v", err)
	}
	ids := make([]string, len(conns))
	for i, c := range conns {
		ids[i] = c.BlockID
	}
	return ids
}

// BoardPositions maps block IDs to positions for a board
func BoardPositions(t *testing.T, db *gorm.DB, boardID string) map[string]int {
	t.Helper()
	var conns []models.Connection
	if err := db.Where("board_id = ?", boardID).Find(&conns).Error; err != nil {
		t.Fatalf("Failed to load board positions: %v", err)
	}
	positions := make(map[string]int, len(conns))
	for _, c := range conns {
		positions[c.BlockID] = c.Position
	}
	return positions
}
