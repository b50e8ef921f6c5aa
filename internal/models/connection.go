package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Connection links a block to a board at a position.
// Positions within one board form the dense range [0, N).
type Connection struct {
	ID          string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	BlockID     string    `gorm:"type:varchar(36);not null;uniqueIndex:idx_connections_block_board;index:conn_block_idx" json:"blockId"`
	BoardID     string    `gorm:"type:varchar(36);not null;uniqueIndex:idx_connections_block_board;index:conn_board_idx" json:"boardId"`
	Position    int       `gorm:"not null;default:0" json:"position"`
	ConnectedAt time.Time `gorm:"not null;index:conn_connected_idx" json:"connectedAt"`
	Block       *Block    `gorm:"foreignKey:BlockID;constraint:OnDelete:CASCADE" json:"block,omitempty"`
	Board       *Board    `gorm:"foreignKey:BoardID;constraint:OnDelete:CASCADE" json:"board,omitempty"`
}

// TableName overrides the table name for Connection
func (Connection) TableName() string {
	return "connections"
}

// BeforeCreate assigns an ID and connection time
func (c *Connection) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if c.ConnectedAt.IsZero() {
		c.ConnectedAt = time.Now().UTC()
	}
	return nil
}
