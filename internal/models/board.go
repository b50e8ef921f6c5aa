package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BoardStatus controls board visibility
type BoardStatus string

const (
	BoardPublic  BoardStatus = "public"
	BoardPrivate BoardStatus = "private"
)

// Valid reports whether s is public or private
func (s BoardStatus) Valid() bool {
	return s == BoardPublic || s == BoardPrivate
}

// Board is a named, ordered collection of blocks
type Board struct {
	ID          string      `gorm:"type:varchar(36);primaryKey" json:"id"`
	Slug        string      `gorm:"size:64;not null;uniqueIndex:idx_boards_user_slug" json:"slug"`
	Title       string      `gorm:"size:255;not null" json:"title"`
	Description *string     `gorm:"type:text" json:"description"`
	Status      BoardStatus `gorm:"type:varchar(16);not null;default:private" json:"status"`
	UserID      string      `gorm:"type:varchar(36);not null;uniqueIndex:idx_boards_user_slug;index:boards_user_idx" json:"userId"`
	User        *User       `gorm:"foreignKey:UserID" json:"user,omitempty"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

// TableName overrides the table name for Board
func (Board) TableName() string {
	return "boards"
}

// BeforeCreate assigns an ID and default status
func (b *Board) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	if b.Status == "" {
		b.Status = BoardPrivate
	}
	return nil
}
