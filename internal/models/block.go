package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BlockType is the auto-detected content kind of a block
type BlockType string

const (
	BlockImage BlockType = "image"
	BlockVideo BlockType = "video"
	BlockAudio BlockType = "audio"
	BlockPDF   BlockType = "pdf"
	BlockLink  BlockType = "link"
	BlockEmbed BlockType = "embed"
	BlockText  BlockType = "text"
	BlockFile  BlockType = "file"
)

// BlockTypes lists every block type in display order
var BlockTypes = []BlockType{
	BlockImage, BlockVideo, BlockAudio, BlockPDF, BlockLink, BlockEmbed, BlockText, BlockFile,
}

// Valid reports whether t is one of the known block types
func (t BlockType) Valid() bool {
	for _, known := range BlockTypes {
		if t == known {
			return true
		}
	}
	return false
}

// Block is a single unit of content owned by a user.
// Depending on Type exactly one of Content, SourceURL or AssetPath is set.
type Block struct {
	ID            string         `gorm:"type:varchar(36);primaryKey" json:"id"`
	Type          BlockType      `gorm:"type:varchar(16);not null;index:blocks_type_idx" json:"type"`
	Title         *string        `gorm:"size:500" json:"title"`
	Description   *string        `gorm:"type:text" json:"description"`
	Content       *string        `gorm:"type:text" json:"content"`
	SourceURL     *string        `gorm:"column:source_url;type:text" json:"sourceUrl"`
	AssetPath     *string        `gorm:"column:asset_path;size:1024" json:"assetPath"`
	ThumbnailPath *string        `gorm:"column:thumbnail_path;size:1024" json:"thumbnailPath"`
	Metadata      *BlockMetadata `json:"metadata"`
	UserID        string         `gorm:"type:varchar(36);not null;index:blocks_user_idx" json:"userId"`
	User          *User          `gorm:"foreignKey:UserID" json:"user,omitempty"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`
}

// TableName overrides the table name for Block
func (Block) TableName() string {
	return "blocks"
}

// BeforeCreate assigns an ID when the caller did not
func (b *Block) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}
