package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// MetadataPayload is implemented by the per-kind metadata shapes
type MetadataPayload interface {
	metadataFamily() string
}

// ImageMetadata describes image blocks
type ImageMetadata struct {
	Width    int    `json:"width,omitempty"`
	Height   int    `json:"height,omitempty"`
	MimeType string `json:"mimeType,omitempty"`
	Size     int64  `json:"size,omitempty"`
}

// MediaMetadata describes video and audio blocks
type MediaMetadata struct {
	Width    int     `json:"width,omitempty"`
	Height   int     `json:"height,omitempty"`
	Duration float64 `json:"duration,omitempty"`
	MimeType string  `json:"mimeType,omitempty"`
	Size     int64   `json:"size,omitempty"`
}

// OpenGraph holds page metadata scraped from a link
type OpenGraph struct {
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Image       string `json:"image,omitempty"`
	SiteName    string `json:"siteName,omitempty"`
}

// OEmbed holds the subset of an oEmbed response we keep
type OEmbed struct {
	Type         string `json:"type,omitempty"`
	HTML         string `json:"html,omitempty"`
	ThumbnailURL string `json:"thumbnail_url,omitempty"`
	ProviderName string `json:"provider_name,omitempty"`
	Title        string `json:"title,omitempty"`
	Width        int    `json:"width,omitempty"`
	Height       int    `json:"height,omitempty"`
}

// LinkMetadata describes link and embed blocks
type LinkMetadata struct {
	// Source is the platform ("YouTube") or hostname the link points at
	Source string     `json:"source,omitempty"`
	OG     *OpenGraph `json:"og,omitempty"`
	OEmbed *OEmbed    `json:"oembed,omitempty"`
}

// FileMetadata describes pdf and generic file blocks
type FileMetadata struct {
	MimeType string `json:"mimeType,omitempty"`
	Size     int64  `json:"size,omitempty"`
}

func (ImageMetadata) metadataFamily() string { return "image" }
func (MediaMetadata) metadataFamily() string { return "media" }
func (LinkMetadata) metadataFamily() string  { return "link" }
func (FileMetadata) metadataFamily() string  { return "file" }

// familyOf maps a block type to the payload family it carries.
// Text blocks carry no metadata.
func familyOf(t BlockType) string {
	switch t {
	case BlockImage:
		return "image"
	case BlockVideo, BlockAudio:
		return "media"
	case BlockLink, BlockEmbed:
		return "link"
	case BlockPDF, BlockFile:
		return "file"
	case BlockText:
		return ""
	}
	return ""
}

// newPayload returns an empty payload for the given kind
func newPayload(t BlockType) (MetadataPayload, error) {
	switch familyOf(t) {
	case "image":
		return &ImageMetadata{}, nil
	case "media":
		return &MediaMetadata{}, nil
	case "link":
		return &LinkMetadata{}, nil
	case "file":
		return &FileMetadata{}, nil
	}
	return nil, fmt.Errorf("block type %q carries no metadata", t)
}

// BlockMetadata is a tagged union keyed by block type.
// Stored as {"kind": "<type>", "data": {...}}.
type BlockMetadata struct {
	Kind    BlockType
	Payload MetadataPayload
}

// NewMetadata builds metadata for kind, checking that payload matches it
func NewMetadata(kind BlockType, payload MetadataPayload) (*BlockMetadata, error) {
	m := &BlockMetadata{Kind: kind, Payload: payload}
	if err := m.Validate(kind); err != nil {
		return nil, err
	}
	return m, nil
}

// Validate checks that the metadata belongs to a block of type t
func (m *BlockMetadata) Validate(t BlockType) error {
	if m == nil {
		return nil
	}
	if m.Kind != t {
		return fmt.Errorf("metadata kind %q does not match block type %q", m.Kind, t)
	}
	family := familyOf(t)
	if family == "" {
		return fmt.Errorf("block type %q carries no metadata", t)
	}
	if m.Payload == nil {
		return fmt.Errorf("metadata for %q has no payload", t)
	}
	if m.Payload.metadataFamily() != family {
		return fmt.Errorf("metadata payload %q does not fit block type %q", m.Payload.metadataFamily(), t)
	}
	return nil
}

// Image returns the image payload, if that is what m holds
func (m *BlockMetadata) Image() (*ImageMetadata, bool) {
	if m == nil {
		return nil, false
	}
	switch p := m.Payload.(type) {
	case *ImageMetadata:
		return p, true
	case ImageMetadata:
		return &p, true
	}
	return nil, false
}

// Media returns the video/audio payload, if that is what m holds
func (m *BlockMetadata) Media() (*MediaMetadata, bool) {
	if m == nil {
		return nil, false
	}
	switch p := m.Payload.(type) {
	case *MediaMetadata:
		return p, true
	case MediaMetadata:
		return &p, true
	}
	return nil, false
}

// Link returns the link/embed payload, if that is what m holds
func (m *BlockMetadata) Link() (*LinkMetadata, bool) {
	if m == nil {
		return nil, false
	}
	switch p := m.Payload.(type) {
	case *LinkMetadata:
		return p, true
	case LinkMetadata:
		return &p, true
	}
	return nil, false
}

// File returns the pdf/file payload, if that is what m holds
func (m *BlockMetadata) File() (*FileMetadata, bool) {
	if m == nil {
		return nil, false
	}
	switch p := m.Payload.(type) {
	case *FileMetadata:
		return p, true
	case FileMetadata:
		return &p, true
	}
	return nil, false
}

type metadataEnvelope struct {
	Kind BlockType       `json:"kind"`
	Data json.RawMessage `json:"data,omitempty"`
}

// MarshalJSON implements the json.Marshaler interface.
func (m BlockMetadata) MarshalJSON() ([]byte, error) {
	data, err := json.Marshal(m.Payload)
	if err != nil {
		return nil, err
	}
	return json.Marshal(metadataEnvelope{Kind: m.Kind, Data: data})
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (m *BlockMetadata) UnmarshalJSON(data []byte) error {
	var env metadataEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return err
	}
	payload, err := newPayload(env.Kind)
	if err != nil {
		return err
	}
	if len(env.Data) > 0 && string(env.Data) != "null" {
		if err := json.Unmarshal(env.Data, payload); err != nil {
			return fmt.Errorf("decode %s metadata: %w", env.Kind, err)
		}
	}
	m.Kind = env.Kind
	m.Payload = payload
	return nil
}

// Value writes the metadata as a JSON document
func (m BlockMetadata) Value() (driver.Value, error) {
	data, err := m.MarshalJSON()
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

// Scan reads the JSON document back through datatypes.JSON so every driver's
// representation ([]byte or string) is accepted
func (m *BlockMetadata) Scan(value interface{}) error {
	if value == nil {
		return nil
	}
	var raw datatypes.JSON
	if err := raw.Scan(value); err != nil {
		return err
	}
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}
	return m.UnmarshalJSON(raw)
}

// GormDBDataType ensures the correct data type is used for each database driver.
// MSSQL does not support the 'json' data type.
func (BlockMetadata) GormDBDataType(db *gorm.DB, field *schema.Field) string {
	switch db.Dialector.Name() {
	case "mysql":
		return "JSON"
	case "postgres":
		return "JSONB"
	case "sqlserver", "mssql":
		return "NVARCHAR(MAX)"
	case "sqlite":
		return "JSON"
	}
	return "TEXT"
}
