// ingest.go
//
// Boerd: collect and organize mixed-media content on boards
// Copyright (c) 2026 The Boerd Authors (https://github.com/dhiyaancnirmal/boerd)
//
// This file is part of boerd.
// boerd is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// boerd is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with boerd.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 The Boerd Authors (https://github.com/dhiyaancnirmal/boerd)"
//    in this material, copies, or source code of derived works.

package services

import (
	"context"
	"fmt"
	"mime"
	"net/url"
	"path"
	"strings"

	"github.com/dhiyaancnirmal/boerd/internal/detect"
	"github.com/dhiyaancnirmal/boerd/internal/metadata"
	"github.com/dhiyaancnirmal/boerd/internal/models"
	"github.com/dhiyaancnirmal/boerd/internal/storage"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// DefaultMaxDownload caps remote thumbnails and images fetched during enrichment
const DefaultMaxDownload = 20 * 1024 * 1024

// MetadataFetcher is the enrichment collaborator used for URL inputs
type MetadataFetcher interface {
	FetchURL(ctx context.Context, rawURL string) (*models.OpenGraph, *models.OEmbed)
	Download(ctx context.Context, rawURL string, maxBytes int64) ([]byte, string, error)
}

// FileInput is an uploaded file
type FileInput struct {
	Name     string
	MimeType string
	Data     []byte
}

// Ingestor turns pasted text, URLs and uploads into blocks
type Ingestor struct {
	DB          *gorm.DB
	Storage     storage.Adapter
	Fetcher     MetadataFetcher
	Log         zerolog.Logger
	MaxDownload int64
}

// NewIngestor creates an Ingestor
func NewIngestor(db *gorm.DB, store storage.Adapter, fetcher MetadataFetcher, log zerolog.Logger) *Ingestor {
	return &Ingestor{
		DB:          db,
		Storage:     store,
		Fetcher:     fetcher,
		Log:         log,
		MaxDownload: DefaultMaxDownload,
	}
}

// CreateFromText classifies input and stores it as a block owned by userID.
// URL inputs are enriched on a best-effort basis. A non-empty boardID
// connects the new block to the end of that board.
func (in *Ingestor) CreateFromText(ctx context.Context, userID, input, boardID string) (*models.Block, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return nil, fmt.Errorf("%w: input is required", ErrInvalidInput)
	}
	if err := in.checkBoard(ctx, boardID); err != nil {
		return nil, err
	}

	blockType := detect.DetectText(trimmed)
	block := &models.Block{Type: blockType, UserID: userID}
	log := in.Log.With().Str("type", string(blockType)).Logger()

	switch blockType {
	case models.BlockText:
		block.Content = &input

	case models.BlockLink, models.BlockEmbed:
		block.SourceURL = &trimmed
		in.enrichLink(ctx, log, block, trimmed)

	case models.BlockImage:
		block.SourceURL = &trimmed
		in.enrichImage(ctx, log, block, trimmed)

	default:
		// video, audio and pdf URLs are kept as plain references
		block.SourceURL = &trimmed
	}

	return in.save(ctx, block, boardID)
}

// CreateFromFile stores an uploaded file and records it as a block titled with the file name
func (in *Ingestor) CreateFromFile(ctx context.Context, userID string, file FileInput, boardID string) (*models.Block, error) {
	if len(file.Data) == 0 {
		return nil, fmt.Errorf("%w: file is empty", ErrInvalidInput)
	}
	if err := in.checkBoard(ctx, boardID); err != nil {
		return nil, err
	}

	mimeType := file.MimeType
	if mimeType == "" || mimeType == "application/octet-stream" {
		if byExt := mime.TypeByExtension(strings.ToLower(path.Ext(file.Name))); byExt != "" {
			mimeType = byExt
		}
	}
	if mediaType, _, err := mime.ParseMediaType(mimeType); err == nil {
		mimeType = mediaType
	}

	blockType := detect.DetectFile(mimeType)
	block := &models.Block{Type: blockType, UserID: userID}
	if file.Name != "" {
		name := file.Name
		block.Title = &name
	}
	size := int64(len(file.Data))

	var payload models.MetadataPayload
	if blockType == models.BlockImage {
		stored, err := in.Storage.UploadImage(ctx, file.Data, file.Name)
		if err != nil {
			return nil, fmt.Errorf("failed to store image: %w", err)
		}
		block.AssetPath = &stored.OriginalURL
		block.ThumbnailPath = &stored.ThumbnailURL
		payload = &models.ImageMetadata{Width: stored.Width, Height: stored.Height, MimeType: mimeType, Size: size}
	} else {
		stored, err := in.Storage.UploadFile(ctx, file.Data, file.Name, mimeType)
		if err != nil {
			return nil, fmt.Errorf("failed to store file: %w", err)
		}
		block.AssetPath = &stored.URL
		switch blockType {
		case models.BlockVideo, models.BlockAudio:
			payload = &models.MediaMetadata{MimeType: mimeType, Size: stored.Size}
		default:
			payload = &models.FileMetadata{MimeType: mimeType, Size: stored.Size}
		}
	}

	meta, err := models.NewMetadata(blockType, payload)
	if err != nil {
		return nil, err
	}
	block.Metadata = meta

	return in.save(ctx, block, boardID)
}

// enrichLink fills title, description, thumbnail and metadata from the page and its oEmbed.
// The link source is recorded even when nothing could be fetched.
func (in *Ingestor) enrichLink(ctx context.Context, log zerolog.Logger, block *models.Block, rawURL string) {
	link := &models.LinkMetadata{Source: detect.PlatformName(rawURL)}
	defer func() {
		meta, err := models.NewMetadata(block.Type, link)
		if err != nil {
			log.Warn().Err(err).Msg("discarding link metadata")
			return
		}
		block.Metadata = meta
	}()

	if in.Fetcher == nil {
		return
	}

	link.OG, link.OEmbed = in.Fetcher.FetchURL(ctx, rawURL)

	if title := metadata.Title(link.OG, link.OEmbed); title != "" {
		block.Title = &title
	}
	if link.OG != nil && link.OG.Description != "" {
		description := link.OG.Description
		block.Description = &description
	}

	if thumbURL := metadata.ThumbnailURL(link.OG, link.OEmbed); thumbURL != "" {
		if stored := in.storeThumbnail(ctx, log, thumbURL); stored != nil {
			block.ThumbnailPath = &stored.ThumbnailURL
		}
	}
}

// enrichImage thumbnails a remote image. The image itself stays at its source URL.
func (in *Ingestor) enrichImage(ctx context.Context, log zerolog.Logger, block *models.Block, rawURL string) {
	if in.Fetcher == nil {
		return
	}

	data, contentType, err := in.Fetcher.Download(ctx, rawURL, in.maxDownload())
	if err != nil {
		log.Warn().Err(err).Str("url", rawURL).Msg("image download failed")
		return
	}

	stored, err := in.Storage.UploadThumbnail(ctx, data, fileNameOf(rawURL))
	if err != nil {
		log.Warn().Err(err).Str("url", rawURL).Msg("image thumbnail failed")
		return
	}
	block.ThumbnailPath = &stored.ThumbnailURL

	if mediaType, _, err := mime.ParseMediaType(contentType); err == nil {
		contentType = mediaType
	}
	meta, err := models.NewMetadata(models.BlockImage, &models.ImageMetadata{
		Width:    stored.Width,
		Height:   stored.Height,
		MimeType: contentType,
		Size:     int64(len(data)),
	})
	if err == nil {
		block.Metadata = meta
	}
}

func (in *Ingestor) storeThumbnail(ctx context.Context, log zerolog.Logger, rawURL string) *storage.ImageResult {
	data, _, err := in.Fetcher.Download(ctx, rawURL, in.maxDownload())
	if err != nil {
		log.Warn().Err(err).Str("url", rawURL).Msg("thumbnail download failed")
		return nil
	}
	stored, err := in.Storage.UploadThumbnail(ctx, data, fileNameOf(rawURL))
	if err != nil {
		log.Warn().Err(err).Str("url", rawURL).Msg("thumbnail processing failed")
		return nil
	}
	return stored
}

// checkBoard fails early when a target board is named but missing
func (in *Ingestor) checkBoard(ctx context.Context, boardID string) error {
	if boardID == "" {
		return nil
	}
	var count int64
	if err := silent(in.DB.WithContext(ctx)).Model(&models.Board{}).Where("id = ?", boardID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return ErrNotFound
	}
	return nil
}

func (in *Ingestor) save(ctx context.Context, block *models.Block, boardID string) (*models.Block, error) {
	if err := block.Metadata.Validate(block.Type); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	// the block only exists if it also lands on the requested board
	err := in.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(block).Error; err != nil {
			return fmt.Errorf("failed to create block: %w", err)
		}
		if boardID == "" {
			return nil
		}
		if _, err := connectTx(tx, block.ID, boardID); err != nil {
			return fmt.Errorf("failed to connect block to board %s: %w", boardID, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	in.Log.Debug().Str("block", block.ID).Str("type", string(block.Type)).Msg("block created")
	return block, nil
}

func (in *Ingestor) maxDownload() int64 {
	if in.MaxDownload <= 0 {
		return DefaultMaxDownload
	}
	return in.MaxDownload
}

// fileNameOf returns the last path segment of rawURL, for extension hints
func fileNameOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || path.Base(u.Path) == "/" || path.Base(u.Path) == "." {
		return "thumbnail.jpg"
	}
	return path.Base(u.Path)
}
