// storage.go
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

// Package storage persists uploaded originals, thumbnails and files on local disk or in an S3-compatible bucket.
package storage

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"mime"
	"path/filepath"
	"strings"

	"github.com/dhiyaancnirmal/boerd/internal/config"
)

const (
	thumbnailSize = 400
	hashLength    = 16
)

// ImageResult describes a stored image and its thumbnail
type ImageResult struct {
	OriginalURL  string `json:"originalUrl"`
	ThumbnailURL string `json:"thumbnailUrl"`
	Width        int    `json:"width"`
	Height       int    `json:"height"`
}

// FileResult describes a stored non-image file
type FileResult struct {
	URL  string `json:"url"`
	Size int64  `json:"size"`
}

// Adapter is the uniform upload/delete/url interface over a storage backend
type Adapter interface {
	// UploadImage stores the original and a thumbnail
	UploadImage(ctx context.Context, data []byte, filename string) (*ImageResult, error)
	// UploadThumbnail stores only a thumbnail, for images that stay at their source URL
	UploadThumbnail(ctx context.Context, data []byte, filename string) (*ImageResult, error)
	UploadFile(ctx context.Context, data []byte, filename, mimeType string) (*FileResult, error)
	// Delete removes a stored object by the URL returned from an upload. Missing objects are not an error.
	Delete(ctx context.Context, url string) error
	PublicURL(storedPath string) string
	Ping(ctx context.Context) error
}

// New selects the adapter named by STORAGE_TYPE
func New(cfg *config.Config) (Adapter, error) {
	switch cfg.StorageType {
	case "", "local":
		return NewLocal(cfg.DataDir, cfg.UploadsPath), nil
	case "s3":
		return NewS3(S3Options{
			Endpoint:        cfg.S3Endpoint,
			Region:          cfg.S3Region,
			Bucket:          cfg.S3Bucket,
			AccessKeyID:     cfg.S3AccessKeyID,
			SecretAccessKey: cfg.S3SecretAccessKey,
			UseSSL:          cfg.S3UseSSL,
			PublicURL:       cfg.S3PublicURL,
		})
	case "r2":
		return NewS3(S3Options{
			Endpoint:        fmt.Sprintf("https://%s.r2.cloudflarestorage.com", cfg.R2AccountID),
			Region:          "auto",
			Bucket:          cfg.S3Bucket,
			AccessKeyID:     cfg.S3AccessKeyID,
			SecretAccessKey: cfg.S3SecretAccessKey,
			UseSSL:          true,
			PublicURL:       cfg.S3PublicURL,
		})
	}
	return nil, fmt.Errorf("unsupported storage type: %s", cfg.StorageType)
}

// contentHash is the first 16 hex chars of the sha256 of data
func contentHash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])[:hashLength]
}

// extension keeps the original file extension, dot included
func extension(filename string) string {
	return strings.ToLower(filepath.Ext(filename))
}

func contentType(filename string) string {
	if ct := mime.TypeByExtension(extension(filename)); ct != "" {
		return ct
	}
	return "application/octet-stream"
}
