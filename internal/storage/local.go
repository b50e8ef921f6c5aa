package storage

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// Local writes uploads under <dataDir>/<uploadsPath> and serves them at /<uploadsPath>/...
type Local struct {
	root        string
	uploadsPath string
}

// NewLocal creates a local disk adapter
func NewLocal(dataDir, uploadsPath string) *Local {
	uploadsPath = strings.Trim(uploadsPath, "/")
	if uploadsPath == "" {
		uploadsPath = "uploads"
	}
	return &Local{
		root:        filepath.Join(dataDir, uploadsPath),
		uploadsPath: uploadsPath,
	}
}

// Root is the directory served at /<uploadsPath>
func (l *Local) Root() string {
	return l.root
}

// URLPrefix is the public path prefix of stored files
func (l *Local) URLPrefix() string {
	return "/" + l.uploadsPath
}

func (l *Local) UploadImage(ctx context.Context, data []byte, filename string) (*ImageResult, error) {
	hash := contentHash(data)
	name := hash + extension(filename)

	if err := l.write(path.Join("images", "original", name), data); err != nil {
		return nil, err
	}
	result := &ImageResult{OriginalURL: l.url("images", "original", name)}

	thumb, width, height, err := thumbnail(data)
	if err != nil {
		// formats we cannot decode (svg, ico) use the original as their thumbnail
		result.ThumbnailURL = result.OriginalURL
		return result, nil
	}
	thumbName := hash + "_thumb.jpg"
	if err := l.write(path.Join("images", "thumbnails", thumbName), thumb); err != nil {
		return nil, err
	}
	result.ThumbnailURL = l.url("images", "thumbnails", thumbName)
	result.Width = width
	result.Height = height
	return result, nil
}

func (l *Local) UploadThumbnail(ctx context.Context, data []byte, filename string) (*ImageResult, error) {
	thumb, width, height, err := thumbnail(data)
	if err != nil {
		return nil, err
	}
	thumbName := contentHash(data) + "_thumb.jpg"
	if err := l.write(path.Join("images", "thumbnails", thumbName), thumb); err != nil {
		return nil, err
	}
	return &ImageResult{
		ThumbnailURL: l.url("images", "thumbnails", thumbName),
		Width:        width,
		Height:       height,
	}, nil
}

func (l *Local) UploadFile(ctx context.Context, data []byte, filename, mimeType string) (*FileResult, error) {
	name := contentHash(data) + extension(filename)
	if err := l.write(path.Join("files", name), data); err != nil {
		return nil, err
	}
	return &FileResult{URL: l.url("files", name), Size: int64(len(data))}, nil
}

func (l *Local) Delete(ctx context.Context, url string) error {
	full, err := l.resolve(url)
	if err != nil {
		return err
	}
	if err := os.Remove(full); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete %s: %w", url, err)
	}
	return nil
}

func (l *Local) PublicURL(storedPath string) string {
	if strings.HasPrefix(storedPath, "/") {
		return storedPath
	}
	return "/" + storedPath
}

func (l *Local) Ping(ctx context.Context) error {
	if err := os.MkdirAll(l.root, 0o755); err != nil {
		return fmt.Errorf("uploads directory unavailable: %w", err)
	}
	marker, err := os.CreateTemp(l.root, ".ping-*")
	if err != nil {
		return fmt.Errorf("uploads directory not writable: %w", err)
	}
	name := marker.Name()
	marker.Close()
	return os.Remove(name)
}

func (l *Local) url(parts ...string) string {
	return l.URLPrefix() + "/" + path.Join(parts...)
}

func (l *Local) write(rel string, data []byte) error {
	full := filepath.Join(l.root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", rel, err)
	}
	if err := os.WriteFile(full, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", rel, err)
	}
	return nil
}

// resolve maps a public URL back to a file path that must stay inside the uploads root
func (l *Local) resolve(url string) (string, error) {
	rel := strings.TrimPrefix(url, l.URLPrefix()+"/")
	if rel == url {
		return "", fmt.Errorf("%s is not a stored upload", url)
	}
	full := filepath.Join(l.root, filepath.FromSlash(rel))
	inside, err := filepath.Rel(l.root, full)
	if err != nil || inside == "." || strings.HasPrefix(inside, "..") {
		return "", fmt.Errorf("%s escapes the uploads directory", url)
	}
	return full, nil
}
