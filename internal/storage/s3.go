package storage

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/dhiyaancnirmal/boerd/internal/utils"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// S3Options configures an S3-compatible bucket (AWS, MinIO, Cloudflare R2)
type S3Options struct {
	Endpoint        string
	Region          string
	Bucket          string
	AccessKeyID     string
	SecretAccessKey string
	UseSSL          bool
	PublicURL       string
}

// S3 stores objects in a bucket through minio-go
type S3 struct {
	client    *minio.Client
	bucket    string
	endpoint  string
	publicURL string
}

// NewS3 creates a bucket adapter. No request is made until first use.
func NewS3(opts S3Options) (*S3, error) {
	if opts.Bucket == "" {
		return nil, fmt.Errorf("bucket is required")
	}
	host, secure, err := splitEndpoint(opts.Endpoint, opts.UseSSL)
	if err != nil {
		return nil, err
	}

	client, err := minio.New(host, &minio.Options{
		Creds:  credentials.NewStaticV4(opts.AccessKeyID, opts.SecretAccessKey, ""),
		Secure: secure,
		Region: opts.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create object storage client: %w", err)
	}

	scheme := "http"
	if secure {
		scheme = "https"
	}
	endpoint := scheme + "://" + host

	publicURL := strings.TrimRight(opts.PublicURL, "/")
	if publicURL == "" {
		publicURL = endpoint + "/" + opts.Bucket
	}

	return &S3{client: client, bucket: opts.Bucket, endpoint: endpoint, publicURL: publicURL}, nil
}

func (s *S3) UploadImage(ctx context.Context, data []byte, filename string) (*ImageResult, error) {
	hash := contentHash(data)
	key := "images/" + hash + extension(filename)
	if err := s.put(ctx, key, data, contentType(filename)); err != nil {
		return nil, err
	}
	result := &ImageResult{OriginalURL: s.PublicURL(key)}

	thumb, width, height, err := thumbnail(data)
	if err != nil {
		result.ThumbnailURL = result.OriginalURL
		return result, nil
	}
	thumbKey := "images/thumbnails/" + hash + "_thumb.jpg"
	if err := s.put(ctx, thumbKey, thumb, "image/jpeg"); err != nil {
		return nil, err
	}
	result.ThumbnailURL = s.PublicURL(thumbKey)
	result.Width = width
	result.Height = height
	return result, nil
}

func (s *S3) UploadThumbnail(ctx context.Context, data []byte, filename string) (*ImageResult, error) {
	thumb, width, height, err := thumbnail(data)
	if err != nil {
		return nil, err
	}
	thumbKey := "images/thumbnails/" + contentHash(data) + "_thumb.jpg"
	if err := s.put(ctx, thumbKey, thumb, "image/jpeg"); err != nil {
		return nil, err
	}
	return &ImageResult{ThumbnailURL: s.PublicURL(thumbKey), Width: width, Height: height}, nil
}

func (s *S3) UploadFile(ctx context.Context, data []byte, filename, mimeType string) (*FileResult, error) {
	key := "files/" + contentHash(data) + extension(filename)
	if mimeType == "" {
		mimeType = contentType(filename)
	}
	if err := s.put(ctx, key, data, mimeType); err != nil {
		return nil, err
	}
	return &FileResult{URL: s.PublicURL(key), Size: int64(len(data))}, nil
}

func (s *S3) Delete(ctx context.Context, storedURL string) error {
	key := s.keyOf(storedURL)
	if key == "" {
		return fmt.Errorf("%s is not a stored object", storedURL)
	}
	if err := s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("failed to delete %s: %w", key, err)
	}
	return nil
}

func (s *S3) PublicURL(storedPath string) string {
	if strings.HasPrefix(storedPath, "http://") || strings.HasPrefix(storedPath, "https://") {
		return storedPath
	}
	return s.publicURL + "/" + strings.TrimLeft(storedPath, "/")
}

// Ping dials the endpoint, then checks the bucket exists
func (s *S3) Ping(ctx context.Context) error {
	if err := utils.PingService(ctx, s.endpoint, 1500*time.Millisecond); err != nil {
		return err
	}
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("bucket check failed: %w", err)
	}
	if !exists {
		return fmt.Errorf("bucket %s does not exist", s.bucket)
	}
	return nil
}

func (s *S3) put(ctx context.Context, key string, data []byte, ct string) error {
	_, err := s.client.PutObject(ctx, s.bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType:  ct,
		CacheControl: "public, max-age=31536000, immutable",
	})
	if err != nil {
		return fmt.Errorf("failed to upload %s: %w", key, err)
	}
	return nil
}

// keyOf recovers the object key from a public URL
func (s *S3) keyOf(storedURL string) string {
	if rest, ok := strings.CutPrefix(storedURL, s.publicURL+"/"); ok {
		return rest
	}
	u, err := url.Parse(storedURL)
	if err != nil {
		return ""
	}
	parts := strings.Split(strings.Trim(u.Path, "/"), "/")
	for i, p := range parts {
		if p == s.bucket {
			return strings.Join(parts[i+1:], "/")
		}
	}
	return strings.Join(parts, "/")
}

// splitEndpoint accepts "host[:port]" or a full URL
func splitEndpoint(endpoint string, useSSL bool) (host string, secure bool, err error) {
	if endpoint == "" {
		return "", false, fmt.Errorf("endpoint is required")
	}
	if !strings.Contains(endpoint, "://") {
		return strings.TrimRight(endpoint, "/"), useSSL, nil
	}
	u, err := url.Parse(endpoint)
	if err != nil || u.Host == "" {
		return "", false, fmt.Errorf("invalid endpoint %q", endpoint)
	}
	return u.Host, u.Scheme == "https", nil
}
