// Package metadata enriches links with Open Graph and oEmbed data and downloads thumbnails.
package metadata

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/dhiyaancnirmal/boerd/internal/models"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

const (
	defaultTimeout = 10 * time.Second
	maxPageBytes   = 2 << 20
	userAgent      = "boerd/1.0 (+https://github.com/dhiyaancnirmal/boerd)"
)

// Fetcher fetches page metadata over HTTP. Every call is bounded by Timeout.
type Fetcher struct {
	Client    *http.Client
	Timeout   time.Duration
	Providers []Provider
	Log       zerolog.Logger
}

// NewFetcher returns a Fetcher using the built-in oEmbed providers
func NewFetcher(timeout time.Duration, log zerolog.Logger) *Fetcher {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Fetcher{
		Client:    &http.Client{},
		Timeout:   timeout,
		Providers: DefaultProviders(),
		Log:       log,
	}
}

// FetchURL fetches Open Graph and oEmbed data concurrently. Failures are logged
// and leave the corresponding result nil.
func (f *Fetcher) FetchURL(ctx context.Context, rawURL string) (*models.OpenGraph, *models.OEmbed) {
	ctx, cancel := context.WithTimeout(ctx, f.timeout())
	defer cancel()

	var (
		page   *Page
		oembed *models.OEmbed
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		p, err := f.FetchPage(gctx, rawURL)
		if err != nil {
			f.Log.Warn().Err(err).Str("url", rawURL).Msg("open graph fetch failed")
			return nil
		}
		page = p
		return nil
	})
	g.Go(func() error {
		provider, ok := f.providerFor(rawURL)
		if !ok {
			return nil
		}
		oe, err := f.FetchOEmbed(gctx, provider.EndpointFor(rawURL))
		if err != nil {
			f.Log.Warn().Err(err).Str("url", rawURL).Str("provider", provider.Name).Msg("oembed fetch failed")
			return nil
		}
		oembed = oe
		return nil
	})
	_ = g.Wait()

	// pages that advertise their own oEmbed endpoint
	if oembed == nil && page != nil && page.OEmbedURL != "" {
		oe, err := f.FetchOEmbed(ctx, page.OEmbedURL)
		if err != nil {
			f.Log.Debug().Err(err).Str("url", page.OEmbedURL).Msg("discovered oembed fetch failed")
		} else {
			oembed = oe
		}
	}

	var og *models.OpenGraph
	if page != nil {
		og = page.OpenGraph()
	}
	return og, oembed
}

// Download fetches url into memory, refusing bodies larger than maxBytes
func (f *Fetcher) Download(ctx context.Context, rawURL string, maxBytes int64) ([]byte, string, error) {
	ctx, cancel := context.WithTimeout(ctx, f.timeout())
	defer cancel()

	resp, err := f.get(ctx, rawURL, "image/*,*/*;q=0.8")
	if err != nil {
		return nil, "", err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBytes+1))
	if err != nil {
		return nil, "", fmt.Errorf("failed to read %s: %w", rawURL, err)
	}
	if int64(len(data)) > maxBytes {
		return nil, "", fmt.Errorf("%s exceeds %d bytes", rawURL, maxBytes)
	}
	return data, resp.Header.Get("Content-Type"), nil
}

// ThumbnailURL prefers the oEmbed thumbnail, then the Open Graph image
func ThumbnailURL(og *models.OpenGraph, oembed *models.OEmbed) string {
	if oembed != nil && oembed.ThumbnailURL != "" {
		return oembed.ThumbnailURL
	}
	if og != nil && og.Image != "" {
		return og.Image
	}
	return ""
}

// Title prefers the oEmbed title, then the Open Graph title
func Title(og *models.OpenGraph, oembed *models.OEmbed) string {
	if oembed != nil && oembed.Title != "" {
		return oembed.Title
	}
	if og != nil && og.Title != "" {
		return og.Title
	}
	return ""
}

func (f *Fetcher) timeout() time.Duration {
	if f.Timeout <= 0 {
		return defaultTimeout
	}
	return f.Timeout
}

func (f *Fetcher) client() *http.Client {
	if f.Client == nil {
		return http.DefaultClient
	}
	return f.Client
}

func (f *Fetcher) get(ctx context.Context, rawURL, accept string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("invalid request for %s: %w", rawURL, err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", accept)

	resp, err := f.client().Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", rawURL, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		resp.Body.Close()
		return nil, fmt.Errorf("fetch %s: unexpected status %d", rawURL, resp.StatusCode)
	}
	return resp, nil
}
