package metadata

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/dhiyaancnirmal/boerd/internal/models"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const articleHTML = `<!doctype html>
<html><head>
<title>Fallback &amp; Title</title>
<meta property="og:title" content="An Article">
<meta property="og:description" content="About things">
<meta property="og:image" content="/img/cover.png">
<meta property="og:site_name" content="Example">
<meta name="twitter:title" content="Ignored">
</head><body><meta property="og:title" content="In Body"></body></html>`

func newTestFetcher() *Fetcher {
	return NewFetcher(2*time.Second, zerolog.Nop())
}

func TestParsePage(t *testing.T) {
	page, err := ParsePage(strings.NewReader(articleHTML))
	require.NoError(t, err)

	assert.Equal(t, "Fallback & Title", page.Title)
	assert.Equal(t, "An Article", page.Meta["og:title"])
	assert.Equal(t, "Ignored", page.Meta["twitter:title"])

	og := page.OpenGraph()
	require.NotNil(t, og)
	assert.Equal(t, "An Article", og.Title)
	assert.Equal(t, "About things", og.Description)
	assert.Equal(t, "/img/cover.png", og.Image)
	assert.Equal(t, "Example", og.SiteName)
}

func TestParsePageTwitterAndTitleFallbacks(t *testing.T) {
	page, err := ParsePage(strings.NewReader(`<html><head><title>Plain</title>
<meta name="twitter:description" content="tw desc">
<meta name="twitter:image" content="https://cdn.example.com/t.jpg">
</head></html>`))
	require.NoError(t, err)

	og := page.OpenGraph()
	require.NotNil(t, og)
	assert.Equal(t, "Plain", og.Title)
	assert.Equal(t, "tw desc", og.Description)
	assert.Equal(t, "https://cdn.example.com/t.jpg", og.Image)
}

func TestParsePageEmpty(t *testing.T) {
	page, err := ParsePage(strings.NewReader(`<html><head></head><body>hi</body></html>`))
	require.NoError(t, err)
	assert.Nil(t, page.OpenGraph())
}

func TestFetchURLOpenGraphWithDiscoveredOEmbed(t *testing.T) {
	mux := http.NewServeMux()
	var srv *httptest.Server
	mux.HandleFunc("/article", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprintf(w, `<html><head>
<meta property="og:title" content="An Article">
<meta property="og:image" content="/img/cover.png">
<link rel="alternate" type="application/json+oembed" href="%s/oembed?x=1">
</head></html>`, srv.URL)
	})
	mux.HandleFunc("/oembed", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"type":"rich","title":"Embedded","provider_name":"Example","thumbnail_url":"https://cdn.example.com/thumb.jpg","width":"640","height":360}`)
	})
	srv = httptest.NewServer(mux)
	defer srv.Close()

	f := newTestFetcher()
	og, oe := f.FetchURL(context.Background(), srv.URL+"/article")

	require.NotNil(t, og)
	assert.Equal(t, "An Article", og.Title)
	assert.Equal(t, srv.URL+"/img/cover.png", og.Image)

	require.NotNil(t, oe)
	assert.Equal(t, "Embedded", oe.Title)
	assert.Equal(t, 640, oe.Width)
	assert.Equal(t, 360, oe.Height)

	assert.Equal(t, "https://cdn.example.com/thumb.jpg", ThumbnailURL(og, oe))
	assert.Equal(t, "Embedded", Title(og, oe))
}

func TestFetchURLUsesProviderTable(t *testing.T) {
	var oembedQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/oembed":
			oembedQuery = r.URL.Query().Get("url")
			fmt.Fprint(w, `{"type":"video","title":"A Video","html":"<iframe></iframe>"}`)
		default:
			w.Header().Set("Content-Type", "text/html")
			fmt.Fprint(w, `<html><head><title>Video Page</title></head></html>`)
		}
	}))
	defer srv.Close()

	f := newTestFetcher()
	f.Providers = []Provider{{
		Name:     "Test",
		Pattern:  regexp.MustCompile(`^` + regexp.QuoteMeta(srv.URL) + `/watch`),
		Endpoint: srv.URL + "/oembed",
	}}

	target := srv.URL + "/watch?v=1"
	og, oe := f.FetchURL(context.Background(), target)
	require.NotNil(t, oe)
	assert.Equal(t, "A Video", oe.Title)
	assert.Equal(t, target, oembedQuery)
	require.NotNil(t, og)
	assert.Equal(t, "Video Page", og.Title)
}

func TestFetchURLFailuresAreSwallowed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	defer srv.Close()

	og, oe := newTestFetcher().FetchURL(context.Background(), srv.URL+"/broken")
	assert.Nil(t, og)
	assert.Nil(t, oe)
	assert.Empty(t, ThumbnailURL(og, oe))
	assert.Empty(t, Title(og, oe))
}

func TestFetchURLTimesOut(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer srv.Close()

	f := NewFetcher(100*time.Millisecond, zerolog.Nop())
	start := time.Now()
	og, _ := f.FetchURL(context.Background(), srv.URL)
	assert.Nil(t, og)
	assert.Less(t, time.Since(start), time.Second)
}

func TestDownload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		w.Write([]byte(strings.Repeat("x", 64)))
	}))
	defer srv.Close()

	f := newTestFetcher()
	data, ct, err := f.Download(context.Background(), srv.URL+"/a.png", 1024)
	require.NoError(t, err)
	assert.Len(t, data, 64)
	assert.Equal(t, "image/png", ct)

	_, _, err = f.Download(context.Background(), srv.URL+"/a.png", 10)
	assert.Error(t, err)
}

func TestDefaultProviders(t *testing.T) {
	f := newTestFetcher()
	for rawURL, name := range map[string]string{
		"https://www.youtube.com/watch?v=1":   "YouTube",
		"https://youtu.be/1":                  "YouTube",
		"https://x.com/a/status/1":            "Twitter",
		"https://open.spotify.com/track/1":    "Spotify",
		"https://soundcloud.com/artist/track": "SoundCloud",
		"https://www.tiktok.com/@a/video/1":   "TikTok",
		"https://vimeo.com/1":                 "Vimeo",
	} {
		p, ok := f.providerFor(rawURL)
		require.True(t, ok, rawURL)
		assert.Equal(t, name, p.Name, rawURL)
	}

	_, ok := f.providerFor("https://example.com/page")
	assert.False(t, ok)

	p, _ := f.providerFor("https://youtu.be/1")
	assert.Equal(t, "https://www.youtube.com/oembed?format=json&url=https%3A%2F%2Fyoutu.be%2F1", p.EndpointFor("https://youtu.be/1"))
}

func TestOEmbedTitleWinsOverOpenGraph(t *testing.T) {
	og := &models.OpenGraph{Title: "og", Image: "og.jpg"}
	assert.Equal(t, "og", Title(og, nil))
	assert.Equal(t, "og.jpg", ThumbnailURL(og, &models.OEmbed{}))
	assert.Equal(t, "oe", Title(og, &models.OEmbed{Title: "oe"}))
}
