package detect

import (
	"testing"

	"github.com/dhiyaancnirmal/boerd/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestDetectFile(t *testing.T) {
	cases := map[string]models.BlockType{
		"image/png":                models.BlockImage,
		"image/svg+xml":            models.BlockImage,
		"video/mp4":                models.BlockVideo,
		"audio/mpeg":               models.BlockAudio,
		"application/pdf":          models.BlockPDF,
		"application/zip":          models.BlockFile,
		"":                         models.BlockFile,
		"application/pdf; charset": models.BlockFile,
	}
	for mime, want := range cases {
		assert.Equal(t, want, DetectFile(mime), mime)
		assert.Equal(t, want, Detect(Input{IsFile: true, MimeType: mime}), mime)
	}
}

func TestDetectTextNonURLsAreText(t *testing.T) {
	for _, s := range []string{
		"",
		"   ",
		"hello world",
		"www.example.com",
		"example.com/photo.png",
		"mailto:someone@example.com",
		"/relative/path.jpg",
		"see https://example.com for more",
		// stricter than a browser URL parser: scheme and host are both required,
		// and whitespace anywhere disqualifies the input
		"localhost:3000",
		"mailto:a@b.c",
		"http://x.com/a b",
		"https://example.com/photo.png\tcaption",
	} {
		assert.Equal(t, models.BlockText, DetectText(s), s)
	}
}

func TestDetectTextPlatformsAreEmbeds(t *testing.T) {
	for _, s := range []string{
		"https://www.youtube.com/watch?v=dQw4w9WgXcQ",
		"https://youtu.be/dQw4w9WgXcQ",
		"http://vimeo.com/123456",
		"https://twitter.com/golang/status/1",
		"https://x.com/golang/status/1",
		"https://www.instagram.com/p/abc/",
		"https://soundcloud.com/artist/track",
		"https://open.spotify.com/track/xyz",
		"https://www.tiktok.com/@user/video/1",
		"  https://vimeo.com/123  ",
	} {
		assert.Equal(t, models.BlockEmbed, DetectText(s), s)
	}
}

func TestDetectTextPlatformBeatsExtension(t *testing.T) {
	assert.Equal(t, models.BlockEmbed, DetectText("https://youtube.com/thumbs/cover.jpg"))
	assert.Equal(t, models.BlockEmbed, DetectText("https://x.com/media/clip.mp4"))
}

func TestDetectTextMediaExtensions(t *testing.T) {
	cases := map[string]models.BlockType{
		"https://example.com/photo.jpg":         models.BlockImage,
		"https://example.com/photo.JPEG?w=400":  models.BlockImage,
		"https://cdn.example.com/icons/fav.ico": models.BlockImage,
		"https://example.com/clip.webm":         models.BlockVideo,
		"https://example.com/movie.MKV":         models.BlockVideo,
		"https://example.com/song.flac":         models.BlockAudio,
		"https://example.com/voice.m4a?dl=1":    models.BlockAudio,
		"https://example.com/paper.pdf":         models.BlockPDF,
		"https://example.com/article":           models.BlockLink,
		"https://example.com/archive.zip":       models.BlockLink,
		"https://example.com/?file=photo.jpg":   models.BlockLink,
	}
	for s, want := range cases {
		assert.Equal(t, want, DetectText(s), s)
	}
}

func TestDetectIsTotal(t *testing.T) {
	for _, s := range []string{"http://", "https://%zz", "::::", "http://[::1", "\x00"} {
		assert.True(t, DetectText(s).Valid(), s)
	}
}

func TestHostnameAndPlatformName(t *testing.T) {
	assert.Equal(t, "example.com", Hostname("https://www.example.com/a"))
	assert.Equal(t, "not a url", Hostname("not a url"))

	assert.Equal(t, "YouTube", PlatformName("https://www.youtube.com/watch?v=1"))
	assert.Equal(t, "YouTube", PlatformName("https://youtu.be/1"))
	assert.Equal(t, "Twitter", PlatformName("https://x.com/a/status/1"))
	assert.Equal(t, "Spotify", PlatformName("https://open.spotify.com/track/1"))
	assert.Equal(t, "news.example.org", PlatformName("https://news.example.org/story"))
	assert.Equal(t, "box.com", PlatformName("https://box.com/file"))
}
