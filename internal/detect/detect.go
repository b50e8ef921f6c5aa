// Package detect assigns a block type to pasted text, URLs and uploaded files.
package detect

import (
	"net/url"
	"path"
	"regexp"
	"strings"

	"github.com/dhiyaancnirmal/boerd/internal/models"
)

// Input is either a string (Text) or a file described by its MIME type.
type Input struct {
	Text     string
	IsFile   bool
	MimeType string
}

// platform patterns are matched against the raw URL, before any extension check
var platforms = []struct {
	name    string
	pattern *regexp.Regexp
}{
	{"YouTube", regexp.MustCompile(`^https?://(www\.)?(youtube\.com|youtu\.be)/`)},
	{"Vimeo", regexp.MustCompile(`^https?://(www\.)?vimeo\.com/`)},
	{"Twitter", regexp.MustCompile(`^https?://(www\.)?(twitter\.com|x\.com)/`)},
	{"Instagram", regexp.MustCompile(`^https?://(www\.)?instagram\.com/`)},
	{"SoundCloud", regexp.MustCompile(`^https?://(www\.)?soundcloud\.com/`)},
	{"Spotify", regexp.MustCompile(`^https?://(open\.|www\.)?spotify\.com/`)},
	{"TikTok", regexp.MustCompile(`^https?://(www\.)?tiktok\.com/`)},
}

var extensions = map[string]models.BlockType{
	"jpg": models.BlockImage, "jpeg": models.BlockImage, "png": models.BlockImage, "gif": models.BlockImage,
	"webp": models.BlockImage, "svg": models.BlockImage, "bmp": models.BlockImage, "ico": models.BlockImage,
	"mp4": models.BlockVideo, "webm": models.BlockVideo, "mov": models.BlockVideo, "avi": models.BlockVideo,
	"mkv": models.BlockVideo,
	"mp3": models.BlockAudio, "wav": models.BlockAudio, "ogg": models.BlockAudio, "flac": models.BlockAudio,
	"m4a": models.BlockAudio, "aac": models.BlockAudio,
	"pdf": models.BlockPDF,
}

// Detect classifies any input. It never fails.
func Detect(in Input) models.BlockType {
	if in.IsFile {
		return DetectFile(in.MimeType)
	}
	return DetectText(in.Text)
}

// DetectFile classifies an uploaded file by MIME type
func DetectFile(mimeType string) models.BlockType {
	mime := strings.ToLower(strings.TrimSpace(mimeType))
	switch {
	case strings.HasPrefix(mime, "image/"):
		return models.BlockImage
	case strings.HasPrefix(mime, "video/"):
		return models.BlockVideo
	case strings.HasPrefix(mime, "audio/"):
		return models.BlockAudio
	case mime == "application/pdf":
		return models.BlockPDF
	}
	return models.BlockFile
}

// DetectText classifies pasted text. Platform URLs win over media extensions.
func DetectText(input string) models.BlockType {
	trimmed := strings.TrimSpace(input)
	u, ok := ParseURL(trimmed)
	if !ok {
		return models.BlockText
	}

	if platformOf(trimmed) != "" {
		return models.BlockEmbed
	}

	ext := strings.TrimPrefix(strings.ToLower(path.Ext(u.Path)), ".")
	if t, found := extensions[ext]; found {
		return t
	}
	return models.BlockLink
}

// ParseURL accepts only absolute URLs with both scheme and host.
// "localhost:3000" and "mailto:a@b.c" lack a host, and "http://x.com/a b" holds
// whitespace, so all three classify as text.
func ParseURL(s string) (*url.URL, bool) {
	if s == "" || strings.ContainsAny(s, " \t\n") {
		return nil, false
	}
	u, err := url.Parse(s)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, false
	}
	return u, true
}

// IsURL reports whether s is an absolute URL
func IsURL(s string) bool {
	_, ok := ParseURL(strings.TrimSpace(s))
	return ok
}

func platformOf(rawURL string) string {
	for _, p := range platforms {
		if p.pattern.MatchString(rawURL) {
			return p.name
		}
	}
	return ""
}

// Hostname returns the URL host without a leading www., or the input when it is not a URL
func Hostname(rawURL string) string {
	u, ok := ParseURL(strings.TrimSpace(rawURL))
	if !ok {
		return rawURL
	}
	return strings.TrimPrefix(u.Hostname(), "www.")
}

// PlatformName names the embed platform for a URL, falling back to its hostname
func PlatformName(rawURL string) string {
	host := Hostname(rawURL)
	for _, domain := range []struct{ host, name string }{
		{"youtube.com", "YouTube"}, {"youtu.be", "YouTube"}, {"vimeo.com", "Vimeo"},
		{"twitter.com", "Twitter"}, {"x.com", "Twitter"}, {"instagram.com", "Instagram"},
		{"soundcloud.com", "SoundCloud"}, {"spotify.com", "Spotify"}, {"tiktok.com", "TikTok"},
	} {
		if host == domain.host || strings.HasSuffix(host, "."+domain.host) {
			return domain.name
		}
	}
	return host
}
