package metadata

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/dhiyaancnirmal/boerd/internal/models"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Page holds the head metadata of an HTML document
type Page struct {
	URL       *url.URL
	Title     string
	Meta      map[string]string
	OEmbedURL string
}

// FetchPage downloads and parses the <head> of an HTML page
func (f *Fetcher) FetchPage(ctx context.Context, rawURL string) (*Page, error) {
	resp, err := f.get(ctx, rawURL, "text/html,application/xhtml+xml;q=0.9,*/*;q=0.5")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	ct := resp.Header.Get("Content-Type")
	if ct != "" && !strings.Contains(ct, "html") {
		return nil, fmt.Errorf("%s is %s, not html", rawURL, ct)
	}

	page, err := ParsePage(io.LimitReader(resp.Body, maxPageBytes))
	if err != nil {
		return nil, err
	}
	page.URL = resp.Request.URL
	if page.OEmbedURL != "" {
		page.OEmbedURL = page.resolve(page.OEmbedURL)
	}
	return page, nil
}

// ParsePage scans meta, title and oEmbed link tags until the body starts
func ParsePage(r io.Reader) (*Page, error) {
	page := &Page{Meta: make(map[string]string)}
	z := html.NewTokenizer(r)
	inTitle := false

	for {
		switch z.Next() {
		case html.ErrorToken:
			if z.Err() == io.EOF {
				return page, nil
			}
			return nil, fmt.Errorf("parse html: %w", z.Err())

		case html.TextToken:
			if inTitle && page.Title == "" {
				page.Title = strings.TrimSpace(html.UnescapeString(string(z.Text())))
			}

		case html.EndTagToken:
			name, _ := z.TagName()
			switch atom.Lookup(name) {
			case atom.Title:
				inTitle = false
			case atom.Head:
				return page, nil
			}

		case html.StartTagToken, html.SelfClosingTagToken:
			name, hasAttr := z.TagName()
			switch atom.Lookup(name) {
			case atom.Body:
				return page, nil
			case atom.Title:
				inTitle = true
			case atom.Meta:
				attrs := readAttrs(z, hasAttr)
				key := attrs["property"]
				if key == "" {
					key = attrs["name"]
				}
				key = strings.ToLower(strings.TrimSpace(key))
				if key != "" && attrs["content"] != "" {
					if _, seen := page.Meta[key]; !seen {
						page.Meta[key] = strings.TrimSpace(attrs["content"])
					}
				}
			case atom.Link:
				attrs := readAttrs(z, hasAttr)
				if strings.EqualFold(attrs["type"], "application/json+oembed") && attrs["href"] != "" && page.OEmbedURL == "" {
					page.OEmbedURL = attrs["href"]
				}
			}
		}
	}
}

// OpenGraph maps the scraped tags onto Open Graph fields, or nil when nothing was found
func (p *Page) OpenGraph() *models.OpenGraph {
	og := &models.OpenGraph{
		Title:       p.first("og:title", "twitter:title"),
		Description: p.first("og:description", "twitter:description", "description"),
		Image:       p.first("og:image", "og:image:url", "og:image:secure_url", "twitter:image", "twitter:image:src"),
		SiteName:    p.first("og:site_name"),
	}
	if og.Title == "" {
		og.Title = p.Title
	}
	if og.Image != "" {
		og.Image = p.resolve(og.Image)
	}
	if *og == (models.OpenGraph{}) {
		return nil
	}
	return og
}

func (p *Page) first(keys ...string) string {
	for _, k := range keys {
		if v := p.Meta[k]; v != "" {
			return v
		}
	}
	return ""
}

func (p *Page) resolve(ref string) string {
	if p.URL == nil {
		return ref
	}
	u, err := p.URL.Parse(ref)
	if err != nil {
		return ref
	}
	return u.String()
}

func readAttrs(z *html.Tokenizer, more bool) map[string]string {
	attrs := make(map[string]string)
	for more {
		var key, val []byte
		key, val, more = z.TagAttr()
		attrs[strings.ToLower(string(key))] = string(val)
	}
	return attrs
}
