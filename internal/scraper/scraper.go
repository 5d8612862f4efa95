// Package scraper fetches competitor pages and reduces them to a comparable
// fingerprint: title, meta description and visible text.
package scraper

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ErrUnexpectedStatus is wrapped when the page answers with a non-2xx status.
var ErrUnexpectedStatus = errors.New("unexpected status")

const excerptLength = 280

type Page struct {
	URL         string
	Title       string
	Description string
	Text        string
	Hash        string
}

// Excerpt returns the start of the visible text, cut on a word boundary.
func (p *Page) Excerpt() string {
	if len(p.Text) <= excerptLength {
		return p.Text
	}
	end := excerptLength
	for end > 0 && !utf8.RuneStart(p.Text[end]) {
		end--
	}
	cut := p.Text[:end]
	if i := strings.LastIndexByte(cut, ' '); i > excerptLength/2 {
		cut = cut[:i]
	}
	return cut + "…"
}

type Fetcher interface {
	Fetch(ctx context.Context, url string) (*Page, error)
}

type Config struct {
	UserAgent    string
	Timeout      time.Duration
	MaxBodyBytes int64
}

type HTTPFetcher struct {
	client *http.Client
	cfg    Config
}

func NewHTTPFetcher(cfg Config) *HTTPFetcher {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 20 * time.Second
	}
	if cfg.MaxBodyBytes <= 0 {
		cfg.MaxBodyBytes = 2 << 20
	}
	return &HTTPFetcher{
		client: &http.Client{Timeout: cfg.Timeout},
		cfg:    cfg,
	}
}

func (f *HTTPFetcher) Fetch(ctx context.Context, url string) (*Page, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	if f.cfg.UserAgent != "" {
		req.Header.Set("User-Agent", f.cfg.UserAgent)
	}
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %d from %s", ErrUnexpectedStatus, resp.StatusCode, url)
	}

	page, err := Extract(io.LimitReader(resp.Body, f.cfg.MaxBodyBytes))
	if err != nil {
		return nil, err
	}
	page.URL = url
	return page, nil
}

// Extract parses an HTML document. The hash covers title, description and
// visible text after whitespace normalisation, so markup-only changes do not
// count as a content change.
func Extract(r io.Reader) (*Page, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing html: %w", err)
	}

	page := &Page{}
	var text strings.Builder
	walk(doc, page, &text)

	page.Title = normalizeSpace(page.Title)
	page.Description = normalizeSpace(page.Description)
	page.Text = normalizeSpace(text.String())

	sum := sha256.Sum256([]byte(page.Title + "\n" + page.Description + "\n" + page.Text))
	page.Hash = hex.EncodeToString(sum[:])
	return page, nil
}

func walk(n *html.Node, page *Page, text *strings.Builder) {
	if n.Type == html.ElementNode {
		switch n.DataAtom {
		case atom.Script, atom.Style, atom.Noscript, atom.Template, atom.Svg, atom.Iframe:
			return
		case atom.Title:
			if page.Title == "" {
				page.Title = nodeText(n)
			}
			return
		case atom.Meta:
			readMeta(n, page)
			return
		}
	}

	if n.Type == html.TextNode && !insideHead(n) {
		text.WriteString(n.Data)
		text.WriteByte(' ')
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c, page, text)
	}
}

func readMeta(n *html.Node, page *Page) {
	var name, content string
	for _, attr := range n.Attr {
		switch strings.ToLower(attr.Key) {
		case "name", "property":
			name = strings.ToLower(attr.Val)
		case "content":
			content = attr.Val
		}
	}
	if content == "" {
		return
	}
	switch name {
	case "description":
		page.Description = content
	case "og:description":
		if page.Description == "" {
			page.Description = content
		}
	}
}

func insideHead(n *html.Node) bool {
	for p := n.Parent; p != nil; p = p.Parent {
		if p.Type == html.ElementNode && p.DataAtom == atom.Head {
			return true
		}
	}
	return false
}

func nodeText(n *html.Node) string {
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			b.WriteString(c.Data)
		}
	}
	return b.String()
}

func normalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
