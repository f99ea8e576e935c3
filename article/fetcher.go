package article

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"newsreel/config"
	"newsreel/types"

	"github.com/PuerkitoBio/goquery"
	readability "github.com/go-shiori/go-readability"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/html/charset"
	"golang.org/x/text/unicode/norm"
)

// ErrConnection marks a failure to reach the article host at all.
var ErrConnection = errors.New("connection error")

// Options selects the page sections and the body normalization.
type Options struct {
	TitleSelector string
	BodySelector  string
	ReplacePhrase string
	ReplaceWith   string
	UserAgent     string
	Fallback      string
}

// OptionsFromConfig copies the extraction settings out of cfg.
func OptionsFromConfig(cfg config.Config) Options {
	return Options{
		TitleSelector: cfg.TitleSelector,
		BodySelector:  cfg.BodySelector,
		ReplacePhrase: cfg.ReplacePhrase,
		ReplaceWith:   cfg.ReplaceWith,
		UserAgent:     cfg.UserAgent,
		Fallback:      cfg.Fallback,
	}
}

// Fetcher downloads one article page and pulls the title and body out of it.
type Fetcher struct {
	client *http.Client
	opts   Options
	log    logrus.FieldLogger
}

// NewFetcher uses http.DefaultClient when client is nil.
func NewFetcher(client *http.Client, opts Options, log logrus.FieldLogger) *Fetcher {
	if client == nil {
		client = http.DefaultClient
	}
	return &Fetcher{client: client, opts: opts, log: log}
}

// Fetch performs a single GET of pageURL. It is never retried.
func (f *Fetcher) Fetch(ctx context.Context, pageURL string) (*types.Article, error) {
	f.log.WithField("url", pageURL).Info("Fetching article")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("invalid article url: %w", err)
	}
	if f.opts.UserAgent != "" {
		req.Header.Set("User-Agent", f.opts.UserAgent)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		if isConnectionError(err) {
			return nil, fmt.Errorf("%w: %v", ErrConnection, err)
		}
		return nil, fmt.Errorf("failed to fetch article: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		f.log.WithField("status", resp.StatusCode).Warn("Unexpected status, parsing page anyway")
	}

	body, err := charset.NewReader(resp.Body, resp.Header.Get("Content-Type"))
	if err != nil {
		return nil, fmt.Errorf("failed to decode article: %w", err)
	}
	page, err := io.ReadAll(body)
	if err != nil {
		return nil, fmt.Errorf("failed to read article: %w", err)
	}

	a, err := f.Parse(pageURL, page)
	if err != nil {
		return nil, err
	}
	f.log.WithFields(logrus.Fields{"title": a.Title, "chars": len(a.Body)}).Info("Data received")
	return a, nil
}

// Parse extracts the article from an already downloaded page. A missing
// section yields an empty string rather than an error.
func (f *Fetcher) Parse(pageURL string, page []byte) (*types.Article, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(page))
	if err != nil {
		return nil, fmt.Errorf("failed to parse article html: %w", err)
	}

	title := f.section(doc, f.opts.TitleSelector)
	body := f.section(doc, f.opts.BodySelector)

	if body == "" && f.opts.Fallback == config.FallbackReadability {
		title, body = f.readable(pageURL, page, title)
	}

	if f.opts.ReplacePhrase != "" {
		body = strings.ReplaceAll(body, f.opts.ReplacePhrase, f.opts.ReplaceWith)
	}

	return &types.Article{
		URL:       pageURL,
		Title:     norm.NFC.String(title),
		Body:      norm.NFC.String(body),
		FetchedAt: time.Now(),
	}, nil
}

func (f *Fetcher) section(doc *goquery.Document, selector string) string {
	if selector == "" {
		return ""
	}
	sel := doc.Find(selector).First()
	if sel.Length() == 0 {
		f.log.WithField("selector", selector).Warn("Section not found")
		return ""
	}
	return strings.TrimSpace(sel.Text())
}

func (f *Fetcher) readable(pageURL string, page []byte, title string) (string, string) {
	u, err := url.Parse(pageURL)
	if err != nil {
		return title, ""
	}
	extracted, err := readability.FromReader(bytes.NewReader(page), u)
	if err != nil {
		f.log.WithError(err).Warn("Readability fallback failed")
		return title, ""
	}
	if title == "" {
		title = strings.TrimSpace(extracted.Title)
	}
	return title, strings.TrimSpace(extracted.TextContent)
}

// Narration is the text read aloud: title, body and the closing call to action.
func Narration(a *types.Article, callToAction string) string {
	return a.Title + "\n\n" + a.Body + "\n\n" + callToAction
}

func isConnectionError(err error) bool {
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) && opErr.Op == "dial" {
		return true
	}
	var dnsErr *net.DNSError
	return errors.As(err, &dnsErr)
}
