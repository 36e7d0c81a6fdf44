package resources

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/net/html"
	"golang.org/x/time/rate"
)

// SearchConfig configures the DuckDuckGo HTML scraper.
type SearchConfig struct {
	// Endpoint is the HTML search page. Overridden in tests.
	Endpoint string

	// Site restricts the query with a site: operator.
	Site string

	// Match is the substring a result URL must contain.
	Match string

	UserAgent  string
	Timeout    time.Duration
	MaxResults int
	TitleRunes int

	// Interval is the minimum spacing between requests.
	Interval time.Duration
}

// DefaultSearchConfig looks up YouTube videos, three per topic.
func DefaultSearchConfig() SearchConfig {
	return SearchConfig{
		Endpoint:   "https://html.duckduckgo.com/html/",
		Site:       "youtube.com",
		Match:      "youtube.com/watch",
		UserAgent:  "Mozilla/5.0",
		Timeout:    10 * time.Second,
		MaxResults: 3,
		TitleRunes: 60,
		Interval:   500 * time.Millisecond,
	}
}

// maxBody caps how much of a results page is read.
const maxBody = 1 << 20

// SearchFinder scrapes DuckDuckGo's HTML results for video links. It
// needs no API key and is safe for concurrent use.
type SearchFinder struct {
	cfg     SearchConfig
	client  *http.Client
	limiter *rate.Limiter
	logger  *zap.Logger
}

var _ Finder = (*SearchFinder)(nil)

// NewSearchFinder creates a finder. logger may be nil.
func NewSearchFinder(cfg SearchConfig, logger *zap.Logger) *SearchFinder {
	if logger == nil {
		logger = zap.NewNop()
	}
	limit := rate.Inf
	if cfg.Interval > 0 {
		limit = rate.Every(cfg.Interval)
	}
	return &SearchFinder{
		cfg:     cfg,
		client:  &http.Client{Timeout: cfg.Timeout},
		limiter: rate.NewLimiter(limit, 1),
		logger:  logger,
	}
}

// Find returns up to MaxResults links for topic, or nil on any failure.
func (s *SearchFinder) Find(ctx context.Context, topic string) []Link {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return nil
	}
	links, err := s.search(ctx, topic)
	if err != nil {
		s.logger.Debug("resource search failed", zap.String("topic", topic), zap.Error(err))
		return nil
	}
	return links
}

func (s *SearchFinder) search(ctx context.Context, topic string) ([]Link, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	query := topic
	if s.cfg.Site != "" {
		query += " site:" + s.cfg.Site
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.cfg.Endpoint+"?q="+url.QueryEscape(query), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", s.cfg.UserAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")
	req.Header.Set("Accept-Language", "en-US,en;q=0.5")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d", resp.StatusCode)
	}

	doc, err := html.Parse(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return nil, fmt.Errorf("parse results: %w", err)
	}
	return s.collect(doc), nil
}

// collect walks every anchor in document order and keeps those whose
// target contains cfg.Match and whose text is not blank.
func (s *SearchFinder) collect(doc *html.Node) []Link {
	var (
		links []Link
		seen  = make(map[string]bool)
	)
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if len(links) >= s.cfg.MaxResults {
			return
		}
		if n.Type == html.ElementNode && n.Data == "a" {
			href := resolveRedirect(attr(n, "href"))
			if strings.Contains(href, s.cfg.Match) && !seen[href] {
				if title := textContent(n); title != "" {
					seen[href] = true
					links = append(links, Link{Title: truncateRunes(title, s.cfg.TitleRunes), URL: href})
				}
			}
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return links
}

// resolveRedirect unwraps DuckDuckGo's //duckduckgo.com/l/?uddg=<target>
// redirect links.
func resolveRedirect(href string) string {
	u, err := url.Parse(href)
	if err != nil {
		return href
	}
	if strings.HasSuffix(u.Host, "duckduckgo.com") && strings.HasPrefix(u.Path, "/l/") {
		if target := u.Query().Get("uddg"); target != "" {
			return target
		}
	}
	return href
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func textContent(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.Join(strings.Fields(b.String()), " ")
}

func truncateRunes(s string, n int) string {
	if n <= 0 {
		return s
	}
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
