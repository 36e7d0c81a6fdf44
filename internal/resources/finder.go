// Package resources finds study material links for a topic. Lookups are
// best-effort: a finder that cannot answer returns no links.
package resources

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/abhisek/pathplanner/internal/catalog"
)

// Link is a titled resource URL.
type Link struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// Finder returns zero or more links for a topic. Absence of a link is
// not an error.
type Finder interface {
	Find(ctx context.Context, topic string) []Link
}

// StaticFinder serves the catalog's topic to URL table.
type StaticFinder struct {
	Catalog *catalog.Catalog
}

func (s StaticFinder) Find(_ context.Context, topic string) []Link {
	u, ok := s.Catalog.ResourceURL(topic)
	if !ok {
		return nil
	}
	return []Link{{Title: topic, URL: u}}
}

// Chain asks each finder in turn and returns the first non-empty answer.
type Chain []Finder

func (c Chain) Find(ctx context.Context, topic string) []Link {
	for _, f := range c {
		if ctx.Err() != nil {
			return nil
		}
		if links := f.Find(ctx, topic); len(links) > 0 {
			return links
		}
	}
	return nil
}

// FindAll looks up every topic with at most limit lookups in flight.
// Topics with no links are absent from the result.
func FindAll(ctx context.Context, f Finder, topics []string, limit int) map[string][]Link {
	if limit < 1 {
		limit = 1
	}

	var (
		mu  sync.Mutex
		out = make(map[string][]Link, len(topics))
	)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for _, topic := range topics {
		g.Go(func() error {
			links := f.Find(gctx, topic)
			if len(links) == 0 {
				return nil
			}
			mu.Lock()
			out[topic] = links
			mu.Unlock()
			return nil
		})
	}
	// Finders never fail, so Wait only joins.
	_ = g.Wait()
	return out
}
