package resources

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

const resultsPage = `<html><body>
<div class="result results_links">
  <a class="result__a" href="//duckduckgo.com/l/?uddg=https%3A%2F%2Fwww.youtube.com%2Fwatch%3Fv%3Daaa&amp;rut=x">Binary Search Trees
     explained in 10 minutes</a>
</div>
<div class="result results_links">
  <a class="result__a" href="https://example.com/blog">Not a video</a>
</div>
<div class="result results_links">
  <a class="result__a" href="https://www.youtube.com/watch?v=bbb"><b>AVL</b> Trees - a really long title that keeps going well past sixty characters</a>
  <a href="https://www.youtube.com/watch?v=bbb">duplicate link</a>
</div>
<div class="result results_links">
  <a href="https://www.youtube.com/watch?v=empty">   </a>
  <a href="https://www.youtube.com/watch?v=ccc">Red-Black Trees</a>
  <a href="https://www.youtube.com/watch?v=ddd">Fourth result</a>
</div>
</body></html>`

func newTestSearch(t *testing.T, handler http.HandlerFunc) *SearchFinder {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := DefaultSearchConfig()
	cfg.Endpoint = server.URL + "/html/"
	cfg.Interval = 0
	return NewSearchFinder(cfg, zaptest.NewLogger(t))
}

func TestSearchFinder_ParsesResults(t *testing.T) {
	var query, agent string
	f := newTestSearch(t, func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.Query().Get("q")
		agent = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(resultsPage))
	})

	links := f.Find(context.Background(), "Binary Trees")

	assert.Equal(t, "Binary Trees site:youtube.com", query)
	assert.Equal(t, "Mozilla/5.0", agent)
	require.Len(t, links, 3)

	assert.Equal(t, "https://www.youtube.com/watch?v=aaa", links[0].URL)
	assert.Equal(t, "Binary Search Trees explained in 10 minutes", links[0].Title)

	assert.Equal(t, "https://www.youtube.com/watch?v=bbb", links[1].URL)
	assert.Len(t, []rune(links[1].Title), 60)
	assert.True(t, strings.HasPrefix(links[1].Title, "AVL Trees"))

	assert.Equal(t, "https://www.youtube.com/watch?v=ccc", links[2].URL, "blank titles and duplicates are skipped")
}

func TestSearchFinder_FailuresReturnNothing(t *testing.T) {
	t.Run("http error", func(t *testing.T) {
		f := newTestSearch(t, func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "blocked", http.StatusForbidden)
		})
		assert.Empty(t, f.Find(context.Background(), "Graphs"))
	})

	t.Run("timeout", func(t *testing.T) {
		release := make(chan struct{})
		f := newTestSearch(t, func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-release:
			case <-r.Context().Done():
			}
		})
		defer close(release)
		f.client.Timeout = 20 * time.Millisecond
		assert.Empty(t, f.Find(context.Background(), "Graphs"))
	})

	t.Run("unreachable", func(t *testing.T) {
		cfg := DefaultSearchConfig()
		cfg.Endpoint = "http://127.0.0.1:1/html/"
		cfg.Interval = 0
		assert.Empty(t, NewSearchFinder(cfg, nil).Find(context.Background(), "Graphs"))
	})

	t.Run("blank topic", func(t *testing.T) {
		var calls atomic.Int32
		f := newTestSearch(t, func(w http.ResponseWriter, r *http.Request) { calls.Add(1) })
		assert.Empty(t, f.Find(context.Background(), "  "))
		assert.Zero(t, calls.Load())
	})
}

func TestResolveRedirect(t *testing.T) {
	tests := []struct {
		href, want string
	}{
		{"//duckduckgo.com/l/?uddg=https%3A%2F%2Fwww.youtube.com%2Fwatch%3Fv%3Dx&rut=abc", "https://www.youtube.com/watch?v=x"},
		{"https://www.youtube.com/watch?v=y", "https://www.youtube.com/watch?v=y"},
		{"//duckduckgo.com/l/?other=1", "//duckduckgo.com/l/?other=1"},
		{"/relative", "/relative"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, resolveRedirect(tt.href), tt.href)
	}
}

func TestTruncateRunes(t *testing.T) {
	assert.Equal(t, "héllo", truncateRunes("héllo wörld", 5))
	assert.Equal(t, "short", truncateRunes("short", 60))
	assert.Equal(t, "any", truncateRunes("any", 0))
}
