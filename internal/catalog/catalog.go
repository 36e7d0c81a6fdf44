package catalog

import (
	_ "embed"
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultCatalogYAML []byte

// TrackEntry is a single track and its ordered topic pool.
type TrackEntry struct {
	ID     Track    `yaml:"id"`
	Name   string   `yaml:"name"`
	Topics []string `yaml:"topics"`
}

// file mirrors the on-disk catalog layout.
type file struct {
	Tracks    []TrackEntry      `yaml:"tracks"`
	Resources map[string]string `yaml:"resources"`
}

// Catalog is a static skill catalog: track name to ordered topics, plus an
// optional topic to resource URL table.
type Catalog struct {
	tracks    []TrackEntry
	byID      map[Track]int
	resources map[string]string
}

// Default returns the catalog embedded in the binary.
func Default() *Catalog {
	c, err := Parse(defaultCatalogYAML)
	if err != nil {
		panic(fmt.Sprintf("embedded catalog is invalid: %v", err))
	}
	return c
}

// Load reads and validates a catalog file.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return c, nil
}

// Parse decodes a YAML catalog and validates it.
func Parse(data []byte) (*Catalog, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	for i := range f.Tracks {
		f.Tracks[i].ID = ParseTrack(string(f.Tracks[i].ID))
	}
	if err := validate(f); err != nil {
		return nil, err
	}

	c := &Catalog{
		tracks:    f.Tracks,
		byID:      make(map[Track]int, len(f.Tracks)),
		resources: f.Resources,
	}
	for i, t := range f.Tracks {
		c.byID[t.ID] = i
	}
	if c.resources == nil {
		c.resources = make(map[string]string)
	}
	return c, nil
}

// Tracks returns all tracks in catalog order.
func (c *Catalog) Tracks() []TrackEntry {
	out := make([]TrackEntry, len(c.tracks))
	for i, t := range c.tracks {
		t.Topics = slices.Clone(t.Topics)
		out[i] = t
	}
	return out
}

// Topics returns the topic pool for a track. The second result is false
// when the catalog has no such track.
func (c *Catalog) Topics(t Track) ([]string, bool) {
	i, ok := c.byID[t]
	if !ok {
		return nil, false
	}
	return slices.Clone(c.tracks[i].Topics), true
}

// TopicsForGoal resolves a goal to a track with TrackForGoal and returns
// that track's topics. Unknown goals yield an empty pool.
func (c *Catalog) TopicsForGoal(goal string) (Track, []string) {
	t := TrackForGoal(goal)
	topics, _ := c.Topics(t)
	return t, topics
}

// ResourceURL returns the static resource link for a topic, if any.
func (c *Catalog) ResourceURL(topic string) (string, bool) {
	u, ok := c.resources[topic]
	return u, ok
}
