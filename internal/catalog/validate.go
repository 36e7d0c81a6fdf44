package catalog

import (
	"fmt"
	"maps"
	"net/url"
	"slices"
	"strings"
)

// validate performs structural checks on a decoded catalog.
// Returns a combined error describing all problems found, or nil if valid.
func validate(f file) error {
	var errs []string

	if len(f.Tracks) == 0 {
		errs = append(errs, "catalog has no tracks")
	}

	seen := make(map[Track]bool, len(f.Tracks))
	for i, t := range f.Tracks {
		if t.ID == TrackUnknown {
			errs = append(errs, fmt.Sprintf("track #%d has no id", i+1))
			continue
		}
		if seen[t.ID] {
			errs = append(errs, fmt.Sprintf("duplicate track id: %q", t.ID))
		}
		seen[t.ID] = true

		for j, topic := range t.Topics {
			if strings.TrimSpace(topic) == "" {
				errs = append(errs, fmt.Sprintf("track %q topic #%d is blank", t.ID, j+1))
			}
		}
	}

	for _, topic := range slices.Sorted(maps.Keys(f.Resources)) {
		raw := f.Resources[topic]
		u, err := url.Parse(raw)
		if err != nil || u.Scheme == "" || u.Host == "" {
			errs = append(errs, fmt.Sprintf("resource for %q is not an absolute URL: %q", topic, raw))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("catalog validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}
