package progress

import (
	"strconv"
	"strings"

	"github.com/abhisek/pathplanner/internal/roadmap"
)

// KeySeparator joins a goal and a week number into a Store key.
const KeySeparator = "_"

// Store maps goal+week keys to per-topic completion flags. It is the
// durable progress state, loaded and saved as a whole.
type Store map[string]map[string]bool

// Key returns the store key for a goal's week.
func Key(goal string, week int) string {
	return goal + KeySeparator + strconv.Itoa(week)
}

// SplitKey reverses Key. The week is taken from after the last separator,
// so goals may themselves contain the separator.
func SplitKey(key string) (goal string, week int, ok bool) {
	i := strings.LastIndex(key, KeySeparator)
	if i < 0 {
		return "", 0, false
	}
	week, err := strconv.Atoi(key[i+len(KeySeparator):])
	if err != nil {
		return "", 0, false
	}
	return key[:i], week, true
}

// EnsureWeek creates a false entry for every topic of the week that has
// none yet and returns how many were created. Existing entries are never
// overwritten.
func (s Store) EnsureWeek(goal string, week int, topics []string) int {
	key := Key(goal, week)
	entries := s[key]
	if entries == nil {
		entries = make(map[string]bool, len(topics))
		s[key] = entries
	}
	added := 0
	for _, t := range topics {
		if _, ok := entries[t]; !ok {
			entries[t] = false
			added++
		}
	}
	return added
}

// Ensure runs EnsureWeek for every week of the plan.
func (s Store) Ensure(goal string, plan *roadmap.Plan) int {
	added := 0
	for _, w := range plan.Weeks {
		added += s.EnsureWeek(goal, w.Number, w.Topics)
	}
	return added
}

// Set records the completion state of a topic.
func (s Store) Set(goal string, week int, topic string, done bool) {
	key := Key(goal, week)
	if s[key] == nil {
		s[key] = make(map[string]bool)
	}
	s[key][topic] = done
}

// Toggle flips a topic's completion state and returns the new value.
// A topic with no entry is treated as incomplete.
func (s Store) Toggle(goal string, week int, topic string) bool {
	done := !s.Completed(goal, week, topic)
	s.Set(goal, week, topic, done)
	return done
}

// Completed reports whether a topic is marked done.
func (s Store) Completed(goal string, week int, topic string) bool {
	return s[Key(goal, week)][topic]
}

// Has reports whether the store holds an entry for the topic, either
// done or not.
func (s Store) Has(goal string, week int, topic string) bool {
	_, ok := s[Key(goal, week)][topic]
	return ok
}

// Clone returns a deep copy.
func (s Store) Clone() Store {
	out := make(Store, len(s))
	for k, entries := range s {
		cp := make(map[string]bool, len(entries))
		for t, done := range entries {
			cp[t] = done
		}
		out[k] = cp
	}
	return out
}
