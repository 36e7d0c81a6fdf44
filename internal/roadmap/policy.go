package roadmap

import (
	"fmt"
	"math/rand/v2"
	"slices"

	"github.com/abhisek/pathplanner/internal/catalog"
)

// PolicyKind enumerates the ways topics can be reordered before partitioning.
type PolicyKind int

const (
	PolicyPreserveOrder PolicyKind = iota // Keep input order
	PolicyLexicographic                   // Sort ascending by byte order
	PolicyReverse                         // Reverse input order
	PolicyShuffle                         // Seeded pseudo-random permutation
	PolicyCustom                          // Caller-supplied reorder function
)

// String returns the policy kind name.
func (k PolicyKind) String() string {
	switch k {
	case PolicyPreserveOrder:
		return "preserve"
	case PolicyLexicographic:
		return "lexicographic"
	case PolicyReverse:
		return "reverse"
	case PolicyShuffle:
		return "shuffle"
	case PolicyCustom:
		return "custom"
	default:
		return fmt.Sprintf("PolicyKind(%d)", int(k))
	}
}

// Policy is a topic reordering strategy. The zero value preserves order.
type Policy struct {
	Kind PolicyKind

	// Seed drives PolicyShuffle. The same seed always yields the same order.
	Seed uint64

	// Reorder is used by PolicyCustom. It receives a copy of the topics and
	// may return it modified or return a new slice.
	Reorder func([]string) []string
}

// PreserveOrder leaves the topics as given.
func PreserveOrder() Policy { return Policy{Kind: PolicyPreserveOrder} }

// LexicographicSort sorts topics ascending.
func LexicographicSort() Policy { return Policy{Kind: PolicyLexicographic} }

// ReverseOrder reverses the topics.
func ReverseOrder() Policy { return Policy{Kind: PolicyReverse} }

// Shuffle permutes topics deterministically from seed.
func Shuffle(seed uint64) Policy { return Policy{Kind: PolicyShuffle, Seed: seed} }

// Custom applies fn to a copy of the topics.
func Custom(fn func([]string) []string) Policy {
	return Policy{Kind: PolicyCustom, Reorder: fn}
}

// Apply returns the reordered topics. The input slice is never modified.
func (p Policy) Apply(topics []string) []string {
	out := slices.Clone(topics)

	switch p.Kind {
	case PolicyLexicographic:
		slices.Sort(out)
	case PolicyReverse:
		slices.Reverse(out)
	case PolicyShuffle:
		r := rand.New(rand.NewPCG(p.Seed, p.Seed^0x9e3779b97f4a7c15))
		r.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	case PolicyCustom:
		if p.Reorder != nil {
			out = p.Reorder(out)
		}
	}
	return out
}

// PolicyForTrack returns the ordering policy for an explicit track.
// Tracks without a dedicated policy keep their catalog order.
func PolicyForTrack(t catalog.Track) Policy {
	switch t {
	case catalog.TrackGATE:
		return LexicographicSort()
	case catalog.TrackClass10:
		return PreserveOrder()
	case catalog.TrackMachineLearning:
		return ReverseOrder()
	default:
		return PreserveOrder()
	}
}

// PolicyForGoal derives the policy from free-text goal keywords.
// An empty goal preserves order.
func PolicyForGoal(goal string) Policy {
	return PolicyForTrack(catalog.TrackForGoal(goal))
}
