package catalog

import "strings"

// Track identifies a study track such as an exam or a course of study.
type Track string

const (
	TrackGATE            Track = "gate"
	TrackClass10         Track = "class-10"
	TrackMachineLearning Track = "machine-learning"

	// TrackUnknown is returned when no track could be determined.
	TrackUnknown Track = ""
)

// BuiltinTracks returns the tracks with a known ordering policy, in display order.
func BuiltinTracks() []Track {
	return []Track{
		TrackGATE,
		TrackClass10,
		TrackMachineLearning,
	}
}

// TrackDisplayName returns a human-readable name for a track.
func TrackDisplayName(t Track) string {
	switch t {
	case TrackGATE:
		return "GATE"
	case TrackClass10:
		return "Class 10 (CBSE)"
	case TrackMachineLearning:
		return "Machine Learning"
	case TrackUnknown:
		return "General"
	default:
		return string(t)
	}
}

// ParseTrack normalizes a free-text track name ("Class 10", "ML",
// "machine learning") into a Track. Names that match no builtin track are
// returned lowercased and hyphenated so custom catalog tracks still resolve.
func ParseTrack(s string) Track {
	norm := strings.Join(strings.Fields(strings.ToLower(s)), "-")
	switch norm {
	case "":
		return TrackUnknown
	case "gate":
		return TrackGATE
	case "class-10", "class10", "cbse", "class-x":
		return TrackClass10
	case "ml", "machine-learning":
		return TrackMachineLearning
	}
	return Track(norm)
}

// goalRule maps a keyword category to a track. Phrases are matched as
// case-insensitive substrings.
type goalRule struct {
	track   Track
	phrases []string
}

// goalRules are checked in order; the first matching category wins.
// "ml" is a bare substring, so "HTML" and "MLOps" also select the
// machine learning track.
var goalRules = []goalRule{
	{track: TrackGATE, phrases: []string{"gate"}},
	{track: TrackClass10, phrases: []string{"class 10", "cbse"}},
	{track: TrackMachineLearning, phrases: []string{"machine learning", "ml"}},
}

// TrackForGoal guesses the track for a free-text goal by keyword matching.
// Returns TrackUnknown when no keyword category matches.
func TrackForGoal(goal string) Track {
	lower := strings.ToLower(goal)
	if strings.TrimSpace(lower) == "" {
		return TrackUnknown
	}
	for _, rule := range goalRules {
		for _, p := range rule.phrases {
			if strings.Contains(lower, p) {
				return rule.track
			}
		}
	}
	return TrackUnknown
}
