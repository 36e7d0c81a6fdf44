package progress

// Band is a qualitative completion level.
type Band int

const (
	BandNotStarted  Band = iota // exactly 0%
	BandKeepPushing             // (0, 40)
	BandDoingWell               // [40, 70)
	BandAlmostThere             // [70, 90)
	BandFinalPush               // [90, 100)
	BandComplete                // 100%
)

// BandFor maps a percentage to its band. Values below 0 count as not
// started and values above 100 as complete.
func BandFor(pct float64) Band {
	switch {
	case pct <= 0:
		return BandNotStarted
	case pct < 40:
		return BandKeepPushing
	case pct < 70:
		return BandDoingWell
	case pct < 90:
		return BandAlmostThere
	case pct < 100:
		return BandFinalPush
	default:
		return BandComplete
	}
}

// Message returns the affirmation shown for the band.
func (b Band) Message() string {
	switch b {
	case BandNotStarted:
		return "🚀 Just getting started? Let’s crush Week 1!"
	case BandKeepPushing:
		return "🔥 Keep pushing! Small steps make big changes."
	case BandDoingWell:
		return "💪 You're doing well — stay consistent!"
	case BandAlmostThere:
		return "🌟 Almost there! Let’s finish strong!"
	case BandFinalPush:
		return "🏁 Final push — don’t leave any topic behind!"
	default:
		return "🎉 Incredible! You’ve nailed this week!"
	}
}

// Affirmation returns the encouragement message for a completion percentage.
func Affirmation(pct float64) string {
	return BandFor(pct).Message()
}
