package tone

import "strings"

// Hint is a coarse energy-level classification of recent user text,
// used to modulate reply pacing.
type Hint string

const (
	HintLow     Hint = "low"
	HintHigh    Hint = "high"
	HintNeutral Hint = "neutral"
)

// Cue lists include common inflections so partial matches like
// "stressing" or "tiredness" still register.
var lowCues = []string{
	"tired",
	"tire",
	"stressed",
	"stressing",
	"sad",
	"anxious",
	"worried",
	"down",
	"depressed",
	"overwhelmed",
}

var highCues = []string{
	"good",
	"great",
	"energized",
	"happy",
	"awesome",
	"fine",
	"well",
}

// Classify derives a tone hint from free text. Low-energy cues take
// priority over high-energy cues when both appear. Unknown or empty
// input classifies as neutral; there is no failure mode.
func Classify(text string) Hint {
	lower := strings.ToLower(text)
	for _, w := range lowCues {
		if strings.Contains(lower, w) {
			return HintLow
		}
	}
	for _, w := range highCues {
		if strings.Contains(lower, w) {
			return HintHigh
		}
	}
	return HintNeutral
}
