package tone

import "testing"

func TestClassifyLowCue(t *testing.T) {
	if got := Classify("I'm so tired today"); got != HintLow {
		t.Fatalf("Classify() = %q, want %q", got, HintLow)
	}
}

func TestClassifyLowWinsOverHigh(t *testing.T) {
	// A low-energy cue must take priority even when a high-energy word
	// appears earlier in the string.
	if got := Classify("I was feeling great but now I'm stressed"); got != HintLow {
		t.Fatalf("Classify() = %q, want %q", got, HintLow)
	}
}

func TestClassifyHighCue(t *testing.T) {
	if got := Classify("Feeling AWESOME right now"); got != HintHigh {
		t.Fatalf("Classify() = %q, want %q", got, HintHigh)
	}
}

func TestClassifyNeutralWhenNoCue(t *testing.T) {
	if got := Classify("what color is my shirt"); got != HintNeutral {
		t.Fatalf("Classify() = %q, want %q", got, HintNeutral)
	}
}

func TestClassifyEmptyIsNeutral(t *testing.T) {
	if got := Classify(""); got != HintNeutral {
		t.Fatalf("Classify() = %q, want %q", got, HintNeutral)
	}
}

func TestClassifyInflections(t *testing.T) {
	if got := Classify("work has been stressing me out"); got != HintLow {
		t.Fatalf("Classify() = %q, want %q", got, HintLow)
	}
}
