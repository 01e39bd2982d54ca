package transcript

import "strings"

// Filter suppresses partial and duplicate recognized utterances so the
// same phrase re-emitted by the recognizer (jitter, re-finalization)
// does not trigger command handling twice.
//
// Dedup is sticky: the memory only advances on an accepted transcript,
// so repeating the same phrase any number of times in a row is
// suppressed after the first acceptance. Not safe for concurrent use;
// the session event loop is the single caller.
type Filter struct {
	last string
}

// Accept decides whether a transcribed event should be acted upon and
// returns the trimmed text alongside the decision. Rejected events
// never update the dedup memory.
func (f *Filter) Accept(text string, final bool) (string, bool) {
	if !final {
		return "", false
	}
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return "", false
	}
	if trimmed == f.last {
		return "", false
	}
	f.last = trimmed
	return trimmed, true
}

// Last returns the most recently accepted transcript.
func (f *Filter) Last() string {
	return f.last
}
