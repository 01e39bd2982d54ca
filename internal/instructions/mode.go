package instructions

import "strings"

// Mode is the current wellness focus, governing which instruction body
// is active. There are exactly two modes; every session starts mental.
type Mode string

const (
	ModeMental   Mode = "mental"
	ModePhysical Mode = "physical"
)

// Body returns the mode-specific instruction body.
func (m Mode) Body() string {
	if m == ModePhysical {
		return PhysicalSession
	}
	return MentalSession
}

// ParseCommand reports whether an accepted transcript contains a mode
// switch command. Matching is substring-based and case-insensitive on
// the trimmed text; input containing neither phrase pair is not a
// command and falls through to normal conversational handling.
func ParseCommand(text string) (Mode, bool) {
	lower := strings.ToLower(strings.TrimSpace(text))
	if strings.Contains(lower, "mental session") || strings.Contains(lower, "mental wellness") {
		return ModeMental, true
	}
	if strings.Contains(lower, "physical session") || strings.Contains(lower, "physical wellness") {
		return ModePhysical, true
	}
	return "", false
}
