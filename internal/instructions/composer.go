package instructions

import (
	"fmt"

	"github.com/lorenzovitale/mindflex/internal/tone"
)

// Compose builds the full instruction payload for a reply in the given
// mode with the given tone hint. GlobalBehavior is always present and
// always first so the persistent behavioral contract survives every
// mode switch. Pure; callers decide when to invoke it.
func Compose(m Mode, t tone.Hint) string {
	transition := fmt.Sprintf("\nYou're now in %s wellness mode — let's continue naturally from where we left off.\n", m)
	toneGuideline := fmt.Sprintf("\n(When replying, adopt a '%s' energy level in tone and pacing.)\n", t)
	return GlobalBehavior + transition + toneGuideline + m.Body()
}

// Acknowledge builds the soft reminder used when a switch command names
// the mode that is already active. It deliberately omits the full mode
// body so the assistant does not restart the session script.
func Acknowledge(m Mode) string {
	return GlobalBehavior + fmt.Sprintf("\nWe're already in %s mode — continuing from here.", m)
}

// ToneDirective builds the directive merged into the next generated
// reply after a typed or plain-text chat message carrying a tone cue.
func ToneDirective(t tone.Hint) string {
	return fmt.Sprintf("Maintain a '%s' energy and flow naturally. ", t) + GlobalBehavior
}

// Initial is the instruction emitted once at session start: the global
// contract plus the persona and the default mental-mode body.
func Initial() string {
	return GlobalBehavior + Persona + MentalSession
}
