package conversation

import "time"

// Role identifies the speaker of a logged turn.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Turn is one recorded utterance. ID and CreatedAt are only present
// when the upstream conversation-item event supplied them.
type Turn struct {
	ID          string     `json:"id,omitempty"`
	Role        Role       `json:"role"`
	Text        string     `json:"text"`
	Interrupted bool       `json:"interrupted"`
	CreatedAt   *time.Time `json:"created_at,omitempty"`
}

// Log accumulates the turns of a single session in arrival order.
// Turns are never reordered or deduplicated; interleaved user and
// assistant turns are preserved exactly as observed. Not safe for
// concurrent use; the session event loop is the single writer.
type Log struct {
	turns []Turn
}

// Append records one turn.
func (l *Log) Append(t Turn) {
	l.turns = append(l.turns, t)
}

// Len reports the number of recorded turns.
func (l *Log) Len() int {
	return len(l.turns)
}

// Snapshot returns a copy of the turn log, never nil, so an empty
// session still serializes as an empty JSON array.
func (l *Log) Snapshot() []Turn {
	out := make([]Turn, len(l.turns))
	copy(out, l.turns)
	return out
}
