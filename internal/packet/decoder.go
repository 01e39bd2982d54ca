package packet

import (
	"encoding/json"
	"strings"
	"unicode/utf8"
)

// Kind classifies an inbound data packet. Deciding the variant once and
// matching on it keeps malformed input out of error-driven control flow:
// packet delivery is best-effort and bad bytes are expected, not
// exceptional.
type Kind int

const (
	// KindStructured means the payload parsed as a JSON object.
	KindStructured Kind = iota
	// KindPlainText means the payload is valid UTF-8 but not a JSON object.
	KindPlainText
	// KindMalformed means the payload could not be decoded at all.
	KindMalformed
)

// Result is the decoded form of one inbound packet.
type Result struct {
	Kind   Kind
	Object map[string]any // set for KindStructured
	Text   string         // trimmed text for KindPlainText
}

// Decode sniffs a raw payload. It never returns an error; adversarial
// or malformed input degrades to KindMalformed and the caller drops it.
func Decode(raw []byte) Result {
	if !utf8.Valid(raw) {
		return Result{Kind: KindMalformed}
	}
	var obj map[string]any
	if err := json.Unmarshal(raw, &obj); err == nil && obj != nil {
		return Result{Kind: KindStructured, Object: obj}
	}
	return Result{Kind: KindPlainText, Text: strings.TrimSpace(string(raw))}
}

// ChatText extracts the text of a typed chat message. It reports false
// for any other structured message type; unknown types are accepted but
// not acted upon, for forward compatibility.
func (r Result) ChatText() (string, bool) {
	if r.Kind != KindStructured {
		return "", false
	}
	if t, _ := r.Object["type"].(string); t != "chat" {
		return "", false
	}
	text, _ := r.Object["text"].(string)
	return text, true
}

// RoomName walks the nested join-response structure of the transport's
// engine payload looking for a human-readable room name. Any shape
// mismatch along the path reports false; callers fall back to a
// synthetic identifier.
func RoomName(obj map[string]any) (string, bool) {
	cur := obj
	for _, key := range []string{"from", "engine", "latestJoinResponse", "room"} {
		next, ok := cur[key].(map[string]any)
		if !ok {
			return "", false
		}
		cur = next
	}
	name, _ := cur["name"].(string)
	name = strings.TrimSpace(name)
	if name == "" {
		return "", false
	}
	return name, true
}
