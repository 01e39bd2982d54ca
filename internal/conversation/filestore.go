package conversation

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// FileStore writes one JSON transcript file per ended session.
type FileStore struct {
	dir string
}

func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

// Persist serializes the turn log to a fresh file named by the session
// key and teardown timestamp. Prior sessions are never overwritten or
// merged: on a name collision a numeric suffix is probed. It returns
// the path of the written file.
func (s *FileStore) Persist(key string, turns []Turn) (string, error) {
	if turns == nil {
		turns = []Turn{}
	}
	data, err := json.MarshalIndent(turns, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode conversation: %w", err)
	}

	stamp := time.Now().UTC().Format("20060102_150405")
	base := sanitizeKey(key) + "_" + stamp
	path := filepath.Join(s.dir, base+".json")
	for n := 2; ; n++ {
		// Any stat failure ends the probe; WriteFile reports the real
		// problem if the path is unusable.
		if _, err := os.Stat(path); err != nil {
			break
		}
		path = filepath.Join(s.dir, fmt.Sprintf("%s-%d.json", base, n))
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write conversation file: %w", err)
	}
	return path, nil
}

// sanitizeKey keeps room-derived identifiers filesystem-safe.
func sanitizeKey(key string) string {
	key = strings.TrimSpace(key)
	if key == "" {
		key = "session"
	}
	var b strings.Builder
	for _, r := range key {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '-' || r == '_' || r == '.':
			b.WriteRune(r)
		default:
			b.WriteByte('-')
		}
	}
	return b.String()
}
