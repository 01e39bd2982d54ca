package transcript

import "testing"

func TestFilterAcceptsFirstAndNewText(t *testing.T) {
	var f Filter
	inputs := []string{"I feel anxious", "I feel anxious", "ok thanks"}
	accepted := 0
	for _, in := range inputs {
		if _, ok := f.Accept(in, true); ok {
			accepted++
		}
	}
	if accepted != 2 {
		t.Fatalf("accepted %d transcripts, want 2", accepted)
	}
	if f.Last() != "ok thanks" {
		t.Fatalf("Last() = %q, want %q", f.Last(), "ok thanks")
	}
}

func TestFilterStickyDedup(t *testing.T) {
	var f Filter
	if _, ok := f.Accept("same phrase", true); !ok {
		t.Fatalf("first occurrence should be accepted")
	}
	// Second and third consecutive repeats are both suppressed.
	if _, ok := f.Accept("same phrase", true); ok {
		t.Fatalf("second occurrence should be rejected")
	}
	if _, ok := f.Accept("same phrase", true); ok {
		t.Fatalf("third occurrence should be rejected")
	}
}

func TestFilterRejectsPartials(t *testing.T) {
	var f Filter
	if _, ok := f.Accept("hello the", false); ok {
		t.Fatalf("partial recognition must not be accepted")
	}
	if f.Last() != "" {
		t.Fatalf("partial must not update dedup memory, got %q", f.Last())
	}

	// A non-final event matching the last accepted text must neither be
	// accepted nor disturb the memory.
	if _, ok := f.Accept("hello there", true); !ok {
		t.Fatalf("final transcript should be accepted")
	}
	if _, ok := f.Accept("hello there", false); ok {
		t.Fatalf("non-final duplicate must be rejected")
	}
	if f.Last() != "hello there" {
		t.Fatalf("Last() = %q, want %q", f.Last(), "hello there")
	}
}

func TestFilterRejectsEmptyAfterTrim(t *testing.T) {
	var f Filter
	if _, ok := f.Accept("   \n\t", true); ok {
		t.Fatalf("whitespace-only transcript must be rejected")
	}
}

func TestFilterTrimsBeforeComparing(t *testing.T) {
	var f Filter
	if _, ok := f.Accept("  take a breath  ", true); !ok {
		t.Fatalf("first occurrence should be accepted")
	}
	if _, ok := f.Accept("take a breath", true); ok {
		t.Fatalf("trimmed-equal repeat should be rejected")
	}
}
