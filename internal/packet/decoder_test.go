package packet

import "testing"

func TestDecodeTypedChat(t *testing.T) {
	res := Decode([]byte(`{"type":"chat","text":"I feel great"}`))
	if res.Kind != KindStructured {
		t.Fatalf("Kind = %d, want KindStructured", res.Kind)
	}
	text, ok := res.ChatText()
	if !ok {
		t.Fatalf("ChatText() should report a chat message")
	}
	if text != "I feel great" {
		t.Fatalf("ChatText() = %q, want %q", text, "I feel great")
	}
}

func TestDecodeChatWithoutTextDefaultsEmpty(t *testing.T) {
	res := Decode([]byte(`{"type":"chat"}`))
	text, ok := res.ChatText()
	if !ok || text != "" {
		t.Fatalf("ChatText() = (%q, %v), want empty text, true", text, ok)
	}
}

func TestDecodeUnknownStructuredTypeIsNotChat(t *testing.T) {
	res := Decode([]byte(`{"type":"presence","user":"u1"}`))
	if res.Kind != KindStructured {
		t.Fatalf("Kind = %d, want KindStructured", res.Kind)
	}
	if _, ok := res.ChatText(); ok {
		t.Fatalf("non-chat structured message must not be acted upon")
	}
}

func TestDecodePlainText(t *testing.T) {
	res := Decode([]byte("hello there"))
	if res.Kind != KindPlainText {
		t.Fatalf("Kind = %d, want KindPlainText", res.Kind)
	}
	if res.Text != "hello there" {
		t.Fatalf("Text = %q, want %q", res.Text, "hello there")
	}
}

func TestDecodeNonObjectJSONIsPlainText(t *testing.T) {
	// A bare JSON scalar is not a structured packet for our purposes.
	res := Decode([]byte(`42`))
	if res.Kind != KindPlainText {
		t.Fatalf("Kind = %d, want KindPlainText", res.Kind)
	}
}

func TestDecodeInvalidUTF8IsMalformed(t *testing.T) {
	res := Decode([]byte{0xff, 0xfe, 0xfd})
	if res.Kind != KindMalformed {
		t.Fatalf("Kind = %d, want KindMalformed", res.Kind)
	}
}

func TestRoomNameNestedPath(t *testing.T) {
	res := Decode([]byte(`{"from":{"engine":{"latestJoinResponse":{"room":{"name":"calm-river"}}}}}`))
	name, ok := RoomName(res.Object)
	if !ok || name != "calm-river" {
		t.Fatalf("RoomName() = (%q, %v), want (calm-river, true)", name, ok)
	}
}

func TestRoomNameShapeMismatch(t *testing.T) {
	cases := []string{
		`{}`,
		`{"from":"not an object"}`,
		`{"from":{"engine":{"latestJoinResponse":{"room":{}}}}}`,
		`{"from":{"engine":{"latestJoinResponse":{"room":{"name":"  "}}}}}`,
	}
	for _, raw := range cases {
		res := Decode([]byte(raw))
		if _, ok := RoomName(res.Object); ok {
			t.Fatalf("RoomName(%s) should report false", raw)
		}
	}
}
