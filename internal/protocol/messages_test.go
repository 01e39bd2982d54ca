package protocol

import (
	"errors"
	"testing"
)

func TestParseRoomEventUserTranscribed(t *testing.T) {
	raw := []byte(`{"type":"user_transcribed","session_id":"s1","text":"hello","is_final":true,"speaker_id":"sp1","language":"en"}`)
	msg, err := ParseRoomEvent(raw)
	if err != nil {
		t.Fatalf("ParseRoomEvent() error = %v", err)
	}

	ev, ok := msg.(UserTranscribed)
	if !ok {
		t.Fatalf("message type = %T, want UserTranscribed", msg)
	}
	if ev.SessionID != "s1" || ev.Text != "hello" || !ev.IsFinal {
		t.Fatalf("unexpected transcribed event: %+v", ev)
	}
	if ev.SpeakerID != "sp1" || ev.Language != "en" {
		t.Fatalf("speaker/language not decoded: %+v", ev)
	}
}

func TestParseRoomEventPartialAllowsEmptyText(t *testing.T) {
	raw := []byte(`{"type":"user_transcribed","session_id":"s1","text":"","is_final":false}`)
	if _, err := ParseRoomEvent(raw); err != nil {
		t.Fatalf("ParseRoomEvent() error = %v, partials may carry empty text", err)
	}
}

func TestParseRoomEventConversationItem(t *testing.T) {
	raw := []byte(`{"type":"conversation_item","session_id":"s1","role":"assistant","text":"hi","interrupted":true,"id":"item-9","content":[{"kind":"text","text":"hi"},{"kind":"image","image":"frame://1"}]}`)
	msg, err := ParseRoomEvent(raw)
	if err != nil {
		t.Fatalf("ParseRoomEvent() error = %v", err)
	}

	item, ok := msg.(ConversationItem)
	if !ok {
		t.Fatalf("message type = %T, want ConversationItem", msg)
	}
	if item.Role != "assistant" || !item.Interrupted || item.ID != "item-9" {
		t.Fatalf("unexpected conversation item: %+v", item)
	}
	if len(item.Content) != 2 || item.Content[1].Kind != "image" {
		t.Fatalf("content parts not decoded: %+v", item.Content)
	}
}

func TestParseRoomEventRejectsBadRole(t *testing.T) {
	raw := []byte(`{"type":"conversation_item","session_id":"s1","role":"narrator","text":"hi"}`)
	if _, err := ParseRoomEvent(raw); err == nil {
		t.Fatalf("ParseRoomEvent() should reject unknown role")
	}
}

func TestParseRoomEventDataPacketAndDisconnect(t *testing.T) {
	msg, err := ParseRoomEvent([]byte(`{"type":"data_packet","session_id":"s1","payload_base64":"aGVsbG8="}`))
	if err != nil {
		t.Fatalf("ParseRoomEvent() error = %v", err)
	}
	if _, ok := msg.(DataPacket); !ok {
		t.Fatalf("message type = %T, want DataPacket", msg)
	}

	msg, err = ParseRoomEvent([]byte(`{"type":"disconnect","session_id":"s1"}`))
	if err != nil {
		t.Fatalf("ParseRoomEvent() error = %v", err)
	}
	if _, ok := msg.(Disconnect); !ok {
		t.Fatalf("message type = %T, want Disconnect", msg)
	}
}

func TestParseRoomEventRejectsUnknownType(t *testing.T) {
	_, err := ParseRoomEvent([]byte(`{"type":"wat"}`))
	if !errors.Is(err, ErrUnsupportedType) {
		t.Fatalf("error = %v, want ErrUnsupportedType", err)
	}
}

func TestParseRoomEventRejectsMissingSession(t *testing.T) {
	cases := []string{
		`{"type":"user_transcribed","text":"hello","is_final":true}`,
		`{"type":"data_packet","payload_base64":"aGk="}`,
		`{"type":"disconnect"}`,
	}
	for _, raw := range cases {
		if _, err := ParseRoomEvent([]byte(raw)); err == nil {
			t.Fatalf("ParseRoomEvent(%s) should fail without session_id", raw)
		}
	}
}
