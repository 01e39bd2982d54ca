package protocol

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// MessageType identifies websocket payload variants.
type MessageType string

const (
	TypeUserTranscribed  MessageType = "user_transcribed"
	TypeConversationItem MessageType = "conversation_item"
	TypeDataPacket       MessageType = "data_packet"
	TypeDisconnect       MessageType = "disconnect"
	TypeReplyInstruction MessageType = "reply_instruction"
	TypeSystemEvent      MessageType = "system_event"
	TypeErrorEvent       MessageType = "error_event"
)

var ErrUnsupportedType = errors.New("unsupported message type")

type Envelope struct {
	Type MessageType `json:"type"`
}

// UserTranscribed carries one recognized-speech event. Partial
// recognitions arrive with is_final=false and are observed but never
// acted upon.
type UserTranscribed struct {
	Type      MessageType `json:"type"`
	SessionID string      `json:"session_id"`
	Text      string      `json:"text"`
	IsFinal   bool        `json:"is_final"`
	SpeakerID string      `json:"speaker_id,omitempty"`
	Language  string      `json:"language,omitempty"`
	TSMs      int64       `json:"ts_ms,omitempty"`
}

// ContentPart is one piece of a conversation item: plain text, an image
// reference, or an audio frame with its transcript.
type ContentPart struct {
	Kind       string `json:"kind"`
	Text       string `json:"text,omitempty"`
	Image      string `json:"image,omitempty"`
	Transcript string `json:"transcript,omitempty"`
}

// ConversationItem records one user or assistant turn as observed by
// the transport. ID and CreatedAt are optional upstream fields.
type ConversationItem struct {
	Type        MessageType   `json:"type"`
	SessionID   string        `json:"session_id"`
	Role        string        `json:"role"`
	Text        string        `json:"text"`
	Interrupted bool          `json:"interrupted"`
	ID          string        `json:"id,omitempty"`
	CreatedAt   *time.Time    `json:"created_at,omitempty"`
	Content     []ContentPart `json:"content,omitempty"`
}

// DataPacket carries raw best-effort bytes from the room channel.
type DataPacket struct {
	Type          MessageType `json:"type"`
	SessionID     string      `json:"session_id"`
	PayloadBase64 string      `json:"payload_base64"`
}

// Disconnect signals session teardown; it has no other payload.
type Disconnect struct {
	Type      MessageType `json:"type"`
	SessionID string      `json:"session_id"`
}

// ReplyInstruction asks the reply-generation collaborator to produce
// and emit a reply using the instruction payload as behavioral
// guidance.
type ReplyInstruction struct {
	Type        MessageType `json:"type"`
	SessionID   string      `json:"session_id"`
	Instruction string      `json:"instruction"`
	Mode        string      `json:"mode,omitempty"`
	Tone        string      `json:"tone,omitempty"`
}

type SystemEvent struct {
	Type      MessageType `json:"type"`
	SessionID string      `json:"session_id"`
	Code      string      `json:"code"`
	Detail    string      `json:"detail,omitempty"`
}

type ErrorEvent struct {
	Type      MessageType `json:"type"`
	SessionID string      `json:"session_id"`
	Code      string      `json:"code"`
	Source    string      `json:"source"`
	Retryable bool        `json:"retryable"`
	Detail    string      `json:"detail"`
}

// ParseRoomEvent decodes one inbound transport message into its typed
// form, validating the fields the core relies on.
func ParseRoomEvent(raw []byte) (any, error) {
	var env Envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("invalid envelope: %w", err)
	}

	switch env.Type {
	case TypeUserTranscribed:
		var msg UserTranscribed
		if err := json.Unmarshal(raw, &msg); err != nil {
			return nil, err
		}
		if msg.SessionID == "" {
			return nil, errors.New("invalid user_transcribed")
		}
		return msg, nil
	case TypeConversationItem:
		var msg ConversationItem
		if err := json.Unmarshal(raw, &msg); err != nil {
			return nil, err
		}
		if msg.SessionID == "" || (msg.Role != "user" && msg.Role != "assistant") {
			return nil, errors.New("invalid conversation_item")
		}
		return msg, nil
	case TypeDataPacket:
		var msg DataPacket
		if err := json.Unmarshal(raw, &msg); err != nil {
			return nil, err
		}
		if msg.SessionID == "" {
			return nil, errors.New("invalid data_packet")
		}
		return msg, nil
	case TypeDisconnect:
		var msg Disconnect
		if err := json.Unmarshal(raw, &msg); err != nil {
			return nil, err
		}
		if msg.SessionID == "" {
			return nil, errors.New("invalid disconnect")
		}
		return msg, nil
	default:
		return nil, ErrUnsupportedType
	}
}
