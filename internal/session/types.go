package session

import "time"

// CreateRequest defines payload for creating a new session.
type CreateRequest struct {
	RoomLabel string `json:"room_label"`
}

// CreateResponse returns created session metadata.
type CreateResponse struct {
	SessionID       string    `json:"session_id"`
	RoomLabel       string    `json:"room_label,omitempty"`
	Status          Status    `json:"status"`
	StartedAt       time.Time `json:"started_at"`
	LastActivityAt  time.Time `json:"last_activity_at"`
	InactivityTTLMS int64     `json:"inactivity_ttl_ms"`
}
