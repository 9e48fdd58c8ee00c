package events

import (
	"time"

	"github.com/spec-kit/buddy-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventMatchesComputed EventType = "matches_computed"
	EventRosterRejected  EventType = "roster_rejected"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	RunID     string      `json:"run_id,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// MatchesComputedPayload payload.
type MatchesComputedPayload struct {
	Summary domain.MatchSummary `json:"summary"`
	Seeded  bool                `json:"seeded"`
}

// RosterRejectedPayload payload.
type RosterRejectedPayload struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}
