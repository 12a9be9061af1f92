package models

import "time"

// SessionOutcome describes how a session was closed
type SessionOutcome string

const (
	// SessionOutcomeCancelled indicates the session was closed before it started
	SessionOutcomeCancelled SessionOutcome = "cancelled"

	// SessionOutcomeEnded indicates the session was closed after it started
	SessionOutcomeEnded SessionOutcome = "ended"
)

// HistoryEntry is the record kept for a session once it has been closed
type HistoryEntry struct {
	// SessionID is the ID of the closed session
	SessionID string `json:"session_id"`

	// ActivityName is the name of the activity the session was hosted for
	ActivityName string `json:"activity_name"`

	// HostID is the user who hosted the session
	HostID string `json:"host_id"`

	// ClosedBy is the user who confirmed the end
	ClosedBy string `json:"closed_by"`

	// StartTime is when the session was scheduled to start
	StartTime time.Time `json:"start_time"`

	// ClosedAt is when the session was closed
	ClosedAt time.Time `json:"closed_at"`

	// Outcome is whether the session was cancelled or ended
	Outcome SessionOutcome `json:"outcome"`

	// Committed is the number of participants who said yes
	Committed int `json:"committed"`

	// Tentative is the number of participants who said maybe
	Tentative int `json:"tentative"`

	// Declined is the number of participants who said no
	Declined int `json:"declined"`
}
