package models

import (
	"context"
	"sort"
	"time"
)

// Timer is the handle to a session's background checkpoint task
type Timer interface {
	// Cancel stops any pending checkpoints. It is safe to call more than once.
	Cancel(ctx context.Context)
}

// MessageRef identifies a message in a channel
type MessageRef struct {
	// ChannelID is the channel the message was posted in
	ChannelID string

	// MessageID is the Discord message ID
	MessageID string
}

// IsZero reports whether the reference points nowhere
func (r MessageRef) IsZero() bool {
	return r.ChannelID == "" || r.MessageID == ""
}

// Session represents the single scheduled activity currently being hosted
type Session struct {
	// ID is the unique identifier for this session
	ID string

	// Activity is the activity the session was hosted for, copied at creation
	Activity Activity

	// Participants maps a Discord user ID to that user's response
	Participants map[string]RSVP

	// StartTime is when the session starts. It never changes after creation.
	StartTime time.Time

	// HostID is the user ID of the participant who created the session
	HostID string

	// Description is the optional free text shown in the announcement
	Description string

	// Message is the pinned announcement carrying the RSVP buttons
	Message MessageRef

	// Timer is the scheduler task bound to this session
	Timer Timer

	// CreatedAt is when the session was created
	CreatedAt time.Time

	// Ending is set once an end confirmation has been accepted
	Ending bool
}

// NewSession creates a session with an empty participant map
func NewSession(id string, activity Activity, startTime time.Time, hostID string) *Session {
	return &Session{
		ID:           id,
		Activity:     activity,
		Participants: make(map[string]RSVP),
		StartTime:    startTime,
		HostID:       hostID,
	}
}

// Started reports whether now is at or after the start time
func (s *Session) Started(now time.Time) bool {
	return !now.Before(s.StartTime)
}

// ParticipantsWith returns the sorted IDs of participants whose response is state
func (s *Session) ParticipantsWith(state RSVP) []string {
	var ids []string
	for id, rsvp := range s.Participants {
		if rsvp == state {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids
}

// Count returns the number of participants whose response is state
func (s *Session) Count(state RSVP) int {
	n := 0
	for _, rsvp := range s.Participants {
		if rsvp == state {
			n++
		}
	}
	return n
}

// Clone returns a copy that shares no mutable state with s
func (s *Session) Clone() *Session {
	c := *s
	c.Participants = make(map[string]RSVP, len(s.Participants))
	for id, rsvp := range s.Participants {
		c.Participants[id] = rsvp
	}
	return &c
}
