package models

// RSVP represents a participant's response to a session announcement.
// A participant without an entry has not responded yet.
type RSVP string

const (
	// RSVPCommitted indicates the participant said yes
	RSVPCommitted RSVP = "committed"

	// RSVPTentative indicates the participant said maybe
	RSVPTentative RSVP = "tentative"

	// RSVPDeclined indicates the participant said no
	RSVPDeclined RSVP = "declined"
)

// IsValid reports whether r is one of the three known responses
func (r RSVP) IsValid() bool {
	switch r {
	case RSVPCommitted, RSVPTentative, RSVPDeclined:
		return true
	}
	return false
}

// String returns the string representation of the response
func (r RSVP) String() string {
	return string(r)
}
