package session

import (
	"github.com/KirkDiggler/hostbot/internal/models"
	"github.com/KirkDiggler/hostbot/internal/services/messaging"
	"github.com/bwmarrin/discordgo"
)

// HostInput contains parameters for hosting a session
type HostInput struct {
	// Interaction is the slash command that is answered with the announcement
	Interaction *discordgo.Interaction

	// ChannelID is the text channel the command was used in
	ChannelID string

	// UserID is the host
	UserID string

	// Time is the HH:MM start time. Empty uses the configured default.
	Time string

	// Description is the announcement text. Empty uses the configured default.
	Description string
}

// HostOutput contains the result of hosting a session
type HostOutput struct {
	// Session is a snapshot of the new session
	Session *models.Session
}

// SetRSVPInput contains parameters for recording a response
type SetRSVPInput struct {
	UserID string
	State  models.RSVP
}

// SetRSVPOutput contains the result of recording a response
type SetRSVPOutput struct {
	// Previous is the user's earlier response, empty if none
	Previous models.RSVP
}

// GetStatusInput contains parameters for reading the current session
type GetStatusInput struct{}

// GetStatusOutput contains the current session
type GetStatusOutput struct {
	// Session is a snapshot safe to read without locking
	Session *models.Session

	// Started reports whether the start time has passed
	Started bool
}

// RequestEndInput contains parameters for asking to end the session
type RequestEndInput struct {
	UserID string
}

// RequestEndOutput contains the result of asking to end the session
type RequestEndOutput struct {
	// Verb is "cancel" before the start and "end" after
	Verb messaging.EndVerb
}

// EndInput contains parameters for ending the session
type EndInput struct {
	UserID string
}

// EndOutput contains the result of ending the session
type EndOutput struct {
	Verb messaging.EndVerb

	// Session is the session as it was when it was closed
	Session *models.Session
}

// GetHistoryInput contains parameters for listing finished sessions
type GetHistoryInput struct {
	// Limit caps the number of entries. Zero returns all kept entries.
	Limit int
}

// GetHistoryOutput contains finished sessions, newest first
type GetHistoryOutput struct {
	Entries []*models.HistoryEntry
}
