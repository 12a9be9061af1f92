package messaging

import (
	"time"

	"github.com/KirkDiggler/hostbot/internal/models"
	"github.com/KirkDiggler/hostbot/internal/platform"
	"github.com/bwmarrin/discordgo"
)

// Component custom IDs carried by the messages this package builds
const (
	ButtonYes     = "button-yes"
	ButtonMaybe   = "button-maybe"
	ButtonNo      = "button-no"
	EndHostYes    = "endhost-yes"
	EndHostNo     = "endhost-no"
	HelpPages     = "help-pages"
	RolesMenu     = "roles-dropdown"
	ColorRoleMenu = "colorroles-dropdown"
)

// EndVerb is what ending a session means at the moment it is requested
type EndVerb string

const (
	// EndVerbCancel is used before the session has started
	EndVerbCancel EndVerb = "cancel"

	// EndVerbEnd is used once the session has started
	EndVerbEnd EndVerb = "end"
)

// Past returns the past tense of the verb
func (v EndVerb) Past() string {
	if v == EndVerbEnd {
		return "ended"
	}
	return "cancelled"
}

// GetAnnouncementMessageInput contains parameters for the announcement
type GetAnnouncementMessageInput struct {
	Session *models.Session
}

// GetAnnouncementMessageOutput contains the announcement
type GetAnnouncementMessageOutput struct {
	Content    string
	Components []discordgo.MessageComponent

	// Mentions allows the activity role ping
	Mentions platform.Mentions
}

// GetReminderMessageInput contains parameters for the reminder
type GetReminderMessageInput struct {
	Session *models.Session
}

// GetReminderMessageOutput contains the reminder
type GetReminderMessageOutput struct {
	Content  string
	Embed    *discordgo.MessageEmbed
	Mentions platform.Mentions
}

// GetStartMessageInput contains parameters for the start message
type GetStartMessageInput struct {
	Session *models.Session
}

// GetStartMessageOutput contains the start message
type GetStartMessageOutput struct {
	Content string
	Embed   *discordgo.MessageEmbed
}

// GetLateMessageInput contains parameters for the late message
type GetLateMessageInput struct {
	// UserIDs are the committed participants not in voice
	UserIDs []string
}

// GetLateMessageOutput contains the late message
type GetLateMessageOutput struct {
	// Content is empty when nobody is late
	Content  string
	Mentions platform.Mentions
}

// GetClosingMessageInput contains parameters for the closing message
type GetClosingMessageInput struct {
	Session *models.Session
	Verb    EndVerb
}

// GetClosingMessageOutput contains the closing message
type GetClosingMessageOutput struct {
	Content  string
	Mentions platform.Mentions
}

// GetStatusEmbedInput contains parameters for the status embed
type GetStatusEmbedInput struct {
	Session *models.Session
}

// GetStatusEmbedOutput contains the status embed
type GetStatusEmbedOutput struct {
	Embed *discordgo.MessageEmbed
}

// GetRSVPMessageInput contains parameters for an RSVP acknowledgement
type GetRSVPMessageInput struct {
	UserID string
	State  models.RSVP
}

// GetRSVPMessageOutput contains the RSVP acknowledgement
type GetRSVPMessageOutput struct {
	Content string
}

// GetEndConfirmMessageInput contains parameters for the end confirmation prompt
type GetEndConfirmMessageInput struct {
	Verb EndVerb
}

// GetEndConfirmMessageOutput contains the end confirmation prompt
type GetEndConfirmMessageOutput struct {
	Content    string
	Components []discordgo.MessageComponent
}

// GetEndResultMessageInput contains parameters for the end result
type GetEndResultMessageInput struct {
	Verb      EndVerb
	Confirmed bool
}

// GetEndResultMessageOutput contains the end result
type GetEndResultMessageOutput struct {
	Content string
}

// GetPresenceInput contains parameters for the presence
type GetPresenceInput struct {
	// Session is nil when no session is planned
	Session *models.Session
	Now     time.Time

	// Location is the zone start times are shown in
	Location *time.Location
}

// GetPresenceOutput contains the presence
type GetPresenceOutput struct {
	Text   string
	Status platform.PresenceStatus
}

// GetHistoryEmbedInput contains parameters for the history embed
type GetHistoryEmbedInput struct {
	Entries []*models.HistoryEntry
}

// GetHistoryEmbedOutput contains the history embed
type GetHistoryEmbedOutput struct {
	Embed *discordgo.MessageEmbed
}
