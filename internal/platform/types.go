package platform

import (
	"github.com/KirkDiggler/hostbot/internal/models"
	"github.com/bwmarrin/discordgo"
)

// PresenceStatus is the bot's online indicator
type PresenceStatus string

const (
	PresenceOnline PresenceStatus = "online"
	PresenceIdle   PresenceStatus = "idle"
)

// Mentions lists who a message is allowed to ping. Anything not listed is
// rendered but does not notify.
type Mentions struct {
	Roles []string
	Users []string
}

// SendMessageInput contains parameters for posting a message
type SendMessageInput struct {
	ChannelID  string
	Content    string
	Embeds     []*discordgo.MessageEmbed
	Components []discordgo.MessageComponent
	Mentions   Mentions
}

// EditMessageInput contains parameters for editing a message.
// Nil fields are left unchanged; an empty Components slice strips all components.
type EditMessageInput struct {
	Ref        models.MessageRef
	Content    *string
	Components *[]discordgo.MessageComponent
}

// RespondInput contains parameters for answering an interaction
type RespondInput struct {
	Interaction *discordgo.Interaction
	Content     string
	Embeds      []*discordgo.MessageEmbed
	Components  []discordgo.MessageComponent
	Mentions    Mentions

	// Ephemeral makes the response visible to the invoking user only
	Ephemeral bool
}

// SetPresenceInput contains parameters for updating the bot presence
type SetPresenceInput struct {
	// Text is shown as the bot's current game. Empty clears it.
	Text   string
	Status PresenceStatus
}

// RoleInput identifies a member and a role
type RoleInput struct {
	GuildID string
	UserID  string
	RoleID  string
}
