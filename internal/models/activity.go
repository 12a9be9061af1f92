package models

// Activity is a configured game a session can be hosted for
type Activity struct {
	// Name is shown in announcements and the bot presence
	Name string

	// ChannelID is the text channel sessions for this activity are hosted in
	ChannelID string

	// RoleID is the role tagged in announcements
	RoleID string

	// VoiceChannelID overrides the default voice channel for late pings
	VoiceChannelID string
}
