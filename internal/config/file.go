package config

import (
	"fmt"
	"os"
	"slices"
	"time"

	"github.com/KirkDiggler/hostbot/internal/models"
	"github.com/KirkDiggler/hostbot/internal/scheduler"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultTime is used when default_time is not set
	DefaultTime = "20:00"

	// DefaultDescription is used when default_description is not set
	DefaultDescription = "No description"
)

// File is one parsed snapshot of the YAML configuration file.
// A File is never modified after Parse returns it.
type File struct {
	// DefaultTime is the start time used when the host gives none
	DefaultTime string `yaml:"default_time"`

	// DefaultDescription is the description used when the host gives none
	DefaultDescription string `yaml:"default_description"`

	// Timezone is the IANA zone HH:MM times are read in. Empty means local time.
	Timezone string `yaml:"timezone"`

	// VoiceChannelID is checked for late participants when an activity has no voice channel of its own
	VoiceChannelID string `yaml:"voice_channel_id"`

	// Admins may end any session and use admin commands
	Admins []string `yaml:"admins"`

	// DefaultUserRole is granted by /allroles alongside the activity roles
	DefaultUserRole string `yaml:"default_user_role"`

	// Activities maps text channels to hostable activities
	Activities []Activity `yaml:"activities"`

	// Colors are the exclusive color roles offered by /colors
	Colors []ColorRole `yaml:"colors"`

	// DefaultHelp is the first page shown by /help
	DefaultHelp Embed `yaml:"default_help"`

	// Help are the pages selectable from the /help menu
	Help []HelpPage `yaml:"help"`

	// IP is the embed shown by /ip
	IP Embed `yaml:"ip"`

	location *time.Location
}

// Activity is a hostable activity bound to a text channel
type Activity struct {
	Name           string `yaml:"name"`
	ChannelID      string `yaml:"channel_id"`
	RoleID         string `yaml:"role_id"`
	VoiceChannelID string `yaml:"voice_channel_id"`
}

// ColorRole is a selectable color role
type ColorRole struct {
	Name   string `yaml:"name"`
	RoleID string `yaml:"role_id"`
}

// Embed describes a rich message
type Embed struct {
	Title       string         `yaml:"title"`
	Color       int            `yaml:"color"`
	Description string         `yaml:"description"`
	Image       string         `yaml:"image"`
	Sections    []EmbedSection `yaml:"sections"`
}

// EmbedSection is one titled field of an Embed
type EmbedSection struct {
	Title   string `yaml:"title"`
	Content string `yaml:"content"`
}

// HelpPage is one entry of the /help menu
type HelpPage struct {
	DropdownTitle       string `yaml:"dropdown_title"`
	DropdownDescription string `yaml:"dropdown_description"`
	Embed               Embed  `yaml:"embed"`
}

// Load reads and parses the config file at path
func Load(path string) (*File, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return Parse(data)
}

// Parse decodes a config file, fills defaults and validates it
func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to decode config file: %w", err)
	}

	if f.DefaultTime == "" {
		f.DefaultTime = DefaultTime
	}
	if f.DefaultDescription == "" {
		f.DefaultDescription = DefaultDescription
	}

	if err := f.Validate(); err != nil {
		return nil, err
	}

	return &f, nil
}

// Validate checks the file for values that would break hosting
func (f *File) Validate() error {
	if _, _, err := scheduler.ParseTimeOfDay(f.DefaultTime); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidDefaultTime, f.DefaultTime)
	}

	f.location = time.Local
	if f.Timezone != "" {
		loc, err := time.LoadLocation(f.Timezone)
		if err != nil {
			return fmt.Errorf("%w: %q", ErrUnknownTimezone, f.Timezone)
		}
		f.location = loc
	}

	channels := make(map[string]struct{}, len(f.Activities))
	for i, a := range f.Activities {
		switch {
		case a.Name == "":
			return fmt.Errorf("activities[%d]: %w", i, ErrActivityMissingName)
		case a.ChannelID == "":
			return fmt.Errorf("activities[%d] %s: %w", i, a.Name, ErrActivityMissingChannel)
		case a.RoleID == "":
			return fmt.Errorf("activities[%d] %s: %w", i, a.Name, ErrActivityMissingRole)
		}

		if _, ok := channels[a.ChannelID]; ok {
			return fmt.Errorf("activities[%d] %s: %w", i, a.Name, ErrDuplicateActivityChannel)
		}
		channels[a.ChannelID] = struct{}{}
	}

	for i, c := range f.Colors {
		if c.RoleID == "" {
			return fmt.Errorf("colors[%d] %s: %w", i, c.Name, ErrColorMissingRole)
		}
	}

	return nil
}

// Location returns the zone HH:MM start times are read in
func (f *File) Location() *time.Location {
	if f.location == nil {
		return time.Local
	}
	return f.location
}

// ActivityForChannel returns the activity hosted in the given text channel.
// The activity's voice channel falls back to the file-wide one.
func (f *File) ActivityForChannel(channelID string) (models.Activity, bool) {
	for _, a := range f.Activities {
		if a.ChannelID != channelID {
			continue
		}

		voice := a.VoiceChannelID
		if voice == "" {
			voice = f.VoiceChannelID
		}

		return models.Activity{
			Name:           a.Name,
			ChannelID:      a.ChannelID,
			RoleID:         a.RoleID,
			VoiceChannelID: voice,
		}, true
	}

	return models.Activity{}, false
}

// IsAdmin reports whether the user is listed as an admin
func (f *File) IsAdmin(userID string) bool {
	return slices.Contains(f.Admins, userID)
}
