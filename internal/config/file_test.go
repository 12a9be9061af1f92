package config

import (
	"testing"
	"time"

	"github.com/KirkDiggler/hostbot/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validFile = `
default_time: "19:30"
default_description: Bring snacks
timezone: Europe/Berlin
voice_channel_id: "900"
admins: ["42"]
default_user_role: "500"
activities:
  - name: Chess
    channel_id: "100"
    role_id: "200"
  - name: Among Us
    channel_id: "101"
    role_id: "201"
    voice_channel_id: "901"
colors:
  - name: Red
    role_id: "300"
default_help:
  title: Help
  color: 16096249
  sections:
    - title: Hosting
      content: Use /hostgame
help:
  - dropdown_title: Sessions
    dropdown_description: How sessions work
    embed:
      title: Sessions
ip:
  title: Servers
  description: 10.0.0.1
`

func TestParse(t *testing.T) {
	f, err := Parse([]byte(validFile))
	require.NoError(t, err)

	assert.Equal(t, "19:30", f.DefaultTime)
	assert.Equal(t, "Bring snacks", f.DefaultDescription)
	assert.Equal(t, "Europe/Berlin", f.Location().String())
	assert.True(t, f.IsAdmin("42"))
	assert.False(t, f.IsAdmin("43"))
	require.Len(t, f.Help, 1)
	assert.Equal(t, "Sessions", f.Help[0].Embed.Title)
	assert.Equal(t, 16096249, f.DefaultHelp.Color)
	assert.Equal(t, "10.0.0.1", f.IP.Description)
}

func TestParseDefaults(t *testing.T) {
	f, err := Parse([]byte("activities: []\n"))
	require.NoError(t, err)

	assert.Equal(t, DefaultTime, f.DefaultTime)
	assert.Equal(t, DefaultDescription, f.DefaultDescription)
	assert.Equal(t, time.Local, f.Location())
}

func TestActivityForChannel(t *testing.T) {
	f, err := Parse([]byte(validFile))
	require.NoError(t, err)

	chess, ok := f.ActivityForChannel("100")
	require.True(t, ok)
	assert.Equal(t, models.Activity{
		Name:           "Chess",
		ChannelID:      "100",
		RoleID:         "200",
		VoiceChannelID: "900",
	}, chess)

	amongUs, ok := f.ActivityForChannel("101")
	require.True(t, ok)
	assert.Equal(t, "901", amongUs.VoiceChannelID)

	_, ok = f.ActivityForChannel("999")
	assert.False(t, ok)
}

func TestParseRejectsInvalidFiles(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr error
	}{
		{
			name:    "bad default time",
			data:    `default_time: "8pm"`,
			wantErr: ErrInvalidDefaultTime,
		},
		{
			name:    "unknown timezone",
			data:    `timezone: Mars/Olympus`,
			wantErr: ErrUnknownTimezone,
		},
		{
			name:    "activity without name",
			data:    "activities:\n  - channel_id: \"1\"\n    role_id: \"2\"\n",
			wantErr: ErrActivityMissingName,
		},
		{
			name:    "activity without channel",
			data:    "activities:\n  - name: Chess\n    role_id: \"2\"\n",
			wantErr: ErrActivityMissingChannel,
		},
		{
			name:    "activity without role",
			data:    "activities:\n  - name: Chess\n    channel_id: \"1\"\n",
			wantErr: ErrActivityMissingRole,
		},
		{
			name: "duplicate channel",
			data: "activities:\n" +
				"  - {name: Chess, channel_id: \"1\", role_id: \"2\"}\n" +
				"  - {name: Go, channel_id: \"1\", role_id: \"3\"}\n",
			wantErr: ErrDuplicateActivityChannel,
		},
		{
			name:    "color without role",
			data:    "colors:\n  - name: Red\n",
			wantErr: ErrColorMissingRole,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestParseRejectsMalformedYAML(t *testing.T) {
	_, err := Parse([]byte("activities: [\n"))
	assert.Error(t, err)
}

func TestLoadRequiresPath(t *testing.T) {
	_, err := Load("")
	assert.ErrorIs(t, err, ErrEmptyPath)
}
