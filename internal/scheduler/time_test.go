package scheduler

import (
	"fmt"
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextOccurrence(t *testing.T) {
	loc := time.FixedZone("CET", 3600)

	tests := []struct {
		name      string
		now       time.Time
		timeOfDay string
		want      time.Time
		wantErr   error
	}{
		{
			name:      "later today",
			now:       time.Date(2025, 4, 19, 19, 0, 0, 0, loc),
			timeOfDay: "20:00",
			want:      time.Date(2025, 4, 19, 20, 0, 0, 0, loc),
		},
		{
			name:      "already past rolls to tomorrow",
			now:       time.Date(2025, 4, 19, 23, 0, 0, 0, loc),
			timeOfDay: "08:00",
			want:      time.Date(2025, 4, 20, 8, 0, 0, 0, loc),
		},
		{
			name:      "exactly now stays today",
			now:       time.Date(2025, 4, 19, 20, 0, 0, 0, loc),
			timeOfDay: "20:00",
			want:      time.Date(2025, 4, 19, 20, 0, 0, 0, loc),
		},
		{
			name:      "one second past rolls",
			now:       time.Date(2025, 4, 19, 20, 0, 1, 0, loc),
			timeOfDay: "20:00",
			want:      time.Date(2025, 4, 20, 20, 0, 0, 0, loc),
		},
		{
			name:      "month boundary",
			now:       time.Date(2025, 4, 30, 22, 30, 0, 0, loc),
			timeOfDay: "09:15",
			want:      time.Date(2025, 5, 1, 9, 15, 0, 0, loc),
		},
		{
			name:      "surrounding whitespace",
			now:       time.Date(2025, 4, 19, 10, 0, 0, 0, loc),
			timeOfDay: " 18:30 ",
			want:      time.Date(2025, 4, 19, 18, 30, 0, 0, loc),
		},
		{
			name:      "not a time",
			now:       time.Date(2025, 4, 19, 10, 0, 0, 0, loc),
			timeOfDay: "tonight",
			wantErr:   ErrInvalidTime,
		},
		{
			name:      "out of range",
			now:       time.Date(2025, 4, 19, 10, 0, 0, 0, loc),
			timeOfDay: "25:00",
			wantErr:   ErrInvalidTime,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NextOccurrence(tt.now, tt.timeOfDay)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "want %s, got %s", tt.want, got)
			assert.Equal(t, loc, got.Location())
		})
	}
}

// The computed start is never in the past, is less than a day away and has
// the requested hour and minute.
func TestNextOccurrenceProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 500

	properties := gopter.NewProperties(parameters)
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	properties.Property("next occurrence is within the coming day", prop.ForAll(
		func(offsetMinutes int64, hour, minute int) bool {
			now := base.Add(time.Duration(offsetMinutes) * time.Minute)
			start, err := NextOccurrence(now, fmt.Sprintf("%02d:%02d", hour, minute))
			if err != nil {
				return false
			}

			return !start.Before(now) &&
				start.Sub(now) < 24*time.Hour &&
				start.Hour() == hour &&
				start.Minute() == minute
		},
		gen.Int64Range(0, 365*24*60),
		gen.IntRange(0, 23),
		gen.IntRange(0, 59),
	))

	properties.TestingRun(t)
}
