package datetime_test

import (
	"social-insights-backend/pkg/util/datetime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDateTime(t *testing.T) {
	tests := []struct {
		name    string
		arrange func() time.Time
		act     func(time time.Time) string
		assert  func(t *testing.T, time string)
	}{{
		name: "Should format time with time zone",
		arrange: func() time.Time {
			bhutanTimeZone := time.FixedZone("BTT", 6*3600)
			return time.Date(2024, time.February, 11, 10, 30, 40, 40, bhutanTimeZone)
		},
		act: func(time time.Time) string {
			return datetime.FormatDate(time)
		},
		assert: func(t *testing.T, time string) {
			assert.Equal(t, time, "2024-02-11T10:30:40+06:00")
		},
	}}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			datetime := tt.arrange()
			formattedDateTime := tt.act(datetime)
			tt.assert(t, formattedDateTime)
		})
	}
}

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{
			name:  "RFC3339 with zone",
			input: "2024-01-10T20:15:00+02:00",
			want:  time.Date(2024, time.January, 10, 20, 15, 0, 0, time.FixedZone("", 2*3600)),
		},
		{
			name:  "bare datetime defaults to UTC",
			input: "2024-01-01T09:00:00",
			want:  time.Date(2024, time.January, 1, 9, 0, 0, 0, time.UTC),
		},
		{
			name:  "space separated datetime",
			input: "2024-03-05 23:59:59",
			want:  time.Date(2024, time.March, 5, 23, 59, 59, 0, time.UTC),
		},
		{
			name:    "garbage input",
			input:   "yesterday",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := datetime.ParseTimestamp(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.True(t, got.Equal(tt.want), "got %v, want %v", got, tt.want)
		})
	}
}

func TestDaysBetween(t *testing.T) {
	jan1 := time.Date(2024, time.January, 1, 9, 0, 0, 0, time.UTC)
	jan10 := time.Date(2024, time.January, 10, 20, 0, 0, 0, time.UTC)

	assert.Equal(t, 9, datetime.DaysBetween(jan10, jan1))
	assert.Equal(t, 0, datetime.DaysBetween(jan1, jan1))
	// Partial days truncate.
	assert.Equal(t, 0, datetime.DaysBetween(jan1.Add(23*time.Hour), jan1))
}
