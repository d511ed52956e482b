package adapters

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"lyra/internal/models"
)

func launchAt(t time.Time) models.Launch {
	return models.Launch{DateUTC: t}
}

func TestRelativeTime(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		date time.Time
		want string
	}{
		{"exactly now", now, "just now"},
		{"thirty seconds ago", now.Add(-30 * time.Second), "just now"},
		{"one minute ago", now.Add(-time.Minute), "1 minute ago"},
		{"five minutes ahead", now.Add(5 * time.Minute), "in 5 minutes"},
		{"three hours ago", now.Add(-3 * time.Hour), "3 hours ago"},
		{"one hour ahead", now.Add(time.Hour), "in 1 hour"},
		{"five days ago", now.AddDate(0, 0, -5), "5 days ago"},
		{"three days ahead", now.AddDate(0, 0, 3), "in 3 days"},
		{"two weeks ago", now.AddDate(0, 0, -14), "2 weeks ago"},
		{"two months ago", now.AddDate(0, 0, -61), "2 months ago"},
		{"one year ahead", now.AddDate(0, 0, 366), "in 1 year"},
		{"three years ago", now.AddDate(0, 0, -3*365-2), "3 years ago"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RelativeTime(launchAt(tt.date), now)
			assert.Equal(t, tt.want, got.Text)
		})
	}
}

func TestRelativeTimeDirectionFlags(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	past := RelativeTime(launchAt(now.AddDate(0, 0, -1)), now)
	assert.True(t, past.IsPast)
	assert.False(t, past.IsFuture)

	future := RelativeTime(launchAt(now.AddDate(0, 0, 1)), now)
	assert.True(t, future.IsFuture)
	assert.False(t, future.IsPast)

	exact := RelativeTime(launchAt(now), now)
	assert.False(t, exact.IsPast)
	assert.False(t, exact.IsFuture)
}

func TestFormatDate(t *testing.T) {
	date := time.Date(2020, 5, 30, 19, 22, 0, 0, time.UTC)

	assert.Equal(t, "30/05/2020", FormatDate(date, DateStyleShort))
	assert.Equal(t, "30 May 2020", FormatDate(date, DateStyleMedium))
	assert.Equal(t, "Saturday, 30 May 2020 19:22", FormatDate(date, DateStyleLong))
	assert.Equal(t, "30 May 2020", FormatDate(date, DateStyle("unknown")))
}
