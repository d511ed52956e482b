package adapters

import (
	"fmt"
	"time"

	"lyra/internal/models"
)

// TimeDisplay is the relative distance between a launch and a reference
// instant, rendered as text.
type TimeDisplay struct {
	Text     string `json:"text"`
	IsFuture bool   `json:"isFuture"`
	IsPast   bool   `json:"isPast"`
}

// DateStyle selects how verbose a formatted date is.
type DateStyle string

const (
	DateStyleShort  DateStyle = "short"
	DateStyleMedium DateStyle = "medium"
	DateStyleLong   DateStyle = "long"
)

// RelativeTime renders how far a launch is from now, choosing the largest
// whole unit of at least one. Thresholds: under a day uses hours or
// minutes, under a week days, under 30 days weeks, under a year months,
// otherwise years. All divisions floor.
func RelativeTime(launch models.Launch, now time.Time) TimeDisplay {
	diff := launch.DateUTC.Sub(now)
	if diff == 0 {
		return TimeDisplay{Text: "just now"}
	}

	future := diff > 0
	abs := diff
	if !future {
		abs = -abs
	}

	days := int(abs.Hours()) / 24
	var n int
	var unit string

	switch {
	case days < 1:
		if hours := int(abs.Hours()); hours >= 1 {
			n, unit = hours, "hour"
		} else if minutes := int(abs.Minutes()); minutes >= 1 {
			n, unit = minutes, "minute"
		} else {
			// Sub-minute distances have no whole unit to show.
			return TimeDisplay{Text: "just now", IsFuture: future, IsPast: !future}
		}
	case days < 7:
		n, unit = days, "day"
	case days < 30:
		n, unit = days/7, "week"
	case days < 365:
		n, unit = days/30, "month"
	default:
		n, unit = days/365, "year"
	}

	if n != 1 {
		unit += "s"
	}

	text := fmt.Sprintf("%d %s ago", n, unit)
	if future {
		text = fmt.Sprintf("in %d %s", n, unit)
	}
	return TimeDisplay{Text: text, IsFuture: future, IsPast: !future}
}

// FormatDate renders an instant with increasing verbosity per style.
// Callers must handle missing instants before calling; there is no valid
// output for a zero time.
func FormatDate(t time.Time, style DateStyle) string {
	switch style {
	case DateStyleShort:
		return t.Format("02/01/2006")
	case DateStyleMedium:
		return t.Format("2 January 2006")
	case DateStyleLong:
		return t.Format("Monday, 2 January 2006 15:04")
	default:
		return t.Format("2 January 2006")
	}
}
