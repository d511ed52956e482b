package adapters

import "lyra/internal/models"

// StatusDisplay is the presentation-ready form of a launch outcome.
type StatusDisplay struct {
	Status models.LaunchStatus `json:"status"`
	Label  string              `json:"label"`
	Color  string              `json:"color"`
}

// ColorSet groups the colors used to render one status.
type ColorSet struct {
	Background string `json:"background"`
	Text       string `json:"text"`
	Border     string `json:"border"`
}

// ClassifyStatus maps a launch to exactly one of the four display statuses.
// The order of checks is load-bearing: a launch can carry a stale null
// success while upcoming is true, and upcoming always wins for display.
func ClassifyStatus(launch models.Launch) StatusDisplay {
	if launch.Upcoming {
		return StatusDisplay{Status: models.StatusUpcoming, Label: "Upcoming", Color: "#3B82F6"}
	}
	if launch.Success != nil && *launch.Success {
		return StatusDisplay{Status: models.StatusSuccess, Label: "Success", Color: "#10B981"}
	}
	if launch.Success != nil && !*launch.Success {
		return StatusDisplay{Status: models.StatusFailed, Label: "Failed", Color: "#EF4444"}
	}
	return StatusDisplay{Status: models.StatusUnknown, Label: "Unknown", Color: "#6B7280"}
}

var statusColors = map[models.LaunchStatus]ColorSet{
	models.StatusSuccess:  {Background: "#dcfce7", Text: "#166534", Border: "#bbf7d0"},
	models.StatusFailed:   {Background: "#fef2f2", Text: "#dc2626", Border: "#fecaca"},
	models.StatusUpcoming: {Background: "#dbeafe", Text: "#1d4ed8", Border: "#bfdbfe"},
	models.StatusUnknown:  {Background: "#f3f4f6", Text: "#374151", Border: "#d1d5db"},
}

// StatusColor returns the fixed color set for a status. Anything outside
// the four known statuses gets the unknown palette.
func StatusColor(status models.LaunchStatus) ColorSet {
	if colors, ok := statusColors[status]; ok {
		return colors
	}
	return statusColors[models.StatusUnknown]
}
