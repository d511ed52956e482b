package adapters

import (
	"fmt"

	"lyra/internal/models"
)

// LinkItem is one outbound resource attached to a launch.
type LinkItem struct {
	Type  string `json:"type"`
	URL   string `json:"url"`
	Label string `json:"label"`
}

// LinkGroups categorizes a launch's external links for a detail view.
type LinkGroups struct {
	Primary []LinkItem `json:"primary"`
	Media   []LinkItem `json:"media"`
	Social  []LinkItem `json:"social"`
}

// ProcessLaunchLinks sorts the launch's non-null links into primary, media
// and social buckets. Groups are always non-nil, possibly empty.
func ProcessLaunchLinks(launch models.Launch) LinkGroups {
	groups := LinkGroups{
		Primary: []LinkItem{},
		Media:   []LinkItem{},
		Social:  []LinkItem{},
	}

	links := launch.Links
	if links.Webcast != nil {
		groups.Media = append(groups.Media, LinkItem{Type: "webcast", URL: *links.Webcast, Label: "Watch Webcast"})
	}
	if links.Article != nil {
		groups.Primary = append(groups.Primary, LinkItem{Type: "article", URL: *links.Article, Label: "Read Article"})
	}
	if links.Wikipedia != nil {
		groups.Primary = append(groups.Primary, LinkItem{Type: "wikipedia", URL: *links.Wikipedia, Label: "Wikipedia"})
	}
	if links.Presskit != nil {
		groups.Primary = append(groups.Primary, LinkItem{Type: "presskit", URL: *links.Presskit, Label: "Press Kit"})
	}
	if links.Reddit.Campaign != nil {
		groups.Social = append(groups.Social, LinkItem{Type: "reddit", URL: *links.Reddit.Campaign, Label: "Reddit Campaign"})
	}
	if links.Reddit.Launch != nil {
		groups.Social = append(groups.Social, LinkItem{Type: "reddit", URL: *links.Reddit.Launch, Label: "Reddit Launch Thread"})
	}

	return groups
}

// RocketSummary is the condensed rocket description shown alongside a
// launch.
type RocketSummary struct {
	Name        string `json:"name"`
	HeightText  string `json:"heightText"`
	Description string `json:"description"`
}

// SummarizeRocket derives display text from a rocket record, substituting
// safe defaults for missing measurements and descriptions.
func SummarizeRocket(rocket models.RocketDetail) RocketSummary {
	summary := RocketSummary{
		Name:        rocket.Name,
		HeightText:  "Height unavailable",
		Description: rocket.Description,
	}

	if rocket.Height != nil && rocket.Height.Meters != nil {
		if rocket.Height.Feet != nil {
			summary.HeightText = fmt.Sprintf("%gm (%gft)", *rocket.Height.Meters, *rocket.Height.Feet)
		} else {
			summary.HeightText = fmt.Sprintf("%gm", *rocket.Height.Meters)
		}
	}
	if summary.Description == "" {
		summary.Description = "No description available"
	}
	return summary
}
