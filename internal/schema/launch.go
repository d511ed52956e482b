package schema

import (
	"time"

	"lyra/internal/models"
)

// rawLaunch mirrors the v4 wire shape with pointer fields, so an absent
// field is distinguishable from a zero value before coercion runs.
type rawLaunch struct {
	ID           *string `json:"id" validate:"required,min=1"`
	Name         *string `json:"name" validate:"required,min=1"`
	FlightNumber *int    `json:"flight_number" validate:"required,min=1"`

	DateUTC            *string `json:"date_utc" validate:"required"`
	DateUnix           *int64  `json:"date_unix"`
	DateLocal          *string `json:"date_local"`
	DatePrecision      *string `json:"date_precision"`
	StaticFireDateUTC  *string `json:"static_fire_date_utc"`
	StaticFireDateUnix *int64  `json:"static_fire_date_unix"`
	NET                *bool   `json:"net"`
	Window             *int    `json:"window"`
	TBD                *bool   `json:"tbd"`

	Upcoming *bool            `json:"upcoming"`
	Success  *bool            `json:"success"`
	Failures []models.Failure `json:"failures"`
	Details  *string          `json:"details"`

	Rocket    *string `json:"rocket"`
	Launchpad *string `json:"launchpad"`

	Cores    []models.Core    `json:"cores"`
	Fairings *models.Fairings `json:"fairings"`
	Links    *rawLinks        `json:"links"`

	Crew     []string `json:"crew"`
	Ships    []string `json:"ships"`
	Capsules []string `json:"capsules"`
	Payloads []string `json:"payloads"`

	AutoUpdate      *bool   `json:"auto_update"`
	LaunchLibraryID *string `json:"launch_library_id"`
}

type rawLinks struct {
	Patch     *models.Patch  `json:"patch"`
	Reddit    *models.Reddit `json:"reddit"`
	Flickr    *rawFlickr     `json:"flickr"`
	Presskit  *string        `json:"presskit"`
	Webcast   *string        `json:"webcast"`
	YoutubeID *string        `json:"youtube_id"`
	Article   *string        `json:"article"`
	Wikipedia *string        `json:"wikipedia"`
}

// The API serves flickr.small as an array of arbitrary values; only string
// entries are kept.
type rawFlickr struct {
	Small    []any    `json:"small"`
	Original []string `json:"original"`
}

// ParseLaunch validates and coerces one raw launch record into a typed
// Launch. On failure it returns a *ValidationError listing every violated
// constraint. It performs no I/O and never panics on malformed data.
func ParseLaunch(data []byte) (*models.Launch, *ValidationError) {
	var raw rawLaunch
	msgs, fatal := decodeRecord(data, &raw)
	if fatal {
		return nil, &ValidationError{Entity: "launch", Errors: msgs}
	}

	if err := validate.Struct(raw); err != nil {
		msgs = append(msgs, translate(err)...)
	}

	var dateUTC time.Time
	if raw.DateUTC != nil {
		t, err := parseInstant(*raw.DateUTC)
		if err != nil {
			msgs = append(msgs, "date_utc is not a valid date")
		} else {
			dateUTC = t
		}
	}

	if raw.DateUnix != nil && !dateUTC.IsZero() && *raw.DateUnix != dateUTC.Unix() {
		msgs = append(msgs, "date_unix does not match date_utc")
	}

	if len(msgs) > 0 {
		return nil, &ValidationError{Entity: "launch", Errors: msgs}
	}

	launch := &models.Launch{
		ID:            *raw.ID,
		Name:          *raw.Name,
		FlightNumber:  *raw.FlightNumber,
		DateUTC:       dateUTC,
		DateUnix:      dateUTC.Unix(),
		DateLocal:     dateUTC,
		DatePrecision: models.DatePrecisionDay,
		NET:           boolOrFalse(raw.NET),
		Window:        raw.Window,
		TBD:           boolOrFalse(raw.TBD),
		Upcoming:      boolOrFalse(raw.Upcoming),
		Success:       raw.Success,
		Failures:      raw.Failures,
		Details:       raw.Details,
		Rocket:        stringOrEmpty(raw.Rocket),
		Launchpad:     stringOrEmpty(raw.Launchpad),
		Cores:         raw.Cores,
		Fairings:      raw.Fairings,
		Links:         coerceLinks(raw.Links),
		Crew:          raw.Crew,
		Ships:         raw.Ships,
		Capsules:      raw.Capsules,
		Payloads:      raw.Payloads,

		AutoUpdate:      boolOrFalse(raw.AutoUpdate),
		LaunchLibraryID: raw.LaunchLibraryID,
	}

	// A launch that has not happened has no outcome. The API occasionally
	// serves stale success values on upcoming launches; the constructor is
	// the one place that restores the invariant.
	if launch.Upcoming {
		launch.Success = nil
	}

	if raw.DateLocal != nil {
		if t, err := parseInstant(*raw.DateLocal); err == nil {
			launch.DateLocal = t
		}
	}
	if raw.DatePrecision != nil {
		switch p := models.DatePrecision(*raw.DatePrecision); p {
		case models.DatePrecisionDay, models.DatePrecisionHour, models.DatePrecisionMonth:
			launch.DatePrecision = p
		}
	}
	if raw.StaticFireDateUTC != nil {
		if t, err := parseInstant(*raw.StaticFireDateUTC); err == nil {
			launch.StaticFireDateUTC = &t
			unix := t.Unix()
			launch.StaticFireDateUnix = &unix
		}
	}

	// Array fields are never nil so consumers and re-serialized JSON see
	// explicit empty collections.
	if launch.Failures == nil {
		launch.Failures = []models.Failure{}
	}
	if launch.Cores == nil {
		launch.Cores = []models.Core{}
	}
	if launch.Crew == nil {
		launch.Crew = []string{}
	}
	if launch.Ships == nil {
		launch.Ships = []string{}
	}
	if launch.Capsules == nil {
		launch.Capsules = []string{}
	}
	if launch.Payloads == nil {
		launch.Payloads = []string{}
	}
	if launch.Fairings != nil && launch.Fairings.Ships == nil {
		launch.Fairings.Ships = []string{}
	}

	return launch, nil
}

// coerceLinks fills absent or partially populated link substructures with an
// explicit empty shape, so downstream code never nil-checks nested paths.
func coerceLinks(raw *rawLinks) models.Links {
	links := models.Links{
		Flickr: models.Flickr{Small: []string{}, Original: []string{}},
	}
	if raw == nil {
		return links
	}

	if raw.Patch != nil {
		links.Patch = *raw.Patch
	}
	if raw.Reddit != nil {
		links.Reddit = *raw.Reddit
	}
	if raw.Flickr != nil {
		for _, v := range raw.Flickr.Small {
			if s, ok := v.(string); ok {
				links.Flickr.Small = append(links.Flickr.Small, s)
			}
		}
		if raw.Flickr.Original != nil {
			links.Flickr.Original = raw.Flickr.Original
		}
	}

	links.Presskit = raw.Presskit
	links.Webcast = raw.Webcast
	links.YoutubeID = raw.YoutubeID
	links.Article = raw.Article
	links.Wikipedia = raw.Wikipedia
	return links
}

// parseInstant accepts the RFC3339 timestamps the v4 API serves, with or
// without fractional seconds.
func parseInstant(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, err
	}
	return t, nil
}

func boolOrFalse(b *bool) bool {
	if b == nil {
		return false
	}
	return *b
}

func stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
