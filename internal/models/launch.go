package models

import "time"

// DatePrecision tells how much of a launch date is meaningful.
type DatePrecision string

const (
	DatePrecisionDay   DatePrecision = "day"
	DatePrecisionHour  DatePrecision = "hour"
	DatePrecisionMonth DatePrecision = "month"
)

// LaunchStatus is the simplified outcome shown to consumers.
type LaunchStatus string

const (
	StatusSuccess  LaunchStatus = "success"
	StatusFailed   LaunchStatus = "failed"
	StatusUpcoming LaunchStatus = "upcoming"
	StatusUnknown  LaunchStatus = "unknown"
)

// FilterOption selects launches by mission outcome.
// A launch with a null outcome is only visible under FilterAll.
type FilterOption string

const (
	FilterAll     FilterOption = "all"
	FilterSuccess FilterOption = "success"
	FilterFailed  FilterOption = "failed"
)

// SortOption orders a launch collection.
type SortOption string

const (
	SortDateAsc  SortOption = "date_asc"
	SortDateDesc SortOption = "date_desc"
	SortNameAsc  SortOption = "name_asc"
	SortNameDesc SortOption = "name_desc"
)

// Core describes one booster used on a launch. Most flags are tri-state:
// nil means the API does not know, which is distinct from false.
type Core struct {
	Core           *string `json:"core"`
	Flight         *int    `json:"flight"`
	Gridfins       *bool   `json:"gridfins"`
	Legs           *bool   `json:"legs"`
	Reused         *bool   `json:"reused"`
	LandingAttempt *bool   `json:"landing_attempt"`
	LandingSuccess *bool   `json:"landing_success"`
	LandingType    *string `json:"landing_type"`
	Landpad        *string `json:"landpad"`
}

// Failure records one anomaly during a launch.
type Failure struct {
	Time     int      `json:"time"`     // seconds from liftoff
	Altitude *float64 `json:"altitude"` // km, nil if unknown
	Reason   string   `json:"reason"`
}

// Fairings describes the payload fairing reuse and recovery state.
type Fairings struct {
	Reused          *bool    `json:"reused"`
	RecoveryAttempt *bool    `json:"recovery_attempt"`
	Recovered       *bool    `json:"recovered"`
	Ships           []string `json:"ships"`
}

type Patch struct {
	Small *string `json:"small"`
	Large *string `json:"large"`
}

type Reddit struct {
	Campaign *string `json:"campaign"`
	Launch   *string `json:"launch"`
	Media    *string `json:"media"`
	Recovery *string `json:"recovery"`
}

type Flickr struct {
	Small    []string `json:"small"`
	Original []string `json:"original"`
}

// Links holds every external resource attached to a launch. The schema
// package guarantees the nested Patch/Reddit/Flickr shapes are always
// present, so consumers never nil-check intermediate paths.
type Links struct {
	Patch     Patch   `json:"patch"`
	Reddit    Reddit  `json:"reddit"`
	Flickr    Flickr  `json:"flickr"`
	Presskit  *string `json:"presskit"`
	Webcast   *string `json:"webcast"`
	YoutubeID *string `json:"youtube_id"`
	Article   *string `json:"article"`
	Wikipedia *string `json:"wikipedia"`
}

// Launch is one SpaceX mission attempt, immutable once fetched.
//
// Success is deliberately a *bool: nil means the outcome is unknown or the
// launch has not happened yet, and must never be collapsed to false.
type Launch struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	FlightNumber int           `json:"flight_number"`

	DateUTC            time.Time     `json:"date_utc"`
	DateUnix           int64         `json:"date_unix"`
	DateLocal          time.Time     `json:"date_local"`
	DatePrecision      DatePrecision `json:"date_precision"`
	StaticFireDateUTC  *time.Time    `json:"static_fire_date_utc"`
	StaticFireDateUnix *int64        `json:"static_fire_date_unix"`
	NET                bool          `json:"net"`
	Window             *int          `json:"window"`
	TBD                bool          `json:"tbd"`

	Upcoming bool      `json:"upcoming"`
	Success  *bool     `json:"success"`
	Failures []Failure `json:"failures"`
	Details  *string   `json:"details"`

	Rocket    string `json:"rocket"`
	Launchpad string `json:"launchpad"`

	Cores    []Core    `json:"cores"`
	Fairings *Fairings `json:"fairings"`
	Links    Links     `json:"links"`

	Crew     []string `json:"crew"`
	Ships    []string `json:"ships"`
	Capsules []string `json:"capsules"`
	Payloads []string `json:"payloads"`

	AutoUpdate      bool    `json:"auto_update"`
	LaunchLibraryID *string `json:"launch_library_id"`
}

// Dimension is a measurement given in both metric and imperial units.
type Dimension struct {
	Meters *float64 `json:"meters"`
	Feet   *float64 `json:"feet"`
}

// RocketDetail is the descriptive record behind Launch.Rocket.
type RocketDetail struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Type        string     `json:"type"`
	Description string     `json:"description"`
	Height      *Dimension `json:"height"`
	Diameter    *Dimension `json:"diameter"`
}

// LaunchpadDetail is the descriptive record behind Launch.Launchpad.
type LaunchpadDetail struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	FullName        string   `json:"full_name"`
	Locality        string   `json:"locality"`
	Region          string   `json:"region"`
	Timezone        string   `json:"timezone"`
	Latitude        *float64 `json:"latitude"`
	Longitude       *float64 `json:"longitude"`
	LaunchAttempts  *int     `json:"launch_attempts"`
	LaunchSuccesses *int     `json:"launch_successes"`
	Status          string   `json:"status"`
}

// LaunchDetails joins a launch with the rocket and launchpad it references.
// It is only ever produced complete: a failed lookup of any of the three
// parts fails the whole aggregation.
type LaunchDetails struct {
	Launch    Launch          `json:"launch"`
	Rocket    RocketDetail    `json:"rocket"`
	Launchpad LaunchpadDetail `json:"launchpad"`
}
