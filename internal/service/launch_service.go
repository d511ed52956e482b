package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"lyra/internal/adapters"
	"lyra/internal/models"
	"lyra/internal/repository"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// LaunchRange selects which partition of the launch set an operation works
// on.
type LaunchRange string

const (
	RangeAll      LaunchRange = "all"
	RangePast     LaunchRange = "past"
	RangeUpcoming LaunchRange = "upcoming"
)

// EnrichedLaunch is a launch with presentation-ready fragments attached.
type EnrichedLaunch struct {
	models.Launch
	StatusDisplay adapters.StatusDisplay `json:"statusDisplay"`
	RelativeTime  adapters.TimeDisplay   `json:"relativeTime"`
	FormattedDate string                 `json:"formattedDate"`
}

// LaunchService is the orchestration core over launch collections. The
// pipeline operations (Filter, Sort, Search, Query) are pure: they never
// mutate their input, hold no state between calls, and are safe to invoke
// concurrently with different inputs.
type LaunchService interface {
	GetPastLaunches(ctx context.Context) ([]models.Launch, error)
	GetUpcomingLaunches(ctx context.Context) ([]models.Launch, error)
	GetLaunchDetails(ctx context.Context, id string) (*models.LaunchDetails, error)
	GetEnrichedLaunches(ctx context.Context, launchRange LaunchRange) ([]EnrichedLaunch, error)

	Filter(launches []models.Launch, option models.FilterOption) []models.Launch
	Sort(launches []models.Launch, option models.SortOption) []models.Launch
	Search(launches []models.Launch, query string) []models.Launch
	Query(launches []models.Launch, query string, filter models.FilterOption, sortOption models.SortOption) []models.Launch

	FilterRange(launches []models.Launch, launchRange LaunchRange) []models.Launch
	EnrichLaunches(launches []models.Launch, now time.Time) []EnrichedLaunch
}

type launchService struct {
	repo repository.LaunchRepository
}

func NewLaunchService(repo repository.LaunchRepository) LaunchService {
	return &launchService{repo: repo}
}

func (s *launchService) GetPastLaunches(ctx context.Context) ([]models.Launch, error) {
	return s.repo.GetPastLaunches(ctx)
}

func (s *launchService) GetUpcomingLaunches(ctx context.Context) ([]models.Launch, error) {
	return s.repo.GetUpcomingLaunches(ctx)
}

// GetLaunchDetails joins a launch with its referenced rocket and launchpad.
// The aggregate is all-or-nothing: if any of the three lookups fails, the
// whole operation fails and no partial result is returned.
func (s *launchService) GetLaunchDetails(ctx context.Context, id string) (*models.LaunchDetails, error) {
	launch, err := s.repo.GetLaunchByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get launch %s: %w", id, err)
	}

	rocket, err := s.repo.GetRocketByID(ctx, launch.Rocket)
	if err != nil {
		return nil, fmt.Errorf("get rocket %s: %w", launch.Rocket, err)
	}

	launchpad, err := s.repo.GetLaunchpadByID(ctx, launch.Launchpad)
	if err != nil {
		return nil, fmt.Errorf("get launchpad %s: %w", launch.Launchpad, err)
	}

	return &models.LaunchDetails{
		Launch:    *launch,
		Rocket:    *rocket,
		Launchpad: *launchpad,
	}, nil
}

func (s *launchService) GetEnrichedLaunches(ctx context.Context, launchRange LaunchRange) ([]EnrichedLaunch, error) {
	var launches []models.Launch
	var err error

	switch launchRange {
	case RangeUpcoming:
		launches, err = s.repo.GetUpcomingLaunches(ctx)
	case RangePast:
		launches, err = s.repo.GetPastLaunches(ctx)
	default:
		launches, err = s.repo.GetAllLaunches(ctx)
	}
	if err != nil {
		return nil, err
	}

	return s.EnrichLaunches(launches, time.Now().UTC()), nil
}

// EnrichLaunches attaches status display, relative time and a long
// formatted date to every launch. Pure given a fixed now.
func (s *launchService) EnrichLaunches(launches []models.Launch, now time.Time) []EnrichedLaunch {
	enriched := make([]EnrichedLaunch, 0, len(launches))
	for _, launch := range launches {
		enriched = append(enriched, EnrichedLaunch{
			Launch:        launch,
			StatusDisplay: adapters.ClassifyStatus(launch),
			RelativeTime:  adapters.RelativeTime(launch, now),
			FormattedDate: adapters.FormatDate(launch.DateUTC, adapters.DateStyleLong),
		})
	}
	return enriched
}

// Filter keeps launches matching the outcome option. Launches with a null
// outcome are only visible under FilterAll; they are neither a success nor
// a failure. Always returns a new collection.
func (s *launchService) Filter(launches []models.Launch, option models.FilterOption) []models.Launch {
	out := make([]models.Launch, 0, len(launches))
	for _, launch := range launches {
		if matchesFilter(launch, option) {
			out = append(out, launch)
		}
	}
	return out
}

func matchesFilter(launch models.Launch, option models.FilterOption) bool {
	switch option {
	case models.FilterSuccess:
		return launch.Success != nil && *launch.Success
	case models.FilterFailed:
		return launch.Success != nil && !*launch.Success
	default:
		// FilterAll and any provisional option keep everything.
		return true
	}
}

// Sort returns a newly allocated, stably sorted copy. Name ordering uses
// locale-aware collation rather than byte comparison. An unrecognized
// option is a no-op, not an error: the copy keeps the input order.
func (s *launchService) Sort(launches []models.Launch, option models.SortOption) []models.Launch {
	out := make([]models.Launch, len(launches))
	copy(out, launches)

	switch option {
	case models.SortDateAsc:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].DateUTC.Before(out[j].DateUTC)
		})
	case models.SortDateDesc:
		sort.SliceStable(out, func(i, j int) bool {
			return out[j].DateUTC.Before(out[i].DateUTC)
		})
	case models.SortNameAsc:
		collator := newNameCollator()
		sort.SliceStable(out, func(i, j int) bool {
			return collator.CompareString(out[i].Name, out[j].Name) < 0
		})
	case models.SortNameDesc:
		collator := newNameCollator()
		sort.SliceStable(out, func(i, j int) bool {
			return collator.CompareString(out[j].Name, out[i].Name) < 0
		})
	}

	return out
}

// A collator is not safe for concurrent use, so each sort gets its own.
func newNameCollator() *collate.Collator {
	return collate.New(language.English, collate.IgnoreCase)
}

// Search keeps launches whose name or details contain the query, entirely
// case-insensitively. A query that trims to empty means "no filter" and
// returns the input unchanged.
func (s *launchService) Search(launches []models.Launch, query string) []models.Launch {
	cleaned := strings.ToLower(strings.TrimSpace(query))
	if cleaned == "" {
		return launches
	}

	out := make([]models.Launch, 0, len(launches))
	for _, launch := range launches {
		if strings.Contains(strings.ToLower(launch.Name), cleaned) {
			out = append(out, launch)
			continue
		}
		if launch.Details != nil && strings.Contains(strings.ToLower(*launch.Details), cleaned) {
			out = append(out, launch)
		}
	}
	return out
}

// Query runs the canonical search → filter → sort pipeline. The three
// stages commute on final membership, so callers may compose them in any
// order themselves; this is just the usual one.
func (s *launchService) Query(launches []models.Launch, query string, filter models.FilterOption, sortOption models.SortOption) []models.Launch {
	return s.Sort(s.Filter(s.Search(launches, query), filter), sortOption)
}

// FilterRange partitions by the upcoming flag. Past and upcoming are
// disjoint and exhaustive; RangeAll copies everything.
func (s *launchService) FilterRange(launches []models.Launch, launchRange LaunchRange) []models.Launch {
	out := make([]models.Launch, 0, len(launches))
	for _, launch := range launches {
		switch launchRange {
		case RangePast:
			if !launch.Upcoming {
				out = append(out, launch)
			}
		case RangeUpcoming:
			if launch.Upcoming {
				out = append(out, launch)
			}
		default:
			out = append(out, launch)
		}
	}
	return out
}
