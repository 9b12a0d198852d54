// Package calendar resolves absolute days within the simulated year to
// seasons and plot-activity windows. The year is fixed: 4 seasons of 28
// days each, 112 days total, always starting on the first day of spring.
package calendar

import "fmt"

// Year layout constants.
const (
	DaysPerSeason  = 28
	SeasonsPerYear = 4
	DaysPerYear    = DaysPerSeason * SeasonsPerYear
)

// Season identifies one quarter of the simulated year.
type Season uint8

const (
	Spring Season = iota
	Summer
	Autumn
	Winter
)

// String returns a human-readable season name.
func (s Season) String() string {
	switch s {
	case Spring:
		return "spring"
	case Summer:
		return "summer"
	case Autumn:
		return "autumn"
	case Winter:
		return "winter"
	default:
		return "unknown"
	}
}

// ParseSeason converts a season name to a Season.
func ParseSeason(name string) (Season, error) {
	switch name {
	case "spring":
		return Spring, nil
	case "summer":
		return Summer, nil
	case "autumn", "fall":
		return Autumn, nil
	case "winter":
		return Winter, nil
	}
	return 0, fmt.Errorf("unknown season %q", name)
}

// SeasonForDay returns the season for a 1-based day-of-year.
// Day indices above DaysPerYear wrap into the next year.
// A day index below 1 is a contract violation and panics.
func SeasonForDay(dayOfYear int) Season {
	if dayOfYear < 1 {
		panic(fmt.Sprintf("calendar: day-of-year %d out of range (must be >= 1)", dayOfYear))
	}
	return Season(((dayOfYear - 1) / DaysPerSeason) % SeasonsPerYear)
}

// DayOfYear converts a 0-based day index of a run starting at
// startDayOfYear (1-based) into a 1-based day-of-year, wrapping at year end.
func DayOfYear(startDayOfYear, dayIndex int) int {
	if startDayOfYear < 1 || startDayOfYear > DaysPerYear {
		panic(fmt.Sprintf("calendar: start day-of-year %d out of range 1..%d", startDayOfYear, DaysPerYear))
	}
	if dayIndex < 0 {
		panic(fmt.Sprintf("calendar: day index %d out of range (must be >= 0)", dayIndex))
	}
	return ((startDayOfYear - 1 + dayIndex) % DaysPerYear) + 1
}

// FromSeasonDay converts a season and a 1..28 day within it to a day-of-year.
func FromSeasonDay(season Season, day int) int {
	if day < 1 || day > DaysPerSeason {
		panic(fmt.Sprintf("calendar: day %d out of range 1..%d", day, DaysPerSeason))
	}
	return int(season)*DaysPerSeason + day
}

// Kind selects how a plot calendar decides activity.
type Kind string

const (
	KindAlways   Kind = "always"
	KindSeasonal Kind = "seasons"
)

// Calendar gates a plot's activity by day-of-year.
// An "always" calendar is active every day; a "seasons" calendar only
// during its listed seasons.
type Calendar struct {
	Kind    Kind
	Seasons []Season
}

// Always returns an always-active calendar.
func Always() Calendar {
	return Calendar{Kind: KindAlways}
}

// Seasonal returns a calendar active only during the given seasons.
func Seasonal(seasons ...Season) Calendar {
	return Calendar{Kind: KindSeasonal, Seasons: seasons}
}

// Active reports whether the calendar is active on the given day-of-year.
func (c Calendar) Active(dayOfYear int) bool {
	switch c.Kind {
	case KindAlways:
		return true
	case KindSeasonal:
		season := SeasonForDay(dayOfYear)
		for _, s := range c.Seasons {
			if s == season {
				return true
			}
		}
		return false
	}
	panic(fmt.Sprintf("calendar: unknown calendar kind %q", c.Kind))
}

// SeasonSpan returns how many distinct seasons the calendar covers.
// Always-active calendars count as a single continuous span.
func (c Calendar) SeasonSpan() int {
	if c.Kind == KindSeasonal {
		return len(c.Seasons)
	}
	return 1
}
