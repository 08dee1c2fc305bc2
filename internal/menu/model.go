package menu

import (
	"strings"

	"github.com/aidan-labs/UST-Dining-Hall-Menus/internal/schedule"
)

// RawDocument is one hall's scraped menu file: week groupings in document
// order. Week labels are grouping keys only and are merged by Normalize.
type RawDocument struct {
	Weeks []RawWeek
}

type RawWeek struct {
	Label string
	Meals []RawMeal
}

type RawMeal struct {
	Name string
	Days []RawDay
}

type RawDay struct {
	Name     string
	Stations []Station
}

// Station is a serving line and its items in authored order. RawEntries
// is the length of the authored item list before grouped objects were
// expanded and unusable entries dropped.
type Station struct {
	Name       string `json:"name"`
	Items      []Item `json:"items"`
	RawEntries int    `json:"-"`
}

// IsDayArtifact reports whether the station is a day-label row that the
// scraper nested as a station: a "day" name whose authored list holds a
// single entry.
func (s Station) IsDayArtifact() bool {
	return s.RawEntries == 1 && strings.Contains(strings.ToLower(s.Name), "day")
}

// Normalized is the merged meal -> day -> station view of a RawDocument.
// Names keep their authored text; Period and Weekday are the parsed values,
// empty when the text is not a known meal or day.
type Normalized struct {
	Meals []MealMenu `json:"meals"`
}

type MealMenu struct {
	Name   string              `json:"name"`
	Period schedule.MealPeriod `json:"period,omitempty"`
	Days   []DayMenu           `json:"days"`
}

type DayMenu struct {
	Name     string       `json:"name"`
	Weekday  schedule.Day `json:"weekday,omitempty"`
	Stations []Station    `json:"stations"`
}

// IsEmpty treats a nil menu as empty so callers can pass absent menus.
func (n *Normalized) IsEmpty() bool {
	return n == nil || len(n.Meals) == 0
}
