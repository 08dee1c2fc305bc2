package query

import (
	"github.com/aidan-labs/UST-Dining-Hall-Menus/internal/menu"
	"github.com/aidan-labs/UST-Dining-Hall-Menus/internal/schedule"
)

// Status is the outcome for one hall. Only StatusOK carries meal cards.
type Status string

const (
	StatusOK             Status = "ok"
	StatusNoData         Status = "no_data"
	StatusClosed         Status = "closed"
	StatusMealNotOffered Status = "meal_not_offered"
	StatusNoMatchingData Status = "no_matching_data"
)

// Menus maps each hall to its normalized menu. A missing or empty entry
// means no data was loaded for that hall.
type Menus map[schedule.Hall]*menu.Normalized

type HallSection struct {
	Hall   schedule.Hall `json:"hall"`
	Name   string        `json:"name"`
	Anchor string        `json:"anchor"`
	Status Status        `json:"status"`
	Meals  []MealCard    `json:"meals,omitempty"`
}

type MealCard struct {
	Name   string              `json:"name"`
	Period schedule.MealPeriod `json:"period,omitempty"`
	Badge  string              `json:"badge"`
	Days   []DaySection        `json:"days"`
}

// DaySection is one day of a meal card. ShowHeading is false when the
// selection already names the day.
type DaySection struct {
	Name        string         `json:"name"`
	Day         schedule.Day   `json:"day,omitempty"`
	ShowHeading bool           `json:"show_heading"`
	Stations    []menu.Station `json:"stations"`
}

type NavLink struct {
	Anchor string `json:"anchor"`
	Name   string `json:"name"`
}
