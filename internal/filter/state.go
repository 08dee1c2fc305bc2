package filter

import (
	"errors"
	"fmt"
	"time"

	"github.com/aidan-labs/UST-Dining-Hall-Menus/internal/availability"
	"github.com/aidan-labs/UST-Dining-Hall-Menus/internal/schedule"
)

var ErrInvalidFilter = errors.New("invalid filter")

// State is the user's current selection.
type State struct {
	Hall schedule.Hall       `json:"hall"`
	Day  schedule.Day        `json:"day"`
	Meal schedule.MealPeriod `json:"meal"`
}

// NewState returns the session-start selection: every hall, every meal,
// and the weekday of now.
func NewState(now time.Time) State {
	return State{
		Hall: schedule.HallAll,
		Day:  schedule.DayOf(now),
		Meal: schedule.MealAll,
	}
}

// Revalidate downgrades a meal that cannot be served for the selected hall
// and day to the wildcard. Valid states are returned unchanged.
func Revalidate(s State) State {
	if !s.Meal.IsWildcard() && !availability.IsMealServed(s.Hall, s.Meal, s.Day) {
		s.Meal = schedule.MealAll
	}
	return s
}

// ParseState reads a selection from free text. Empty values take the
// NewState defaults. The result is not revalidated.
func ParseState(hall, day, meal string, now time.Time) (State, error) {
	s := NewState(now)

	if hall != "" {
		h, ok := schedule.ParseHall(hall)
		if !ok {
			return State{}, fmt.Errorf("%w: unknown hall %q", ErrInvalidFilter, hall)
		}
		s.Hall = h
	}

	if day != "" {
		d, ok := schedule.ParseDay(day)
		if !ok {
			return State{}, fmt.Errorf("%w: unknown day %q", ErrInvalidFilter, day)
		}
		s.Day = d
	}

	if meal != "" {
		m, ok := schedule.ParseMeal(meal)
		if !ok {
			return State{}, fmt.Errorf("%w: unknown meal %q", ErrInvalidFilter, meal)
		}
		s.Meal = m
	}

	return s, nil
}
