package schedule

import (
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var title = cases.Title(language.English)

func token(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// ParseHall matches s case-insensitively against the known halls.
func ParseHall(s string) (Hall, bool) {
	h := Hall(token(s))
	if h == HallAll {
		return h, true
	}
	_, ok := table[h]
	return h, ok
}

// ParseDay matches s case-insensitively against the weekday names and "all".
func ParseDay(s string) (Day, bool) {
	d := Day(token(s))
	if d == DayAll {
		return d, true
	}
	for _, known := range days {
		if d == known {
			return d, true
		}
	}
	return "", false
}

// ParseMeal matches s case-insensitively against the meal periods and "all".
func ParseMeal(s string) (MealPeriod, bool) {
	m := MealPeriod(token(s))
	if m == MealAll {
		return m, true
	}
	for _, known := range meals {
		if m == known {
			return m, true
		}
	}
	return "", false
}

// DayOf returns the schedule day for t in t's location.
func DayOf(t time.Time) Day {
	return days[t.Weekday()]
}

// Label returns the day capitalised for display, e.g. "Saturday".
func (d Day) Label() string {
	return title.String(string(d))
}

// Label returns the meal capitalised for display, e.g. "Brunch".
func (m MealPeriod) Label() string {
	return title.String(string(m))
}
