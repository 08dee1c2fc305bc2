package query

import (
	"strconv"

	"github.com/aidan-labs/UST-Dining-Hall-Menus/internal/availability"
	"github.com/aidan-labs/UST-Dining-Hall-Menus/internal/filter"
	"github.com/aidan-labs/UST-Dining-Hall-Menus/internal/menu"
	"github.com/aidan-labs/UST-Dining-Hall-Menus/internal/schedule"
)

// BuildView produces one section per hall in scope, in canonical hall order.
// The checks run in a fixed order: missing data, closed day, meal not
// offered, then filtering of the menu itself.
func BuildView(scope schedule.Hall, menus Menus, f filter.State) []HallSection {
	halls := []schedule.Hall{scope}
	if scope.IsWildcard() {
		halls = schedule.Halls()
	}

	sections := make([]HallSection, 0, len(halls))
	for _, h := range halls {
		sections = append(sections, buildSection(h, menus[h], f))
	}
	return sections
}

func buildSection(h schedule.Hall, m *menu.Normalized, f filter.State) HallSection {
	sec := HallSection{
		Hall:   h,
		Name:   h.DisplayName(),
		Anchor: h.Anchor(),
	}

	switch {
	case m.IsEmpty():
		sec.Status = StatusNoData
	case !f.Day.IsWildcard() && availability.IsClosed(h, f.Day):
		sec.Status = StatusClosed
	case !f.Meal.IsWildcard() && !availability.IsMealServed(h, f.Meal, f.Day):
		sec.Status = StatusMealNotOffered
	default:
		sec.Meals = mealCards(m, f)
		if len(sec.Meals) == 0 {
			sec.Status = StatusNoMatchingData
		} else {
			sec.Status = StatusOK
		}
	}
	return sec
}

func mealCards(m *menu.Normalized, f filter.State) []MealCard {
	var cards []MealCard
	for _, meal := range m.Meals {
		if !f.Meal.IsWildcard() && meal.Period != f.Meal {
			continue
		}

		days := daySections(meal.Days, f.Day)
		if len(days) == 0 {
			continue
		}

		cards = append(cards, MealCard{
			Name:   meal.Name,
			Period: meal.Period,
			Badge:  badge(days),
			Days:   days,
		})
	}
	return cards
}

func daySections(days []menu.DayMenu, selected schedule.Day) []DaySection {
	var out []DaySection
	for _, d := range days {
		if !selected.IsWildcard() && d.Weekday != selected {
			continue
		}

		out = append(out, DaySection{
			Name:        d.Name,
			Day:         d.Weekday,
			ShowHeading: selected.IsWildcard(),
			Stations:    visibleStations(d.Stations),
		})

		// a concrete day shows exactly one section
		if !selected.IsWildcard() {
			break
		}
	}
	return out
}

// visibleStations drops day-label rows the scraper stored as stations.
func visibleStations(stations []menu.Station) []menu.Station {
	out := make([]menu.Station, 0, len(stations))
	for _, s := range stations {
		if s.IsDayArtifact() {
			continue
		}
		out = append(out, s)
	}
	return out
}

func badge(days []DaySection) string {
	if len(days) == 1 {
		return days[0].Name
	}
	return strconv.Itoa(len(days)) + " days"
}

// QuickNav lists jump links for the halls in scope.
func QuickNav(scope schedule.Hall) []NavLink {
	halls := []schedule.Hall{scope}
	if scope.IsWildcard() {
		halls = schedule.Halls()
	}

	links := make([]NavLink, 0, len(halls))
	for _, h := range halls {
		links = append(links, NavLink{Anchor: h.Anchor(), Name: h.DisplayName()})
	}
	return links
}
