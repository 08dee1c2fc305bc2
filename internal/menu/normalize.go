package menu

import (
	"slices"

	"github.com/aidan-labs/UST-Dining-Hall-Menus/internal/schedule"
)

// Normalize merges every week grouping of doc into one meal -> day -> station
// structure.
//
// Meals with the same authored name accumulate days across groupings. A day
// seen again under the same meal replaces the earlier day's stations
// wholesale but keeps its original position.
func Normalize(doc RawDocument) *Normalized {
	n := &Normalized{Meals: []MealMenu{}}

	for _, week := range doc.Weeks {
		for _, meal := range week.Meals {
			i := n.mealIndex(meal.Name)
			for _, day := range meal.Days {
				n.Meals[i].putDay(DayMenu{
					Name:     day.Name,
					Weekday:  weekdayOf(day.Name),
					Stations: slices.Clone(day.Stations),
				})
			}
		}
	}

	return n
}

func (n *Normalized) mealIndex(name string) int {
	for i, m := range n.Meals {
		if m.Name == name {
			return i
		}
	}
	n.Meals = append(n.Meals, MealMenu{Name: name, Period: periodOf(name), Days: []DayMenu{}})
	return len(n.Meals) - 1
}

func (m *MealMenu) putDay(d DayMenu) {
	if d.Stations == nil {
		d.Stations = []Station{}
	}
	for i := range m.Days {
		if m.Days[i].Name == d.Name {
			m.Days[i] = d
			return
		}
	}
	m.Days = append(m.Days, d)
}

// periodOf parses an authored meal name. The wildcard is not a meal.
func periodOf(name string) schedule.MealPeriod {
	p, ok := schedule.ParseMeal(name)
	if !ok || p.IsWildcard() {
		return ""
	}
	return p
}

func weekdayOf(name string) schedule.Day {
	d, ok := schedule.ParseDay(name)
	if !ok || d.IsWildcard() {
		return ""
	}
	return d
}
