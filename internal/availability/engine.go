package availability

import "github.com/aidan-labs/UST-Dining-Hall-Menus/internal/schedule"

// IsClosed reports whether a concrete hall serves nothing on a concrete day.
// Wildcard halls and days are never closed.
func IsClosed(hall schedule.Hall, day schedule.Day) bool {
	if hall.IsWildcard() || day.IsWildcard() {
		return false
	}
	return len(schedule.MealsServed(hall, day)) == 0
}

// AvailableMeals returns the meals offered for hall and day, in selector
// order. A wildcard on either side takes the union over every real value.
func AvailableMeals(hall schedule.Hall, day schedule.Day) []schedule.MealPeriod {
	hs := []schedule.Hall{hall}
	if hall.IsWildcard() {
		hs = schedule.Halls()
	}
	ds := []schedule.Day{day}
	if day.IsWildcard() {
		ds = schedule.Days()
	}

	offered := make(map[schedule.MealPeriod]bool)
	for _, h := range hs {
		for _, d := range ds {
			for _, m := range schedule.MealsServed(h, d) {
				offered[m] = true
			}
		}
	}

	out := make([]schedule.MealPeriod, 0, len(offered))
	for _, m := range schedule.Meals() {
		if offered[m] {
			out = append(out, m)
		}
	}
	return out
}

// IsMealServed reports whether meal can be chosen for hall and day.
// The meal wildcard is always servable.
func IsMealServed(hall schedule.Hall, meal schedule.MealPeriod, day schedule.Day) bool {
	if meal.IsWildcard() {
		return true
	}
	if !hall.IsWildcard() && !day.IsWildcard() {
		return schedule.Serves(hall, day, meal)
	}
	for _, m := range AvailableMeals(hall, day) {
		if m == meal {
			return true
		}
	}
	return false
}
