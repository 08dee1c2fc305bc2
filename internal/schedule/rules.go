package schedule

var weekdays = []MealPeriod{Breakfast, Lunch, Dinner}

// table holds the meals each hall serves per real day.
// A missing day means the hall is closed.
var table = map[Hall]map[Day][]MealPeriod{
	HallCornerstone: {
		Monday:    {Breakfast, Lunch},
		Tuesday:   {Breakfast, Lunch},
		Wednesday: {Breakfast, Lunch},
		Thursday:  {Breakfast, Lunch},
		Friday:    {Breakfast, Lunch},
	},
	HallNorthsider: {
		Sunday:    {Brunch, Dinner},
		Monday:    weekdays,
		Tuesday:   weekdays,
		Wednesday: weekdays,
		Thursday:  weekdays,
		Friday:    weekdays,
	},
	HallView: {
		Monday:    weekdays,
		Tuesday:   weekdays,
		Wednesday: weekdays,
		Thursday:  weekdays,
		Friday:    weekdays,
		Saturday:  {Brunch, Dinner},
	},
}

// MealsServed returns the meals hall serves on day. An empty result means
// the hall is closed. Wildcards and unknown values resolve to empty.
func MealsServed(hall Hall, day Day) []MealPeriod {
	served := table[hall][day]
	if len(served) == 0 {
		return []MealPeriod{}
	}
	return append([]MealPeriod(nil), served...)
}

// Serves reports whether meal is in MealsServed(hall, day).
func Serves(hall Hall, day Day, meal MealPeriod) bool {
	for _, m := range table[hall][day] {
		if m == meal {
			return true
		}
	}
	return false
}

// Week is the full table for one hall, keyed by real day.
type Week struct {
	Hall Hall       `json:"hall"`
	Name string     `json:"name"`
	Days []DayMeals `json:"days"`
}

type DayMeals struct {
	Day    Day          `json:"day"`
	Closed bool         `json:"closed"`
	Meals  []MealPeriod `json:"meals"`
}

// WeeklyTable lists every hall's schedule in canonical order.
func WeeklyTable() []Week {
	out := make([]Week, 0, len(halls))
	for _, h := range halls {
		w := Week{Hall: h, Name: h.DisplayName()}
		for _, d := range days {
			served := MealsServed(h, d)
			w.Days = append(w.Days, DayMeals{Day: d, Closed: len(served) == 0, Meals: served})
		}
		out = append(out, w)
	}
	return out
}
