package schedule

// Hall identifies a dining venue. HallAll is the query wildcard.
type Hall string

const (
	HallView        Hall = "view"
	HallNorthsider  Hall = "northsider"
	HallCornerstone Hall = "cornerstone"
	HallAll         Hall = "all"
)

// Day is a weekday name. DayAll is a query wildcard, never a schedule day.
type Day string

const (
	Sunday    Day = "sunday"
	Monday    Day = "monday"
	Tuesday   Day = "tuesday"
	Wednesday Day = "wednesday"
	Thursday  Day = "thursday"
	Friday    Day = "friday"
	Saturday  Day = "saturday"
	DayAll    Day = "all"
)

// MealPeriod is a named meal window. MealAll is the query wildcard.
type MealPeriod string

const (
	Breakfast MealPeriod = "breakfast"
	Lunch     MealPeriod = "lunch"
	Brunch    MealPeriod = "brunch"
	Dinner    MealPeriod = "dinner"
	MealAll   MealPeriod = "all"
)

var hallNames = map[Hall]string{
	HallView:        "The View",
	HallNorthsider:  "Northsider",
	HallCornerstone: "Cornerstone Kitchen",
	HallAll:         "All Halls",
}

// canonical order, used whenever halls are listed
var halls = []Hall{HallView, HallNorthsider, HallCornerstone}

// Sunday first, matching time.Weekday
var days = []Day{Sunday, Monday, Tuesday, Wednesday, Thursday, Friday, Saturday}

// order used for meal selectors
var meals = []MealPeriod{Breakfast, Brunch, Lunch, Dinner}

// Halls returns the concrete halls in canonical order.
func Halls() []Hall {
	return append([]Hall(nil), halls...)
}

// Days returns the real days, Sunday through Saturday.
func Days() []Day {
	return append([]Day(nil), days...)
}

// Meals returns the concrete meal periods in selector order.
func Meals() []MealPeriod {
	return append([]MealPeriod(nil), meals...)
}

func (h Hall) IsWildcard() bool { return h == HallAll }

func (d Day) IsWildcard() bool { return d == DayAll }

func (m MealPeriod) IsWildcard() bool { return m == MealAll }

// DisplayName returns the public name of the hall.
func (h Hall) DisplayName() string {
	if name, ok := hallNames[h]; ok {
		return name
	}
	return string(h)
}

// Anchor is the fragment id used by quick navigation links.
func (h Hall) Anchor() string {
	return "hall-" + string(h)
}
