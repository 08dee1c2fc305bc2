package filter

import (
	"github.com/aidan-labs/UST-Dining-Hall-Menus/internal/availability"
	"github.com/aidan-labs/UST-Dining-Hall-Menus/internal/schedule"
)

// Controller owns a selection and applies user commands to it. Hall and day
// changes revalidate the meal; meal changes are taken as-is because the
// selector only offers MealOptions.
type Controller struct {
	state State
}

func NewController(initial State) *Controller {
	return &Controller{state: Revalidate(initial)}
}

func (c *Controller) State() State {
	return c.state
}

func (c *Controller) SelectHall(h schedule.Hall) State {
	c.state.Hall = h
	c.state = Revalidate(c.state)
	return c.state
}

func (c *Controller) SelectDay(d schedule.Day) State {
	c.state.Day = d
	c.state = Revalidate(c.state)
	return c.state
}

func (c *Controller) SelectMeal(m schedule.MealPeriod) State {
	c.state.Meal = m
	return c.state
}

// MealOptions lists the wildcard followed by every meal on offer for the
// current hall and day.
func (c *Controller) MealOptions() []schedule.MealPeriod {
	return MealOptions(c.state)
}

func MealOptions(s State) []schedule.MealPeriod {
	return append([]schedule.MealPeriod{schedule.MealAll}, availability.AvailableMeals(s.Hall, s.Day)...)
}
