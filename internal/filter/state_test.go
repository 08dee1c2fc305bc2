package filter

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aidan-labs/UST-Dining-Hall-Menus/internal/schedule"
)

// Monday
var monday = time.Date(2026, time.October, 19, 9, 0, 0, 0, time.UTC)

func allStates() []State {
	halls := append(schedule.Halls(), schedule.HallAll)
	days := append(schedule.Days(), schedule.DayAll)
	meals := append(schedule.Meals(), schedule.MealAll)

	var out []State
	for _, h := range halls {
		for _, d := range days {
			for _, m := range meals {
				out = append(out, State{Hall: h, Day: d, Meal: m})
			}
		}
	}
	return out
}

func TestNewState(t *testing.T) {
	s := NewState(monday)
	assert.Equal(t, State{Hall: schedule.HallAll, Day: schedule.Monday, Meal: schedule.MealAll}, s)
}

func TestRevalidate(t *testing.T) {
	cases := []struct {
		name string
		in   State
		want schedule.MealPeriod
	}{
		{"served stays", State{schedule.HallView, schedule.Saturday, schedule.Brunch}, schedule.Brunch},
		{"not served resets", State{schedule.HallNorthsider, schedule.Sunday, schedule.Breakfast}, schedule.MealAll},
		{"closed day resets", State{schedule.HallCornerstone, schedule.Saturday, schedule.Lunch}, schedule.MealAll},
		{"wildcard untouched", State{schedule.HallCornerstone, schedule.Sunday, schedule.MealAll}, schedule.MealAll},
		{"union over week", State{schedule.HallNorthsider, schedule.DayAll, schedule.Brunch}, schedule.Brunch},
		{"never dinner", State{schedule.HallCornerstone, schedule.DayAll, schedule.Dinner}, schedule.MealAll},
		{"union over halls", State{schedule.HallAll, schedule.Saturday, schedule.Brunch}, schedule.Brunch},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Revalidate(tc.in)
			assert.Equal(t, tc.want, got.Meal)
			assert.Equal(t, tc.in.Hall, got.Hall)
			assert.Equal(t, tc.in.Day, got.Day)
		})
	}
}

func TestRevalidate_Idempotent(t *testing.T) {
	for _, s := range allStates() {
		once := Revalidate(s)
		assert.Equal(t, once, Revalidate(once), "%+v", s)
	}
}

func TestParseState(t *testing.T) {
	s, err := ParseState("", "", "", monday)
	require.NoError(t, err)
	assert.Equal(t, NewState(monday), s)

	s, err = ParseState("View", "Saturday", "BRUNCH", monday)
	require.NoError(t, err)
	assert.Equal(t, State{schedule.HallView, schedule.Saturday, schedule.Brunch}, s)

	_, err = ParseState("library", "", "", monday)
	assert.True(t, errors.Is(err, ErrInvalidFilter))

	_, err = ParseState("", "funday", "", monday)
	assert.ErrorIs(t, err, ErrInvalidFilter)

	_, err = ParseState("", "", "supper", monday)
	assert.ErrorIs(t, err, ErrInvalidFilter)
}
