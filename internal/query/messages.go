package query

import (
	"github.com/aidan-labs/UST-Dining-Hall-Menus/internal/filter"
)

// Caption is the display text for a section's header and notice.
type Caption struct {
	Subtitle string `json:"subtitle"`
	Message  string `json:"message,omitempty"`
}

// Describe returns the text a presentation layer shows for sec under f.
func Describe(sec HallSection, f filter.State) Caption {
	switch sec.Status {
	case StatusNoData:
		return Caption{Subtitle: "No menu data available"}
	case StatusClosed:
		return Caption{
			Subtitle: f.Day.Label() + "'s Menu",
			Message:  "Closed on " + f.Day.Label() + "s",
		}
	case StatusMealNotOffered:
		msg := f.Meal.Label() + " not available"
		if !f.Day.IsWildcard() {
			msg += " on " + f.Day.Label() + "s"
		}
		return Caption{Subtitle: f.Meal.Label(), Message: msg}
	case StatusNoMatchingData:
		return Caption{Subtitle: scopeTitle(f), Message: "No menu available"}
	default:
		return Caption{Subtitle: scopeTitle(f)}
	}
}

func scopeTitle(f filter.State) string {
	if f.Day.IsWildcard() {
		return "Weekly Menu"
	}
	return f.Day.Label() + "'s Menu"
}
