package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/aidan-labs/UST-Dining-Hall-Menus/internal/availability"
	"github.com/aidan-labs/UST-Dining-Hall-Menus/internal/filter"
)

func mealsCmd() *cobra.Command {
	var hall, day string

	cmd := &cobra.Command{
		Use:   "meals",
		Short: "List the meals served for a hall and day",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := filter.ParseState(hall, day, "", time.Now())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if availability.IsClosed(s.Hall, s.Day) {
				fmt.Fprintf(out, "%s is closed on %s\n", s.Hall.DisplayName(), s.Day.Label())
				return nil
			}
			fmt.Fprintf(out, "%s, %s: %s\n", s.Hall.DisplayName(), dayLabel(s), mealList(availability.AvailableMeals(s.Hall, s.Day)))
			return nil
		},
	}

	cmd.Flags().StringVar(&hall, "hall", "all", "hall (view, northsider, cornerstone, all)")
	cmd.Flags().StringVar(&day, "day", "", "day of week or all (default today)")
	return cmd
}


func dayLabel(s filter.State) string {
	if s.Day.IsWildcard() {
		return "every day"
	}
	return s.Day.Label()
}
