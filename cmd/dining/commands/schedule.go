package commands

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/aidan-labs/UST-Dining-Hall-Menus/internal/schedule"
)

func scheduleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Print the weekly meal schedule of every hall",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for i, week := range schedule.WeeklyTable() {
				if i > 0 {
					fmt.Fprintln(w)
				}
				fmt.Fprintln(w, week.Name)
				for _, d := range week.Days {
					fmt.Fprintf(w, "  %s\t%s\n", d.Day.Label(), mealList(d.Meals))
				}
			}
			return w.Flush()
		},
	}
	return cmd
}

// mealList joins meal labels, or says "Closed" for none.
func mealList(meals []schedule.MealPeriod) string {
	if len(meals) == 0 {
		return "Closed"
	}
	labels := make([]string, len(meals))
	for i, m := range meals {
		labels[i] = m.Label()
	}
	return strings.Join(labels, ", ")
}
