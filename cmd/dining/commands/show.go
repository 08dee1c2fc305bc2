package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/aidan-labs/UST-Dining-Hall-Menus/internal/config"
	"github.com/aidan-labs/UST-Dining-Hall-Menus/internal/filter"
	"github.com/aidan-labs/UST-Dining-Hall-Menus/internal/loader"
	"github.com/aidan-labs/UST-Dining-Hall-Menus/internal/menu"
	"github.com/aidan-labs/UST-Dining-Hall-Menus/internal/query"
)

func showCmd() *cobra.Command {
	var (
		hall, day, meal string
		dir             string
		asJSON          bool
	)

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the menus matching a hall, day and meal selection",
		RunE: func(cmd *cobra.Command, args []string) error {
			now := time.Now()
			sel, err := filter.ParseState(hall, day, meal, now)
			if err != nil {
				return err
			}

			// apply the selection the way the selectors do; the meal
			// selector only offers what the hall and day serve
			c := filter.NewController(filter.NewState(now))
			c.SelectHall(sel.Hall)
			c.SelectDay(sel.Day)
			if slices.Contains(c.MealOptions(), sel.Meal) {
				c.SelectMeal(sel.Meal)
			}
			f := c.State()

			if dir != "" {
				cfg.Menus.Source = config.SourceFile
				cfg.Menus.Dir = dir
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			store, err := cfg.OpenStore(cmd.Context())
			if err != nil {
				return err
			}
			snap, err := loader.New(store, cfg.Documents(), logger).Load(cmd.Context())
			if err != nil {
				return err
			}

			sections := query.BuildView(f.Hall, snap.Menus, f)
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(sections)
			}
			writeSections(cmd.OutOrStdout(), sections, f)
			return nil
		},
	}

	cmd.Flags().StringVar(&hall, "hall", "all", "hall (view, northsider, cornerstone, all)")
	cmd.Flags().StringVar(&day, "day", "", "day of week or all (default today)")
	cmd.Flags().StringVar(&meal, "meal", "all", "meal (breakfast, brunch, lunch, dinner, all)")
	cmd.Flags().StringVar(&dir, "dir", "", "read menu documents from this directory")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the view as JSON")
	return cmd
}

func writeSections(w io.Writer, sections []query.HallSection, f filter.State) {
	st := newStyles(w)
	for i, sec := range sections {
		if i > 0 {
			fmt.Fprintln(w)
		}
		caption := query.Describe(sec, f)
		fmt.Fprintf(w, "%s %s\n", st.Hall.Render("== "+sec.Name+" =="), st.Subtitle.Render(caption.Subtitle))
		if caption.Message != "" {
			fmt.Fprintf(w, "  %s\n", st.Notice.Render(caption.Message))
		}

		for _, card := range sec.Meals {
			fmt.Fprintf(w, "\n%s %s\n", st.Meal.Render(card.Name), st.Badge.Render("["+card.Badge+"]"))
			for _, d := range card.Days {
				indent := "  "
				if d.ShowHeading {
					fmt.Fprintf(w, "  %s\n", st.Day.Render(d.Name))
					indent = "    "
				}
				for _, station := range d.Stations {
					fmt.Fprintf(w, "%s%s\n", indent, st.Station.Render(station.Name))
					for _, item := range station.Items {
						fmt.Fprintf(w, "%s  - %s\n", indent, itemText(item))
					}
				}
			}
		}
	}
}

func itemText(item menu.Item) string {
	if item.IsGrouped() {
		return item.Subcategory + ": " + strings.Join(item.Entries, ", ")
	}
	return item.Name
}
