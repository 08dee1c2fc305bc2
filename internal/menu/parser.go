package menu

import (
	"fmt"
	"os"

	"github.com/tidwall/gjson"
)

// Parse reads a raw menu document. Object key order is kept because week,
// meal, day and station order is meaningful. Any level with the wrong shape
// collapses to empty instead of failing the whole document.
func Parse(data []byte) RawDocument {
	if !gjson.ValidBytes(data) {
		return RawDocument{}
	}

	var doc RawDocument
	eachKey(gjson.ParseBytes(data), func(label string, week gjson.Result) {
		doc.Weeks = append(doc.Weeks, RawWeek{Label: label, Meals: parseMeals(week)})
	})
	return doc
}

// ParseFile reads and parses a document from disk.
func ParseFile(path string) (RawDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return RawDocument{}, fmt.Errorf("read menu %s: %w", path, err)
	}
	return Parse(data), nil
}

func eachKey(r gjson.Result, fn func(key string, value gjson.Result)) {
	if !r.IsObject() {
		return
	}
	r.ForEach(func(k, v gjson.Result) bool {
		fn(k.String(), v)
		return true
	})
}

func parseMeals(r gjson.Result) []RawMeal {
	var meals []RawMeal
	eachKey(r, func(name string, days gjson.Result) {
		meals = append(meals, RawMeal{Name: name, Days: parseDays(days)})
	})
	return meals
}

func parseDays(r gjson.Result) []RawDay {
	var days []RawDay
	eachKey(r, func(name string, stations gjson.Result) {
		days = append(days, RawDay{Name: name, Stations: parseStations(stations)})
	})
	return days
}

func parseStations(r gjson.Result) []Station {
	stations := []Station{}
	eachKey(r, func(name string, items gjson.Result) {
		stations = putStation(stations, Station{
			Name:       name,
			Items:      parseItems(items),
			RawEntries: rawEntries(items),
		})
	})
	return stations
}

// putStation replaces a same-named station in place or appends it.
func putStation(stations []Station, s Station) []Station {
	for i := range stations {
		if stations[i].Name == s.Name {
			stations[i] = s
			return stations
		}
	}
	return append(stations, s)
}

func rawEntries(r gjson.Result) int {
	if !r.IsArray() {
		return 0
	}
	return len(r.Array())
}

func parseItems(r gjson.Result) []Item {
	items := []Item{}
	if !r.IsArray() {
		return items
	}
	r.ForEach(func(_, v gjson.Result) bool {
		switch {
		case v.Type == gjson.String:
			items = append(items, Plain(v.String()))
		case v.IsObject():
			eachKey(v, func(sub string, entries gjson.Result) {
				items = append(items, Grouped(sub, parseEntries(entries)))
			})
		}
		return true
	})
	return items
}

func parseEntries(r gjson.Result) []string {
	entries := []string{}
	if !r.IsArray() {
		return entries
	}
	r.ForEach(func(_, v gjson.Result) bool {
		if v.Type == gjson.String {
			entries = append(entries, v.String())
		}
		return true
	})
	return entries
}
