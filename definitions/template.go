package definitions

import (
	"fmt"
	"strconv"

	"github.com/ga-sheets/ga-app-sheets/analytics"
)

// Template is one row of the template worksheet. Rows are positional:
//
//	dimensions: index, name, scope, active, include
//	metrics:    index, name, scope, active, min, max, type, include
//
// The include flag is the last column of the template width rather than the last cell of
// the row because the Sheets API drops trailing empty cells.
type Template struct {
	Index   int64
	Name    string
	Scope   string
	Active  bool
	Min     string
	Max     string
	Type    string
	Include bool
}

// Settings is the single-column settings block: overwrite existing, placeholder name,
// placeholder scope, placeholder active and, for metrics, placeholder min, max and type.
type Settings struct {
	Overwrite   bool
	Placeholder Placeholder
}

type Placeholder struct {
	Name   string
	Scope  string
	Active bool
	Min    string
	Max    string
	Type   string
}

// Destination is a row of the destination properties table:
//
//	account name, account ID, property name, property ID, level, selected
type Destination struct {
	analytics.Property
	Selected bool
}

const (
	DefaultPlaceholderName  = "Placeholder"
	DefaultPlaceholderScope = "HIT"
	DefaultMetricType       = "INTEGER"
)

// Columns returns the number of template columns for a kind, including the trailing
// include flag.
func Columns(kind analytics.Kind) int {
	if kind == analytics.Metrics {
		return 8
	}

	return 5
}

// ParseTemplates converts the template rows, skipping rows without an index.
func ParseTemplates(kind analytics.Kind, rows [][]any) ([]Template, error) {
	templates := []Template{}

	for i, row := range rows {
		if text(row, 0) == "" {
			continue
		}

		index, err := strconv.ParseInt(text(row, 0), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("template row %d: invalid index '%v'", i+1, text(row, 0))
		}

		t := Template{
			Index:  index,
			Name:   text(row, 1),
			Scope:  text(row, 2),
			Active: checked(row, 3),
		}

		if kind == analytics.Metrics {
			t.Min = text(row, 4)
			t.Max = text(row, 5)
			t.Type = text(row, 6)
		}

		t.Include = checked(row, Columns(kind)-1)

		templates = append(templates, t)
	}

	return templates, nil
}

// ParseSettings converts the settings block, filling in the placeholder defaults for
// empty cells.
func ParseSettings(rows [][]any) Settings {
	settings := Settings{
		Overwrite: checked(cell(rows, 0), 0),
		Placeholder: Placeholder{
			Name:   text(cell(rows, 1), 0),
			Scope:  text(cell(rows, 2), 0),
			Active: checked(cell(rows, 3), 0),
			Min:    text(cell(rows, 4), 0),
			Max:    text(cell(rows, 5), 0),
			Type:   text(cell(rows, 6), 0),
		},
	}

	if settings.Placeholder.Name == "" {
		settings.Placeholder.Name = DefaultPlaceholderName
	}

	if settings.Placeholder.Scope == "" {
		settings.Placeholder.Scope = DefaultPlaceholderScope
	}

	if settings.Placeholder.Type == "" {
		settings.Placeholder.Type = DefaultMetricType
	}

	return settings
}

// ParseDestinations converts the destination properties table, skipping rows without a
// property ID.
func ParseDestinations(rows [][]any) []Destination {
	destinations := []Destination{}

	for _, row := range rows {
		if text(row, 3) == "" {
			continue
		}

		destinations = append(destinations, Destination{
			Property: analytics.Property{
				AccountName:  text(row, 0),
				AccountID:    text(row, 1),
				PropertyName: text(row, 2),
				PropertyID:   text(row, 3),
				Level:        text(row, 4),
			},
			Selected: checked(row, 5),
		})
	}

	return destinations
}
