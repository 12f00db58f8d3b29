// Package store defines the spreadsheet operations ga-app-sheets needs. The Google Sheets
// implementation is in store/gsheets; store/memory holds worksheets in memory for tests.
package store

import (
	"context"

	"github.com/ga-sheets/ga-app-sheets/layout"
)

type Store interface {
	// Read returns the values in the range. Trailing empty rows and trailing empty cells
	// within a row may be omitted.
	Read(ctx context.Context, r layout.Range) ([][]any, error)

	// Write replaces the cells starting at the top left of the range with the values.
	Write(ctx context.Context, r layout.Range, values [][]any) error

	// Append adds a row after the last non-empty row of the table in the range columns.
	Append(ctx context.Context, r layout.Range, row []any) error

	// Clear empties the cells in the range.
	Clear(ctx context.Context, r layout.Range) error
}
