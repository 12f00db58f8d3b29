package definitions

import (
	"strconv"

	"github.com/ga-sheets/ga-app-sheets/store"
)

func text(row []any, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}

	return store.Text(row[i])
}

func checked(row []any, i int) bool {
	if i < 0 || i >= len(row) {
		return false
	}

	return store.Checked(row[i])
}

// cell returns row r of a block of rows, or nil if the row is missing.
func cell(rows [][]any, r int) []any {
	if r < 0 || r >= len(rows) {
		return nil
	}

	return rows[r]
}

// number converts a min/max cell value to a float the way a spreadsheet formula would,
// i.e. an empty cell is 0.
func number(s string) (float64, bool) {
	if s == "" {
		return 0, true
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}

	return v, true
}
