package store

import (
	"fmt"
	"strconv"
	"strings"
)

// Text returns a cell value as a trimmed string. Numbers are formatted without a trailing
// '.0' so that 1.0 from an unformatted read compares equal to "1".
func Text(v any) string {
	switch value := v.(type) {
	case nil:
		return ""

	case string:
		return strings.TrimSpace(value)

	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)

	case int:
		return strconv.Itoa(value)

	case int64:
		return strconv.FormatInt(value, 10)

	case bool:
		return strconv.FormatBool(value)

	default:
		return strings.TrimSpace(fmt.Sprintf("%v", v))
	}
}

// Checked returns true for a ticked checkbox, a non-zero number or a TRUE/YES/Y cell.
func Checked(v any) bool {
	switch value := v.(type) {
	case bool:
		return value

	case float64:
		return value != 0

	case int:
		return value != 0

	case int64:
		return value != 0

	case string:
		switch strings.ToLower(strings.TrimSpace(value)) {
		case "true", "yes", "y":
			return true
		}
	}

	return false
}
