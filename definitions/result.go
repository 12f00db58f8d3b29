package definitions

import (
	"time"

	"github.com/ga-sheets/ga-app-sheets/analytics"
)

type Result struct {
	AccountID  string
	PropertyID string
	Action     Action
	Definition analytics.Definition
	Timestamp  time.Time
}

// Row formats the result for the results worksheet:
//
//	account ID, property ID, index, name, scope, active, [min, max, type,] action, timestamp
func (r Result) Row(kind analytics.Kind) []any {
	d := r.Definition
	row := []any{r.AccountID, r.PropertyID, d.Index, d.Name, d.Scope, d.Active}

	if kind == analytics.Metrics {
		row = append(row, d.MinValue, d.MaxValue, d.Type)
	}

	return append(row, r.Action.Label(), r.Timestamp.Format("2006-01-02 15:04:05"))
}
