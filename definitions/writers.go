package definitions

import (
	"context"
	"fmt"

	"github.com/ga-sheets/ga-app-sheets/analytics"
	"github.com/ga-sheets/ga-app-sheets/layout"
	"github.com/ga-sheets/ga-app-sheets/store"
)

// WriteDestinationProperties replaces the destination properties table with every UA
// property visible to the user, all initially unselected.
func WriteDestinationProperties(ctx context.Context, s store.Store, ua analytics.UA, area layout.Range) (int, error) {
	properties, err := ua.ListProperties(ctx)
	if err != nil {
		return 0, err
	}

	rows := [][]any{}
	for _, p := range properties {
		rows = append(rows, []any{p.AccountName, p.AccountID, p.PropertyName, p.PropertyID, p.Level, false})
	}

	if err := s.Clear(ctx, area); err != nil {
		return 0, err
	}

	if len(rows) > 0 {
		if err := s.Write(ctx, area.Resize(len(rows), area.Columns), rows); err != nil {
			return 0, err
		}
	}

	return len(rows), nil
}

// WriteTemplate copies the custom dimensions or metrics of the template property (account
// ID in column 2 and property ID in column 4 of the template property range) into the
// template table, for editing before a reconciliation run. The include column is left for
// the user to fill in.
func WriteTemplate(ctx context.Context, s store.Store, ua analytics.UA, kind analytics.Kind, property, template layout.Range) (int, error) {
	rows, err := s.Read(ctx, property)
	if err != nil {
		return 0, err
	}

	accountID := text(cell(rows, 0), 1)
	propertyID := text(cell(rows, 0), 3)

	if accountID == "" || propertyID == "" {
		return 0, fmt.Errorf("missing template account/property ID in %v", property.A1())
	}

	definitions, err := ua.ListDefinitions(ctx, kind, accountID, propertyID)
	if err != nil {
		return 0, err
	}

	if len(definitions) == 0 {
		return 0, nil
	}

	values := [][]any{}
	for _, d := range definitions {
		row := []any{d.Index, d.Name, d.Scope, d.Active}
		if kind == analytics.Metrics {
			row = append(row, d.MinValue, d.MaxValue, d.Type)
		}

		values = append(values, row)
	}

	if err := s.Write(ctx, template.Resize(len(values), template.Columns), values); err != nil {
		return 0, err
	}

	return len(values), nil
}
