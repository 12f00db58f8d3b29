// Package events lists the conversion events of the selected GA4 properties into a
// worksheet.
package events

import (
	"context"
	"strings"

	"github.com/ga-sheets/ga-app-sheets/analytics"
	"github.com/ga-sheets/ga-app-sheets/layout"
	"github.com/ga-sheets/ga-app-sheets/log"
	"github.com/ga-sheets/ga-app-sheets/store"
)

// List returns one row per conversion event:
//
//	account name, account ID, property name, property ID, event name, resource name,
//	create time, deletable, custom
//
// The first API error aborts the listing.
func List(ctx context.Context, ga4 analytics.GA4, properties []analytics.GA4Property) ([][]any, error) {
	rows := [][]any{}

	for _, p := range properties {
		events, err := ga4.ListConversionEvents(ctx, p.Resource())
		if err != nil {
			return nil, err
		}

		log.Debugf("%v: %v conversion events", p.Resource(), len(events))

		for _, e := range events {
			rows = append(rows, []any{
				p.AccountName,
				p.AccountID,
				p.PropertyName,
				p.PropertyID,
				e.EventName,
				e.Name,
				e.CreateTime,
				e.Deletable,
				e.Custom,
			})
		}
	}

	return rows, nil
}

// Write lists the conversion events of the properties selected in the GA4 properties table
// and replaces the contents of the conversion events table with them.
func Write(ctx context.Context, s store.Store, ga4 analytics.GA4, properties, events layout.Range) (int, error) {
	selected, err := Selected(ctx, s, properties)
	if err != nil {
		return 0, err
	}

	rows, err := List(ctx, ga4, selected)
	if err != nil {
		return 0, err
	}

	if err := s.Clear(ctx, events); err != nil {
		return 0, err
	}

	if len(rows) > 0 {
		if err := s.Write(ctx, events.Resize(len(rows), events.Columns), rows); err != nil {
			return 0, err
		}
	}

	return len(rows), nil
}

// Selected returns the GA4 properties ticked in the GA4 properties table:
//
//	account name, account ID, property name, property ID, selected
func Selected(ctx context.Context, s store.Store, area layout.Range) ([]analytics.GA4Property, error) {
	rows, err := s.Read(ctx, area)
	if err != nil {
		return nil, err
	}

	selected := []analytics.GA4Property{}
	for _, row := range rows {
		if len(row) < 5 || !store.Checked(row[4]) || store.Text(row[3]) == "" {
			continue
		}

		selected = append(selected, analytics.GA4Property{
			AccountName:  store.Text(row[0]),
			AccountID:    store.Text(row[1]),
			PropertyName: store.Text(row[2]),
			PropertyID:   strings.TrimPrefix(store.Text(row[3]), "properties/"),
		})
	}

	return selected, nil
}

// WriteProperties replaces the GA4 properties table with every GA4 property visible to the
// user, all initially unselected.
func WriteProperties(ctx context.Context, s store.Store, ga4 analytics.GA4, area layout.Range) (int, error) {
	properties, err := ga4.ListProperties(ctx)
	if err != nil {
		return 0, err
	}

	rows := [][]any{}
	for _, p := range properties {
		rows = append(rows, []any{p.AccountName, p.AccountID, p.PropertyName, p.PropertyID, false})
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
