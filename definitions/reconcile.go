// Package definitions creates and updates Universal Analytics custom dimensions and custom
// metrics from a template worksheet.
//
// Template rows are matched to the existing definitions of each destination property by
// position: the n-th template row is compared with the n-th existing definition (ordered
// by index), not by name. Because UA assigns indices sequentially, free positions that are
// not included in the template are filled with placeholders so that the later template
// rows end up at their intended index.
package definitions

import (
	"context"
	"fmt"
	"time"

	"github.com/ga-sheets/ga-app-sheets/analytics"
	"github.com/ga-sheets/ga-app-sheets/layout"
	"github.com/ga-sheets/ga-app-sheets/log"
	"github.com/ga-sheets/ga-app-sheets/ratelimit"
	"github.com/ga-sheets/ga-app-sheets/store"
)

// Standard UA properties have 20 custom dimension and 20 custom metric slots. Analytics
// 360 (PREMIUM) properties have 200.
const (
	StandardSlots = 20
	PremiumSlots  = 200
)

// Ranges locates the worksheet regions used by a reconciliation run.
type Ranges struct {
	Template     layout.Range
	Destinations layout.Range
	Settings     layout.Range
	Results      layout.Range
}

func RangesFor(d layout.Definitions) Ranges {
	return Ranges{
		Template:     d.Template,
		Destinations: d.DestinationProperties,
		Settings:     d.Settings,
		Results:      d.Results,
	}
}

type Reconciler struct {
	store   store.Store
	ua      analytics.UA
	limiter *ratelimit.Limiter
	dryrun  bool
	now     func() time.Time
}

// NewReconciler returns a Reconciler that writes results through the limiter. A dry run
// logs the intended changes without calling the API or writing results.
func NewReconciler(s store.Store, ua analytics.UA, limiter *ratelimit.Limiter, dryrun bool) *Reconciler {
	return &Reconciler{
		store:   s,
		ua:      ua,
		limiter: limiter,
		dryrun:  dryrun,
		now:     time.Now,
	}
}

// Modify applies the template to every selected destination property. The first error
// aborts the run, leaving any results already written in the results worksheet.
func (r *Reconciler) Modify(ctx context.Context, kind analytics.Kind, ranges Ranges) ([]Result, error) {
	destinations, err := r.destinations(ctx, ranges.Destinations)
	if err != nil {
		return nil, err
	}

	rows, err := r.store.Read(ctx, ranges.Template)
	if err != nil {
		return nil, err
	}

	templates, err := ParseTemplates(kind, rows)
	if err != nil {
		return nil, err
	}

	rows, err = r.store.Read(ctx, ranges.Settings)
	if err != nil {
		return nil, err
	}

	settings := ParseSettings(rows)
	results := []Result{}

	log.Debugf("%v: %v template rows, %v selected properties, overwrite:%v", kind, len(templates), len(destinations), settings.Overwrite)

	if len(templates) == 0 || len(destinations) == 0 {
		log.Infof("No %v to modify", kind)
		return results, nil
	}

	for _, d := range destinations {
		list, err := r.modify(ctx, kind, d.Property, templates, settings, ranges.Results)
		results = append(results, list...)

		if err != nil {
			return results, err
		}
	}

	return results, nil
}

func (r *Reconciler) destinations(ctx context.Context, area layout.Range) ([]Destination, error) {
	rows, err := r.store.Read(ctx, area)
	if err != nil {
		return nil, err
	}

	selected := []Destination{}
	for _, d := range ParseDestinations(rows) {
		if d.Selected {
			selected = append(selected, d)
		}
	}

	return selected, nil
}

func (r *Reconciler) modify(ctx context.Context, kind analytics.Kind, p analytics.Property, templates []Template, settings Settings, results layout.Range) ([]Result, error) {
	existing, err := r.ua.ListDefinitions(ctx, kind, p.AccountID, p.PropertyID)
	if err != nil {
		return nil, err
	}

	slots := StandardSlots
	if p.Premium() {
		slots = PremiumSlots
	}

	list := []Result{}

	for i, t := range templates {
		if i >= slots {
			log.Warnf("%v: ignoring %v template rows beyond the %v available slots", p.PropertyID, len(templates)-i, slots)
			break
		}

		var current *analytics.Definition
		if i < len(existing) {
			current = &existing[i]
		}

		action := Decide(kind, t, current, settings.Overwrite)

		var rq analytics.Definition
		switch action {
		case Skip:
			continue

		case Create, Update:
			rq = TemplateRequest(kind, t)

		case CreatePlaceholder:
			rq = PlaceholderRequest(kind, t, settings)
		}

		if r.dryrun {
			log.Infof("DRY RUN %v: %v %v %v %q", p.PropertyID, action, kind, rq.Index, rq.Name)
			continue
		}

		definition, err := r.apply(ctx, kind, p, action, rq)
		if err != nil {
			return list, err
		}

		result := Result{
			AccountID:  p.AccountID,
			PropertyID: p.PropertyID,
			Action:     action,
			Definition: *definition,
			Timestamp:  r.now(),
		}

		if err := r.record(ctx, kind, results, result); err != nil {
			return list, err
		}

		log.Infof("%v: %v %v %v %q", p.PropertyID, action, kind, definition.Index, definition.Name)

		list = append(list, result)
	}

	return list, nil
}

func (r *Reconciler) apply(ctx context.Context, kind analytics.Kind, p analytics.Property, action Action, rq analytics.Definition) (*analytics.Definition, error) {
	var definition *analytics.Definition
	var err error

	switch action {
	case Create, CreatePlaceholder:
		definition, err = r.ua.CreateDefinition(ctx, kind, p.AccountID, p.PropertyID, rq)

	case Update:
		definition, err = r.ua.UpdateDefinition(ctx, kind, p.AccountID, p.PropertyID, rq)

	default:
		return nil, fmt.Errorf("invalid action %v", action)
	}

	if err != nil {
		return nil, err
	} else if definition == nil {
		return &rq, nil
	}

	return definition, nil
}

// record appends the result to the results worksheet. Appends are paced by the limiter to
// stay within the Sheets write quota.
func (r *Reconciler) record(ctx context.Context, kind analytics.Kind, area layout.Range, result Result) error {
	if err := r.limiter.Wait(ctx); err != nil {
		return err
	}

	return r.store.Append(ctx, area, result.Row(kind))
}
