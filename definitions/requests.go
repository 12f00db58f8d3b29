package definitions

import (
	"fmt"

	"github.com/ga-sheets/ga-app-sheets/analytics"
)

type Action int

const (
	Skip Action = iota
	Create
	CreatePlaceholder
	Update
)

func (a Action) String() string {
	return [...]string{"skip", "create", "create placeholder", "update"}[a]
}

// Label is the action recorded in the results worksheet. Updates are recorded as
// 'created' too, matching the existing results worksheets. Use String() to tell them apart.
func (a Action) Label() string {
	switch a {
	case Create, CreatePlaceholder, Update:
		return "created"

	default:
		return ""
	}
}

// Decide determines what to do with a template row given the definition that currently
// occupies the same position (nil if the position is free).
//
// An occupied position is only updated if the row is included, overwriting is enabled and
// the row differs from the existing definition. For metrics a row only differs if the
// name, scope or active flag differ AND the min, max and type all differ.
//
// A free position is filled from the template if the row is included, otherwise with a
// placeholder so that the indices of subsequent definitions line up.
func Decide(kind analytics.Kind, t Template, existing *analytics.Definition, overwrite bool) Action {
	if existing != nil {
		if t.Include && overwrite && differs(kind, t, *existing) {
			return Update
		}

		return Skip
	}

	if t.Include {
		return Create
	}

	return CreatePlaceholder
}

func differs(kind analytics.Kind, t Template, existing analytics.Definition) bool {
	changed := t.Name != existing.Name || t.Scope != existing.Scope || t.Active != existing.Active

	if kind == analytics.Metrics {
		return changed && t.Min != existing.MinValue && t.Max != existing.MaxValue && t.Type != existing.Type
	}

	return changed
}

// TemplateRequest builds the definition requested by a template row. For metrics, a TIME
// metric without a minimum gets a minimum of 0 and a maximum that is empty or less than
// the minimum is left out.
func TemplateRequest(kind analytics.Kind, t Template) analytics.Definition {
	rq := analytics.Definition{
		Index:  t.Index,
		Name:   t.Name,
		Scope:  t.Scope,
		Active: t.Active,
	}

	if kind == analytics.Metrics {
		rq.MinValue = t.Min
		rq.MaxValue = t.Max
		rq.Type = t.Type

		if t.Type == "TIME" && rq.MinValue == "" {
			rq.MinValue = "0"
		}

		if rq.MaxValue == "" || below(rq.MaxValue, rq.MinValue) {
			rq.MaxValue = ""
		}
	}

	return rq
}

// PlaceholderRequest builds the filler definition that reserves the template row's index.
func PlaceholderRequest(kind analytics.Kind, t Template, settings Settings) analytics.Definition {
	p := settings.Placeholder

	rq := analytics.Definition{
		Index:  t.Index,
		Name:   fmt.Sprintf("%v %v", p.Name, t.Index),
		Scope:  p.Scope,
		Active: p.Active,
	}

	if kind == analytics.Metrics {
		rq.MinValue = p.Min
		rq.MaxValue = p.Max
		rq.Type = p.Type
	}

	return rq
}

func below(max, min string) bool {
	p, ok := number(max)
	if !ok {
		return false
	}

	q, ok := number(min)
	if !ok {
		return false
	}

	return p < q
}
