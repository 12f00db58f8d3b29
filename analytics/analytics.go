// Package analytics wraps the Google Analytics management APIs used by ga-app-sheets:
// the Universal Analytics Management API (v3) for custom dimensions and custom metrics and
// the Google Analytics Admin API (v1beta) for GA4 properties and conversion events.
//
// The UA and GA4 interfaces are what the rest of the application depends on; UAClient and
// GA4Client are the production implementations and analytics/mock holds gomock doubles.
package analytics

import (
	"context"
	"fmt"
	"strings"
)

//go:generate mockgen -destination=mock/mock_analytics.go -package=mock github.com/ga-sheets/ga-app-sheets/analytics UA,GA4

type UA interface {
	ListProperties(ctx context.Context) ([]Property, error)
	ListDefinitions(ctx context.Context, kind Kind, accountID, propertyID string) ([]Definition, error)
	CreateDefinition(ctx context.Context, kind Kind, accountID, propertyID string, definition Definition) (*Definition, error)
	UpdateDefinition(ctx context.Context, kind Kind, accountID, propertyID string, definition Definition) (*Definition, error)
}

type GA4 interface {
	ListProperties(ctx context.Context) ([]GA4Property, error)
	ListConversionEvents(ctx context.Context, property string) ([]ConversionEvent, error)
}

// Kind selects between UA custom dimensions and UA custom metrics.
type Kind int

const (
	Dimensions Kind = iota
	Metrics
)

func (k Kind) String() string {
	switch k {
	case Dimensions:
		return "custom dimensions"

	case Metrics:
		return "custom metrics"

	default:
		return fmt.Sprintf("unknown kind (%d)", int(k))
	}
}

// ParseKind accepts 'dimensions', 'custom dimensions', 'cd' and the metrics equivalents.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.Join(strings.Fields(s), " ")) {
	case "dimensions", "custom dimensions", "cd", "cds":
		return Dimensions, nil

	case "metrics", "custom metrics", "cm", "cms":
		return Metrics, nil
	}

	return Dimensions, fmt.Errorf("invalid custom definition type '%v' - expected 'dimensions' or 'metrics'", s)
}

// Property is a Universal Analytics web property. Level is STANDARD or PREMIUM (Analytics
// 360), which determines how many custom definition slots the property has.
type Property struct {
	AccountName  string
	AccountID    string
	PropertyName string
	PropertyID   string
	Level        string
}

func (p Property) Premium() bool {
	return strings.EqualFold(p.Level, "PREMIUM")
}

// Definition is a UA custom dimension or custom metric. MinValue, MaxValue and Type only
// apply to metrics and an empty MinValue/MaxValue is left out of API requests.
type Definition struct {
	Index    int64
	Name     string
	Scope    string
	Active   bool
	MinValue string
	MaxValue string
	Type     string
}

type GA4Property struct {
	AccountName  string
	AccountID    string
	PropertyName string
	PropertyID   string
}

// Resource returns the Admin API resource name e.g. properties/123456.
func (p GA4Property) Resource() string {
	return "properties/" + p.PropertyID
}

type ConversionEvent struct {
	Name       string
	EventName  string
	CreateTime string
	Deletable  bool
	Custom     bool
}
