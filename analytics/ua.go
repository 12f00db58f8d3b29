package analytics

import (
	"context"
	"fmt"
	"sort"

	"github.com/pkg/errors"
	ga "google.golang.org/api/analytics/v3"

	"github.com/ga-sheets/ga-app-sheets/log"
	"github.com/ga-sheets/ga-app-sheets/ratelimit"
)

var _ UA = (*UAClient)(nil)

// UAClient implements UA with the Google Analytics Management API v3.
type UAClient struct {
	service *ga.Service
	limiter *ratelimit.Limiter
}

// A UA property has at most 200 custom dimensions and 200 custom metrics (Analytics 360).
const maxDefinitions = 200

func NewUAClient(service *ga.Service, limiter *ratelimit.Limiter) *UAClient {
	return &UAClient{
		service: service,
		limiter: limiter,
	}
}

func (c *UAClient) ListProperties(ctx context.Context) ([]Property, error) {
	properties := []Property{}
	start := int64(1)

	for {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}

		summaries, err := c.service.Management.AccountSummaries.List().
			StartIndex(start).
			MaxResults(1000).
			Context(ctx).
			Do()
		if err != nil {
			return nil, wrap(err, "list account summaries")
		}

		for _, account := range summaries.Items {
			for _, p := range account.WebProperties {
				properties = append(properties, Property{
					AccountName:  account.Name,
					AccountID:    account.Id,
					PropertyName: p.Name,
					PropertyID:   p.Id,
					Level:        p.Level,
				})
			}
		}

		if summaries.NextLink == "" || len(summaries.Items) == 0 {
			break
		}

		start += int64(len(summaries.Items))
	}

	log.Debugf("retrieved %v UA properties", len(properties))

	return properties, nil
}

// ListDefinitions returns the custom dimensions or metrics of a property ordered by index.
func (c *UAClient) ListDefinitions(ctx context.Context, kind Kind, accountID, propertyID string) ([]Definition, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	definitions := []Definition{}

	switch kind {
	case Dimensions:
		response, err := c.service.Management.CustomDimensions.List(accountID, propertyID).MaxResults(maxDefinitions).Context(ctx).Do()
		if err != nil {
			return nil, wrap(err, "list custom dimensions for %v", propertyID)
		}

		for _, cd := range response.Items {
			definitions = append(definitions, fromCustomDimension(cd))
		}

	case Metrics:
		response, err := c.service.Management.CustomMetrics.List(accountID, propertyID).MaxResults(maxDefinitions).Context(ctx).Do()
		if err != nil {
			return nil, wrap(err, "list custom metrics for %v", propertyID)
		}

		for _, cm := range response.Items {
			definitions = append(definitions, fromCustomMetric(cm))
		}

	default:
		return nil, errors.Errorf("unsupported custom definition type %v", kind)
	}

	sort.SliceStable(definitions, func(i, j int) bool { return definitions[i].Index < definitions[j].Index })

	return definitions, nil
}

// CreateDefinition inserts a new custom dimension or metric. UA assigns the next free
// index, so the index in the definition is informational only.
func (c *UAClient) CreateDefinition(ctx context.Context, kind Kind, accountID, propertyID string, d Definition) (*Definition, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	switch kind {
	case Dimensions:
		cd, err := c.service.Management.CustomDimensions.Insert(accountID, propertyID, toCustomDimension(d)).Context(ctx).Do()
		if err != nil {
			return nil, wrap(err, "create custom dimension %v for %v", d.Index, propertyID)
		}

		created := fromCustomDimension(cd)
		return &created, nil

	case Metrics:
		cm, err := c.service.Management.CustomMetrics.Insert(accountID, propertyID, toCustomMetric(d)).Context(ctx).Do()
		if err != nil {
			return nil, wrap(err, "create custom metric %v for %v", d.Index, propertyID)
		}

		created := fromCustomMetric(cm)
		return &created, nil
	}

	return nil, errors.Errorf("unsupported custom definition type %v", kind)
}

func (c *UAClient) UpdateDefinition(ctx context.Context, kind Kind, accountID, propertyID string, d Definition) (*Definition, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	switch kind {
	case Dimensions:
		id := fmt.Sprintf("ga:dimension%d", d.Index)
		cd, err := c.service.Management.CustomDimensions.Update(accountID, propertyID, id, toCustomDimension(d)).Context(ctx).Do()
		if err != nil {
			return nil, wrap(err, "update custom dimension %v for %v", d.Index, propertyID)
		}

		updated := fromCustomDimension(cd)
		return &updated, nil

	case Metrics:
		id := fmt.Sprintf("ga:metric%d", d.Index)
		cm, err := c.service.Management.CustomMetrics.Update(accountID, propertyID, id, toCustomMetric(d)).Context(ctx).Do()
		if err != nil {
			return nil, wrap(err, "update custom metric %v for %v", d.Index, propertyID)
		}

		updated := fromCustomMetric(cm)
		return &updated, nil
	}

	return nil, errors.Errorf("unsupported custom definition type %v", kind)
}

func toCustomDimension(d Definition) *ga.CustomDimension {
	return &ga.CustomDimension{
		Name:            d.Name,
		Scope:           d.Scope,
		Active:          d.Active,
		ForceSendFields: []string{"Active"},
	}
}

func toCustomMetric(d Definition) *ga.CustomMetric {
	return &ga.CustomMetric{
		Name:            d.Name,
		Scope:           d.Scope,
		Active:          d.Active,
		MinValue:        d.MinValue,
		MaxValue:        d.MaxValue,
		Type:            d.Type,
		ForceSendFields: []string{"Active"},
	}
}

func fromCustomDimension(cd *ga.CustomDimension) Definition {
	return Definition{
		Index:  cd.Index,
		Name:   cd.Name,
		Scope:  cd.Scope,
		Active: cd.Active,
	}
}

func fromCustomMetric(cm *ga.CustomMetric) Definition {
	return Definition{
		Index:    cm.Index,
		Name:     cm.Name,
		Scope:    cm.Scope,
		Active:   cm.Active,
		MinValue: cm.MinValue,
		MaxValue: cm.MaxValue,
		Type:     cm.Type,
	}
}
