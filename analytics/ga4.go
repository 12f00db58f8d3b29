package analytics

import (
	"context"
	"strings"

	admin "google.golang.org/api/analyticsadmin/v1beta"

	"github.com/ga-sheets/ga-app-sheets/log"
	"github.com/ga-sheets/ga-app-sheets/ratelimit"
)

var _ GA4 = (*GA4Client)(nil)

// GA4Client implements GA4 with the Google Analytics Admin API v1beta.
type GA4Client struct {
	service *admin.Service
	limiter *ratelimit.Limiter
}

func NewGA4Client(service *admin.Service, limiter *ratelimit.Limiter) *GA4Client {
	return &GA4Client{
		service: service,
		limiter: limiter,
	}
}

// ListProperties returns every GA4 property visible to the authorised user, from the
// account summaries.
func (c *GA4Client) ListProperties(ctx context.Context) ([]GA4Property, error) {
	properties := []GA4Property{}

	f := func(page *admin.GoogleAnalyticsAdminV1betaListAccountSummariesResponse) error {
		for _, summary := range page.AccountSummaries {
			for _, p := range summary.PropertySummaries {
				properties = append(properties, GA4Property{
					AccountName:  summary.DisplayName,
					AccountID:    strings.TrimPrefix(summary.Account, "accounts/"),
					PropertyName: p.DisplayName,
					PropertyID:   strings.TrimPrefix(p.Property, "properties/"),
				})
			}
		}

		return c.limiter.Wait(ctx)
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	if err := c.service.AccountSummaries.List().PageSize(200).Pages(ctx, f); err != nil {
		return nil, wrap(err, "list account summaries")
	}

	log.Debugf("retrieved %v GA4 properties", len(properties))

	return properties, nil
}

// ListConversionEvents returns the conversion events for a property resource name
// e.g. properties/123456.
func (c *GA4Client) ListConversionEvents(ctx context.Context, property string) ([]ConversionEvent, error) {
	events := []ConversionEvent{}

	f := func(page *admin.GoogleAnalyticsAdminV1betaListConversionEventsResponse) error {
		for _, e := range page.ConversionEvents {
			events = append(events, ConversionEvent{
				Name:       e.Name,
				EventName:  e.EventName,
				CreateTime: e.CreateTime,
				Deletable:  e.Deletable,
				Custom:     e.Custom,
			})
		}

		return c.limiter.Wait(ctx)
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	if err := c.service.Properties.ConversionEvents.List(property).PageSize(200).Pages(ctx, f); err != nil {
		return nil, wrap(err, "list conversion events for %v", property)
	}

	return events, nil
}
