// Package layout maps the logical regions used by ga-app-sheets (templates, destination
// properties, settings, results, conversion events) onto worksheet ranges.
//
// A compiled-in default layout matches the published spreadsheet template. Any region can
// be moved by a TOML layout file, e.g.
//
//	[ua.dimensions.template]
//	sheet = "CD Template"
//	row = 10
package layout

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

type Layout struct {
	UA  UA  `toml:"ua"`
	GA4 GA4 `toml:"ga4"`
}

type UA struct {
	Dimensions Definitions `toml:"dimensions"`
	Metrics    Definitions `toml:"metrics"`
}

// Definitions is the set of regions used to manage one kind of UA custom definition.
type Definitions struct {
	TemplateProperty      Range `toml:"template-property"`
	Template              Range `toml:"template"`
	DestinationProperties Range `toml:"destination-properties"`
	Settings              Range `toml:"settings"`
	Results               Range `toml:"results"`
}

type GA4 struct {
	Properties       Range `toml:"properties"`
	ConversionEvents Range `toml:"conversion-events"`
}

const (
	cdSheet   = "UA Custom Dimensions - Modify"
	cdResults = "UA Custom Dimensions - Results"
	cmSheet   = "UA Custom Metrics - Modify"
	cmResults = "UA Custom Metrics - Results"
)

// Default returns the layout of the standard spreadsheet template.
func Default() Layout {
	return Layout{
		UA: UA{
			Dimensions: Definitions{
				TemplateProperty:      Range{Sheet: cdSheet, Row: 3, Column: 1, Rows: 1, Columns: 4},
				Template:              Range{Sheet: cdSheet, Row: 7, Column: 1, Columns: 5},
				DestinationProperties: Range{Sheet: cdSheet, Row: 3, Column: 7, Columns: 6},
				Settings:              Range{Sheet: cdSheet, Row: 3, Column: 14, Rows: 4, Columns: 1},
				Results:               Range{Sheet: cdResults, Row: 2, Column: 1, Columns: 8},
			},
			Metrics: Definitions{
				TemplateProperty:      Range{Sheet: cmSheet, Row: 3, Column: 1, Rows: 1, Columns: 4},
				Template:              Range{Sheet: cmSheet, Row: 7, Column: 1, Columns: 8},
				DestinationProperties: Range{Sheet: cmSheet, Row: 3, Column: 10, Columns: 6},
				Settings:              Range{Sheet: cmSheet, Row: 3, Column: 17, Rows: 7, Columns: 1},
				Results:               Range{Sheet: cmResults, Row: 2, Column: 1, Columns: 11},
			},
		},
		GA4: GA4{
			Properties:       Range{Sheet: "GA4 Properties", Row: 2, Column: 1, Columns: 5},
			ConversionEvents: Range{Sheet: "GA4 Conversion Events", Row: 2, Column: 1, Columns: 9},
		},
	}
}

// Load returns the default layout overlaid with the contents of the TOML file. A missing
// file is not an error.
func Load(file string) (*Layout, error) {
	l := Default()

	if file == "" {
		return &l, nil
	}

	bytes, err := os.ReadFile(file)
	if os.IsNotExist(err) {
		return &l, nil
	} else if err != nil {
		return nil, err
	}

	if err := toml.Unmarshal(bytes, &l); err != nil {
		return nil, fmt.Errorf("invalid layout file %v (%w)", file, err)
	}

	if err := l.Validate(); err != nil {
		return nil, fmt.Errorf("invalid layout file %v (%w)", file, err)
	}

	return &l, nil
}

func (l Layout) Validate() error {
	ranges := map[string]Range{
		"ua.dimensions.template-property":      l.UA.Dimensions.TemplateProperty,
		"ua.dimensions.template":               l.UA.Dimensions.Template,
		"ua.dimensions.destination-properties": l.UA.Dimensions.DestinationProperties,
		"ua.dimensions.settings":               l.UA.Dimensions.Settings,
		"ua.dimensions.results":                l.UA.Dimensions.Results,
		"ua.metrics.template-property":         l.UA.Metrics.TemplateProperty,
		"ua.metrics.template":                  l.UA.Metrics.Template,
		"ua.metrics.destination-properties":    l.UA.Metrics.DestinationProperties,
		"ua.metrics.settings":                  l.UA.Metrics.Settings,
		"ua.metrics.results":                   l.UA.Metrics.Results,
		"ga4.properties":                       l.GA4.Properties,
		"ga4.conversion-events":                l.GA4.ConversionEvents,
	}

	for k, r := range ranges {
		if err := r.Validate(); err != nil {
			return fmt.Errorf("%v: %w", k, err)
		}
	}

	return nil
}

// Definitions returns the regions for custom dimensions or custom metrics.
func (l Layout) Definitions(metrics bool) Definitions {
	if metrics {
		return l.UA.Metrics
	}

	return l.UA.Dimensions
}
