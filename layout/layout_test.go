package layout

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestColumnName(t *testing.T) {
	tests := map[int]string{
		1:   "A",
		2:   "B",
		26:  "Z",
		27:  "AA",
		52:  "AZ",
		53:  "BA",
		702: "ZZ",
		703: "AAA",
	}

	for column, expected := range tests {
		if name := ColumnName(column); name != expected {
			t.Errorf("Incorrect column name for %v - expected:%v, got:%v", column, expected, name)
		}

		if n := ColumnNumber(expected); n != column {
			t.Errorf("Incorrect column number for %v - expected:%v, got:%v", expected, column, n)
		}
	}
}

func TestRangeA1(t *testing.T) {
	tests := []struct {
		r        Range
		expected string
	}{
		{Range{Sheet: "Results", Row: 2, Column: 1, Columns: 11}, "'Results'!A2:K"},
		{Range{Sheet: "UA Custom Dimensions - Modify", Row: 3, Column: 1, Rows: 1, Columns: 4}, "'UA Custom Dimensions - Modify'!A3:D3"},
		{Range{Sheet: "Bob's sheet", Row: 3, Column: 14, Rows: 7, Columns: 1}, "'Bob''s sheet'!N3:N9"},
	}

	for _, test := range tests {
		if a1 := test.r.A1(); a1 != test.expected {
			t.Errorf("Incorrect A1 notation - expected:%v, got:%v", test.expected, a1)
		}
	}
}

func TestRangeTable(t *testing.T) {
	r := Range{Sheet: "Results", Row: 2, Column: 3, Columns: 8}

	if table := r.Table(); table != "'Results'!C:J" {
		t.Errorf("Incorrect table range - expected:%v, got:%v", "'Results'!C:J", table)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		area     string
		expected Range
	}{
		{"ACL!A2:E", Range{Sheet: "ACL", Row: 2, Column: 1, Columns: 5}},
		{"'My Sheet'!B3:D10", Range{Sheet: "My Sheet", Row: 3, Column: 2, Rows: 8, Columns: 3}},
	}

	for _, test := range tests {
		r, err := Parse(test.area)
		if err != nil {
			t.Fatalf("Unexpected error parsing %v (%v)", test.area, err)
		}

		if !reflect.DeepEqual(r, test.expected) {
			t.Errorf("Incorrect range for %v\n   expected: %+v\n   got:      %+v", test.area, test.expected, r)
		}

		if a1 := r.A1(); a1 == "" {
			t.Errorf("Expected A1 notation for %v", test.area)
		}
	}
}

func TestParseWithInvalidRange(t *testing.T) {
	for _, area := range []string{"", "A2:E", "ACL", "ACL!2:E"} {
		if _, err := Parse(area); err == nil {
			t.Errorf("Expected error parsing invalid range '%v'", area)
		}
	}
}

func TestDefaultLayoutIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("Invalid default layout (%v)", err)
	}
}

func TestLoadWithMissingFile(t *testing.T) {
	l, err := Load(filepath.Join(t.TempDir(), "nothing.toml"))
	if err != nil {
		t.Fatalf("Unexpected error loading missing layout file (%v)", err)
	}

	if !reflect.DeepEqual(*l, Default()) {
		t.Errorf("Expected default layout for missing file")
	}
}

func TestLoad(t *testing.T) {
	file := filepath.Join(t.TempDir(), "layout.toml")
	toml := `
[ua.metrics.results]
sheet = "CM Log"
row = 5
column = 2
columns = 11

[ga4.properties]
sheet = "Properties"
`

	if err := os.WriteFile(file, []byte(toml), 0600); err != nil {
		t.Fatalf("%v", err)
	}

	l, err := Load(file)
	if err != nil {
		t.Fatalf("Unexpected error loading layout file (%v)", err)
	}

	expected := Range{Sheet: "CM Log", Row: 5, Column: 2, Columns: 11}
	if !reflect.DeepEqual(l.UA.Metrics.Results, expected) {
		t.Errorf("Incorrect metrics results range\n   expected: %+v\n   got:      %+v", expected, l.UA.Metrics.Results)
	}

	if l.GA4.Properties.Sheet != "Properties" || l.GA4.Properties.Row != 2 || l.GA4.Properties.Columns != 5 {
		t.Errorf("Expected partial override of GA4 properties range, got %+v", l.GA4.Properties)
	}

	if !reflect.DeepEqual(l.UA.Dimensions, Default().UA.Dimensions) {
		t.Errorf("Expected default dimensions layout")
	}
}

func TestLoadWithInvalidLayout(t *testing.T) {
	file := filepath.Join(t.TempDir(), "layout.toml")
	toml := `
[ua.dimensions.template]
sheet = ""
`

	if err := os.WriteFile(file, []byte(toml), 0600); err != nil {
		t.Fatalf("%v", err)
	}

	if _, err := Load(file); err == nil {
		t.Errorf("Expected error loading invalid layout")
	}
}
