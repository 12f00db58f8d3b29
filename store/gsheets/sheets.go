// Package gsheets implements store.Store on top of the Google Sheets v4 API.
package gsheets

import (
	"context"
	"fmt"
	"regexp"

	"google.golang.org/api/sheets/v4"

	"github.com/ga-sheets/ga-app-sheets/layout"
	"github.com/ga-sheets/ga-app-sheets/log"
	"github.com/ga-sheets/ga-app-sheets/store"
)

var _ store.Store = (*Store)(nil)

type Store struct {
	google        *sheets.Service
	spreadsheetID string
}

var spreadsheetURL = regexp.MustCompile(`^https://docs.google.com/spreadsheets/d/(.*?)(?:/.*)?$`)

// SpreadsheetID extracts the spreadsheet ID from a Google Sheets URL.
func SpreadsheetID(url string) (string, error) {
	match := spreadsheetURL.FindStringSubmatch(url)
	if len(match) < 2 || match[1] == "" {
		return "", fmt.Errorf("invalid spreadsheet URL - expected something like 'https://docs.google.com/spreadsheets/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms'")
	}

	return match[1], nil
}

func NewStore(google *sheets.Service, spreadsheetID string) *Store {
	return &Store{
		google:        google,
		spreadsheetID: spreadsheetID,
	}
}

// Read returns unformatted values so that checkboxes are returned as bool and numbers as
// float64.
func (s *Store) Read(ctx context.Context, r layout.Range) ([][]any, error) {
	log.Debugf("read %v", r.A1())

	response, err := s.google.Spreadsheets.Values.Get(s.spreadsheetID, r.A1()).
		ValueRenderOption("UNFORMATTED_VALUE").
		DateTimeRenderOption("FORMATTED_STRING").
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("unable to retrieve data from %v (%w)", r.A1(), err)
	}

	return response.Values, nil
}

func (s *Store) Write(ctx context.Context, r layout.Range, values [][]any) error {
	if len(values) == 0 {
		return nil
	}

	area := r.Resize(len(values), r.Columns)

	log.Debugf("write %v (%v rows)", area.A1(), len(values))

	rq := sheets.BatchUpdateValuesRequest{
		ValueInputOption: "USER_ENTERED",
		Data: []*sheets.ValueRange{
			&sheets.ValueRange{
				Range:  area.A1(),
				Values: values,
			},
		},
	}

	if _, err := s.google.Spreadsheets.Values.BatchUpdate(s.spreadsheetID, &rq).Context(ctx).Do(); err != nil {
		return fmt.Errorf("unable to write data to %v (%w)", area.A1(), err)
	}

	return nil
}

func (s *Store) Append(ctx context.Context, r layout.Range, row []any) error {
	log.Debugf("append %v", r.Table())

	values := sheets.ValueRange{
		Values: [][]any{row},
	}

	if _, err := s.google.Spreadsheets.Values.Append(s.spreadsheetID, r.Table(), &values).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do(); err != nil {
		return fmt.Errorf("error appending row to %v (%w)", r.Table(), err)
	}

	return nil
}

func (s *Store) Clear(ctx context.Context, r layout.Range) error {
	log.Debugf("clear %v", r.A1())

	rq := sheets.BatchClearValuesRequest{
		Ranges: []string{r.A1()},
	}

	if _, err := s.google.Spreadsheets.Values.BatchClear(s.spreadsheetID, &rq).Context(ctx).Do(); err != nil {
		return fmt.Errorf("unable to clear %v (%w)", r.A1(), err)
	}

	return nil
}

// Title returns the spreadsheet title, which doubles as a check that the spreadsheet is
// accessible with the current credentials.
func (s *Store) Title(ctx context.Context) (string, error) {
	spreadsheet, err := s.google.Spreadsheets.Get(s.spreadsheetID).Fields("properties.title").Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("failed to fetch spreadsheet (%w)", err)
	}

	if spreadsheet.Properties == nil {
		return "", nil
	}

	return spreadsheet.Properties.Title, nil
}
