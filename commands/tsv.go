package commands

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// sheetToTSV writes the worksheet rows as tab separated values, padding short rows to the
// width of the widest row.
func sheetToTSV(f io.Writer, rows [][]any) error {
	if len(rows) == 0 {
		return fmt.Errorf("empty sheet")
	}

	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}

	w := csv.NewWriter(f)
	w.Comma = '\t'

	for _, row := range rows {
		record := make([]string, width)
		for i, v := range row {
			record[i] = clean(format(v))
		}

		if err := w.Write(record); err != nil {
			return err
		}
	}

	w.Flush()

	return w.Error()
}

// tsvToSheet reads a TSV file into worksheet rows. Rows may have different lengths.
func tsvToSheet(f io.Reader) ([][]any, int, error) {
	r := csv.NewReader(f)
	r.Comma = '\t'
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	records, err := r.ReadAll()
	if err != nil {
		return nil, 0, err
	}

	if len(records) == 0 {
		return nil, 0, fmt.Errorf("TSV file is empty")
	}

	rows := make([][]any, 0, len(records))
	width := 0

	for _, record := range records {
		row := make([]any, len(record))
		for i, v := range record {
			row[i] = v
		}

		if len(row) > width {
			width = len(row)
		}

		rows = append(rows, row)
	}

	return rows, width, nil
}

func format(v any) string {
	switch value := v.(type) {
	case nil:
		return ""

	case string:
		return value

	case bool:
		return strconv.FormatBool(value)

	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)

	default:
		return fmt.Sprintf("%v", v)
	}
}

func clean(v string) string {
	return strings.TrimSpace(strings.NewReplacer("\t", " ", "\r", " ", "\n", " ").Replace(v))
}
