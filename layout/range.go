package layout

import (
	"fmt"
	"regexp"
	"strings"
)

// Range is a rectangular region of a worksheet. Row and Column are 1-based. Rows == 0
// denotes a range that extends to the last row of the worksheet.
type Range struct {
	Sheet   string `toml:"sheet"`
	Row     int    `toml:"row"`
	Column  int    `toml:"column"`
	Rows    int    `toml:"rows"`
	Columns int    `toml:"columns"`
}

func (r Range) Validate() error {
	switch {
	case strings.TrimSpace(r.Sheet) == "":
		return fmt.Errorf("missing sheet name")

	case r.Row < 1:
		return fmt.Errorf("invalid row %v", r.Row)

	case r.Column < 1:
		return fmt.Errorf("invalid column %v", r.Column)

	case r.Rows < 0:
		return fmt.Errorf("invalid number of rows %v", r.Rows)

	case r.Columns < 1:
		return fmt.Errorf("invalid number of columns %v", r.Columns)
	}

	return nil
}

// A1 returns the range in A1 notation e.g. 'Sheet 1'!B3:D7 or 'Sheet 1'!B3:D for an
// open-ended range.
func (r Range) A1() string {
	sheet := fmt.Sprintf("'%s'", strings.ReplaceAll(r.Sheet, "'", "''"))
	left := ColumnName(r.Column)
	right := ColumnName(r.Column + r.Columns - 1)

	if r.Rows > 0 {
		return fmt.Sprintf("%s!%s%d:%s%d", sheet, left, r.Row, right, r.Row+r.Rows-1)
	}

	return fmt.Sprintf("%s!%s%d:%s", sheet, left, r.Row, right)
}

// Table returns the whole-column form of the range e.g. 'Sheet 1'!A:K, which is what the
// Sheets append API expects to locate the last row of a table.
func (r Range) Table() string {
	sheet := fmt.Sprintf("'%s'", strings.ReplaceAll(r.Sheet, "'", "''"))

	return fmt.Sprintf("%s!%s:%s", sheet, ColumnName(r.Column), ColumnName(r.Column+r.Columns-1))
}

// Resize returns a copy of the range with the given number of rows and columns.
func (r Range) Resize(rows, columns int) Range {
	return Range{
		Sheet:   r.Sheet,
		Row:     r.Row,
		Column:  r.Column,
		Rows:    rows,
		Columns: columns,
	}
}

// ColumnName converts a 1-based column number to the spreadsheet column letters
// (1 -> A, 26 -> Z, 27 -> AA).
func ColumnName(column int) string {
	name := ""
	for n := column; n > 0; n = (n - 1) / 26 {
		name = string(rune('A'+(n-1)%26)) + name
	}

	return name
}

// ColumnNumber is the inverse of ColumnName.
func ColumnNumber(name string) int {
	n := 0
	for _, c := range strings.ToUpper(name) {
		n = n*26 + int(c-'A'+1)
	}

	return n
}

// Parse converts an A1 range e.g. ACL!A2:E or 'My Sheet'!B3:D10 into a Range.
func Parse(area string) (Range, error) {
	match := regexp.MustCompile(`^\s*'?(.+?)'?!([a-zA-Z]+)([0-9]+):([a-zA-Z]+)([0-9]+)?\s*$`).FindStringSubmatch(area)
	if len(match) < 5 {
		return Range{}, fmt.Errorf("invalid spreadsheet range '%s' - expected something like 'Results!A2:K'", area)
	}

	var top, bottom int
	fmt.Sscanf(match[3], "%d", &top)
	if match[5] != "" {
		fmt.Sscanf(match[5], "%d", &bottom)
	}

	left := ColumnNumber(match[2])
	right := ColumnNumber(match[4])

	r := Range{
		Sheet:   strings.ReplaceAll(match[1], "''", "'"),
		Row:     top,
		Column:  left,
		Columns: right - left + 1,
	}

	if bottom > 0 {
		r.Rows = bottom - top + 1
	}

	return r, r.Validate()
}
