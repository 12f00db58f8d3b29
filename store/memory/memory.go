package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/ga-sheets/ga-app-sheets/layout"
	"github.com/ga-sheets/ga-app-sheets/store"
)

var _ store.Store = (*Store)(nil)

// Store is an in-memory spreadsheet. Worksheets are sparse grids indexed from (1,1) and
// are created on first write.
type Store struct {
	mu     sync.RWMutex
	sheets map[string]map[cell]any
}

type cell struct {
	row    int
	column int
}

func NewStore() *Store {
	return &Store{
		sheets: map[string]map[cell]any{},
	}
}

// Set writes a block of values with the top left corner at (row, column). Used to seed
// worksheets in tests.
func (s *Store) Set(sheet string, row, column int, values [][]any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.set(sheet, row, column, values)
}

// Rows returns the contents of the range, with empty cells as nil.
func (s *Store) Rows(r layout.Range) [][]any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	last := r.Row + r.Rows - 1
	if r.Rows == 0 {
		last = s.lastRow(r.Sheet, r.Column, r.Columns)
	}

	rows := [][]any{}
	for i := r.Row; i <= last; i++ {
		row := make([]any, r.Columns)
		for j := 0; j < r.Columns; j++ {
			row[j] = s.sheets[r.Sheet][cell{i, r.Column + j}]
		}
		rows = append(rows, row)
	}

	return rows
}

func (s *Store) Read(ctx context.Context, r layout.Range) ([][]any, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.sheets[r.Sheet]; !ok {
		return nil, fmt.Errorf("unable to parse range: %v", r.A1())
	}

	last := r.Row + r.Rows - 1
	if r.Rows == 0 {
		last = s.lastRow(r.Sheet, r.Column, r.Columns)
	}

	// mimic the Sheets API, which trims trailing empty cells and rows
	rows := [][]any{}
	for i := r.Row; i <= last; i++ {
		row := []any{}
		for j := 0; j < r.Columns; j++ {
			if v, ok := s.sheets[r.Sheet][cell{i, r.Column + j}]; ok && v != nil {
				for len(row) < j {
					row = append(row, "")
				}
				row = append(row, v)
			}
		}
		rows = append(rows, row)
	}

	for len(rows) > 0 && len(rows[len(rows)-1]) == 0 {
		rows = rows[:len(rows)-1]
	}

	return rows, nil
}

func (s *Store) Write(ctx context.Context, r layout.Range, values [][]any) error {
	if err := r.Validate(); err != nil {
		return err
	}

	if r.Rows > 0 && len(values) > r.Rows {
		return fmt.Errorf("%v rows exceeds range %v", len(values), r.A1())
	}

	for _, row := range values {
		if len(row) > r.Columns {
			return fmt.Errorf("%v columns exceeds range %v", len(row), r.A1())
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.set(r.Sheet, r.Row, r.Column, values)

	return nil
}

func (s *Store) Append(ctx context.Context, r layout.Range, row []any) error {
	if err := r.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.lastRow(r.Sheet, r.Column, r.Columns) + 1
	if next < r.Row {
		next = r.Row
	}

	s.set(r.Sheet, next, r.Column, [][]any{row})

	return nil
}

func (s *Store) Clear(ctx context.Context, r layout.Range) error {
	if err := r.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sheet, ok := s.sheets[r.Sheet]
	if !ok {
		return nil
	}

	for k := range sheet {
		if k.row >= r.Row && (r.Rows == 0 || k.row < r.Row+r.Rows) && k.column >= r.Column && k.column < r.Column+r.Columns {
			delete(sheet, k)
		}
	}

	return nil
}

func (s *Store) set(sheet string, row, column int, values [][]any) {
	if _, ok := s.sheets[sheet]; !ok {
		s.sheets[sheet] = map[cell]any{}
	}

	for i, r := range values {
		for j, v := range r {
			k := cell{row + i, column + j}
			if v == nil {
				delete(s.sheets[sheet], k)
			} else {
				s.sheets[sheet][k] = v
			}
		}
	}
}

func (s *Store) lastRow(sheet string, column, columns int) int {
	last := 0
	for k := range s.sheets[sheet] {
		if k.column >= column && k.column < column+columns && k.row > last {
			last = k.row
		}
	}

	return last
}
