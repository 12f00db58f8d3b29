package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ga-sheets/ga-app-sheets/layout"
)

func TestReadTrimsTrailingCells(t *testing.T) {
	s := NewStore()
	s.Set("Template", 2, 1, [][]any{
		{1.0, "Session Type", "SESSION", true, true},
		{2.0, "Author", "HIT", nil, nil},
		{},
		{4.0, nil, "HIT"},
	})

	rows, err := s.Read(context.Background(), layout.Range{Sheet: "Template", Row: 2, Column: 1, Columns: 5})
	require.NoError(t, err)

	expected := [][]any{
		{1.0, "Session Type", "SESSION", true, true},
		{2.0, "Author", "HIT"},
		{},
		{4.0, "", "HIT"},
	}

	assert.Equal(t, expected, rows)
}

func TestReadWithUnknownSheet(t *testing.T) {
	s := NewStore()

	_, err := s.Read(context.Background(), layout.Range{Sheet: "Nothing", Row: 1, Column: 1, Columns: 1})
	assert.Error(t, err)
}

func TestReadWithFixedRows(t *testing.T) {
	s := NewStore()
	s.Set("Settings", 1, 1, [][]any{{true}, {"Filler"}, {"USER"}, {false}, {"extra"}})

	rows, err := s.Read(context.Background(), layout.Range{Sheet: "Settings", Row: 1, Column: 1, Rows: 4, Columns: 1})
	require.NoError(t, err)

	assert.Equal(t, [][]any{{true}, {"Filler"}, {"USER"}, {false}}, rows)
}

func TestWrite(t *testing.T) {
	s := NewStore()
	r := layout.Range{Sheet: "Properties", Row: 3, Column: 2, Columns: 3}

	require.NoError(t, s.Write(context.Background(), r, [][]any{{"a", "b", "c"}, {"d", "e", "f"}}))

	assert.Equal(t, [][]any{{"a", "b", "c"}, {"d", "e", "f"}}, s.Rows(r))
	assert.Error(t, s.Write(context.Background(), r, [][]any{{"a", "b", "c", "d"}}))
}

func TestAppend(t *testing.T) {
	s := NewStore()
	r := layout.Range{Sheet: "Results", Row: 2, Column: 1, Columns: 3}

	s.Set("Results", 1, 1, [][]any{{"Account", "Property", "Index"}})

	require.NoError(t, s.Append(context.Background(), r, []any{"1", "UA-1-1", 1}))
	require.NoError(t, s.Append(context.Background(), r, []any{"1", "UA-1-1", 2}))

	expected := [][]any{
		{"1", "UA-1-1", 1},
		{"1", "UA-1-1", 2},
	}

	assert.Equal(t, expected, s.Rows(r))
}

func TestClear(t *testing.T) {
	s := NewStore()
	s.Set("Events", 1, 1, [][]any{{"header", "header"}, {"a", "b"}, {"c", "d"}})

	require.NoError(t, s.Clear(context.Background(), layout.Range{Sheet: "Events", Row: 2, Column: 1, Columns: 2}))

	rows, err := s.Read(context.Background(), layout.Range{Sheet: "Events", Row: 1, Column: 1, Columns: 2})
	require.NoError(t, err)
	assert.Equal(t, [][]any{{"header", "header"}}, rows)
}
