package gsheets

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/ga-sheets/ga-app-sheets/layout"
)

func TestSpreadsheetID(t *testing.T) {
	id, err := SpreadsheetID("https://docs.google.com/spreadsheets/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms/edit#gid=0")

	require.NoError(t, err)
	assert.Equal(t, "1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms", id)

	_, err = SpreadsheetID("https://example.com/spreadsheets/d/xyz")
	assert.Error(t, err)
}

func newTestStore(t *testing.T, handler http.HandlerFunc) *Store {
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	google, err := sheets.NewService(context.Background(), option.WithEndpoint(srv.URL+"/"), option.WithoutAuthentication())
	require.NoError(t, err)

	return NewStore(google, "abc123")
}

func TestRead(t *testing.T) {
	var path, render string

	s := newTestStore(t, func(w http.ResponseWriter, rq *http.Request) {
		path = rq.URL.Path
		render = rq.URL.Query().Get("valueRenderOption")

		json.NewEncoder(w).Encode(map[string]any{
			"range":  "'Template'!A7:E9",
			"values": [][]any{{1, "Session Type", "SESSION", true, true}},
		})
	})

	rows, err := s.Read(context.Background(), layout.Range{Sheet: "Template", Row: 7, Column: 1, Columns: 5})

	require.NoError(t, err)
	assert.Contains(t, path, "/v4/spreadsheets/abc123/values/")
	assert.Equal(t, "UNFORMATTED_VALUE", render)
	assert.Equal(t, [][]any{{1.0, "Session Type", "SESSION", true, true}}, rows)
}

func TestAppend(t *testing.T) {
	var method, insert string
	var body sheets.ValueRange

	s := newTestStore(t, func(w http.ResponseWriter, rq *http.Request) {
		method = rq.Method
		insert = rq.URL.Query().Get("insertDataOption")

		b, _ := io.ReadAll(rq.Body)
		json.Unmarshal(b, &body)

		w.Write([]byte(`{}`))
	})

	err := s.Append(context.Background(), layout.Range{Sheet: "Results", Row: 2, Column: 1, Columns: 8}, []any{"123", "UA-123-1", 1, "created"})

	require.NoError(t, err)
	assert.Equal(t, http.MethodPost, method)
	assert.Equal(t, "INSERT_ROWS", insert)
	assert.Equal(t, [][]any{{"123", "UA-123-1", 1.0, "created"}}, body.Values)
}

func TestWriteWithServerError(t *testing.T) {
	s := newTestStore(t, func(w http.ResponseWriter, rq *http.Request) {
		http.Error(w, `{"error":{"code":403,"message":"forbidden"}}`, http.StatusForbidden)
	})

	err := s.Write(context.Background(), layout.Range{Sheet: "Results", Row: 2, Column: 1, Columns: 2}, [][]any{{"a", "b"}})

	assert.Error(t, err)
}
