package definitions

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ga-sheets/ga-app-sheets/analytics"
	"github.com/ga-sheets/ga-app-sheets/analytics/mock"
	"github.com/ga-sheets/ga-app-sheets/layout"
	"github.com/ga-sheets/ga-app-sheets/store/memory"
)

func TestWriteDestinationProperties(t *testing.T) {
	ctrl := gomock.NewController(t)
	ua := mock.NewMockUA(ctrl)
	s := memory.NewStore()
	area := layout.Range{Sheet: sheet, Row: 3, Column: 7, Columns: 6}

	s.Set(sheet, 3, 7, [][]any{
		{"Old", "1", "old", "UA-1-1", "STANDARD", true},
		{"Old", "1", "old", "UA-1-2", "STANDARD", true},
		{"Old", "1", "old", "UA-1-3", "STANDARD", true},
	})

	ua.EXPECT().ListProperties(gomock.Any()).Return([]analytics.Property{
		{AccountName: "Acme", AccountID: "123", PropertyName: "www.acme.com", PropertyID: "UA-123-1", Level: "STANDARD"},
		{AccountName: "Acme", AccountID: "123", PropertyName: "shop.acme.com", PropertyID: "UA-123-2", Level: "PREMIUM"},
	}, nil)

	n, err := WriteDestinationProperties(context.Background(), s, ua, area)

	require.NoError(t, err)
	assert.Equal(t, 2, n)

	expected := [][]any{
		{"Acme", "123", "www.acme.com", "UA-123-1", "STANDARD", false},
		{"Acme", "123", "shop.acme.com", "UA-123-2", "PREMIUM", false},
	}

	assert.Equal(t, expected, s.Rows(area))
}

func TestWriteTemplate(t *testing.T) {
	ctrl := gomock.NewController(t)
	ua := mock.NewMockUA(ctrl)
	s := memory.NewStore()

	property := layout.Range{Sheet: sheet, Row: 3, Column: 1, Rows: 1, Columns: 4}
	template := layout.Range{Sheet: sheet, Row: 7, Column: 1, Columns: 8}

	s.Set(sheet, 3, 1, [][]any{{"Acme", 123.0, "www.acme.com", "UA-123-1"}})

	ua.EXPECT().ListDefinitions(gomock.Any(), analytics.Metrics, "123", "UA-123-1").Return([]analytics.Definition{
		{Index: 1, Name: "Load Time", Scope: "HIT", Active: true, MinValue: "0", Type: "TIME"},
		{Index: 2, Name: "Revenue", Scope: "PRODUCT", Active: false, MinValue: "0", MaxValue: "1000", Type: "CURRENCY"},
	}, nil)

	n, err := WriteTemplate(context.Background(), s, ua, analytics.Metrics, property, template)

	require.NoError(t, err)
	assert.Equal(t, 2, n)

	expected := [][]any{
		{int64(1), "Load Time", "HIT", true, "0", "", "TIME", nil},
		{int64(2), "Revenue", "PRODUCT", false, "0", "1000", "CURRENCY", nil},
	}

	assert.Equal(t, expected, s.Rows(template))
}

func TestWriteTemplateWithoutTemplateProperty(t *testing.T) {
	ctrl := gomock.NewController(t)
	ua := mock.NewMockUA(ctrl)
	s := memory.NewStore()

	s.Set(sheet, 1, 1, [][]any{{"header"}})

	property := layout.Range{Sheet: sheet, Row: 3, Column: 1, Rows: 1, Columns: 4}
	template := layout.Range{Sheet: sheet, Row: 7, Column: 1, Columns: 5}

	_, err := WriteTemplate(context.Background(), s, ua, analytics.Dimensions, property, template)

	assert.Error(t, err)
}
