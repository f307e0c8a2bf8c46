package domain_test

import (
	"testing"

	"github.com/aussiebroadwan/restbook/internal/api/domain"
	"github.com/stretchr/testify/require"
)

func TestNewPageQuery(t *testing.T) {
	tests := []struct {
		name       string
		direction  string
		pageSize   int
		page       int
		wantSort   string
		wantSize   int
		wantOffset int
	}{
		{"explicit asc", "asc", 5, 2, "asc", 5, 5},
		{"explicit desc", "desc", 5, 3, "desc", 5, 10},
		{"blank sorts desc", "  ", 5, 1, "desc", 5, 0},
		{"unknown sorts asc", "sideways", 5, 1, "asc", 5, 0},
		{"upper case DESC is not desc", "DESC", 5, 1, "asc", 5, 0},
		{"zero size defaults", "asc", 0, 1, "asc", 10, 0},
		{"negative size defaults", "asc", -4, 2, "asc", 10, 10},
		{"page zero starts at beginning", "asc", 5, 0, "asc", 5, 0},
		{"negative page starts at beginning", "asc", 5, -1, "asc", 5, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := domain.NewPageQuery(" x ", tt.direction, tt.pageSize, tt.page)
			require.Equal(t, "x", q.Filter)
			require.Equal(t, tt.wantSort, q.SortDirection)
			require.Equal(t, tt.wantSize, q.PageSize)
			require.Equal(t, tt.wantOffset, q.Offset())
		})
	}
}
