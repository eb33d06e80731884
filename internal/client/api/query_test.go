package api

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestListQuery_Values(t *testing.T) {
	tests := []struct {
		name  string
		query ListQuery
		want  url.Values
	}{
		{
			name:  "empty query produces no parameters",
			query: ListQuery{},
			want:  url.Values{},
		},
		{
			name: "all fields set",
			query: ListQuery{
				Name:          "n",
				Email:         "e@x.com",
				Address:       "addr",
				Role:          "admin",
				SortField:     "email",
				SortDirection: SortDesc,
			},
			want: url.Values{
				"name":          {"n"},
				"email":         {"e@x.com"},
				"address":       {"addr"},
				"role":          {"admin"},
				"sortField":     {"email"},
				"sortDirection": {"desc"},
			},
		},
		{
			name:  "partial query omits empties",
			query: ListQuery{Address: "Main St", SortField: "name"},
			want: url.Values{
				"address":   {"Main St"},
				"sortField": {"name"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.query.Values())
		})
	}
}
