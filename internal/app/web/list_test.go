package web

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseListParams(t *testing.T) {
	cases := []struct {
		name  string
		query string
		want  ListParams
	}{
		{"defaults", "", ListParams{Limit: 100}},
		{"explicit", "offset=20&limit=10", ListParams{Offset: 20, Limit: 10}},
		{"clamped", "limit=500", ListParams{Limit: 100}},
		{"aliases", "_offset=5&_limit=7", ListParams{Offset: 5, Limit: 7}},
		{"garbage", "offset=-1&limit=abc", ListParams{Limit: 100}},
		{"sort", "sort=-created_at,%2Bfull_name", ListParams{Limit: 100, Sort: []SortKey{
			{Column: "created_at", Desc: true},
			{Column: "full_name"},
		}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			q, err := url.ParseQuery(tc.query)
			assert.NoError(t, err)
			assert.Equal(t, tc.want, ParseListParams(q))
		})
	}
}
