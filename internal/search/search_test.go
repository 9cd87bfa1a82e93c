package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchesQuery(t *testing.T) {
	tests := []struct {
		name   string
		query  string
		fields []string
		want   bool
	}{
		{name: "empty query matches everything", query: "", fields: []string{"Tomatoes"}, want: true},
		{name: "case-insensitive substring", query: "toma", fields: []string{"Tomatoes", "Cold Storage A"}, want: true},
		{name: "matches any field", query: "cold", fields: []string{"Tomatoes", "Cold Storage A"}, want: true},
		{name: "no match", query: "salmon", fields: []string{"Tomatoes", "Cold Storage A"}, want: false},
		{name: "no fields", query: "x", fields: nil, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MatchesQuery(tt.query, tt.fields...))
		})
	}
}

func TestMatchesFilter(t *testing.T) {
	assert.True(t, MatchesFilter("", "Seafood"))
	assert.True(t, MatchesFilter("all", "Seafood"))
	assert.True(t, MatchesFilter("ALL", "Seafood"))
	assert.True(t, MatchesFilter("seafood", "Seafood"))
	assert.False(t, MatchesFilter("Beverages", "Seafood"))
}
