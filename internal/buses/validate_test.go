package buses

import (
	"testing"
	"time"

	"bookeasy/pkg/clock"

	"github.com/stretchr/testify/assert"
)

func fixedClock() clock.Clock {
	return clock.Fixed(time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC))
}

func TestValidateSearch(t *testing.T) {
	tests := []struct {
		name string
		form SearchForm
		want map[string]string
	}{
		{
			name: "valid form",
			form: SearchForm{From: "Pune", To: "Mumbai", Date: "2026-09-04", Passengers: 2},
			want: map[string]string{},
		},
		{
			name: "everything missing",
			form: SearchForm{},
			want: map[string]string{
				"from": "Departure city is required",
				"to":   "Destination city is required",
				"date": "Date of journey is required",
			},
		},
		{
			name: "whitespace cities count as missing",
			form: SearchForm{From: "  ", To: "\t", Date: "2026-09-04"},
			want: map[string]string{
				"from": "Departure city is required",
				"to":   "Destination city is required",
			},
		},
		{
			name: "same city both ways",
			form: SearchForm{From: "Pune", To: "Pune", Date: "2026-09-04"},
			want: map[string]string{
				"to": "Destination cannot be the same as departure",
			},
		},
		{
			name: "same city ignoring case",
			form: SearchForm{From: "pune", To: "PUNE", Date: "2026-09-04"},
			want: map[string]string{
				"to": "Destination cannot be the same as departure",
			},
		},
		{
			name: "past date",
			form: SearchForm{From: "Pune", To: "Mumbai", Date: "2026-08-31"},
			want: map[string]string{
				"date": "Date cannot be in the past",
			},
		},
		{
			name: "today is allowed",
			form: SearchForm{From: "Pune", To: "Mumbai", Date: "2026-09-01"},
			want: map[string]string{},
		},
		{
			name: "malformed date",
			form: SearchForm{From: "Pune", To: "Mumbai", Date: "04-09-2026"},
			want: map[string]string{
				"date": "Date of journey is required",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ValidateSearch(tt.form, fixedClock())
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidateSearchSameCityOverwritesEmptinessError(t *testing.T) {
	// The equality check runs last and owns the "to" slot
	got := ValidateSearch(SearchForm{From: "Delhi", To: "Delhi"}, fixedClock())
	assert.Equal(t, "Destination cannot be the same as departure", got["to"])
	assert.Equal(t, "Date of journey is required", got["date"])
	assert.NotContains(t, got, "from")
}
