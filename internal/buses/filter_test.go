package buses

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func searchResults() []Bus {
	return AvailableBuses(SearchForm{From: "Pune", To: "Mumbai", Date: "2026-09-04"})
}

func busNames(list []Bus) []string {
	names := make([]string, 0, len(list))
	for _, b := range list {
		names = append(names, b.Name)
	}
	return names
}

func TestDefaultFilter(t *testing.T) {
	f := DefaultFilter("any")
	assert.Equal(t, "all", f.Type)
	assert.Equal(t, 0.0, f.MinPrice)
	assert.Equal(t, 5000.0, f.MaxPrice)
	assert.Equal(t, BucketAll, f.Departure)

	assert.Equal(t, "all", DefaultFilter("").Type)
	assert.Equal(t, "sleeper", DefaultFilter("sleeper").Type)
}

func TestFilterByPrice(t *testing.T) {
	f := DefaultFilter("any")
	f.MinPrice = 700
	f.MaxPrice = 1000

	got := f.Apply(searchResults())
	assert.Equal(t, []string{"Express Travels", "Night Rider"}, busNames(got))
}

func TestFilterByDeparture(t *testing.T) {
	tests := []struct {
		bucket DepartureBucket
		want   []string
	}{
		{BucketAll, []string{"Express Travels", "Luxury Roadlines", "Night Rider", "Budget Transport", "Royal Coaches"}},
		{BucketMorning, []string{"Express Travels", "Luxury Roadlines"}},
		{BucketAfternoon, []string{"Budget Transport", "Royal Coaches"}},
		{BucketEvening, nil},
		{BucketNight, []string{"Night Rider"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.bucket), func(t *testing.T) {
			f := DefaultFilter("any")
			f.Departure = tt.bucket
			got := f.Apply(searchResults())
			if tt.want == nil {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, busNames(got))
		})
	}
}

func TestFilterByType(t *testing.T) {
	f := DefaultFilter("luxury")
	got := f.Apply(searchResults())
	assert.Equal(t, []string{"Luxury Roadlines", "Royal Coaches"}, busNames(got))
}

func TestFilterPredicatesCombine(t *testing.T) {
	f := DefaultFilter("luxury")
	f.MaxPrice = 1250

	got := f.Apply(searchResults())
	require.Len(t, got, 1)
	assert.Equal(t, "Luxury Roadlines", got[0].Name)
}

func TestFilterReappliedFromScratch(t *testing.T) {
	// Narrowing then widening again restores everything the narrow
	// filter dropped
	list := searchResults()

	narrow := DefaultFilter("any")
	narrow.MaxPrice = 700
	assert.Len(t, narrow.Apply(list), 1)

	wide := DefaultFilter("any")
	assert.Len(t, wide.Apply(list), 5)
}
