package buses

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAvailableBusesStampsRouteAndDate(t *testing.T) {
	form := SearchForm{From: "Pune", To: "Mumbai", Date: "2026-09-04", Passengers: 2}

	result := AvailableBuses(form)
	require.Len(t, result, 5)

	for _, bus := range result {
		assert.Equal(t, "Pune", bus.From)
		assert.Equal(t, "Mumbai", bus.To)
		assert.Equal(t, "Fri, Sep 4", bus.Date)
		assert.Equal(t, 6, bus.MaxSeatsPerBooking)
	}

	assert.Equal(t, "Express Travels", result[0].Name)
	assert.Equal(t, BusTypeAC, result[0].Type)
	assert.Equal(t, 850.0, result[0].Fare)
	assert.Equal(t, "Royal Coaches", result[4].Name)
	assert.Equal(t, 1350.0, result[4].Fare)
}

func TestAvailableBusesDeterministic(t *testing.T) {
	form := SearchForm{From: "Delhi", To: "Jaipur", Date: "2026-09-10"}
	assert.Equal(t, AvailableBuses(form), AvailableBuses(form))
}

func TestFindBus(t *testing.T) {
	list := AvailableBuses(SearchForm{From: "A", To: "B", Date: "2026-09-04"})

	bus, ok := FindBus(list, "3")
	require.True(t, ok)
	assert.Equal(t, "Night Rider", bus.Name)

	_, ok = FindBus(list, "99")
	assert.False(t, ok)
}

func TestJourneyDuration(t *testing.T) {
	tests := []struct {
		departure string
		arrival   string
		want      string
	}{
		{"06:30", "12:45", "6h 15m"},
		{"09:15", "14:30", "5h 15m"},
		{"22:00", "05:30", "7h 30m"}, // overnight wrap
		{"14:45", "21:15", "6h 30m"},
		{"12:30", "18:00", "5h 30m"},
		{"10:00", "10:00", "0h 0m"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, JourneyDuration(tt.departure, tt.arrival),
			"%s -> %s", tt.departure, tt.arrival)
	}
}

func TestDepartureHour(t *testing.T) {
	assert.Equal(t, 22, DepartureHour("22:00"))
	assert.Equal(t, 6, DepartureHour("06:30"))
	assert.Equal(t, -1, DepartureHour("garbage"))
}

func TestBusTypeDisplayName(t *testing.T) {
	assert.Equal(t, "Non-AC", BusTypeNonAC.DisplayName())
	assert.Equal(t, "Sleeper", BusTypeSleeper.DisplayName())
	assert.False(t, BusType("boat").IsValid())
}
