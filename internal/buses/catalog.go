package buses

import (
	"fmt"
	"strings"
	"time"
)

// catalogEntry is the schedule/fare/amenity part of a bus; route and
// date are stamped in per search.
type catalogEntry struct {
	id            string
	name          string
	departureTime string
	arrivalTime   string
	busType       BusType
	fare          float64
	amenities     Amenities
}

// maxSeatsPerBooking is the per-booking seat cap shared by the fleet
const maxSeatsPerBooking = 6

var catalog = []catalogEntry{
	{
		id:            "1",
		name:          "Express Travels",
		departureTime: "06:30",
		arrivalTime:   "12:45",
		busType:       BusTypeAC,
		fare:          850,
		amenities:     Amenities{Wifi: true, Charging: true},
	},
	{
		id:            "2",
		name:          "Luxury Roadlines",
		departureTime: "09:15",
		arrivalTime:   "14:30",
		busType:       BusTypeLuxury,
		fare:          1200,
		amenities:     Amenities{Wifi: true, Charging: true, Entertainment: true, Food: true},
	},
	{
		id:            "3",
		name:          "Night Rider",
		departureTime: "22:00",
		arrivalTime:   "05:30",
		busType:       BusTypeSleeper,
		fare:          950,
		amenities:     Amenities{Wifi: true, Charging: true, Food: true},
	},
	{
		id:            "4",
		name:          "Budget Transport",
		departureTime: "14:45",
		arrivalTime:   "21:15",
		busType:       BusTypeNonAC,
		fare:          600,
		amenities:     Amenities{},
	},
	{
		id:            "5",
		name:          "Royal Coaches",
		departureTime: "12:30",
		arrivalTime:   "18:00",
		busType:       BusTypeLuxury,
		fare:          1350,
		amenities:     Amenities{Wifi: true, Charging: true, Entertainment: true, Food: true},
	},
}

// AvailableBuses synthesizes the results for a search: the fixed fleet
// stamped with the caller's route and the display-formatted travel date.
// Deterministic for a given form.
func AvailableBuses(form SearchForm) []Bus {
	formatted := formatTravelDate(form.Date)

	result := make([]Bus, 0, len(catalog))
	for _, entry := range catalog {
		result = append(result, Bus{
			ID:                 entry.id,
			Name:               entry.name,
			From:               form.From,
			To:                 form.To,
			Date:               formatted,
			DepartureTime:      entry.departureTime,
			ArrivalTime:        entry.arrivalTime,
			Duration:           JourneyDuration(entry.departureTime, entry.arrivalTime),
			Type:               entry.busType,
			Fare:               entry.fare,
			MaxSeatsPerBooking: maxSeatsPerBooking,
			Amenities:          entry.amenities,
		})
	}
	return result
}

// FindBus returns the bus with the given ID out of a result set
func FindBus(list []Bus, id string) (Bus, bool) {
	for _, b := range list {
		if b.ID == id {
			return b, true
		}
	}
	return Bus{}, false
}

// formatTravelDate renders "2026-09-04" as "Fri, Sep 4"
func formatTravelDate(date string) string {
	t, err := time.Parse(SearchDateLayout, date)
	if err != nil {
		return date
	}
	return t.Format("Mon, Jan 2")
}

// JourneyDuration formats the time between two "HH:MM" stamps as
// "6h 15m", wrapping past midnight for overnight coaches.
func JourneyDuration(departure, arrival string) string {
	depHour, depMin, err := parseHourMinute(departure)
	if err != nil {
		return ""
	}
	arrHour, arrMin, err := parseHourMinute(arrival)
	if err != nil {
		return ""
	}

	hourDiff := arrHour - depHour
	minDiff := arrMin - depMin

	if minDiff < 0 {
		hourDiff--
		minDiff += 60
	}
	if hourDiff < 0 {
		hourDiff += 24
	}

	return fmt.Sprintf("%dh %dm", hourDiff, minDiff)
}

// DepartureHour extracts the hour from a "HH:MM" stamp, -1 when malformed
func DepartureHour(departure string) int {
	hour, _, err := parseHourMinute(departure)
	if err != nil {
		return -1
	}
	return hour
}

func parseHourMinute(v string) (int, int, error) {
	parts := strings.SplitN(v, ":", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("malformed time %q", v)
	}
	var hour, minute int
	if _, err := fmt.Sscanf(parts[0], "%d", &hour); err != nil {
		return 0, 0, fmt.Errorf("malformed time %q", v)
	}
	if _, err := fmt.Sscanf(parts[1], "%d", &minute); err != nil {
		return 0, 0, fmt.Errorf("malformed time %q", v)
	}
	return hour, minute, nil
}
