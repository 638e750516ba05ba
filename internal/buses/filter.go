package buses

// Filter holds the three independent result predicates. They are ANDed
// together and reapplied from scratch on every call, never incrementally.
type Filter struct {
	MinPrice  float64
	MaxPrice  float64
	Departure DepartureBucket
	Type      string // a BusType or "all"
}

// DefaultFilter matches the search form's preference: price wide open,
// any departure, and the searched bus type ("any" meaning all).
func DefaultFilter(busType string) Filter {
	t := busType
	if t == "" || t == "any" {
		t = "all"
	}
	return Filter{
		MinPrice:  0,
		MaxPrice:  5000,
		Departure: BucketAll,
		Type:      t,
	}
}

// Apply returns the buses passing all three predicates
func (f Filter) Apply(list []Bus) []Bus {
	result := make([]Bus, 0, len(list))
	for _, bus := range list {
		if !f.matchesPrice(bus) {
			continue
		}
		if !f.matchesDeparture(bus) {
			continue
		}
		if !f.matchesType(bus) {
			continue
		}
		result = append(result, bus)
	}
	return result
}

func (f Filter) matchesPrice(bus Bus) bool {
	return bus.Fare >= f.MinPrice && bus.Fare <= f.MaxPrice
}

func (f Filter) matchesDeparture(bus Bus) bool {
	if f.Departure == "" || f.Departure == BucketAll {
		return true
	}

	hour := DepartureHour(bus.DepartureTime)
	switch f.Departure {
	case BucketMorning:
		return hour >= 4 && hour < 12
	case BucketAfternoon:
		return hour >= 12 && hour < 17
	case BucketEvening:
		return hour >= 17 && hour < 21
	case BucketNight:
		return hour >= 21 || (hour >= 0 && hour < 4)
	}
	return false
}

func (f Filter) matchesType(bus Bus) bool {
	if f.Type == "" || f.Type == "all" {
		return true
	}
	return bus.Type == BusType(f.Type)
}
