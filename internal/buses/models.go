package buses

// BusType enumerates the coach classes offered in search and filtering
type BusType string

const (
	BusTypeAC      BusType = "ac"
	BusTypeNonAC   BusType = "nonAc"
	BusTypeSleeper BusType = "sleeper"
	BusTypeLuxury  BusType = "luxury"
)

// IsValid checks if the bus type is a known class
func (t BusType) IsValid() bool {
	switch t {
	case BusTypeAC, BusTypeNonAC, BusTypeSleeper, BusTypeLuxury:
		return true
	}
	return false
}

func (t BusType) String() string {
	return string(t)
}

// DisplayName returns the label shown to users
func (t BusType) DisplayName() string {
	switch t {
	case BusTypeAC:
		return "AC"
	case BusTypeNonAC:
		return "Non-AC"
	case BusTypeSleeper:
		return "Sleeper"
	case BusTypeLuxury:
		return "Luxury"
	}
	return string(t)
}

// Amenities flags what a coach offers on board
type Amenities struct {
	Wifi          bool `json:"wifi"`
	Charging      bool `json:"charging"`
	Entertainment bool `json:"entertainment"`
	Food          bool `json:"food"`
}

// Bus is a catalog entry synthesized per search, stamped with the
// caller's route and travel date. Never stored.
type Bus struct {
	ID                 string    `json:"id"`
	Name               string    `json:"name"`
	From               string    `json:"from"`
	To                 string    `json:"to"`
	Date               string    `json:"date"`
	DepartureTime      string    `json:"departure_time"`
	ArrivalTime        string    `json:"arrival_time"`
	Duration           string    `json:"duration"`
	Type               BusType   `json:"type"`
	Fare               float64   `json:"fare"`
	MaxSeatsPerBooking int       `json:"max_seats_per_booking"`
	Amenities          Amenities `json:"amenities"`
}

// SearchForm is the draft search the user submits. BusType "any" means
// no preference and maps to the "all" filter.
type SearchForm struct {
	From       string `json:"from"`
	To         string `json:"to"`
	Date       string `json:"date"`
	Passengers int    `json:"passengers"`
	BusType    string `json:"bus_type"`
}

// DepartureBucket groups departures by hour for the results filter
type DepartureBucket string

const (
	BucketAll       DepartureBucket = "all"
	BucketMorning   DepartureBucket = "morning"   // [4, 12)
	BucketAfternoon DepartureBucket = "afternoon" // [12, 17)
	BucketEvening   DepartureBucket = "evening"   // [17, 21)
	BucketNight     DepartureBucket = "night"     // [21, 24) and [0, 4)
)

// IsValid checks if the bucket is a known time-of-day grouping
func (b DepartureBucket) IsValid() bool {
	switch b {
	case BucketAll, BucketMorning, BucketAfternoon, BucketEvening, BucketNight:
		return true
	}
	return false
}
