package bookings

import (
	"time"

	"bookeasy/internal/buses"
	"bookeasy/internal/seats"
)

// Passenger is one traveller entered at checkout, one per selected seat
type Passenger struct {
	Name   string `json:"name"`
	Age    int    `json:"age"`
	Gender string `json:"gender"`
}

// ContactInfo is the checkout contact block, shared across passengers
type ContactInfo struct {
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// Session is the bus wizard's accumulated state: the search that fed
// the results, the frozen seat layout of the chosen bus, and the draft
// seat selection. It lives in the session store with a TTL.
type Session struct {
	ID              string           `json:"id"`
	Step            int              `json:"step"`
	Status          Status           `json:"status"`
	Search          buses.SearchForm `json:"search"`
	Buses           []buses.Bus      `json:"buses,omitempty"`
	SelectedBusID   string           `json:"selected_bus_id,omitempty"`
	Layout          *seats.Layout    `json:"layout,omitempty"`
	SelectedSeatIDs []string         `json:"selected_seat_ids,omitempty"`
	Reference       string           `json:"reference,omitempty"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}

// HasResults reports whether a search already produced a result set
func (s *Session) HasResults() bool {
	return len(s.Buses) > 0
}

// HasBus reports whether a bus was chosen and its layout frozen
func (s *Session) HasBus() bool {
	return s.SelectedBusID != "" && s.Layout != nil
}

// SelectedBus returns the chosen bus out of the session's result set
func (s *Session) SelectedBus() (buses.Bus, bool) {
	if s.SelectedBusID == "" {
		return buses.Bus{}, false
	}
	return buses.FindBus(s.Buses, s.SelectedBusID)
}

// SelectedSeats resolves the current selection against the frozen layout
func (s *Session) SelectedSeats() []seats.Seat {
	if s.Layout == nil {
		return nil
	}
	return s.Layout.Resolve(s.SelectedSeatIDs)
}

// BookingRecord is a completed booking, looked up by reference until
// the retention sweep purges it.
type BookingRecord struct {
	Reference     string        `json:"reference"`
	SessionID     string        `json:"session_id"`
	Bus           buses.Bus     `json:"bus"`
	Seats         []seats.Seat  `json:"seats"`
	SeatNumbers   []string      `json:"seat_numbers"`
	Passengers    []Passenger   `json:"passengers"`
	Contact       ContactInfo   `json:"contact"`
	TotalAmount   float64       `json:"total_amount"`
	PaymentMethod PaymentMethod `json:"payment_method"`
	Status        Status        `json:"status"`
	BookedAt      time.Time     `json:"booked_at"`
}
