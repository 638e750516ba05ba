package bookings

import (
	"time"

	"bookeasy/internal/buses"
	"bookeasy/internal/seats"
)

// SessionResponse is the wizard state as the client sees it
type SessionResponse struct {
	ID              string           `json:"id"`
	Step            int              `json:"step"`
	StepName        string           `json:"step_name"`
	Status          string           `json:"status"`
	Search          buses.SearchForm `json:"search"`
	SelectedBus     *buses.Bus       `json:"selected_bus,omitempty"`
	SelectedSeatIDs []string         `json:"selected_seat_ids,omitempty"`
	Reference       string           `json:"reference,omitempty"`
	UpdatedAt       time.Time        `json:"updated_at"`
}

func ToSessionResponse(s *Session) SessionResponse {
	resp := SessionResponse{
		ID:              s.ID,
		Step:            s.Step,
		StepName:        StepName(s.Step),
		Status:          s.Status.String(),
		Search:          s.Search,
		SelectedSeatIDs: s.SelectedSeatIDs,
		Reference:       s.Reference,
		UpdatedAt:       s.UpdatedAt,
	}
	if bus, ok := s.SelectedBus(); ok {
		resp.SelectedBus = &bus
	}
	return resp
}

// BusResult decorates a bus with its display strings for the result list
type BusResult struct {
	buses.Bus
	TypeLabel    string   `json:"type_label"`
	AmenityIcons []string `json:"amenity_icons"`
}

func ToBusResults(list []buses.Bus) []BusResult {
	results := make([]BusResult, 0, len(list))
	for _, bus := range list {
		results = append(results, BusResult{
			Bus:          bus,
			TypeLabel:    bus.Type.DisplayName(),
			AmenityIcons: buses.AmenityIcons(bus.Amenities),
		})
	}
	return results
}

// SeatMapResponse is the frozen layout plus the live draft selection
type SeatMapResponse struct {
	Layout          seats.Layout `json:"layout"`
	SelectedSeatIDs []string     `json:"selected_seat_ids"`
	SelectedSeats   []seats.Seat `json:"selected_seats"`
	TotalAmount     float64      `json:"total_amount"`
	MaxSeats        int          `json:"max_seats"`
	AvailableCount  int          `json:"available_count"`
}

func ToSeatMapResponse(s *Session) SeatMapResponse {
	selected := s.SelectedSeats()
	maxSeats := 0
	if bus, ok := s.SelectedBus(); ok {
		maxSeats = bus.MaxSeatsPerBooking
	}
	return SeatMapResponse{
		Layout:          *s.Layout,
		SelectedSeatIDs: s.SelectedSeatIDs,
		SelectedSeats:   selected,
		TotalAmount:     seats.TotalAmount(selected),
		MaxSeats:        maxSeats,
		AvailableCount:  s.Layout.AvailableCount(),
	}
}

// ToggleSeatResponse reports what the click did alongside the new state
type ToggleSeatResponse struct {
	Outcome string          `json:"outcome"`
	SeatMap SeatMapResponse `json:"seat_map"`
}

// ToggleOutcomeLabel names a toggle outcome on the wire
func ToggleOutcomeLabel(outcome seats.ToggleOutcome) string {
	switch outcome {
	case seats.ToggleAdded:
		return "added"
	case seats.ToggleRemoved:
		return "removed"
	case seats.ToggleRejectedUnavailable:
		return "rejected_unavailable"
	case seats.ToggleRejectedCap:
		return "rejected_cap"
	}
	return "unknown"
}

// TicketResponse is a completed booking with its display strings
type TicketResponse struct {
	Reference     string       `json:"reference"`
	Bus           buses.Bus    `json:"bus"`
	TypeLabel     string       `json:"type_label"`
	Seats         []seats.Seat `json:"seats"`
	SeatNumbers   []string     `json:"seat_numbers"`
	Passengers    []Passenger  `json:"passengers"`
	Contact       ContactInfo  `json:"contact"`
	TotalAmount   float64      `json:"total_amount"`
	PaymentMethod string       `json:"payment_method"`
	PaymentLabel  string       `json:"payment_label"`
	Status        string       `json:"status"`
	BookedAt      time.Time    `json:"booked_at"`
}

func ToTicketResponse(r *BookingRecord) TicketResponse {
	return TicketResponse{
		Reference:     r.Reference,
		Bus:           r.Bus,
		TypeLabel:     r.Bus.Type.DisplayName(),
		Seats:         r.Seats,
		SeatNumbers:   r.SeatNumbers,
		Passengers:    r.Passengers,
		Contact:       r.Contact,
		TotalAmount:   r.TotalAmount,
		PaymentMethod: string(r.PaymentMethod),
		PaymentLabel:  r.PaymentMethod.DisplayName(),
		Status:        r.Status.String(),
		BookedAt:      r.BookedAt,
	}
}
