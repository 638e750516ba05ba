package bookings

import "bookeasy/internal/buses"

// SearchRequest carries the raw search form. Emptiness and date rules
// live in buses.ValidateSearch so the field messages stay exact;
// binding only rejects shapes the form cannot produce.
type SearchRequest struct {
	From       string `json:"from"`
	To         string `json:"to"`
	Date       string `json:"date"`
	Passengers int    `json:"passengers" binding:"omitempty,min=1,max=6"`
	BusType    string `json:"bus_type" binding:"omitempty,bustype"`
}

func (r SearchRequest) ToSearchForm() buses.SearchForm {
	passengers := r.Passengers
	if passengers == 0 {
		passengers = 1
	}
	return buses.SearchForm{
		From:       r.From,
		To:         r.To,
		Date:       r.Date,
		Passengers: passengers,
		BusType:    r.BusType,
	}
}

type SelectBusRequest struct {
	BusID string `json:"bus_id" binding:"required"`
}

type ToggleSeatRequest struct {
	SeatID string `json:"seat_id" binding:"required"`
}

type PassengerRequest struct {
	Name   string `json:"name"`
	Age    int    `json:"age"`
	Gender string `json:"gender"`
}

// CheckoutRequest carries the passenger forms, the contact block, and
// the chosen payment method. Per-field messages come from
// ValidateCheckout, not from binding.
type CheckoutRequest struct {
	Passengers    []PassengerRequest `json:"passengers" binding:"required"`
	Email         string             `json:"email"`
	Phone         string             `json:"phone"`
	PaymentMethod string             `json:"payment_method"`
}

func (r CheckoutRequest) ToPassengers() []Passenger {
	passengers := make([]Passenger, 0, len(r.Passengers))
	for _, p := range r.Passengers {
		passengers = append(passengers, Passenger{
			Name:   p.Name,
			Age:    p.Age,
			Gender: p.Gender,
		})
	}
	return passengers
}

func (r CheckoutRequest) ToContactInfo() ContactInfo {
	return ContactInfo{
		Email: r.Email,
		Phone: r.Phone,
	}
}
