package appointments

import "time"

// Service is an immutable catalog entry; it is only ever selected,
// never created or destroyed at runtime.
type Service struct {
	ID              int     `json:"id"`
	Name            string  `json:"name"`
	DurationMinutes int     `json:"duration_minutes"`
	Price           float64 `json:"price"`
}

// ContactInfo is the mutable draft the wizard owns; discarded on reset
type ContactInfo struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	Notes string `json:"notes"`
}

// SlotAvailability pairs a time label with its availability for a date.
// Computed once per (session, date) and then frozen, so the same slot
// never flips between reads of one session.
type SlotAvailability struct {
	Time      string `json:"time"`
	Available bool   `json:"available"`
}

// Session is the appointment wizard's accumulated state. It lives in
// the session store with a TTL and is gone after that; nothing survives
// a "reload".
type Session struct {
	ID        string                        `json:"id"`
	Step      int                           `json:"step"`
	Status    Status                        `json:"status"`
	ServiceID int                           `json:"service_id,omitempty"`
	Date      string                        `json:"date,omitempty"`
	Time      string                        `json:"time,omitempty"`
	Contact   ContactInfo                   `json:"contact"`
	Dates     []string                      `json:"dates"`
	Slots     map[string][]SlotAvailability `json:"slots,omitempty"`
	CreatedAt time.Time                     `json:"created_at"`
	UpdatedAt time.Time                     `json:"updated_at"`
}

// HasService reports whether a service has been picked
func (s *Session) HasService() bool {
	return s.ServiceID != 0
}

// HasDateTime reports whether both date and time are picked
func (s *Session) HasDateTime() bool {
	return s.Date != "" && s.Time != ""
}

// InDateWindow reports whether date is inside the session's 7-day window
func (s *Session) InDateWindow(date string) bool {
	for _, d := range s.Dates {
		if d == date {
			return true
		}
	}
	return false
}

// AppointmentRecord is composed at submit time and exists only in the
// submit response; it is never persisted.
type AppointmentRecord struct {
	Service  Service     `json:"service"`
	Date     string      `json:"date"`
	Time     string      `json:"time"`
	Contact  ContactInfo `json:"contact"`
	BookedAt time.Time   `json:"booked_at"`
}
