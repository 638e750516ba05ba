package notifications

import (
	"encoding/json"
	"time"
)

// Severity mirrors the toast levels of the booking UI
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// IsValid checks if the severity is one of the known levels
func (s Severity) IsValid() bool {
	switch s {
	case SeverityInfo, SeveritySuccess, SeverityWarning, SeverityError:
		return true
	}
	return false
}

func (s Severity) String() string {
	return string(s)
}

// Notification is a fire-and-forget (severity, message) pair recorded
// against a wizard session. There is no acknowledgment contract.
type Notification struct {
	Severity Severity  `json:"severity"`
	Message  string    `json:"message"`
	At       time.Time `json:"at"`
}

// BookingEvent is published to Kafka when a bus checkout completes
type BookingEvent struct {
	Reference     string    `json:"reference"`
	SessionID     string    `json:"session_id"`
	BusID         string    `json:"bus_id"`
	BusName       string    `json:"bus_name"`
	From          string    `json:"from"`
	To            string    `json:"to"`
	SeatNumbers   []string  `json:"seat_numbers"`
	PaymentMethod string    `json:"payment_method"`
	TotalAmount   float64   `json:"total_amount"`
	BookedAt      time.Time `json:"booked_at"`
}

// ToJSON serializes the event for the Kafka payload
func (e *BookingEvent) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

// GetPartitionKey routes events for one session to one partition
func (e *BookingEvent) GetPartitionKey() string {
	return e.SessionID
}
