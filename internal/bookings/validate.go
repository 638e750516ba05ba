package bookings

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	emailPattern    = regexp.MustCompile(`\S+@\S+\.\S+`)
	nonDigitPattern = regexp.MustCompile(`\D`)
)

// ValidateCheckout runs the checkout checks in order and stops at the
// first failure: every passenger front to back, then the contact block.
// Passenger numbering in the messages is 1-based.
func ValidateCheckout(passengers []Passenger, contact ContactInfo) error {
	for i, p := range passengers {
		n := i + 1
		if strings.TrimSpace(p.Name) == "" {
			return &CheckoutValidationError{Message: fmt.Sprintf("Please enter name for passenger %d", n)}
		}
		if p.Age < 1 {
			return &CheckoutValidationError{Message: fmt.Sprintf("Please enter valid age for passenger %d", n)}
		}
		if strings.TrimSpace(p.Gender) == "" {
			return &CheckoutValidationError{Message: fmt.Sprintf("Please select gender for passenger %d", n)}
		}
	}

	if !emailPattern.MatchString(contact.Email) {
		return &CheckoutValidationError{Message: "Please enter a valid email address"}
	}

	digits := nonDigitPattern.ReplaceAllString(contact.Phone, "")
	if len(digits) != 10 {
		return &CheckoutValidationError{Message: "Please enter a valid 10-digit phone number"}
	}

	return nil
}
