package appointments

import (
	"regexp"
	"strings"
)

var (
	emailPattern    = regexp.MustCompile(`\S+@\S+\.\S+`)
	nonDigitPattern = regexp.MustCompile(`\D`)
)

// ValidateContact checks the contact draft and returns every failure as
// a human-readable message. Unlike the bus checkout validator, this one
// aggregates all errors instead of stopping at the first.
func ValidateContact(contact ContactInfo) []string {
	var errors []string

	if strings.TrimSpace(contact.Name) == "" {
		errors = append(errors, "Name is required")
	}

	if strings.TrimSpace(contact.Email) == "" {
		errors = append(errors, "Email is required")
	} else if !emailPattern.MatchString(contact.Email) {
		errors = append(errors, "Email is invalid")
	}

	if strings.TrimSpace(contact.Phone) == "" {
		errors = append(errors, "Phone number is required")
	} else if len(nonDigitPattern.ReplaceAllString(contact.Phone, "")) != 10 {
		errors = append(errors, "Phone number must be 10 digits")
	}

	return errors
}
