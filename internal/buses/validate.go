package buses

import (
	"strings"
	"time"

	"bookeasy/pkg/clock"
)

// SearchDateLayout is the wire format for the date of journey
const SearchDateLayout = "2006-01-02"

// ValidateSearch maps a draft search form to field -> error message for
// exactly the fields that fail. An empty map means the form is valid.
// The from/to equality check runs after the emptiness checks and
// overwrites any earlier "to" error.
func ValidateSearch(form SearchForm, clk clock.Clock) map[string]string {
	errors := make(map[string]string)

	if strings.TrimSpace(form.From) == "" {
		errors["from"] = "Departure city is required"
	}

	if strings.TrimSpace(form.To) == "" {
		errors["to"] = "Destination city is required"
	}

	if form.From != "" && form.To != "" && strings.EqualFold(form.From, form.To) {
		errors["to"] = "Destination cannot be the same as departure"
	}

	if form.Date == "" {
		errors["date"] = "Date of journey is required"
	} else {
		now := clk.Now()
		selected, err := time.ParseInLocation(SearchDateLayout, form.Date, now.Location())
		if err != nil {
			errors["date"] = "Date of journey is required"
		} else if selected.Before(clock.StartOfDay(now)) {
			errors["date"] = "Date cannot be in the past"
		}
	}

	return errors
}
