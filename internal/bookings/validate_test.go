package bookings

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validPassenger() Passenger {
	return Passenger{Name: "Arjun", Age: 30, Gender: "male"}
}

func validContact() ContactInfo {
	return ContactInfo{Email: "arjun@example.com", Phone: "9876543210"}
}

func TestValidateCheckoutPasses(t *testing.T) {
	err := ValidateCheckout([]Passenger{validPassenger(), {Name: "Meera", Age: 28, Gender: "female"}}, validContact())
	assert.NoError(t, err)
}

func TestValidateCheckoutShortCircuits(t *testing.T) {
	tests := []struct {
		name       string
		passengers []Passenger
		contact    ContactInfo
		want       string
	}{
		{
			name:       "missing name stops at the first passenger",
			passengers: []Passenger{{Age: 30, Gender: "male"}, {}},
			contact:    ContactInfo{},
			want:       "Please enter name for passenger 1",
		},
		{
			name:       "zero age",
			passengers: []Passenger{{Name: "Arjun", Age: 0, Gender: "male"}},
			contact:    validContact(),
			want:       "Please enter valid age for passenger 1",
		},
		{
			name:       "missing gender",
			passengers: []Passenger{{Name: "Arjun", Age: 30}},
			contact:    validContact(),
			want:       "Please select gender for passenger 1",
		},
		{
			name:       "second passenger numbered from one",
			passengers: []Passenger{validPassenger(), {Name: "  ", Age: 25, Gender: "female"}},
			contact:    validContact(),
			want:       "Please enter name for passenger 2",
		},
		{
			name:       "passengers checked before contact",
			passengers: []Passenger{{Name: "Arjun", Age: -1, Gender: "male"}},
			contact:    ContactInfo{Email: "bad", Phone: "1"},
			want:       "Please enter valid age for passenger 1",
		},
		{
			name:       "invalid email",
			passengers: []Passenger{validPassenger()},
			contact:    ContactInfo{Email: "not-an-email", Phone: "9876543210"},
			want:       "Please enter a valid email address",
		},
		{
			name:       "email checked before phone",
			passengers: []Passenger{validPassenger()},
			contact:    ContactInfo{Email: "bad", Phone: "1"},
			want:       "Please enter a valid email address",
		},
		{
			name:       "short phone",
			passengers: []Passenger{validPassenger()},
			contact:    ContactInfo{Email: "arjun@example.com", Phone: "12345"},
			want:       "Please enter a valid 10-digit phone number",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCheckout(tt.passengers, tt.contact)
			var checkoutErr *CheckoutValidationError
			require.ErrorAs(t, err, &checkoutErr)
			assert.Equal(t, tt.want, checkoutErr.Message)
		})
	}
}

func TestValidateCheckoutPhoneFormattingIgnored(t *testing.T) {
	contact := ContactInfo{Email: "arjun@example.com", Phone: "+91 98765-43210"}
	// 12 digits once stripped, so it fails; exactly 10 passes
	err := ValidateCheckout([]Passenger{validPassenger()}, contact)
	require.Error(t, err)

	contact.Phone = "(987) 654-3210"
	assert.NoError(t, ValidateCheckout([]Passenger{validPassenger()}, contact))
}
