package appointments

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateContact(t *testing.T) {
	tests := []struct {
		name    string
		contact ContactInfo
		want    []string
	}{
		{
			name:    "valid contact",
			contact: ContactInfo{Name: "Priya Sharma", Email: "priya@example.com", Phone: "9876543210"},
			want:    nil,
		},
		{
			name:    "everything missing aggregates all errors",
			contact: ContactInfo{},
			want:    []string{"Name is required", "Email is required", "Phone number is required"},
		},
		{
			name:    "invalid email shape",
			contact: ContactInfo{Name: "Priya", Email: "foo", Phone: "9876543210"},
			want:    []string{"Email is invalid"},
		},
		{
			name:    "email without dot",
			contact: ContactInfo{Name: "Priya", Email: "foo@bar", Phone: "9876543210"},
			want:    []string{"Email is invalid"},
		},
		{
			name:    "short phone",
			contact: ContactInfo{Name: "Priya", Email: "priya@example.com", Phone: "12345"},
			want:    []string{"Phone number must be 10 digits"},
		},
		{
			name:    "phone formatting ignored",
			contact: ContactInfo{Name: "Priya", Email: "priya@example.com", Phone: "(987) 654-3210"},
			want:    nil,
		},
		{
			name:    "whitespace name counts as missing",
			contact: ContactInfo{Name: "   ", Email: "priya@example.com", Phone: "9876543210"},
			want:    []string{"Name is required"},
		},
		{
			name:    "invalid email and short phone together",
			contact: ContactInfo{Name: "Priya", Email: "nope", Phone: "123"},
			want:    []string{"Email is invalid", "Phone number must be 10 digits"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidateContact(tt.contact))
		})
	}
}
