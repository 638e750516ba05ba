package bookings

import "bookeasy/pkg/random"

const (
	referenceAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	referenceLength   = 8
)

// NewReference draws an 8-character booking reference from the
// uppercase alphanumeric alphabet.
func NewReference(src random.Source) string {
	buf := make([]byte, referenceLength)
	for i := range buf {
		buf[i] = referenceAlphabet[src.Intn(len(referenceAlphabet))]
	}
	return string(buf)
}
