package bookings

// Wizard steps for the bus flow. Search is the entry point; everything
// after it depends on state accumulated by the steps before it.
const (
	StepSearch       = 1
	StepResults      = 2
	StepSeats        = 3
	StepCheckout     = 4
	StepConfirmation = 5
)

// EntryPoint is where guard failures send the client back to
const EntryPoint = "/bus"

type Status string

const (
	StatusInProgress        Status = "IN_PROGRESS"
	StatusProcessingPayment Status = "PROCESSING_PAYMENT"
	StatusConfirmed         Status = "CONFIRMED"
)

// IsValid checks if the session status is valid
func (s Status) IsValid() bool {
	switch s {
	case StatusInProgress, StatusProcessingPayment, StatusConfirmed:
		return true
	}
	return false
}

// String returns the string representation of Status
func (s Status) String() string {
	return string(s)
}

// StepName returns the label shown for a step
func StepName(step int) string {
	switch step {
	case StepSearch:
		return "Search Buses"
	case StepResults:
		return "Select Bus"
	case StepSeats:
		return "Choose Seats"
	case StepCheckout:
		return "Passenger Details"
	case StepConfirmation:
		return "Ticket"
	}
	return ""
}

// PaymentMethod enumerates the checkout payment options
type PaymentMethod string

const (
	PaymentCreditCard PaymentMethod = "creditCard"
	PaymentWallet     PaymentMethod = "wallet"
	PaymentNetBanking PaymentMethod = "netBanking"
)

// IsValid checks if the payment method is a known option
func (p PaymentMethod) IsValid() bool {
	switch p {
	case PaymentCreditCard, PaymentWallet, PaymentNetBanking:
		return true
	}
	return false
}

// DisplayName returns the label shown on the ticket
func (p PaymentMethod) DisplayName() string {
	switch p {
	case PaymentCreditCard:
		return "Credit/Debit Card"
	case PaymentWallet:
		return "Digital Wallet"
	case PaymentNetBanking:
		return "Net Banking"
	}
	return string(p)
}
