package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"bookeasy/internal/buses"
	"bookeasy/internal/notifications"
	"bookeasy/internal/seats"
	"bookeasy/pkg/clock"
	"bookeasy/pkg/logger"
	"bookeasy/pkg/random"

	"github.com/google/uuid"
)

// Service is the bus wizard's state machine. A search opens a session;
// every later step leans on state the earlier steps accumulated, and a
// step reached without its predecessors answers with a guard failure
// pointing back at the entry point.
type Service interface {
	Search(ctx context.Context, form buses.SearchForm) (*Session, error)
	Get(ctx context.Context, id string) (*Session, error)
	Results(ctx context.Context, id string, filter buses.Filter) ([]buses.Bus, error)
	SelectBus(ctx context.Context, id, busID string) (*Session, error)
	Seats(ctx context.Context, id string) (*Session, error)
	ToggleSeat(ctx context.Context, id, seatID string) (*Session, seats.ToggleOutcome, error)
	Checkout(ctx context.Context, id string, passengers []Passenger, contact ContactInfo, method PaymentMethod) (*BookingRecord, error)
	Ticket(ctx context.Context, id string) (*BookingRecord, error)
	Lookup(reference string) (*BookingRecord, error)
}

type service struct {
	repo         Repository
	store        Store
	notifier     notifications.Service
	clk          clock.Clock
	src          random.Source
	searchDelay  time.Duration
	paymentDelay time.Duration
	log          *logger.Logger
}

// NewService creates the bus wizard service
func NewService(repo Repository, store Store, notifier notifications.Service, clk clock.Clock, src random.Source, searchDelay, paymentDelay time.Duration, log *logger.Logger) Service {
	return &service{
		repo:         repo,
		store:        store,
		notifier:     notifier,
		clk:          clk,
		src:          src,
		searchDelay:  searchDelay,
		paymentDelay: paymentDelay,
		log:          log,
	}
}

// Search validates the form, opens a fresh session, and synthesizes the
// result set after the simulated lookup delay.
func (s *service) Search(ctx context.Context, form buses.SearchForm) (*Session, error) {
	if fieldErrors := buses.ValidateSearch(form, s.clk); len(fieldErrors) > 0 {
		return nil, &SearchValidationError{Fields: fieldErrors}
	}

	now := s.clk.Now()
	session := &Session{
		ID:        uuid.New().String(),
		Step:      StepSearch,
		Status:    StatusInProgress,
		Search:    form,
		CreatedAt: now,
		UpdatedAt: now,
	}

	s.notifier.Notify(session.ID, notifications.SeveritySuccess,
		fmt.Sprintf("Searching for buses between %s and %s", form.From, form.To))

	if err := waitFor(ctx, s.searchDelay); err != nil {
		return nil, fmt.Errorf("search cancelled: %w", err)
	}

	session.Buses = buses.AvailableBuses(form)
	session.Step = StepResults
	session.UpdatedAt = s.clk.Now()

	if err := s.repo.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *service) Get(ctx context.Context, id string) (*Session, error) {
	return s.repo.Get(ctx, id)
}

// Results applies the filter to the session's result set. The filter is
// request state, not session state, and is reapplied from scratch.
func (s *service) Results(ctx context.Context, id string, filter buses.Filter) ([]buses.Bus, error) {
	session, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if !session.HasResults() {
		return nil, &GuardError{Message: "Please search for buses first"}
	}

	return filter.Apply(session.Buses), nil
}

// SelectBus fixes the chosen bus and freezes its seat layout. Choosing
// a different bus afterwards regenerates the layout and clears the
// draft selection.
func (s *service) SelectBus(ctx context.Context, id, busID string) (*Session, error) {
	session, err := s.mutableSession(ctx, id)
	if err != nil {
		return nil, err
	}

	if !session.HasResults() {
		return nil, &GuardError{Message: "Please search for buses first"}
	}

	bus, ok := buses.FindBus(session.Buses, busID)
	if !ok {
		return nil, ErrBusNotFound
	}

	layout := seats.Generate(bus.Fare, s.src)
	session.SelectedBusID = bus.ID
	session.Layout = &layout
	session.SelectedSeatIDs = nil
	session.Step = StepSeats
	session.UpdatedAt = s.clk.Now()

	if err := s.repo.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *service) Seats(ctx context.Context, id string) (*Session, error) {
	session, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if !session.HasBus() {
		return nil, &GuardError{Message: "Please select a bus first"}
	}

	return session, nil
}

// ToggleSeat applies one seat click. A cap rejection records the
// warning toast; the selection itself never changes on a rejection.
func (s *service) ToggleSeat(ctx context.Context, id, seatID string) (*Session, seats.ToggleOutcome, error) {
	session, err := s.mutableSession(ctx, id)
	if err != nil {
		return nil, 0, err
	}

	if !session.HasBus() {
		return nil, 0, &GuardError{Message: "Please select a bus first"}
	}

	seat, ok := session.Layout.Find(seatID)
	if !ok {
		return nil, 0, ErrSeatNotFound
	}

	bus, _ := session.SelectedBus()
	selection, outcome := seats.Toggle(session.SelectedSeatIDs, seat, bus.MaxSeatsPerBooking)

	switch outcome {
	case seats.ToggleRejectedCap:
		s.notifier.Notify(session.ID, notifications.SeverityWarning,
			fmt.Sprintf("You can select a maximum of %d seats", bus.MaxSeatsPerBooking))
		s.log.LogSeatCapRejected(ctx, session.ID, bus.MaxSeatsPerBooking)
		return session, outcome, nil
	case seats.ToggleRejectedUnavailable:
		return session, outcome, nil
	}

	session.SelectedSeatIDs = selection
	session.UpdatedAt = s.clk.Now()
	if err := s.repo.Save(ctx, session); err != nil {
		return nil, 0, err
	}
	return session, outcome, nil
}

// Checkout validates passengers and contact, simulates the payment, and
// completes the booking. Completion writes the record into the store,
// records the success toast, and publishes the booking event.
func (s *service) Checkout(ctx context.Context, id string, passengers []Passenger, contact ContactInfo, method PaymentMethod) (*BookingRecord, error) {
	session, err := s.mutableSession(ctx, id)
	if err != nil {
		return nil, err
	}

	if !session.HasBus() {
		return nil, &GuardError{Message: "Please select a bus first"}
	}

	if len(session.SelectedSeatIDs) == 0 {
		s.notifier.Notify(session.ID, notifications.SeverityWarning, "Please select at least one seat")
		return nil, &GuardError{Message: "Please select at least one seat"}
	}

	if len(passengers) != len(session.SelectedSeatIDs) {
		return nil, &CheckoutValidationError{Message: "Please enter details for every passenger"}
	}

	if err := ValidateCheckout(passengers, contact); err != nil {
		var checkoutErr *CheckoutValidationError
		if errors.As(err, &checkoutErr) {
			s.notifier.Notify(session.ID, notifications.SeverityError, checkoutErr.Message)
		}
		return nil, err
	}

	if !method.IsValid() {
		return nil, &CheckoutValidationError{Message: "Please select a payment method"}
	}

	session.Step = StepCheckout
	session.Status = StatusProcessingPayment
	session.UpdatedAt = s.clk.Now()
	if err := s.repo.Save(ctx, session); err != nil {
		return nil, err
	}

	// Stand-in for the payment gateway. A cancelled request rolls the
	// status back instead of charging a dead client.
	if err := waitFor(ctx, s.paymentDelay); err != nil {
		session.Status = StatusInProgress
		if saveErr := s.repo.Save(context.WithoutCancel(ctx), session); saveErr != nil {
			s.log.WithError(saveErr).Error("failed to roll back processing session")
		}
		return nil, fmt.Errorf("payment cancelled: %w", err)
	}

	bus, _ := session.SelectedBus()
	selected := session.SelectedSeats()
	reference := s.uniqueReference()

	record := &BookingRecord{
		Reference:     reference,
		SessionID:     session.ID,
		Bus:           bus,
		Seats:         selected,
		SeatNumbers:   seatNumbers(selected),
		Passengers:    passengers,
		Contact:       contact,
		TotalAmount:   seats.TotalAmount(selected),
		PaymentMethod: method,
		Status:        StatusConfirmed,
		BookedAt:      s.clk.Now(),
	}
	s.store.Save(record)

	session.Reference = reference
	session.Step = StepConfirmation
	session.Status = StatusConfirmed
	session.UpdatedAt = s.clk.Now()
	if err := s.repo.Save(ctx, session); err != nil {
		return nil, err
	}

	s.notifier.BookingCompleted(ctx, &notifications.BookingEvent{
		Reference:     record.Reference,
		SessionID:     session.ID,
		BusID:         bus.ID,
		BusName:       bus.Name,
		From:          bus.From,
		To:            bus.To,
		SeatNumbers:   record.SeatNumbers,
		PaymentMethod: string(method),
		TotalAmount:   record.TotalAmount,
		BookedAt:      record.BookedAt,
	})
	s.log.LogBusBookingCompleted(ctx, session.ID, record.Reference, len(selected), record.TotalAmount)

	return record, nil
}

// Ticket returns the session's completed booking
func (s *service) Ticket(ctx context.Context, id string) (*BookingRecord, error) {
	session, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if session.Status != StatusConfirmed || session.Reference == "" {
		return nil, &GuardError{Message: "Please complete the booking first"}
	}

	record, ok := s.store.GetByReference(session.Reference)
	if !ok {
		return nil, ErrBookingNotFound
	}
	return record, nil
}

func (s *service) Lookup(reference string) (*BookingRecord, error) {
	record, ok := s.store.GetByReference(reference)
	if !ok {
		return nil, ErrBookingNotFound
	}
	return record, nil
}

// mutableSession loads a session and rejects mutation while a payment
// is in flight or after the booking completed.
func (s *service) mutableSession(ctx context.Context, id string) (*Session, error) {
	session, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	switch session.Status {
	case StatusProcessingPayment:
		return nil, ErrPaymentInFlight
	case StatusConfirmed:
		return nil, ErrAlreadyConfirmed
	}
	return session, nil
}

// uniqueReference redraws on the rare collision with a live booking
func (s *service) uniqueReference() string {
	for {
		ref := NewReference(s.src)
		if _, taken := s.store.GetByReference(ref); !taken {
			return ref
		}
	}
}

func seatNumbers(selected []seats.Seat) []string {
	numbers := make([]string, 0, len(selected))
	for _, seat := range selected {
		numbers = append(numbers, seat.Number)
	}
	return numbers
}

// waitFor blocks for d or until ctx is cancelled
func waitFor(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
