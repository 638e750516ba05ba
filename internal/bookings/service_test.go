package bookings

import (
	"context"
	"regexp"
	"testing"
	"time"

	"bookeasy/internal/buses"
	"bookeasy/internal/notifications"
	"bookeasy/internal/seats"
	"bookeasy/pkg/cache"
	"bookeasy/pkg/clock"
	"bookeasy/pkg/logger"
	"bookeasy/pkg/random"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type serviceFixture struct {
	service  Service
	repo     Repository
	store    Store
	notifier notifications.Service
	clk      clock.Clock
}

func newServiceFixture(t *testing.T) *serviceFixture {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	clk := clock.Fixed(time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC))
	notifier := notifications.NewService(notifications.NewRecorder(), notifications.NoopProducer{}, logger.GetDefault())
	repo := NewRepository(cache.NewService(client), 30*time.Minute)
	store := NewStore()

	return &serviceFixture{
		service:  NewService(repo, store, notifier, clk, random.NewSeeded(1), 0, 0, logger.GetDefault()),
		repo:     repo,
		store:    store,
		notifier: notifier,
		clk:      clk,
	}
}

func (f *serviceFixture) messages(sessionID string) []string {
	var out []string
	for _, n := range f.notifier.List(sessionID) {
		out = append(out, n.Message)
	}
	return out
}

func validSearch() buses.SearchForm {
	return buses.SearchForm{From: "Pune", To: "Mumbai", Date: "2026-09-04", Passengers: 2}
}

// searchAndSelectBus walks a fresh session to the seat step
func searchAndSelectBus(t *testing.T, f *serviceFixture) *Session {
	t.Helper()
	ctx := context.Background()

	session, err := f.service.Search(ctx, validSearch())
	require.NoError(t, err)

	session, err = f.service.SelectBus(ctx, session.ID, "1")
	require.NoError(t, err)
	return session
}

// availableSeatIDs picks the first n open seats from the layout
func availableSeatIDs(layout *seats.Layout, n int) []string {
	var ids []string
	for _, row := range layout.Rows {
		for _, seat := range row.Seats {
			if seat.Available {
				ids = append(ids, seat.ID)
				if len(ids) == n {
					return ids
				}
			}
		}
	}
	return ids
}

func TestSearchValidation(t *testing.T) {
	f := newServiceFixture(t)

	_, err := f.service.Search(context.Background(), buses.SearchForm{})

	var searchErr *SearchValidationError
	require.ErrorAs(t, err, &searchErr)
	assert.Equal(t, map[string]string{
		"from": "Departure city is required",
		"to":   "Destination city is required",
		"date": "Date of journey is required",
	}, searchErr.Fields)
}

func TestSearchOpensSessionWithResults(t *testing.T) {
	f := newServiceFixture(t)

	session, err := f.service.Search(context.Background(), validSearch())
	require.NoError(t, err)

	assert.Equal(t, StepResults, session.Step)
	assert.Equal(t, StatusInProgress, session.Status)
	require.Len(t, session.Buses, 5)
	for _, bus := range session.Buses {
		assert.Equal(t, "Pune", bus.From)
		assert.Equal(t, "Mumbai", bus.To)
	}

	assert.Equal(t, []string{"Searching for buses between Pune and Mumbai"}, f.messages(session.ID))

	loaded, err := f.service.Get(context.Background(), session.ID)
	require.NoError(t, err)
	assert.Equal(t, session.Buses, loaded.Buses)
}

func TestResultsFiltering(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()

	session, err := f.service.Search(ctx, validSearch())
	require.NoError(t, err)

	filter := buses.DefaultFilter("luxury")
	results, err := f.service.Results(ctx, session.ID, filter)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "Luxury Roadlines", results[0].Name)
	assert.Equal(t, "Royal Coaches", results[1].Name)
}

func TestResultsGuardWithoutSearch(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()

	// A session that never produced results
	bare := &Session{ID: "bare", Step: StepSearch, Status: StatusInProgress}
	require.NoError(t, f.repo.Save(ctx, bare))

	_, err := f.service.Results(ctx, "bare", buses.DefaultFilter("any"))
	var guardErr *GuardError
	require.ErrorAs(t, err, &guardErr)
	assert.Equal(t, "Please search for buses first", guardErr.Message)
}

func TestSelectBusFreezesLayout(t *testing.T) {
	f := newServiceFixture(t)
	session := searchAndSelectBus(t, f)

	assert.Equal(t, StepSeats, session.Step)
	assert.Equal(t, "1", session.SelectedBusID)
	require.NotNil(t, session.Layout)
	assert.Equal(t, 40, session.Layout.TotalSeats())
	assert.Equal(t, 28, session.Layout.AvailableCount())

	// The frozen layout survives a reload
	loaded, err := f.service.Get(context.Background(), session.ID)
	require.NoError(t, err)
	assert.Equal(t, session.Layout, loaded.Layout)
}

func TestSelectBusUnknownID(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()

	session, err := f.service.Search(ctx, validSearch())
	require.NoError(t, err)

	_, err = f.service.SelectBus(ctx, session.ID, "99")
	assert.ErrorIs(t, err, ErrBusNotFound)
}

func TestSelectDifferentBusClearsSelection(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()
	session := searchAndSelectBus(t, f)

	ids := availableSeatIDs(session.Layout, 1)
	_, _, err := f.service.ToggleSeat(ctx, session.ID, ids[0])
	require.NoError(t, err)

	session, err = f.service.SelectBus(ctx, session.ID, "2")
	require.NoError(t, err)
	assert.Equal(t, "2", session.SelectedBusID)
	assert.Empty(t, session.SelectedSeatIDs)
}

func TestToggleSeatAddAndRemove(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()
	session := searchAndSelectBus(t, f)

	ids := availableSeatIDs(session.Layout, 2)

	session, outcome, err := f.service.ToggleSeat(ctx, session.ID, ids[0])
	require.NoError(t, err)
	assert.Equal(t, seats.ToggleAdded, outcome)
	assert.Equal(t, []string{ids[0]}, session.SelectedSeatIDs)

	session, outcome, err = f.service.ToggleSeat(ctx, session.ID, ids[1])
	require.NoError(t, err)
	assert.Equal(t, seats.ToggleAdded, outcome)
	assert.Len(t, session.SelectedSeatIDs, 2)

	session, outcome, err = f.service.ToggleSeat(ctx, session.ID, ids[0])
	require.NoError(t, err)
	assert.Equal(t, seats.ToggleRemoved, outcome)
	assert.Equal(t, []string{ids[1]}, session.SelectedSeatIDs)
}

func TestToggleSeventhSeatRejected(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()
	session := searchAndSelectBus(t, f)

	ids := availableSeatIDs(session.Layout, 7)
	require.Len(t, ids, 7)

	for _, id := range ids[:6] {
		var err error
		session, _, err = f.service.ToggleSeat(ctx, session.ID, id)
		require.NoError(t, err)
	}
	require.Len(t, session.SelectedSeatIDs, 6)

	session, outcome, err := f.service.ToggleSeat(ctx, session.ID, ids[6])
	require.NoError(t, err)
	assert.Equal(t, seats.ToggleRejectedCap, outcome)
	assert.Equal(t, ids[:6], session.SelectedSeatIDs)

	messages := f.messages(session.ID)
	capWarnings := 0
	for _, m := range messages {
		if m == "You can select a maximum of 6 seats" {
			capWarnings++
		}
	}
	assert.Equal(t, 1, capWarnings)
}

func TestToggleUnavailableSeat(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()
	session := searchAndSelectBus(t, f)

	var blockedID string
	for _, row := range session.Layout.Rows {
		for _, seat := range row.Seats {
			if !seat.Available {
				blockedID = seat.ID
			}
		}
	}
	require.NotEmpty(t, blockedID)

	session, outcome, err := f.service.ToggleSeat(ctx, session.ID, blockedID)
	require.NoError(t, err)
	assert.Equal(t, seats.ToggleRejectedUnavailable, outcome)
	assert.Empty(t, session.SelectedSeatIDs)
}

func TestCheckoutWithoutSeats(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()
	session := searchAndSelectBus(t, f)

	_, err := f.service.Checkout(ctx, session.ID, nil, validContact(), PaymentCreditCard)

	var guardErr *GuardError
	require.ErrorAs(t, err, &guardErr)
	assert.Equal(t, "Please select at least one seat", guardErr.Message)
	assert.Contains(t, f.messages(session.ID), "Please select at least one seat")
}

func TestCheckoutPassengerCountMustMatchSeats(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()
	session := searchAndSelectBus(t, f)

	ids := availableSeatIDs(session.Layout, 2)
	for _, id := range ids {
		_, _, err := f.service.ToggleSeat(ctx, session.ID, id)
		require.NoError(t, err)
	}

	_, err := f.service.Checkout(ctx, session.ID, []Passenger{validPassenger()}, validContact(), PaymentCreditCard)
	var checkoutErr *CheckoutValidationError
	assert.ErrorAs(t, err, &checkoutErr)
}

func TestCheckoutInvalidPassengerRecordsError(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()
	session := searchAndSelectBus(t, f)

	ids := availableSeatIDs(session.Layout, 1)
	_, _, err := f.service.ToggleSeat(ctx, session.ID, ids[0])
	require.NoError(t, err)

	_, err = f.service.Checkout(ctx, session.ID, []Passenger{{Age: 30, Gender: "male"}}, validContact(), PaymentCreditCard)

	var checkoutErr *CheckoutValidationError
	require.ErrorAs(t, err, &checkoutErr)
	assert.Equal(t, "Please enter name for passenger 1", checkoutErr.Message)
	assert.Contains(t, f.messages(session.ID), "Please enter name for passenger 1")
}

func TestCheckoutCompletesBooking(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()
	session := searchAndSelectBus(t, f)

	ids := availableSeatIDs(session.Layout, 2)
	for _, id := range ids {
		_, _, err := f.service.ToggleSeat(ctx, session.ID, id)
		require.NoError(t, err)
	}

	passengers := []Passenger{
		{Name: "Arjun", Age: 30, Gender: "male"},
		{Name: "Meera", Age: 28, Gender: "female"},
	}
	record, err := f.service.Checkout(ctx, session.ID, passengers, validContact(), PaymentWallet)
	require.NoError(t, err)

	assert.Regexp(t, regexp.MustCompile(`^[A-Z0-9]{8}$`), record.Reference)
	assert.Equal(t, "Express Travels", record.Bus.Name)
	assert.Equal(t, 1700.0, record.TotalAmount) // two seats at the 850 fare
	assert.Len(t, record.SeatNumbers, 2)
	assert.Equal(t, PaymentWallet, record.PaymentMethod)
	assert.Equal(t, StatusConfirmed, record.Status)
	assert.Equal(t, f.clk.Now(), record.BookedAt)

	// Session moved to confirmation
	session, err = f.service.Get(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, StepConfirmation, session.Step)
	assert.Equal(t, StatusConfirmed, session.Status)
	assert.Equal(t, record.Reference, session.Reference)

	// Ticket and reference lookup both find the record
	ticket, err := f.service.Ticket(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, record, ticket)

	byRef, err := f.service.Lookup(record.Reference)
	require.NoError(t, err)
	assert.Equal(t, record, byRef)

	assert.Contains(t, f.messages(session.ID), "Booking completed successfully!")
}

func TestCheckoutInvalidPaymentMethod(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()
	session := searchAndSelectBus(t, f)

	ids := availableSeatIDs(session.Layout, 1)
	_, _, err := f.service.ToggleSeat(ctx, session.ID, ids[0])
	require.NoError(t, err)

	_, err = f.service.Checkout(ctx, session.ID, []Passenger{validPassenger()}, validContact(), PaymentMethod("cash"))
	var checkoutErr *CheckoutValidationError
	require.ErrorAs(t, err, &checkoutErr)
	assert.Equal(t, "Please select a payment method", checkoutErr.Message)
}

func TestConfirmedSessionRejectsMutation(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()
	session := searchAndSelectBus(t, f)

	ids := availableSeatIDs(session.Layout, 1)
	_, _, err := f.service.ToggleSeat(ctx, session.ID, ids[0])
	require.NoError(t, err)
	_, err = f.service.Checkout(ctx, session.ID, []Passenger{validPassenger()}, validContact(), PaymentCreditCard)
	require.NoError(t, err)

	_, _, err = f.service.ToggleSeat(ctx, session.ID, ids[0])
	assert.ErrorIs(t, err, ErrAlreadyConfirmed)

	_, err = f.service.SelectBus(ctx, session.ID, "2")
	assert.ErrorIs(t, err, ErrAlreadyConfirmed)
}

func TestTicketBeforeConfirmation(t *testing.T) {
	f := newServiceFixture(t)
	session := searchAndSelectBus(t, f)

	_, err := f.service.Ticket(context.Background(), session.ID)
	var guardErr *GuardError
	require.ErrorAs(t, err, &guardErr)
	assert.Equal(t, "Please complete the booking first", guardErr.Message)
}

func TestSessionNotFound(t *testing.T) {
	f := newServiceFixture(t)

	_, err := f.service.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrSessionNotFound)

	_, err = f.service.Lookup("NOPE1234")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}
