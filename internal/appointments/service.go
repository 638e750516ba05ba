package appointments

import (
	"context"
	"fmt"
	"time"

	"bookeasy/internal/notifications"
	"bookeasy/pkg/clock"
	"bookeasy/pkg/logger"
	"bookeasy/pkg/random"

	"github.com/google/uuid"
)

// Wizard is the appointment flow's state machine: it owns the step
// pointer and the accumulated selections, advances only past satisfied
// guards, and performs the final simulated submission.
type Wizard interface {
	Start(ctx context.Context) (*Session, error)
	Get(ctx context.Context, id string) (*Session, error)
	Catalog() []Service
	Slots(ctx context.Context, id, date string) ([]SlotAvailability, error)
	SelectService(ctx context.Context, id string, serviceID int) (*Session, error)
	SelectDateTime(ctx context.Context, id, date, timeLabel string) (*Session, error)
	Next(ctx context.Context, id string) (*Session, error)
	Back(ctx context.Context, id string) (*Session, error)
	Submit(ctx context.Context, id string, contact ContactInfo) (*AppointmentRecord, error)
	Reset(ctx context.Context, id string) (*Session, error)
}

type wizard struct {
	repo        Repository
	notifier    notifications.Service
	clk         clock.Clock
	src         random.Source
	submitDelay time.Duration
	log         *logger.Logger
}

// NewWizard creates the appointment wizard service
func NewWizard(repo Repository, notifier notifications.Service, clk clock.Clock, src random.Source, submitDelay time.Duration, log *logger.Logger) Wizard {
	return &wizard{
		repo:        repo,
		notifier:    notifier,
		clk:         clk,
		src:         src,
		submitDelay: submitDelay,
		log:         log,
	}
}

func (w *wizard) Start(ctx context.Context) (*Session, error) {
	now := w.clk.Now()
	session := &Session{
		ID:        uuid.New().String(),
		Step:      StepSelectingService,
		Status:    StatusInProgress,
		Dates:     dateWindow(now),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := w.repo.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

func (w *wizard) Get(ctx context.Context, id string) (*Session, error) {
	return w.repo.Get(ctx, id)
}

func (w *wizard) Catalog() []Service {
	return Catalog()
}

// Slots returns the availability table for a date, computing it from
// the random source on first request and freezing it in the session.
func (w *wizard) Slots(ctx context.Context, id, date string) ([]SlotAvailability, error) {
	session, err := w.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if !session.InDateWindow(date) {
		return nil, &ValidationError{Errors: []string{"Date is outside the booking window"}}
	}

	if table, ok := session.Slots[date]; ok {
		return table, nil
	}

	parsed, err := time.Parse(DateLayout, date)
	if err != nil {
		return nil, &ValidationError{Errors: []string{"Date is outside the booking window"}}
	}

	table := computeSlotTable(parsed, w.src)
	if session.Slots == nil {
		session.Slots = make(map[string][]SlotAvailability)
	}
	session.Slots[date] = table
	session.UpdatedAt = w.clk.Now()

	if err := w.repo.Save(ctx, session); err != nil {
		return nil, err
	}
	return table, nil
}

func (w *wizard) SelectService(ctx context.Context, id string, serviceID int) (*Session, error) {
	session, err := w.mutableSession(ctx, id)
	if err != nil {
		return nil, err
	}

	if session.Step != StepSelectingService {
		return nil, &GuardError{Message: "Service can only be chosen in the first step"}
	}

	if _, ok := FindService(serviceID); !ok {
		return nil, &ValidationError{Errors: []string{"Unknown service"}}
	}

	session.ServiceID = serviceID
	session.UpdatedAt = w.clk.Now()
	if err := w.repo.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

func (w *wizard) SelectDateTime(ctx context.Context, id, date, timeLabel string) (*Session, error) {
	session, err := w.mutableSession(ctx, id)
	if err != nil {
		return nil, err
	}

	if session.Step != StepSelectingDateTime {
		return nil, &GuardError{Message: "Date and time can only be chosen in the second step"}
	}

	if !session.InDateWindow(date) {
		return nil, &ValidationError{Errors: []string{"Date is outside the booking window"}}
	}

	// The frozen availability table decides; compute it here if the
	// client skipped listing the slots first.
	table, ok := session.Slots[date]
	if !ok {
		parsed, perr := time.Parse(DateLayout, date)
		if perr != nil {
			return nil, &ValidationError{Errors: []string{"Date is outside the booking window"}}
		}
		table = computeSlotTable(parsed, w.src)
		if session.Slots == nil {
			session.Slots = make(map[string][]SlotAvailability)
		}
		session.Slots[date] = table
	}

	found := false
	for _, slot := range table {
		if slot.Time == timeLabel {
			if !slot.Available {
				return nil, &ValidationError{Errors: []string{"Selected time slot is not available"}}
			}
			found = true
			break
		}
	}
	if !found {
		return nil, &ValidationError{Errors: []string{"Unknown time slot"}}
	}

	session.Date = date
	session.Time = timeLabel
	session.UpdatedAt = w.clk.Now()
	if err := w.repo.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Next advances the step pointer by one if the current step's guard is
// satisfied. A failed guard records a warning and leaves the pointer
// where it is.
func (w *wizard) Next(ctx context.Context, id string) (*Session, error) {
	session, err := w.mutableSession(ctx, id)
	if err != nil {
		return nil, err
	}

	switch session.Step {
	case StepSelectingService:
		if !session.HasService() {
			w.notifier.Notify(session.ID, notifications.SeverityWarning, "Please select a service")
			return nil, &GuardError{Message: "Please select a service"}
		}
	case StepSelectingDateTime:
		if !session.HasDateTime() {
			w.notifier.Notify(session.ID, notifications.SeverityWarning, "Please select both a date and time")
			return nil, &GuardError{Message: "Please select both a date and time"}
		}
	case lastStep:
		return nil, &GuardError{Message: "Already at the final step"}
	}

	session.Step++
	session.UpdatedAt = w.clk.Now()
	if err := w.repo.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Back moves one step towards the start, unconditionally and without
// data loss.
func (w *wizard) Back(ctx context.Context, id string) (*Session, error) {
	session, err := w.mutableSession(ctx, id)
	if err != nil {
		return nil, err
	}

	if session.Step > firstStep {
		session.Step--
	}
	session.UpdatedAt = w.clk.Now()
	if err := w.repo.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Submit runs the aggregate contact validation, simulates the backend
// call, and confirms the booking. The simulated submission cannot fail
// once validation passed.
func (w *wizard) Submit(ctx context.Context, id string, contact ContactInfo) (*AppointmentRecord, error) {
	session, err := w.mutableSession(ctx, id)
	if err != nil {
		return nil, err
	}

	if session.Step != StepEnteringContact || !session.HasService() || !session.HasDateTime() {
		return nil, &GuardError{Message: "Please complete the previous steps first"}
	}

	if errs := ValidateContact(contact); len(errs) > 0 {
		for _, msg := range errs {
			w.notifier.Notify(session.ID, notifications.SeverityError, msg)
		}
		return nil, &ValidationError{Errors: errs}
	}

	session.Contact = contact
	session.Status = StatusSubmitting
	session.UpdatedAt = w.clk.Now()
	if err := w.repo.Save(ctx, session); err != nil {
		return nil, err
	}

	// Stand-in for the network call. A cancelled request rolls the
	// status back instead of confirming against a dead client.
	if err := waitFor(ctx, w.submitDelay); err != nil {
		session.Status = StatusInProgress
		if saveErr := w.repo.Save(context.WithoutCancel(ctx), session); saveErr != nil {
			w.log.WithError(saveErr).Error("failed to roll back submitting session")
		}
		return nil, fmt.Errorf("submission cancelled: %w", err)
	}

	session.Status = StatusConfirmed
	session.UpdatedAt = w.clk.Now()
	if err := w.repo.Save(ctx, session); err != nil {
		return nil, err
	}

	w.notifier.Notify(session.ID, notifications.SeveritySuccess, "Appointment successfully booked!")
	w.log.LogAppointmentBooked(ctx, session.ID, session.ServiceID, session.Date, session.Time)

	service, _ := FindService(session.ServiceID)
	return &AppointmentRecord{
		Service:  service,
		Date:     session.Date,
		Time:     session.Time,
		Contact:  session.Contact,
		BookedAt: w.clk.Now(),
	}, nil
}

// Reset returns a confirmed wizard to a blank first step, clearing
// every draft field and redrawing the date window.
func (w *wizard) Reset(ctx context.Context, id string) (*Session, error) {
	session, err := w.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if !session.Status.CanReset() {
		return nil, ErrNotConfirmed
	}

	now := w.clk.Now()
	session.Step = StepSelectingService
	session.Status = StatusInProgress
	session.ServiceID = 0
	session.Date = ""
	session.Time = ""
	session.Contact = ContactInfo{}
	session.Slots = nil
	session.Dates = dateWindow(now)
	session.UpdatedAt = now

	if err := w.repo.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// mutableSession loads a session and rejects mutation while a
// submission is in flight or after confirmation.
func (w *wizard) mutableSession(ctx context.Context, id string) (*Session, error) {
	session, err := w.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	switch session.Status {
	case StatusSubmitting:
		return nil, ErrSubmissionInFlight
	case StatusConfirmed:
		return nil, ErrAlreadyConfirmed
	}
	return session, nil
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
