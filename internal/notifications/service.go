package notifications

import (
	"context"
	"log/slog"

	"bookeasy/pkg/logger"
)

// Service is the notification surface the wizards talk to: record a
// (severity, message) pair for a session, and fan completed bookings out
// to the event producer. Everything here is fire-and-forget.
type Service interface {
	Notify(sessionID string, severity Severity, message string)
	List(sessionID string) []Notification
	BookingCompleted(ctx context.Context, event *BookingEvent)
	Close() error
}

type service struct {
	recorder Recorder
	producer EventProducer
	log      *logger.Logger
}

// NewService creates the notification service
func NewService(recorder Recorder, producer EventProducer, log *logger.Logger) Service {
	if producer == nil {
		producer = NoopProducer{}
	}
	return &service{
		recorder: recorder,
		producer: producer,
		log:      log,
	}
}

func (s *service) Notify(sessionID string, severity Severity, message string) {
	s.recorder.Record(sessionID, severity, message)
	s.log.Debug("notification recorded",
		slog.String("session_id", sessionID),
		slog.String("severity", severity.String()),
		slog.String("message", message),
	)
}

func (s *service) List(sessionID string) []Notification {
	return s.recorder.List(sessionID)
}

// BookingCompleted records the success toast and publishes the event.
// Publish failures are logged and swallowed: the payment already
// "settled", the booking must not fail after the fact.
func (s *service) BookingCompleted(ctx context.Context, event *BookingEvent) {
	s.recorder.Record(event.SessionID, SeveritySuccess, "Booking completed successfully!")

	if err := s.producer.PublishBookingEvent(ctx, event); err != nil {
		s.log.Error("failed to publish booking event",
			slog.String("booking_ref", event.Reference),
			slog.String("error", err.Error()),
		)
	}
}

func (s *service) Close() error {
	return s.producer.Close()
}
