package notification

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/csiedev/meeting-records/internal/domain/entities"
)

// Kind is the notification category
type Kind string

const (
	KindNotice        Kind = "Notice"        // meeting agenda ahead of the meeting
	KindMinute        Kind = "Minute"        // the recorded minutes afterwards
	KindModifyRequest Kind = "ModifyRequest" // request to the minute taker
)

// Message is one rendered email ready for delivery
type Message struct {
	Subject    string
	HTML       string
	Recipients []string
}

// Mailer delivers a rendered message. Implemented by the SMTP client in
// infrastructure/mail.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

// Service renders and queues meeting notifications. Delivery is
// fire-and-forget: enqueue never blocks the caller, a full queue drops
// the message with a log line, and send failures are logged and lost.
type Service struct {
	mailer Mailer
	logger *zap.Logger

	queue chan Message
	once  sync.Once
	done  chan struct{}
}

// NewService creates a notification service with a bounded queue
func NewService(mailer Mailer, logger *zap.Logger, queueSize int) *Service {
	if queueSize <= 0 {
		queueSize = 64
	}
	return &Service{
		mailer: mailer,
		logger: logger,
		queue:  make(chan Message, queueSize),
		done:   make(chan struct{}),
	}
}

// Start runs the delivery worker until ctx is cancelled
func (s *Service) Start(ctx context.Context) {
	s.once.Do(func() {
		go s.run(ctx)
	})
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)
	s.logger.Info("notification worker started")
	for {
		select {
		case <-ctx.Done():
			s.logger.Info("notification worker shutting down")
			return
		case msg := <-s.queue:
			if err := s.mailer.Send(ctx, msg); err != nil {
				// Accepted gap: the send is lost, the caller never
				// observes the failure.
				s.logger.Error("notification send failed",
					zap.String("subject", msg.Subject),
					zap.Int("recipients", len(msg.Recipients)),
					zap.Error(err),
				)
			}
		}
	}
}

// Wait blocks until the worker has drained mid-flight work after Start's
// context was cancelled.
func (s *Service) Wait() {
	<-s.done
}

// Enqueue hands a message to the worker without blocking
func (s *Service) Enqueue(msg Message) {
	if len(msg.Recipients) == 0 {
		return
	}
	select {
	case s.queue <- msg:
	default:
		s.logger.Warn("notification queue full, dropping message",
			zap.String("subject", msg.Subject),
		)
	}
}

// NotifyMeeting renders and enqueues a meeting notification of the
// given kind. For ModifyRequest, body carries the requester's message
// and from their name.
func (s *Service) NotifyMeeting(kind Kind, meeting *entities.Meeting, attendees []*entities.Attendee,
	recipients []string, from, body string) error {
	var (
		subject string
		html    string
		err     error
	)
	switch kind {
	case KindNotice:
		subject = "Meeting notice - " + meeting.Title
		html, err = renderMinutes(meeting, attendees, true)
	case KindMinute:
		subject = "Meeting minutes - " + meeting.Title
		html, err = renderMinutes(meeting, attendees, false)
	case KindModifyRequest:
		subject = "Minutes modification request - " + meeting.Title
		html, err = renderModifyRequest(meeting, from, body)
	default:
		return fmt.Errorf("unknown notification kind %q", kind)
	}
	if err != nil {
		return fmt.Errorf("failed to render %s notification: %w", kind, err)
	}

	s.Enqueue(Message{Subject: subject, HTML: html, Recipients: recipients})
	return nil
}

// NotifyPasswordRecovery emails a freshly generated password
func (s *Service) NotifyPasswordRecovery(email, name, password string) error {
	html, err := renderPasswordRecovery(name, password)
	if err != nil {
		return fmt.Errorf("failed to render recovery mail: %w", err)
	}
	s.Enqueue(Message{
		Subject:    "Password recovery - Meeting Records",
		HTML:       html,
		Recipients: []string{email},
	})
	return nil
}
