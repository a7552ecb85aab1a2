package notification

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/csiedev/meeting-records/internal/domain/entities"
)

type recordingMailer struct {
	mu   sync.Mutex
	sent []Message
}

func (m *recordingMailer) Send(ctx context.Context, msg Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, msg)
	return nil
}

func (m *recordingMailer) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sent)
}

func (m *recordingMailer) waitFor(t *testing.T, n int) []Message {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		m.mu.Lock()
		if len(m.sent) >= n {
			out := append([]Message(nil), m.sent...)
			m.mu.Unlock()
			return out
		}
		m.mu.Unlock()
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("mailer received %d messages, want %d", m.count(), n)
	return nil
}

func testMeeting() (*entities.Meeting, []*entities.Attendee) {
	meeting := &entities.Meeting{
		ID:          uuid.New(),
		Title:       "Department Affairs Meeting",
		Type:        entities.MeetingTypeDeptAffairs,
		Time:        time.Date(2025, time.March, 5, 10, 0, 0, 0, time.UTC),
		Location:    "EC015",
		ChairSpeech: "welcome everyone",
		Motions: []entities.Motion{{
			Description: "lab equipment budget",
			Status:      entities.MotionInDiscussion,
			Resolution:  "approved 7-1",
		}},
	}
	attendees := []*entities.Attendee{
		{
			PersonID:  uuid.New(),
			Person:    &entities.Person{Name: "alice"},
			IsMember:  true,
			IsPresent: true,
		},
		{
			PersonID: uuid.New(),
			Person:   &entities.Person{Name: "guest gary"},
			IsMember: false,
		},
	}
	return meeting, attendees
}

func TestWorkerDeliversEnqueuedMessages(t *testing.T) {
	mailer := &recordingMailer{}
	svc := NewService(mailer, zap.NewNop(), 8)
	ctx, cancel := context.WithCancel(context.Background())
	svc.Start(ctx)

	meeting, attendees := testMeeting()
	err := svc.NotifyMeeting(KindMinute, meeting, attendees,
		[]string{"alice@example.edu", "gary@example.edu"}, "", "")
	if err != nil {
		t.Fatalf("NotifyMeeting failed: %v", err)
	}

	sent := mailer.waitFor(t, 1)
	msg := sent[0]
	if !strings.Contains(msg.Subject, meeting.Title) {
		t.Fatalf("subject %q does not name the meeting", msg.Subject)
	}
	if len(msg.Recipients) != 2 {
		t.Fatalf("recipients = %v", msg.Recipients)
	}
	for _, want := range []string{"welcome everyone", "lab equipment budget", "approved 7-1", "guest gary", "(guest)"} {
		if !strings.Contains(msg.HTML, want) {
			t.Fatalf("minutes mail missing %q:\n%s", want, msg.HTML)
		}
	}

	cancel()
	svc.Wait()
}

func TestNoticeOmitsMinuteSections(t *testing.T) {
	mailer := &recordingMailer{}
	svc := NewService(mailer, zap.NewNop(), 8)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	svc.Start(ctx)

	meeting, attendees := testMeeting()
	if err := svc.NotifyMeeting(KindNotice, meeting, attendees, []string{"alice@example.edu"}, "", ""); err != nil {
		t.Fatalf("NotifyMeeting failed: %v", err)
	}

	msg := mailer.waitFor(t, 1)[0]
	// a notice announces the agenda but not the outcome
	for _, absent := range []string{"welcome everyone", "approved 7-1", "present"} {
		if strings.Contains(msg.HTML, absent) {
			t.Fatalf("notice mail leaked %q:\n%s", absent, msg.HTML)
		}
	}
	if !strings.Contains(msg.HTML, "lab equipment budget") {
		t.Fatalf("notice mail missing the agenda:\n%s", msg.HTML)
	}
}

func TestModifyRequestCarriesBody(t *testing.T) {
	mailer := &recordingMailer{}
	svc := NewService(mailer, zap.NewNop(), 8)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	svc.Start(ctx)

	meeting, _ := testMeeting()
	err := svc.NotifyMeeting(KindModifyRequest, meeting, nil,
		[]string{"taker@example.edu"}, "alice", "the budget figure is wrong")
	if err != nil {
		t.Fatalf("NotifyMeeting failed: %v", err)
	}

	msg := mailer.waitFor(t, 1)[0]
	if !strings.Contains(msg.HTML, "alice") || !strings.Contains(msg.HTML, "the budget figure is wrong") {
		t.Fatalf("modify request mail incomplete:\n%s", msg.HTML)
	}
}

func TestNotifyMeetingRejectsUnknownKind(t *testing.T) {
	svc := NewService(&recordingMailer{}, zap.NewNop(), 8)
	meeting, _ := testMeeting()
	if err := svc.NotifyMeeting(Kind("Broadcast"), meeting, nil, []string{"x@example.edu"}, "", ""); err == nil {
		t.Fatalf("expected error for unknown kind")
	}
}

func TestEnqueueNeverBlocks(t *testing.T) {
	// worker not started, queue of one: the second message must be
	// dropped instead of blocking the caller
	svc := NewService(&recordingMailer{}, zap.NewNop(), 1)

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 5; i++ {
			svc.Enqueue(Message{Subject: "s", Recipients: []string{"x@example.edu"}})
		}
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatalf("Enqueue blocked on a full queue")
	}
}

func TestEnqueueSkipsEmptyRecipients(t *testing.T) {
	mailer := &recordingMailer{}
	svc := NewService(mailer, zap.NewNop(), 1)
	svc.Enqueue(Message{Subject: "s"})
	// queue capacity is one; an enqueued empty-recipient message would
	// occupy it
	svc.Enqueue(Message{Subject: "real", Recipients: []string{"x@example.edu"}})

	ctx, cancel := context.WithCancel(context.Background())
	svc.Start(ctx)
	msg := mailer.waitFor(t, 1)[0]
	if msg.Subject != "real" {
		t.Fatalf("delivered %q, want the real message", msg.Subject)
	}
	cancel()
	svc.Wait()
}

func TestPasswordRecoveryMail(t *testing.T) {
	mailer := &recordingMailer{}
	svc := NewService(mailer, zap.NewNop(), 8)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	svc.Start(ctx)

	if err := svc.NotifyPasswordRecovery("alice@example.edu", "alice", "s3cr3tpass12"); err != nil {
		t.Fatalf("NotifyPasswordRecovery failed: %v", err)
	}
	msg := mailer.waitFor(t, 1)[0]
	if msg.Recipients[0] != "alice@example.edu" {
		t.Fatalf("recipients = %v", msg.Recipients)
	}
	if !strings.Contains(msg.HTML, "s3cr3tpass12") {
		t.Fatalf("recovery mail missing the password:\n%s", msg.HTML)
	}
}
