package motion

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/csiedev/meeting-records/internal/domain/entities"
	"github.com/csiedev/meeting-records/internal/domain/repositories"
	usecaseErrors "github.com/csiedev/meeting-records/internal/usecase/errors"
)

type fakeMotionRepo struct {
	motions map[uuid.UUID]*entities.Motion
}

func newFakeMotionRepo() *fakeMotionRepo {
	return &fakeMotionRepo{motions: make(map[uuid.UUID]*entities.Motion)}
}

func (r *fakeMotionRepo) Create(ctx context.Context, motion *entities.Motion) error {
	stored := *motion
	r.motions[motion.ID] = &stored
	return nil
}

func (r *fakeMotionRepo) FindByID(ctx context.Context, id uuid.UUID) (*entities.Motion, error) {
	m, ok := r.motions[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	out := *m
	return &out, nil
}

func (r *fakeMotionRepo) Update(ctx context.Context, motion *entities.Motion) error {
	if _, ok := r.motions[motion.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	stored := *motion
	r.motions[motion.ID] = &stored
	return nil
}

func (r *fakeMotionRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.motions, id)
	return nil
}

func (r *fakeMotionRepo) ListByMeeting(ctx context.Context, meetingID uuid.UUID) ([]*entities.Motion, error) {
	var out []*entities.Motion
	for _, m := range r.motions {
		if m.MeetingID == meetingID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *fakeMotionRepo) ListVisible(ctx context.Context, visibleTo *uuid.UUID) ([]*entities.Motion, error) {
	var out []*entities.Motion
	for _, m := range r.motions {
		out = append(out, m)
	}
	return out, nil
}

func (r *fakeMotionRepo) CountByStatusInRange(ctx context.Context, from, to time.Time) (map[entities.MotionStatus]int64, error) {
	return map[entities.MotionStatus]int64{}, nil
}

func (r *fakeMotionRepo) CountInRange(ctx context.Context, from, to time.Time) (int64, error) {
	return int64(len(r.motions)), nil
}

// fakeMeetingRepo only answers FindByID; the motion service needs
// nothing else from it
type fakeMeetingRepo struct {
	meetings map[uuid.UUID]*entities.Meeting
}

func (r *fakeMeetingRepo) Create(ctx context.Context, meeting *entities.Meeting) error { return nil }

func (r *fakeMeetingRepo) FindByID(ctx context.Context, id uuid.UUID) (*entities.Meeting, error) {
	m, ok := r.meetings[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return m, nil
}

func (r *fakeMeetingRepo) Update(ctx context.Context, meeting *entities.Meeting) error { return nil }

func (r *fakeMeetingRepo) ReplaceAgenda(ctx context.Context, meetingID uuid.UUID, announcements []entities.Announcement,
	motions []entities.Motion, extempores []entities.Extempore) error {
	return nil
}

func (r *fakeMeetingRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }

func (r *fakeMeetingRepo) List(ctx context.Context, filters repositories.MeetingFilters) ([]*entities.Meeting, int64, error) {
	return nil, 0, nil
}

func (r *fakeMeetingRepo) SearchAgenda(ctx context.Context, query string, visibleTo *uuid.UUID) ([]*entities.Meeting, error) {
	return nil, nil
}

func (r *fakeMeetingRepo) DistinctYears(ctx context.Context) ([]int, error) { return nil, nil }

func (r *fakeMeetingRepo) CountInRange(ctx context.Context, from, to time.Time) (int64, error) {
	return 0, nil
}

func (r *fakeMeetingRepo) CountByMonth(ctx context.Context, from, to time.Time) ([]repositories.MonthCount, error) {
	return nil, nil
}

func (r *fakeMeetingRepo) SetChairConfirmed(ctx context.Context, meetingID uuid.UUID, confirmed bool) error {
	return nil
}

func (r *fakeMeetingRepo) SetArchived(ctx context.Context, meetingID uuid.UUID, archived bool) error {
	return nil
}

func newTestService() (*MotionService, *fakeMotionRepo, uuid.UUID) {
	motionRepo := newFakeMotionRepo()
	meetingID := uuid.New()
	meetingRepo := &fakeMeetingRepo{meetings: map[uuid.UUID]*entities.Meeting{
		meetingID: {ID: meetingID, Title: "Department Affairs Meeting"},
	}}
	return NewMotionService(motionRepo, meetingRepo), motionRepo, meetingID
}

func TestCreateMotionDefaultsToInDiscussion(t *testing.T) {
	svc, _, meetingID := newTestService()

	m, err := svc.CreateMotion(context.Background(), CreateMotionInput{
		MeetingID:   meetingID,
		Description: "lab equipment budget",
	})
	if err != nil {
		t.Fatalf("CreateMotion failed: %v", err)
	}
	if m.Status != entities.MotionInDiscussion {
		t.Fatalf("status = %q, want %q", m.Status, entities.MotionInDiscussion)
	}
}

func TestCreateMotionValidation(t *testing.T) {
	svc, _, meetingID := newTestService()
	ctx := context.Background()

	_, err := svc.CreateMotion(ctx, CreateMotionInput{
		MeetingID: uuid.New(), Description: "x",
	})
	if !errors.Is(err, usecaseErrors.ErrMeetingNotFound) {
		t.Fatalf("expected ErrMeetingNotFound, got %v", err)
	}

	_, err = svc.CreateMotion(ctx, CreateMotionInput{
		MeetingID: meetingID, Description: "x", Status: entities.MotionStatus("Rejected"),
	})
	if !errors.Is(err, usecaseErrors.ErrInvalidMotionStatus) {
		t.Fatalf("expected ErrInvalidMotionStatus, got %v", err)
	}
}

func TestUpdateMotionStatusFreeTransitions(t *testing.T) {
	svc, _, meetingID := newTestService()
	ctx := context.Background()

	m, err := svc.CreateMotion(ctx, CreateMotionInput{
		MeetingID: meetingID, Description: "x", Status: entities.MotionClosed,
	})
	if err != nil {
		t.Fatalf("CreateMotion failed: %v", err)
	}

	// any enumerated status may follow any other, including reopening
	// a closed motion
	for _, status := range []entities.MotionStatus{
		entities.MotionInDiscussion,
		entities.MotionInExecution,
		entities.MotionClosed,
		entities.MotionInExecution,
	} {
		got, err := svc.UpdateMotionStatus(ctx, m.ID, status)
		if err != nil {
			t.Fatalf("UpdateMotionStatus(%q) failed: %v", status, err)
		}
		if got.Status != status {
			t.Fatalf("status = %q, want %q", got.Status, status)
		}
	}

	if _, err := svc.UpdateMotionStatus(ctx, m.ID, entities.MotionStatus("Paused")); !errors.Is(err, usecaseErrors.ErrInvalidMotionStatus) {
		t.Fatalf("expected ErrInvalidMotionStatus, got %v", err)
	}
}

func TestUpdateMotion(t *testing.T) {
	svc, repo, meetingID := newTestService()
	ctx := context.Background()

	m, err := svc.CreateMotion(ctx, CreateMotionInput{
		MeetingID: meetingID, Description: "old", Content: "old content",
	})
	if err != nil {
		t.Fatalf("CreateMotion failed: %v", err)
	}

	got, err := svc.UpdateMotion(ctx, UpdateMotionInput{
		ID:          m.ID,
		Description: "new",
		Content:     "new content",
		Status:      entities.MotionInExecution,
		Resolution:  "approved 7-1",
		Execution:   "ordered",
	})
	if err != nil {
		t.Fatalf("UpdateMotion failed: %v", err)
	}
	if got.Description != "new" || got.Status != entities.MotionInExecution || got.Resolution != "approved 7-1" {
		t.Fatalf("unexpected motion after update: %+v", got)
	}

	stored := repo.motions[m.ID]
	if stored.Execution != "ordered" {
		t.Fatalf("update not persisted: %+v", stored)
	}
}

func TestDeleteMotion(t *testing.T) {
	svc, repo, meetingID := newTestService()
	ctx := context.Background()

	m, err := svc.CreateMotion(ctx, CreateMotionInput{MeetingID: meetingID, Description: "x"})
	if err != nil {
		t.Fatalf("CreateMotion failed: %v", err)
	}
	if err := svc.DeleteMotion(ctx, m.ID); err != nil {
		t.Fatalf("DeleteMotion failed: %v", err)
	}
	if len(repo.motions) != 0 {
		t.Fatalf("motion still stored after delete")
	}
	if err := svc.DeleteMotion(ctx, m.ID); !errors.Is(err, usecaseErrors.ErrMotionNotFound) {
		t.Fatalf("expected ErrMotionNotFound, got %v", err)
	}
}
