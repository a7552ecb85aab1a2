package meeting

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	usecaseErrors "github.com/csiedev/meeting-records/internal/usecase/errors"
)

// Confirm records that a participant has acknowledged the minutes. The
// chair confirms through the meeting's own flag, everyone else through
// their ledger row. When the chair and every attendee (guests count the
// same as members) have confirmed, the meeting is archived. The whole
// confirm/evaluate/archive sequence is serialized per meeting so two
// confirmations near the threshold cannot race.
func (s *MeetingService) Confirm(ctx context.Context, meetingID, personID uuid.UUID) (bool, error) {
	unlock := s.locks.lock(meetingID)
	defer unlock()

	meeting, err := s.GetMeeting(ctx, meetingID)
	if err != nil {
		return false, err
	}

	chairConfirmed := meeting.ChairConfirmed
	if personID == meeting.ChairID {
		if err := s.meetingRepo.SetChairConfirmed(ctx, meetingID, true); err != nil {
			return false, fmt.Errorf("failed to confirm chair: %w", err)
		}
		chairConfirmed = true
	} else {
		if err := s.attendeeRepo.SetConfirmed(ctx, meetingID, personID, true); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return false, usecaseErrors.ErrAttendeeNotFound
			}
			return false, fmt.Errorf("failed to confirm attendee: %w", err)
		}
	}

	if meeting.Archived {
		return true, nil
	}
	if !chairConfirmed {
		return false, nil
	}
	unconfirmed, err := s.attendeeRepo.CountUnconfirmed(ctx, meetingID)
	if err != nil {
		return false, fmt.Errorf("failed to evaluate confirmations: %w", err)
	}
	if unconfirmed > 0 {
		return false, nil
	}

	if err := s.meetingRepo.SetArchived(ctx, meetingID, true); err != nil {
		return false, fmt.Errorf("failed to archive meeting: %w", err)
	}
	return true, nil
}

// RevokeConfirmation clears a participant's confirmation flag. Archival
// is one-way: revoking after the meeting was archived leaves the
// archived flag set.
func (s *MeetingService) RevokeConfirmation(ctx context.Context, meetingID, personID uuid.UUID) error {
	unlock := s.locks.lock(meetingID)
	defer unlock()

	meeting, err := s.GetMeeting(ctx, meetingID)
	if err != nil {
		return err
	}

	if personID == meeting.ChairID {
		if err := s.meetingRepo.SetChairConfirmed(ctx, meetingID, false); err != nil {
			return fmt.Errorf("failed to revoke chair confirmation: %w", err)
		}
		return nil
	}
	if err := s.attendeeRepo.SetConfirmed(ctx, meetingID, personID, false); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return usecaseErrors.ErrAttendeeNotFound
		}
		return fmt.Errorf("failed to revoke attendee confirmation: %w", err)
	}
	return nil
}
