package meeting

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	usecaseErrors "github.com/csiedev/meeting-records/internal/usecase/errors"
)

// SetAttendees replaces the full attendee/guest partition of a meeting.
// Membership is explicit per id; ids in both lists are rejected and
// every id must resolve to a directory entry. Surviving ledger rows
// keep their presence and confirmation flags.
func (s *MeetingService) SetAttendees(ctx context.Context, meetingID uuid.UUID, memberIDs, guestIDs []uuid.UUID) error {
	if _, err := s.GetMeeting(ctx, meetingID); err != nil {
		return err
	}
	members, guests, err := s.resolvePartition(ctx, memberIDs, guestIDs)
	if err != nil {
		return err
	}
	if err := s.attendeeRepo.Replace(ctx, meetingID, members, guests); err != nil {
		return fmt.Errorf("failed to replace attendees: %w", err)
	}
	return nil
}

// MarkPresent overwrites presence for every attendee of the meeting:
// present iff the person id is listed. Idempotent.
func (s *MeetingService) MarkPresent(ctx context.Context, meetingID uuid.UUID, presentIDs []uuid.UUID) error {
	if _, err := s.GetMeeting(ctx, meetingID); err != nil {
		return err
	}
	if err := s.attendeeRepo.SetPresence(ctx, meetingID, presentIDs); err != nil {
		return fmt.Errorf("failed to set presence: %w", err)
	}
	return nil
}

// resolvePartition deduplicates both lists, rejects ids present in
// both, and checks that every id resolves to a person.
func (s *MeetingService) resolvePartition(ctx context.Context, memberIDs, guestIDs []uuid.UUID) ([]uuid.UUID, []uuid.UUID, error) {
	members := dedupe(memberIDs)
	guests := dedupe(guestIDs)

	seen := make(map[uuid.UUID]bool, len(members))
	for _, id := range members {
		seen[id] = true
	}
	for _, id := range guests {
		if seen[id] {
			return nil, nil, usecaseErrors.ErrDuplicateAttendee
		}
	}

	union := append(append([]uuid.UUID{}, members...), guests...)
	if len(union) > 0 {
		people, err := s.personRepo.FindByIDs(ctx, union)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to resolve attendees: %w", err)
		}
		if len(people) != len(union) {
			return nil, nil, usecaseErrors.ErrUnknownPersonInSet
		}
	}
	return members, guests, nil
}

func dedupe(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]bool, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}
