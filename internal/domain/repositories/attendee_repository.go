package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/csiedev/meeting-records/internal/domain/entities"
)

// AttendeeRepository defines the interface for attendance-ledger access
type AttendeeRepository interface {
	// Replace diffs the ledger against the given member/guest partition
	// in one transaction: rows outside the union are deleted, missing
	// rows inserted, membership flags rewritten. Presence and
	// confirmation flags of surviving rows are kept.
	Replace(ctx context.Context, meetingID uuid.UUID, memberIDs, guestIDs []uuid.UUID) error

	// FindByMeeting retrieves the ledger for a meeting with people
	// preloaded, members first
	FindByMeeting(ctx context.Context, meetingID uuid.UUID) ([]*entities.Attendee, error)

	// FindByMeetingAndPerson retrieves a single ledger row
	FindByMeetingAndPerson(ctx context.Context, meetingID, personID uuid.UUID) (*entities.Attendee, error)

	// SetPresence overwrites presence for every row of the meeting:
	// true iff the person id is in presentIDs
	SetPresence(ctx context.Context, meetingID uuid.UUID, presentIDs []uuid.UUID) error

	// SetConfirmed sets the confirmation flag of one ledger row
	SetConfirmed(ctx context.Context, meetingID, personID uuid.UUID, confirmed bool) error

	// CountUnconfirmed counts ledger rows that have not confirmed
	CountUnconfirmed(ctx context.Context, meetingID uuid.UUID) (int64, error)
}
