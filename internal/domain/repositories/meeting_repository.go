package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/csiedev/meeting-records/internal/domain/entities"
)

// MeetingFilters represents filter options for listing meetings
type MeetingFilters struct {
	// VisibleTo restricts results to meetings the person chairs, takes
	// minutes for or attends. Nil means no restriction (admin).
	VisibleTo *uuid.UUID
	Type      *entities.MeetingType
	Year      *int
	Search    string // matched against title and chair speech
	Limit     int
	Offset    int
}

// MonthCount is a per-month meeting count used by statistics
type MonthCount struct {
	Year  int
	Month time.Month
	Count int64
}

// MeetingRepository defines the interface for meeting data access
type MeetingRepository interface {
	// Create persists a meeting together with its owned collections
	Create(ctx context.Context, meeting *entities.Meeting) error

	// FindByID retrieves a meeting with chair, minute taker, attendees
	// (and their people), motions, announcements, extempores and
	// attachment metadata preloaded
	FindByID(ctx context.Context, id uuid.UUID) (*entities.Meeting, error)

	// Update saves the scalar fields of an existing meeting
	Update(ctx context.Context, meeting *entities.Meeting) error

	// ReplaceAgenda replaces announcements, motions and extempore items
	// wholesale in one transaction
	ReplaceAgenda(ctx context.Context, meetingID uuid.UUID, announcements []entities.Announcement,
		motions []entities.Motion, extempores []entities.Extempore) error

	// Delete removes a meeting and, by cascade, everything it owns
	Delete(ctx context.Context, id uuid.UUID) error

	// List retrieves meetings with filters, newest first
	List(ctx context.Context, filters MeetingFilters) ([]*entities.Meeting, int64, error)

	// SearchAgenda retrieves meetings whose announcements, motions or
	// extempore items contain the query, visibility-filtered like List
	SearchAgenda(ctx context.Context, query string, visibleTo *uuid.UUID) ([]*entities.Meeting, error)

	// DistinctYears lists the years that have at least one meeting,
	// newest first
	DistinctYears(ctx context.Context) ([]int, error)

	// CountInRange counts meetings scheduled in [from, to)
	CountInRange(ctx context.Context, from, to time.Time) (int64, error)

	// CountByMonth counts meetings per calendar month in [from, to)
	CountByMonth(ctx context.Context, from, to time.Time) ([]MonthCount, error)

	// SetChairConfirmed sets the chair's confirmation flag
	SetChairConfirmed(ctx context.Context, meetingID uuid.UUID, confirmed bool) error

	// SetArchived sets the archived flag
	SetArchived(ctx context.Context, meetingID uuid.UUID, archived bool) error
}
