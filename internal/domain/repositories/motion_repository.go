package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/csiedev/meeting-records/internal/domain/entities"
)

// MotionRepository defines the interface for motion data access
type MotionRepository interface {
	// Create persists a new motion
	Create(ctx context.Context, motion *entities.Motion) error

	// FindByID retrieves a motion with its meeting preloaded
	FindByID(ctx context.Context, id uuid.UUID) (*entities.Motion, error)

	// Update saves an existing motion
	Update(ctx context.Context, motion *entities.Motion) error

	// Delete removes a motion
	Delete(ctx context.Context, id uuid.UUID) error

	// ListByMeeting retrieves the motions of one meeting
	ListByMeeting(ctx context.Context, meetingID uuid.UUID) ([]*entities.Motion, error)

	// ListVisible retrieves motions across meetings for decision
	// tracking, ordered by status then meeting time. VisibleTo nil
	// means no restriction (admin).
	ListVisible(ctx context.Context, visibleTo *uuid.UUID) ([]*entities.Motion, error)

	// CountByStatusInRange counts motions of meetings in [from, to)
	// grouped by status
	CountByStatusInRange(ctx context.Context, from, to time.Time) (map[entities.MotionStatus]int64, error)

	// CountInRange counts motions of meetings in [from, to)
	CountInRange(ctx context.Context, from, to time.Time) (int64, error)
}
