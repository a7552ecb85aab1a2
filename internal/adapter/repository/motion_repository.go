package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/csiedev/meeting-records/internal/domain/entities"
	"github.com/csiedev/meeting-records/internal/domain/repositories"
)

// motionRepository implements the MotionRepository interface
type motionRepository struct {
	db *gorm.DB
}

// NewMotionRepository creates a new motion repository
func NewMotionRepository(db *gorm.DB) repositories.MotionRepository {
	return &motionRepository{db: db}
}

// Create persists a new motion
func (r *motionRepository) Create(ctx context.Context, motion *entities.Motion) error {
	return r.db.WithContext(ctx).Create(motion).Error
}

// FindByID retrieves a motion with its meeting preloaded
func (r *motionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.Motion, error) {
	var motion entities.Motion
	err := r.db.WithContext(ctx).
		Preload("Meeting").
		Where("id = ?", id).
		First(&motion).Error
	if err != nil {
		return nil, err
	}
	return &motion, nil
}

// Update saves an existing motion
func (r *motionRepository) Update(ctx context.Context, motion *entities.Motion) error {
	return r.db.WithContext(ctx).
		Model(&entities.Motion{}).
		Where("id = ?", motion.ID).
		Updates(map[string]interface{}{
			"description": motion.Description,
			"content":     motion.Content,
			"status":      motion.Status,
			"resolution":  motion.Resolution,
			"execution":   motion.Execution,
		}).Error
}

// Delete removes a motion
func (r *motionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entities.Motion{}, "id = ?", id).Error
}

// ListByMeeting retrieves the motions of one meeting
func (r *motionRepository) ListByMeeting(ctx context.Context, meetingID uuid.UUID) ([]*entities.Motion, error) {
	var motions []*entities.Motion
	err := r.db.WithContext(ctx).
		Where("meeting_id = ?", meetingID).
		Find(&motions).Error
	return motions, err
}

// ListVisible retrieves motions for decision tracking, ordered by
// status then meeting time.
func (r *motionRepository) ListVisible(ctx context.Context, visible *uuid.UUID) ([]*entities.Motion, error) {
	query := r.db.WithContext(ctx).
		Model(&entities.Motion{}).
		Joins("JOIN meetings ON meetings.id = motions.meeting_id")

	if visible != nil {
		query = query.Where(
			"meetings.chair_id = ? OR meetings.minute_taker_id = ? OR meetings.id IN (?)",
			*visible, *visible,
			r.db.WithContext(ctx).Session(&gorm.Session{NewDB: true}).
				Model(&entities.Attendee{}).
				Select("meeting_id").
				Where("person_id = ?", *visible),
		)
	}

	var motions []*entities.Motion
	err := query.
		Preload("Meeting").
		Order("motions.status, meetings.time").
		Find(&motions).Error
	return motions, err
}

// CountByStatusInRange counts motions of meetings in [from, to) grouped by status
func (r *motionRepository) CountByStatusInRange(ctx context.Context, from, to time.Time) (map[entities.MotionStatus]int64, error) {
	type row struct {
		Status entities.MotionStatus
		Count  int64
	}
	var rows []row
	err := r.db.WithContext(ctx).
		Model(&entities.Motion{}).
		Select("motions.status AS status, COUNT(*) AS count").
		Joins("JOIN meetings ON meetings.id = motions.meeting_id").
		Where("meetings.time >= ? AND meetings.time < ?", from, to).
		Group("motions.status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	counts := make(map[entities.MotionStatus]int64, len(rows))
	for _, r := range rows {
		counts[r.Status] = r.Count
	}
	return counts, nil
}

// CountInRange counts motions of meetings in [from, to)
func (r *motionRepository) CountInRange(ctx context.Context, from, to time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entities.Motion{}).
		Joins("JOIN meetings ON meetings.id = motions.meeting_id").
		Where("meetings.time >= ? AND meetings.time < ?", from, to).
		Count(&count).Error
	return count, err
}
