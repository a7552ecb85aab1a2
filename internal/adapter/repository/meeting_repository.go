package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/csiedev/meeting-records/internal/domain/entities"
	"github.com/csiedev/meeting-records/internal/domain/repositories"
)

// meetingRepository implements the MeetingRepository interface
type meetingRepository struct {
	db *gorm.DB
}

// NewMeetingRepository creates a new meeting repository
func NewMeetingRepository(db *gorm.DB) repositories.MeetingRepository {
	return &meetingRepository{db: db}
}

// visibleTo restricts a meetings query to records the person chairs,
// takes minutes for or attends.
func visibleTo(db *gorm.DB, personID uuid.UUID) *gorm.DB {
	return db.Where(
		"chair_id = ? OR minute_taker_id = ? OR id IN (?)",
		personID, personID,
		db.Session(&gorm.Session{NewDB: true}).
			Model(&entities.Attendee{}).
			Select("meeting_id").
			Where("person_id = ?", personID),
	)
}

// Create persists a meeting together with its owned collections
func (r *meetingRepository) Create(ctx context.Context, meeting *entities.Meeting) error {
	return r.db.WithContext(ctx).Create(meeting).Error
}

// FindByID retrieves a meeting with everything it owns preloaded
func (r *meetingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.Meeting, error) {
	var meeting entities.Meeting
	err := r.db.WithContext(ctx).
		Preload("Chair").
		Preload("MinuteTaker").
		Preload("Attendees", func(db *gorm.DB) *gorm.DB {
			return db.Order("is_member DESC")
		}).
		Preload("Attendees.Person").
		Preload("Motions").
		Preload("Announcements").
		Preload("Extempores").
		Preload("Attachments").
		Where("id = ?", id).
		First(&meeting).Error
	if err != nil {
		return nil, err
	}
	return &meeting, nil
}

// Update saves the scalar fields of an existing meeting
func (r *meetingRepository) Update(ctx context.Context, meeting *entities.Meeting) error {
	return r.db.WithContext(ctx).
		Model(&entities.Meeting{}).
		Where("id = ?", meeting.ID).
		Updates(map[string]interface{}{
			"title":           meeting.Title,
			"type":            meeting.Type,
			"time":            meeting.Time,
			"location":        meeting.Location,
			"is_draft":        meeting.IsDraft,
			"chair_id":        meeting.ChairID,
			"chair_speech":    meeting.ChairSpeech,
			"minute_taker_id": meeting.MinuteTakerID,
		}).Error
}

// ReplaceAgenda replaces the agenda collections wholesale
func (r *meetingRepository) ReplaceAgenda(ctx context.Context, meetingID uuid.UUID,
	announcements []entities.Announcement, motions []entities.Motion, extempores []entities.Extempore) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("meeting_id = ?", meetingID).Delete(&entities.Announcement{}).Error; err != nil {
			return err
		}
		if err := tx.Where("meeting_id = ?", meetingID).Delete(&entities.Motion{}).Error; err != nil {
			return err
		}
		if err := tx.Where("meeting_id = ?", meetingID).Delete(&entities.Extempore{}).Error; err != nil {
			return err
		}
		for i := range announcements {
			announcements[i].MeetingID = meetingID
		}
		for i := range motions {
			motions[i].MeetingID = meetingID
		}
		for i := range extempores {
			extempores[i].MeetingID = meetingID
		}
		if len(announcements) > 0 {
			if err := tx.Create(&announcements).Error; err != nil {
				return err
			}
		}
		if len(motions) > 0 {
			if err := tx.Create(&motions).Error; err != nil {
				return err
			}
		}
		if len(extempores) > 0 {
			if err := tx.Create(&extempores).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// Delete removes a meeting; owned rows go with it by cascade
func (r *meetingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entities.Meeting{}, "id = ?", id).Error
}

// List retrieves meetings with filters, newest first
func (r *meetingRepository) List(ctx context.Context, filters repositories.MeetingFilters) ([]*entities.Meeting, int64, error) {
	query := r.db.WithContext(ctx).Model(&entities.Meeting{})

	if filters.VisibleTo != nil {
		query = visibleTo(query, *filters.VisibleTo)
	}
	if filters.Type != nil {
		query = query.Where("type = ?", *filters.Type)
	}
	if filters.Year != nil {
		query = query.Where("EXTRACT(YEAR FROM time) = ?", *filters.Year)
	}
	if filters.Search != "" {
		pattern := "%" + filters.Search + "%"
		query = query.Where("title ILIKE ? OR chair_speech ILIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = query.Preload("Chair").Preload("MinuteTaker").Order("time DESC")
	if filters.Limit > 0 {
		query = query.Limit(filters.Limit)
	}
	if filters.Offset > 0 {
		query = query.Offset(filters.Offset)
	}

	var meetings []*entities.Meeting
	err := query.Find(&meetings).Error
	return meetings, total, err
}

// SearchAgenda retrieves meetings whose agenda items contain the query
func (r *meetingRepository) SearchAgenda(ctx context.Context, query string, visible *uuid.UUID) ([]*entities.Meeting, error) {
	pattern := "%" + query + "%"
	newSession := func() *gorm.DB {
		return r.db.WithContext(ctx).Session(&gorm.Session{NewDB: true})
	}

	q := r.db.WithContext(ctx).Model(&entities.Meeting{}).Where(
		"id IN (?) OR id IN (?) OR id IN (?)",
		newSession().Model(&entities.Announcement{}).Select("meeting_id").Where("content ILIKE ?", pattern),
		newSession().Model(&entities.Extempore{}).Select("meeting_id").Where("content ILIKE ?", pattern),
		newSession().Model(&entities.Motion{}).Select("meeting_id").Where(
			"description ILIKE ? OR content ILIKE ? OR resolution ILIKE ? OR execution ILIKE ?",
			pattern, pattern, pattern, pattern),
	)
	if visible != nil {
		q = visibleTo(q, *visible)
	}

	var meetings []*entities.Meeting
	err := q.Preload("Chair").Preload("MinuteTaker").Order("time DESC").Find(&meetings).Error
	return meetings, err
}

// DistinctYears lists the years that have at least one meeting
func (r *meetingRepository) DistinctYears(ctx context.Context) ([]int, error) {
	var years []int
	err := r.db.WithContext(ctx).
		Model(&entities.Meeting{}).
		Distinct().
		Order("EXTRACT(YEAR FROM time)::int DESC").
		Pluck("EXTRACT(YEAR FROM time)::int", &years).Error
	if err != nil {
		return nil, err
	}
	return years, nil
}

// CountInRange counts meetings scheduled in [from, to)
func (r *meetingRepository) CountInRange(ctx context.Context, from, to time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entities.Meeting{}).
		Where("time >= ? AND time < ?", from, to).
		Count(&count).Error
	return count, err
}

// CountByMonth counts meetings per calendar month in [from, to)
func (r *meetingRepository) CountByMonth(ctx context.Context, from, to time.Time) ([]repositories.MonthCount, error) {
	type row struct {
		Year  int
		Month int
		Count int64
	}
	var rows []row
	err := r.db.WithContext(ctx).
		Model(&entities.Meeting{}).
		Select("EXTRACT(YEAR FROM time)::int AS year, EXTRACT(MONTH FROM time)::int AS month, COUNT(*) AS count").
		Where("time >= ? AND time < ?", from, to).
		Group("year, month").
		Order("year, month").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	counts := make([]repositories.MonthCount, 0, len(rows))
	for _, r := range rows {
		counts = append(counts, repositories.MonthCount{Year: r.Year, Month: time.Month(r.Month), Count: r.Count})
	}
	return counts, nil
}

// SetChairConfirmed sets the chair's confirmation flag
func (r *meetingRepository) SetChairConfirmed(ctx context.Context, meetingID uuid.UUID, confirmed bool) error {
	res := r.db.WithContext(ctx).
		Model(&entities.Meeting{}).
		Where("id = ?", meetingID).
		Update("chair_confirmed", confirmed)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// SetArchived sets the archived flag
func (r *meetingRepository) SetArchived(ctx context.Context, meetingID uuid.UUID, archived bool) error {
	return r.db.WithContext(ctx).
		Model(&entities.Meeting{}).
		Where("id = ?", meetingID).
		Update("archived", archived).Error
}
