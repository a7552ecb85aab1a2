package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/csiedev/meeting-records/internal/domain/entities"
	"github.com/csiedev/meeting-records/internal/domain/repositories"
)

// attendeeRepository implements the AttendeeRepository interface
type attendeeRepository struct {
	db *gorm.DB
}

// NewAttendeeRepository creates a new attendee repository
func NewAttendeeRepository(db *gorm.DB) repositories.AttendeeRepository {
	return &attendeeRepository{db: db}
}

// Replace diffs the ledger against the member/guest partition in one
// transaction. Surviving rows keep their presence and confirmation
// flags; only membership is rewritten.
func (r *attendeeRepository) Replace(ctx context.Context, meetingID uuid.UUID, memberIDs, guestIDs []uuid.UUID) error {
	union := make([]uuid.UUID, 0, len(memberIDs)+len(guestIDs))
	union = append(union, memberIDs...)
	union = append(union, guestIDs...)

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		del := tx.Where("meeting_id = ?", meetingID)
		if len(union) > 0 {
			del = del.Where("person_id NOT IN ?", union)
		}
		if err := del.Delete(&entities.Attendee{}).Error; err != nil {
			return err
		}

		var existing []entities.Attendee
		if err := tx.Where("meeting_id = ?", meetingID).Find(&existing).Error; err != nil {
			return err
		}
		present := make(map[uuid.UUID]bool, len(existing))
		for _, a := range existing {
			present[a.PersonID] = true
		}

		upsert := func(ids []uuid.UUID, isMember bool) error {
			for _, id := range ids {
				if present[id] {
					if err := tx.Model(&entities.Attendee{}).
						Where("meeting_id = ? AND person_id = ?", meetingID, id).
						Update("is_member", isMember).Error; err != nil {
						return err
					}
					continue
				}
				row := entities.Attendee{MeetingID: meetingID, PersonID: id, IsMember: isMember}
				if err := tx.Create(&row).Error; err != nil {
					return err
				}
			}
			return nil
		}

		if err := upsert(memberIDs, true); err != nil {
			return err
		}
		return upsert(guestIDs, false)
	})
}

// FindByMeeting retrieves the ledger for a meeting, members first
func (r *attendeeRepository) FindByMeeting(ctx context.Context, meetingID uuid.UUID) ([]*entities.Attendee, error) {
	var attendees []*entities.Attendee
	err := r.db.WithContext(ctx).
		Preload("Person").
		Where("meeting_id = ?", meetingID).
		Order("is_member DESC").
		Find(&attendees).Error
	return attendees, err
}

// FindByMeetingAndPerson retrieves a single ledger row
func (r *attendeeRepository) FindByMeetingAndPerson(ctx context.Context, meetingID, personID uuid.UUID) (*entities.Attendee, error) {
	var attendee entities.Attendee
	err := r.db.WithContext(ctx).
		Preload("Person").
		Where("meeting_id = ? AND person_id = ?", meetingID, personID).
		First(&attendee).Error
	if err != nil {
		return nil, err
	}
	return &attendee, nil
}

// SetPresence overwrites presence for every row of the meeting
func (r *attendeeRepository) SetPresence(ctx context.Context, meetingID uuid.UUID, presentIDs []uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&entities.Attendee{}).
			Where("meeting_id = ?", meetingID).
			Update("is_present", false).Error; err != nil {
			return err
		}
		if len(presentIDs) == 0 {
			return nil
		}
		return tx.Model(&entities.Attendee{}).
			Where("meeting_id = ? AND person_id IN ?", meetingID, presentIDs).
			Update("is_present", true).Error
	})
}

// SetConfirmed sets the confirmation flag of one ledger row
func (r *attendeeRepository) SetConfirmed(ctx context.Context, meetingID, personID uuid.UUID, confirmed bool) error {
	res := r.db.WithContext(ctx).
		Model(&entities.Attendee{}).
		Where("meeting_id = ? AND person_id = ?", meetingID, personID).
		Update("is_confirmed", confirmed)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// CountUnconfirmed counts ledger rows that have not confirmed
func (r *attendeeRepository) CountUnconfirmed(ctx context.Context, meetingID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entities.Attendee{}).
		Where("meeting_id = ? AND is_confirmed = false", meetingID).
		Count(&count).Error
	return count, err
}
