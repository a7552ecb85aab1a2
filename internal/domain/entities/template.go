package entities

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// MeetingTemplate prefills the recurring parts of a meeting record:
// committee type, location, chair, minute taker and the usual attendee
// and guest lists. The id lists are stored as JSONB arrays.
type MeetingTemplate struct {
	ID            uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name          string         `gorm:"type:varchar(100);not null" json:"name"`
	Title         string         `gorm:"type:varchar(200);not null" json:"title"`
	Time          string         `gorm:"type:varchar(20)" json:"time"` // time of day, e.g. "14:00"
	Location      string         `gorm:"type:varchar(50)" json:"location"`
	Type          MeetingType    `gorm:"type:varchar(30);not null" json:"type"`
	ChairID       uuid.UUID      `gorm:"type:uuid;not null" json:"chair_id"`
	MinuteTakerID uuid.UUID      `gorm:"type:uuid;not null" json:"minute_taker_id"`
	AttendeeIDs   datatypes.JSON `gorm:"type:jsonb;default:'[]'" json:"attendee_ids"`
	GuestIDs      datatypes.JSON `gorm:"type:jsonb;default:'[]'" json:"guest_ids"`
	CreatedAt     time.Time      `gorm:"default:now()" json:"created_at"`
}

// TableName specifies the table name for MeetingTemplate
func (MeetingTemplate) TableName() string {
	return "meeting_templates"
}

// SetAttendeeIDs stores the attendee id list as JSONB
func (t *MeetingTemplate) SetAttendeeIDs(ids []uuid.UUID) error {
	b, err := json.Marshal(ids)
	if err != nil {
		return err
	}
	t.AttendeeIDs = b
	return nil
}

// SetGuestIDs stores the guest id list as JSONB
func (t *MeetingTemplate) SetGuestIDs(ids []uuid.UUID) error {
	b, err := json.Marshal(ids)
	if err != nil {
		return err
	}
	t.GuestIDs = b
	return nil
}

// AttendeeIDList decodes the attendee id list
func (t *MeetingTemplate) AttendeeIDList() ([]uuid.UUID, error) {
	return decodeIDList(t.AttendeeIDs)
}

// GuestIDList decodes the guest id list
func (t *MeetingTemplate) GuestIDList() ([]uuid.UUID, error) {
	return decodeIDList(t.GuestIDs)
}

func decodeIDList(raw datatypes.JSON) ([]uuid.UUID, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var ids []uuid.UUID
	if err := json.Unmarshal(raw, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// Feedback is an anonymous free-text note from students
type Feedback struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	CreatedAt time.Time `gorm:"default:now()" json:"created_at"`
}

// TableName specifies the table name for Feedback
func (Feedback) TableName() string {
	return "feedback"
}
