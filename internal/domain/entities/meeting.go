package entities

import (
	"time"

	"github.com/google/uuid"
)

// MeetingType represents the committee category of a meeting
type MeetingType string

const (
	MeetingTypeDeptAffairs       MeetingType = "DeptAffairs"
	MeetingTypeFacultyEvaluation MeetingType = "FacultyEvaluation"
	MeetingTypeDeptCurriculum    MeetingType = "DeptCurriculum"
	MeetingTypeStudentAffairs    MeetingType = "StudentAffairs"
	MeetingTypeDeptDevelopment   MeetingType = "DeptDevelopment"
	MeetingTypeOther             MeetingType = "Other"
)

// IsValid checks if the meeting type is valid
func (t MeetingType) IsValid() bool {
	switch t {
	case MeetingTypeDeptAffairs, MeetingTypeFacultyEvaluation, MeetingTypeDeptCurriculum,
		MeetingTypeStudentAffairs, MeetingTypeDeptDevelopment, MeetingTypeOther:
		return true
	}
	return false
}

// Meeting is a meeting record with its agenda and attendance ledger.
// Chair and minute taker are directory references and need not attend.
type Meeting struct {
	ID       uuid.UUID   `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Title    string      `gorm:"type:varchar(200);not null" json:"title"`
	Type     MeetingType `gorm:"type:varchar(30);not null;index" json:"type"`
	Time     time.Time   `gorm:"not null;index" json:"time"`
	Location string      `gorm:"type:varchar(50);not null" json:"location"`
	IsDraft  bool        `gorm:"default:true;not null" json:"is_draft"`

	ChairID        uuid.UUID `gorm:"type:uuid;not null;index" json:"chair_id"`
	Chair          *Person   `gorm:"foreignKey:ChairID" json:"chair,omitempty"`
	ChairSpeech    string    `gorm:"type:text" json:"chair_speech"`
	ChairConfirmed bool      `gorm:"default:false;not null" json:"chair_confirmed"`

	MinuteTakerID uuid.UUID `gorm:"type:uuid;not null;index" json:"minute_taker_id"`
	MinuteTaker   *Person   `gorm:"foreignKey:MinuteTakerID" json:"minute_taker,omitempty"`

	// Archived is set once every required confirmation is in. One-way:
	// revoking a confirmation afterwards does not clear it.
	Archived bool `gorm:"default:false;not null" json:"archived"`

	Attachments   []Attachment   `gorm:"foreignKey:MeetingID;constraint:OnDelete:CASCADE" json:"attachments,omitempty"`
	Announcements []Announcement `gorm:"foreignKey:MeetingID;constraint:OnDelete:CASCADE" json:"announcements,omitempty"`
	Extempores    []Extempore    `gorm:"foreignKey:MeetingID;constraint:OnDelete:CASCADE" json:"extempores,omitempty"`
	Motions       []Motion       `gorm:"foreignKey:MeetingID;constraint:OnDelete:CASCADE" json:"motions,omitempty"`
	Attendees     []Attendee     `gorm:"foreignKey:MeetingID;constraint:OnDelete:CASCADE" json:"attendees,omitempty"`

	CreatedAt time.Time `gorm:"default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"default:now()" json:"updated_at"`
}

// TableName specifies the table name for Meeting
func (Meeting) TableName() string {
	return "meetings"
}

// IsFullyConfirmed reports whether the chair and every attendee have
// confirmed the minutes. Guests count the same as members.
func (m *Meeting) IsFullyConfirmed() bool {
	if !m.ChairConfirmed {
		return false
	}
	for i := range m.Attendees {
		if !m.Attendees[i].IsConfirmed {
			return false
		}
	}
	return true
}

// Attendee records one person's attendance for one meeting.
// Owned by the meeting: deleting the meeting deletes its ledger.
type Attendee struct {
	MeetingID   uuid.UUID `gorm:"type:uuid;primary_key" json:"meeting_id"`
	PersonID    uuid.UUID `gorm:"type:uuid;primary_key" json:"person_id"`
	Person      *Person   `gorm:"foreignKey:PersonID" json:"person,omitempty"`
	IsMember    bool      `gorm:"default:true;not null" json:"is_member"`
	IsPresent   bool      `gorm:"default:false;not null" json:"is_present"`
	IsConfirmed bool      `gorm:"default:false;not null" json:"is_confirmed"`
}

// TableName specifies the table name for Attendee
func (Attendee) TableName() string {
	return "attendees"
}

// Attachment is a stored file attached to a meeting. The object itself
// lives in object storage under ObjectKey.
type Attachment struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	MeetingID uuid.UUID `gorm:"type:uuid;not null;index" json:"meeting_id"`
	Filename  string    `gorm:"type:varchar(200);not null" json:"filename"`
	ObjectKey string    `gorm:"type:varchar(300);not null" json:"object_key"`
	CreatedAt time.Time `gorm:"default:now()" json:"created_at"`
}

// TableName specifies the table name for Attachment
func (Attachment) TableName() string {
	return "attachments"
}

// Announcement is a free-text agenda announcement
type Announcement struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	MeetingID uuid.UUID `gorm:"type:uuid;not null;index" json:"meeting_id"`
	Content   string    `gorm:"type:text;not null" json:"content"`
}

// TableName specifies the table name for Announcement
func (Announcement) TableName() string {
	return "announcements"
}

// Extempore is a free-text item raised outside the prepared agenda
type Extempore struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	MeetingID uuid.UUID `gorm:"type:uuid;not null;index" json:"meeting_id"`
	Content   string    `gorm:"type:text;not null" json:"content"`
}

// TableName specifies the table name for Extempore
func (Extempore) TableName() string {
	return "extempores"
}
