package entities

import (
	"time"

	"github.com/google/uuid"
)

// MotionStatus represents the tracking status of a motion.
// Status is a free field: any enumerated value may be assigned at any
// time; only the set of values is validated, not the transition order.
type MotionStatus string

const (
	MotionInDiscussion MotionStatus = "InDiscussion"
	MotionInExecution  MotionStatus = "InExecution"
	MotionClosed       MotionStatus = "Closed"
)

// IsValid checks if the motion status is valid
func (s MotionStatus) IsValid() bool {
	switch s {
	case MotionInDiscussion, MotionInExecution, MotionClosed:
		return true
	}
	return false
}

// Motion is a discussion/decision item tracked to resolution
type Motion struct {
	ID          uuid.UUID    `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	MeetingID   uuid.UUID    `gorm:"type:uuid;not null;index" json:"meeting_id"`
	Meeting     *Meeting     `gorm:"foreignKey:MeetingID" json:"meeting,omitempty"`
	Description string       `gorm:"type:text;not null" json:"description"`
	Content     string       `gorm:"type:text" json:"content"`
	Status      MotionStatus `gorm:"type:varchar(20);not null;default:'InDiscussion';index" json:"status"`
	Resolution  string       `gorm:"type:text" json:"resolution"`
	Execution   string       `gorm:"type:text" json:"execution"`

	CreatedAt time.Time `gorm:"default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"default:now()" json:"updated_at"`
}

// TableName specifies the table name for Motion
func (Motion) TableName() string {
	return "motions"
}

// IsClosed checks if the motion has been closed
func (m *Motion) IsClosed() bool {
	return m.Status == MotionClosed
}
