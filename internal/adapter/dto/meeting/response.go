package meeting

import (
	"time"

	personDTO "github.com/csiedev/meeting-records/internal/adapter/dto/person"
)

// AttendeeResponse represents one row of the attendance ledger
type AttendeeResponse struct {
	Person      *personDTO.PersonResponse `json:"person"`
	IsMember    bool                      `json:"is_member"`
	IsPresent   bool                      `json:"is_present"`
	IsConfirmed bool                      `json:"is_confirmed"`
}

// AttachmentResponse represents one uploaded attachment
type AttachmentResponse struct {
	ID        string    `json:"id"`
	Filename  string    `json:"filename"`
	CreatedAt time.Time `json:"created_at"`
}

// AnnouncementResponse represents one announcement of the agenda
type AnnouncementResponse struct {
	ID      string `json:"id"`
	Content string `json:"content"`
}

// ExtemporeResponse represents one extempore item of the agenda
type ExtemporeResponse struct {
	ID      string `json:"id"`
	Content string `json:"content"`
}

// MotionResponse represents one motion of the agenda
type MotionResponse struct {
	ID          string    `json:"id"`
	MeetingID   string    `json:"meeting_id"`
	Description string    `json:"description"`
	Content     string    `json:"content"`
	Status      string    `json:"status"`
	Resolution  string    `json:"resolution"`
	Execution   string    `json:"execution"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// MeetingResponse represents one meeting record
type MeetingResponse struct {
	ID             string                    `json:"id"`
	Title          string                    `json:"title"`
	Type           string                    `json:"type"`
	Time           time.Time                 `json:"time"`
	Location       string                    `json:"location"`
	IsDraft        bool                      `json:"is_draft"`
	Chair          *personDTO.PersonResponse `json:"chair"`
	ChairSpeech    string                    `json:"chair_speech"`
	ChairConfirmed bool                      `json:"chair_confirmed"`
	MinuteTaker    *personDTO.PersonResponse `json:"minute_taker"`
	Archived       bool                      `json:"archived"`

	Announcements []AnnouncementResponse `json:"announcements,omitempty"`
	Motions       []MotionResponse       `json:"motions,omitempty"`
	Extempores    []ExtemporeResponse    `json:"extempores,omitempty"`
	Attendees     []AttendeeResponse     `json:"attendees,omitempty"`
	Attachments   []AttachmentResponse   `json:"attachments,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ConfirmResponse reports the confirmation outcome
type ConfirmResponse struct {
	Archived bool `json:"archived"`
}

// YearGroupResponse is one year of the historical index
type YearGroupResponse struct {
	Year     int               `json:"year"`
	Meetings []MeetingResponse `json:"meetings"`
}

// AttachmentURLResponse carries a presigned download URL
type AttachmentURLResponse struct {
	URL string `json:"url"`
}
