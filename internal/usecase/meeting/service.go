package meeting

import (
	"context"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/csiedev/meeting-records/internal/domain/entities"
	"github.com/csiedev/meeting-records/internal/domain/repositories"
)

// ObjectStore is the object-storage collaborator for attachment files.
// Implemented by the MinIO client in infrastructure/storage.
type ObjectStore interface {
	UploadFile(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) error
	PresignedURL(ctx context.Context, objectName, downloadName string, expiry time.Duration) (string, error)
	RemoveFile(ctx context.Context, objectName string) error
}

// MotionInput carries one motion of a meeting create/update request
type MotionInput struct {
	Description string
	Content     string
	Status      entities.MotionStatus
	Resolution  string
	Execution   string
}

// CreateMeetingInput represents input for creating a meeting record
type CreateMeetingInput struct {
	Title         string
	Type          entities.MeetingType
	Time          time.Time
	Location      string
	IsDraft       bool
	ChairID       uuid.UUID
	ChairSpeech   string
	MinuteTakerID uuid.UUID
	MemberIDs     []uuid.UUID
	GuestIDs      []uuid.UUID
	PresentIDs    []uuid.UUID
	Announcements []string
	Motions       []MotionInput
	Extempores    []string
}

// UpdateMeetingInput represents input for replacing a meeting record
type UpdateMeetingInput struct {
	CreateMeetingInput
	ID uuid.UUID
}

// YearGroup is one year of the historical meeting index
type YearGroup struct {
	Year     int
	Meetings []*entities.Meeting
}

// Service is the meeting usecase: record CRUD, the attendance ledger
// and the confirmation state machine.
type Service interface {
	CreateMeeting(ctx context.Context, input CreateMeetingInput) (*entities.Meeting, error)
	GetMeeting(ctx context.Context, id uuid.UUID) (*entities.Meeting, error)
	ListMeetings(ctx context.Context, filters repositories.MeetingFilters) ([]*entities.Meeting, int64, error)
	UpdateMeeting(ctx context.Context, input UpdateMeetingInput) (*entities.Meeting, error)
	DeleteMeeting(ctx context.Context, id uuid.UUID) error
	YearIndex(ctx context.Context) ([]YearGroup, error)

	// Attendance ledger
	SetAttendees(ctx context.Context, meetingID uuid.UUID, memberIDs, guestIDs []uuid.UUID) error
	MarkPresent(ctx context.Context, meetingID uuid.UUID, presentIDs []uuid.UUID) error

	// Confirmation state machine
	Confirm(ctx context.Context, meetingID, personID uuid.UUID) (archived bool, err error)
	RevokeConfirmation(ctx context.Context, meetingID, personID uuid.UUID) error

	// Attachments
	AddAttachment(ctx context.Context, meetingID uuid.UUID, filename string, reader io.Reader, size int64, contentType string) (*entities.Attachment, error)
	AttachmentURL(ctx context.Context, attachmentID uuid.UUID) (string, error)
	DeleteAttachment(ctx context.Context, attachmentID uuid.UUID) error
}
