package meeting

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/csiedev/meeting-records/internal/domain/entities"
	"github.com/csiedev/meeting-records/internal/domain/repositories"
	usecaseErrors "github.com/csiedev/meeting-records/internal/usecase/errors"
)

// attachmentURLExpiry bounds how long a download link stays valid
const attachmentURLExpiry = 15 * time.Minute

// MeetingService handles meeting business logic
type MeetingService struct {
	meetingRepo    repositories.MeetingRepository
	attendeeRepo   repositories.AttendeeRepository
	personRepo     repositories.PersonRepository
	attachmentRepo repositories.AttachmentRepository
	store          ObjectStore
	locks          *meetingLocks
}

// NewMeetingService creates a new meeting service
func NewMeetingService(
	meetingRepo repositories.MeetingRepository,
	attendeeRepo repositories.AttendeeRepository,
	personRepo repositories.PersonRepository,
	attachmentRepo repositories.AttachmentRepository,
	store ObjectStore,
) *MeetingService {
	return &MeetingService{
		meetingRepo:    meetingRepo,
		attendeeRepo:   attendeeRepo,
		personRepo:     personRepo,
		attachmentRepo: attachmentRepo,
		store:          store,
		locks:          newMeetingLocks(),
	}
}

var _ Service = (*MeetingService)(nil)

// CreateMeeting creates a meeting record with its agenda and ledger
func (s *MeetingService) CreateMeeting(ctx context.Context, input CreateMeetingInput) (*entities.Meeting, error) {
	if !input.Type.IsValid() {
		return nil, usecaseErrors.ErrInvalidMeetingType
	}
	if _, err := s.requirePerson(ctx, input.ChairID); err != nil {
		return nil, err
	}
	if _, err := s.requirePerson(ctx, input.MinuteTakerID); err != nil {
		return nil, err
	}

	members, guests, err := s.resolvePartition(ctx, input.MemberIDs, input.GuestIDs)
	if err != nil {
		return nil, err
	}

	meeting := &entities.Meeting{
		ID:            uuid.New(),
		Title:         input.Title,
		Type:          input.Type,
		Time:          input.Time,
		Location:      input.Location,
		IsDraft:       input.IsDraft,
		ChairID:       input.ChairID,
		ChairSpeech:   input.ChairSpeech,
		MinuteTakerID: input.MinuteTakerID,
	}

	present := make(map[uuid.UUID]bool, len(input.PresentIDs))
	for _, id := range input.PresentIDs {
		present[id] = true
	}
	for _, id := range members {
		meeting.Attendees = append(meeting.Attendees, entities.Attendee{
			MeetingID: meeting.ID, PersonID: id, IsMember: true, IsPresent: present[id],
		})
	}
	for _, id := range guests {
		meeting.Attendees = append(meeting.Attendees, entities.Attendee{
			MeetingID: meeting.ID, PersonID: id, IsMember: false, IsPresent: present[id],
		})
	}

	meeting.Announcements = announcementRows(meeting.ID, input.Announcements)
	meeting.Extempores = extemporeRows(meeting.ID, input.Extempores)
	meeting.Motions, err = motionRows(meeting.ID, input.Motions)
	if err != nil {
		return nil, err
	}

	if err := s.meetingRepo.Create(ctx, meeting); err != nil {
		return nil, fmt.Errorf("failed to create meeting: %w", err)
	}
	return s.GetMeeting(ctx, meeting.ID)
}

// GetMeeting retrieves a meeting projection by ID
func (s *MeetingService) GetMeeting(ctx context.Context, id uuid.UUID) (*entities.Meeting, error) {
	meeting, err := s.meetingRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecaseErrors.ErrMeetingNotFound
		}
		return nil, fmt.Errorf("failed to get meeting: %w", err)
	}
	return meeting, nil
}

// ListMeetings retrieves meetings with filters
func (s *MeetingService) ListMeetings(ctx context.Context, filters repositories.MeetingFilters) ([]*entities.Meeting, int64, error) {
	meetings, total, err := s.meetingRepo.List(ctx, filters)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list meetings: %w", err)
	}
	return meetings, total, nil
}

// UpdateMeeting replaces a meeting record: scalar fields, the agenda
// collections and the attendee partition, in that order.
func (s *MeetingService) UpdateMeeting(ctx context.Context, input UpdateMeetingInput) (*entities.Meeting, error) {
	meeting, err := s.GetMeeting(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if !input.Type.IsValid() {
		return nil, usecaseErrors.ErrInvalidMeetingType
	}
	if _, err := s.requirePerson(ctx, input.ChairID); err != nil {
		return nil, err
	}
	if _, err := s.requirePerson(ctx, input.MinuteTakerID); err != nil {
		return nil, err
	}
	members, guests, err := s.resolvePartition(ctx, input.MemberIDs, input.GuestIDs)
	if err != nil {
		return nil, err
	}

	meeting.Title = input.Title
	meeting.Type = input.Type
	meeting.Time = input.Time
	meeting.Location = input.Location
	meeting.IsDraft = input.IsDraft
	meeting.ChairID = input.ChairID
	meeting.ChairSpeech = input.ChairSpeech
	meeting.MinuteTakerID = input.MinuteTakerID

	if err := s.meetingRepo.Update(ctx, meeting); err != nil {
		return nil, fmt.Errorf("failed to update meeting: %w", err)
	}

	motions, err := motionRows(meeting.ID, input.Motions)
	if err != nil {
		return nil, err
	}
	if err := s.meetingRepo.ReplaceAgenda(ctx, meeting.ID,
		announcementRows(meeting.ID, input.Announcements), motions,
		extemporeRows(meeting.ID, input.Extempores)); err != nil {
		return nil, fmt.Errorf("failed to replace agenda: %w", err)
	}

	if err := s.attendeeRepo.Replace(ctx, meeting.ID, members, guests); err != nil {
		return nil, fmt.Errorf("failed to replace attendees: %w", err)
	}
	if err := s.attendeeRepo.SetPresence(ctx, meeting.ID, input.PresentIDs); err != nil {
		return nil, fmt.Errorf("failed to set presence: %w", err)
	}

	return s.GetMeeting(ctx, meeting.ID)
}

// DeleteMeeting removes a meeting, its owned rows and its stored
// attachment objects
func (s *MeetingService) DeleteMeeting(ctx context.Context, id uuid.UUID) error {
	meeting, err := s.GetMeeting(ctx, id)
	if err != nil {
		return err
	}
	for _, att := range meeting.Attachments {
		if err := s.store.RemoveFile(ctx, att.ObjectKey); err != nil {
			return fmt.Errorf("failed to remove attachment object %s: %w", att.ObjectKey, err)
		}
	}
	if err := s.meetingRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete meeting: %w", err)
	}
	return nil
}

// YearIndex groups meetings by year, newest first
func (s *MeetingService) YearIndex(ctx context.Context) ([]YearGroup, error) {
	years, err := s.meetingRepo.DistinctYears(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list years: %w", err)
	}
	groups := make([]YearGroup, 0, len(years))
	for _, year := range years {
		y := year
		meetings, _, err := s.meetingRepo.List(ctx, repositories.MeetingFilters{Year: &y})
		if err != nil {
			return nil, fmt.Errorf("failed to list meetings of %d: %w", year, err)
		}
		groups = append(groups, YearGroup{Year: year, Meetings: meetings})
	}
	return groups, nil
}

// AddAttachment stores the file object and its metadata row
func (s *MeetingService) AddAttachment(ctx context.Context, meetingID uuid.UUID, filename string,
	reader io.Reader, size int64, contentType string) (*entities.Attachment, error) {
	if _, err := s.GetMeeting(ctx, meetingID); err != nil {
		return nil, err
	}
	attachment := &entities.Attachment{
		ID:        uuid.New(),
		MeetingID: meetingID,
		Filename:  filename,
	}
	attachment.ObjectKey = fmt.Sprintf("meetings/%s/%s-%s", meetingID, attachment.ID, filename)

	if err := s.store.UploadFile(ctx, attachment.ObjectKey, reader, size, contentType); err != nil {
		return nil, fmt.Errorf("failed to upload attachment: %w", err)
	}
	if err := s.attachmentRepo.Create(ctx, attachment); err != nil {
		return nil, fmt.Errorf("failed to save attachment metadata: %w", err)
	}
	return attachment, nil
}

// AttachmentURL returns a presigned download URL for an attachment
func (s *MeetingService) AttachmentURL(ctx context.Context, attachmentID uuid.UUID) (string, error) {
	attachment, err := s.attachmentRepo.FindByID(ctx, attachmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", usecaseErrors.ErrAttachmentNotFound
		}
		return "", fmt.Errorf("failed to get attachment: %w", err)
	}
	url, err := s.store.PresignedURL(ctx, attachment.ObjectKey, attachment.Filename, attachmentURLExpiry)
	if err != nil {
		return "", fmt.Errorf("failed to presign attachment url: %w", err)
	}
	return url, nil
}

// DeleteAttachment removes the metadata row and the stored object
func (s *MeetingService) DeleteAttachment(ctx context.Context, attachmentID uuid.UUID) error {
	attachment, err := s.attachmentRepo.FindByID(ctx, attachmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return usecaseErrors.ErrAttachmentNotFound
		}
		return fmt.Errorf("failed to get attachment: %w", err)
	}
	if err := s.store.RemoveFile(ctx, attachment.ObjectKey); err != nil {
		return fmt.Errorf("failed to remove attachment object: %w", err)
	}
	if err := s.attachmentRepo.Delete(ctx, attachmentID); err != nil {
		return fmt.Errorf("failed to delete attachment metadata: %w", err)
	}
	return nil
}

// requirePerson resolves a person id or reports ErrPersonNotFound
func (s *MeetingService) requirePerson(ctx context.Context, id uuid.UUID) (*entities.Person, error) {
	person, err := s.personRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecaseErrors.ErrPersonNotFound
		}
		return nil, fmt.Errorf("failed to get person: %w", err)
	}
	return person, nil
}

func announcementRows(meetingID uuid.UUID, contents []string) []entities.Announcement {
	rows := make([]entities.Announcement, 0, len(contents))
	for _, content := range contents {
		rows = append(rows, entities.Announcement{MeetingID: meetingID, Content: content})
	}
	return rows
}

func extemporeRows(meetingID uuid.UUID, contents []string) []entities.Extempore {
	rows := make([]entities.Extempore, 0, len(contents))
	for _, content := range contents {
		rows = append(rows, entities.Extempore{MeetingID: meetingID, Content: content})
	}
	return rows
}

func motionRows(meetingID uuid.UUID, inputs []MotionInput) ([]entities.Motion, error) {
	rows := make([]entities.Motion, 0, len(inputs))
	for _, in := range inputs {
		status := in.Status
		if status == "" {
			status = entities.MotionInDiscussion
		}
		if !status.IsValid() {
			return nil, usecaseErrors.ErrInvalidMotionStatus
		}
		rows = append(rows, entities.Motion{
			MeetingID:   meetingID,
			Description: in.Description,
			Content:     in.Content,
			Status:      status,
			Resolution:  in.Resolution,
			Execution:   in.Execution,
		})
	}
	return rows, nil
}
