package presenter

import (
	meetingDTO "github.com/csiedev/meeting-records/internal/adapter/dto/meeting"
	"github.com/csiedev/meeting-records/internal/domain/entities"
)

// ToMeetingResponse converts a Meeting entity with its loaded
// associations to the response DTO
func ToMeetingResponse(m *entities.Meeting) *meetingDTO.MeetingResponse {
	if m == nil {
		return nil
	}

	response := &meetingDTO.MeetingResponse{
		ID:             m.ID.String(),
		Title:          m.Title,
		Type:           string(m.Type),
		Time:           m.Time,
		Location:       m.Location,
		IsDraft:        m.IsDraft,
		Chair:          ToPersonResponse(m.Chair),
		ChairSpeech:    m.ChairSpeech,
		ChairConfirmed: m.ChairConfirmed,
		MinuteTaker:    ToPersonResponse(m.MinuteTaker),
		Archived:       m.Archived,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}

	for _, a := range m.Announcements {
		response.Announcements = append(response.Announcements, meetingDTO.AnnouncementResponse{
			ID:      a.ID.String(),
			Content: a.Content,
		})
	}
	for i := range m.Motions {
		response.Motions = append(response.Motions, *ToMotionResponse(&m.Motions[i]))
	}
	for _, e := range m.Extempores {
		response.Extempores = append(response.Extempores, meetingDTO.ExtemporeResponse{
			ID:      e.ID.String(),
			Content: e.Content,
		})
	}
	for _, att := range m.Attendees {
		response.Attendees = append(response.Attendees, meetingDTO.AttendeeResponse{
			Person:      ToPersonResponse(att.Person),
			IsMember:    att.IsMember,
			IsPresent:   att.IsPresent,
			IsConfirmed: att.IsConfirmed,
		})
	}
	for _, f := range m.Attachments {
		response.Attachments = append(response.Attachments, meetingDTO.AttachmentResponse{
			ID:        f.ID.String(),
			Filename:  f.Filename,
			CreatedAt: f.CreatedAt,
		})
	}

	return response
}

// ToMeetingResponses converts a slice of Meeting entities
func ToMeetingResponses(meetings []*entities.Meeting) []meetingDTO.MeetingResponse {
	responses := make([]meetingDTO.MeetingResponse, 0, len(meetings))
	for _, m := range meetings {
		responses = append(responses, *ToMeetingResponse(m))
	}
	return responses
}

// ToMotionResponse converts a Motion entity to its response DTO
func ToMotionResponse(m *entities.Motion) *meetingDTO.MotionResponse {
	if m == nil {
		return nil
	}
	return &meetingDTO.MotionResponse{
		ID:          m.ID.String(),
		MeetingID:   m.MeetingID.String(),
		Description: m.Description,
		Content:     m.Content,
		Status:      string(m.Status),
		Resolution:  m.Resolution,
		Execution:   m.Execution,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// ToMotionResponses converts a slice of Motion entities
func ToMotionResponses(motions []*entities.Motion) []meetingDTO.MotionResponse {
	responses := make([]meetingDTO.MotionResponse, 0, len(motions))
	for _, m := range motions {
		responses = append(responses, *ToMotionResponse(m))
	}
	return responses
}
