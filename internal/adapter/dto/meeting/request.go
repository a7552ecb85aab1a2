package meeting

import "time"

// MotionPayload carries one motion of a meeting create/update request
type MotionPayload struct {
	Description string `json:"description" validate:"required,max=100"`
	Content     string `json:"content"`
	Status      string `json:"status"`
	Resolution  string `json:"resolution"`
	Execution   string `json:"execution"`
}

// CreateMeetingRequest represents the request to create a meeting record
type CreateMeetingRequest struct {
	Title         string    `json:"title" validate:"required,max=100"`
	Type          string    `json:"type" validate:"required"`
	Time          time.Time `json:"time" validate:"required"`
	Location      string    `json:"location" validate:"required,max=100"`
	IsDraft       bool      `json:"is_draft"`
	ChairID       string    `json:"chair_id" validate:"required,uuid"`
	ChairSpeech   string    `json:"chair_speech"`
	MinuteTakerID string    `json:"minute_taker_id" validate:"required,uuid"`

	MemberIDs  []string `json:"member_ids"`
	GuestIDs   []string `json:"guest_ids"`
	PresentIDs []string `json:"present_ids"`

	Announcements []string        `json:"announcements"`
	Motions       []MotionPayload `json:"motions"`
	Extempores    []string        `json:"extempores"`
}

// UpdateMeetingRequest represents the request to replace a meeting record
type UpdateMeetingRequest struct {
	CreateMeetingRequest
}

// ListMeetingsRequest represents the meeting list query
type ListMeetingsRequest struct {
	Type     string `query:"type"`
	Year     int    `query:"year"`
	Search   string `query:"search"`
	Page     int    `query:"page"`
	PageSize int    `query:"page_size"`
}

// SetAttendeesRequest represents the request to replace the attendee roster
type SetAttendeesRequest struct {
	MemberIDs []string `json:"member_ids"`
	GuestIDs  []string `json:"guest_ids"`
}

// MarkPresentRequest represents the request to record presence
type MarkPresentRequest struct {
	PresentIDs []string `json:"present_ids"`
}

// NotifyRequest represents the request to send a meeting notification
type NotifyRequest struct {
	Kind string `json:"kind" validate:"required,oneof=Notice Minute ModifyRequest"`
	Body string `json:"body"`
}
