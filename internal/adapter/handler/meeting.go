package handler

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/csiedev/meeting-records/errors"
	"github.com/csiedev/meeting-records/internal/adapter/dto/common"
	meetingDTO "github.com/csiedev/meeting-records/internal/adapter/dto/meeting"
	"github.com/csiedev/meeting-records/internal/adapter/presenter"
	"github.com/csiedev/meeting-records/internal/domain/entities"
	"github.com/csiedev/meeting-records/internal/domain/repositories"
	"github.com/csiedev/meeting-records/internal/infrastructure/http/middleware"
	"github.com/csiedev/meeting-records/internal/usecase/meeting"
	"github.com/csiedev/meeting-records/internal/usecase/notification"
)

const defaultPageSize = 20

// Meeting handles meeting record endpoints
type Meeting struct {
	meetingService meeting.Service
	notifications  *notification.Service
	logger         *zap.Logger
}

// NewMeeting creates a new meeting handler
func NewMeeting(meetingService meeting.Service, notifications *notification.Service, logger *zap.Logger) *Meeting {
	return &Meeting{
		meetingService: meetingService,
		notifications:  notifications,
		logger:         logger,
	}
}

// Create stores a new meeting record
func (h *Meeting) Create(c echo.Context) error {
	var req meetingDTO.CreateMeetingRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument(err.Error()))
	}

	input, err := toCreateInput(&req)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	created, err := h.meetingService.CreateMeeting(c.Request().Context(), *input)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, presenter.ToMeetingResponse(created))
}

// List returns meeting records matching the query. Non-admin callers
// only see meetings they are involved in.
func (h *Meeting) List(c echo.Context) error {
	var req meetingDTO.ListMeetingsRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("invalid query"))
	}
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PageSize < 1 || req.PageSize > 100 {
		req.PageSize = defaultPageSize
	}

	filters := repositories.MeetingFilters{
		Search: req.Search,
		Limit:  req.PageSize,
		Offset: (req.Page - 1) * req.PageSize,
	}
	if req.Year > 0 {
		filters.Year = &req.Year
	}
	if req.Type != "" {
		t := entities.MeetingType(req.Type)
		filters.Type = &t
	}
	filters.VisibleTo = visibleTo(c)

	meetings, total, err := h.meetingService.ListMeetings(c.Request().Context(), filters)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	totalPages := int((total + int64(req.PageSize) - 1) / int64(req.PageSize))
	return HandleSuccess(h.logger, c, common.ListResponse{
		Data: presenter.ToMeetingResponses(meetings),
		Pagination: &common.PaginationResponse{
			Page:       req.Page,
			PageSize:   req.PageSize,
			TotalPages: totalPages,
			TotalItems: total,
		},
	})
}

// Get returns one meeting record with its full agenda and ledger
func (h *Meeting) Get(c echo.Context) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	m, err := h.meetingService.GetMeeting(c.Request().Context(), id)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	if !h.canView(c, m) {
		return HandleError(h.logger, c, errors.ErrPermissionDenied("view meeting"))
	}

	return HandleSuccess(h.logger, c, presenter.ToMeetingResponse(m))
}

// Update replaces a meeting record and its agenda
func (h *Meeting) Update(c echo.Context) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	var req meetingDTO.UpdateMeetingRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument(err.Error()))
	}

	input, err := toCreateInput(&req.CreateMeetingRequest)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	updated, err := h.meetingService.UpdateMeeting(c.Request().Context(), meeting.UpdateMeetingInput{
		CreateMeetingInput: *input,
		ID:                 id,
	})
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, presenter.ToMeetingResponse(updated))
}

// Delete removes a meeting record and its stored attachments
func (h *Meeting) Delete(c echo.Context) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	if err := h.meetingService.DeleteMeeting(c.Request().Context(), id); err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, nil)
}

// YearIndex returns meetings grouped by year, newest year first
func (h *Meeting) YearIndex(c echo.Context) error {
	groups, err := h.meetingService.YearIndex(c.Request().Context())
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	out := make([]meetingDTO.YearGroupResponse, 0, len(groups))
	for _, g := range groups {
		out = append(out, meetingDTO.YearGroupResponse{
			Year:     g.Year,
			Meetings: presenter.ToMeetingResponses(g.Meetings),
		})
	}
	return HandleSuccess(h.logger, c, out)
}

// SetAttendees replaces the member and guest rosters of a meeting
func (h *Meeting) SetAttendees(c echo.Context) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	var req meetingDTO.SetAttendeesRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("invalid request body"))
	}

	memberIDs, err := parseUUIDs(req.MemberIDs)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	guestIDs, err := parseUUIDs(req.GuestIDs)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	if err := h.meetingService.SetAttendees(c.Request().Context(), id, memberIDs, guestIDs); err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, nil)
}

// MarkPresent overwrites the presence flags of a meeting's ledger
func (h *Meeting) MarkPresent(c echo.Context) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	var req meetingDTO.MarkPresentRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("invalid request body"))
	}

	presentIDs, err := parseUUIDs(req.PresentIDs)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	if err := h.meetingService.MarkPresent(c.Request().Context(), id, presentIDs); err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, nil)
}

// Confirm records the caller's confirmation of the minutes
func (h *Meeting) Confirm(c echo.Context) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	userID, ok := middleware.UserID(c)
	if !ok {
		return HandleError(h.logger, c, errors.ErrUnauthenticated())
	}

	archived, err := h.meetingService.Confirm(c.Request().Context(), id, userID)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, meetingDTO.ConfirmResponse{Archived: archived})
}

// RevokeConfirmation withdraws the caller's confirmation
func (h *Meeting) RevokeConfirmation(c echo.Context) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	userID, ok := middleware.UserID(c)
	if !ok {
		return HandleError(h.logger, c, errors.ErrUnauthenticated())
	}

	if err := h.meetingService.RevokeConfirmation(c.Request().Context(), id, userID); err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, nil)
}

// AddAttachment uploads a file for a meeting
func (h *Meeting) AddAttachment(c echo.Context) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("missing file"))
	}
	file, err := fileHeader.Open()
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInternal(err))
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	attachment, err := h.meetingService.AddAttachment(
		c.Request().Context(), id, fileHeader.Filename, file, fileHeader.Size, contentType)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, meetingDTO.AttachmentResponse{
		ID:        attachment.ID.String(),
		Filename:  attachment.Filename,
		CreatedAt: attachment.CreatedAt,
	})
}

// AttachmentURL returns a presigned download URL for an attachment
func (h *Meeting) AttachmentURL(c echo.Context) error {
	attachmentID, err := parseUUIDParam(c, "attachmentID")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	url, err := h.meetingService.AttachmentURL(c.Request().Context(), attachmentID)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, meetingDTO.AttachmentURLResponse{URL: url})
}

// DeleteAttachment removes an attachment and its stored object
func (h *Meeting) DeleteAttachment(c echo.Context) error {
	attachmentID, err := parseUUIDParam(c, "attachmentID")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	if err := h.meetingService.DeleteAttachment(c.Request().Context(), attachmentID); err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, nil)
}

// Notify sends a meeting notification mail. Notice and Minute go to
// every attendee; ModifyRequest goes to the minute taker.
func (h *Meeting) Notify(c echo.Context) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	var req meetingDTO.NotifyRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument(err.Error()))
	}

	m, err := h.meetingService.GetMeeting(c.Request().Context(), id)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	kind := notification.Kind(req.Kind)
	attendees := make([]*entities.Attendee, 0, len(m.Attendees))
	for i := range m.Attendees {
		attendees = append(attendees, &m.Attendees[i])
	}

	var recipients []string
	var from string
	if kind == notification.KindModifyRequest {
		if m.MinuteTaker == nil {
			return HandleError(h.logger, c, errors.ErrInvalidArgument("meeting has no minute taker"))
		}
		recipients = []string{m.MinuteTaker.Email}
		if email, ok := c.Get(middleware.ContextEmail).(string); ok {
			from = email
		}
	} else {
		for _, att := range attendees {
			if att.Person != nil {
				recipients = append(recipients, att.Person.Email)
			}
		}
	}

	if err := h.notifications.NotifyMeeting(kind, m, attendees, recipients, from, req.Body); err != nil {
		return HandleError(h.logger, c, errors.ErrInternal(err))
	}
	return HandleSuccess(h.logger, c, nil)
}

// canView reports whether the caller may read the meeting
func (h *Meeting) canView(c echo.Context, m *entities.Meeting) bool {
	if middleware.IsAdmin(c) {
		return true
	}
	userID, ok := middleware.UserID(c)
	if !ok {
		return false
	}
	if m.ChairID == userID || m.MinuteTakerID == userID {
		return true
	}
	for _, att := range m.Attendees {
		if att.PersonID == userID {
			return true
		}
	}
	return false
}

// visibleTo returns the caller's ID for non-admins, nil for admins
func visibleTo(c echo.Context) *uuid.UUID {
	if middleware.IsAdmin(c) {
		return nil
	}
	if userID, ok := middleware.UserID(c); ok {
		return &userID
	}
	return nil
}

// toCreateInput converts the request to the usecase input
func toCreateInput(req *meetingDTO.CreateMeetingRequest) (*meeting.CreateMeetingInput, error) {
	chairID, err := uuid.Parse(req.ChairID)
	if err != nil {
		return nil, errors.ErrInvalidArgument("invalid chair_id")
	}
	minuteTakerID, err := uuid.Parse(req.MinuteTakerID)
	if err != nil {
		return nil, errors.ErrInvalidArgument("invalid minute_taker_id")
	}
	memberIDs, err := parseUUIDs(req.MemberIDs)
	if err != nil {
		return nil, err
	}
	guestIDs, err := parseUUIDs(req.GuestIDs)
	if err != nil {
		return nil, err
	}
	presentIDs, err := parseUUIDs(req.PresentIDs)
	if err != nil {
		return nil, err
	}

	motions := make([]meeting.MotionInput, 0, len(req.Motions))
	for _, m := range req.Motions {
		motions = append(motions, meeting.MotionInput{
			Description: m.Description,
			Content:     m.Content,
			Status:      entities.MotionStatus(m.Status),
			Resolution:  m.Resolution,
			Execution:   m.Execution,
		})
	}

	return &meeting.CreateMeetingInput{
		Title:         req.Title,
		Type:          entities.MeetingType(req.Type),
		Time:          req.Time,
		Location:      req.Location,
		IsDraft:       req.IsDraft,
		ChairID:       chairID,
		ChairSpeech:   req.ChairSpeech,
		MinuteTakerID: minuteTakerID,
		MemberIDs:     memberIDs,
		GuestIDs:      guestIDs,
		PresentIDs:    presentIDs,
		Announcements: req.Announcements,
		Motions:       motions,
		Extempores:    req.Extempores,
	}, nil
}
