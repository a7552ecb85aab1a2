package handler

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/csiedev/meeting-records/errors"
	"github.com/csiedev/meeting-records/internal/domain/entities"
	"github.com/csiedev/meeting-records/internal/usecase/feedback"
	"github.com/csiedev/meeting-records/internal/usecase/template"
)

// Misc handles feedback and template endpoints
type Misc struct {
	feedbackService *feedback.FeedbackService
	templateService *template.TemplateService
	logger          *zap.Logger
}

// NewMisc creates a new misc handler
func NewMisc(feedbackService *feedback.FeedbackService, templateService *template.TemplateService, logger *zap.Logger) *Misc {
	return &Misc{
		feedbackService: feedbackService,
		templateService: templateService,
		logger:          logger,
	}
}

type submitFeedbackRequest struct {
	Content string `json:"content" validate:"required"`
}

// SubmitFeedback stores one anonymous feedback entry
func (h *Misc) SubmitFeedback(c echo.Context) error {
	var req submitFeedbackRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument(err.Error()))
	}

	entry, err := h.feedbackService.Submit(c.Request().Context(), req.Content)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, entry)
}

// ListFeedback returns all feedback entries
func (h *Misc) ListFeedback(c echo.Context) error {
	entries, err := h.feedbackService.List(c.Request().Context())
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, entries)
}

type createTemplateRequest struct {
	Name          string   `json:"name" validate:"required,max=100"`
	Title         string   `json:"title" validate:"required,max=200"`
	Time          string   `json:"time"`
	Location      string   `json:"location" validate:"max=50"`
	Type          string   `json:"type" validate:"required"`
	ChairID       string   `json:"chair_id" validate:"required,uuid"`
	MinuteTakerID string   `json:"minute_taker_id" validate:"required,uuid"`
	AttendeeIDs   []string `json:"attendee_ids"`
	GuestIDs      []string `json:"guest_ids"`
}

// CreateTemplate stores a reusable attendee list
func (h *Misc) CreateTemplate(c echo.Context) error {
	var req createTemplateRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument(err.Error()))
	}

	attendeeIDs, err := parseUUIDs(req.AttendeeIDs)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	guestIDs, err := parseUUIDs(req.GuestIDs)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	chairID, err := uuid.Parse(req.ChairID)
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("invalid chair_id"))
	}
	minuteTakerID, err := uuid.Parse(req.MinuteTakerID)
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("invalid minute_taker_id"))
	}

	tmpl, err := h.templateService.Create(c.Request().Context(), template.CreateTemplateInput{
		Name:          req.Name,
		Title:         req.Title,
		Time:          req.Time,
		Location:      req.Location,
		Type:          entities.MeetingType(req.Type),
		ChairID:       chairID,
		MinuteTakerID: minuteTakerID,
		AttendeeIDs:   attendeeIDs,
		GuestIDs:      guestIDs,
	})
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, tmpl)
}

// ListTemplates returns all stored templates
func (h *Misc) ListTemplates(c echo.Context) error {
	templates, err := h.templateService.List(c.Request().Context())
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, templates)
}

// DeleteTemplate removes a template
func (h *Misc) DeleteTemplate(c echo.Context) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	if err := h.templateService.Delete(c.Request().Context(), id); err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, nil)
}
