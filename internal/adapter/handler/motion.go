package handler

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/csiedev/meeting-records/errors"
	motionDTO "github.com/csiedev/meeting-records/internal/adapter/dto/motion"
	"github.com/csiedev/meeting-records/internal/adapter/presenter"
	"github.com/csiedev/meeting-records/internal/domain/entities"
	"github.com/csiedev/meeting-records/internal/usecase/motion"
)

// Motion handles motion tracking endpoints
type Motion struct {
	motionService *motion.MotionService
	logger        *zap.Logger
}

// NewMotion creates a new motion handler
func NewMotion(motionService *motion.MotionService, logger *zap.Logger) *Motion {
	return &Motion{
		motionService: motionService,
		logger:        logger,
	}
}

// Create adds a motion to a meeting
func (h *Motion) Create(c echo.Context) error {
	var req motionDTO.CreateMotionRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument(err.Error()))
	}

	meetingID, err := parseUUIDs([]string{req.MeetingID})
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	created, err := h.motionService.CreateMotion(c.Request().Context(), motion.CreateMotionInput{
		MeetingID:   meetingID[0],
		Description: req.Description,
		Content:     req.Content,
		Status:      entities.MotionStatus(req.Status),
		Resolution:  req.Resolution,
		Execution:   req.Execution,
	})
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, presenter.ToMotionResponse(created))
}

// List returns motions across meetings. Non-admin callers only see
// motions of meetings they are involved in.
func (h *Motion) List(c echo.Context) error {
	motions, err := h.motionService.ListMotions(c.Request().Context(), visibleTo(c))
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, presenter.ToMotionResponses(motions))
}

// Get returns one motion
func (h *Motion) Get(c echo.Context) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	m, err := h.motionService.GetMotion(c.Request().Context(), id)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, presenter.ToMotionResponse(m))
}

// Update edits a motion's content and tracking fields
func (h *Motion) Update(c echo.Context) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	var req motionDTO.UpdateMotionRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument(err.Error()))
	}

	updated, err := h.motionService.UpdateMotion(c.Request().Context(), motion.UpdateMotionInput{
		ID:          id,
		Description: req.Description,
		Content:     req.Content,
		Status:      entities.MotionStatus(req.Status),
		Resolution:  req.Resolution,
		Execution:   req.Execution,
	})
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, presenter.ToMotionResponse(updated))
}

// UpdateStatus moves a motion through its tracking states
func (h *Motion) UpdateStatus(c echo.Context) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	var req motionDTO.UpdateMotionStatusRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument(err.Error()))
	}

	updated, err := h.motionService.UpdateMotionStatus(c.Request().Context(), id, entities.MotionStatus(req.Status))
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, presenter.ToMotionResponse(updated))
}

// Delete removes a motion
func (h *Motion) Delete(c echo.Context) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	if err := h.motionService.DeleteMotion(c.Request().Context(), id); err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, nil)
}
