package handler

import (
	stdErrors "errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/csiedev/meeting-records/errors"
	usecaseErrors "github.com/csiedev/meeting-records/internal/usecase/errors"
)

// Response shapes
type success struct {
	Code    interface{} `json:"code,omitempty"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

type errs struct {
	Code    interface{} `json:"code,omitempty"`
	Message string      `json:"message,omitempty"`
	Info    string      `json:"info,omitempty"`
}

// getRequestID tries to read X-Request-ID from the request
func getRequestID(c echo.Context) string {
	if c == nil || c.Request() == nil {
		return ""
	}
	return c.Request().Header.Get("X-Request-ID")
}

// HandleSuccess writes a standardized success response
func HandleSuccess(logger *zap.Logger, c echo.Context, data interface{}) error {
	resp := success{
		Code:    int(errors.ErrorCode_HTTP_OK),
		Message: "success",
		Data:    data,
	}

	if logger != nil {
		logger.Info("http.response.success",
			zap.String("request_id", getRequestID(c)),
			zap.String("path", c.Path()),
		)
	}

	return c.JSON(http.StatusOK, resp)
}

// HandleError centralizes error handling and logging. Usecase sentinel
// errors are translated to their application error before rendering.
func HandleError(logger *zap.Logger, c echo.Context, err error) error {
	reqID := getRequestID(c)

	var appErr errors.AppError
	if !stdErrors.As(err, &appErr) {
		appErr = toAppError(err)
	}

	if logger != nil {
		logger.Error("http.response.error",
			zap.String("request_id", reqID),
			zap.String("path", c.Path()),
			zap.Any("app_code", appErr.Code),
			zap.Error(err),
		)
	}

	info := ""
	if appErr.Raw != nil {
		info = appErr.Raw.Error()
	}

	body := errs{
		Code:    appErr.Code,
		Message: appErr.Message,
		Info:    info,
	}

	return c.JSON(appErr.HTTPCode, body)
}

// toAppError maps usecase sentinel errors to application errors
func toAppError(err error) errors.AppError {
	switch {
	case stdErrors.Is(err, usecaseErrors.ErrInvalidInput),
		stdErrors.Is(err, usecaseErrors.ErrInvalidMeetingType),
		stdErrors.Is(err, usecaseErrors.ErrInvalidPersonType):
		return errors.ErrInvalidArgument(err.Error())
	case stdErrors.Is(err, usecaseErrors.ErrInvalidMotionStatus):
		return errors.ErrInvalidMotionStatus("")
	case stdErrors.Is(err, usecaseErrors.ErrProfileMismatch):
		return errors.ErrProfileMismatch()
	case stdErrors.Is(err, usecaseErrors.ErrInvalidCredentials):
		return errors.ErrInvalidCredentials()
	case stdErrors.Is(err, usecaseErrors.ErrTokenInvalid):
		return errors.ErrInvalidToken()
	case stdErrors.Is(err, usecaseErrors.ErrUnauthorized):
		return errors.ErrUnauthenticated()
	case stdErrors.Is(err, usecaseErrors.ErrForbidden):
		return errors.ErrPermissionDenied("")
	case stdErrors.Is(err, usecaseErrors.ErrPersonNotFound):
		return errors.ErrPersonNotFound("")
	case stdErrors.Is(err, usecaseErrors.ErrPersonInUse):
		return errors.ErrPersonInUse("")
	case stdErrors.Is(err, usecaseErrors.ErrEmailAlreadyUsed):
		return errors.ErrEmailAlreadyUsed("")
	case stdErrors.Is(err, usecaseErrors.ErrStudentIDTaken):
		return errors.ErrStudentIDTaken("")
	case stdErrors.Is(err, usecaseErrors.ErrUnknownPersonInSet):
		return errors.ErrUnknownPerson()
	case stdErrors.Is(err, usecaseErrors.ErrMeetingNotFound):
		return errors.ErrMeetingNotFound("")
	case stdErrors.Is(err, usecaseErrors.ErrAttendeeNotFound):
		return errors.ErrAttendeeNotFound("", "")
	case stdErrors.Is(err, usecaseErrors.ErrDuplicateAttendee):
		return errors.ErrDuplicateAttendee()
	case stdErrors.Is(err, usecaseErrors.ErrMotionNotFound):
		return errors.ErrMotionNotFound("")
	case stdErrors.Is(err, usecaseErrors.ErrAttachmentNotFound):
		return errors.ErrAttachmentNotFound("")
	case stdErrors.Is(err, usecaseErrors.ErrTemplateNotFound):
		return errors.ErrTemplateNotFound("")
	case stdErrors.Is(err, usecaseErrors.ErrNotFound):
		return errors.ErrNotFound("resource")
	case stdErrors.Is(err, usecaseErrors.ErrConflict):
		return errors.ErrAlreadyExists("resource")
	default:
		return errors.ErrInternal(err)
	}
}

// parseUUIDParam parses a UUID path parameter
func parseUUIDParam(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, errors.ErrInvalidArgument("invalid " + name)
	}
	return id, nil
}

// parseUUIDs parses a list of UUID strings
func parseUUIDs(raw []string) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0, len(raw))
	for _, s := range raw {
		id, err := uuid.Parse(s)
		if err != nil {
			return nil, errors.ErrInvalidArgument("invalid id in list: " + s)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
