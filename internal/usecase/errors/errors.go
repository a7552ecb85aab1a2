package errors

import "errors"

// Common errors
var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden access")
	ErrNotFound      = errors.New("resource not found")
	ErrConflict      = errors.New("resource conflict")
	ErrInternalError = errors.New("internal server error")
)

// Auth errors
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenInvalid       = errors.New("token invalid")
)

// Directory errors
var (
	ErrPersonNotFound     = errors.New("person not found")
	ErrPersonInUse        = errors.New("person is referenced by meeting records")
	ErrEmailAlreadyUsed   = errors.New("email already in use")
	ErrStudentIDTaken     = errors.New("student id already in use")
	ErrProfileMismatch    = errors.New("profile does not match person type")
	ErrInvalidPersonType  = errors.New("invalid person type")
	ErrUnknownPersonInSet = errors.New("attendee list references unknown person")
)

// Meeting errors
var (
	ErrMeetingNotFound    = errors.New("meeting not found")
	ErrAttendeeNotFound   = errors.New("person is neither chair nor attendee of this meeting")
	ErrDuplicateAttendee  = errors.New("person appears in both member and guest lists")
	ErrInvalidMeetingType = errors.New("invalid meeting type")
)

// Motion errors
var (
	ErrMotionNotFound      = errors.New("motion not found")
	ErrInvalidMotionStatus = errors.New("invalid motion status")
)

// Attachment errors
var (
	ErrAttachmentNotFound = errors.New("attachment not found")
)

// Template errors
var (
	ErrTemplateNotFound = errors.New("template not found")
)
