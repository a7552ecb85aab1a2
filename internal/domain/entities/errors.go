package entities

import "errors"

// Domain errors
var (
	// Person errors
	ErrInvalidName       = errors.New("invalid name")
	ErrInvalidEmail      = errors.New("invalid email")
	ErrInvalidGender     = errors.New("invalid gender")
	ErrInvalidPersonType = errors.New("invalid person type")
	ErrProfileMismatch   = errors.New("profile does not match person type")

	// Meeting errors
	ErrInvalidMeetingType = errors.New("invalid meeting type")
	ErrInvalidMotionState = errors.New("invalid motion status")
)
