package errors

// ErrorCode identifies an error category on the wire
type ErrorCode int32

const (
	ErrorCode_HTTP_OK ErrorCode = 0

	// General
	ErrorCode_INTERNAL          ErrorCode = 1000
	ErrorCode_INVALID_ARGUMENT  ErrorCode = 1001
	ErrorCode_NOT_FOUND         ErrorCode = 1002
	ErrorCode_ALREADY_EXISTS    ErrorCode = 1003
	ErrorCode_PERMISSION_DENIED ErrorCode = 1004
	ErrorCode_UNAUTHENTICATED   ErrorCode = 1005

	// Authentication
	ErrorCode_AUTH_INVALID_TOKEN       ErrorCode = 2000
	ErrorCode_AUTH_TOKEN_EXPIRED       ErrorCode = 2001
	ErrorCode_AUTH_INVALID_CREDENTIALS ErrorCode = 2002

	// People
	ErrorCode_PERSON_NOT_FOUND   ErrorCode = 3000
	ErrorCode_EMAIL_ALREADY_USED ErrorCode = 3001
	ErrorCode_STUDENT_ID_TAKEN   ErrorCode = 3002
	ErrorCode_PROFILE_MISMATCH   ErrorCode = 3003
	ErrorCode_PERSON_IN_USE      ErrorCode = 3004

	// Meetings
	ErrorCode_MEETING_NOT_FOUND  ErrorCode = 4000
	ErrorCode_ATTENDEE_NOT_FOUND ErrorCode = 4001
	ErrorCode_DUPLICATE_ATTENDEE ErrorCode = 4002
	ErrorCode_UNKNOWN_PERSON     ErrorCode = 4003

	// Motions
	ErrorCode_MOTION_NOT_FOUND      ErrorCode = 5000
	ErrorCode_INVALID_MOTION_STATUS ErrorCode = 5001

	// Attachments and templates
	ErrorCode_ATTACHMENT_NOT_FOUND ErrorCode = 6000
	ErrorCode_TEMPLATE_NOT_FOUND   ErrorCode = 6001
	ErrorCode_STORAGE_FAILED       ErrorCode = 6002
)

var errorCodeNames = map[ErrorCode]string{
	ErrorCode_HTTP_OK:                  "OK",
	ErrorCode_INTERNAL:                 "INTERNAL",
	ErrorCode_INVALID_ARGUMENT:         "INVALID_ARGUMENT",
	ErrorCode_NOT_FOUND:                "NOT_FOUND",
	ErrorCode_ALREADY_EXISTS:           "ALREADY_EXISTS",
	ErrorCode_PERMISSION_DENIED:        "PERMISSION_DENIED",
	ErrorCode_UNAUTHENTICATED:          "UNAUTHENTICATED",
	ErrorCode_AUTH_INVALID_TOKEN:       "AUTH_INVALID_TOKEN",
	ErrorCode_AUTH_TOKEN_EXPIRED:       "AUTH_TOKEN_EXPIRED",
	ErrorCode_AUTH_INVALID_CREDENTIALS: "AUTH_INVALID_CREDENTIALS",
	ErrorCode_PERSON_NOT_FOUND:         "PERSON_NOT_FOUND",
	ErrorCode_EMAIL_ALREADY_USED:       "EMAIL_ALREADY_USED",
	ErrorCode_STUDENT_ID_TAKEN:         "STUDENT_ID_TAKEN",
	ErrorCode_PROFILE_MISMATCH:         "PROFILE_MISMATCH",
	ErrorCode_PERSON_IN_USE:            "PERSON_IN_USE",
	ErrorCode_MEETING_NOT_FOUND:        "MEETING_NOT_FOUND",
	ErrorCode_ATTENDEE_NOT_FOUND:       "ATTENDEE_NOT_FOUND",
	ErrorCode_DUPLICATE_ATTENDEE:       "DUPLICATE_ATTENDEE",
	ErrorCode_UNKNOWN_PERSON:           "UNKNOWN_PERSON",
	ErrorCode_MOTION_NOT_FOUND:         "MOTION_NOT_FOUND",
	ErrorCode_INVALID_MOTION_STATUS:    "INVALID_MOTION_STATUS",
	ErrorCode_ATTACHMENT_NOT_FOUND:     "ATTACHMENT_NOT_FOUND",
	ErrorCode_TEMPLATE_NOT_FOUND:       "TEMPLATE_NOT_FOUND",
	ErrorCode_STORAGE_FAILED:           "STORAGE_FAILED",
}

// String returns the symbolic name of the error code
func (c ErrorCode) String() string {
	if name, ok := errorCodeNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}
