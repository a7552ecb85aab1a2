package motion

// CreateMotionRequest represents the request to create a motion
type CreateMotionRequest struct {
	MeetingID   string `json:"meeting_id" validate:"required,uuid"`
	Description string `json:"description" validate:"required,max=100"`
	Content     string `json:"content"`
	Status      string `json:"status"`
	Resolution  string `json:"resolution"`
	Execution   string `json:"execution"`
}

// UpdateMotionRequest represents the request to edit a motion
type UpdateMotionRequest struct {
	Description string `json:"description" validate:"required,max=100"`
	Content     string `json:"content"`
	Status      string `json:"status" validate:"required"`
	Resolution  string `json:"resolution"`
	Execution   string `json:"execution"`
}

// UpdateMotionStatusRequest represents the request to move a motion
// through its tracking states
type UpdateMotionStatusRequest struct {
	Status string `json:"status" validate:"required"`
}
