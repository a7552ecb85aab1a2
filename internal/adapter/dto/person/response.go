package person

import "time"

// PersonResponse represents one directory entry
type PersonResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Gender  string `json:"gender"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Type    string `json:"type"`
	IsAdmin bool   `json:"is_admin"`

	Expert    *ExpertPayload    `json:"expert_info,omitempty"`
	Assistant *AssistantPayload `json:"assistant_info,omitempty"`
	DeptProf  *DeptProfPayload  `json:"dept_prof_info,omitempty"`
	OtherProf *OtherProfPayload `json:"other_prof_info,omitempty"`
	Student   *StudentPayload   `json:"student_info,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
