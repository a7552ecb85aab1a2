package person

// ExpertPayload carries the profile fields of an external expert
type ExpertPayload struct {
	CompanyName string `json:"company_name" validate:"required,max=50"`
	JobTitle    string `json:"job_title" validate:"required,max=50"`
	OfficeTel   string `json:"office_tel" validate:"max=20"`
	Address     string `json:"address" validate:"max=500"`
	BankAccount string `json:"bank_account" validate:"max=50"`
}

// AssistantPayload carries the profile fields of a department assistant
type AssistantPayload struct {
	OfficeTel string `json:"office_tel" validate:"max=20"`
}

// DeptProfPayload carries the profile fields of a department professor
type DeptProfPayload struct {
	JobTitle  string `json:"job_title" validate:"required,max=50"`
	OfficeTel string `json:"office_tel" validate:"max=20"`
}

// OtherProfPayload carries the profile fields of an external professor
type OtherProfPayload struct {
	UnivName    string `json:"univ_name" validate:"required,max=50"`
	DeptName    string `json:"dept_name" validate:"required,max=50"`
	JobTitle    string `json:"job_title" validate:"required,max=50"`
	OfficeTel   string `json:"office_tel" validate:"max=20"`
	Address     string `json:"address" validate:"max=500"`
	BankAccount string `json:"bank_account" validate:"max=50"`
}

// StudentPayload carries the profile fields of a student
type StudentPayload struct {
	StudentID string `json:"student_id" validate:"required,max=50"`
	Program   string `json:"program" validate:"required"`
	StudyYear string `json:"study_year" validate:"required"`
}

// CreatePersonRequest represents the request to create a directory entry.
// Exactly one profile payload must be set and it must match the type.
type CreatePersonRequest struct {
	Name    string `json:"name" validate:"required,max=50"`
	Gender  string `json:"gender" validate:"required"`
	Phone   string `json:"phone" validate:"required,max=50"`
	Email   string `json:"email" validate:"required,email,max=100"`
	Type    string `json:"type" validate:"required"`
	IsAdmin bool   `json:"is_admin"`

	Expert    *ExpertPayload    `json:"expert_info,omitempty"`
	Assistant *AssistantPayload `json:"assistant_info,omitempty"`
	DeptProf  *DeptProfPayload  `json:"dept_prof_info,omitempty"`
	OtherProf *OtherProfPayload `json:"other_prof_info,omitempty"`
	Student   *StudentPayload   `json:"student_info,omitempty"`
}

// UpdatePersonRequest represents the request to edit a directory entry
type UpdatePersonRequest struct {
	CreatePersonRequest
}
