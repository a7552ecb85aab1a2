package entities

import (
	"time"

	"github.com/google/uuid"
)

// GenderType represents a person's gender
type GenderType string

const (
	GenderMale   GenderType = "Male"
	GenderFemale GenderType = "Female"
)

// IsValid checks if the gender value is valid
func (g GenderType) IsValid() bool {
	switch g {
	case GenderMale, GenderFemale:
		return true
	}
	return false
}

// PersonType tags which profile record a person carries
type PersonType string

const (
	PersonTypeExpert    PersonType = "Expert"
	PersonTypeAssistant PersonType = "Assistant"
	PersonTypeDeptProf  PersonType = "DeptProf"
	PersonTypeOtherProf PersonType = "OtherProf"
	PersonTypeStudent   PersonType = "Student"
)

// IsValid checks if the person type is valid
func (t PersonType) IsValid() bool {
	switch t {
	case PersonTypeExpert, PersonTypeAssistant, PersonTypeDeptProf, PersonTypeOtherProf, PersonTypeStudent:
		return true
	}
	return false
}

// StudentProgram represents the degree program of a student
type StudentProgram string

const (
	ProgramUnderGraduate StudentProgram = "UnderGraduate"
	ProgramGraduate      StudentProgram = "Graduate"
	ProgramPhD           StudentProgram = "PhD"
)

// IsValid checks if the program value is valid
func (p StudentProgram) IsValid() bool {
	switch p {
	case ProgramUnderGraduate, ProgramGraduate, ProgramPhD:
		return true
	}
	return false
}

// StudentStudyYear represents the study year of a student
type StudentStudyYear string

const (
	StudyYearFirst   StudentStudyYear = "FirstYear"
	StudyYearSecond  StudentStudyYear = "SecondYear"
	StudyYearThird   StudentStudyYear = "ThirdYear"
	StudyYearForth   StudentStudyYear = "ForthYear"
	StudyYearFifth   StudentStudyYear = "FifthYear"
	StudyYearSixth   StudentStudyYear = "SixthYear"
	StudyYearSeventh StudentStudyYear = "SeventhYear"
)

// IsValid checks if the study year value is valid
func (y StudentStudyYear) IsValid() bool {
	switch y {
	case StudyYearFirst, StudyYearSecond, StudyYearThird, StudyYearForth,
		StudyYearFifth, StudyYearSixth, StudyYearSeventh:
		return true
	}
	return false
}

// Person is a directory entry: faculty, staff, students and invited experts.
// Exactly one type-specific profile exists per person, matching Type.
type Person struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name         string     `gorm:"type:varchar(50);not null;index" json:"name"`
	Gender       GenderType `gorm:"type:varchar(10);not null" json:"gender"`
	Phone        string     `gorm:"type:varchar(50);not null" json:"phone"`
	Email        string     `gorm:"type:varchar(100);uniqueIndex;not null" json:"email"`
	Type         PersonType `gorm:"type:varchar(20);not null" json:"type"`
	IsAdmin      bool       `gorm:"default:false;not null" json:"is_admin"`
	PasswordHash *string    `gorm:"type:text" json:"-"`

	ExpertInfo    *Expert    `gorm:"foreignKey:PersonID;constraint:OnDelete:CASCADE" json:"expert_info,omitempty"`
	AssistantInfo *Assistant `gorm:"foreignKey:PersonID;constraint:OnDelete:CASCADE" json:"assistant_info,omitempty"`
	DeptProfInfo  *DeptProf  `gorm:"foreignKey:PersonID;constraint:OnDelete:CASCADE" json:"dept_prof_info,omitempty"`
	OtherProfInfo *OtherProf `gorm:"foreignKey:PersonID;constraint:OnDelete:CASCADE" json:"other_prof_info,omitempty"`
	StudentInfo   *Student   `gorm:"foreignKey:PersonID;constraint:OnDelete:CASCADE" json:"student_info,omitempty"`

	CreatedAt time.Time `gorm:"default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"default:now()" json:"updated_at"`
}

// TableName specifies the table name for Person
func (Person) TableName() string {
	return "people"
}

// Expert is the profile for external experts
type Expert struct {
	PersonID    uuid.UUID `gorm:"type:uuid;primary_key" json:"-"`
	CompanyName string    `gorm:"type:varchar(50);not null" json:"company_name"`
	JobTitle    string    `gorm:"type:varchar(50);not null" json:"job_title"`
	OfficeTel   string    `gorm:"type:varchar(20)" json:"office_tel"`
	Address     string    `gorm:"type:varchar(500)" json:"address"`
	BankAccount string    `gorm:"type:varchar(50)" json:"bank_account"`
}

// Assistant is the profile for department assistants
type Assistant struct {
	PersonID  uuid.UUID `gorm:"type:uuid;primary_key" json:"-"`
	OfficeTel string    `gorm:"type:varchar(20)" json:"office_tel"`
}

// DeptProf is the profile for professors of the department
type DeptProf struct {
	PersonID  uuid.UUID `gorm:"type:uuid;primary_key" json:"-"`
	JobTitle  string    `gorm:"type:varchar(50);not null" json:"job_title"`
	OfficeTel string    `gorm:"type:varchar(20)" json:"office_tel"`
}

// OtherProf is the profile for professors from other universities
type OtherProf struct {
	PersonID    uuid.UUID `gorm:"type:uuid;primary_key" json:"-"`
	UnivName    string    `gorm:"type:varchar(50);not null" json:"univ_name"`
	DeptName    string    `gorm:"type:varchar(50);not null" json:"dept_name"`
	JobTitle    string    `gorm:"type:varchar(50);not null" json:"job_title"`
	OfficeTel   string    `gorm:"type:varchar(20)" json:"office_tel"`
	Address     string    `gorm:"type:varchar(500)" json:"address"`
	BankAccount string    `gorm:"type:varchar(50)" json:"bank_account"`
}

// Student is the profile for students
type Student struct {
	PersonID  uuid.UUID        `gorm:"type:uuid;primary_key" json:"-"`
	StudentID string           `gorm:"type:varchar(50);uniqueIndex;not null" json:"student_id"`
	Program   StudentProgram   `gorm:"type:varchar(20);not null" json:"program"`
	StudyYear StudentStudyYear `gorm:"type:varchar(20);not null" json:"study_year"`
}

// Profile is the tagged union over the five profile shapes. Exactly one
// branch must be set and it must match the person type it is applied with.
type Profile struct {
	Expert    *Expert
	Assistant *Assistant
	DeptProf  *DeptProf
	OtherProf *OtherProf
	Student   *Student
}

// Matches reports whether the populated branch corresponds to the given tag.
func (p Profile) Matches(t PersonType) bool {
	switch t {
	case PersonTypeExpert:
		return p.Expert != nil
	case PersonTypeAssistant:
		return p.Assistant != nil
	case PersonTypeDeptProf:
		return p.DeptProf != nil
	case PersonTypeOtherProf:
		return p.OtherProf != nil
	case PersonTypeStudent:
		return p.Student != nil
	}
	return false
}

// ApplyProfile clears every profile branch and attaches the one matching
// typ, updating the tag in the same step so tag and profile cannot diverge.
func (p *Person) ApplyProfile(typ PersonType, profile Profile) error {
	if !typ.IsValid() {
		return ErrInvalidPersonType
	}
	if !profile.Matches(typ) {
		return ErrProfileMismatch
	}

	p.Type = typ
	p.ExpertInfo = nil
	p.AssistantInfo = nil
	p.DeptProfInfo = nil
	p.OtherProfInfo = nil
	p.StudentInfo = nil

	switch typ {
	case PersonTypeExpert:
		profile.Expert.PersonID = p.ID
		p.ExpertInfo = profile.Expert
	case PersonTypeAssistant:
		profile.Assistant.PersonID = p.ID
		p.AssistantInfo = profile.Assistant
	case PersonTypeDeptProf:
		profile.DeptProf.PersonID = p.ID
		p.DeptProfInfo = profile.DeptProf
	case PersonTypeOtherProf:
		profile.OtherProf.PersonID = p.ID
		p.OtherProfInfo = profile.OtherProf
	case PersonTypeStudent:
		profile.Student.PersonID = p.ID
		p.StudentInfo = profile.Student
	}
	return nil
}

// ActiveProfile returns the profile branch matching the person's tag.
func (p *Person) ActiveProfile() Profile {
	switch p.Type {
	case PersonTypeExpert:
		return Profile{Expert: p.ExpertInfo}
	case PersonTypeAssistant:
		return Profile{Assistant: p.AssistantInfo}
	case PersonTypeDeptProf:
		return Profile{DeptProf: p.DeptProfInfo}
	case PersonTypeOtherProf:
		return Profile{OtherProf: p.OtherProfInfo}
	case PersonTypeStudent:
		return Profile{Student: p.StudentInfo}
	}
	return Profile{}
}

// Validate validates the directory fields of a person
func (p *Person) Validate() error {
	if p.Name == "" {
		return ErrInvalidName
	}
	if p.Email == "" {
		return ErrInvalidEmail
	}
	if !p.Gender.IsValid() {
		return ErrInvalidGender
	}
	if !p.Type.IsValid() {
		return ErrInvalidPersonType
	}
	return nil
}
