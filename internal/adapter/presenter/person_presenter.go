package presenter

import (
	personDTO "github.com/csiedev/meeting-records/internal/adapter/dto/person"
	"github.com/csiedev/meeting-records/internal/domain/entities"
)

// ToPersonResponse converts a Person entity to its response DTO
func ToPersonResponse(p *entities.Person) *personDTO.PersonResponse {
	if p == nil {
		return nil
	}

	response := &personDTO.PersonResponse{
		ID:        p.ID.String(),
		Name:      p.Name,
		Gender:    string(p.Gender),
		Phone:     p.Phone,
		Email:     p.Email,
		Type:      string(p.Type),
		IsAdmin:   p.IsAdmin,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}

	if p.ExpertInfo != nil {
		response.Expert = &personDTO.ExpertPayload{
			CompanyName: p.ExpertInfo.CompanyName,
			JobTitle:    p.ExpertInfo.JobTitle,
			OfficeTel:   p.ExpertInfo.OfficeTel,
			Address:     p.ExpertInfo.Address,
			BankAccount: p.ExpertInfo.BankAccount,
		}
	}
	if p.AssistantInfo != nil {
		response.Assistant = &personDTO.AssistantPayload{
			OfficeTel: p.AssistantInfo.OfficeTel,
		}
	}
	if p.DeptProfInfo != nil {
		response.DeptProf = &personDTO.DeptProfPayload{
			JobTitle:  p.DeptProfInfo.JobTitle,
			OfficeTel: p.DeptProfInfo.OfficeTel,
		}
	}
	if p.OtherProfInfo != nil {
		response.OtherProf = &personDTO.OtherProfPayload{
			UnivName:    p.OtherProfInfo.UnivName,
			DeptName:    p.OtherProfInfo.DeptName,
			JobTitle:    p.OtherProfInfo.JobTitle,
			OfficeTel:   p.OtherProfInfo.OfficeTel,
			Address:     p.OtherProfInfo.Address,
			BankAccount: p.OtherProfInfo.BankAccount,
		}
	}
	if p.StudentInfo != nil {
		response.Student = &personDTO.StudentPayload{
			StudentID: p.StudentInfo.StudentID,
			Program:   string(p.StudentInfo.Program),
			StudyYear: string(p.StudentInfo.StudyYear),
		}
	}

	return response
}

// ToPersonResponses converts a slice of Person entities
func ToPersonResponses(people []*entities.Person) []*personDTO.PersonResponse {
	responses := make([]*personDTO.PersonResponse, 0, len(people))
	for _, p := range people {
		responses = append(responses, ToPersonResponse(p))
	}
	return responses
}
