package handler

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/csiedev/meeting-records/errors"
	personDTO "github.com/csiedev/meeting-records/internal/adapter/dto/person"
	"github.com/csiedev/meeting-records/internal/adapter/presenter"
	"github.com/csiedev/meeting-records/internal/domain/entities"
	"github.com/csiedev/meeting-records/internal/infrastructure/http/middleware"
	"github.com/csiedev/meeting-records/internal/usecase/person"
)

// Person handles directory endpoints
type Person struct {
	personService *person.PersonService
	logger        *zap.Logger
}

// NewPerson creates a new person handler
func NewPerson(personService *person.PersonService, logger *zap.Logger) *Person {
	return &Person{
		personService: personService,
		logger:        logger,
	}
}

// Create adds a directory entry
func (h *Person) Create(c echo.Context) error {
	var req personDTO.CreatePersonRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument(err.Error()))
	}

	created, err := h.personService.CreatePerson(c.Request().Context(), person.CreatePersonInput{
		Name:    req.Name,
		Gender:  entities.GenderType(req.Gender),
		Phone:   req.Phone,
		Email:   req.Email,
		Type:    entities.PersonType(req.Type),
		IsAdmin: req.IsAdmin,
		Profile: toProfile(&req),
	})
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, presenter.ToPersonResponse(created))
}

// List returns every directory entry
func (h *Person) List(c echo.Context) error {
	people, err := h.personService.ListPeople(c.Request().Context())
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, presenter.ToPersonResponses(people))
}

// Get returns one directory entry
func (h *Person) Get(c echo.Context) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	p, err := h.personService.GetPerson(c.Request().Context(), id)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, presenter.ToPersonResponse(p))
}

// Me returns the authenticated caller's directory entry
func (h *Person) Me(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return HandleError(h.logger, c, errors.ErrUnauthenticated())
	}

	p, err := h.personService.GetPerson(c.Request().Context(), userID)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, presenter.ToPersonResponse(p))
}

// Update edits a directory entry, switching the profile atomically
// when the person type changes
func (h *Person) Update(c echo.Context) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	var req personDTO.UpdatePersonRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument(err.Error()))
	}

	updated, err := h.personService.UpdatePerson(c.Request().Context(), person.UpdatePersonInput{
		ID:      id,
		Name:    req.Name,
		Gender:  entities.GenderType(req.Gender),
		Phone:   req.Phone,
		Email:   req.Email,
		Type:    entities.PersonType(req.Type),
		IsAdmin: req.IsAdmin,
		Profile: toProfile(&req.CreatePersonRequest),
	})
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, presenter.ToPersonResponse(updated))
}

// Delete removes a directory entry
func (h *Person) Delete(c echo.Context) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	if err := h.personService.DeletePerson(c.Request().Context(), id); err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, nil)
}

// toProfile converts the request's profile payload to the entity union
func toProfile(req *personDTO.CreatePersonRequest) entities.Profile {
	var profile entities.Profile
	if req.Expert != nil {
		profile.Expert = &entities.Expert{
			CompanyName: req.Expert.CompanyName,
			JobTitle:    req.Expert.JobTitle,
			OfficeTel:   req.Expert.OfficeTel,
			Address:     req.Expert.Address,
			BankAccount: req.Expert.BankAccount,
		}
	}
	if req.Assistant != nil {
		profile.Assistant = &entities.Assistant{
			OfficeTel: req.Assistant.OfficeTel,
		}
	}
	if req.DeptProf != nil {
		profile.DeptProf = &entities.DeptProf{
			JobTitle:  req.DeptProf.JobTitle,
			OfficeTel: req.DeptProf.OfficeTel,
		}
	}
	if req.OtherProf != nil {
		profile.OtherProf = &entities.OtherProf{
			UnivName:    req.OtherProf.UnivName,
			DeptName:    req.OtherProf.DeptName,
			JobTitle:    req.OtherProf.JobTitle,
			OfficeTel:   req.OtherProf.OfficeTel,
			Address:     req.OtherProf.Address,
			BankAccount: req.OtherProf.BankAccount,
		}
	}
	if req.Student != nil {
		profile.Student = &entities.Student{
			StudentID: req.Student.StudentID,
			Program:   entities.StudentProgram(req.Student.Program),
			StudyYear: entities.StudentStudyYear(req.Student.StudyYear),
		}
	}
	return profile
}
