package person

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/csiedev/meeting-records/internal/domain/entities"
	"github.com/csiedev/meeting-records/internal/domain/repositories"
	usecaseErrors "github.com/csiedev/meeting-records/internal/usecase/errors"
)

// PersonService handles directory business logic
type PersonService struct {
	personRepo repositories.PersonRepository
}

// NewPersonService creates a new person service
func NewPersonService(personRepo repositories.PersonRepository) *PersonService {
	return &PersonService{personRepo: personRepo}
}

// CreatePersonInput represents input for creating a directory entry
type CreatePersonInput struct {
	Name    string
	Gender  entities.GenderType
	Phone   string
	Email   string
	Type    entities.PersonType
	IsAdmin bool
	Profile entities.Profile
}

// UpdatePersonInput represents input for editing a directory entry.
// Type and Profile change together; the switch is atomic.
type UpdatePersonInput struct {
	ID      uuid.UUID
	Name    string
	Gender  entities.GenderType
	Phone   string
	Email   string
	Type    entities.PersonType
	IsAdmin bool
	Profile entities.Profile
}

// CreatePerson creates a person with its type-specific profile
func (s *PersonService) CreatePerson(ctx context.Context, input CreatePersonInput) (*entities.Person, error) {
	person := &entities.Person{
		ID:      uuid.New(),
		Name:    input.Name,
		Gender:  input.Gender,
		Phone:   input.Phone,
		Email:   input.Email,
		IsAdmin: input.IsAdmin,
		Type:    input.Type,
	}
	if err := person.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", usecaseErrors.ErrInvalidInput, err)
	}
	if err := person.ApplyProfile(input.Type, input.Profile); err != nil {
		return nil, fmt.Errorf("%w: %s", usecaseErrors.ErrProfileMismatch, err)
	}

	if err := s.checkEmailFree(ctx, input.Email, uuid.Nil); err != nil {
		return nil, err
	}
	if input.Type == entities.PersonTypeStudent {
		if err := s.checkStudentIDFree(ctx, input.Profile.Student.StudentID, uuid.Nil); err != nil {
			return nil, err
		}
	}

	if err := s.personRepo.Create(ctx, person); err != nil {
		return nil, fmt.Errorf("failed to create person: %w", err)
	}
	return s.GetPerson(ctx, person.ID)
}

// GetPerson retrieves a person with its profile
func (s *PersonService) GetPerson(ctx context.Context, id uuid.UUID) (*entities.Person, error) {
	person, err := s.personRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecaseErrors.ErrPersonNotFound
		}
		return nil, fmt.Errorf("failed to get person: %w", err)
	}
	return person, nil
}

// ListPeople retrieves the directory ordered by name
func (s *PersonService) ListPeople(ctx context.Context) ([]*entities.Person, error) {
	people, err := s.personRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list people: %w", err)
	}
	return people, nil
}

// UpdatePerson edits directory fields and, when the type or profile
// changed, replaces the profile atomically with the tag.
func (s *PersonService) UpdatePerson(ctx context.Context, input UpdatePersonInput) (*entities.Person, error) {
	person, err := s.GetPerson(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if err := s.checkEmailFree(ctx, input.Email, input.ID); err != nil {
		return nil, err
	}
	if input.Type == entities.PersonTypeStudent {
		if input.Profile.Student == nil {
			return nil, usecaseErrors.ErrProfileMismatch
		}
		if err := s.checkStudentIDFree(ctx, input.Profile.Student.StudentID, input.ID); err != nil {
			return nil, err
		}
	}

	oldType := person.Type
	person.Name = input.Name
	person.Gender = input.Gender
	person.Phone = input.Phone
	person.Email = input.Email
	person.IsAdmin = input.IsAdmin
	if err := person.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", usecaseErrors.ErrInvalidInput, err)
	}
	if err := person.ApplyProfile(input.Type, input.Profile); err != nil {
		return nil, fmt.Errorf("%w: %s", usecaseErrors.ErrProfileMismatch, err)
	}

	if err := s.personRepo.ReplaceProfile(ctx, person, oldType); err != nil {
		return nil, fmt.Errorf("failed to update person: %w", err)
	}
	return s.GetPerson(ctx, input.ID)
}

// DeletePerson removes a directory entry and its profile
func (s *PersonService) DeletePerson(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetPerson(ctx, id); err != nil {
		return err
	}
	if err := s.personRepo.Delete(ctx, id); err != nil {
		// meetings.chair_id and minute_taker_id are NOT NULL references,
		// so deleting a chair or minute taker trips the constraint
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return usecaseErrors.ErrPersonInUse
		}
		return fmt.Errorf("failed to delete person: %w", err)
	}
	return nil
}

func (s *PersonService) checkEmailFree(ctx context.Context, email string, selfID uuid.UUID) error {
	existing, err := s.personRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return fmt.Errorf("failed to check email: %w", err)
	}
	if existing.ID != selfID {
		return usecaseErrors.ErrEmailAlreadyUsed
	}
	return nil
}

func (s *PersonService) checkStudentIDFree(ctx context.Context, studentID string, selfID uuid.UUID) error {
	taken, err := s.personRepo.StudentIDExists(ctx, studentID, selfID)
	if err != nil {
		return fmt.Errorf("failed to check student id: %w", err)
	}
	if taken {
		return usecaseErrors.ErrStudentIDTaken
	}
	return nil
}
