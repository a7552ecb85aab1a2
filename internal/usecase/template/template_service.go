package template

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/csiedev/meeting-records/internal/domain/entities"
	"github.com/csiedev/meeting-records/internal/domain/repositories"
	usecaseErrors "github.com/csiedev/meeting-records/internal/usecase/errors"
)

// TemplateService manages reusable attendee lists for meeting creation
type TemplateService struct {
	templateRepo repositories.TemplateRepository
	personRepo   repositories.PersonRepository
}

// NewTemplateService creates a new template service
func NewTemplateService(templateRepo repositories.TemplateRepository, personRepo repositories.PersonRepository) *TemplateService {
	return &TemplateService{
		templateRepo: templateRepo,
		personRepo:   personRepo,
	}
}

// CreateTemplateInput carries the fields of a new template
type CreateTemplateInput struct {
	Name          string
	Title         string
	Time          string
	Location      string
	Type          entities.MeetingType
	ChairID       uuid.UUID
	MinuteTakerID uuid.UUID
	AttendeeIDs   []uuid.UUID
	GuestIDs      []uuid.UUID
}

// Create stores a template after checking every referenced person exists
func (s *TemplateService) Create(ctx context.Context, input CreateTemplateInput) (*entities.MeetingTemplate, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, usecaseErrors.ErrInvalidInput
	}
	if !input.Type.IsValid() {
		return nil, usecaseErrors.ErrInvalidMeetingType
	}

	all := append(append([]uuid.UUID{}, input.AttendeeIDs...), input.GuestIDs...)
	all = append(all, input.ChairID, input.MinuteTakerID)
	if len(all) > 0 {
		people, err := s.personRepo.FindByIDs(ctx, all)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve people: %w", err)
		}
		known := make(map[uuid.UUID]bool, len(people))
		for _, p := range people {
			known[p.ID] = true
		}
		for _, id := range all {
			if !known[id] {
				return nil, usecaseErrors.ErrUnknownPersonInSet
			}
		}
	}

	tmpl := &entities.MeetingTemplate{
		Name:          name,
		Title:         input.Title,
		Time:          input.Time,
		Location:      input.Location,
		Type:          input.Type,
		ChairID:       input.ChairID,
		MinuteTakerID: input.MinuteTakerID,
	}
	if err := tmpl.SetAttendeeIDs(input.AttendeeIDs); err != nil {
		return nil, fmt.Errorf("failed to encode attendee list: %w", err)
	}
	if err := tmpl.SetGuestIDs(input.GuestIDs); err != nil {
		return nil, fmt.Errorf("failed to encode guest list: %w", err)
	}

	if err := s.templateRepo.Create(ctx, tmpl); err != nil {
		return nil, fmt.Errorf("failed to store template: %w", err)
	}
	return tmpl, nil
}

// List returns all stored templates
func (s *TemplateService) List(ctx context.Context) ([]*entities.MeetingTemplate, error) {
	templates, err := s.templateRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list templates: %w", err)
	}
	return templates, nil
}

// Delete removes a template
func (s *TemplateService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.templateRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return usecaseErrors.ErrTemplateNotFound
		}
		return fmt.Errorf("failed to delete template: %w", err)
	}
	return nil
}
