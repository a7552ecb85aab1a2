package motion

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

// MotionService handles motion (decision tracking) business logic.
// Status is a free field over the enumerated values: edits may assign
// any of the three statuses regardless of the previous one.
type MotionService struct {
	motionRepo  repositories.MotionRepository
	meetingRepo repositories.MeetingRepository
}

// NewMotionService creates a new motion service
func NewMotionService(motionRepo repositories.MotionRepository, meetingRepo repositories.MeetingRepository) *MotionService {
	return &MotionService{motionRepo: motionRepo, meetingRepo: meetingRepo}
}

// CreateMotionInput represents input for creating a motion
type CreateMotionInput struct {
	MeetingID   uuid.UUID
	Description string
	Content     string
	Status      entities.MotionStatus // empty defaults to InDiscussion
	Resolution  string
	Execution   string
}

// UpdateMotionInput represents input for editing a motion
type UpdateMotionInput struct {
	ID          uuid.UUID
	Description string
	Content     string
	Status      entities.MotionStatus
	Resolution  string
	Execution   string
}

// CreateMotion creates a motion attached to a meeting
func (s *MotionService) CreateMotion(ctx context.Context, input CreateMotionInput) (*entities.Motion, error) {
	if _, err := s.meetingRepo.FindByID(ctx, input.MeetingID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecaseErrors.ErrMeetingNotFound
		}
		return nil, fmt.Errorf("failed to get meeting: %w", err)
	}

	status := input.Status
	if status == "" {
		status = entities.MotionInDiscussion
	}
	if !status.IsValid() {
		return nil, usecaseErrors.ErrInvalidMotionStatus
	}

	motion := &entities.Motion{
		ID:          uuid.New(),
		MeetingID:   input.MeetingID,
		Description: input.Description,
		Content:     input.Content,
		Status:      status,
		Resolution:  input.Resolution,
		Execution:   input.Execution,
	}
	if err := s.motionRepo.Create(ctx, motion); err != nil {
		return nil, fmt.Errorf("failed to create motion: %w", err)
	}
	return motion, nil
}

// GetMotion retrieves a motion by ID
func (s *MotionService) GetMotion(ctx context.Context, id uuid.UUID) (*entities.Motion, error) {
	motion, err := s.motionRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecaseErrors.ErrMotionNotFound
		}
		return nil, fmt.Errorf("failed to get motion: %w", err)
	}
	return motion, nil
}

// UpdateMotion edits a motion; any enumerated status is accepted
func (s *MotionService) UpdateMotion(ctx context.Context, input UpdateMotionInput) (*entities.Motion, error) {
	motion, err := s.GetMotion(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if !input.Status.IsValid() {
		return nil, usecaseErrors.ErrInvalidMotionStatus
	}

	motion.Description = input.Description
	motion.Content = input.Content
	motion.Status = input.Status
	motion.Resolution = input.Resolution
	motion.Execution = input.Execution

	if err := s.motionRepo.Update(ctx, motion); err != nil {
		return nil, fmt.Errorf("failed to update motion: %w", err)
	}
	return motion, nil
}

// UpdateMotionStatus changes only the status of a motion
func (s *MotionService) UpdateMotionStatus(ctx context.Context, id uuid.UUID, status entities.MotionStatus) (*entities.Motion, error) {
	motion, err := s.GetMotion(ctx, id)
	if err != nil {
		return nil, err
	}
	if !status.IsValid() {
		return nil, usecaseErrors.ErrInvalidMotionStatus
	}
	motion.Status = status
	if err := s.motionRepo.Update(ctx, motion); err != nil {
		return nil, fmt.Errorf("failed to update motion status: %w", err)
	}
	return motion, nil
}

// DeleteMotion removes a motion
func (s *MotionService) DeleteMotion(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetMotion(ctx, id); err != nil {
		return err
	}
	if err := s.motionRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete motion: %w", err)
	}
	return nil
}

// ListMotions retrieves motions for decision tracking. A nil visibleTo
// lists everything (admin); otherwise only motions of meetings the
// person participates in.
func (s *MotionService) ListMotions(ctx context.Context, visibleTo *uuid.UUID) ([]*entities.Motion, error) {
	motions, err := s.motionRepo.ListVisible(ctx, visibleTo)
	if err != nil {
		return nil, fmt.Errorf("failed to list motions: %w", err)
	}
	return motions, nil
}
