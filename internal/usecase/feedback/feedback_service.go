package feedback

import (
	"context"
	"fmt"
	"strings"

	"github.com/csiedev/meeting-records/internal/domain/entities"
	"github.com/csiedev/meeting-records/internal/domain/repositories"
	usecaseErrors "github.com/csiedev/meeting-records/internal/usecase/errors"
)

// FeedbackService collects anonymous feedback about the system
type FeedbackService struct {
	feedbackRepo repositories.FeedbackRepository
}

// NewFeedbackService creates a new feedback service
func NewFeedbackService(feedbackRepo repositories.FeedbackRepository) *FeedbackService {
	return &FeedbackService{feedbackRepo: feedbackRepo}
}

// Submit stores one anonymous feedback entry
func (s *FeedbackService) Submit(ctx context.Context, content string) (*entities.Feedback, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, usecaseErrors.ErrInvalidInput
	}

	entry := &entities.Feedback{Content: content}
	if err := s.feedbackRepo.Create(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to store feedback: %w", err)
	}
	return entry, nil
}

// List returns all feedback entries, newest first
func (s *FeedbackService) List(ctx context.Context) ([]*entities.Feedback, error) {
	entries, err := s.feedbackRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list feedback: %w", err)
	}
	return entries, nil
}
