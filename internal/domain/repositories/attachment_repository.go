package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/csiedev/meeting-records/internal/domain/entities"
)

// AttachmentRepository defines the interface for attachment metadata
type AttachmentRepository interface {
	Create(ctx context.Context, attachment *entities.Attachment) error
	FindByID(ctx context.Context, id uuid.UUID) (*entities.Attachment, error)
	ListByMeeting(ctx context.Context, meetingID uuid.UUID) ([]*entities.Attachment, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// FeedbackRepository defines the interface for anonymous feedback
type FeedbackRepository interface {
	Create(ctx context.Context, feedback *entities.Feedback) error
	List(ctx context.Context) ([]*entities.Feedback, error)
	Count(ctx context.Context) (int64, error)
}

// TemplateRepository defines the interface for meeting templates
type TemplateRepository interface {
	Create(ctx context.Context, template *entities.MeetingTemplate) error
	List(ctx context.Context) ([]*entities.MeetingTemplate, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
