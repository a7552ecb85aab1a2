package feedback

import (
	"context"
	"errors"
	"testing"

	"github.com/csiedev/meeting-records/internal/domain/entities"
	usecaseErrors "github.com/csiedev/meeting-records/internal/usecase/errors"
)

type fakeFeedbackRepo struct {
	entries []*entities.Feedback
}

func (r *fakeFeedbackRepo) Create(ctx context.Context, feedback *entities.Feedback) error {
	r.entries = append(r.entries, feedback)
	return nil
}

func (r *fakeFeedbackRepo) List(ctx context.Context) ([]*entities.Feedback, error) {
	return r.entries, nil
}

func (r *fakeFeedbackRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(r.entries)), nil
}

func TestSubmit(t *testing.T) {
	repo := &fakeFeedbackRepo{}
	svc := NewFeedbackService(repo)
	ctx := context.Background()

	entry, err := svc.Submit(ctx, "  the search box is hard to find  ")
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	if entry.Content != "the search box is hard to find" {
		t.Fatalf("content not trimmed: %q", entry.Content)
	}

	if _, err := svc.Submit(ctx, "   "); !errors.Is(err, usecaseErrors.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}

	got, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(got))
	}
}
