package search

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/csiedev/meeting-records/internal/domain/entities"
	"github.com/csiedev/meeting-records/internal/domain/repositories"
	usecaseErrors "github.com/csiedev/meeting-records/internal/usecase/errors"
)

// SearchService runs keyword search across meetings and people
type SearchService struct {
	meetingRepo repositories.MeetingRepository
	personRepo  repositories.PersonRepository
}

// NewSearchService creates a new search service
func NewSearchService(meetingRepo repositories.MeetingRepository, personRepo repositories.PersonRepository) *SearchService {
	return &SearchService{
		meetingRepo: meetingRepo,
		personRepo:  personRepo,
	}
}

// SearchMeetings finds meetings whose title, chair speech or agenda
// items contain the keyword. Non-admins only see meetings they attend.
// Results are deduplicated and ordered newest first.
func (s *SearchService) SearchMeetings(ctx context.Context, keyword string, visibleTo *uuid.UUID) ([]*entities.Meeting, error) {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return nil, usecaseErrors.ErrInvalidInput
	}

	byTitle, _, err := s.meetingRepo.List(ctx, repositories.MeetingFilters{
		VisibleTo: visibleTo,
		Search:    keyword,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to search meetings: %w", err)
	}

	byAgenda, err := s.meetingRepo.SearchAgenda(ctx, keyword, visibleTo)
	if err != nil {
		return nil, fmt.Errorf("failed to search agenda items: %w", err)
	}

	seen := make(map[uuid.UUID]bool, len(byTitle)+len(byAgenda))
	merged := make([]*entities.Meeting, 0, len(byTitle)+len(byAgenda))
	for _, m := range append(byTitle, byAgenda...) {
		if seen[m.ID] {
			continue
		}
		seen[m.ID] = true
		merged = append(merged, m)
	}

	sort.Slice(merged, func(i, j int) bool {
		return merged[i].Time.After(merged[j].Time)
	})

	return merged, nil
}

// SearchPeople finds people by a case-insensitive name fragment
func (s *SearchService) SearchPeople(ctx context.Context, keyword string) ([]*entities.Person, error) {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return nil, usecaseErrors.ErrInvalidInput
	}

	people, err := s.personRepo.SearchByName(ctx, keyword)
	if err != nil {
		return nil, fmt.Errorf("failed to search people: %w", err)
	}
	return people, nil
}
