package stats

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/csiedev/meeting-records/internal/domain/entities"
	"github.com/csiedev/meeting-records/internal/domain/repositories"
)

// Cache stores serialized reports with a TTL. Backed by Redis in
// production and by the in-memory store when Redis is unavailable.
type Cache interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
}

const (
	overviewKey    = "stats:overview"
	semesterKeyFmt = "stats:semester:%d:%d"
	overviewExpiry = 5 * time.Minute
	semesterExpiry = 15 * time.Minute
)

// Overview is a snapshot of current activity
type Overview struct {
	MeetingsThisWeek int64 `json:"meetings_this_week"`
	MotionsThisWeek  int64 `json:"motions_this_week"`
	People           int64 `json:"people"`
	Feedbacks        int64 `json:"feedbacks"`
}

// MonthBucket is the meeting count of one calendar month
type MonthBucket struct {
	Year  int   `json:"year"`
	Month int   `json:"month"`
	Count int64 `json:"count"`
}

// SemesterReport aggregates one academic semester. Semester 1 runs
// August through January, semester 2 February through July.
type SemesterReport struct {
	Year            int                              `json:"year"`
	Semester        int                              `json:"semester"`
	MonthlyMeetings []MonthBucket                    `json:"monthly_meetings"`
	TotalMeetings   int64                            `json:"total_meetings"`
	TotalMotions    int64                            `json:"total_motions"`
	MotionStatus    map[entities.MotionStatus]int64  `json:"motion_status"`
	MotionPercent   map[entities.MotionStatus]float64 `json:"motion_percent"`
}

// StatsService computes aggregate reports over meetings and motions
type StatsService struct {
	meetingRepo  repositories.MeetingRepository
	motionRepo   repositories.MotionRepository
	personRepo   repositories.PersonRepository
	feedbackRepo repositories.FeedbackRepository
	cache        Cache
	logger       *zap.Logger
}

// NewStatsService creates a new stats service
func NewStatsService(
	meetingRepo repositories.MeetingRepository,
	motionRepo repositories.MotionRepository,
	personRepo repositories.PersonRepository,
	feedbackRepo repositories.FeedbackRepository,
	cache Cache,
	logger *zap.Logger,
) *StatsService {
	return &StatsService{
		meetingRepo:  meetingRepo,
		motionRepo:   motionRepo,
		personRepo:   personRepo,
		feedbackRepo: feedbackRepo,
		cache:        cache,
		logger:       logger,
	}
}

// GetOverview returns the activity snapshot, cached for a few minutes
func (s *StatsService) GetOverview(ctx context.Context) (*Overview, error) {
	var cached Overview
	if s.fromCache(ctx, overviewKey, &cached) {
		return &cached, nil
	}

	now := time.Now()
	weekStart := startOfWeek(now)
	weekEnd := weekStart.AddDate(0, 0, 7)

	meetings, err := s.meetingRepo.CountInRange(ctx, weekStart, weekEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to count meetings: %w", err)
	}
	motions, err := s.motionRepo.CountInRange(ctx, weekStart, weekEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to count motions: %w", err)
	}
	people, err := s.personRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count people: %w", err)
	}
	feedbacks, err := s.feedbackRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count feedbacks: %w", err)
	}

	overview := &Overview{
		MeetingsThisWeek: meetings,
		MotionsThisWeek:  motions,
		People:           people,
		Feedbacks:        feedbacks,
	}
	s.toCache(ctx, overviewKey, overview, overviewExpiry)
	return overview, nil
}

// GetSemesterReport aggregates one semester of the given academic year.
// year is the calendar year the academic year starts in.
func (s *StatsService) GetSemesterReport(ctx context.Context, year, semester int) (*SemesterReport, error) {
	if semester != 1 && semester != 2 {
		return nil, fmt.Errorf("semester must be 1 or 2, got %d", semester)
	}

	key := fmt.Sprintf(semesterKeyFmt, year, semester)
	var cached SemesterReport
	if s.fromCache(ctx, key, &cached) {
		return &cached, nil
	}

	start, end := semesterRange(year, semester)

	counts, err := s.meetingRepo.CountByMonth(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to count meetings by month: %w", err)
	}
	byMonth := make(map[[2]int]int64, len(counts))
	for _, c := range counts {
		byMonth[[2]int{c.Year, int(c.Month)}] = c.Count
	}

	report := &SemesterReport{
		Year:          year,
		Semester:      semester,
		MotionStatus:  make(map[entities.MotionStatus]int64),
		MotionPercent: make(map[entities.MotionStatus]float64),
	}

	// Every month of the semester gets a bucket, zero counts included.
	for cursor := start; cursor.Before(end); cursor = cursor.AddDate(0, 1, 0) {
		bucket := MonthBucket{
			Year:  cursor.Year(),
			Month: int(cursor.Month()),
			Count: byMonth[[2]int{cursor.Year(), int(cursor.Month())}],
		}
		report.TotalMeetings += bucket.Count
		report.MonthlyMeetings = append(report.MonthlyMeetings, bucket)
	}

	statusCounts, err := s.motionRepo.CountByStatusInRange(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to count motions by status: %w", err)
	}
	for _, status := range []entities.MotionStatus{
		entities.MotionInDiscussion,
		entities.MotionInExecution,
		entities.MotionClosed,
	} {
		count := statusCounts[status]
		report.MotionStatus[status] = count
		report.TotalMotions += count
	}
	for status, count := range report.MotionStatus {
		if report.TotalMotions > 0 {
			report.MotionPercent[status] = float64(count) / float64(report.TotalMotions) * 100
		} else {
			report.MotionPercent[status] = 0
		}
	}

	s.toCache(ctx, key, report, semesterExpiry)
	return report, nil
}

func (s *StatsService) fromCache(ctx context.Context, key string, out interface{}) bool {
	raw, ok, err := s.cache.Get(ctx, key)
	if err != nil {
		s.logger.Warn("stats cache read failed", zap.String("key", key), zap.Error(err))
		return false
	}
	if !ok {
		return false
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		s.logger.Warn("stats cache entry corrupt", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

func (s *StatsService) toCache(ctx context.Context, key string, value interface{}, ttl time.Duration) {
	raw, err := json.Marshal(value)
	if err != nil {
		s.logger.Warn("stats cache encode failed", zap.String("key", key), zap.Error(err))
		return
	}
	if err := s.cache.Set(ctx, key, string(raw), ttl); err != nil {
		s.logger.Warn("stats cache write failed", zap.String("key", key), zap.Error(err))
	}
}

// semesterRange returns the half-open [start, end) interval of a
// semester. Semester 1 of year Y is Aug Y through Jan Y+1, semester 2
// is Feb Y+1 through Jul Y+1.
func semesterRange(year, semester int) (time.Time, time.Time) {
	if semester == 1 {
		start := time.Date(year, time.August, 1, 0, 0, 0, 0, time.Local)
		return start, start.AddDate(0, 6, 0)
	}
	start := time.Date(year+1, time.February, 1, 0, 0, 0, 0, time.Local)
	return start, start.AddDate(0, 6, 0)
}

func startOfWeek(t time.Time) time.Time {
	weekday := int(t.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return day.AddDate(0, 0, -(weekday - 1))
}
