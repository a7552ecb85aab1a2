package stats

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/csiedev/meeting-records/internal/domain/entities"
	"github.com/csiedev/meeting-records/internal/domain/repositories"
	"github.com/csiedev/meeting-records/internal/infrastructure/cache"
)

// countingMeetingRepo serves the counting queries from a fixed list of
// meeting times and records how often it was asked
type countingMeetingRepo struct {
	times []time.Time
	calls int
}

func (r *countingMeetingRepo) Create(ctx context.Context, meeting *entities.Meeting) error {
	return nil
}

func (r *countingMeetingRepo) FindByID(ctx context.Context, id uuid.UUID) (*entities.Meeting, error) {
	return nil, nil
}

func (r *countingMeetingRepo) Update(ctx context.Context, meeting *entities.Meeting) error { return nil }

func (r *countingMeetingRepo) ReplaceAgenda(ctx context.Context, meetingID uuid.UUID, announcements []entities.Announcement,
	motions []entities.Motion, extempores []entities.Extempore) error {
	return nil
}

func (r *countingMeetingRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }

func (r *countingMeetingRepo) List(ctx context.Context, filters repositories.MeetingFilters) ([]*entities.Meeting, int64, error) {
	return nil, 0, nil
}

func (r *countingMeetingRepo) SearchAgenda(ctx context.Context, query string, visibleTo *uuid.UUID) ([]*entities.Meeting, error) {
	return nil, nil
}

func (r *countingMeetingRepo) DistinctYears(ctx context.Context) ([]int, error) { return nil, nil }

func (r *countingMeetingRepo) CountInRange(ctx context.Context, from, to time.Time) (int64, error) {
	r.calls++
	var n int64
	for _, ts := range r.times {
		if !ts.Before(from) && ts.Before(to) {
			n++
		}
	}
	return n, nil
}

func (r *countingMeetingRepo) CountByMonth(ctx context.Context, from, to time.Time) ([]repositories.MonthCount, error) {
	r.calls++
	byMonth := make(map[[2]int]int64)
	for _, ts := range r.times {
		if !ts.Before(from) && ts.Before(to) {
			byMonth[[2]int{ts.Year(), int(ts.Month())}]++
		}
	}
	var out []repositories.MonthCount
	for k, v := range byMonth {
		out = append(out, repositories.MonthCount{Year: k[0], Month: time.Month(k[1]), Count: v})
	}
	return out, nil
}

func (r *countingMeetingRepo) SetChairConfirmed(ctx context.Context, meetingID uuid.UUID, confirmed bool) error {
	return nil
}

func (r *countingMeetingRepo) SetArchived(ctx context.Context, meetingID uuid.UUID, archived bool) error {
	return nil
}

type fixedMotionRepo struct {
	byStatus map[entities.MotionStatus]int64
	total    int64
}

func (r *fixedMotionRepo) Create(ctx context.Context, motion *entities.Motion) error { return nil }

func (r *fixedMotionRepo) FindByID(ctx context.Context, id uuid.UUID) (*entities.Motion, error) {
	return nil, nil
}

func (r *fixedMotionRepo) Update(ctx context.Context, motion *entities.Motion) error { return nil }

func (r *fixedMotionRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }

func (r *fixedMotionRepo) ListByMeeting(ctx context.Context, meetingID uuid.UUID) ([]*entities.Motion, error) {
	return nil, nil
}

func (r *fixedMotionRepo) ListVisible(ctx context.Context, visibleTo *uuid.UUID) ([]*entities.Motion, error) {
	return nil, nil
}

func (r *fixedMotionRepo) CountByStatusInRange(ctx context.Context, from, to time.Time) (map[entities.MotionStatus]int64, error) {
	return r.byStatus, nil
}

func (r *fixedMotionRepo) CountInRange(ctx context.Context, from, to time.Time) (int64, error) {
	return r.total, nil
}

type fixedPersonRepo struct {
	repositories.PersonRepository
	total int64
}

func (r *fixedPersonRepo) Count(ctx context.Context) (int64, error) { return r.total, nil }

type fixedFeedbackRepo struct {
	total int64
}

func (r *fixedFeedbackRepo) Create(ctx context.Context, feedback *entities.Feedback) error {
	return nil
}

func (r *fixedFeedbackRepo) List(ctx context.Context) ([]*entities.Feedback, error) { return nil, nil }

func (r *fixedFeedbackRepo) Count(ctx context.Context) (int64, error) { return r.total, nil }

func newRedisCache(t *testing.T) *cache.RedisStore {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return cache.NewRedisStore(client)
}

func TestSemesterRange(t *testing.T) {
	start, end := semesterRange(2024, 1)
	if start.Month() != time.August || start.Year() != 2024 {
		t.Fatalf("semester 1 start = %v, want Aug 2024", start)
	}
	if end.Month() != time.February || end.Year() != 2025 {
		t.Fatalf("semester 1 end = %v, want Feb 2025", end)
	}

	start, end = semesterRange(2024, 2)
	if start.Month() != time.February || start.Year() != 2025 {
		t.Fatalf("semester 2 start = %v, want Feb 2025", start)
	}
	if end.Month() != time.August || end.Year() != 2025 {
		t.Fatalf("semester 2 end = %v, want Aug 2025", end)
	}
}

func TestStartOfWeek(t *testing.T) {
	// 2025-03-05 is a Wednesday; its week starts Monday 2025-03-03
	got := startOfWeek(time.Date(2025, time.March, 5, 15, 30, 0, 0, time.UTC))
	want := time.Date(2025, time.March, 3, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("startOfWeek = %v, want %v", got, want)
	}

	// Sunday belongs to the week that started the previous Monday
	got = startOfWeek(time.Date(2025, time.March, 9, 1, 0, 0, 0, time.UTC))
	if !got.Equal(want) {
		t.Fatalf("startOfWeek(sunday) = %v, want %v", got, want)
	}
}

func TestGetSemesterReport(t *testing.T) {
	meetingRepo := &countingMeetingRepo{times: []time.Time{
		time.Date(2024, time.September, 3, 10, 0, 0, 0, time.Local),
		time.Date(2024, time.September, 17, 10, 0, 0, 0, time.Local),
		time.Date(2024, time.December, 10, 10, 0, 0, 0, time.Local),
		// outside the semester, must not count
		time.Date(2025, time.March, 1, 10, 0, 0, 0, time.Local),
	}}
	motionRepo := &fixedMotionRepo{byStatus: map[entities.MotionStatus]int64{
		entities.MotionInDiscussion: 1,
		entities.MotionClosed:       3,
	}}
	svc := NewStatsService(meetingRepo, motionRepo, &fixedPersonRepo{}, &fixedFeedbackRepo{},
		cache.NewMemoryStore(), zap.NewNop())

	report, err := svc.GetSemesterReport(context.Background(), 2024, 1)
	if err != nil {
		t.Fatalf("GetSemesterReport failed: %v", err)
	}

	if len(report.MonthlyMeetings) != 6 {
		t.Fatalf("expected 6 month buckets, got %d", len(report.MonthlyMeetings))
	}
	if report.MonthlyMeetings[0].Month != int(time.August) || report.MonthlyMeetings[0].Count != 0 {
		t.Fatalf("expected zero-filled August bucket first, got %+v", report.MonthlyMeetings[0])
	}
	if report.MonthlyMeetings[1].Count != 2 {
		t.Fatalf("September count = %d, want 2", report.MonthlyMeetings[1].Count)
	}
	if report.TotalMeetings != 3 {
		t.Fatalf("TotalMeetings = %d, want 3", report.TotalMeetings)
	}
	if report.TotalMotions != 4 {
		t.Fatalf("TotalMotions = %d, want 4", report.TotalMotions)
	}
	if report.MotionPercent[entities.MotionClosed] != 75 {
		t.Fatalf("closed percent = %v, want 75", report.MotionPercent[entities.MotionClosed])
	}
	if report.MotionStatus[entities.MotionInExecution] != 0 {
		t.Fatalf("expected zero count for InExecution, got %d", report.MotionStatus[entities.MotionInExecution])
	}
}

func TestGetSemesterReportRejectsBadSemester(t *testing.T) {
	svc := NewStatsService(&countingMeetingRepo{}, &fixedMotionRepo{}, &fixedPersonRepo{},
		&fixedFeedbackRepo{}, cache.NewMemoryStore(), zap.NewNop())
	if _, err := svc.GetSemesterReport(context.Background(), 2024, 3); err == nil {
		t.Fatalf("expected error for semester 3")
	}
}

func TestGetSemesterReportUsesCache(t *testing.T) {
	meetingRepo := &countingMeetingRepo{times: []time.Time{
		time.Date(2024, time.October, 1, 10, 0, 0, 0, time.Local),
	}}
	svc := NewStatsService(meetingRepo, &fixedMotionRepo{}, &fixedPersonRepo{},
		&fixedFeedbackRepo{}, newRedisCache(t), zap.NewNop())
	ctx := context.Background()

	first, err := svc.GetSemesterReport(ctx, 2024, 1)
	if err != nil {
		t.Fatalf("GetSemesterReport failed: %v", err)
	}
	callsAfterFirst := meetingRepo.calls

	second, err := svc.GetSemesterReport(ctx, 2024, 1)
	if err != nil {
		t.Fatalf("GetSemesterReport (cached) failed: %v", err)
	}
	if meetingRepo.calls != callsAfterFirst {
		t.Fatalf("expected second call to be served from cache, repo calls went %d -> %d",
			callsAfterFirst, meetingRepo.calls)
	}
	if second.TotalMeetings != first.TotalMeetings || len(second.MonthlyMeetings) != len(first.MonthlyMeetings) {
		t.Fatalf("cached report differs: %+v vs %+v", second, first)
	}
}

func TestGetOverview(t *testing.T) {
	now := time.Now()
	meetingRepo := &countingMeetingRepo{times: []time.Time{
		now,                    // this week
		now.AddDate(0, 0, -14), // an earlier week
	}}
	svc := NewStatsService(meetingRepo, &fixedMotionRepo{total: 5}, &fixedPersonRepo{total: 12},
		&fixedFeedbackRepo{total: 3}, cache.NewMemoryStore(), zap.NewNop())

	overview, err := svc.GetOverview(context.Background())
	if err != nil {
		t.Fatalf("GetOverview failed: %v", err)
	}
	if overview.MeetingsThisWeek != 1 {
		t.Fatalf("MeetingsThisWeek = %d, want 1", overview.MeetingsThisWeek)
	}
	if overview.MotionsThisWeek != 5 || overview.People != 12 || overview.Feedbacks != 3 {
		t.Fatalf("unexpected overview: %+v", overview)
	}

	// second read comes from the cache
	calls := meetingRepo.calls
	if _, err := svc.GetOverview(context.Background()); err != nil {
		t.Fatalf("GetOverview (cached) failed: %v", err)
	}
	if meetingRepo.calls != calls {
		t.Fatalf("expected cached overview, repo calls went %d -> %d", calls, meetingRepo.calls)
	}
}
