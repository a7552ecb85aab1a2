package meeting

import (
	"bytes"
	"context"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/csiedev/meeting-records/internal/domain/entities"
	"github.com/csiedev/meeting-records/internal/domain/repositories"
)

// memStore is an in-memory stand-in for every collaborator of the
// meeting service
type memStore struct {
	people      map[uuid.UUID]*entities.Person
	meetings    map[uuid.UUID]*entities.Meeting
	attendees   map[uuid.UUID][]*entities.Attendee
	attachments map[uuid.UUID]*entities.Attachment
	objects     map[string][]byte
}

func newMemStore() *memStore {
	return &memStore{
		people:      make(map[uuid.UUID]*entities.Person),
		meetings:    make(map[uuid.UUID]*entities.Meeting),
		attendees:   make(map[uuid.UUID][]*entities.Attendee),
		attachments: make(map[uuid.UUID]*entities.Attachment),
		objects:     make(map[string][]byte),
	}
}

func (m *memStore) addPerson(name string) *entities.Person {
	p := &entities.Person{
		ID:     uuid.New(),
		Name:   name,
		Gender: entities.GenderMale,
		Phone:  "0200000000",
		Email:  name + "@example.edu",
		Type:   entities.PersonTypeDeptProf,
		DeptProfInfo: &entities.DeptProf{
			JobTitle: "Professor",
		},
	}
	p.DeptProfInfo.PersonID = p.ID
	m.people[p.ID] = p
	return p
}

// PersonRepository

func (m *memStore) Create(ctx context.Context, person *entities.Person) error {
	m.people[person.ID] = person
	return nil
}

func (m *memStore) FindByID(ctx context.Context, id uuid.UUID) (*entities.Person, error) {
	p, ok := m.people[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (m *memStore) FindByEmail(ctx context.Context, email string) (*entities.Person, error) {
	for _, p := range m.people {
		if p.Email == email {
			return p, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *memStore) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entities.Person, error) {
	seen := make(map[uuid.UUID]bool, len(ids))
	var out []*entities.Person
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		if p, ok := m.people[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *memStore) List(ctx context.Context) ([]*entities.Person, error) {
	var out []*entities.Person
	for _, p := range m.people {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (m *memStore) SearchByName(ctx context.Context, query string) ([]*entities.Person, error) {
	var out []*entities.Person
	for _, p := range m.people {
		if query == "" || containsFold(p.Name, query) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *memStore) ReplaceProfile(ctx context.Context, person *entities.Person, old entities.PersonType) error {
	if _, ok := m.people[person.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	m.people[person.ID] = person
	return nil
}

func (m *memStore) UpdatePassword(ctx context.Context, id uuid.UUID, hash string) error {
	p, ok := m.people[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	p.PasswordHash = &hash
	return nil
}

func (m *memStore) Delete(ctx context.Context, id uuid.UUID) error {
	delete(m.people, id)
	return nil
}

func (m *memStore) Count(ctx context.Context) (int64, error) {
	return int64(len(m.people)), nil
}

func (m *memStore) StudentIDExists(ctx context.Context, studentID string, excludePersonID uuid.UUID) (bool, error) {
	for _, p := range m.people {
		if p.ID != excludePersonID && p.StudentInfo != nil && p.StudentInfo.StudentID == studentID {
			return true, nil
		}
	}
	return false, nil
}

// meetingRepo wraps memStore as a MeetingRepository; separate type so
// the two Create/FindByID signatures don't collide
type meetingRepo struct{ s *memStore }

func (r meetingRepo) Create(ctx context.Context, meeting *entities.Meeting) error {
	stored := *meeting
	r.s.meetings[meeting.ID] = &stored
	for i := range meeting.Attendees {
		att := meeting.Attendees[i]
		r.s.attendees[meeting.ID] = append(r.s.attendees[meeting.ID], &att)
	}
	return nil
}

func (r meetingRepo) FindByID(ctx context.Context, id uuid.UUID) (*entities.Meeting, error) {
	m, ok := r.s.meetings[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	out := *m
	out.Attendees = nil
	for _, att := range r.s.attendees[id] {
		row := *att
		row.Person = r.s.people[att.PersonID]
		out.Attendees = append(out.Attendees, row)
	}
	out.Attachments = nil
	for _, att := range r.s.attachments {
		if att.MeetingID == id {
			out.Attachments = append(out.Attachments, *att)
		}
	}
	return &out, nil
}

func (r meetingRepo) Update(ctx context.Context, meeting *entities.Meeting) error {
	if _, ok := r.s.meetings[meeting.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	stored := *meeting
	stored.Attendees = nil
	r.s.meetings[meeting.ID] = &stored
	return nil
}

func (r meetingRepo) ReplaceAgenda(ctx context.Context, meetingID uuid.UUID, announcements []entities.Announcement,
	motions []entities.Motion, extempores []entities.Extempore) error {
	m, ok := r.s.meetings[meetingID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	m.Announcements = announcements
	m.Motions = motions
	m.Extempores = extempores
	return nil
}

func (r meetingRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.s.meetings, id)
	delete(r.s.attendees, id)
	for attID, att := range r.s.attachments {
		if att.MeetingID == id {
			delete(r.s.attachments, attID)
		}
	}
	return nil
}

func (r meetingRepo) List(ctx context.Context, filters repositories.MeetingFilters) ([]*entities.Meeting, int64, error) {
	var out []*entities.Meeting
	for id := range r.s.meetings {
		m, _ := r.FindByID(ctx, id)
		if filters.Search != "" && !containsFold(m.Title, filters.Search) && !containsFold(m.ChairSpeech, filters.Search) {
			continue
		}
		if filters.Year != nil && m.Time.Year() != *filters.Year {
			continue
		}
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Time.After(out[j].Time) })
	return out, int64(len(out)), nil
}

func (r meetingRepo) SearchAgenda(ctx context.Context, query string, visibleTo *uuid.UUID) ([]*entities.Meeting, error) {
	var out []*entities.Meeting
	for id := range r.s.meetings {
		m, _ := r.FindByID(ctx, id)
		for _, mo := range r.s.meetings[id].Motions {
			if containsFold(mo.Description, query) || containsFold(mo.Content, query) {
				out = append(out, m)
				break
			}
		}
	}
	return out, nil
}

func (r meetingRepo) DistinctYears(ctx context.Context) ([]int, error) {
	seen := make(map[int]bool)
	for _, m := range r.s.meetings {
		seen[m.Time.Year()] = true
	}
	var years []int
	for y := range seen {
		years = append(years, y)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(years)))
	return years, nil
}

func (r meetingRepo) CountInRange(ctx context.Context, from, to time.Time) (int64, error) {
	var n int64
	for _, m := range r.s.meetings {
		if !m.Time.Before(from) && m.Time.Before(to) {
			n++
		}
	}
	return n, nil
}

func (r meetingRepo) CountByMonth(ctx context.Context, from, to time.Time) ([]repositories.MonthCount, error) {
	counts := make(map[[2]int]int64)
	for _, m := range r.s.meetings {
		if !m.Time.Before(from) && m.Time.Before(to) {
			counts[[2]int{m.Time.Year(), int(m.Time.Month())}]++
		}
	}
	var out []repositories.MonthCount
	for k, v := range counts {
		out = append(out, repositories.MonthCount{Year: k[0], Month: time.Month(k[1]), Count: v})
	}
	return out, nil
}

func (r meetingRepo) SetChairConfirmed(ctx context.Context, meetingID uuid.UUID, confirmed bool) error {
	m, ok := r.s.meetings[meetingID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	m.ChairConfirmed = confirmed
	return nil
}

func (r meetingRepo) SetArchived(ctx context.Context, meetingID uuid.UUID, archived bool) error {
	m, ok := r.s.meetings[meetingID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	m.Archived = archived
	return nil
}

// attendeeRepo wraps memStore as an AttendeeRepository
type attendeeRepo struct{ s *memStore }

func (r attendeeRepo) Replace(ctx context.Context, meetingID uuid.UUID, memberIDs, guestIDs []uuid.UUID) error {
	existing := make(map[uuid.UUID]*entities.Attendee)
	for _, att := range r.s.attendees[meetingID] {
		existing[att.PersonID] = att
	}

	var next []*entities.Attendee
	appendRow := func(id uuid.UUID, member bool) {
		row := &entities.Attendee{MeetingID: meetingID, PersonID: id, IsMember: member}
		if prev, ok := existing[id]; ok {
			row.IsPresent = prev.IsPresent
			row.IsConfirmed = prev.IsConfirmed
		}
		next = append(next, row)
	}
	for _, id := range memberIDs {
		appendRow(id, true)
	}
	for _, id := range guestIDs {
		appendRow(id, false)
	}
	r.s.attendees[meetingID] = next
	return nil
}

func (r attendeeRepo) FindByMeeting(ctx context.Context, meetingID uuid.UUID) ([]*entities.Attendee, error) {
	var out []*entities.Attendee
	for _, att := range r.s.attendees[meetingID] {
		row := *att
		row.Person = r.s.people[att.PersonID]
		out = append(out, &row)
	}
	return out, nil
}

func (r attendeeRepo) FindByMeetingAndPerson(ctx context.Context, meetingID, personID uuid.UUID) (*entities.Attendee, error) {
	for _, att := range r.s.attendees[meetingID] {
		if att.PersonID == personID {
			return att, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r attendeeRepo) SetPresence(ctx context.Context, meetingID uuid.UUID, presentIDs []uuid.UUID) error {
	present := make(map[uuid.UUID]bool, len(presentIDs))
	for _, id := range presentIDs {
		present[id] = true
	}
	for _, att := range r.s.attendees[meetingID] {
		att.IsPresent = present[att.PersonID]
	}
	return nil
}

func (r attendeeRepo) SetConfirmed(ctx context.Context, meetingID, personID uuid.UUID, confirmed bool) error {
	for _, att := range r.s.attendees[meetingID] {
		if att.PersonID == personID {
			att.IsConfirmed = confirmed
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r attendeeRepo) CountUnconfirmed(ctx context.Context, meetingID uuid.UUID) (int64, error) {
	var n int64
	for _, att := range r.s.attendees[meetingID] {
		if !att.IsConfirmed {
			n++
		}
	}
	return n, nil
}

// attachmentRepo wraps memStore as an AttachmentRepository
type attachmentRepo struct{ s *memStore }

func (r attachmentRepo) Create(ctx context.Context, attachment *entities.Attachment) error {
	r.s.attachments[attachment.ID] = attachment
	return nil
}

func (r attachmentRepo) FindByID(ctx context.Context, id uuid.UUID) (*entities.Attachment, error) {
	att, ok := r.s.attachments[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return att, nil
}

func (r attachmentRepo) ListByMeeting(ctx context.Context, meetingID uuid.UUID) ([]*entities.Attachment, error) {
	var out []*entities.Attachment
	for _, att := range r.s.attachments {
		if att.MeetingID == meetingID {
			out = append(out, att)
		}
	}
	return out, nil
}

func (r attachmentRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.s.attachments, id)
	return nil
}

// objectStore wraps memStore as an ObjectStore
type objectStore struct{ s *memStore }

func (o objectStore) UploadFile(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) error {
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, reader); err != nil {
		return err
	}
	o.s.objects[objectName] = buf.Bytes()
	return nil
}

func (o objectStore) PresignedURL(ctx context.Context, objectName, downloadName string, expiry time.Duration) (string, error) {
	return "https://storage.local/" + objectName, nil
}

func (o objectStore) RemoveFile(ctx context.Context, objectName string) error {
	delete(o.s.objects, objectName)
	return nil
}

func newTestService(s *memStore) *MeetingService {
	return NewMeetingService(meetingRepo{s}, attendeeRepo{s}, s, attachmentRepo{s}, objectStore{s})
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
