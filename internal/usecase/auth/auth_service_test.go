package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/csiedev/meeting-records/internal/domain/entities"
	usecaseErrors "github.com/csiedev/meeting-records/internal/usecase/errors"
	"github.com/csiedev/meeting-records/pkg/jwt"
)

type fakePersonRepo struct {
	people map[uuid.UUID]*entities.Person
}

func newFakePersonRepo() *fakePersonRepo {
	return &fakePersonRepo{people: make(map[uuid.UUID]*entities.Person)}
}

func (r *fakePersonRepo) add(name, email, password string, admin bool) *entities.Person {
	p := &entities.Person{
		ID:      uuid.New(),
		Name:    name,
		Email:   email,
		IsAdmin: admin,
		Type:    entities.PersonTypeAssistant,
	}
	if password != "" {
		hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
		s := string(hash)
		p.PasswordHash = &s
	}
	r.people[p.ID] = p
	return p
}

func (r *fakePersonRepo) Create(ctx context.Context, person *entities.Person) error {
	r.people[person.ID] = person
	return nil
}

func (r *fakePersonRepo) FindByID(ctx context.Context, id uuid.UUID) (*entities.Person, error) {
	p, ok := r.people[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (r *fakePersonRepo) FindByEmail(ctx context.Context, email string) (*entities.Person, error) {
	for _, p := range r.people {
		if p.Email == email {
			return p, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakePersonRepo) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entities.Person, error) {
	return nil, nil
}

func (r *fakePersonRepo) List(ctx context.Context) ([]*entities.Person, error) { return nil, nil }

func (r *fakePersonRepo) SearchByName(ctx context.Context, query string) ([]*entities.Person, error) {
	return nil, nil
}

func (r *fakePersonRepo) ReplaceProfile(ctx context.Context, person *entities.Person, old entities.PersonType) error {
	return nil
}

func (r *fakePersonRepo) UpdatePassword(ctx context.Context, id uuid.UUID, hash string) error {
	p, ok := r.people[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	p.PasswordHash = &hash
	return nil
}

func (r *fakePersonRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }

func (r *fakePersonRepo) Count(ctx context.Context) (int64, error) { return 0, nil }

func (r *fakePersonRepo) StudentIDExists(ctx context.Context, studentID string, excludePersonID uuid.UUID) (bool, error) {
	return false, nil
}

type recordingNotifier struct {
	email    string
	name     string
	password string
	calls    int
}

func (n *recordingNotifier) NotifyPasswordRecovery(email, name, password string) error {
	n.email = email
	n.name = name
	n.password = password
	n.calls++
	return nil
}

func newTestService(repo *fakePersonRepo, notifier RecoveryNotifier) *AuthService {
	manager := jwt.NewManager("access-secret", "refresh-secret", 15*time.Minute, 7*24*time.Hour)
	return NewAuthService(repo, manager, notifier)
}

func TestLogin(t *testing.T) {
	repo := newFakePersonRepo()
	alice := repo.add("alice", "alice@example.edu", "correct horse", true)
	svc := newTestService(repo, &recordingNotifier{})
	ctx := context.Background()

	result, err := svc.Login(ctx, "alice@example.edu", "correct horse")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if result.Person.ID != alice.ID {
		t.Fatalf("logged in as %s, want %s", result.Person.ID, alice.ID)
	}
	if result.AccessToken == "" || result.RefreshToken == "" {
		t.Fatalf("expected both tokens, got %+v", result)
	}
	if result.ExpiresIn != int64((15 * time.Minute).Seconds()) {
		t.Fatalf("ExpiresIn = %d, want 900", result.ExpiresIn)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	repo := newFakePersonRepo()
	repo.add("alice", "alice@example.edu", "correct horse", false)
	repo.add("nopass", "nopass@example.edu", "", false)
	svc := newTestService(repo, &recordingNotifier{})
	ctx := context.Background()

	for _, tc := range []struct{ email, password string }{
		{"alice@example.edu", "wrong"},
		{"unknown@example.edu", "whatever"},
		{"nopass@example.edu", ""},
	} {
		if _, err := svc.Login(ctx, tc.email, tc.password); !errors.Is(err, usecaseErrors.ErrInvalidCredentials) {
			t.Fatalf("Login(%s) = %v, want ErrInvalidCredentials", tc.email, err)
		}
	}
}

func TestRefresh(t *testing.T) {
	repo := newFakePersonRepo()
	repo.add("alice", "alice@example.edu", "correct horse", false)
	svc := newTestService(repo, &recordingNotifier{})
	ctx := context.Background()

	login, err := svc.Login(ctx, "alice@example.edu", "correct horse")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	refreshed, err := svc.Refresh(ctx, login.RefreshToken)
	if err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}
	if refreshed.AccessToken == "" {
		t.Fatalf("expected a fresh access token")
	}

	if _, err := svc.Refresh(ctx, "not-a-token"); !errors.Is(err, usecaseErrors.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
	// an access token is not accepted as a refresh token
	if _, err := svc.Refresh(ctx, login.AccessToken); !errors.Is(err, usecaseErrors.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid for access token, got %v", err)
	}
}

func TestChangePassword(t *testing.T) {
	repo := newFakePersonRepo()
	alice := repo.add("alice", "alice@example.edu", "old password", false)
	svc := newTestService(repo, &recordingNotifier{})
	ctx := context.Background()

	if err := svc.ChangePassword(ctx, alice.ID, "wrong", "new password"); !errors.Is(err, usecaseErrors.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if err := svc.ChangePassword(ctx, alice.ID, "old password", "new password"); err != nil {
		t.Fatalf("ChangePassword failed: %v", err)
	}
	if _, err := svc.Login(ctx, "alice@example.edu", "new password"); err != nil {
		t.Fatalf("Login with new password failed: %v", err)
	}
	if _, err := svc.Login(ctx, "alice@example.edu", "old password"); !errors.Is(err, usecaseErrors.ErrInvalidCredentials) {
		t.Fatalf("old password still accepted: %v", err)
	}
}

func TestRecoverPassword(t *testing.T) {
	repo := newFakePersonRepo()
	repo.add("alice", "alice@example.edu", "forgotten", false)
	notifier := &recordingNotifier{}
	svc := newTestService(repo, notifier)
	ctx := context.Background()

	if err := svc.RecoverPassword(ctx, "alice@example.edu"); err != nil {
		t.Fatalf("RecoverPassword failed: %v", err)
	}
	if notifier.calls != 1 || notifier.email != "alice@example.edu" || notifier.name != "alice" {
		t.Fatalf("unexpected notification: %+v", notifier)
	}
	if len(notifier.password) != 12 {
		t.Fatalf("generated password length = %d, want 12", len(notifier.password))
	}
	if _, err := svc.Login(ctx, "alice@example.edu", notifier.password); err != nil {
		t.Fatalf("Login with recovered password failed: %v", err)
	}

	if err := svc.RecoverPassword(ctx, "unknown@example.edu"); !errors.Is(err, usecaseErrors.ErrPersonNotFound) {
		t.Fatalf("expected ErrPersonNotFound, got %v", err)
	}
}
