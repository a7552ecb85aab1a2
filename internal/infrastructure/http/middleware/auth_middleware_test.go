package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/csiedev/meeting-records/pkg/jwt"
)

func newRequest(t *testing.T, configure func(*http.Request)) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/meetings", nil)
	if configure != nil {
		configure(req)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func okHandler(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

func TestAuthSetsIdentity(t *testing.T) {
	manager := jwt.NewManager("s1", "s2", 15*time.Minute, time.Hour)
	userID := uuid.New()
	token, err := manager.GenerateAccessToken(userID, "alice@example.edu", true)
	if err != nil {
		t.Fatalf("GenerateAccessToken failed: %v", err)
	}

	c, _ := newRequest(t, func(req *http.Request) {
		req.Header.Set("Authorization", "Bearer "+token)
	})
	if err := Auth(manager)(okHandler)(c); err != nil {
		t.Fatalf("middleware rejected a valid token: %v", err)
	}

	got, ok := UserID(c)
	if !ok || got != userID {
		t.Fatalf("UserID = %v ok=%v, want %v", got, ok, userID)
	}
	if !IsAdmin(c) {
		t.Fatalf("IsAdmin = false, want true")
	}
}

func TestAuthAcceptsCookie(t *testing.T) {
	manager := jwt.NewManager("s1", "s2", 15*time.Minute, time.Hour)
	token, _ := manager.GenerateAccessToken(uuid.New(), "alice@example.edu", false)

	c, _ := newRequest(t, func(req *http.Request) {
		req.AddCookie(&http.Cookie{Name: "access_token", Value: token})
	})
	if err := Auth(manager)(okHandler)(c); err != nil {
		t.Fatalf("middleware rejected a cookie token: %v", err)
	}
}

func TestAuthRejectsMissingOrBadToken(t *testing.T) {
	manager := jwt.NewManager("s1", "s2", 15*time.Minute, time.Hour)

	for name, configure := range map[string]func(*http.Request){
		"no token":  nil,
		"bad token": func(req *http.Request) { req.Header.Set("Authorization", "Bearer garbage") },
		"wrong scheme": func(req *http.Request) {
			req.Header.Set("Authorization", "Basic dXNlcjpwdw==")
		},
	} {
		c, _ := newRequest(t, configure)
		err := Auth(manager)(okHandler)(c)

		var httpErr *echo.HTTPError
		if !errors.As(err, &httpErr) || httpErr.Code != http.StatusUnauthorized {
			t.Fatalf("%s: expected 401, got %v", name, err)
		}
	}
}

func TestRequireAdmin(t *testing.T) {
	c, _ := newRequest(t, nil)
	c.Set(ContextIsAdmin, false)

	err := RequireAdmin()(okHandler)(c)
	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) || httpErr.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %v", err)
	}

	c.Set(ContextIsAdmin, true)
	if err := RequireAdmin()(okHandler)(c); err != nil {
		t.Fatalf("admin rejected: %v", err)
	}
}
