package validator

import (
	"strings"
	"testing"
)

type sampleRequest struct {
	Name  string `json:"name" validate:"required,max=5"`
	Email string `json:"email" validate:"required,email"`
}

func TestValidateReportsJSONFieldNames(t *testing.T) {
	cv := New()

	err := cv.Validate(&sampleRequest{Name: "toolongname", Email: "not-an-email"})
	if err == nil {
		t.Fatal("expected validation error")
	}

	msg := err.Error()
	if !strings.Contains(msg, "name must be at most 5 characters") {
		t.Errorf("message %q missing name length violation", msg)
	}
	if !strings.Contains(msg, "email must be a valid email address") {
		t.Errorf("message %q missing email violation", msg)
	}
	if strings.Contains(msg, "Name") || strings.Contains(msg, "Email") {
		t.Errorf("message %q leaks Go field names", msg)
	}
}

func TestValidatePassesValidStruct(t *testing.T) {
	cv := New()

	if err := cv.Validate(&sampleRequest{Name: "anne", Email: "anne@example.com"}); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}
