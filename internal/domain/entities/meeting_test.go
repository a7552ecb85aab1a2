package entities

import (
	"testing"

	"github.com/google/uuid"
)

func TestIsFullyConfirmed(t *testing.T) {
	m := &Meeting{
		ID:             uuid.New(),
		ChairConfirmed: false,
		Attendees: []Attendee{
			{PersonID: uuid.New(), IsMember: true, IsConfirmed: true},
			{PersonID: uuid.New(), IsMember: false, IsConfirmed: false},
		},
	}
	if m.IsFullyConfirmed() {
		t.Fatalf("confirmed without chair or guest")
	}

	m.ChairConfirmed = true
	if m.IsFullyConfirmed() {
		t.Fatalf("guests must confirm like members")
	}

	m.Attendees[1].IsConfirmed = true
	if !m.IsFullyConfirmed() {
		t.Fatalf("expected fully confirmed")
	}

	// a meeting with an empty ledger needs only the chair
	empty := &Meeting{ChairConfirmed: true}
	if !empty.IsFullyConfirmed() {
		t.Fatalf("empty ledger with confirmed chair should count")
	}
}

func TestMeetingTypeValidity(t *testing.T) {
	for _, typ := range []MeetingType{
		MeetingTypeDeptAffairs, MeetingTypeFacultyEvaluation, MeetingTypeDeptCurriculum,
		MeetingTypeStudentAffairs, MeetingTypeDeptDevelopment, MeetingTypeOther,
	} {
		if !typ.IsValid() {
			t.Fatalf("%q should be valid", typ)
		}
	}
	if MeetingType("Plenary").IsValid() {
		t.Fatalf("unknown meeting type accepted")
	}
}

func TestMotionStatus(t *testing.T) {
	for _, status := range []MotionStatus{MotionInDiscussion, MotionInExecution, MotionClosed} {
		if !status.IsValid() {
			t.Fatalf("%q should be valid", status)
		}
	}
	if MotionStatus("Paused").IsValid() {
		t.Fatalf("unknown motion status accepted")
	}

	m := Motion{Status: MotionClosed}
	if !m.IsClosed() {
		t.Fatalf("IsClosed broken")
	}
}
