package letters

import (
	"strings"
	"testing"
	"time"
)

func TestLeaveApplication(t *testing.T) {
	now := time.Date(2024, 5, 15, 10, 0, 0, 0, time.Local)

	letter, err := LeaveApplication("  Ayesha Khan ", "May 20 to May 22", "I have a family function to attend.", now)
	if err != nil {
		t.Fatalf("LeaveApplication: %v", err)
	}

	for _, want := range []string{
		"Date: May 15, 2024",
		"Subject: Application for Leave",
		"I am Ayesha Khan, a student of your institution.",
		"request leave from May 20 to May 22.",
		"I have a family function to attend.",
		"Yours sincerely,\nAyesha Khan",
	} {
		if !strings.Contains(letter, want) {
			t.Errorf("letter missing %q", want)
		}
	}
}

func TestLeaveApplicationValidation(t *testing.T) {
	now := time.Now()
	tests := []struct {
		name, period, reason string
	}{
		{"", "May 20", "reason"},
		{"Ayesha", "   ", "reason"},
		{"Ayesha", "May 20", ""},
	}
	for i, tt := range tests {
		if _, err := LeaveApplication(tt.name, tt.period, tt.reason, now); err == nil {
			t.Errorf("case %d: expected validation error", i)
		}
	}
}

func TestResume(t *testing.T) {
	out, err := Resume(ResumeInput{
		Name:      "Ayesha Khan",
		Email:     "ayesha@example.com",
		Phone:     "0300-1234567",
		Education: "BS Computer Science, 2026",
		Skills:    "Go, SQL, Writing",
		Projects: []Project{
			{Title: "Study Planner", Description: "A weekly study planner."},
			{Title: "Notes Cleaner", Description: "Formats rough notes."},
		},
	})
	if err != nil {
		t.Fatalf("Resume: %v", err)
	}

	if !strings.HasPrefix(out, "AYESHA KHAN\n") {
		t.Errorf("header = %q", strings.SplitN(out, "\n", 2)[0])
	}
	for _, want := range []string{
		"ayesha@example.com | 0300-1234567",
		"EDUCATION\nBS Computer Science, 2026",
		"SKILLS\nGo, SQL, Writing",
		"PROJECTS",
		"1. Study Planner\n   A weekly study planner.",
		"2. Notes Cleaner\n   Formats rough notes.",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("resume missing %q", want)
		}
	}
}

func TestResumeOptionalFields(t *testing.T) {
	out, err := Resume(ResumeInput{
		Name:      "Ali",
		Email:     "ali@example.com",
		Education: "FSc",
		Skills:    "Math",
	})
	if err != nil {
		t.Fatalf("Resume: %v", err)
	}
	if !strings.Contains(out, "ali@example.com | Phone Number") {
		t.Error("missing phone placeholder")
	}
	if strings.Contains(out, "PROJECTS") {
		t.Error("empty projects rendered a PROJECTS section")
	}
}

func TestResumeValidation(t *testing.T) {
	base := ResumeInput{Name: "Ali", Email: "ali@example.com", Education: "FSc", Skills: "Math"}

	missing := []func(ResumeInput) ResumeInput{
		func(in ResumeInput) ResumeInput { in.Name = " "; return in },
		func(in ResumeInput) ResumeInput { in.Email = ""; return in },
		func(in ResumeInput) ResumeInput { in.Education = ""; return in },
		func(in ResumeInput) ResumeInput { in.Skills = ""; return in },
	}
	for i, drop := range missing {
		if _, err := Resume(drop(base)); err == nil {
			t.Errorf("case %d: expected validation error", i)
		}
	}
}
