package assistant

import (
	"strings"
	"testing"
)

func TestDetectLanguage(t *testing.T) {
	tests := []struct {
		input string
		want  Language
	}{
		{"Please write an assignment on photosynthesis", LangEnglish},
		{"hello there", LangEnglish},
		{"mujhe assignment chahiye", LangRomanUrdu},
		{"aap kaise ho", LangRomanUrdu},
		{"kya hai", LangRomanUrdu},
		{"hai there", LangEnglish}, // one marker is not enough
		{"السلام علیکم", LangUrdu},
		{"mujhe یہ chahiye", LangUrdu}, // script wins over markers
		{"", LangEnglish},
	}
	for _, tt := range tests {
		if got := DetectLanguage(tt.input); got != tt.want {
			t.Errorf("DetectLanguage(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestIsAssignmentRequest(t *testing.T) {
	positives := []string{
		"write an assignment on gravity",
		"Assignment chahiye",
		"physics par assignment bana do",
		"generate something about rivers",
		"help me with my PROJECT",
	}
	for _, input := range positives {
		if !IsAssignmentRequest(input) {
			t.Errorf("IsAssignmentRequest(%q) = false", input)
		}
	}

	negatives := []string{
		"how are you",
		"what can you do",
		"",
	}
	for _, input := range negatives {
		if IsAssignmentRequest(input) {
			t.Errorf("IsAssignmentRequest(%q) = true", input)
		}
	}
}

func TestIsConfirmation(t *testing.T) {
	for _, input := range []string{"yes", "YES", " haan ", "han", "y"} {
		if !IsConfirmation(input) {
			t.Errorf("IsConfirmation(%q) = false", input)
		}
	}
	for _, input := range []string{"no", "nah", "yes please", "haan ji", ""} {
		if IsConfirmation(input) {
			t.Errorf("IsConfirmation(%q) = true", input)
		}
	}
}

func TestExtractTopic(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"write assignment on Photosynthesis", "Photosynthesis"},
		{"assignment on the Water Cycle", "the Water Cycle"},
		{"mujhe Gravity par assignment chahiye", "Gravity"},
		{"assignment", "General Topic"},
		{"", "General Topic"},
	}
	for _, tt := range tests {
		if got := ExtractTopic(tt.input); got != tt.want {
			t.Errorf("ExtractTopic(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestParamsFromInput(t *testing.T) {
	params := ParamsFromInput("assignment on the Solar System")
	if params.Topic != "the Solar System" {
		t.Errorf("topic = %q", params.Topic)
	}
	if params.Level != "Intermediate" || params.Length != "Medium" || params.Language != "English" {
		t.Errorf("defaults = %+v", params)
	}
}

func TestSessionAssignmentFlow(t *testing.T) {
	session := NewSession()

	reply := session.Respond("write assignment on Gravity")
	if !reply.NeedsConfirmation {
		t.Fatal("request did not ask for confirmation")
	}
	if reply.Params == nil || reply.Params.Topic != "Gravity" {
		t.Fatalf("pending params = %+v", reply.Params)
	}

	confirmed := session.Respond("yes")
	if !confirmed.Assignment {
		t.Fatal("confirmation did not produce an assignment")
	}
	if !strings.Contains(confirmed.Text, "INTRODUCTION") || !strings.Contains(confirmed.Text, "CONCLUSION") {
		t.Error("assignment text missing template sections")
	}
	if confirmed.Params == nil || confirmed.Params.Topic != "Gravity" {
		t.Errorf("assignment params = %+v", confirmed.Params)
	}

	// The pending state is consumed; another "yes" is just chatter.
	after := session.Respond("yes")
	if after.Assignment || after.NeedsConfirmation {
		t.Errorf("stale confirmation produced %+v", after)
	}
}

func TestSessionCancellation(t *testing.T) {
	session := NewSession()

	session.Respond("write assignment on Gravity")
	reply := session.Respond("no thanks")
	if reply.Assignment || reply.NeedsConfirmation {
		t.Fatalf("cancellation produced %+v", reply)
	}
	if !strings.Contains(reply.Text, "cancelled") {
		t.Errorf("cancellation text = %q", reply.Text)
	}

	// A fresh request after cancelling works normally.
	again := session.Respond("write assignment on Rivers")
	if !again.NeedsConfirmation {
		t.Error("request after cancellation did not ask for confirmation")
	}
}

func TestSessionContextualReplies(t *testing.T) {
	session := NewSession()

	help := session.Respond("can you help me")
	if help.NeedsConfirmation || help.Assignment {
		t.Fatalf("help reply = %+v", help)
	}
	if !strings.Contains(help.Text, "assignments") {
		t.Errorf("help text = %q", help.Text)
	}

	urdu := session.Respond("aap kaise ho mujhe madad do")
	if urdu.Language != LangRomanUrdu {
		t.Errorf("language = %q", urdu.Language)
	}
	if !strings.Contains(urdu.Text, "Main") {
		t.Errorf("roman-urdu reply = %q", urdu.Text)
	}
}
