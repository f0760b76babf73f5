// Package assistant implements the rule-based StudentSathi chat helper:
// language detection, assignment intent recognition and template-driven
// assignment generation. No model calls; every reply is derived from
// keyword rules.
package assistant

import (
	"regexp"
	"strings"
	"sync"
)

// Language is the detected input language of a chat message.
type Language string

const (
	LangEnglish   Language = "english"
	LangRomanUrdu Language = "roman-urdu"
	LangUrdu      Language = "urdu"
)

var (
	urduScript       = regexp.MustCompile(`[\x{0600}-\x{06FF}]`)
	romanUrduMarkers = []string{"aap", "mujhe", "kaise", "kya", "hai", "ho", "bana", "do", "kar", "ke", "par", "chahiye"}
)

// DetectLanguage classifies a message. Arabic-script text is Urdu; latin
// text containing at least two roman-urdu marker words is roman-urdu;
// everything else is English.
func DetectLanguage(text string) Language {
	if urduScript.MatchString(text) {
		return LangUrdu
	}
	lower := strings.ToLower(text)
	matches := 0
	for _, marker := range romanUrduMarkers {
		if strings.Contains(lower, marker) {
			matches++
		}
	}
	if matches >= 2 {
		return LangRomanUrdu
	}
	return LangEnglish
}

var assignmentKeywords = []string{
	"assignment", "bana", "likho", "create", "generate", "write",
	"chahiye", "kar do", "likh do", "banao", "likhna", "project",
}

// IsAssignmentRequest reports whether a message asks for an assignment.
func IsAssignmentRequest(text string) bool {
	lower := strings.ToLower(text)
	for _, keyword := range assignmentKeywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}

// IsConfirmation reports whether a message confirms a pending request.
func IsConfirmation(text string) bool {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "yes", "haan", "han", "y":
		return true
	}
	return false
}

var topicNoise = []string{
	"assignment on",
	"assignment about",
	"create assignment on",
	"write assignment on",
	"generate assignment on",
	"mujhe",
	"par assignment",
	"chahiye",
	"bana do",
	"likh do",
	"assignment",
	"create",
	"write",
	"generate",
}

// ExtractTopic strips request phrasing from a message and keeps what is
// left as the assignment topic.
func ExtractTopic(input string) string {
	topic := input
	for _, phrase := range topicNoise {
		re := regexp.MustCompile(`(?i)` + regexp.QuoteMeta(phrase))
		topic = re.ReplaceAllString(topic, "")
	}
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return "General Topic"
	}
	return topic
}

// Params describe a requested assignment.
type Params struct {
	Topic    string `json:"topic"`
	Level    string `json:"level"`
	Length   string `json:"length"`
	Language string `json:"language"`
}

// ParamsFromInput derives assignment parameters from a raw request.
func ParamsFromInput(input string) Params {
	return Params{
		Topic:    ExtractTopic(input),
		Level:    "Intermediate",
		Length:   "Medium",
		Language: "English",
	}
}

// ContextualResponse answers a non-assignment message in the detected
// language.
func ContextualResponse(input string, lang Language) string {
	lower := strings.ToLower(input)

	if strings.Contains(lower, "help") || strings.Contains(lower, "madad") || strings.Contains(lower, "kaise") {
		if lang == LangEnglish {
			return "I can help you create complete assignments on any topic. Just tell me the topic, and I will generate a full assignment in academic English for you automatically. You can also ask me about any feature on this page!"
		}
		return "Main aapke liye kisi bhi topic par complete assignment bana sakta hoon. Bas topic bata do, aur main academic English mein poora assignment generate kar dunga. Aap mujhse is page ke kisi bhi feature ke baare mein bhi pooch sakte ho!"
	}

	if lang == LangEnglish {
		return "I am here to help you create assignments. Tell me what topic you need an assignment on, and I will generate it for you in proper academic English. You can also ask me about any feature on this page."
	}
	return "Main yahan aapki assignment banane mein madad ke liye hoon. Mujhe batao kis topic par assignment chahiye, aur main aapke liye proper academic English mein bana dunga. Aap is page ke kisi bhi feature ke baare mein bhi pooch sakte ho."
}

// Reply is a single assistant turn.
type Reply struct {
	Text              string   `json:"text"`
	Language          Language `json:"language"`
	NeedsConfirmation bool     `json:"needsConfirmation"`
	Assignment        bool     `json:"assignment"`
	Params            *Params  `json:"params,omitempty"`
}

// Session tracks one conversation's pending confirmation state.
type Session struct {
	mu      sync.Mutex
	pending *Params
}

// NewSession starts an empty conversation.
func NewSession() *Session {
	return &Session{}
}

// Respond processes one user message. An assignment request produces a
// confirmation prompt; a confirmation while a request is pending produces
// the full assignment; anything else gets a contextual answer.
func (s *Session) Respond(message string) Reply {
	s.mu.Lock()
	defer s.mu.Unlock()

	lang := DetectLanguage(message)

	if s.pending != nil {
		if IsConfirmation(message) {
			params := *s.pending
			s.pending = nil
			return Reply{
				Text:       GenerateAssignment(params),
				Language:   lang,
				Assignment: true,
				Params:     &params,
			}
		}
		s.pending = nil
		if lang == LangEnglish {
			return Reply{Text: "No problem, the assignment request has been cancelled. Ask me whenever you need one.", Language: lang}
		}
		return Reply{Text: "Koi baat nahi, assignment request cancel kar di hai. Jab zaroorat ho mujhe bata dena.", Language: lang}
	}

	if IsAssignmentRequest(message) {
		params := ParamsFromInput(message)
		s.pending = &params
		var text string
		if lang == LangEnglish {
			text = "I can create an assignment on \"" + params.Topic + "\" (" + params.Level + ", " + params.Length + " length). Should I generate it? Reply \"yes\" to confirm."
		} else {
			text = "Main \"" + params.Topic + "\" par assignment bana sakta hoon (" + params.Level + ", " + params.Length + " length). Kya main generate kar doon? Confirm karne ke liye \"haan\" likho."
		}
		return Reply{Text: text, Language: lang, NeedsConfirmation: true, Params: &params}
	}

	return Reply{Text: ContextualResponse(message, lang), Language: lang}
}
