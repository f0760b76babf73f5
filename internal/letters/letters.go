// Package letters generates ready-to-use plain-text documents: leave
// applications and student resumes.
package letters

import (
	"fmt"
	"strings"
	"time"
)

// LeaveApplication renders a leave letter for the given student. All three
// fields are required; the letter is dated with now.
func LeaveApplication(name, period, reason string, now time.Time) (string, error) {
	name = strings.TrimSpace(name)
	period = strings.TrimSpace(period)
	reason = strings.TrimSpace(reason)
	if name == "" || period == "" || reason == "" {
		return "", fmt.Errorf("name, leave period and reason are required")
	}

	today := now.Format("January 2, 2006")

	letter := fmt.Sprintf(`Date: %s

To,
The Principal/Class Teacher
[School/College Name]

Subject: Application for Leave

Respected Sir/Madam,

I am %s, a student of your institution. I am writing to request leave from %s.

%s

I kindly request you to grant me leave for the mentioned period. I will ensure to complete all missed assignments and catch up with the coursework.

Thank you for your understanding and consideration.

Yours sincerely,
%s`, today, name, period, reason, name)

	return letter, nil
}

// Project is one portfolio entry of a resume.
type Project struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// ResumeInput collects the fields of a student resume. Name, email,
// education and skills are required; phone and projects are optional.
type ResumeInput struct {
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Education string    `json:"education"`
	Skills    string    `json:"skills"`
	Projects  []Project `json:"projects"`
}

// Resume renders a plain-text resume.
func Resume(in ResumeInput) (string, error) {
	name := strings.TrimSpace(in.Name)
	email := strings.TrimSpace(in.Email)
	education := strings.TrimSpace(in.Education)
	skills := strings.TrimSpace(in.Skills)
	if name == "" || email == "" || education == "" || skills == "" {
		return "", fmt.Errorf("name, email, education and skills are required")
	}

	phone := strings.TrimSpace(in.Phone)
	if phone == "" {
		phone = "Phone Number"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n%s | %s\n\n", strings.ToUpper(name), email, phone)
	b.WriteString(strings.Repeat("━", 40))
	fmt.Fprintf(&b, "\n\nEDUCATION\n%s\n\nSKILLS\n%s", education, skills)

	if len(in.Projects) > 0 {
		b.WriteString("\n\nPROJECTS")
		for i, p := range in.Projects {
			fmt.Fprintf(&b, "\n\n%d. %s\n   %s", i+1, strings.TrimSpace(p.Title), strings.TrimSpace(p.Description))
		}
	}

	return b.String(), nil
}
