package notification

import (
	"errors"
	"strings"
	"testing"

	"meeting-notes-backend/pkg/config"
)

func TestConfigured(t *testing.T) {
	cases := []struct {
		name     string
		username string
		password string
		want     bool
	}{
		{"both set", "user@example.com", "secret", true},
		{"missing password", "user@example.com", "", false},
		{"missing username", "", "secret", false},
		{"neither", "", "", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := NewMailer(&config.Config{EmailUsername: tc.username, EmailPassword: tc.password})
			if m.Configured() != tc.want {
				t.Fatalf("Configured() = %v, want %v", m.Configured(), tc.want)
			}
		})
	}
}

func TestSendSummaryNotConfigured(t *testing.T) {
	m := NewMailer(&config.Config{SMTPHost: "smtp.gmail.com", SMTPPort: 587})

	err := m.SendSummary([]string{"a@x.com"}, "Meeting Summary", "summary", "prompt")
	if !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
}

func TestFormatBody(t *testing.T) {
	body := FormatBody("Team agreed to ship.", "one sentence summary")

	for _, want := range []string{
		`"one sentence summary"`,
		"--- MEETING SUMMARY ---",
		"Team agreed to ship.",
		"--- END SUMMARY ---",
		"This summary was generated using AI and may have been edited for clarity.",
	} {
		if !strings.Contains(body, want) {
			t.Fatalf("body missing %q:\n%s", want, body)
		}
	}

	if strings.Index(body, "--- MEETING SUMMARY ---") > strings.Index(body, "Team agreed to ship.") {
		t.Fatal("summary should appear between the delimiter lines")
	}
}

func TestBuildMessageHeaders(t *testing.T) {
	m := NewMailer(&config.Config{
		EmailUsername: "sender@example.com",
		EmailPassword: "secret",
		SMTPHost:      "smtp.gmail.com",
		SMTPPort:      587,
	})

	msg, err := m.buildMessage([]string{"a@x.com", "b@y.com"}, "Meeting Summary", "summary", "prompt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	raw := string(msg)
	for _, want := range []string{"Subject: Meeting Summary", "a@x.com", "b@y.com", "sender@example.com"} {
		if !strings.Contains(raw, want) {
			t.Fatalf("message missing %q:\n%s", want, raw)
		}
	}
}
