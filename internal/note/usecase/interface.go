package usecase

import (
	"context"

	"meeting-notes-backend/internal/note/domain"
)

// NoteUsecase orchestrates the upload/summarize/edit/send workflow.
// Each method is stateless; state lives only in the repositories.
type NoteUsecase interface {
	// CreateFromUpload extracts text from the uploaded file, generates a
	// summary following the custom prompt and persists a new meeting note.
	// Any failure aborts before persistence; no partial note is created.
	CreateFromUpload(ctx context.Context, filename string, data []byte, customPrompt string) (*domain.MeetingNote, error)
	// GetNote retrieves a meeting note by id.
	GetNote(id uint) (*domain.MeetingNote, error)
	// UpdateSummary overwrites the edited summary of an existing note.
	UpdateSummary(id uint, summary string) error
	// ListShares returns the email share audit trail of a note.
	ListShares(id uint) ([]domain.EmailShare, error)
	// EmailConfigured reports whether SMTP credentials are present.
	EmailConfigured() bool
	// ShareByEmail sends the note's effective summary to the recipients and
	// records an email share on success.
	ShareByEmail(ctx context.Context, id uint, recipients []string) error
}

// Notifier delivers a formatted summary email. Implemented by
// notification.Mailer.
type Notifier interface {
	Configured() bool
	SendSummary(recipients []string, subject, summary, instruction string) error
}
