package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"meeting-notes-backend/internal/note/domain"
	"meeting-notes-backend/internal/note/repository"
	"meeting-notes-backend/internal/notification"
	"meeting-notes-backend/pkg/ai"
	"meeting-notes-backend/pkg/extract"
)

var (
	// ErrPromptRequired is returned when the custom prompt is missing or blank.
	ErrPromptRequired = errors.New("custom prompt is required")
	// ErrEmptySummary is returned when an edited summary is missing or blank.
	ErrEmptySummary = errors.New("summary cannot be empty")
	// ErrNoRecipients is returned when a send request carries no addresses.
	ErrNoRecipients = errors.New("at least one email address is required")
	// ErrSummarization wraps any failure of the AI provider.
	ErrSummarization = errors.New("failed to generate summary")
	// ErrSendFailed wraps any failure of the SMTP delivery.
	ErrSendFailed = errors.New("email sending failed")
)

const emailSubject = "Meeting Summary"

// noteUsecase implements NoteUsecase
type noteUsecase struct {
	noteRepo   repository.NoteRepository
	shareRepo  repository.EmailShareRepository
	summarizer ai.Summarizer
	notifier   Notifier
}

// NewNoteUsecase creates a new note usecase with its collaborators injected.
func NewNoteUsecase(noteRepo repository.NoteRepository, shareRepo repository.EmailShareRepository, summarizer ai.Summarizer, notifier Notifier) NoteUsecase {
	return &noteUsecase{
		noteRepo:   noteRepo,
		shareRepo:  shareRepo,
		summarizer: summarizer,
		notifier:   notifier,
	}
}

func (u *noteUsecase) CreateFromUpload(ctx context.Context, filename string, data []byte, customPrompt string) (*domain.MeetingNote, error) {
	customPrompt = strings.TrimSpace(customPrompt)
	if customPrompt == "" {
		return nil, ErrPromptRequired
	}

	text, err := extract.FromUpload(filename, data)
	if err != nil {
		return nil, err
	}

	summary, err := u.summarizer.Summarize(ctx, text, customPrompt)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSummarization, err)
	}

	note := &domain.MeetingNote{
		OriginalText: text,
		CustomPrompt: customPrompt,
		AISummary:    summary,
	}
	if err := u.noteRepo.Create(note); err != nil {
		return nil, fmt.Errorf("save meeting note: %w", err)
	}

	log.Printf("created meeting note %d (%d chars summary)", note.ID, len(summary))
	return note, nil
}

func (u *noteUsecase) GetNote(id uint) (*domain.MeetingNote, error) {
	return u.noteRepo.GetByID(id)
}

func (u *noteUsecase) UpdateSummary(id uint, summary string) error {
	summary = strings.TrimSpace(summary)
	if summary == "" {
		return ErrEmptySummary
	}
	return u.noteRepo.UpdateEditedSummary(id, summary)
}

func (u *noteUsecase) ListShares(id uint) ([]domain.EmailShare, error) {
	if _, err := u.noteRepo.GetByID(id); err != nil {
		return nil, err
	}
	return u.shareRepo.ListByNote(id)
}

func (u *noteUsecase) EmailConfigured() bool {
	return u.notifier.Configured()
}

// ShareByEmail validates configuration and input before touching the network,
// so a lookup or validation failure never opens an SMTP session. The share
// record is appended only after delivery succeeds.
func (u *noteUsecase) ShareByEmail(ctx context.Context, id uint, recipients []string) error {
	if !u.notifier.Configured() {
		return notification.ErrNotConfigured
	}
	if len(recipients) == 0 {
		return ErrNoRecipients
	}

	note, err := u.noteRepo.GetByID(id)
	if err != nil {
		return err
	}

	if err := u.notifier.SendSummary(recipients, emailSubject, note.EffectiveSummary(), note.CustomPrompt); err != nil {
		return fmt.Errorf("%w: %v", ErrSendFailed, err)
	}

	share := &domain.EmailShare{
		MeetingNoteID:   note.ID,
		RecipientEmails: strings.Join(recipients, ","),
		SentAt:          time.Now(),
	}
	if err := u.shareRepo.Create(share); err != nil {
		return fmt.Errorf("save email share: %w", err)
	}

	log.Printf("emailed summary of note %d to %d recipients", note.ID, len(recipients))
	return nil
}
