package repository

import (
	"errors"

	"gorm.io/gorm"

	"meeting-notes-backend/internal/note/domain"
)

// ErrNoteNotFound is returned when no meeting note exists for the given id.
var ErrNoteNotFound = errors.New("note not found")

// NoteRepository defines the interface for meeting note operations.
// Notes are never deleted; the only mutable field is the edited summary.
type NoteRepository interface {
	// Create inserts a new meeting note and fills in its assigned id.
	Create(note *domain.MeetingNote) error
	// GetByID retrieves a note by id, returning ErrNoteNotFound when absent.
	GetByID(id uint) (*domain.MeetingNote, error)
	// UpdateEditedSummary overwrites the edited summary of an existing note.
	UpdateEditedSummary(id uint, summary string) error
}

// noteRepository implements NoteRepository interface
type noteRepository struct {
	db *gorm.DB
}

// NewNoteRepository creates a new instance of noteRepository
func NewNoteRepository(db *gorm.DB) NoteRepository {
	return &noteRepository{
		db: db,
	}
}

func (r *noteRepository) Create(note *domain.MeetingNote) error {
	return r.db.Create(note).Error
}

func (r *noteRepository) GetByID(id uint) (*domain.MeetingNote, error) {
	var note domain.MeetingNote
	err := r.db.First(&note, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoteNotFound
		}
		return nil, err
	}
	return &note, nil
}

func (r *noteRepository) UpdateEditedSummary(id uint, summary string) error {
	result := r.db.Model(&domain.MeetingNote{}).Where("id = ?", id).Update("edited_summary", summary)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNoteNotFound
	}
	return nil
}
