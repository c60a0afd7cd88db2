package repository

import (
	"gorm.io/gorm"

	"meeting-notes-backend/internal/note/domain"
)

// EmailShareRepository defines the interface for the email share audit trail.
// Shares are append-only: one row per successful send, never updated or deleted.
type EmailShareRepository interface {
	// Create appends an email share record.
	Create(share *domain.EmailShare) error
	// ListByNote returns the shares recorded for a note, oldest first.
	ListByNote(noteID uint) ([]domain.EmailShare, error)
}

// emailShareRepository implements EmailShareRepository interface
type emailShareRepository struct {
	db *gorm.DB
}

// NewEmailShareRepository creates a new instance of emailShareRepository
func NewEmailShareRepository(db *gorm.DB) EmailShareRepository {
	return &emailShareRepository{
		db: db,
	}
}

func (r *emailShareRepository) Create(share *domain.EmailShare) error {
	return r.db.Create(share).Error
}

func (r *emailShareRepository) ListByNote(noteID uint) ([]domain.EmailShare, error) {
	var shares []domain.EmailShare
	err := r.db.Where("meeting_note_id = ?", noteID).Order("id").Find(&shares).Error
	if err != nil {
		return nil, err
	}
	return shares, nil
}
