package domain

import "time"

// EmailShare is the audit record of one successful summary email.
// Rows are append-only: created after a send succeeds, never mutated.
type EmailShare struct {
	ID              uint      `json:"id" gorm:"primaryKey"`
	MeetingNoteID   uint      `json:"meeting_note_id" gorm:"index;not null"`
	RecipientEmails string    `json:"recipient_emails" gorm:"type:text;not null"`
	SentAt          time.Time `json:"sent_at"`
}

// TableName specifies the table name for GORM
func (EmailShare) TableName() string {
	return "email_shares"
}
