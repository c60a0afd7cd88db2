package domain

import "time"

// MeetingNote stores one uploaded transcript together with the instruction
// used for summarization and the generated/edited summaries.
type MeetingNote struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	OriginalText  string    `json:"original_text" gorm:"type:text;not null"`
	CustomPrompt  string    `json:"custom_prompt" gorm:"type:text;not null"`
	AISummary     string    `json:"ai_summary" gorm:"type:text;not null"`
	EditedSummary string    `json:"edited_summary,omitempty" gorm:"type:text"`
	CreatedAt     time.Time `json:"created_at"`
}

// TableName specifies the table name for GORM
func (MeetingNote) TableName() string {
	return "meeting_notes"
}

// EffectiveSummary returns the edited summary when the user has set one,
// otherwise the AI-generated summary.
func (n *MeetingNote) EffectiveSummary() string {
	if n.EditedSummary != "" {
		return n.EditedSummary
	}
	return n.AISummary
}
