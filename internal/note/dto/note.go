package dto

import (
	"meeting-notes-backend/internal/note/domain"
)

type UploadResponse struct {
	Success bool   `json:"success"`
	NoteID  uint   `json:"note_id"`
	Summary string `json:"summary"`
}

type UpdateSummaryRequest struct {
	Summary string `json:"summary"`
}

type SendEmailRequest struct {
	Emails []string `json:"emails"`
}

type EmailConfigResponse struct {
	Configured bool   `json:"configured"`
	Message    string `json:"message"`
}

type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type SharesResponse struct {
	Shares []domain.EmailShare `json:"shares"`
}

type ErrorResponse struct {
	Error string `json:"error"`
	// ErrorType discriminates send failures: "configuration" or "sending".
	ErrorType string `json:"error_type,omitempty"`
}
