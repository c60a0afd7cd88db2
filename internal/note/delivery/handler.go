package delivery

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"meeting-notes-backend/internal/note/dto"
	"meeting-notes-backend/internal/note/repository"
	"meeting-notes-backend/internal/note/usecase"
	"meeting-notes-backend/internal/notification"
	"meeting-notes-backend/pkg/extract"
)

// NoteHandler handles the meeting note HTTP endpoints
type NoteHandler struct {
	noteUsecase usecase.NoteUsecase
}

// NewNoteHandler creates a new NoteHandler
func NewNoteHandler(noteUsecase usecase.NoteUsecase) *NoteHandler {
	return &NoteHandler{
		noteUsecase: noteUsecase,
	}
}

// Upload handles transcript upload and summarization
// POST /upload (multipart: file, custom_prompt)
func (h *NoteHandler) Upload(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		if isTooLarge(err) {
			c.JSON(http.StatusRequestEntityTooLarge, dto.ErrorResponse{Error: "File too large. Maximum size is 16MB"})
			return
		}
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "No file selected"})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		if isTooLarge(err) {
			c.JSON(http.StatusRequestEntityTooLarge, dto.ErrorResponse{Error: "File too large. Maximum size is 16MB"})
			return
		}
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Failed to read uploaded file"})
		return
	}

	note, err := h.noteUsecase.CreateFromUpload(c.Request.Context(), header.Filename, data, c.PostForm("custom_prompt"))
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrPromptRequired),
			errors.Is(err, extract.ErrUnsupportedType),
			errors.Is(err, extract.ErrInvalidUTF8),
			errors.Is(err, extract.ErrNoText),
			errors.Is(err, extract.ErrEmptyContent):
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		case errors.Is(err, usecase.ErrSummarization):
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "An unexpected error occurred"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.UploadResponse{
		Success: true,
		NoteID:  note.ID,
		Summary: note.AISummary,
	})
}

// GetNote returns a meeting note
// GET /notes/:note_id
func (h *NoteHandler) GetNote(c *gin.Context) {
	id, ok := parseNoteID(c)
	if !ok {
		return
	}

	note, err := h.noteUsecase.GetNote(id)
	if err != nil {
		if errors.Is(err, repository.ErrNoteNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Resource not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, note)
}

// UpdateSummary overwrites the edited summary of a note
// POST /update_summary/:note_id
func (h *NoteHandler) UpdateSummary(c *gin.Context) {
	id, ok := parseNoteID(c)
	if !ok {
		return
	}

	var req dto.UpdateSummaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Summary cannot be empty"})
		return
	}

	if err := h.noteUsecase.UpdateSummary(id, req.Summary); err != nil {
		switch {
		case errors.Is(err, usecase.ErrEmptySummary):
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Summary cannot be empty"})
		case errors.Is(err, repository.ErrNoteNotFound):
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Resource not found"})
		default:
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to update summary"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Success: true, Message: "Summary updated successfully"})
}

// ListShares returns the email share audit trail of a note
// GET /notes/:note_id/shares
func (h *NoteHandler) ListShares(c *gin.Context) {
	id, ok := parseNoteID(c)
	if !ok {
		return
	}

	shares, err := h.noteUsecase.ListShares(id)
	if err != nil {
		if errors.Is(err, repository.ErrNoteNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Resource not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, dto.SharesResponse{Shares: shares})
}

// CheckEmailConfig reports whether SMTP credentials are configured
// GET /check_email_config
func (h *NoteHandler) CheckEmailConfig(c *gin.Context) {
	configured := h.noteUsecase.EmailConfigured()
	message := "Email credentials not configured"
	if configured {
		message = "Email service is ready"
	}

	c.JSON(http.StatusOK, dto.EmailConfigResponse{Configured: configured, Message: message})
}

// SendEmail emails the note's effective summary to the given recipients
// POST /send_email/:note_id
func (h *NoteHandler) SendEmail(c *gin.Context) {
	id, ok := parseNoteID(c)
	if !ok {
		return
	}

	// A missing or malformed body is treated as an empty recipient list so
	// the configuration check still runs first, as the workflow requires.
	var req dto.SendEmailRequest
	_ = c.ShouldBindJSON(&req)

	if err := h.noteUsecase.ShareByEmail(c.Request.Context(), id, req.Emails); err != nil {
		switch {
		case errors.Is(err, notification.ErrNotConfigured):
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error:     "Email service is not configured. Please contact the administrator to set up email credentials.",
				ErrorType: "configuration",
			})
		case errors.Is(err, usecase.ErrNoRecipients):
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		case errors.Is(err, repository.ErrNoteNotFound):
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Resource not found"})
		case errors.Is(err, usecase.ErrSendFailed):
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
				Error:     classifySendError(err),
				ErrorType: "sending",
			})
		default:
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "An unexpected error occurred while sending email"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Success: true, Message: "Email sent successfully"})
}

// isTooLarge reports whether the error came from the request body cap.
func isTooLarge(err error) bool {
	var maxErr *http.MaxBytesError
	return errors.As(err, &maxErr) || strings.Contains(err.Error(), "request body too large")
}

// classifySendError translates an SMTP failure into one of a few
// human-readable categories; raw relay errors never reach the client as-is.
func classifySendError(err error) string {
	message := strings.ToLower(err.Error())

	switch {
	case strings.Contains(message, "auth") || strings.Contains(message, "password"):
		return "Email authentication failed. Please check email credentials."
	case strings.Contains(message, "connect") || strings.Contains(message, "network") || strings.Contains(message, "dial"):
		return "Network error. Please check your internet connection and try again."
	case strings.Contains(message, "recipient") || strings.Contains(message, "invalid"):
		return "One or more email addresses appear to be invalid."
	default:
		cause := strings.TrimPrefix(err.Error(), usecase.ErrSendFailed.Error()+": ")
		return "Email sending failed: " + cause
	}
}

// parseNoteID reads the note id path parameter. A non-numeric id behaves like
// an unknown resource, matching the generic 404 shape.
func parseNoteID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("note_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Resource not found"})
		return 0, false
	}
	return uint(id), true
}
