package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"meeting-notes-backend/internal/note/delivery"
	"meeting-notes-backend/internal/note/usecase"
	"meeting-notes-backend/pkg/config"
)

// SetupRouter builds the gin engine with middleware and all routes registered.
func SetupRouter(cfg *config.Config, noteUsecase usecase.NoteUsecase) *gin.Engine {
	r := gin.New()
	r.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}))
	r.Use(RequestID())
	r.Use(RequestLogger())
	r.Use(MaxBodySize(cfg.MaxUploadBytes))
	r.Use(CORS())

	noteHandler := delivery.NewNoteHandler(noteUsecase)

	r.GET("/", func(c *gin.Context) {
		c.File("./static/index.html")
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.POST("/upload", noteHandler.Upload)
	r.POST("/update_summary/:note_id", noteHandler.UpdateSummary)
	r.GET("/check_email_config", noteHandler.CheckEmailConfig)
	r.POST("/send_email/:note_id", noteHandler.SendEmail)

	r.GET("/notes/:note_id", noteHandler.GetNote)
	r.GET("/notes/:note_id/shares", noteHandler.ListShares)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Resource not found"})
	})

	return r
}
