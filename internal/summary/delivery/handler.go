package delivery

import (
	"net/http"
	"strconv"
	"strings"

	"summarizer-backend/internal/summary/dto"
	"summarizer-backend/internal/summary/repository"
	"summarizer-backend/internal/summary/usecase"
	"summarizer-backend/pkg/config"
	"summarizer-backend/pkg/fileextract"

	"github.com/gin-gonic/gin"
)

// SummaryHandler handles summary HTTP requests
type SummaryHandler struct {
	summaryUsecase usecase.SummaryUsecase
	config         *config.Config
}

// NewSummaryHandler creates a new SummaryHandler
func NewSummaryHandler(summaryUsecase usecase.SummaryUsecase, cfg *config.Config) *SummaryHandler {
	return &SummaryHandler{
		summaryUsecase: summaryUsecase,
		config:         cfg,
	}
}

// respondError maps the usecase's sentinel errors to HTTP statuses
func respondError(c *gin.Context, err error) {
	switch err.Error() {
	case "summary not found":
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case "unauthorized":
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	}
}

// Create accepts the upload form: either pasted text or a file. The file
// wins when both are present.
// POST /api/summaries
func (h *SummaryHandler) Create(c *gin.Context) {
	userID := c.GetString("userID")

	input := &dto.CreateSummaryInput{
		Title:        strings.TrimSpace(c.PostForm("title")),
		SummaryType:  c.PostForm("summary_type"),
		CustomPrompt: c.PostForm("custom_prompt"),
		Text:         c.PostForm("text_input"),
	}

	fileName := ""
	if fileHeader, err := c.FormFile("file_upload"); err == nil && fileHeader != nil {
		extraction, err := fileextract.Extract(fileHeader, h.config.MaxUploadSize)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		input.Text = extraction.Text
		fileName = extraction.FileName
	}

	summary, err := h.summaryUsecase.CreateSummary(userID, input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp := gin.H{"summary": summary}
	if fileName != "" {
		resp["file_name"] = fileName
	}
	c.JSON(http.StatusCreated, resp)
}

// List returns one page of the user's summaries with search and status
// filters.
// GET /api/summaries
func (h *SummaryHandler) List(c *gin.Context) {
	userID := c.GetString("userID")

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))

	filter := repository.HistoryFilter{
		Search:   strings.TrimSpace(c.Query("search")),
		Status:   c.Query("status"),
		Page:     page,
		PageSize: pageSize,
	}

	history, err := h.summaryUsecase.GetHistory(userID, filter)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, history)
}

// Suggestions returns fuzzy title matches for search-as-you-type
// GET /api/summaries/suggestions
func (h *SummaryHandler) Suggestions(c *gin.Context) {
	userID := c.GetString("userID")

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	suggestions, err := h.summaryUsecase.GetSuggestions(userID, c.Query("q"), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"suggestions": suggestions})
}

// Detail returns the full record with its recent processing and share logs
// GET /api/summaries/:id
func (h *SummaryHandler) Detail(c *gin.Context) {
	userID := c.GetString("userID")

	detail, err := h.summaryUsecase.GetDetail(userID, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, detail)
}

// Edit replaces the user-edited version of the summary
// PUT /api/summaries/:id
func (h *SummaryHandler) Edit(c *gin.Context) {
	userID := c.GetString("userID")

	var req dto.EditSummaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	summary, err := h.summaryUsecase.EditSummary(userID, c.Param("id"), req.EditedSummary)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"summary": summary, "message": "summary updated"})
}

// Delete removes the record and its logs
// DELETE /api/summaries/:id
func (h *SummaryHandler) Delete(c *gin.Context) {
	userID := c.GetString("userID")

	if err := h.summaryUsecase.DeleteSummary(userID, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "summary deleted"})
}

// Generate runs the AI workflow. A failed generation is still a 200 with
// success=false so the client can show the stored error.
// POST /api/summaries/:id/generate
func (h *SummaryHandler) Generate(c *gin.Context) {
	userID := c.GetString("userID")

	result, err := h.summaryUsecase.GenerateSummary(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// Share emails the final summary to a list of recipients
// POST /api/summaries/:id/share
func (h *SummaryHandler) Share(c *gin.Context) {
	userID := c.GetString("userID")

	var req dto.ShareSummaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.summaryUsecase.ShareSummary(userID, c.Param("id"), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// Dashboard returns recent summaries and aggregate counts
// GET /api/dashboard
func (h *SummaryHandler) Dashboard(c *gin.Context) {
	userID := c.GetString("userID")

	dashboard, err := h.summaryUsecase.GetDashboard(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, dashboard)
}
