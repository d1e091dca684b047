package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/bizsuite/erp_backend/internal/core/ports/services"
	"github.com/bizsuite/erp_backend/internal/dto"
	"github.com/bizsuite/erp_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// journalHandler handles HTTP requests related to journal entries.
type journalHandler struct {
	journalService portssvc.JournalSvcFacade
}

func newJournalHandler(journalService portssvc.JournalSvcFacade) *journalHandler {
	return &journalHandler{journalService: journalService}
}

// registerJournalRoutes registers routes related to journal entries.
func registerJournalRoutes(rg *gin.RouterGroup, journalService portssvc.JournalSvcFacade) {
	h := newJournalHandler(journalService)

	entries := rg.Group("/accounts/journal-entries")
	{
		entries.POST("", h.createEntry)
		entries.GET("", h.listEntries)
		entries.GET("/:entryID", h.getEntry)
	}
}

// createEntry godoc
// @Summary Create a journal entry
// @Description Creates a balanced journal entry with its debit/credit lines.
// @Description The entry, its lines and the account balance updates are
// @Description committed atomically; an unbalanced entry is rejected.
// @Tags journal-entries
// @Accept json
// @Produce json
// @Param entry body dto.CreateJournalEntryRequest true "Entry with lines"
// @Success 201 {object} dto.JournalEntryResponse
// @Failure 400 {object} map[string]string "Unbalanced entry or invalid line"
// @Failure 404 {object} map[string]string "Referenced account not found"
// @Security BearerAuth
// @Router /accounts/journal-entries [post]
func (h *journalHandler) createEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateJournalEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateJournalEntry", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	entry, err := h.journalService.CreateEntry(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create journal entry")
		return
	}

	c.JSON(http.StatusCreated, dto.ToJournalEntryResponse(entry))
}

// listEntries godoc
// @Summary List journal entries
// @Tags journal-entries
// @Produce json
// @Param skip query int false "Rows to skip" default(0)
// @Param limit query int false "Max rows to return" default(100)
// @Success 200 {array} dto.JournalEntryResponse
// @Security BearerAuth
// @Router /accounts/journal-entries [get]
func (h *journalHandler) listEntries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	entries, err := h.journalService.ListEntries(c.Request.Context(), params.Limit, params.Skip)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list journal entries")
		return
	}

	c.JSON(http.StatusOK, dto.ToListJournalEntryResponse(entries))
}

// getEntry godoc
// @Summary Get a journal entry by ID
// @Tags journal-entries
// @Produce json
// @Param entryID path int true "Journal entry ID"
// @Success 200 {object} dto.JournalEntryResponse
// @Failure 404 {object} map[string]string "Journal entry not found"
// @Security BearerAuth
// @Router /accounts/journal-entries/{entryID} [get]
func (h *journalHandler) getEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	entryID, ok := parseIDParam(c, "entryID")
	if !ok {
		return
	}

	entry, err := h.journalService.GetEntryByID(c.Request.Context(), entryID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve journal entry")
		return
	}

	c.JSON(http.StatusOK, dto.ToJournalEntryResponse(entry))
}
