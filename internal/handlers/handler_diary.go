package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/kokorolog/kokorolog/internal/apperrors"
	portssvc "github.com/kokorolog/kokorolog/internal/core/ports/services"
	"github.com/kokorolog/kokorolog/internal/dto"
	"github.com/kokorolog/kokorolog/internal/middleware"
)

// diaryHandler handles HTTP requests related to diary entries.
type diaryHandler struct {
	diaryService portssvc.DiarySvcFacade
}

// newDiaryHandler creates a new diaryHandler.
func newDiaryHandler(ds portssvc.DiarySvcFacade) *diaryHandler {
	return &diaryHandler{
		diaryService: ds,
	}
}

// registerDiaryRoutes registers all diary-related routes. The aiLimited
// middleware guards every route that invokes the commentary generator.
func registerDiaryRoutes(rg *gin.RouterGroup, diaryService portssvc.DiarySvcFacade, aiLimited gin.HandlerFunc) {
	h := newDiaryHandler(diaryService)

	rg.POST("/save-diary", aiLimited, h.saveDiary)

	diaries := rg.Group("/diaries")
	{
		diaries.GET("", h.listDiaries)
		diaries.GET("/today", h.getDiaryToday)
		diaries.GET("/date/:date", h.getDiaryByDate)
		diaries.GET("/:id", h.getDiaryByID)
		diaries.POST("", aiLimited, h.createDiary)
		diaries.PUT("/:id", aiLimited, h.updateDiary)
		diaries.DELETE("/:id", h.deleteDiary)
	}
}

// saveDiary godoc
// @Summary Create or update the entry for a date
// @Description Saves the diary entry for the given date, generating a fresh AI comment. Creates the entry when the date is new, updates it in place otherwise.
// @Tags diaries
// @Accept  json
// @Produce  json
// @Param   entry body dto.SaveDiaryRequest true "Entry fields"
// @Success 200 {object} dto.SaveDiaryResponse
// @Failure 400 {object} map[string]string "Missing or invalid fields"
// @Failure 500 {object} map[string]string "Generation or store failure"
// @Router /save-diary [post]
func (h *diaryHandler) saveDiary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.SaveDiaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for save-diary", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Date, title and content are all required"})
		return
	}

	logger.Info("Received request to save diary entry", slog.String("date", req.Date))

	resp, err := h.diaryService.SaveForDate(c.Request.Context(), req)
	if err != nil {
		h.writeSaveError(c, logger, err)
		return
	}

	logger.Info("Diary entry saved", slog.String("message", resp.Message), slog.String("entry_id", resp.ID))
	c.JSON(http.StatusOK, resp)
}

// createDiary godoc
// @Summary Create today's entry
// @Description Saves a diary entry dated today. Title is optional.
// @Tags diaries
// @Accept  json
// @Produce  json
// @Param   entry body dto.CreateDiaryRequest true "Entry fields"
// @Success 201 {object} dto.CreateDiaryResponse
// @Failure 400 {object} map[string]string "Missing content"
// @Failure 500 {object} map[string]string "Generation or store failure"
// @Router /diaries [post]
func (h *diaryHandler) createDiary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateDiaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for create diary", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Content is required"})
		return
	}

	resp, err := h.diaryService.CreateToday(c.Request.Context(), req)
	if err != nil {
		h.writeSaveError(c, logger, err)
		return
	}

	logger.Info("Diary entry created for today", slog.String("entry_id", resp.ID))
	c.JSON(http.StatusCreated, dto.CreateDiaryResponse{ID: resp.ID, AIComment: resp.AIComment})
}

// updateDiary godoc
// @Summary Update an entry by ID
// @Description Rewrites the entry's fields and regenerates its AI comment. Identity and date are preserved.
// @Tags diaries
// @Accept  json
// @Produce  json
// @Param   id path string true "Entry ID"
// @Param   entry body dto.UpdateDiaryRequest true "Entry fields"
// @Success 200 {object} dto.SaveDiaryResponse
// @Failure 400 {object} map[string]string "Missing fields"
// @Failure 404 {object} map[string]string "Entry not found"
// @Failure 500 {object} map[string]string "Generation or store failure"
// @Router /diaries/{id} [put]
func (h *diaryHandler) updateDiary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	entryID := c.Param("id")
	var req dto.UpdateDiaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for update diary", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title and content are required"})
		return
	}

	logger = logger.With(slog.String("entry_id", entryID))

	resp, err := h.diaryService.UpdateByID(c.Request.Context(), entryID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Diary entry not found for update")
			c.JSON(http.StatusNotFound, gin.H{"error": "Diary entry not found"})
			return
		}
		h.writeSaveError(c, logger, err)
		return
	}

	logger.Info("Diary entry updated")
	c.JSON(http.StatusOK, resp)
}

// listDiaries godoc
// @Summary List all entries
// @Description Retrieves every diary entry, newest first.
// @Tags diaries
// @Produce  json
// @Success 200 {array} dto.EntryResponse
// @Failure 500 {object} map[string]string "Failed to list entries"
// @Router /diaries [get]
func (h *diaryHandler) listDiaries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	entries, err := h.diaryService.ListEntries(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list diary entries", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list diary entries"})
		return
	}

	c.JSON(http.StatusOK, dto.ToEntryResponseSlice(entries))
}

// getDiaryByID godoc
// @Summary Get an entry by ID
// @Tags diaries
// @Produce  json
// @Param   id path string true "Entry ID"
// @Success 200 {object} dto.EntryResponse
// @Failure 404 {object} map[string]string "Entry not found"
// @Failure 500 {object} map[string]string "Failed to retrieve entry"
// @Router /diaries/{id} [get]
func (h *diaryHandler) getDiaryByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	entryID := c.Param("id")

	entry, err := h.diaryService.GetEntryByID(c.Request.Context(), entryID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Diary entry not found"})
		} else {
			logger.Error("Failed to get diary entry", slog.String("entry_id", entryID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve diary entry"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToEntryResponse(entry))
}

// getDiaryByDate godoc
// @Summary Get the entry for a date
// @Tags diaries
// @Produce  json
// @Param   date path string true "Calendar day (YYYY-MM-DD)"
// @Success 200 {object} dto.EntryResponse
// @Failure 400 {object} map[string]string "Invalid date"
// @Failure 404 {object} map[string]string "No entry for that day"
// @Failure 500 {object} map[string]string "Failed to retrieve entry"
// @Router /diaries/date/{date} [get]
func (h *diaryHandler) getDiaryByDate(c *gin.Context) {
	day, err := time.Parse(time.DateOnly, c.Param("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date, expected YYYY-MM-DD"})
		return
	}
	h.respondWithEntryForDay(c, day)
}

// getDiaryToday godoc
// @Summary Get today's entry
// @Tags diaries
// @Produce  json
// @Success 200 {object} dto.EntryResponse
// @Failure 404 {object} map[string]string "No entry for today yet"
// @Failure 500 {object} map[string]string "Failed to retrieve entry"
// @Router /diaries/today [get]
func (h *diaryHandler) getDiaryToday(c *gin.Context) {
	h.respondWithEntryForDay(c, time.Now())
}

func (h *diaryHandler) respondWithEntryForDay(c *gin.Context, day time.Time) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	entry, err := h.diaryService.GetEntryByDate(c.Request.Context(), day)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "No diary entry for that day yet"})
		} else {
			logger.Error("Failed to get diary entry by date", slog.String("date", day.Format(time.DateOnly)), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve diary entry"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToEntryResponse(entry))
}

// deleteDiary godoc
// @Summary Delete an entry
// @Tags diaries
// @Produce  json
// @Param   id path string true "Entry ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string "No matching entry"
// @Failure 500 {object} map[string]string "Failed to delete entry"
// @Router /diaries/{id} [delete]
func (h *diaryHandler) deleteDiary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	entryID := c.Param("id")

	deleted, err := h.diaryService.DeleteEntry(c.Request.Context(), entryID)
	if err != nil {
		logger.Error("Failed to delete diary entry", slog.String("entry_id", entryID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete diary entry"})
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "No diary entry to delete"})
		return
	}

	logger.Info("Diary entry deleted", slog.String("entry_id", entryID))
	c.JSON(http.StatusOK, gin.H{"message": "Diary entry deleted"})
}

// writeSaveError maps save-path failures onto the API's error contract.
func (h *diaryHandler) writeSaveError(c *gin.Context, logger *slog.Logger, err error) {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Save rejected by validation", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Date, title and content are all required"})
	case errors.Is(err, apperrors.ErrGeneration):
		logger.Error("AI comment generation failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate the AI comment"})
	default:
		logger.Error("Failed to save diary entry", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save diary entry"})
	}
}
