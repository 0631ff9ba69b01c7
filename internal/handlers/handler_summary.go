package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/kokorolog/kokorolog/internal/core/ports/services"
	"github.com/kokorolog/kokorolog/internal/dto"
	"github.com/kokorolog/kokorolog/internal/middleware"
)

// summaryHandler handles the rolling summary endpoint.
type summaryHandler struct {
	summaryService portssvc.SummarySvcFacade
}

func newSummaryHandler(ss portssvc.SummarySvcFacade) *summaryHandler {
	return &summaryHandler{
		summaryService: ss,
	}
}

func registerSummaryRoutes(rg *gin.RouterGroup, summaryService portssvc.SummarySvcFacade, aiLimited gin.HandlerFunc) {
	h := newSummaryHandler(summaryService)
	rg.GET("/summary", aiLimited, h.getSummary)
}

// getSummary godoc
// @Summary Summarize recent entries
// @Description Generates an aggregate commentary over the most recent diary entries.
// @Tags summary
// @Produce  json
// @Success 200 {object} dto.SummaryResponse
// @Failure 500 {object} map[string]string "Generation or store failure"
// @Router /summary [get]
func (h *summaryHandler) getSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	summary, err := h.summaryService.Summarize(c.Request.Context())
	if err != nil {
		logger.Error("Failed to generate summary", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate the summary"})
		return
	}

	c.JSON(http.StatusOK, dto.SummaryResponse{Summary: summary})
}
