package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"spendwise/internal/services"
)

// StatsHandler handles aggregated statistics requests.
type StatsHandler struct {
	statsService services.StatsServicer
}

// NewStatsHandler creates a new StatsHandler.
func NewStatsHandler(statsService services.StatsServicer) *StatsHandler {
	return &StatsHandler{statsService: statsService}
}

// GetStats handles retrieving aggregated spending statistics.
// @Summary     Get spending stats
// @Description Get totals, averages, category breakdown and the 6-month trend for a period
// @Tags        stats
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       period query string false "Period (weekly/monthly/yearly, default monthly)"
// @Success     200 {object} services.StatsReport "Aggregated stats"
// @Failure     400 {object} ErrorResponse "Invalid period"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /stats [get]
func (h *StatsHandler) GetStats(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	p, err := parsePeriod(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	report, err := h.statsService.GetStats(userID, p, time.Now())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}
