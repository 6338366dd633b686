package httpserver

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"pos-terminal/internal/reports"
)

func (h *handlers) listSales(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"sales": h.engine.Sales()})
}

// reportSummary aggregates the ledger; an optional day=YYYY-MM-DD query
// narrows it to one calendar day.
func (h *handlers) reportSummary(c *gin.Context) {
	sales := h.engine.Sales()

	raw := strings.TrimSpace(c.Query("day"))
	if raw == "" {
		c.JSON(http.StatusOK, reports.Summarize(sales))
		return
	}
	day, err := time.Parse("2006-01-02", raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid day, want YYYY-MM-DD"})
		return
	}
	c.JSON(http.StatusOK, reports.SummarizeDay(sales, day.UTC()))
}

func (h *handlers) reportTopProducts(c *gin.Context) {
	limit := 5
	if raw := strings.TrimSpace(c.Query("limit")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
			return
		}
		limit = n
	}
	c.JSON(http.StatusOK, gin.H{"products": reports.TopProducts(h.engine.Sales(), limit)})
}
