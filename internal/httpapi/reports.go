package httpapi

import (
	"time"

	"posservice/internal/domain"

	"github.com/gin-gonic/gin"
)

// GetXReport handles GET /getxreport.
func (h *Handlers) GetXReport(c *gin.Context) {
	report, err := h.reports.GenerateXReport(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, report)
}

// GenerateZReport handles POST /generatezreport. The snapshot is computed
// on demand; nothing is archived.
func (h *Handlers) GenerateZReport(c *gin.Context) {
	report, err := h.reports.GenerateZReport(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, report)
}

// GetSalesReport handles GET /getsalesreport with optional start/end
// query parameters (YYYY-MM-DD). The window defaults to the last year.
func (h *Handlers) GetSalesReport(c *gin.Context) {
	now := time.Now()
	from, to := now.AddDate(-1, 0, 0), now

	if raw := c.Query("start"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			respondError(c, domain.ValidationError("invalid start date"))
			return
		}
		from = parsed
	}
	if raw := c.Query("end"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			respondError(c, domain.ValidationError("invalid end date"))
			return
		}
		to = parsed
	}

	rows, err := h.reports.SalesReport(c.Request.Context(), from, to)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, rows)
}

// GetProductsUsedChart handles GET /getproductsusedchart.
func (h *Handlers) GetProductsUsedChart(c *gin.Context) {
	points, err := h.reports.ProductUsageChart(c.Request.Context(), c.DefaultQuery("interval", "day"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, points)
}

// GetIngredientsUsedChart handles GET /getingredientsusedchart.
func (h *Handlers) GetIngredientsUsedChart(c *gin.Context) {
	points, err := h.reports.IngredientUsageChart(c.Request.Context(), c.DefaultQuery("interval", "day"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, points)
}
