package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jackel7/stock-mate/internal/application/reports"
)

// ReportHandler serves the stock/agent reports and the dashboard.
type ReportHandler struct {
	reports   *reports.ReportsUseCase
	dashboard *reports.DashboardUseCase
}

// NewReportHandler builds the handler.
func NewReportHandler(rep *reports.ReportsUseCase, dashboard *reports.DashboardUseCase) *ReportHandler {
	return &ReportHandler{reports: rep, dashboard: dashboard}
}

// Reports godoc
// @Summary      Recent stock movements or agent alert log
// @Description  type=movements (default) lists the newest 100 movements with
// @Description  product name/sku; type=agent lists the newest 100 alerts.
// @Tags         reports
// @Produce      json
// @Param        type  query  string  false  "movements or agent"
// @Success      200   {array}   dto.StockMovementResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/reports [get]
func (h *ReportHandler) Reports(c *fiber.Ctx) error {
	if c.Query("type") == "agent" {
		list, err := h.reports.RecentAlerts(c.Context())
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(list)
	}
	list, err := h.reports.RecentMovements(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// Dashboard godoc
// @Summary      Aggregate counters and recent activity
// @Tags         reports
// @Produce      json
// @Success      200  {object}  dto.DashboardResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/dashboard [get]
func (h *ReportHandler) Dashboard(c *fiber.Ctx) error {
	out, err := h.dashboard.Get(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
