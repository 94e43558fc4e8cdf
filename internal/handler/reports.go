package handler

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tzuhao-hung/expense-tracker/internal/service"
)

// ReportHandler serves /api/reports.
type ReportHandler struct {
	reports *service.ReportService
}

func NewReportHandler(reports *service.ReportService) *ReportHandler {
	return &ReportHandler{reports: reports}
}

// Monthly returns the combined monthly analysis. Year and month default to
// the current month (?year=2026&month=8).
func (h *ReportHandler) Monthly(c *gin.Context) {
	now := time.Now()
	year, err := queryInt(c, "year", now.Year())
	if err != nil {
		respondBadRequest(c, err)
		return
	}
	month, err := queryInt(c, "month", int(now.Month()))
	if err != nil {
		respondBadRequest(c, err)
		return
	}
	if month < 1 || month > 12 {
		respondBadRequest(c, fmt.Errorf("month must be between 1 and 12"))
		return
	}

	analysis, err := h.reports.MonthlyAnalysis(c.Request.Context(), year, month)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, analysis)
}

func queryInt(c *gin.Context, name string, fallback int) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %q", name, raw)
	}
	return value, nil
}
