package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Alejandro-Val/FinanceTracker/middleware"
	"github.com/Alejandro-Val/FinanceTracker/models"
	"github.com/Alejandro-Val/FinanceTracker/services"
)

type ReportHandler struct {
	Reports *services.ReportService
}

func NewReportHandler(reports *services.ReportService) *ReportHandler {
	return &ReportHandler{Reports: reports}
}

// parseDateRange reads from/to query params as YYYY-MM-DD. The "to" day is
// extended to its last second so the range is inclusive. Defaults to the
// current month.
func parseDateRange(c *gin.Context) models.DateRange {
	now := time.Now()
	dateRange := models.DateRange{
		From: time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()),
		To:   time.Date(now.Year(), now.Month()+1, 0, 23, 59, 59, 0, now.Location()),
	}

	if from, err := time.Parse("2006-01-02", c.Query("from")); err == nil {
		dateRange.From = from
	}
	if to, err := time.Parse("2006-01-02", c.Query("to")); err == nil {
		dateRange.To = to.Add(24*time.Hour - time.Second)
	}

	return dateRange
}

// GetOverview returns income/expense/savings totals and the largest expense
// for the requested date range. This path always answers 200: failures
// degrade to the zero-valued structure.
func (h *ReportHandler) GetOverview(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	overview := h.Reports.ComputeOverview(c.Request.Context(), userID, parseDateRange(c))
	c.JSON(http.StatusOK, overview)
}

// GetIncomeAnalysis returns the overview figures for the income report view.
func (h *ReportHandler) GetIncomeAnalysis(c *gin.Context) {
	h.GetOverview(c)
}

// GetExpenseAnalysis returns the overview figures for the expense report view.
func (h *ReportHandler) GetExpenseAnalysis(c *gin.Context) {
	h.GetOverview(c)
}

// GetMonthlyStats returns the dashboard stat cards for the current month.
func (h *ReportHandler) GetMonthlyStats(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	c.JSON(http.StatusOK, h.Reports.MonthlyStats(c.Request.Context(), userID))
}
