package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Alejandro-Val/FinanceTracker/services"
)

type StatusHandler struct {
	Resolver *services.OptionResolver
}

// GetStatuses returns the global status list as select options.
func (h *StatusHandler) GetStatuses(c *gin.Context) {
	options, err := h.Resolver.StatusOptions(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch statuses"})
		return
	}

	c.JSON(http.StatusOK, options)
}
