package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Alejandro-Val/FinanceTracker/middleware"
	"github.com/Alejandro-Val/FinanceTracker/models"
	"github.com/Alejandro-Val/FinanceTracker/services"
)

type TransactionHandler struct {
	Ledger *services.LedgerService
}

func NewTransactionHandler(ledger *services.LedgerService) *TransactionHandler {
	return &TransactionHandler{Ledger: ledger}
}

// writeLedgerError maps the typed error taxonomy onto HTTP statuses.
func writeLedgerError(c *gin.Context, err error) {
	var validationErr *models.ValidationError
	var referenceErr *models.ReferenceError
	var notFoundErr *models.NotFoundError

	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
	case errors.As(err, &referenceErr):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": referenceErr.Error()})
	case errors.As(err, &notFoundErr):
		c.JSON(http.StatusNotFound, gin.H{"error": notFoundErr.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

// GetTransactions returns all of the user's transactions with resolved
// category/account/status options.
func (h *TransactionHandler) GetTransactions(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	transactions, err := h.Ledger.List(c.Request.Context(), userID)
	if err != nil {
		writeLedgerError(c, err)
		return
	}

	c.JSON(http.StatusOK, transactions)
}

// GetLatestTransactions returns the most recent transactions for the
// dashboard (default 5).
func (h *TransactionHandler) GetLatestTransactions(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	limit := 5
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 && n <= 100 {
			limit = n
		}
	}

	transactions, err := h.Ledger.Latest(c.Request.Context(), userID, limit)
	if err != nil {
		writeLedgerError(c, err)
		return
	}

	c.JSON(http.StatusOK, transactions)
}

// CreateTransaction validates and writes a new transaction, incrementing the
// referenced category and account counters.
func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req models.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := h.Ledger.Create(c.Request.Context(), userID, &req)
	if err != nil {
		writeLedgerError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// UpdateTransaction overwrites a transaction's mutable fields and moves the
// counters for any reference that changed.
func (h *TransactionHandler) UpdateTransaction(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req models.UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.Ledger.Update(c.Request.Context(), userID, c.Param("id"), &req); err != nil {
		writeLedgerError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Transaction updated successfully"})
}

// DeleteTransaction removes a transaction. The client supplies the category
// and account ids to decrement as query parameters, matching what the row
// currently references.
func (h *TransactionHandler) DeleteTransaction(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	categoryID := c.Query("category_id")
	accountID := c.Query("account_id")

	err := h.Ledger.Delete(c.Request.Context(), userID, c.Param("id"), categoryID, accountID)
	if err != nil {
		writeLedgerError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Transaction deleted successfully"})
}
