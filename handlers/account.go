package handlers

import (
	"database/sql"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Alejandro-Val/FinanceTracker/middleware"
	"github.com/Alejandro-Val/FinanceTracker/models"
	"github.com/Alejandro-Val/FinanceTracker/services"
)

type AccountHandler struct {
	DB       *sql.DB
	Resolver *services.OptionResolver
	Broker   *services.Broker
}

// GetAccounts returns all of the user's accounts with their cached
// transaction counts.
func (h *AccountHandler) GetAccounts(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	rows, err := h.DB.Query(`
		SELECT id, name, institution, color, transaction_count, owner_id
		FROM transaction_accounts
		WHERE owner_id = $1
		ORDER BY name
	`, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch accounts"})
		return
	}
	defer rows.Close()

	accounts := []models.Account{}
	for rows.Next() {
		var acc models.Account
		if err := rows.Scan(&acc.ID, &acc.Name, &acc.Institution, &acc.Color, &acc.TransactionCount, &acc.OwnerID); err != nil {
			continue
		}
		accounts = append(accounts, acc)
	}

	c.JSON(http.StatusOK, accounts)
}

// GetAccountOptions returns the user's accounts as select options.
func (h *AccountHandler) GetAccountOptions(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	options, err := h.Resolver.AccountOptions(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch account options"})
		return
	}

	c.JSON(http.StatusOK, options)
}

// CreateAccount adds an account with a zero transaction counter.
func (h *AccountHandler) CreateAccount(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req models.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id := uuid.NewString()
	_, err := h.DB.Exec(`
		INSERT INTO transaction_accounts (id, owner_id, name, institution, color)
		VALUES ($1, $2, $3, $4, $5)
	`, id, userID, req.Name, req.Institution, req.Color)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create account"})
		return
	}

	h.Broker.Publish(services.Event{Collection: services.CollectionAccounts, Action: services.ActionCreated, ID: id, OwnerID: userID})

	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// UpdateAccount changes an account's display fields.
func (h *AccountHandler) UpdateAccount(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req models.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	accountID := c.Param("id")
	result, err := h.DB.Exec(`
		UPDATE transaction_accounts
		SET name = $3, institution = $4, color = $5
		WHERE id = $1 AND owner_id = $2
	`, accountID, userID, req.Name, req.Institution, req.Color)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update account"})
		return
	}
	if rows, err := result.RowsAffected(); err == nil && rows == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Account not found"})
		return
	}

	h.Broker.Publish(services.Event{Collection: services.CollectionAccounts, Action: services.ActionUpdated, ID: accountID, OwnerID: userID})

	c.JSON(http.StatusOK, gin.H{"message": "Account updated successfully"})
}

// DeleteAccount removes an account, leaving any referencing transactions
// with a dangling id.
func (h *AccountHandler) DeleteAccount(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	accountID := c.Param("id")
	result, err := h.DB.Exec(`
		DELETE FROM transaction_accounts WHERE id = $1 AND owner_id = $2
	`, accountID, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete account"})
		return
	}
	if rows, err := result.RowsAffected(); err == nil && rows == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Account not found"})
		return
	}

	h.Broker.Publish(services.Event{Collection: services.CollectionAccounts, Action: services.ActionDeleted, ID: accountID, OwnerID: userID})

	c.JSON(http.StatusOK, gin.H{"message": "Account deleted successfully"})
}
