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

type CategoryHandler struct {
	DB       *sql.DB
	Resolver *services.OptionResolver
	Broker   *services.Broker
}

// GetCategories returns all of the user's categories with their cached
// transaction counts.
func (h *CategoryHandler) GetCategories(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	rows, err := h.DB.Query(`
		SELECT id, name, type, icon, color, transaction_count, owner_id
		FROM transaction_categories
		WHERE owner_id = $1
		ORDER BY name
	`, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch categories"})
		return
	}
	defer rows.Close()

	categories := []models.Category{}
	for rows.Next() {
		var cat models.Category
		if err := rows.Scan(&cat.ID, &cat.Name, &cat.Type, &cat.Icon, &cat.Color, &cat.TransactionCount, &cat.OwnerID); err != nil {
			continue
		}
		categories = append(categories, cat)
	}

	c.JSON(http.StatusOK, categories)
}

// GetCategoryOptions returns the user's categories as select options grouped
// by type.
func (h *CategoryHandler) GetCategoryOptions(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	options, err := h.Resolver.CategoryOptions(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch category options"})
		return
	}

	c.JSON(http.StatusOK, options)
}

// CreateCategory adds a category with a zero transaction counter.
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req models.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id := uuid.NewString()
	_, err := h.DB.Exec(`
		INSERT INTO transaction_categories (id, owner_id, name, type, icon, color)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, id, userID, req.Name, req.Type, req.Icon, req.Color)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create category"})
		return
	}

	h.Broker.Publish(services.Event{Collection: services.CollectionCategories, Action: services.ActionCreated, ID: id, OwnerID: userID})

	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// UpdateCategory changes a category's display fields. The transaction
// counter is owned by the ledger and is never written here.
func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req models.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	categoryID := c.Param("id")
	result, err := h.DB.Exec(`
		UPDATE transaction_categories
		SET name = $3, type = $4, icon = $5, color = $6
		WHERE id = $1 AND owner_id = $2
	`, categoryID, userID, req.Name, req.Type, req.Icon, req.Color)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update category"})
		return
	}
	if rows, err := result.RowsAffected(); err == nil && rows == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		return
	}

	h.Broker.Publish(services.Event{Collection: services.CollectionCategories, Action: services.ActionUpdated, ID: categoryID, OwnerID: userID})

	c.JSON(http.StatusOK, gin.H{"message": "Category updated successfully"})
}

// DeleteCategory removes a category. Transactions still referencing it keep
// their dangling id and resolve to a null option from then on.
func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	categoryID := c.Param("id")
	result, err := h.DB.Exec(`
		DELETE FROM transaction_categories WHERE id = $1 AND owner_id = $2
	`, categoryID, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete category"})
		return
	}
	if rows, err := result.RowsAffected(); err == nil && rows == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		return
	}

	h.Broker.Publish(services.Event{Collection: services.CollectionCategories, Action: services.ActionDeleted, ID: categoryID, OwnerID: userID})

	c.JSON(http.StatusOK, gin.H{"message": "Category deleted successfully"})
}
