package handlers

import (
	"net/http"

	"restaurant-ops-api/config"
	"restaurant-ops-api/models"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// ── Stock categories ─────────────────────────────────────────────────────────

// ListStockCategories returns all stock categories with items — admin only
func ListStockCategories(c *gin.Context) {
	var categories []models.StockCategory
	config.DB.Preload("Items").Find(&categories)
	c.JSON(http.StatusOK, gin.H{"count": len(categories), "categories": categories})
}

// CreateStockCategory adds a stock category — admin only
func CreateStockCategory(c *gin.Context) {
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	category := models.StockCategory{Name: req.Name}
	if err := config.DB.Create(&category).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create category"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Stock category created", "category": category})
}

// DeleteStockCategory removes a category and its items — admin only
func DeleteStockCategory(c *gin.Context) {
	var category models.StockCategory
	if err := config.DB.First(&category, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		return
	}
	config.DB.Select("Items").Delete(&category)
	c.JSON(http.StatusOK, gin.H{"message": "Stock category deleted"})
}

// ── Stock items ──────────────────────────────────────────────────────────────

type StockItemRequest struct {
	CategoryID uint            `json:"category_id" binding:"required"`
	Name       string          `json:"name" binding:"required"`
	Quantity   decimal.Decimal `json:"quantity"`
	Unit       string          `json:"unit"`
	Threshold  int             `json:"threshold"`
}

// ListStockItems returns stock items; ?low=true filters to items at or below
// their restock threshold — admin only
func ListStockItems(c *gin.Context) {
	var items []models.StockItem
	query := config.DB
	if c.Query("low") == "true" {
		query = query.Where("quantity <= threshold")
	}
	if category := c.Query("category"); category != "" {
		query = query.Where("category_id = ?", category)
	}
	query.Find(&items)
	c.JSON(http.StatusOK, gin.H{"count": len(items), "items": items})
}

// CreateStockItem adds a stock item — admin only
func CreateStockItem(c *gin.Context) {
	var req StockItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var category models.StockCategory
	if err := config.DB.First(&category, req.CategoryID).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Stock category not found"})
		return
	}

	item := models.StockItem{
		CategoryID: req.CategoryID,
		Name:       req.Name,
		Quantity:   req.Quantity,
		Unit:       req.Unit,
		Threshold:  req.Threshold,
	}
	if err := config.DB.Create(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create stock item"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Stock item created", "item": item})
}

// UpdateStockItem updates quantity or details of a stock item — admin only
func UpdateStockItem(c *gin.Context) {
	var item models.StockItem
	if err := config.DB.First(&item, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Stock item not found"})
		return
	}

	var req map[string]interface{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	allowed := map[string]bool{"name": true, "quantity": true, "unit": true, "threshold": true, "category_id": true}
	update := map[string]interface{}{}
	for k, v := range req {
		if allowed[k] {
			update[k] = v
		}
	}
	config.DB.Model(&item).Updates(update)
	c.JSON(http.StatusOK, gin.H{"message": "Stock item updated", "item": item})
}

// DeleteStockItem removes a stock item — admin only
func DeleteStockItem(c *gin.Context) {
	res := config.DB.Delete(&models.StockItem{}, c.Param("id"))
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Stock item not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Stock item deleted"})
}
