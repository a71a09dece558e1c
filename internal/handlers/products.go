package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/carelinkhealthineers/Carelink-Healthineers-sub000/internal/model"
)

// ListProducts returns the public catalog, optionally narrowed by category,
// featured flag, or a name/description search.
func (h *Handlers) ListProducts(c *gin.Context) {
	query := h.db.WithContext(c.Request.Context()).Model(&model.Product{})

	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}
	if c.Query("featured") == "true" {
		query = query.Where("featured = ?", true)
	}
	if q := strings.TrimSpace(c.Query("q")); q != "" {
		like := "%" + q + "%"
		query = query.Where("name LIKE ? OR description LIKE ?", like, like)
	}

	var products []model.Product
	if err := query.Order("name ASC").Find(&products).Error; err != nil {
		dbError(c, "Failed to fetch products")
		return
	}

	c.JSON(http.StatusOK, products)
}

// GetProduct returns a single catalog entry.
func (h *Handlers) GetProduct(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		abortError(c, http.StatusBadRequest, "invalid_id", "Invalid product ID")
		return
	}

	var product model.Product
	if err := h.db.WithContext(c.Request.Context()).First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			notFound(c, "Product not found")
			return
		}
		dbError(c, "Failed to fetch product")
		return
	}

	c.JSON(http.StatusOK, product)
}

// CreateProduct adds a catalog entry.
func (h *Handlers) CreateProduct(c *gin.Context) {
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	featured := false
	if req.Featured != nil {
		featured = *req.Featured
	}

	product := model.Product{
		Name:        req.Name,
		Category:    req.Category,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Featured:    featured,
	}

	if err := h.db.WithContext(c.Request.Context()).Create(&product).Error; err != nil {
		dbError(c, "Failed to create product")
		return
	}

	c.JSON(http.StatusCreated, product)
}

// UpdateProduct updates a catalog entry.
func (h *Handlers) UpdateProduct(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		abortError(c, http.StatusBadRequest, "invalid_id", "Invalid product ID")
		return
	}

	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	var product model.Product
	if err := h.db.WithContext(c.Request.Context()).First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			notFound(c, "Product not found")
			return
		}
		dbError(c, "Failed to fetch product")
		return
	}

	product.Name = req.Name
	product.Category = req.Category
	product.Description = req.Description
	product.ImageURL = req.ImageURL
	if req.Featured != nil {
		product.Featured = *req.Featured
	}

	if err := h.db.WithContext(c.Request.Context()).Save(&product).Error; err != nil {
		dbError(c, "Failed to update product")
		return
	}

	c.JSON(http.StatusOK, product)
}

// DeleteProduct removes a catalog entry.
func (h *Handlers) DeleteProduct(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		abortError(c, http.StatusBadRequest, "invalid_id", "Invalid product ID")
		return
	}

	if err := h.db.WithContext(c.Request.Context()).Delete(&model.Product{}, id).Error; err != nil {
		dbError(c, "Failed to delete product")
		return
	}

	c.Status(http.StatusNoContent)
}
