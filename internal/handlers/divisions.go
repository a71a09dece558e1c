package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/carelinkhealthineers/Carelink-Healthineers-sub000/internal/model"
)

// ListDivisions returns the business divisions shown on the site.
func (h *Handlers) ListDivisions(c *gin.Context) {
	var divisions []model.Division
	if err := h.db.WithContext(c.Request.Context()).Order("name ASC").Find(&divisions).Error; err != nil {
		dbError(c, "Failed to fetch divisions")
		return
	}
	c.JSON(http.StatusOK, divisions)
}

// CreateDivision adds a division.
func (h *Handlers) CreateDivision(c *gin.Context) {
	var req DivisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	division := model.Division{
		Name:        req.Name,
		Description: req.Description,
		Icon:        req.Icon,
	}

	if err := h.db.WithContext(c.Request.Context()).Create(&division).Error; err != nil {
		dbError(c, "Failed to create division")
		return
	}

	c.JSON(http.StatusCreated, division)
}

// UpdateDivision updates a division.
func (h *Handlers) UpdateDivision(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		abortError(c, http.StatusBadRequest, "invalid_id", "Invalid division ID")
		return
	}

	var req DivisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	var division model.Division
	if err := h.db.WithContext(c.Request.Context()).First(&division, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			notFound(c, "Division not found")
			return
		}
		dbError(c, "Failed to fetch division")
		return
	}

	division.Name = req.Name
	division.Description = req.Description
	division.Icon = req.Icon

	if err := h.db.WithContext(c.Request.Context()).Save(&division).Error; err != nil {
		dbError(c, "Failed to update division")
		return
	}

	c.JSON(http.StatusOK, division)
}

// DeleteDivision removes a division (hard delete).
func (h *Handlers) DeleteDivision(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		abortError(c, http.StatusBadRequest, "invalid_id", "Invalid division ID")
		return
	}

	if err := h.db.WithContext(c.Request.Context()).Delete(&model.Division{}, id).Error; err != nil {
		dbError(c, "Failed to delete division")
		return
	}

	c.Status(http.StatusNoContent)
}
