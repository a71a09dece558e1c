package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/carelinkhealthineers/Carelink-Healthineers-sub000/internal/model"
)

// ListAlliances returns the partner directory.
func (h *Handlers) ListAlliances(c *gin.Context) {
	var alliances []model.Alliance
	if err := h.db.WithContext(c.Request.Context()).Order("tier ASC, name ASC").Find(&alliances).Error; err != nil {
		dbError(c, "Failed to fetch alliances")
		return
	}
	c.JSON(http.StatusOK, alliances)
}

// CreateAlliance adds a partner.
func (h *Handlers) CreateAlliance(c *gin.Context) {
	var req AllianceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	alliance := model.Alliance{
		Name:    req.Name,
		Website: req.Website,
		LogoURL: req.LogoURL,
		Tier:    req.Tier,
	}
	if alliance.Tier == "" {
		alliance.Tier = "standard"
	}

	if err := h.db.WithContext(c.Request.Context()).Create(&alliance).Error; err != nil {
		dbError(c, "Failed to create alliance")
		return
	}

	c.JSON(http.StatusCreated, alliance)
}

// UpdateAlliance updates a partner entry.
func (h *Handlers) UpdateAlliance(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		abortError(c, http.StatusBadRequest, "invalid_id", "Invalid alliance ID")
		return
	}

	var req AllianceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	var alliance model.Alliance
	if err := h.db.WithContext(c.Request.Context()).First(&alliance, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			notFound(c, "Alliance not found")
			return
		}
		dbError(c, "Failed to fetch alliance")
		return
	}

	alliance.Name = req.Name
	alliance.Website = req.Website
	alliance.LogoURL = req.LogoURL
	if req.Tier != "" {
		alliance.Tier = req.Tier
	}

	if err := h.db.WithContext(c.Request.Context()).Save(&alliance).Error; err != nil {
		dbError(c, "Failed to update alliance")
		return
	}

	c.JSON(http.StatusOK, alliance)
}

// DeleteAlliance removes a partner. This is a hard delete; unlike inquiries,
// directory entries have no retention requirement.
func (h *Handlers) DeleteAlliance(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		abortError(c, http.StatusBadRequest, "invalid_id", "Invalid alliance ID")
		return
	}

	if err := h.db.WithContext(c.Request.Context()).Delete(&model.Alliance{}, id).Error; err != nil {
		dbError(c, "Failed to delete alliance")
		return
	}

	c.Status(http.StatusNoContent)
}
