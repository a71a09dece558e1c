package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm/clause"

	"github.com/carelinkhealthineers/Carelink-Healthineers-sub000/internal/model"
)

// ListSettings returns all site settings.
func (h *Handlers) ListSettings(c *gin.Context) {
	var settings []model.Setting
	if err := h.db.WithContext(c.Request.Context()).Order("`key` ASC").Find(&settings).Error; err != nil {
		dbError(c, "Failed to fetch settings")
		return
	}
	c.JSON(http.StatusOK, settings)
}

// PutSetting upserts one setting by key.
func (h *Handlers) PutSetting(c *gin.Context) {
	key := c.Param("key")
	if key == "" {
		badRequest(c, "Setting key is required")
		return
	}

	var req SettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	setting := model.Setting{Key: key, Value: req.Value}
	err := h.db.WithContext(c.Request.Context()).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&setting).Error
	if err != nil {
		dbError(c, "Failed to save setting")
		return
	}

	c.JSON(http.StatusOK, setting)
}
