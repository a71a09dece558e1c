package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/carelinkhealthineers/Carelink-Healthineers-sub000/internal/auth"
	"github.com/carelinkhealthineers/Carelink-Healthineers-sub000/internal/model"
)

// Login authenticates an operator and issues a console token. Unknown user
// and wrong password are indistinguishable to the caller.
func (h *Handlers) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	var user model.User
	err := h.db.WithContext(c.Request.Context()).Where("username = ?", req.Username).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			abortError(c, http.StatusUnauthorized, "unauthorized", "Invalid credentials")
			return
		}
		dbError(c, "Failed to fetch user")
		return
	}

	if !auth.CheckPassword(user.PasswordHash, req.Password) {
		logrus.Warnf("Failed login attempt for %s", req.Username)
		abortError(c, http.StatusUnauthorized, "unauthorized", "Invalid credentials")
		return
	}

	token, err := h.auth.GenerateToken(&user)
	if err != nil {
		abortError(c, http.StatusInternalServerError, "internal_error", "Failed to issue token")
		return
	}

	c.JSON(http.StatusOK, LoginResponse{
		Token:    token,
		Username: user.Username,
		Role:     user.Role,
	})
}
