package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/carelinkhealthineers/Carelink-Healthineers-sub000/internal/auth"
	"github.com/carelinkhealthineers/Carelink-Healthineers-sub000/internal/model"
)

// ListUsers returns all operator accounts. Password hashes are never
// serialized.
func (h *Handlers) ListUsers(c *gin.Context) {
	var users []model.User
	if err := h.db.WithContext(c.Request.Context()).Order("username ASC").Find(&users).Error; err != nil {
		dbError(c, "Failed to fetch users")
		return
	}
	c.JSON(http.StatusOK, users)
}

// CreateUser adds an operator account.
func (h *Handlers) CreateUser(c *gin.Context) {
	var req UserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}
	if req.Password == "" {
		badRequest(c, "Password is required")
		return
	}

	role := req.Role
	if role == "" {
		role = model.RoleStaff
	}
	if role != model.RoleAdmin && role != model.RoleStaff {
		badRequest(c, "Unknown role: "+role)
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		abortError(c, http.StatusInternalServerError, "internal_error", "Failed to hash password")
		return
	}

	user := model.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         role,
	}

	if err := h.db.WithContext(c.Request.Context()).Create(&user).Error; err != nil {
		dbError(c, "Failed to create user")
		return
	}

	c.JSON(http.StatusCreated, user)
}

// UpdateUser updates an operator account. An empty password keeps the
// current one.
func (h *Handlers) UpdateUser(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		abortError(c, http.StatusBadRequest, "invalid_id", "Invalid user ID")
		return
	}

	var req UserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	var user model.User
	if err := h.db.WithContext(c.Request.Context()).First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			notFound(c, "User not found")
			return
		}
		dbError(c, "Failed to fetch user")
		return
	}

	user.Username = req.Username
	user.Email = req.Email
	if req.Role != "" {
		if req.Role != model.RoleAdmin && req.Role != model.RoleStaff {
			badRequest(c, "Unknown role: "+req.Role)
			return
		}
		user.Role = req.Role
	}
	if req.Password != "" {
		hash, err := auth.HashPassword(req.Password)
		if err != nil {
			abortError(c, http.StatusInternalServerError, "internal_error", "Failed to hash password")
			return
		}
		user.PasswordHash = hash
	}

	if err := h.db.WithContext(c.Request.Context()).Save(&user).Error; err != nil {
		dbError(c, "Failed to update user")
		return
	}

	c.JSON(http.StatusOK, user)
}

// DeleteUser removes an operator account.
func (h *Handlers) DeleteUser(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		abortError(c, http.StatusBadRequest, "invalid_id", "Invalid user ID")
		return
	}

	if err := h.db.WithContext(c.Request.Context()).Delete(&model.User{}, id).Error; err != nil {
		dbError(c, "Failed to delete user")
		return
	}

	c.Status(http.StatusNoContent)
}
