package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/carelinkhealthineers/Carelink-Healthineers-sub000/internal/model"
)

// ListPublishedPosts returns published posts for the public blog, newest
// first, with pagination.
func (h *Handlers) ListPublishedPosts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	offset := (page - 1) * limit

	var total int64
	query := h.db.WithContext(c.Request.Context()).Model(&model.BlogPost{}).Where("published = ?", true)
	if err := query.Count(&total).Error; err != nil {
		dbError(c, "Failed to count posts")
		return
	}

	var posts []model.BlogPost
	if err := query.Order("published_at DESC").Offset(offset).Limit(limit).Find(&posts).Error; err != nil {
		dbError(c, "Failed to fetch posts")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"posts": posts,
		"pagination": gin.H{
			"page":  page,
			"limit": limit,
			"total": total,
		},
	})
}

// GetPostBySlug returns one published post.
func (h *Handlers) GetPostBySlug(c *gin.Context) {
	var post model.BlogPost
	err := h.db.WithContext(c.Request.Context()).
		Where("slug = ? AND published = ?", c.Param("slug"), true).
		First(&post).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			notFound(c, "Post not found")
			return
		}
		dbError(c, "Failed to fetch post")
		return
	}

	c.JSON(http.StatusOK, post)
}

// ListAllPosts returns every post, drafts included, for the admin console.
func (h *Handlers) ListAllPosts(c *gin.Context) {
	var posts []model.BlogPost
	if err := h.db.WithContext(c.Request.Context()).Order("created_at DESC").Find(&posts).Error; err != nil {
		dbError(c, "Failed to fetch posts")
		return
	}
	c.JSON(http.StatusOK, posts)
}

// CreatePost adds a blog post. Publishing stamps published_at.
func (h *Handlers) CreatePost(c *gin.Context) {
	var req BlogPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	post := model.BlogPost{
		Title:   req.Title,
		Slug:    req.Slug,
		Excerpt: req.Excerpt,
		Content: req.Content,
	}
	if req.Published != nil && *req.Published {
		now := time.Now()
		post.Published = true
		post.PublishedAt = &now
	}

	if err := h.db.WithContext(c.Request.Context()).Create(&post).Error; err != nil {
		dbError(c, "Failed to create post")
		return
	}

	c.JSON(http.StatusCreated, post)
}

// UpdatePost updates a blog post. The published_at stamp is set on the first
// transition to published and kept on republish.
func (h *Handlers) UpdatePost(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		abortError(c, http.StatusBadRequest, "invalid_id", "Invalid post ID")
		return
	}

	var req BlogPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	var post model.BlogPost
	if err := h.db.WithContext(c.Request.Context()).First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			notFound(c, "Post not found")
			return
		}
		dbError(c, "Failed to fetch post")
		return
	}

	post.Title = req.Title
	post.Slug = req.Slug
	post.Excerpt = req.Excerpt
	post.Content = req.Content
	if req.Published != nil {
		if *req.Published && post.PublishedAt == nil {
			now := time.Now()
			post.PublishedAt = &now
		}
		post.Published = *req.Published
	}

	if err := h.db.WithContext(c.Request.Context()).Save(&post).Error; err != nil {
		dbError(c, "Failed to update post")
		return
	}

	c.JSON(http.StatusOK, post)
}

// DeletePost removes a blog post (hard delete).
func (h *Handlers) DeletePost(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		abortError(c, http.StatusBadRequest, "invalid_id", "Invalid post ID")
		return
	}

	if err := h.db.WithContext(c.Request.Context()).Delete(&model.BlogPost{}, id).Error; err != nil {
		dbError(c, "Failed to delete post")
		return
	}

	c.Status(http.StatusNoContent)
}
