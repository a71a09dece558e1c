// Package handlers exposes the public marketing API and the authenticated
// admin console ("Command Nexus") over gin.
package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"

	"github.com/carelinkhealthineers/Carelink-Healthineers-sub000/internal/auth"
	"github.com/carelinkhealthineers/Carelink-Healthineers-sub000/internal/inquiry"
	"github.com/carelinkhealthineers/Carelink-Healthineers-sub000/internal/metrics"
	"github.com/carelinkhealthineers/Carelink-Healthineers-sub000/internal/model"
	"github.com/carelinkhealthineers/Carelink-Healthineers-sub000/internal/stats"
)

// InquiryNotifier lets the contact handler send a sales notification without
// depending on the Gmail client directly. May be nil when notifications are
// disabled.
type InquiryNotifier interface {
	NotifyNewInquiry(ctx context.Context, record model.Inquiry) error
}

// InquiryStore is the persistence surface the inquiry handlers need.
// *repository.Repository satisfies it.
type InquiryStore interface {
	CreateInquiry(ctx context.Context, name, email, company, message string) (model.Inquiry, error)
	ListInquiries(ctx context.Context) ([]model.Inquiry, error)
	CountInquiriesByStatus(ctx context.Context) (map[model.InquiryStatus]int64, error)
}

// Handlers contains all HTTP handlers
type Handlers struct {
	db        *gorm.DB
	repo      InquiryStore
	board     *inquiry.Board
	auth      *auth.Manager
	notifier  InquiryNotifier
	refresher *stats.Refresher
	metrics   *metrics.Metrics
}

// NewHandlers creates new HTTP handlers
func NewHandlers(db *gorm.DB, repo InquiryStore, board *inquiry.Board, authMgr *auth.Manager, notifier InquiryNotifier, refresher *stats.Refresher, m *metrics.Metrics) *Handlers {
	return &Handlers{
		db:        db,
		repo:      repo,
		board:     board,
		auth:      authMgr,
		notifier:  notifier,
		refresher: refresher,
		metrics:   m,
	}
}

// SetupRoutes sets up all HTTP routes
func (h *Handlers) SetupRoutes(router *gin.Engine) {
	// Health check
	router.GET("/healthz", h.HealthCheck)

	// Prometheus metrics
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api/v1")
	{
		// Public marketing surface
		api.POST("/contact", h.SubmitContact)
		api.GET("/products", h.ListProducts)
		api.GET("/products/:id", h.GetProduct)
		api.GET("/alliances", h.ListAlliances)
		api.GET("/divisions", h.ListDivisions)
		api.GET("/blog", h.ListPublishedPosts)
		api.GET("/blog/:slug", h.GetPostBySlug)

		// Admin console login
		api.POST("/auth/login", h.Login)

		admin := api.Group("/admin", h.auth.Middleware())
		{
			// Inquiry triage
			admin.GET("/inquiries", h.ListInquiries)
			admin.PATCH("/inquiries/:id/status", h.UpdateInquiryStatus)

			// Catalog
			admin.POST("/products", h.CreateProduct)
			admin.PUT("/products/:id", h.UpdateProduct)
			admin.DELETE("/products/:id", h.DeleteProduct)

			// Alliances
			admin.POST("/alliances", h.CreateAlliance)
			admin.PUT("/alliances/:id", h.UpdateAlliance)
			admin.DELETE("/alliances/:id", h.DeleteAlliance)

			// Divisions
			admin.POST("/divisions", h.CreateDivision)
			admin.PUT("/divisions/:id", h.UpdateDivision)
			admin.DELETE("/divisions/:id", h.DeleteDivision)

			// Blog
			admin.GET("/blog", h.ListAllPosts)
			admin.POST("/blog", h.CreatePost)
			admin.PUT("/blog/:id", h.UpdatePost)
			admin.DELETE("/blog/:id", h.DeletePost)

			// Settings
			admin.GET("/settings", h.ListSettings)
			admin.PUT("/settings/:key", h.PutSetting)

			// Dashboard
			admin.GET("/dashboard", h.Dashboard)

			// Stats refresher control
			admin.POST("/stats/start", h.StartRefresher)
			admin.POST("/stats/stop", h.StopRefresher)
			admin.POST("/stats/run-once", h.RunRefresherOnce)
			admin.GET("/stats/status", h.RefresherStatus)

			// User management is admin-only
			users := admin.Group("/users", auth.RequireAdmin())
			{
				users.GET("", h.ListUsers)
				users.POST("", h.CreateUser)
				users.PUT("/:id", h.UpdateUser)
				users.DELETE("/:id", h.DeleteUser)
			}
		}
	}
}

// abortError writes the standard error envelope and stops the handler chain.
func abortError(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, ErrorResponse{
		Error:   code,
		Message: message,
		Code:    status,
	})
}

func badRequest(c *gin.Context, message string) {
	abortError(c, http.StatusBadRequest, "validation_error", message)
}

func notFound(c *gin.Context, message string) {
	abortError(c, http.StatusNotFound, "not_found", message)
}

func dbError(c *gin.Context, message string) {
	abortError(c, http.StatusInternalServerError, "database_error", message)
}
