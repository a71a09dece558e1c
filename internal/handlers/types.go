package handlers

import (
	"time"

	"github.com/carelinkhealthineers/Carelink-Healthineers-sub000/internal/inquiry"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Database  string            `json:"database"`
	Metrics   map[string]string `json:"metrics,omitempty"`
}

// ContactRequest is the public contact/RFQ form submission. Product and
// interest are optional; when present they are embedded into the stored
// message as [Product: ...] / [Interest: ...] tags.
type ContactRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Company  string `json:"company" binding:"required"`
	Message  string `json:"message" binding:"required"`
	Product  string `json:"product"`
	Interest string `json:"interest"`
}

// StatusUpdateRequest carries a target status for the inquiry workflow.
type StatusUpdateRequest struct {
	Status string `json:"status" binding:"required"`
}

// InquiryListResponse is the admin inquiry listing: the filtered collection
// plus the live set of selectable product filters.
type InquiryListResponse struct {
	Inquiries []inquiry.Annotated `json:"inquiries"`
	Products  []string            `json:"products"`
	Total     int                 `json:"total"`
}

// LoginRequest is the admin console login payload.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the issued token and the operator's role.
type LoginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// ProductRequest creates or updates a catalog product.
type ProductRequest struct {
	Name        string `json:"name" binding:"required"`
	Category    string `json:"category" binding:"required"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
	Featured    *bool  `json:"featured"`
}

// AllianceRequest creates or updates a partner directory entry.
type AllianceRequest struct {
	Name    string `json:"name" binding:"required"`
	Website string `json:"website"`
	LogoURL string `json:"logo_url"`
	Tier    string `json:"tier"`
}

// DivisionRequest creates or updates a business division.
type DivisionRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// BlogPostRequest creates or updates a blog post.
type BlogPostRequest struct {
	Title     string `json:"title" binding:"required"`
	Slug      string `json:"slug" binding:"required"`
	Excerpt   string `json:"excerpt"`
	Content   string `json:"content"`
	Published *bool  `json:"published"`
}

// SettingRequest sets one site setting value.
type SettingRequest struct {
	Value string `json:"value"`
}

// UserRequest creates or updates an operator account. Password is required on
// create and optional on update.
type UserRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// DashboardResponse holds the pre-aggregated counts behind the console charts.
type DashboardResponse struct {
	Inquiries map[string]int64 `json:"inquiries"`
	Products  int64            `json:"products"`
	Alliances int64            `json:"alliances"`
	Divisions int64            `json:"divisions"`
	BlogPosts int64            `json:"blog_posts"`
}
