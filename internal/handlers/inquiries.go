package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/carelinkhealthineers/Carelink-Healthineers-sub000/internal/inquiry"
	"github.com/carelinkhealthineers/Carelink-Healthineers-sub000/internal/model"
)

// ListInquiries returns the inquiry collection for the triage view, narrowed
// by the status/product/search controls. The product option set is derived
// from the full collection, not the filtered subset, so narrowing one filter
// never hides the others' choices.
func (h *Handlers) ListInquiries(c *gin.Context) {
	items, err := h.repo.ListInquiries(c.Request.Context())
	if err != nil {
		dbError(c, "Failed to fetch inquiries")
		return
	}
	h.board.Replace(items)

	annotated := inquiry.AnnotateAll(items)
	filtered := inquiry.Apply(annotated, inquiry.Filters{
		Status:  c.DefaultQuery("status", inquiry.FilterAll),
		Product: c.DefaultQuery("product", inquiry.FilterAll),
		Search:  c.Query("q"),
	})

	c.JSON(http.StatusOK, InquiryListResponse{
		Inquiries: filtered,
		Products:  inquiry.ProductOptions(annotated),
		Total:     len(filtered),
	})
}

// UpdateInquiryStatus moves one inquiry through the triage workflow. The
// board persists the transition first and only reflects it locally once the
// store has accepted it, so a failed persist leaves everything untouched.
func (h *Handlers) UpdateInquiryStatus(c *gin.Context) {
	id := c.Param("id")

	var req StatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	// The snapshot may predate this inquiry (or be empty after a restart).
	// A failed reload aborts before anything is persisted; proceeding with
	// the stale snapshot would persist the update and then report not-found.
	if !h.board.Has(id) {
		items, err := h.repo.ListInquiries(c.Request.Context())
		if err != nil {
			dbError(c, "Failed to fetch inquiries")
			return
		}
		h.board.Replace(items)
	}

	updated, err := h.board.SetStatus(c.Request.Context(), id, model.InquiryStatus(req.Status))
	switch {
	case errors.Is(err, inquiry.ErrUnknownStatus):
		badRequest(c, "Unknown status: "+req.Status)
		return
	case errors.Is(err, inquiry.ErrNotFound):
		notFound(c, "Inquiry not found")
		return
	case err != nil:
		abortError(c, http.StatusBadGateway, "persistence_error", "Failed to persist status change")
		return
	}

	h.metrics.StatusTransitions.WithLabelValues(req.Status).Inc()
	c.JSON(http.StatusOK, updated)
}
