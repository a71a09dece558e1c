package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/carelinkhealthineers/Carelink-Healthineers-sub000/internal/model"
)

// Dashboard returns the pre-aggregated counts behind the console charts.
func (h *Handlers) Dashboard(c *gin.Context) {
	ctx := c.Request.Context()

	counts, err := h.repo.CountInquiriesByStatus(ctx)
	if err != nil {
		dbError(c, "Failed to count inquiries")
		return
	}

	response := DashboardResponse{
		Inquiries: map[string]int64{
			string(model.StatusPending):  counts[model.StatusPending],
			string(model.StatusReviewed): counts[model.StatusReviewed],
			string(model.StatusArchived): counts[model.StatusArchived],
		},
	}

	type entityCount struct {
		dest  *int64
		table interface{}
	}
	for _, e := range []entityCount{
		{&response.Products, &model.Product{}},
		{&response.Alliances, &model.Alliance{}},
		{&response.Divisions, &model.Division{}},
		{&response.BlogPosts, &model.BlogPost{}},
	} {
		if err := h.db.WithContext(ctx).Model(e.table).Count(e.dest).Error; err != nil {
			dbError(c, "Failed to count records")
			return
		}
	}

	c.JSON(http.StatusOK, response)
}
