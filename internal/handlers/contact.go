package handlers

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// composeMessage embeds the optional product and interest selections into the
// stored message as inline tags, matching the convention the annotation
// extractor consumes. The prose is joined with a " - " separator so the
// extractor's clean message is exactly what the visitor typed.
func composeMessage(req ContactRequest) string {
	var tags strings.Builder
	if p := strings.TrimSpace(req.Product); p != "" {
		tags.WriteString(fmt.Sprintf("[Product: %s]", p))
	}
	if i := strings.TrimSpace(req.Interest); i != "" {
		tags.WriteString(fmt.Sprintf("[Interest: %s]", i))
	}

	if tags.Len() == 0 {
		return req.Message
	}
	return tags.String() + " - " + req.Message
}

// SubmitContact handles the public contact/RFQ form. New inquiries always
// start in pending status; the sales notification is fired in the background
// and can never fail the submission.
func (h *Handlers) SubmitContact(c *gin.Context) {
	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	record, err := h.repo.CreateInquiry(c.Request.Context(), req.Name, req.Email, req.Company, composeMessage(req))
	if err != nil {
		dbError(c, "Failed to submit inquiry")
		return
	}

	h.metrics.InquiriesReceived.Inc()
	logrus.Infof("New inquiry %s from %s (%s)", record.ID, record.Name, record.Company)

	if h.notifier != nil {
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			if err := h.notifier.NotifyNewInquiry(ctx, record); err != nil {
				logrus.Errorf("Failed to notify sales about inquiry %s: %v", record.ID, err)
				h.metrics.NotifyFailures.Inc()
				return
			}
			h.metrics.NotifySuccesses.Inc()
		}()
	}

	c.JSON(http.StatusCreated, record)
}
