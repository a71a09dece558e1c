package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/carelinkhealthineers/Carelink-Healthineers-sub000/internal/inquiry"
	"github.com/carelinkhealthineers/Carelink-Healthineers-sub000/internal/metrics"
	"github.com/carelinkhealthineers/Carelink-Healthineers-sub000/internal/model"
)

// Prometheus collectors register globally, so one set per test binary.
var testMetrics = metrics.NewMetrics()

// stubStore serves a fixed collection and can be told to fail listing.
type stubStore struct {
	items   []model.Inquiry
	listErr error
}

func (s *stubStore) CreateInquiry(_ context.Context, name, email, company, message string) (model.Inquiry, error) {
	return model.Inquiry{Name: name, Email: email, Company: company, Message: message, Status: model.StatusPending}, nil
}

func (s *stubStore) ListInquiries(_ context.Context) ([]model.Inquiry, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.items, nil
}

func (s *stubStore) CountInquiriesByStatus(_ context.Context) (map[model.InquiryStatus]int64, error) {
	return map[model.InquiryStatus]int64{}, nil
}

// recordingStatusStore backs the board and records persists.
type recordingStatusStore struct {
	calls []string
	err   error
}

func (s *recordingStatusStore) UpdateInquiryStatus(_ context.Context, id string, status model.InquiryStatus) error {
	s.calls = append(s.calls, id+":"+string(status))
	return s.err
}

func inquiryRouter(store *stubStore, statusStore *recordingStatusStore) (*gin.Engine, *inquiry.Board) {
	gin.SetMode(gin.TestMode)
	board := inquiry.NewBoard(statusStore)
	h := NewHandlers(nil, store, board, nil, nil, nil, testMetrics)

	router := gin.New()
	router.GET("/inquiries", h.ListInquiries)
	router.PATCH("/inquiries/:id/status", h.UpdateInquiryStatus)
	return router, board
}

func TestListInquiriesFiltersAndOptions(t *testing.T) {
	store := &stubStore{items: []model.Inquiry{
		{ID: "1", Name: "Jordan", Company: "Acme Clinics", Message: "[Product: DRX-900] - quote", Status: model.StatusPending},
		{ID: "2", Name: "Sam", Company: "Other", Message: "[Product: VS-2000] - demo", Status: model.StatusReviewed},
		{ID: "3", Name: "Kim", Company: "Third", Message: "no tags", Status: model.StatusPending},
	}}
	router, _ := inquiryRouter(store, &recordingStatusStore{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/inquiries?status=pending&product=DRX-900", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `"total":1`)
	assert.Contains(t, body, `"id":"1"`)
	assert.NotContains(t, body, `"id":"2"`)
	// Option set comes from the full collection, not the filtered subset.
	assert.Contains(t, body, "VS-2000")
}

func TestUpdateInquiryStatusHappyPath(t *testing.T) {
	store := &stubStore{items: []model.Inquiry{
		{ID: "X", Name: "Jordan", Status: model.StatusPending},
	}}
	statusStore := &recordingStatusStore{}
	router, _ := inquiryRouter(store, statusStore)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/inquiries/X/status", strings.NewReader(`{"status":"archived"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"archived"`)
	assert.Equal(t, []string{"X:archived"}, statusStore.calls)
}

func TestUpdateInquiryStatusReloadFailureAbortsBeforePersist(t *testing.T) {
	store := &stubStore{listErr: errors.New("connection refused")}
	statusStore := &recordingStatusStore{}
	router, _ := inquiryRouter(store, statusStore)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/inquiries/X/status", strings.NewReader(`{"status":"reviewed"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Empty(t, statusStore.calls, "nothing may be persisted when the snapshot cannot be refreshed")
}

func TestUpdateInquiryStatusUnknownStatus(t *testing.T) {
	store := &stubStore{items: []model.Inquiry{{ID: "X", Status: model.StatusPending}}}
	statusStore := &recordingStatusStore{}
	router, _ := inquiryRouter(store, statusStore)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/inquiries/X/status", strings.NewReader(`{"status":"deleted"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, statusStore.calls)
}

func TestUpdateInquiryStatusPersistFailure(t *testing.T) {
	store := &stubStore{items: []model.Inquiry{{ID: "X", Status: model.StatusPending}}}
	statusStore := &recordingStatusStore{err: errors.New("timeout")}
	router, board := inquiryRouter(store, statusStore)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/inquiries/X/status", strings.NewReader(`{"status":"archived"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadGateway, w.Code)
	// The snapshot still shows the pre-attempt status.
	items := board.Items()
	if assert.Len(t, items, 1) {
		assert.Equal(t, model.StatusPending, items[0].Status)
	}
}
