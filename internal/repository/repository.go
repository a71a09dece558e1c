// Package repository wraps the inquiry-facing database operations so the
// triage board can persist transitions without knowing about gorm.
package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/carelinkhealthineers/Carelink-Healthineers-sub000/internal/inquiry"
	"github.com/carelinkhealthineers/Carelink-Healthineers-sub000/internal/model"
)

type Repository struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// CreateInquiry inserts a new pending inquiry with a fresh identifier.
func (r *Repository) CreateInquiry(ctx context.Context, name, email, company, message string) (model.Inquiry, error) {
	record := model.Inquiry{
		ID:      uuid.NewString(),
		Name:    strings.TrimSpace(name),
		Email:   strings.TrimSpace(email),
		Company: strings.TrimSpace(company),
		Message: message,
		Status:  model.StatusPending,
	}
	if err := r.db.WithContext(ctx).Create(&record).Error; err != nil {
		return model.Inquiry{}, fmt.Errorf("failed to create inquiry: %w", err)
	}
	return record, nil
}

// ListInquiries returns the full collection, newest first.
func (r *Repository) ListInquiries(ctx context.Context) ([]model.Inquiry, error) {
	var items []model.Inquiry
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to list inquiries: %w", err)
	}
	return items, nil
}

// UpdateInquiryStatus updates exactly the status column of exactly one row.
// It satisfies inquiry.StatusStore. The not-found check relies on the
// connection reporting matched rows (clientFoundRows in the DSN); otherwise a
// self-transition of an existing row would also report zero affected rows.
func (r *Repository) UpdateInquiryStatus(ctx context.Context, id string, status model.InquiryStatus) error {
	result := r.db.WithContext(ctx).
		Model(&model.Inquiry{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return fmt.Errorf("failed to update inquiry status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return inquiry.ErrNotFound
	}
	return nil
}

// CountInquiriesByStatus returns the number of inquiries in each status.
// Statuses with no records are present with a zero count.
func (r *Repository) CountInquiriesByStatus(ctx context.Context) (map[model.InquiryStatus]int64, error) {
	counts := map[model.InquiryStatus]int64{
		model.StatusPending:  0,
		model.StatusReviewed: 0,
		model.StatusArchived: 0,
	}

	rows := []struct {
		Status model.InquiryStatus
		Count  int64
	}{}
	err := r.db.WithContext(ctx).
		Model(&model.Inquiry{}).
		Select("status, COUNT(*) as count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count inquiries: %w", err)
	}

	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}
