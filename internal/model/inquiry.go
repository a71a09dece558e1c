package model

import "time"

// InquiryStatus is the triage state of an inquiry.
type InquiryStatus string

const (
	StatusPending  InquiryStatus = "pending"
	StatusReviewed InquiryStatus = "reviewed"
	StatusArchived InquiryStatus = "archived"
)

// Valid reports whether s is one of the known statuses.
func (s InquiryStatus) Valid() bool {
	switch s {
	case StatusPending, StatusReviewed, StatusArchived:
		return true
	}
	return false
}

// Inquiry represents a lead/RFQ record submitted through the contact form.
// The message field may embed [Product: ...] and [Interest: ...] tags; those
// are derived on read and never written back.
type Inquiry struct {
	ID        string        `json:"id" gorm:"type:varchar(36);primaryKey"`
	Name      string        `json:"name" gorm:"type:varchar(255);not null"`
	Email     string        `json:"email" gorm:"type:varchar(255);not null"`
	Company   string        `json:"company" gorm:"type:varchar(255);not null"`
	Message   string        `json:"message" gorm:"type:text;not null"`
	Status    InquiryStatus `json:"status" gorm:"type:varchar(20);not null;default:'pending';index"`
	CreatedAt time.Time     `json:"created_at"`
}

// TableName specifies the table name for Inquiry
func (Inquiry) TableName() string {
	return "inquiries"
}
