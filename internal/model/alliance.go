package model

import "time"

// Alliance represents a manufacturer/partner listed in the partner directory.
type Alliance struct {
	ID        uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	Name      string    `json:"name" gorm:"type:varchar(255);not null;uniqueIndex"`
	Website   string    `json:"website" gorm:"type:varchar(512)"`
	LogoURL   string    `json:"logo_url" gorm:"type:varchar(512)"`
	Tier      string    `json:"tier" gorm:"type:varchar(50);default:'standard'"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the table name for Alliance
func (Alliance) TableName() string {
	return "alliances"
}
