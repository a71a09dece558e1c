package model

import "time"

// BlogPost represents an article on the site blog. Unpublished posts are only
// visible through the admin API.
type BlogPost struct {
	ID          uint       `json:"id" gorm:"primaryKey;autoIncrement"`
	Title       string     `json:"title" gorm:"type:varchar(255);not null"`
	Slug        string     `json:"slug" gorm:"type:varchar(255);not null;uniqueIndex"`
	Excerpt     string     `json:"excerpt" gorm:"type:varchar(512)"`
	Content     string     `json:"content" gorm:"type:text"`
	Published   bool       `json:"published" gorm:"default:false;index"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// TableName specifies the table name for BlogPost
func (BlogPost) TableName() string {
	return "blog_posts"
}
