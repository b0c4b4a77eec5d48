package content

import (
	"time"

	"gorm.io/gorm"
)

// BlogPost represents a blog article managed from the admin dashboard
type BlogPost struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	Title         string `gorm:"type:varchar(255);not null" json:"title"`
	Slug          string `gorm:"type:varchar(255);not null;unique" json:"slug"`
	Excerpt       string `gorm:"type:text" json:"excerpt"`
	Body          string `gorm:"type:text;not null" json:"body"`
	Category      string `gorm:"type:varchar(100);index" json:"category"`
	CoverImageURL string `gorm:"type:text" json:"cover_image_url"`
	Published     bool   `gorm:"default:false;index" json:"published"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}
