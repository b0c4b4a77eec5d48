package content

import (
	"time"

	"gorm.io/gorm"
)

// CaseStudy represents a client case study managed from the admin dashboard
type CaseStudy struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	Title         string `gorm:"type:varchar(255);not null" json:"title"`
	Slug          string `gorm:"type:varchar(255);not null;unique" json:"slug"`
	ClientName    string `gorm:"type:varchar(255)" json:"client_name"`
	Industry      string `gorm:"type:varchar(100);index" json:"industry"`
	Summary       string `gorm:"type:text" json:"summary"`
	Body          string `gorm:"type:text;not null" json:"body"`
	CoverImageURL string `gorm:"type:text" json:"cover_image_url"`
	Published     bool   `gorm:"default:false;index" json:"published"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}
