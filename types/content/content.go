package content

import (
	"fmt"
)

// BlogPostRequest represents the admin payload for creating or updating a blog post
type BlogPostRequest struct {
	Title         string `json:"title" validate:"required,min=1,max=255"`
	Excerpt       string `json:"excerpt" validate:"omitempty,max=2000"`
	Body          string `json:"body" validate:"required"`
	Category      string `json:"category" validate:"omitempty,max=100"`
	CoverImageURL string `json:"cover_image_url" validate:"omitempty,url"`
	Published     bool   `json:"published"`
}

func (r BlogPostRequest) Validate() error {
	if r.Title == "" {
		return fmt.Errorf("title is required")
	}
	if r.Body == "" {
		return fmt.Errorf("body is required")
	}
	return nil
}

// CaseStudyRequest represents the admin payload for creating or updating a case study
type CaseStudyRequest struct {
	Title         string `json:"title" validate:"required,min=1,max=255"`
	ClientName    string `json:"client_name" validate:"omitempty,max=255"`
	Industry      string `json:"industry" validate:"omitempty,max=100"`
	Summary       string `json:"summary" validate:"omitempty,max=2000"`
	Body          string `json:"body" validate:"required"`
	CoverImageURL string `json:"cover_image_url" validate:"omitempty,url"`
	Published     bool   `json:"published"`
}

func (r CaseStudyRequest) Validate() error {
	if r.Title == "" {
		return fmt.Errorf("title is required")
	}
	if r.Body == "" {
		return fmt.Errorf("body is required")
	}
	return nil
}
