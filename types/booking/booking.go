package booking

import (
	"fmt"
)

// CreateBookingRequest represents the request payload for creating a booking
type CreateBookingRequest struct {
	Name                string   `json:"name" validate:"required,min=1,max=255"`
	Email               string   `json:"email" validate:"required,email"`
	Company             string   `json:"company" validate:"required,min=1,max=255"`
	Phone               string   `json:"phone" validate:"omitempty,max=20"`
	SelectedDate        string   `json:"selected_date" validate:"required,datetime=2006-01-02"`
	SelectedTime        string   `json:"selected_time" validate:"required,max=20"`
	Timezone            string   `json:"timezone" validate:"required,max=64"`
	MeetingPlatform     string   `json:"meeting_platform" validate:"required,max=50"`
	GuestEmails         []string `json:"guest_emails" validate:"omitempty,dive,email"`
	BusinessDescription string   `json:"business_description" validate:"required"`
	Location            string   `json:"location" validate:"required,max=255"`
}

// use first step validation
func (r CreateBookingRequest) Validate() error {
	if r.Name == "" {
		return fmt.Errorf("name is required")
	}
	if r.Email == "" {
		return fmt.Errorf("email is required")
	}
	if r.Company == "" {
		return fmt.Errorf("company is required")
	}
	if r.SelectedDate == "" {
		return fmt.Errorf("selected_date is required")
	}
	if r.SelectedTime == "" {
		return fmt.Errorf("selected_time is required")
	}
	if r.Timezone == "" {
		return fmt.Errorf("timezone is required")
	}
	if r.MeetingPlatform == "" {
		return fmt.Errorf("meeting_platform is required")
	}
	if r.BusinessDescription == "" {
		return fmt.Errorf("business_description is required")
	}
	if r.Location == "" {
		return fmt.Errorf("location is required")
	}
	return nil
}

// CancelBookingRequest represents the request payload for cancelling a booking
type CancelBookingRequest struct {
	Token              string `json:"token" validate:"required"`
	CancellationReason string `json:"cancellation_reason" validate:"omitempty,max=2000"`
}

func (r CancelBookingRequest) Validate() error {
	if r.Token == "" {
		return fmt.Errorf("token is required")
	}
	return nil
}

// RescheduleBookingRequest represents the request payload for rescheduling a booking
type RescheduleBookingRequest struct {
	Token        string `json:"token" validate:"required"`
	SelectedDate string `json:"selected_date" validate:"required,datetime=2006-01-02"`
	SelectedTime string `json:"selected_time" validate:"required,max=20"`
}

func (r RescheduleBookingRequest) Validate() error {
	if r.Token == "" {
		return fmt.Errorf("token is required")
	}
	if r.SelectedDate == "" {
		return fmt.Errorf("selected_date is required")
	}
	if r.SelectedTime == "" {
		return fmt.Errorf("selected_time is required")
	}
	return nil
}

// BookingProjection is the booking view returned to token holders.
// It never carries the internal id or the provider booking uid.
type BookingProjection struct {
	Name               string  `json:"name"`
	Email              string  `json:"email"`
	Company            *string `json:"company,omitempty"`
	Phone              *string `json:"phone,omitempty"`
	SelectedDate       string  `json:"selected_date"`
	SelectedTime       string  `json:"selected_time"`
	Timezone           string  `json:"timezone"`
	Status             string  `json:"status"`
	CancellationReason *string `json:"cancellation_reason,omitempty"`
}
