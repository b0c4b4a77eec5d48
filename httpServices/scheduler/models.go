package scheduler

import (
	"fmt"
)

// LocationInput selects the meeting location integration on the provider side
type LocationInput struct {
	Value       string `json:"value"`
	OptionValue string `json:"optionValue"`
}

// Responses carries the requester answers attached to the provider booking
type Responses struct {
	Name     string        `json:"name"`
	Email    string        `json:"email"`
	Guests   []string      `json:"guests,omitempty"`
	Location LocationInput `json:"location"`
}

// BookingRequest is the provider's booking creation payload
type BookingRequest struct {
	EventTypeID int               `json:"eventTypeId"`
	Start       string            `json:"start"` // ISO-8601 instant
	End         string            `json:"end"`   // ISO-8601 instant
	Responses   Responses         `json:"responses"`
	Metadata    map[string]string `json:"metadata"`
	TimeZone    string            `json:"timeZone"`
	Language    string            `json:"language"`
}

// BookingResponse is the provider-assigned booking object, propagated as-is
type BookingResponse struct {
	ID     int    `json:"id"`
	UID    string `json:"uid"`
	Title  string `json:"title"`
	Status string `json:"status"`
}

type errorResponse struct {
	Message string `json:"message"`
}

// APIError is a rejection from the scheduling provider, carrying the
// provider's human-readable message.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("scheduling provider rejected request (status %d): %s", e.StatusCode, e.Message)
}
