package scheduler

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// ErrUnavailable is returned when the scheduling provider cannot be reached.
var ErrUnavailable = errors.New("scheduling provider unreachable")

type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		baseURL: baseURL,
		apiKey:  apiKey,
	}
}

// CreateBooking creates a booking upstream. A transport failure maps to
// ErrUnavailable; a non-2xx response maps to *APIError with the provider's
// message. Neither is retried here, the caller must resubmit.
func (c *Client) CreateBooking(req BookingRequest) (*BookingResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/bookings?apiKey=%s", c.baseURL, c.apiKey)
	httpReq, err := http.NewRequest(http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return nil, err
	}

	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var apiErr errorResponse
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err != nil || apiErr.Message == "" {
			apiErr.Message = resp.Status
		}
		return nil, &APIError{StatusCode: resp.StatusCode, Message: apiErr.Message}
	}

	var booking BookingResponse
	if err := json.NewDecoder(resp.Body).Decode(&booking); err != nil {
		return nil, err
	}

	return &booking, nil
}
