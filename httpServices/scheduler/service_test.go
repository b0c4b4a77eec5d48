package scheduler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func sampleRequest() BookingRequest {
	return BookingRequest{
		EventTypeID: 42,
		Start:       "2030-01-15T13:30:00Z",
		End:         "2030-01-15T14:00:00Z",
		Responses: Responses{
			Name:     "Ada Lovelace",
			Email:    "ada@example.com",
			Location: LocationInput{Value: "integrations:daily-video"},
		},
		Metadata: map[string]string{"company": "Analytical Engines Ltd"},
		TimeZone: "UTC",
		Language: "en",
	}
}

func TestCreateBookingSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/bookings" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if got := r.URL.Query().Get("apiKey"); got != "secret" {
			t.Errorf("apiKey = %q, want secret", got)
		}

		var req BookingRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("failed to decode request body: %v", err)
		}
		if req.EventTypeID != 42 {
			t.Errorf("eventTypeId = %d, want 42", req.EventTypeID)
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(BookingResponse{ID: 77, UID: "prov-uid-77", Status: "ACCEPTED"})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "secret")
	resp, err := client.CreateBooking(sampleRequest())
	if err != nil {
		t.Fatalf("CreateBooking failed: %v", err)
	}
	if resp.UID != "prov-uid-77" || resp.ID != 77 {
		t.Errorf("response = %+v, want uid prov-uid-77 id 77", resp)
	}
}

func TestCreateBookingRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"message": "no_available_users_found_error"})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "secret")
	_, err := client.CreateBooking(sampleRequest())

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error = %v, want *APIError", err)
	}
	if apiErr.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", apiErr.StatusCode)
	}
	if apiErr.Message != "no_available_users_found_error" {
		t.Errorf("message = %q, want provider message", apiErr.Message)
	}
}

func TestCreateBookingRejectedWithoutBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "secret")
	_, err := client.CreateBooking(sampleRequest())

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error = %v, want *APIError", err)
	}
	if apiErr.Message == "" {
		t.Error("message is empty, want the HTTP status as fallback")
	}
}

func TestCreateBookingUnreachable(t *testing.T) {
	client := NewClient("http://127.0.0.1:1", "secret")
	_, err := client.CreateBooking(sampleRequest())
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("error = %v, want ErrUnavailable", err)
	}
}
