package booking

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"agency-backend/httpServices/scheduler"
	"agency-backend/logger"
	bookingModel "agency-backend/models/booking"
	bookingTypes "agency-backend/types/booking"
	"agency-backend/utils"
)

// Scheduler is the slice of the provider client the booking workflows use.
type Scheduler interface {
	CreateBooking(req scheduler.BookingRequest) (*scheduler.BookingResponse, error)
}

// Notifier sends booking lifecycle emails. All sends are best-effort.
type Notifier interface {
	SendBookingConfirmation(b *bookingModel.Booking, manageURL string) error
	SendCancellationConfirmation(b *bookingModel.Booking) error
	SendRescheduleConfirmation(b *bookingModel.Booking) error
}

// Service implements the booking lifecycle: create, verify, cancel,
// reschedule. Correctness under concurrent requests is delegated to the
// store's conditional update, the service holds no locks.
type Service struct {
	store         Store
	scheduler     Scheduler
	notifier      Notifier
	eventTypeID   int
	manageBaseURL string
}

func NewService(store Store, sched Scheduler, notifier Notifier) *Service {
	eventTypeID, err := strconv.Atoi(os.Getenv("SCHEDULER_EVENT_TYPE_ID"))
	if err != nil {
		eventTypeID = 0
	}
	return &Service{
		store:         store,
		scheduler:     sched,
		notifier:      notifier,
		eventTypeID:   eventTypeID,
		manageBaseURL: os.Getenv("BOOKING_MANAGE_URL"),
	}
}

// resolveToken is the single gate every self-service action passes through.
// Unknown and expired tokens come back as distinct errors so callers can log
// them apart, but both must render as InvalidLinkMessage.
func (s *Service) resolveToken(token string) (*bookingModel.Booking, error) {
	b, err := s.store.FindByToken(token)
	if err != nil {
		return nil, err
	}
	if b.IsTokenExpired() {
		return nil, ErrExpired
	}
	return b, nil
}

// Verify resolves a token to its booking projection. Read-only and safe to
// call any number of times, it never consumes the token.
func (s *Service) Verify(token string) (*bookingTypes.BookingProjection, error) {
	b, err := s.resolveToken(token)
	if err != nil {
		return nil, err
	}
	return projection(b), nil
}

// Cancel transitions a non-terminal booking to cancelled and records the
// optional reason. The transition is a compare-and-set on status, concurrent
// cancels on the same token produce exactly one success.
func (s *Service) Cancel(token, reason string) (*bookingTypes.BookingProjection, error) {
	b, err := s.resolveToken(token)
	if err != nil {
		return nil, err
	}
	if b.Status.IsTerminal() {
		return nil, ErrAlreadyCancelled
	}

	updates := map[string]interface{}{
		"status": bookingModel.BookingStatusCancelled,
	}
	if reason != "" {
		updates["cancellation_reason"] = reason
	}

	ok, err := s.store.UpdateStatusIf(b.ID, bookingModel.ActionableStatuses(), updates)
	if err != nil {
		return nil, err
	}
	if !ok {
		// Lost the race: someone else reached a terminal state first.
		return nil, ErrAlreadyCancelled
	}

	s.appendEvent(b.ID, bookingModel.BookingStatusCancelled, reason)

	updated, err := s.store.FindByID(b.ID)
	if err != nil {
		return nil, err
	}

	// The cancellation is the durable fact. Email delivery is best-effort
	// and must never roll it back.
	if err := s.notifier.SendCancellationConfirmation(updated); err != nil {
		logger.Error(fmt.Sprintf("Failed to send cancellation email for booking %d", updated.ID), err)
	}

	return projection(updated), nil
}

// Reschedule moves a non-terminal booking to a new date and time. A cancelled
// booking cannot be rescheduled.
func (s *Service) Reschedule(token, selectedDate, selectedTime string) (*bookingTypes.BookingProjection, error) {
	b, err := s.resolveToken(token)
	if err != nil {
		return nil, err
	}
	if b.Status.IsTerminal() {
		return nil, ErrAlreadyCancelled
	}

	if err := validateSlot(selectedDate, selectedTime, b.Timezone); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"status":        bookingModel.BookingStatusRescheduled,
		"selected_date": selectedDate,
		"selected_time": selectedTime,
	}

	ok, err := s.store.UpdateStatusIf(b.ID, bookingModel.ActionableStatuses(), updates)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrAlreadyCancelled
	}

	s.appendEvent(b.ID, bookingModel.BookingStatusRescheduled, "")

	updated, err := s.store.FindByID(b.ID)
	if err != nil {
		return nil, err
	}

	if err := s.notifier.SendRescheduleConfirmation(updated); err != nil {
		logger.Error(fmt.Sprintf("Failed to send reschedule email for booking %d", updated.ID), err)
	}

	return projection(updated), nil
}

// Create validates the request, books the slot upstream, then persists the
// local record with a freshly minted access token. Nothing is persisted when
// the provider rejects or cannot be reached.
func (s *Service) Create(req bookingTypes.CreateBookingRequest) (*bookingTypes.BookingProjection, string, error) {
	if err := validateSlot(req.SelectedDate, req.SelectedTime, req.Timezone); err != nil {
		return nil, "", err
	}

	start, end, err := utils.MeetingWindow(req.SelectedDate, req.SelectedTime, req.Timezone)
	if err != nil {
		return nil, "", newValidationError(err.Error())
	}

	providerReq := scheduler.BookingRequest{
		EventTypeID: s.eventTypeID,
		Start:       start.UTC().Format(time.RFC3339),
		End:         end.UTC().Format(time.RFC3339),
		Responses: scheduler.Responses{
			Name:   req.Name,
			Email:  req.Email,
			Guests: req.GuestEmails,
			Location: scheduler.LocationInput{
				Value:       "integrations:daily-video",
				OptionValue: "",
			},
		},
		Metadata: map[string]string{
			"company":              req.Company,
			"phone":                req.Phone,
			"meeting_platform":     req.MeetingPlatform,
			"business_description": req.BusinessDescription,
			"location":             req.Location,
		},
		TimeZone: req.Timezone,
		Language: "en",
	}

	providerBooking, err := s.scheduler.CreateBooking(providerReq)
	if err != nil {
		return nil, "", err
	}

	token, err := GenerateAccessToken()
	if err != nil {
		return nil, "", err
	}

	b := &bookingModel.Booking{
		Name:                req.Name,
		Email:               req.Email,
		SelectedDate:        req.SelectedDate,
		SelectedTime:        req.SelectedTime,
		Timezone:            req.Timezone,
		MeetingPlatform:     req.MeetingPlatform,
		BusinessDescription: req.BusinessDescription,
		Location:            req.Location,
		Status:              bookingModel.BookingStatusConfirmed,
		AccessToken:         token,
		TokenExpiresAt:      time.Now().Add(TokenTTL()),
	}
	if req.Company != "" {
		b.Company = &req.Company
	}
	if req.Phone != "" {
		b.Phone = &req.Phone
	}
	if len(req.GuestEmails) > 0 {
		guests := strings.Join(req.GuestEmails, ",")
		b.GuestEmails = &guests
	}
	if providerBooking.UID != "" {
		b.ProviderBookingUID = &providerBooking.UID
	}

	if err := s.store.Create(b); err != nil {
		return nil, "", err
	}

	s.appendEvent(b.ID, bookingModel.BookingStatusConfirmed, "")

	manageURL := fmt.Sprintf("%s?token=%s", s.manageBaseURL, token)
	if err := s.notifier.SendBookingConfirmation(b, manageURL); err != nil {
		logger.Error(fmt.Sprintf("Failed to send confirmation email for booking %d", b.ID), err)
	}

	return projection(b), token, nil
}

// List returns bookings for the admin dashboard, newest first.
func (s *Service) List(limit, offset int) ([]bookingModel.Booking, int64, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return s.store.List(limit, offset)
}

func (s *Service) appendEvent(bookingID uint, status bookingModel.BookingStatus, reason string) {
	ev := &bookingModel.BookingStatusEvent{
		BookingID: bookingID,
		Status:    status,
	}
	if reason != "" {
		ev.Reason = &reason
	}
	if err := s.store.AppendStatusEvent(ev); err != nil {
		logger.Error(fmt.Sprintf("Failed to append status event for booking %d", bookingID), err)
	}
}

func validateSlot(selectedDate, selectedTime, timezone string) error {
	past, err := utils.IsPastDate(selectedDate)
	if err != nil {
		return newValidationError(err.Error())
	}
	if past {
		return newValidationError("selected_date must not be in the past")
	}
	if _, err := utils.ConvertTo24Hour(selectedTime); err != nil {
		return newValidationError(err.Error())
	}
	if _, _, err := utils.MeetingWindow(selectedDate, selectedTime, timezone); err != nil {
		return newValidationError(err.Error())
	}
	return nil
}

func projection(b *bookingModel.Booking) *bookingTypes.BookingProjection {
	return &bookingTypes.BookingProjection{
		Name:               b.Name,
		Email:              b.Email,
		Company:            b.Company,
		Phone:              b.Phone,
		SelectedDate:       b.SelectedDate,
		SelectedTime:       b.SelectedTime,
		Timezone:           b.Timezone,
		Status:             b.Status.String(),
		CancellationReason: b.CancellationReason,
	}
}
