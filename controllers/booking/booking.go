package booking

import (
	"errors"
	"fmt"
	"strconv"

	"agency-backend/httpServices/scheduler"
	"agency-backend/logger"
	bookingService "agency-backend/services/booking"
	"agency-backend/types"
	bookingTypes "agency-backend/types/booking"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// BookingController handles booking-related HTTP requests
type BookingController struct {
	Service *bookingService.Service
}

// NewBookingController creates a new booking controller
func NewBookingController(service *bookingService.Service) *BookingController {
	return &BookingController{
		Service: service,
	}
}

// Store creates a new booking via the scheduling provider and returns the
// freshly minted manage token to the requester.
func (bc *BookingController) Store(c *fiber.Ctx) error {
	var req bookingTypes.CreateBookingRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse booking create request", err)
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
			Data:    nil,
		})
	}

	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: err.Error(),
			Data:    nil,
		})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Validation failed: " + err.Error(),
			Data:    nil,
		})
	}

	projection, token, err := bc.Service.Create(req)
	if err != nil {
		return bc.renderCreateError(c, err)
	}

	logger.Success(fmt.Sprintf("Booking created for %s on %s", projection.Email, projection.SelectedDate))
	return c.Status(fiber.StatusCreated).JSON(types.ApiResponse{
		Status:  fiber.StatusCreated,
		Message: "Booking created successfully",
		Token:   token,
		Data:    projection,
	})
}

// VerifyToken resolves a manage token to its booking. Read-only, idempotent,
// and the gate every self-service page calls before rendering details.
func (bc *BookingController) VerifyToken(c *fiber.Ctx) error {
	token := c.Query("token")
	if token == "" {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "token is required",
			Data:    nil,
		})
	}

	projection, err := bc.Service.Verify(token)
	if err != nil {
		return bc.renderTokenError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Booking found",
		Data:    projection,
	})
}

// Cancel transitions the booking behind a valid token to cancelled.
func (bc *BookingController) Cancel(c *fiber.Ctx) error {
	var req bookingTypes.CancelBookingRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse cancel request", err)
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
			Data:    nil,
		})
	}

	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: err.Error(),
			Data:    nil,
		})
	}

	projection, err := bc.Service.Cancel(req.Token, req.CancellationReason)
	if err != nil {
		return bc.renderTokenError(c, err)
	}

	logger.Success(fmt.Sprintf("Booking cancelled for %s", projection.Email))
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Booking cancelled successfully",
		Data:    projection,
	})
}

// Reschedule moves the booking behind a valid token to a new date and time.
func (bc *BookingController) Reschedule(c *fiber.Ctx) error {
	var req bookingTypes.RescheduleBookingRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse reschedule request", err)
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
			Data:    nil,
		})
	}

	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: err.Error(),
			Data:    nil,
		})
	}

	projection, err := bc.Service.Reschedule(req.Token, req.SelectedDate, req.SelectedTime)
	if err != nil {
		return bc.renderTokenError(c, err)
	}

	logger.Success(fmt.Sprintf("Booking rescheduled for %s to %s", projection.Email, projection.SelectedDate))
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Booking rescheduled successfully",
		Data:    projection,
	})
}

// Index lists bookings for the admin dashboard
func (bc *BookingController) Index(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit", "20"))
	offset, _ := strconv.Atoi(c.Query("offset", "0"))

	bookings, total, err := bc.Service.List(limit, offset)
	if err != nil {
		logger.Error("Failed to list bookings", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Database error",
			Data:    nil,
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Bookings retrieved successfully",
		Data: fiber.Map{
			"bookings": bookings,
			"total":    total,
		},
	})
}

// renderTokenError maps token resolution and transition failures onto the
// HTTP surface. Unknown and expired tokens are deliberately indistinguishable.
func (bc *BookingController) renderTokenError(c *fiber.Ctx, err error) error {
	var vErr *bookingService.ValidationError
	switch {
	case errors.Is(err, bookingService.ErrNotFound), errors.Is(err, bookingService.ErrExpired):
		return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
			Status:  fiber.StatusNotFound,
			Message: bookingService.InvalidLinkMessage,
			Data:    nil,
		})
	case errors.Is(err, bookingService.ErrAlreadyCancelled):
		return c.Status(fiber.StatusConflict).JSON(types.ApiResponse{
			Status:  fiber.StatusConflict,
			Message: "Booking has already been cancelled",
			Data:    nil,
		})
	case errors.As(err, &vErr):
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: vErr.Reason,
			Data:    nil,
		})
	default:
		logger.Error("Booking operation failed", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Internal server error",
			Data:    nil,
		})
	}
}

func (bc *BookingController) renderCreateError(c *fiber.Ctx, err error) error {
	var vErr *bookingService.ValidationError
	var apiErr *scheduler.APIError
	switch {
	case errors.As(err, &vErr):
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: vErr.Reason,
			Data:    nil,
		})
	case errors.As(err, &apiErr):
		logger.Error("Scheduling provider rejected booking", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: apiErr.Message,
			Data:    nil,
		})
	case errors.Is(err, scheduler.ErrUnavailable):
		logger.Error("Scheduling provider unreachable", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Scheduling service is currently unavailable, please try again",
			Data:    nil,
		})
	default:
		logger.Error("Failed to create booking", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to save booking",
			Data:    nil,
		})
	}
}
