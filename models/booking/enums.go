package booking

// BookingStatus represents the lifecycle state of a booking
type BookingStatus string

const (
	BookingStatusPending     BookingStatus = "pending"
	BookingStatusConfirmed   BookingStatus = "confirmed"
	BookingStatusCancelled   BookingStatus = "cancelled"
	BookingStatusRescheduled BookingStatus = "rescheduled"
)

// Helper methods for BookingStatus
func (bs BookingStatus) String() string {
	return string(bs)
}

func (bs BookingStatus) IsValid() bool {
	switch bs {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCancelled, BookingStatusRescheduled:
		return true
	default:
		return false
	}
}

// IsTerminal returns true if no further mutating action is allowed.
// Cancelled is terminal for every self-service action, a cancelled
// booking can neither be cancelled again nor rescheduled.
func (bs BookingStatus) IsTerminal() bool {
	return bs == BookingStatusCancelled
}

// CanBeCancelled returns true if a cancel transition is allowed from this state
func (bs BookingStatus) CanBeCancelled() bool {
	return bs == BookingStatusPending || bs == BookingStatusConfirmed || bs == BookingStatusRescheduled
}

// CanBeRescheduled returns true if a reschedule transition is allowed from this state
func (bs BookingStatus) CanBeRescheduled() bool {
	return bs == BookingStatusPending || bs == BookingStatusConfirmed || bs == BookingStatusRescheduled
}

// ActionableStatuses returns the set of states a mutating transition may start from
func ActionableStatuses() []BookingStatus {
	return []BookingStatus{
		BookingStatusPending,
		BookingStatusConfirmed,
		BookingStatusRescheduled,
	}
}

// GetAllBookingStatuses returns all valid booking statuses
func GetAllBookingStatuses() []BookingStatus {
	return []BookingStatus{
		BookingStatusPending,
		BookingStatusConfirmed,
		BookingStatusCancelled,
		BookingStatusRescheduled,
	}
}
