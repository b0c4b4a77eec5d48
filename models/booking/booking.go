package booking

import (
	"time"

	"gorm.io/gorm"
)

// Booking represents a scheduled discovery-call record with requester details
// and the self-service access token minted at creation time.
type Booking struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	Name    string  `gorm:"type:varchar(255);not null" json:"name"`
	Email   string  `gorm:"type:varchar(255);not null" json:"email"`
	Company *string `gorm:"type:varchar(255)" json:"company,omitempty"`
	Phone   *string `gorm:"type:varchar(20)" json:"phone,omitempty"`

	SelectedDate string `gorm:"type:varchar(10);not null" json:"selected_date"` // YYYY-MM-DD
	SelectedTime string `gorm:"type:varchar(20);not null" json:"selected_time"` // 12-hour display form
	Timezone     string `gorm:"type:varchar(64);not null" json:"timezone"`

	MeetingPlatform     string  `gorm:"type:varchar(50)" json:"meeting_platform,omitempty"`
	GuestEmails         *string `gorm:"type:text" json:"guest_emails,omitempty"`
	BusinessDescription string  `gorm:"type:text" json:"business_description,omitempty"`
	Location            string  `gorm:"type:varchar(255)" json:"location,omitempty"`

	Status             BookingStatus `gorm:"type:varchar(20);not null" json:"status"`
	CancellationReason *string       `gorm:"type:text" json:"cancellation_reason,omitempty"`

	// The token is the only booking reference ever handed to the browser.
	// The internal id and the provider's booking uid stay server-side.
	AccessToken        string    `gorm:"type:varchar(64);not null;unique" json:"-"`
	TokenExpiresAt     time.Time `gorm:"not null" json:"-"`
	ProviderBookingUID *string   `gorm:"type:varchar(255)" json:"-"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

// IsTokenExpired checks the access token expiry against the current time.
// Expiry is enforced lazily on every access, there is no background sweep.
func (b *Booking) IsTokenExpired() bool {
	return time.Now().After(b.TokenExpiresAt)
}
