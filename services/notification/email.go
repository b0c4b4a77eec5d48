package notification

import (
	"fmt"
	"os"
	"strconv"

	bookingModel "agency-backend/models/booking"

	"gopkg.in/gomail.v2"
)

// Mailer sends booking lifecycle emails over SMTP. Every send is
// best-effort: callers log failures and move on, a failed email never
// reverses a completed state transition.
type Mailer struct {
	host string
	port int
	user string
	pass string
	from string
}

func NewMailer() *Mailer {
	port, err := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if err != nil {
		port = 587
	}
	return &Mailer{
		host: os.Getenv("SMTP_HOST"),
		port: port,
		user: os.Getenv("SMTP_USER"),
		pass: os.Getenv("SMTP_PASSWORD"),
		from: os.Getenv("SMTP_FROM"),
	}
}

func (m *Mailer) send(to, subject, body string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	d := gomail.NewDialer(m.host, m.port, m.user, m.pass)
	return d.DialAndSend(msg)
}

// SendBookingConfirmation mails the requester their manage link after a
// booking is created. The link embeds the access token.
func (m *Mailer) SendBookingConfirmation(b *bookingModel.Booking, manageURL string) error {
	body := fmt.Sprintf(
		"Hi %s,\n\nYour discovery call is booked for %s at %s (%s).\n\nManage your booking here: %s\n\nThis link expires and is the only way to view, reschedule or cancel your call, so keep it safe.",
		b.Name, b.SelectedDate, b.SelectedTime, b.Timezone, manageURL,
	)
	return m.send(b.Email, "Your call is booked", body)
}

// SendCancellationConfirmation mails the requester after their booking is cancelled.
func (m *Mailer) SendCancellationConfirmation(b *bookingModel.Booking) error {
	body := fmt.Sprintf(
		"Hi %s,\n\nYour call scheduled for %s at %s (%s) has been cancelled.\n\nIf this was a mistake, feel free to book a new call with us any time.",
		b.Name, b.SelectedDate, b.SelectedTime, b.Timezone,
	)
	return m.send(b.Email, "Your call has been cancelled", body)
}

// SendRescheduleConfirmation mails the requester after their booking moves
// to a new date and time.
func (m *Mailer) SendRescheduleConfirmation(b *bookingModel.Booking) error {
	body := fmt.Sprintf(
		"Hi %s,\n\nYour call has been moved to %s at %s (%s).\n\nYour original manage link keeps working for this booking.",
		b.Name, b.SelectedDate, b.SelectedTime, b.Timezone,
	)
	return m.send(b.Email, "Your call has been rescheduled", body)
}
