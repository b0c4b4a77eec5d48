package utils

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/jinzhu/now"
)

// MeetingDuration is the fixed length of a discovery call.
const MeetingDuration = 30 * time.Minute

// ConvertTo24Hour converts a 12-hour display time like "01:30 PM" to its
// 24-hour canonical form "13:30:00". The 12 AM / 12 PM boundary maps to
// 00 and 12 respectively.
func ConvertTo24Hour(displayTime string) (string, error) {
	parts := strings.Fields(strings.TrimSpace(displayTime))
	if len(parts) != 2 {
		return "", fmt.Errorf("invalid time format: %q", displayTime)
	}

	clock := strings.Split(parts[0], ":")
	if len(clock) != 2 {
		return "", fmt.Errorf("invalid time format: %q", displayTime)
	}

	hour, err := strconv.Atoi(clock[0])
	if err != nil {
		return "", fmt.Errorf("invalid hour in %q", displayTime)
	}
	minute, err := strconv.Atoi(clock[1])
	if err != nil {
		return "", fmt.Errorf("invalid minute in %q", displayTime)
	}
	if hour < 1 || hour > 12 || minute < 0 || minute > 59 {
		return "", fmt.Errorf("time out of range: %q", displayTime)
	}

	switch strings.ToUpper(parts[1]) {
	case "AM":
		if hour == 12 {
			hour = 0
		}
	case "PM":
		if hour != 12 {
			hour += 12
		}
	default:
		return "", fmt.Errorf("invalid meridiem in %q", displayTime)
	}

	return fmt.Sprintf("%02d:%02d:00", hour, minute), nil
}

// IsPastDate reports whether a YYYY-MM-DD date falls strictly before
// today's local midnight.
func IsPastDate(selectedDate string) (bool, error) {
	d, err := time.ParseInLocation("2006-01-02", selectedDate, time.Local)
	if err != nil {
		return false, fmt.Errorf("invalid date format: %q", selectedDate)
	}
	return d.Before(now.BeginningOfDay()), nil
}

// MeetingWindow combines a calendar date, a 12-hour display time and an IANA
// timezone into the start/end instants sent to the scheduling provider.
func MeetingWindow(selectedDate, displayTime, timezone string) (time.Time, time.Time, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid timezone: %q", timezone)
	}

	canonical, err := ConvertTo24Hour(displayTime)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	start, err := time.ParseInLocation("2006-01-02 15:04:05", selectedDate+" "+canonical, loc)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid date/time: %q %q", selectedDate, displayTime)
	}

	return start, start.Add(MeetingDuration), nil
}

var slugInvalidChars = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify turns a title into a URL-safe slug
func Slugify(title string) string {
	slug := strings.ToLower(strings.TrimSpace(title))
	slug = slugInvalidChars.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}
