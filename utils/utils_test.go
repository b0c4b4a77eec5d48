package utils

import (
	"testing"
	"time"
)

func TestConvertTo24Hour(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"12:00 AM", "00:00:00"},
		{"12:00 PM", "12:00:00"},
		{"01:30 PM", "13:30:00"},
		{"11:45 AM", "11:45:00"},
		{"12:30 AM", "00:30:00"},
		{"09:00 am", "09:00:00"},
		{"09:00 pm", "21:00:00"},
		{"  10:15 AM ", "10:15:00"},
	}

	for _, tc := range cases {
		got, err := ConvertTo24Hour(tc.in)
		if err != nil {
			t.Errorf("ConvertTo24Hour(%q) returned error: %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ConvertTo24Hour(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestConvertTo24HourInvalid(t *testing.T) {
	cases := []string{
		"",
		"13:00 PM",
		"00:30 AM",
		"10:75 AM",
		"10:30",
		"10:30 XM",
		"half past nine",
	}

	for _, in := range cases {
		if _, err := ConvertTo24Hour(in); err == nil {
			t.Errorf("ConvertTo24Hour(%q) expected error, got none", in)
		}
	}
}

func TestIsPastDate(t *testing.T) {
	yesterday := time.Now().AddDate(0, 0, -1).Format("2006-01-02")
	today := time.Now().Format("2006-01-02")
	tomorrow := time.Now().AddDate(0, 0, 1).Format("2006-01-02")

	cases := []struct {
		date string
		want bool
	}{
		{yesterday, true},
		{today, false},
		{tomorrow, false},
	}

	for _, tc := range cases {
		got, err := IsPastDate(tc.date)
		if err != nil {
			t.Fatalf("IsPastDate(%q) returned error: %v", tc.date, err)
		}
		if got != tc.want {
			t.Errorf("IsPastDate(%q) = %v, want %v", tc.date, got, tc.want)
		}
	}

	if _, err := IsPastDate("15-01-2030"); err == nil {
		t.Error("IsPastDate with malformed date expected error, got none")
	}
}

func TestMeetingWindow(t *testing.T) {
	start, end, err := MeetingWindow("2030-01-15", "01:30 PM", "UTC")
	if err != nil {
		t.Fatalf("MeetingWindow returned error: %v", err)
	}

	wantStart := time.Date(2030, 1, 15, 13, 30, 0, 0, time.UTC)
	if !start.Equal(wantStart) {
		t.Errorf("start = %v, want %v", start, wantStart)
	}
	if got := end.Sub(start); got != MeetingDuration {
		t.Errorf("meeting duration = %v, want %v", got, MeetingDuration)
	}
}

func TestMeetingWindowInvalidTimezone(t *testing.T) {
	if _, _, err := MeetingWindow("2030-01-15", "01:30 PM", "Not/AZone"); err == nil {
		t.Error("expected error for invalid timezone, got none")
	}
}

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Hello World", "hello-world"},
		{"  SEO: Tips & Tricks!  ", "seo-tips-tricks"},
		{"Already-slugged", "already-slugged"},
	}

	for _, tc := range cases {
		if got := Slugify(tc.in); got != tc.want {
			t.Errorf("Slugify(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
