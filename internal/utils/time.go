package utils

import (
	"strings"
	"time"
)

const (
	layoutDateTime = "2006-01-02 15:04:05"
	layoutMinute   = "2006-01-02 15:04"
	layoutReceipt  = "02-01-2006 15:04"
)

// ParseBookingTime parses the booking form's timestamp. The form sends minute
// resolution; seconds are accepted for round trips from the database.
func ParseBookingTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.ParseInLocation(layoutMinute, s, time.Local); err == nil {
		return t, nil
	}
	return time.ParseInLocation(layoutDateTime, s, time.Local)
}

// FormatBookingTime formats a timestamp the way the booking form shows it.
func FormatBookingTime(t time.Time) string {
	return t.In(time.Local).Format(layoutMinute)
}

// FormatReceiptTime formats a timestamp for the printed receipt.
func FormatReceiptTime(t time.Time) string {
	return t.In(time.Local).Format(layoutReceipt)
}
