package utils

import (
	"time"

	"carrental/internal/domain"
)

// BilledDays returns the number of 24-hour units charged for the rental window.
// Any started day is billed as a full day, so a rental shorter than 24 hours
// still charges one day. Drop must be strictly after pickup.
func BilledDays(pickup, drop time.Time) (int64, error) {
	if !drop.After(pickup) {
		return 0, domain.DateRangeError{}
	}

	diff := drop.Sub(pickup)
	days := int64(diff / (24 * time.Hour))
	if days < 1 {
		days = 1
	}
	return days, nil
}

// TotalPrice computes the rental total from the daily rate and the date range.
// Pure and deterministic; no catalog or store access.
func TotalPrice(dailyRate int64, pickup, drop time.Time) (int64, error) {
	days, err := BilledDays(pickup, drop)
	if err != nil {
		return 0, err
	}
	return dailyRate * days, nil
}
