package utils

import (
	"fmt"
	"time"
)

// DateLayout is the wire format for all rental dates.
const DateLayout = "2006-01-02"

// ParseDate converts a yyyy-mm-dd formatted string into a time.Time.
func ParseDate(dateStr string) (time.Time, error) {
	t, err := time.Parse(DateLayout, dateStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected yyyy-mm-dd", dateStr)
	}
	return t, nil
}

// RentalEnd returns the exclusive end of a rental window: start + days.
// The window [start, end) excludes the end day, so a rental returning on
// the end date does not collide with one starting that same day.
func RentalEnd(start time.Time, days int32) time.Time {
	return start.AddDate(0, 0, int(days))
}

// RentalEndString parses start and formats the exclusive end date.
func RentalEndString(startStr string, days int32) (string, error) {
	start, err := ParseDate(startStr)
	if err != nil {
		return "", err
	}
	return RentalEnd(start, days).Format(DateLayout), nil
}

// BookingAmountCents prices a booking at checkout time:
// daily price x quantity x rental days. The result is snapshotted onto the
// booking and never recomputed from live item prices.
func BookingAmountCents(pricePerDayCents, quantity, days int32) int64 {
	return int64(pricePerDayCents) * int64(quantity) * int64(days)
}
