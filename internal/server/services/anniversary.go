package services

import "time"

// NextAnniversary returns the next occurrence of the anniversary on or after
// now (date precision), plus the number of whole days until it. An
// anniversary falling on today yields daysUntil == 0.
func NextAnniversary(now, anniversary time.Time) (time.Time, int) {
	today := toUTCDate(now)

	next := time.Date(today.Year(), anniversary.Month(), anniversary.Day(), 0, 0, 0, 0, time.UTC)
	if next.Before(today) {
		next = time.Date(today.Year()+1, anniversary.Month(), anniversary.Day(), 0, 0, 0, 0, time.UTC)
	}

	return next, DaysBetween(today, next)
}

// DaysBetween counts calendar days from a to b, ignoring time-of-day.
func DaysBetween(a, b time.Time) int {
	da := toUTCDate(a)
	db := toUTCDate(b)
	return int(db.Sub(da).Hours() / 24)
}

// toUTCDate pins a calendar date to UTC midnight. Local midnights sit 23 or
// 25 hours apart across a DST transition, which would skew whole-day
// subtraction.
func toUTCDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
