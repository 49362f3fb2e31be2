package common

import (
	"fmt"
	"strings"
	"time"
)

// TZ is the reference timezone: every deadline, period key, and timestamp the
// user sees is Eastern time.
var TZ *time.Location

const deadlineLayout = "1/2/2006 3:04 PM"

func init() {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		panic(fmt.Sprintf("loading reference timezone: %v", err))
	}
	TZ = loc
}

func Now() time.Time {
	return time.Now().In(TZ)
}

// DayKey is the calendar date in the reference timezone, used for daily cap
// rollover and streak accounting.
func DayKey(t time.Time) string {
	return t.In(TZ).Format("2006-01-02")
}

// WeekKey is the ISO year-week in the reference timezone, e.g. "2025-W42".
func WeekKey(t time.Time) string {
	y, w := t.In(TZ).ISOWeek()
	return fmt.Sprintf("%d-W%02d", y, w)
}

// ParseDeadline reads a deadline in MM/DD/YYYY HH:MM AM/PM Eastern time.
func ParseDeadline(s string) (time.Time, error) {
	cleaned := strings.ToUpper(strings.TrimSpace(s))
	t, err := time.ParseInLocation(deadlineLayout, cleaned, TZ)
	if err != nil {
		return time.Time{}, fmt.Errorf("use MM/DD/YYYY HH:MM AM/PM, e.g. 10/14/2025 11:59 PM")
	}
	return t, nil
}

// FormatTimeLeft renders the countdown to a deadline as "3h 24m".
func FormatTimeLeft(deadline, now time.Time) string {
	delta := deadline.Sub(now)
	if delta <= 0 {
		return "expired"
	}
	total := int(delta.Seconds())
	h := total / 3600
	m := (total % 3600) / 60
	return fmt.Sprintf("%dh %dm", h, m)
}

// NextDailyReset returns the next midnight in the reference timezone and a
// human countdown to it.
func NextDailyReset(now time.Time) (time.Time, string) {
	local := now.In(TZ)
	next := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, TZ).AddDate(0, 0, 1)
	delta := next.Sub(local)
	total := int(delta.Seconds())
	h := total / 3600
	m := (total % 3600) / 60
	return next, fmt.Sprintf("in %dh %dm", h, m)
}
