package parlayService

import (
	"fmt"
	"math"
	"time"

	"selfParlayBot/models"
	"selfParlayBot/services/common"
)

const (
	StartBalance         = 1000
	DailyStakeCap        = 150
	WeeklyStakeCap       = 800
	CooldownAfterLossMin = 60
	MaxLegs              = 5
)

var parlayMultipliers = map[int]float64{
	1: 1.20,
	2: 1.50,
	3: 1.80,
	4: 2.00,
	5: 2.20,
}

// MultiplierFor returns the payout multiplier for a leg count, clamped to the
// table ceiling.
func MultiplierFor(legCount int) float64 {
	if m, ok := parlayMultipliers[legCount]; ok {
		return m
	}
	return parlayMultipliers[MaxLegs]
}

// RollPeriods zeroes the daily/weekly spend counters when the stored period
// key no longer matches now. Returns true when anything changed, so callers
// know the record needs persisting even if the stake is denied.
func RollPeriods(u *models.User, now time.Time) bool {
	changed := false
	if day := common.DayKey(now); u.DailyDate != day {
		u.DailyDate = day
		u.DailySpent = 0
		changed = true
	}
	if wk := common.WeekKey(now); u.WeeklyKey != wk {
		u.WeeklyKey = wk
		u.WeeklySpent = 0
		changed = true
	}
	return changed
}

// CheckStakeCaps rolls the period counters, then verifies the stake fits both
// caps. The rollover mutation sticks on the deny path too; committing it is
// the caller's job.
func CheckStakeCaps(u *models.User, stake int, now time.Time) error {
	RollPeriods(u, now)
	if u.DailySpent+stake > DailyStakeCap {
		return &PolicyDeniedError{Reason: fmt.Sprintf("Daily stake cap %d pts reached.", DailyStakeCap)}
	}
	if u.WeeklySpent+stake > WeeklyStakeCap {
		return &PolicyDeniedError{Reason: fmt.Sprintf("Weekly stake cap %d pts reached.", WeeklyStakeCap)}
	}
	return nil
}

// CheckCooldown denies while the post-loss cooldown is still running. A
// creation at exactly the boundary is allowed.
func CheckCooldown(u *models.User, now time.Time) error {
	if u.LastLossAt == nil {
		return nil
	}
	cooldown := CooldownAfterLossMin * time.Minute
	elapsed := now.Sub(*u.LastLossAt)
	if elapsed >= cooldown {
		return nil
	}
	remaining := int(math.Ceil((cooldown - elapsed).Minutes()))
	return &PolicyDeniedError{
		Reason:            fmt.Sprintf("Cooldown after loss. Try again in ~%d minutes.", remaining),
		RetryAfterMinutes: remaining,
	}
}
