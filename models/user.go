package models

import "time"

// User is one member's economy record, created lazily on first interaction.
// Balance may go negative: a forfeit larger than the balance is allowed.
type User struct {
	DiscordID   string `gorm:"primaryKey;size:64"`
	Balance     int
	DailySpent  int
	DailyDate   string `gorm:"size:10"`
	WeeklySpent int
	WeeklyKey   string `gorm:"size:10"`
	LastLossAt  *time.Time
	StreakDays  int
	LastWinDate string `gorm:"size:10"`
}

func (u *User) Clone() *User {
	cp := *u
	if u.LastLossAt != nil {
		v := *u.LastLossAt
		cp.LastLossAt = &v
	}
	return &cp
}
