package models

import "time"

// LedgerEntry records one balance delta. Entries are append-only, exactly one
// per resolved parlay.
type LedgerEntry struct {
	ID        string `gorm:"primaryKey;size:36"`
	UserID    string `gorm:"index;size:64"`
	Delta     int
	ParlayID  string `gorm:"size:36"`
	Note      string
	CreatedAt time.Time
}
