package models

import (
	"strings"
	"time"
)

const (
	LegOpen = "OPEN"
	LegWin  = "WIN"
	LegFail = "FAIL"

	ParlayActive = "ACTIVE"
	ParlayWon    = "WON"
	ParlayLost   = "LOST"
)

// Leg is one self-reported task inside a parlay. Status only ever moves
// OPEN -> WIN or OPEN -> FAIL.
type Leg struct {
	ParlayID string `gorm:"primaryKey;size:36"`
	Idx      int    `gorm:"primaryKey;autoIncrement:false"`
	Text     string
	Status   string `gorm:"size:8"`
}

type Parlay struct {
	ID         string `gorm:"primaryKey;size:36"`
	UserID     string `gorm:"index;size:64"`
	Stake      int
	Legs       []Leg `gorm:"foreignKey:ParlayID"`
	LegsCount  int
	Multiplier float64
	CreatedAt  time.Time
	DeadlineAt time.Time
	Status     string `gorm:"size:8;index"`
	// Presentation ref: where the card message lives. The engine only stores
	// these, messageService interprets them.
	ChannelID  *string `gorm:"size:64"`
	MessageID  *string `gorm:"size:64"`
	ResolvedAt *time.Time
}

// ShortID is the first segment of the UUID, used in user-facing messages.
func (p *Parlay) ShortID() string {
	if idx := strings.Index(p.ID, "-"); idx > 0 {
		return p.ID[:idx]
	}
	return p.ID
}

func (p *Parlay) AllLegsWon() bool {
	for _, l := range p.Legs {
		if l.Status != LegWin {
			return false
		}
	}
	return true
}

func (p *Parlay) OpenLegIndexes() []int {
	var open []int
	for i, l := range p.Legs {
		if l.Status == LegOpen {
			open = append(open, i)
		}
	}
	return open
}

func (p *Parlay) Clone() *Parlay {
	cp := *p
	cp.Legs = make([]Leg, len(p.Legs))
	copy(cp.Legs, p.Legs)
	if p.ChannelID != nil {
		v := *p.ChannelID
		cp.ChannelID = &v
	}
	if p.MessageID != nil {
		v := *p.MessageID
		cp.MessageID = &v
	}
	if p.ResolvedAt != nil {
		v := *p.ResolvedAt
		cp.ResolvedAt = &v
	}
	return &cp
}
