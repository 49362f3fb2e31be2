package models

import (
	"testing"
	"time"
)

func TestRecentLedger(t *testing.T) {
	s := NewSnapshot()
	base := time.Date(2025, 10, 14, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 7; i++ {
		s.Ledger = append(s.Ledger, LedgerEntry{
			ID:        string(rune('a' + i)),
			UserID:    "u1",
			Delta:     i + 1,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		})
	}
	s.Ledger = append(s.Ledger, LedgerEntry{ID: "x", UserID: "u2", Delta: 99})

	recent := s.RecentLedger("u1", 5)
	if len(recent) != 5 {
		t.Fatalf("expected 5 entries, got %d", len(recent))
	}
	if recent[0].Delta != 7 {
		t.Errorf("expected newest entry first, got delta %d", recent[0].Delta)
	}
	if recent[4].Delta != 3 {
		t.Errorf("expected oldest returned entry delta 3, got %d", recent[4].Delta)
	}
	for _, e := range recent {
		if e.UserID != "u1" {
			t.Errorf("entry for wrong user: %s", e.UserID)
		}
	}

	if got := s.RecentLedger("u3", 5); len(got) != 0 {
		t.Errorf("expected no entries for unknown user, got %d", len(got))
	}
}

func TestParlayClone(t *testing.T) {
	ch, msg := "chan", "msg"
	resolved := time.Date(2025, 10, 14, 12, 0, 0, 0, time.UTC)
	p := &Parlay{
		ID:         "p1",
		UserID:     "u1",
		Stake:      50,
		Legs:       []Leg{{ParlayID: "p1", Idx: 0, Text: "go gym", Status: LegOpen}},
		Status:     ParlayWon,
		ChannelID:  &ch,
		MessageID:  &msg,
		ResolvedAt: &resolved,
	}

	cp := p.Clone()
	cp.Legs[0].Status = LegFail
	*cp.ChannelID = "other"
	*cp.ResolvedAt = resolved.Add(time.Hour)

	if p.Legs[0].Status != LegOpen {
		t.Errorf("clone aliased legs: %s", p.Legs[0].Status)
	}
	if *p.ChannelID != "chan" {
		t.Errorf("clone aliased channel ref: %s", *p.ChannelID)
	}
	if !p.ResolvedAt.Equal(resolved) {
		t.Errorf("clone aliased resolved time: %v", p.ResolvedAt)
	}
}

func TestAllLegsWonAndOpenIndexes(t *testing.T) {
	p := &Parlay{Legs: []Leg{
		{Idx: 0, Status: LegWin},
		{Idx: 1, Status: LegOpen},
		{Idx: 2, Status: LegFail},
	}}
	if p.AllLegsWon() {
		t.Error("mixed legs should not count as all won")
	}
	open := p.OpenLegIndexes()
	if len(open) != 1 || open[0] != 1 {
		t.Errorf("expected open index [1], got %v", open)
	}

	p.Legs[1].Status = LegWin
	p.Legs[2].Status = LegWin
	if !p.AllLegsWon() {
		t.Error("all WIN legs should count as won")
	}
}
