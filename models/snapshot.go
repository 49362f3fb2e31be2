package models

// Snapshot is the full persisted state: every user, every parlay, and the
// ledger in append order. The engine owns one of these in memory; the store
// mirrors it.
type Snapshot struct {
	Users   map[string]*User
	Parlays map[string]*Parlay
	Ledger  []LedgerEntry
}

func NewSnapshot() *Snapshot {
	return &Snapshot{
		Users:   make(map[string]*User),
		Parlays: make(map[string]*Parlay),
	}
}

func (s *Snapshot) Clone() *Snapshot {
	cp := NewSnapshot()
	for id, u := range s.Users {
		cp.Users[id] = u.Clone()
	}
	for id, p := range s.Parlays {
		cp.Parlays[id] = p.Clone()
	}
	cp.Ledger = make([]LedgerEntry, len(s.Ledger))
	copy(cp.Ledger, s.Ledger)
	return cp
}

// RecentLedger returns up to n entries for the user, most recent first.
func (s *Snapshot) RecentLedger(userID string, n int) []LedgerEntry {
	var recent []LedgerEntry
	for i := len(s.Ledger) - 1; i >= 0 && len(recent) < n; i-- {
		if s.Ledger[i].UserID == userID {
			recent = append(recent, s.Ledger[i])
		}
	}
	return recent
}
