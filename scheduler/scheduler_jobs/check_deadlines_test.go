package scheduler_jobs

import (
	"testing"
	"time"

	"selfParlayBot/models"
	"selfParlayBot/services/common"
	"selfParlayBot/services/parlayService"
	"selfParlayBot/storage"
)

func assertEqual(t *testing.T, expected, actual interface{}, msg string) {
	if expected != actual {
		t.Errorf("%s: expected %v, got %v", msg, expected, actual)
	}
}

var sweepNow = time.Date(2025, 10, 14, 12, 0, 0, 0, common.TZ)

func newSweepEngine(t *testing.T) *parlayService.Engine {
	t.Helper()
	engine, err := parlayService.NewEngine(storage.NewMemoryStore())
	if err != nil {
		t.Fatalf("Failed to create engine: %v", err)
	}
	engine.SetClock(func() time.Time { return sweepNow })
	return engine
}

func TestSweepExpired(t *testing.T) {
	t.Run("expired parlay swept as loss", func(t *testing.T) {
		engine := newSweepEngine(t)
		p, err := engine.CreateParlay("u1", 50, []string{"go gym"}, sweepNow.Add(time.Hour))
		if err != nil {
			t.Fatalf("CreateParlay failed: %v", err)
		}

		sweepExpired(nil, engine, sweepNow.Add(2*time.Hour))

		got, err := engine.GetParlay(p.ID)
		if err != nil {
			t.Fatalf("GetParlay failed: %v", err)
		}
		assertEqual(t, models.ParlayLost, got.Status, "status after sweep")
		u, _ := engine.Bank("u1")
		assertEqual(t, 950, u.Balance, "stake debited")
	})

	t.Run("completed parlay swept at deadline wins", func(t *testing.T) {
		engine := newSweepEngine(t)
		deadline := sweepNow.Add(time.Hour)
		p, err := engine.CreateParlay("u1", 50, []string{"go gym"}, deadline)
		if err != nil {
			t.Fatalf("CreateParlay failed: %v", err)
		}
		if _, err := engine.MarkLeg(p.ID, 0, models.LegWin); err != nil {
			t.Fatalf("MarkLeg failed: %v", err)
		}

		// The sweep fires at the exact deadline instant, which still counts
		// as on time.
		sweepExpired(nil, engine, deadline)

		got, _ := engine.GetParlay(p.ID)
		assertEqual(t, models.ParlayWon, got.Status, "status after sweep")
	})

	t.Run("unexpired parlay untouched", func(t *testing.T) {
		engine := newSweepEngine(t)
		p, err := engine.CreateParlay("u1", 50, []string{"go gym"}, sweepNow.Add(time.Hour))
		if err != nil {
			t.Fatalf("CreateParlay failed: %v", err)
		}

		sweepExpired(nil, engine, sweepNow.Add(30*time.Minute))

		got, _ := engine.GetParlay(p.ID)
		assertEqual(t, models.ParlayActive, got.Status, "still active")
	})

	t.Run("repeat sweep is a no-op", func(t *testing.T) {
		engine := newSweepEngine(t)
		_, err := engine.CreateParlay("u1", 50, []string{"go gym"}, sweepNow.Add(time.Hour))
		if err != nil {
			t.Fatalf("CreateParlay failed: %v", err)
		}

		sweepExpired(nil, engine, sweepNow.Add(2*time.Hour))
		sweepExpired(nil, engine, sweepNow.Add(3*time.Hour))

		u, ledger := engine.Bank("u1")
		assertEqual(t, 950, u.Balance, "debited once")
		assertEqual(t, 1, len(ledger), "one ledger entry")
	})

	t.Run("manual resolve before sweep does not double settle", func(t *testing.T) {
		engine := newSweepEngine(t)
		p, err := engine.CreateParlay("u1", 50, []string{"go gym"}, sweepNow.Add(time.Hour))
		if err != nil {
			t.Fatalf("CreateParlay failed: %v", err)
		}
		if _, err := engine.MarkLeg(p.ID, 0, models.LegWin); err != nil {
			t.Fatalf("MarkLeg failed: %v", err)
		}
		if _, err := engine.ResolveNow(p.ID); err != nil {
			t.Fatalf("ResolveNow failed: %v", err)
		}

		sweepExpired(nil, engine, sweepNow.Add(2*time.Hour))

		u, ledger := engine.Bank("u1")
		assertEqual(t, 1060, u.Balance, "win settled once")
		assertEqual(t, 1, len(ledger), "one ledger entry")
	})
}
