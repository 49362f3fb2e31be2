package parlayService

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"sync"
	"time"

	"selfParlayBot/models"
	"selfParlayBot/services/common"
	"selfParlayBot/storage"

	"github.com/google/uuid"
)

// Engine owns the shared wager and economy state. A single exclusive section
// covers every read-modify-persist sequence; the store write is the commit
// point, and a failed save reverts the in-memory mutation.
type Engine struct {
	mu    sync.Mutex
	state *models.Snapshot
	store storage.Store
	now   func() time.Time
}

func NewEngine(store storage.Store) (*Engine, error) {
	snap, err := store.Load()
	if err != nil {
		return nil, fmt.Errorf("loading parlay state: %w", err)
	}
	if snap == nil {
		snap = models.NewSnapshot()
	}
	return &Engine{state: snap, store: store, now: common.Now}, nil
}

// SetClock swaps the time source. Tests use this to drive deadlines.
func (e *Engine) SetClock(now func() time.Time) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.now = now
}

// Resolution is what settling a parlay did to the books. Callers use it to
// notify the user after the state is committed; delivery failures never undo
// the resolution.
type Resolution struct {
	Parlay *models.Parlay
	User   *models.User
	Won    bool
	Delta  int
}

func (e *Engine) ensureUser(id string) *models.User {
	u, ok := e.state.Users[id]
	if !ok {
		now := e.now()
		u = &models.User{
			DiscordID: id,
			Balance:   StartBalance,
			DailyDate: common.DayKey(now),
			WeeklyKey: common.WeekKey(now),
		}
		e.state.Users[id] = u
	}
	return u
}

// CreateParlay validates the request, charges the stake against the daily and
// weekly caps, and stores the new active parlay. This is the only place caps
// are charged.
func (e *Engine) CreateParlay(userID string, stake int, legTexts []string, deadline time.Time) (*models.Parlay, error) {
	if stake <= 0 {
		return nil, &ValidationError{Reason: "Stake must be a positive number of points."}
	}
	if len(legTexts) == 0 {
		return nil, &ValidationError{Reason: "Include at least one leg in ( ... )."}
	}
	if len(legTexts) > MaxLegs {
		return nil, &ValidationError{Reason: fmt.Sprintf("Max %d legs allowed.", MaxLegs)}
	}
	texts := make([]string, 0, len(legTexts))
	for _, t := range legTexts {
		t = strings.TrimSpace(t)
		if t == "" {
			return nil, &ValidationError{Reason: "Leg descriptions cannot be empty."}
		}
		texts = append(texts, t)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	now := e.now()
	if !deadline.After(now) {
		return nil, &ValidationError{Reason: "Deadline must be in the future."}
	}

	user := e.ensureUser(userID)
	prev := user.Clone()

	if err := CheckCooldown(user, now); err != nil {
		return nil, err
	}
	if denied := CheckStakeCaps(user, stake, now); denied != nil {
		// The period rollover sticks even when the stake is denied.
		if err := e.store.Save(e.state); err != nil {
			e.state.Users[userID] = prev
			return nil, fmt.Errorf("saving parlay state: %w", err)
		}
		return nil, denied
	}

	p := &models.Parlay{
		ID:         uuid.NewString(),
		UserID:     userID,
		Stake:      stake,
		LegsCount:  len(texts),
		Multiplier: MultiplierFor(len(texts)),
		CreatedAt:  now,
		DeadlineAt: deadline,
		Status:     models.ParlayActive,
	}
	for idx, t := range texts {
		p.Legs = append(p.Legs, models.Leg{ParlayID: p.ID, Idx: idx, Text: t, Status: models.LegOpen})
	}

	user.DailySpent += stake
	user.WeeklySpent += stake
	e.state.Parlays[p.ID] = p

	if err := e.store.Save(e.state); err != nil {
		delete(e.state.Parlays, p.ID)
		e.state.Users[userID] = prev
		return nil, fmt.Errorf("saving parlay state: %w", err)
	}
	return p.Clone(), nil
}

// MarkLeg moves an OPEN leg to WIN or FAIL. Re-marking a decided leg is
// rejected, not silently accepted.
func (e *Engine) MarkLeg(parlayID string, legIdx int, outcome string) (*models.Parlay, error) {
	if outcome != models.LegWin && outcome != models.LegFail {
		return nil, &ValidationError{Reason: "Leg outcome must be WIN or FAIL."}
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	p, ok := e.state.Parlays[parlayID]
	if !ok {
		return nil, ErrParlayNotFound
	}
	if p.Status != models.ParlayActive {
		return nil, &InvalidTransitionError{Reason: "Parlay already resolved."}
	}
	if legIdx < 0 || legIdx >= len(p.Legs) {
		return nil, &ValidationError{Reason: fmt.Sprintf("Leg %d does not exist.", legIdx+1)}
	}
	if p.Legs[legIdx].Status != models.LegOpen {
		return nil, &InvalidTransitionError{Reason: "That leg is not open."}
	}

	prev := p.Legs[legIdx].Status
	p.Legs[legIdx].Status = outcome
	if err := e.store.Save(e.state); err != nil {
		p.Legs[legIdx].Status = prev
		return nil, fmt.Errorf("saving parlay state: %w", err)
	}
	return p.Clone(), nil
}

// TryResolve settles the parlay if it is still active: WIN iff every leg is
// WIN and now is at or before the deadline, LOSS otherwise. A call on an
// already-resolved parlay is a no-op returning (nil, nil), which is what makes
// the manual and swept paths safe to race.
func (e *Engine) TryResolve(parlayID string, now time.Time) (*Resolution, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.resolveLocked(parlayID, now)
}

// ResolveNow is the manual path behind the card button. Early resolution is
// only allowed once every leg is WIN; the sweeper handles everything else at
// the deadline.
func (e *Engine) ResolveNow(parlayID string) (*Resolution, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	p, ok := e.state.Parlays[parlayID]
	if !ok {
		return nil, ErrParlayNotFound
	}
	if p.Status != models.ParlayActive {
		return nil, &InvalidTransitionError{Reason: "Parlay already resolved."}
	}
	if !p.AllLegsWon() {
		return nil, &InvalidTransitionError{Reason: "All legs must be WIN to resolve early."}
	}
	return e.resolveLocked(parlayID, e.now())
}

func (e *Engine) resolveLocked(parlayID string, now time.Time) (*Resolution, error) {
	p, ok := e.state.Parlays[parlayID]
	if !ok {
		return nil, ErrParlayNotFound
	}
	if p.Status != models.ParlayActive {
		return nil, nil
	}

	user := e.ensureUser(p.UserID)
	prevUser := user.Clone()
	prevParlay := p.Clone()
	prevLedger := len(e.state.Ledger)

	won := p.AllLegsWon() && !now.After(p.DeadlineAt)
	var delta int
	var note string
	if won {
		delta = int(math.Round(float64(p.Stake) * p.Multiplier))
		user.Balance += delta
		if day := common.DayKey(now); user.LastWinDate != day {
			user.StreakDays++
			user.LastWinDate = day
		}
		p.Status = models.ParlayWon
		note = "Parlay win"
	} else {
		delta = -p.Stake
		user.Balance += delta
		user.StreakDays = 0
		lossAt := now
		user.LastLossAt = &lossAt
		p.Status = models.ParlayLost
		note = "Parlay loss"
	}
	resolvedAt := now
	p.ResolvedAt = &resolvedAt
	e.state.Ledger = append(e.state.Ledger, models.LedgerEntry{
		ID:        uuid.NewString(),
		UserID:    p.UserID,
		Delta:     delta,
		ParlayID:  p.ID,
		Note:      note,
		CreatedAt: now,
	})

	if err := e.store.Save(e.state); err != nil {
		e.state.Users[p.UserID] = prevUser
		e.state.Parlays[p.ID] = prevParlay
		e.state.Ledger = e.state.Ledger[:prevLedger]
		return nil, fmt.Errorf("saving parlay state: %w", err)
	}
	return &Resolution{Parlay: p.Clone(), User: user.Clone(), Won: won, Delta: delta}, nil
}

// SetPresentationRef stores where the rendered card lives. The engine never
// interprets the ids, it only keeps them for messageService.
func (e *Engine) SetPresentationRef(parlayID, channelID, messageID string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	p, ok := e.state.Parlays[parlayID]
	if !ok {
		return ErrParlayNotFound
	}
	prevCh, prevMsg := p.ChannelID, p.MessageID
	p.ChannelID = &channelID
	p.MessageID = &messageID
	if err := e.store.Save(e.state); err != nil {
		p.ChannelID, p.MessageID = prevCh, prevMsg
		return fmt.Errorf("saving parlay state: %w", err)
	}
	return nil
}

func (e *Engine) GetParlay(parlayID string) (*models.Parlay, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	p, ok := e.state.Parlays[parlayID]
	if !ok {
		return nil, ErrParlayNotFound
	}
	return p.Clone(), nil
}

// ActiveParlays returns the user's active parlays, soonest deadline first.
func (e *Engine) ActiveParlays(userID string) []*models.Parlay {
	e.mu.Lock()
	defer e.mu.Unlock()

	var out []*models.Parlay
	for _, p := range e.state.Parlays {
		if p.UserID == userID && p.Status == models.ParlayActive {
			out = append(out, p.Clone())
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DeadlineAt.Before(out[j].DeadlineAt) })
	return out
}

// ExpiredActive lists ids of active parlays whose deadline has passed. The
// sweeper resolves each through TryResolve, which re-reads the latest state
// under the lock instead of trusting this enumeration.
func (e *Engine) ExpiredActive(now time.Time) []string {
	e.mu.Lock()
	defer e.mu.Unlock()

	var ids []string
	for id, p := range e.state.Parlays {
		if p.Status == models.ParlayActive && !now.Before(p.DeadlineAt) {
			ids = append(ids, id)
		}
	}
	return ids
}

// Bank returns the user's economy record and their most recent ledger entries.
func (e *Engine) Bank(userID string) (*models.User, []models.LedgerEntry) {
	e.mu.Lock()
	defer e.mu.Unlock()

	u := e.ensureUser(userID)
	return u.Clone(), e.state.RecentLedger(userID, 5)
}
