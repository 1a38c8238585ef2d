// Package challenges manages the rotating set of weekly goals. The set is
// regenerated whenever the stored week marker no longer matches the current
// week's Monday 00:00 local time; claimed reward totals carry over.
package challenges

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/adamspd/bible-quiz-engine/models"
	"github.com/adamspd/bible-quiz-engine/storage"
	"github.com/adamspd/bible-quiz-engine/utils"
	"github.com/robfig/cron/v3"
)

// categoryLabels is the fixed pool the weekly category challenge draws from.
var categoryLabels = []string{
	"Antico Testamento",
	"Nuovo Testamento",
	"Vangeli",
	"Lettere",
	"Profeti",
}

type Engine struct {
	mu    sync.Mutex
	store storage.KV
	now   func() time.Time
	rng   *rand.Rand
	state models.WeeklyState
	cron  *cron.Cron
}

type Option func(*Engine)

func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// WithRand replaces the randomness source used to pick the weekly category.
func WithRand(rng *rand.Rand) Option {
	return func(e *Engine) { e.rng = rng }
}

// New loads the persisted challenge set and regenerates it if the stored
// week marker is stale (or nothing valid is stored).
func New(store storage.KV, opts ...Option) *Engine {
	e := &Engine{
		store: store,
		now:   time.Now,
		rng:   rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(e)
	}

	loaded := e.store.Load(storage.KeyWeekly, &e.state)
	current := WeekStart(e.now())
	// An empty set behind a current marker means a broken write; rebuild it.
	if !loaded || !e.state.WeekStart.Equal(current) || len(e.state.Challenges) == 0 {
		e.regenerate(current)
	}

	utils.LogWeekly("Weekly challenges ready: week of %s, %d claimed rewards total",
		e.state.WeekStart.Format("2006-01-02"), e.state.TotalRewardsClaimed)
	return e
}

// WeekStart returns Monday 00:00 of t's week in t's location.
func WeekStart(t time.Time) time.Time {
	wd := int(t.Weekday())
	if wd == 0 {
		wd = 7
	}
	monday := t.AddDate(0, 0, -(wd - 1))
	return time.Date(monday.Year(), monday.Month(), monday.Day(), 0, 0, 0, 0, t.Location())
}

// regenerate replaces the whole set from the template, zeroing all progress.
// TotalRewardsClaimed is deliberately carried forward.
func (e *Engine) regenerate(weekStart time.Time) {
	category := categoryLabels[e.rng.Intn(len(categoryLabels))]

	e.state.Challenges = []models.WeeklyChallenge{
		{
			ID:          "weekly-questions",
			Title:       "Studioso della Settimana",
			Description: "Rispondi a 50 domande questa settimana",
			Target:      50,
			Reward:      100,
			Kind:        models.ChallengeQuestions,
		},
		{
			ID:          "weekly-streak",
			Title:       "Serie Vincente",
			Description: "Raggiungi una serie di 10 risposte corrette consecutive",
			Target:      10,
			Reward:      75,
			Kind:        models.ChallengeStreak,
		},
		{
			ID:          "weekly-perfect",
			Title:       "Perfezione",
			Description: "Completa 3 quiz con il 100% di risposte corrette",
			Target:      3,
			Reward:      150,
			Kind:        models.ChallengePerfect,
		},
		{
			ID:          "weekly-category",
			Title:       fmt.Sprintf("Esperto di %s", category),
			Description: fmt.Sprintf("Rispondi correttamente a 20 domande su %s", category),
			Target:      20,
			Reward:      50,
			Kind:        models.ChallengeCategory,
			Category:    category,
		},
	}
	e.state.WeekStart = weekStart

	utils.LogWeekly("Regenerated challenges for week of %s (category: %s)",
		weekStart.Format("2006-01-02"), category)
	e.persist()
}

// Refresh re-checks the week marker and regenerates the set when the week
// has rolled over. Called by the cron entry and safe to call any time, for
// example when a host application resumes from sleep.
func (e *Engine) Refresh() {
	e.mu.Lock()
	defer e.mu.Unlock()

	current := WeekStart(e.now())
	if !e.state.WeekStart.Equal(current) || len(e.state.Challenges) == 0 {
		e.regenerate(current)
	}
}

// UpdateChallenge adds value to every still-incomplete challenge of the
// given kind (and matching category for category challenges), clamped at
// the target.
func (e *Engine) UpdateChallenge(kind models.ChallengeKind, value int, category string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	changed := false
	for i := range e.state.Challenges {
		c := &e.state.Challenges[i]
		if c.Kind != kind || c.Completed {
			continue
		}
		if kind == models.ChallengeCategory && c.Category != category {
			continue
		}

		c.Current += value
		if c.Current > c.Target {
			c.Current = c.Target
		}
		c.Completed = c.Current >= c.Target
		changed = true

		if c.Completed {
			utils.LogWeekly("Challenge '%s' completed (%d/%d)", c.ID, c.Current, c.Target)
		}
	}

	if changed {
		e.persist()
	}
}

// ClaimReward marks a completed, unclaimed challenge as claimed and returns
// its reward. Any other state is a silent no-op returning 0.
func (e *Engine) ClaimReward(challengeID string) int {
	e.mu.Lock()
	defer e.mu.Unlock()

	for i := range e.state.Challenges {
		c := &e.state.Challenges[i]
		if c.ID != challengeID {
			continue
		}
		if !c.Completed || c.Claimed {
			return 0
		}

		c.Claimed = true
		e.state.TotalRewardsClaimed += c.Reward
		utils.LogWeekly("Claimed reward %d for challenge '%s' (total claimed: %d)",
			c.Reward, c.ID, e.state.TotalRewardsClaimed)
		e.persist()
		return c.Reward
	}
	return 0
}

// TimeUntilReset formats the time remaining to the next week boundary,
// "3g 14h" style (giorni/ore), matching what players already see.
func (e *Engine) TimeUntilReset() string {
	e.mu.Lock()
	defer e.mu.Unlock()

	next := e.state.WeekStart.AddDate(0, 0, 7)
	diff := next.Sub(e.now())
	if diff < 0 {
		diff = 0
	}

	days := int(diff.Hours()) / 24
	hours := int(diff.Hours()) % 24
	if days > 0 {
		return fmt.Sprintf("%dg %dh", days, hours)
	}
	return fmt.Sprintf("%dh", hours)
}

// Challenges returns a snapshot of the current set.
func (e *Engine) Challenges() []models.WeeklyChallenge {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]models.WeeklyChallenge(nil), e.state.Challenges...)
}

func (e *Engine) TotalRewardsClaimed() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state.TotalRewardsClaimed
}

// StartAutoReset arms an in-process cron entry firing every Monday at 00:00
// so a long-running process rolls over without a restart. The check-on-load
// in New still covers processes that were down across the boundary.
func (e *Engine) StartAutoReset() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.cron != nil {
		return
	}
	e.cron = cron.New()
	if _, err := e.cron.AddFunc("0 0 * * 1", e.Refresh); err != nil {
		utils.LogError("Failed to schedule weekly reset: %v", err)
		e.cron = nil
		return
	}
	e.cron.Start()
	utils.LogWeekly("Weekly auto-reset scheduled (Mondays 00:00)")
}

func (e *Engine) StopAutoReset() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.cron != nil {
		e.cron.Stop()
		e.cron = nil
		utils.LogShutdown("Weekly auto-reset stopped")
	}
}

func (e *Engine) persist() {
	if err := e.store.Save(storage.KeyWeekly, e.state); err != nil {
		utils.LogError("Failed to persist weekly challenges: %v", err)
	}
}
