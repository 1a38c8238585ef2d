// Package achievements aggregates quiz results into per-device stats and
// evaluates them against the fixed badge catalogue.
package achievements

import (
	"sync"
	"time"

	"github.com/adamspd/bible-quiz-engine/models"
	"github.com/adamspd/bible-quiz-engine/storage"
	"github.com/adamspd/bible-quiz-engine/utils"
)

// The mutex matters because results arrive from the machine's timer
// callbacks while hosts read stats and unlock state from their own
// goroutines.
type Engine struct {
	mu         sync.Mutex
	store      storage.KV
	now        func() time.Time
	stats      models.QuizStats
	catalog    []models.Achievement
	newUnlocks []models.Achievement
}

type Option func(*Engine)

// WithClock replaces the unlock timestamp source.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// New loads persisted stats and unlock state from the store, falling back
// to defaults when nothing (or garbage) is stored. The built-in catalogue
// stays authoritative for names, icons and requirements; only unlock state
// and progress are taken from the saved copy.
func New(store storage.KV, opts ...Option) *Engine {
	e := &Engine{
		store:   store,
		now:     time.Now,
		stats:   models.NewQuizStats(),
		catalog: defaultCatalog(),
	}
	for _, opt := range opts {
		opt(e)
	}

	if !e.store.Load(storage.KeyStats, &e.stats) {
		// One-way migration from the legacy standalone best-streak value.
		var legacy int
		if e.store.Load(storage.KeyBestStreak, &legacy) && legacy > 0 {
			utils.LogBadge("Migrating legacy best streak: %d", legacy)
			e.stats.BestStreak = legacy
		}
	}
	if e.stats.CategoriesCompleted == nil {
		e.stats.CategoriesCompleted = make(map[string]int)
	}

	var saved []models.Achievement
	if e.store.Load(storage.KeyAchievements, &saved) {
		e.mergeSaved(saved)
	}

	utils.LogBadge("Achievement engine ready: %d/%d unlocked, %d quizzes recorded",
		e.UnlockedCount(), e.TotalCount(), e.stats.TotalQuizzes)
	return e
}

func (e *Engine) mergeSaved(saved []models.Achievement) {
	byID := make(map[string]models.Achievement, len(saved))
	for _, a := range saved {
		byID[a.ID] = a
	}
	for i := range e.catalog {
		if s, ok := byID[e.catalog[i].ID]; ok {
			e.catalog[i].Unlocked = s.Unlocked
			e.catalog[i].UnlockedAt = s.UnlockedAt
			e.catalog[i].Progress = s.Progress
		}
	}
}

// RecordQuizResult folds one completed session into the stats aggregate,
// persists it, and evaluates every still-locked achievement. Newly unlocked
// achievements are returned and also kept in the new-unlocks set until
// ClearNewUnlocks is called.
func (e *Engine) RecordQuizResult(score, totalQuestions int, category string, maxStreak int) []models.Achievement {
	e.mu.Lock()
	defer e.mu.Unlock()

	isPerfect := totalQuestions > 0 && score == totalQuestions

	e.stats.TotalQuizzes++
	e.stats.TotalCorrect += score
	e.stats.TotalQuestions += totalQuestions
	if isPerfect {
		e.stats.PerfectQuizzes++
	}
	if maxStreak > e.stats.BestStreak {
		e.stats.BestStreak = maxStreak
	}
	e.stats.CategoriesCompleted[category]++

	utils.LogBadge("Recorded quiz: %d/%d in '%s' (streak %d, perfect: %t)",
		score, totalQuestions, category, maxStreak, isPerfect)

	e.persistStats()

	unlocked := e.checkAchievements()
	e.persistCatalog()

	if len(unlocked) > 0 {
		e.newUnlocks = append(e.newUnlocks, unlocked...)
		for _, a := range unlocked {
			utils.LogBadge("Unlocked '%s' (progress %d/%d)", a.ID, a.Progress, a.Requirement)
		}
	}
	return unlocked
}

// checkAchievements updates progress on every locked achievement and flips
// the ones whose requirement is now met. Unlocked achievements are never
// re-evaluated, so an unlock cannot repeat or regress.
func (e *Engine) checkAchievements() []models.Achievement {
	var unlocked []models.Achievement

	for i := range e.catalog {
		a := &e.catalog[i]
		if a.Unlocked {
			continue
		}

		var current int
		switch a.Kind {
		case models.AchievementStreak:
			current = e.stats.BestStreak
		case models.AchievementQuizzes:
			current = e.stats.TotalQuizzes
		case models.AchievementPerfect:
			current = e.stats.PerfectQuizzes
		case models.AchievementScore:
			current = e.stats.TotalCorrect
		case models.AchievementCategory:
			current = e.stats.CategoriesCompleted[a.Category]
		}

		a.Progress = current
		if current >= a.Requirement {
			a.Unlocked = true
			at := e.now()
			a.UnlockedAt = &at
			unlocked = append(unlocked, *a)
		}
	}
	return unlocked
}

// NewUnlocks returns the achievements unlocked since the last
// ClearNewUnlocks, for one-shot celebration by the UI.
func (e *Engine) NewUnlocks() []models.Achievement {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]models.Achievement(nil), e.newUnlocks...)
}

// ClearNewUnlocks empties the transient new-unlocks set. Persisted unlock
// state is untouched.
func (e *Engine) ClearNewUnlocks() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.newUnlocks = nil
}

func (e *Engine) UnlockedCount() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	n := 0
	for _, a := range e.catalog {
		if a.Unlocked {
			n++
		}
	}
	return n
}

func (e *Engine) TotalCount() int {
	return len(e.catalog)
}

// Stats returns a snapshot of the aggregate.
func (e *Engine) Stats() models.QuizStats {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := e.stats
	out.CategoriesCompleted = make(map[string]int, len(e.stats.CategoriesCompleted))
	for k, v := range e.stats.CategoriesCompleted {
		out.CategoriesCompleted[k] = v
	}
	return out
}

// Achievements returns a copy of the catalogue with current unlock state.
func (e *Engine) Achievements() []models.Achievement {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]models.Achievement(nil), e.catalog...)
}

// Persistence failures are logged, never surfaced: the in-memory state stays
// valid for the rest of the session and the previous stored value survives.
func (e *Engine) persistStats() {
	if err := e.store.Save(storage.KeyStats, e.stats); err != nil {
		utils.LogError("Failed to persist quiz stats: %v", err)
	}
	// Mirror for readers of the legacy standalone key.
	if err := e.store.Save(storage.KeyBestStreak, e.stats.BestStreak); err != nil {
		utils.LogError("Failed to persist best streak: %v", err)
	}
}

func (e *Engine) persistCatalog() {
	if err := e.store.Save(storage.KeyAchievements, e.catalog); err != nil {
		utils.LogError("Failed to persist achievements: %v", err)
	}
}
