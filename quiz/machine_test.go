package quiz

import (
	"math/rand"
	"sort"
	"testing"
	"time"

	"github.com/adamspd/bible-quiz-engine/achievements"
	"github.com/adamspd/bible-quiz-engine/bank"
	"github.com/adamspd/bible-quiz-engine/challenges"
	"github.com/adamspd/bible-quiz-engine/models"
	"github.com/adamspd/bible-quiz-engine/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	store   *storage.Memory
	badges  *achievements.Engine
	weekly  *challenges.Engine
	machine *Machine
}

// newFixture builds a machine whose real timers are parked far in the
// future; tests drive onTick/onAdvance directly with the current epoch.
func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := storage.NewMemory()
	badges := achievements.New(store)
	weekly := challenges.New(store, challenges.WithRand(rand.New(rand.NewSource(1))))
	machine := NewMachine(store, badges, weekly,
		WithRand(rand.New(rand.NewSource(42))),
		WithTickInterval(time.Hour),
		WithAdvanceDelay(time.Hour),
	)
	return &fixture{store: store, badges: badges, weekly: weekly, machine: machine}
}

func (f *fixture) enterQuiz(t *testing.T, d models.Difficulty, category string) {
	t.Helper()
	f.machine.Start()
	f.machine.ChooseDifficulty(d)
	f.machine.ChooseCategory(category)
	require.Equal(t, ScreenQuiz, f.machine.Screen())
}

func (f *fixture) advance() {
	f.machine.onAdvance(f.machine.epoch)
}

func (f *fixture) expireTimer(t *testing.T) {
	t.Helper()
	for i := 0; i < 60; i++ {
		if f.machine.Snapshot().Answered {
			return
		}
		f.machine.onTick(f.machine.epoch)
	}
	t.Fatal("countdown never expired")
}

func TestScreenFlow(t *testing.T) {
	f := newFixture(t)
	m := f.machine

	assert.Equal(t, ScreenHome, m.Screen())

	m.Start()
	assert.Equal(t, ScreenDifficulty, m.Screen())

	m.ChooseDifficulty(models.DifficultyEasy)
	assert.Equal(t, ScreenCategory, m.Screen())

	m.Back()
	assert.Equal(t, ScreenDifficulty, m.Screen())

	m.GoHome()
	assert.Equal(t, ScreenHome, m.Screen())

	m.ShowAchievements()
	assert.Equal(t, ScreenAchievements, m.Screen())
	m.GoHome()
	assert.Equal(t, ScreenHome, m.Screen())
}

func TestTriggersIgnoredOnWrongScreen(t *testing.T) {
	f := newFixture(t)
	m := f.machine

	m.ChooseDifficulty(models.DifficultyEasy)
	m.ChooseCategory(bank.CategoryVangeli)
	m.Answer(0)
	m.Retry()
	assert.Equal(t, ScreenHome, m.Screen())

	m.Start()
	m.ChooseDifficulty("impossible")
	assert.Equal(t, ScreenDifficulty, m.Screen())
}

func TestEasyDrawFiltersDifficulty(t *testing.T) {
	f := newFixture(t)
	f.enterQuiz(t, models.DifficultyEasy, bank.CategoryPentateuco)

	snap := f.machine.Snapshot()
	assert.LessOrEqual(t, snap.TotalQuestions, models.DifficultyEasy.QuestionCount())
	assert.Greater(t, snap.TotalQuestions, 0)

	for _, q := range f.machine.session.Questions {
		assert.Equal(t, models.DifficultyEasy, q.Difficulty)
	}
}

func TestShuffleKeepsMultiset(t *testing.T) {
	f := newFixture(t)
	f.enterQuiz(t, models.DifficultyAll, bank.CategoryVangeli)

	var drawn []string
	for _, q := range f.machine.session.Questions {
		drawn = append(drawn, q.Text)
	}

	var expected []string
	for _, q := range bank.Questions(bank.CategoryVangeli) {
		expected = append(expected, q.Text)
	}

	sort.Strings(drawn)
	sort.Strings(expected)
	assert.Equal(t, expected, drawn)
}

func TestPerfectRun(t *testing.T) {
	f := newFixture(t)
	f.enterQuiz(t, models.DifficultyEasy, bank.CategoryPentateuco)

	total := f.machine.Snapshot().TotalQuestions
	require.Greater(t, total, 0)

	for i := 0; i < total; i++ {
		snap := f.machine.Snapshot()
		require.NotNil(t, snap.Question)
		assert.Equal(t, models.DifficultyEasy.SecondsPerQuestion(), snap.TimeLeft)

		f.machine.Answer(snap.Question.CorrectIndex)

		after := f.machine.Snapshot()
		assert.True(t, after.Answered)
		assert.Equal(t, i+1, after.Score)
		assert.Equal(t, i+1, after.Streak)
		assert.NotEmpty(t, after.Encouragement)

		f.advance()
	}

	snap := f.machine.Snapshot()
	assert.Equal(t, ScreenResults, f.machine.Screen())
	assert.Equal(t, total, snap.Score)
	assert.Equal(t, total, snap.MaxStreak)
	assert.Equal(t, 100, snap.Percentage)

	stats := f.badges.Stats()
	assert.Equal(t, 1, stats.TotalQuizzes)
	assert.Equal(t, 1, stats.PerfectQuizzes)
	assert.Equal(t, total, stats.BestStreak)
	assert.Equal(t, 1, stats.CategoriesCompleted[bank.CategoryPentateuco])

	var perfectUnlocked bool
	for _, a := range f.badges.Achievements() {
		if a.ID == "perfect_1" {
			perfectUnlocked = a.Unlocked
		}
	}
	assert.True(t, perfectUnlocked)

	for _, c := range f.weekly.Challenges() {
		switch c.Kind {
		case models.ChallengeQuestions:
			assert.Equal(t, total, c.Current)
		case models.ChallengePerfect:
			assert.Equal(t, 1, c.Current)
		case models.ChallengeStreak:
			assert.Equal(t, total, c.Current)
		}
	}
}

func TestWrongAnswerResetsStreak(t *testing.T) {
	f := newFixture(t)
	f.enterQuiz(t, models.DifficultyAll, bank.CategoryVangeli)

	snap := f.machine.Snapshot()
	f.machine.Answer(snap.Question.CorrectIndex)
	assert.Equal(t, 1, f.machine.Snapshot().Streak)
	f.advance()

	snap = f.machine.Snapshot()
	wrong := (snap.Question.CorrectIndex + 1) % len(snap.Question.Answers)
	f.machine.Answer(wrong)

	after := f.machine.Snapshot()
	assert.Equal(t, 0, after.Streak)
	assert.Equal(t, 1, after.Score)
	assert.Equal(t, 1, after.MaxStreak)
}

func TestSecondAnswerIgnored(t *testing.T) {
	f := newFixture(t)
	f.enterQuiz(t, models.DifficultyAll, bank.CategoryVangeli)

	snap := f.machine.Snapshot()
	wrong := (snap.Question.CorrectIndex + 1) % len(snap.Question.Answers)
	f.machine.Answer(wrong)
	f.machine.Answer(snap.Question.CorrectIndex)

	after := f.machine.Snapshot()
	assert.Equal(t, 0, after.Score)
	assert.Equal(t, wrong, after.SelectedAnswer)
}

func TestTimeoutRun(t *testing.T) {
	f := newFixture(t)
	f.enterQuiz(t, models.DifficultyAll, bank.CategoryVangeli)

	total := f.machine.Snapshot().TotalQuestions
	require.Greater(t, total, 0)

	for i := 0; i < total; i++ {
		f.expireTimer(t)

		snap := f.machine.Snapshot()
		assert.Equal(t, 0, snap.Score)
		assert.Equal(t, 0, snap.Streak)
		assert.Equal(t, -1, snap.SelectedAnswer)

		f.advance()
	}

	assert.Equal(t, ScreenResults, f.machine.Screen())
	assert.Equal(t, 0, f.machine.Snapshot().Score)
	assert.Equal(t, 0, f.machine.Snapshot().Percentage)
	assert.Equal(t, 1, f.badges.Stats().TotalQuizzes)
}

func TestStaleTimerIsIgnored(t *testing.T) {
	f := newFixture(t)
	f.enterQuiz(t, models.DifficultyAll, bank.CategoryVangeli)

	stale := f.machine.epoch
	snap := f.machine.Snapshot()
	f.machine.Answer(snap.Question.CorrectIndex)

	// The countdown scheduled before the answer must not fire anymore.
	f.machine.onTick(stale)
	after := f.machine.Snapshot()
	assert.Equal(t, snap.TimeLeft, after.TimeLeft)
	assert.Equal(t, 1, after.Streak)

	// Neither may a stale advance double-step the session.
	f.machine.onAdvance(stale)
	assert.Equal(t, 0, f.machine.Snapshot().QuestionIndex)
}

func TestAbandonRecordsNothing(t *testing.T) {
	f := newFixture(t)
	f.enterQuiz(t, models.DifficultyAll, bank.CategoryVangeli)

	snap := f.machine.Snapshot()
	f.machine.Answer(snap.Question.CorrectIndex)
	f.advance()

	epochBefore := f.machine.epoch
	f.machine.GoHome()
	assert.Equal(t, ScreenHome, f.machine.Screen())
	assert.NotEqual(t, epochBefore, f.machine.epoch, "leaving the quiz must invalidate pending timers")

	assert.Equal(t, 0, f.badges.Stats().TotalQuizzes)
	for _, c := range f.weekly.Challenges() {
		assert.Equal(t, 0, c.Current)
	}
}

func TestEmptyCategoryYieldsZeroQuestionSession(t *testing.T) {
	f := newFixture(t)
	f.enterQuiz(t, models.DifficultyEasy, "salmi_di_marte")

	snap := f.machine.Snapshot()
	assert.Equal(t, 0, snap.TotalQuestions)
	assert.Nil(t, snap.Question)
	assert.Equal(t, 0, snap.Percentage)

	// Nothing to answer, nothing recorded; home is the only way out.
	f.machine.Answer(0)
	assert.Equal(t, ScreenQuiz, f.machine.Screen())
	f.machine.GoHome()
	assert.Equal(t, 0, f.badges.Stats().TotalQuizzes)
}

func TestRetryReshufflesSameSetup(t *testing.T) {
	f := newFixture(t)
	f.enterQuiz(t, models.DifficultyAll, bank.CategoryVangeli)

	total := f.machine.Snapshot().TotalQuestions
	for i := 0; i < total; i++ {
		f.machine.Answer(f.machine.Snapshot().Question.CorrectIndex)
		f.advance()
	}
	require.Equal(t, ScreenResults, f.machine.Screen())

	f.machine.Retry()
	snap := f.machine.Snapshot()
	assert.Equal(t, ScreenQuiz, f.machine.Screen())
	assert.Equal(t, bank.CategoryVangeli, snap.Category)
	assert.Equal(t, total, snap.TotalQuestions)
	assert.Equal(t, 0, snap.Score)
	assert.Equal(t, 0, snap.QuestionIndex)
}

func TestPreferences(t *testing.T) {
	f := newFixture(t)
	m := f.machine

	t.Run("language persists and validates", func(t *testing.T) {
		m.SetLanguage("en")
		assert.Equal(t, "en", m.Language())

		m.SetLanguage("klingon")
		assert.Equal(t, "en", m.Language())

		var saved string
		require.True(t, f.store.Load(storage.KeyLanguage, &saved))
		assert.Equal(t, "en", saved)
	})

	t.Run("sound flag persists", func(t *testing.T) {
		m.SetSoundEnabled(false)
		assert.False(t, m.SoundEnabled())

		var saved bool
		require.True(t, f.store.Load(storage.KeySound, &saved))
		assert.False(t, saved)
	})

	t.Run("machine restores persisted preferences", func(t *testing.T) {
		restored := NewMachine(f.store, f.badges, f.weekly)
		assert.Equal(t, "en", restored.Language())
		assert.False(t, restored.SoundEnabled())
	})
}

func TestCountdownDecrements(t *testing.T) {
	f := newFixture(t)
	f.enterQuiz(t, models.DifficultyHard, bank.CategoryAnticoTestamento)

	start := f.machine.Snapshot().TimeLeft
	require.Equal(t, models.DifficultyHard.SecondsPerQuestion(), start)

	f.machine.onTick(f.machine.epoch)
	f.machine.onTick(f.machine.epoch)
	assert.Equal(t, start-2, f.machine.Snapshot().TimeLeft)
}
