// Package quiz drives the screen flow and the per-question countdown. All
// state lives behind one mutex; timer callbacks carry the epoch they were
// scheduled under and drop themselves when any transition has bumped it
// since, so a stale timeout can never zero a streak or double-advance.
package quiz

import (
	"math/rand"
	"sync"
	"time"

	"github.com/adamspd/bible-quiz-engine/achievements"
	"github.com/adamspd/bible-quiz-engine/bank"
	"github.com/adamspd/bible-quiz-engine/challenges"
	"github.com/adamspd/bible-quiz-engine/models"
	"github.com/adamspd/bible-quiz-engine/storage"
	"github.com/adamspd/bible-quiz-engine/utils"
	"github.com/google/uuid"
)

type Screen string

const (
	ScreenHome         Screen = "home"
	ScreenDifficulty   Screen = "difficulty"
	ScreenCategory     Screen = "category"
	ScreenQuiz         Screen = "quiz"
	ScreenResults      Screen = "results"
	ScreenAchievements Screen = "achievements"
)

// Session is one run through a fixed, shuffled question set. It exists from
// ChooseCategory until the player returns home, and is never persisted.
type Session struct {
	ID             string
	Category       string
	Difficulty     models.Difficulty
	Questions      []models.Question
	CurrentIndex   int
	Score          int
	Streak         int
	MaxStreak      int
	TimeLeft       int
	SelectedAnswer int
	Answered       bool
}

var encouragements = []string{"Corretto! 🎉", "Ottimo! ⭐", "Fantastico! 💪", "Bravo! 🌟"}

// weeklyLabels maps bank category ids to the display labels the weekly
// category challenge is generated with. Ids without a label contribute
// nothing to that challenge.
var weeklyLabels = map[string]string{
	bank.CategoryPentateuco:       "Antico Testamento",
	bank.CategoryAnticoTestamento: "Antico Testamento",
	bank.CategoryNuovoTestamento:  "Nuovo Testamento",
	bank.CategoryVangeli:          "Vangeli",
}

type Machine struct {
	mu     sync.Mutex
	store  storage.KV
	badges *achievements.Engine
	weekly *challenges.Engine
	rng    *rand.Rand

	tickInterval time.Duration
	advanceDelay time.Duration

	screen        Screen
	language      string
	soundEnabled  bool
	difficulty    models.Difficulty
	session       *Session
	encouragement string

	// epoch invalidates outstanding timer callbacks; bumped on every
	// answer, advance and screen change.
	epoch        uint64
	tickTimer    *time.Timer
	advanceTimer *time.Timer
}

type Option func(*Machine)

// WithRand replaces the shuffle randomness source.
func WithRand(rng *rand.Rand) Option {
	return func(m *Machine) { m.rng = rng }
}

func WithAdvanceDelay(d time.Duration) Option {
	return func(m *Machine) { m.advanceDelay = d }
}

func WithTickInterval(d time.Duration) Option {
	return func(m *Machine) { m.tickInterval = d }
}

func WithDefaultLanguage(lang string) Option {
	return func(m *Machine) { m.language = lang }
}

func WithSoundDefault(enabled bool) Option {
	return func(m *Machine) { m.soundEnabled = enabled }
}

func NewMachine(store storage.KV, badges *achievements.Engine, weekly *challenges.Engine, opts ...Option) *Machine {
	m := &Machine{
		store:        store,
		badges:       badges,
		weekly:       weekly,
		rng:          rand.New(rand.NewSource(time.Now().UnixNano())),
		tickInterval: time.Second,
		advanceDelay: 2 * time.Second,
		screen:       ScreenHome,
		language:     "it",
		soundEnabled: true,
	}
	for _, opt := range opts {
		opt(m)
	}

	var lang string
	if m.store.Load(storage.KeyLanguage, &lang) && bank.SupportedLanguage(lang) {
		m.language = lang
	}
	var sound bool
	if m.store.Load(storage.KeySound, &sound) {
		m.soundEnabled = sound
	}

	utils.LogQuiz("Machine ready: language=%s sound=%t", m.language, m.soundEnabled)
	return m
}

// Start moves from the home screen to difficulty selection.
func (m *Machine) Start() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.screen != ScreenHome {
		return
	}
	m.transition(ScreenDifficulty)
}

// ChooseDifficulty stores the chosen difficulty and moves on to category
// selection. Questions are not drawn yet.
func (m *Machine) ChooseDifficulty(d models.Difficulty) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.screen != ScreenDifficulty || !d.Valid() {
		return
	}
	m.difficulty = d
	m.transition(ScreenCategory)
}

// ChooseCategory draws the session's question set and enters the quiz.
func (m *Machine) ChooseCategory(category string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.screen != ScreenCategory {
		return
	}
	m.startQuiz(category)
}

// Retry restarts with the same category and difficulty, reshuffling.
func (m *Machine) Retry() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.screen != ScreenResults || m.session == nil {
		return
	}
	m.startQuiz(m.session.Category)
}

// Back returns from category selection to difficulty selection.
func (m *Machine) Back() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.screen != ScreenCategory {
		return
	}
	m.transition(ScreenDifficulty)
}

// ShowAchievements opens the achievements screen from home.
func (m *Machine) ShowAchievements() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.screen != ScreenHome {
		return
	}
	m.transition(ScreenAchievements)
}

// GoHome abandons whatever is in progress. An abandoned quiz records
// nothing: no stats, no achievements, no challenge progress.
func (m *Machine) GoHome() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.screen == ScreenHome {
		return
	}
	if m.session != nil {
		utils.LogQuiz("Session %s abandoned on question %d", m.session.ID, m.session.CurrentIndex+1)
	}
	m.session = nil
	m.encouragement = ""
	m.transition(ScreenHome)
}

func (m *Machine) startQuiz(category string) {
	qs := bank.QuestionsLocalized(category, m.language)
	if m.difficulty != models.DifficultyAll {
		filtered := qs[:0]
		for _, q := range qs {
			if q.Difficulty == m.difficulty {
				filtered = append(filtered, q)
			}
		}
		qs = filtered
	}

	m.rng.Shuffle(len(qs), func(i, j int) {
		qs[i], qs[j] = qs[j], qs[i]
	})
	if count := m.difficulty.QuestionCount(); len(qs) > count {
		qs = qs[:count]
	}

	m.session = &Session{
		ID:             uuid.NewString(),
		Category:       category,
		Difficulty:     m.difficulty,
		Questions:      qs,
		TimeLeft:       m.difficulty.SecondsPerQuestion(),
		SelectedAnswer: -1,
	}
	m.encouragement = ""
	m.transition(ScreenQuiz)

	utils.LogQuiz("Session %s started: category=%s difficulty=%s questions=%d time=%ds",
		m.session.ID, category, m.difficulty, len(qs), m.session.TimeLeft)

	if len(qs) > 0 {
		m.scheduleTick(m.epoch)
	}
}

// Answer records the player's pick for the current question. Answering an
// already-answered question is a silent no-op, as is an out-of-range index.
func (m *Machine) Answer(index int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s := m.session
	if m.screen != ScreenQuiz || s == nil || s.Answered || len(s.Questions) == 0 {
		return
	}
	q := s.Questions[s.CurrentIndex]
	if index < 0 || index >= len(q.Answers) {
		return
	}

	s.Answered = true
	s.SelectedAnswer = index

	if index == q.CorrectIndex {
		s.Score++
		s.Streak++
		if s.Streak > s.MaxStreak {
			s.MaxStreak = s.Streak
		}
		m.encouragement = encouragements[m.rng.Intn(len(encouragements))]
	} else {
		s.Streak = 0
	}

	utils.LogQuiz("Session %s answered question %d: picked %d, correct %d (score %d, streak %d)",
		s.ID, s.CurrentIndex+1, index, q.CorrectIndex, s.Score, s.Streak)

	m.bumpEpoch()
	m.scheduleAdvance(m.epoch)
}

// onTick fires once per countdown second. Stale epochs drop out; an
// answered question has already bumped the epoch, so the countdown is
// effectively suspended the moment an answer lands.
func (m *Machine) onTick(epoch uint64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if epoch != m.epoch {
		return
	}
	s := m.session
	if m.screen != ScreenQuiz || s == nil || s.Answered {
		return
	}

	s.TimeLeft--
	if s.TimeLeft > 0 {
		m.scheduleTick(epoch)
		return
	}

	// Expiry counts as an incorrect answer with no selection.
	s.TimeLeft = 0
	s.Answered = true
	s.SelectedAnswer = -1
	s.Streak = 0

	utils.LogQuiz("Session %s timed out on question %d", s.ID, s.CurrentIndex+1)

	m.bumpEpoch()
	m.scheduleAdvance(m.epoch)
}

// onAdvance fires after the post-answer display delay.
func (m *Machine) onAdvance(epoch uint64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if epoch != m.epoch {
		return
	}
	s := m.session
	if m.screen != ScreenQuiz || s == nil {
		return
	}

	m.encouragement = ""

	if s.CurrentIndex+1 < len(s.Questions) {
		s.CurrentIndex++
		s.Answered = false
		s.SelectedAnswer = -1
		s.TimeLeft = s.Difficulty.SecondsPerQuestion()
		m.bumpEpoch()
		m.scheduleTick(m.epoch)
		return
	}

	m.complete()
}

// complete feeds the finished session to the achievement and weekly
// challenge engines and shows the results screen.
func (m *Machine) complete() {
	s := m.session

	utils.LogQuiz("Session %s completed: %d/%d (max streak %d)",
		s.ID, s.Score, len(s.Questions), s.MaxStreak)

	m.badges.RecordQuizResult(s.Score, len(s.Questions), s.Category, s.MaxStreak)

	m.weekly.UpdateChallenge(models.ChallengeQuestions, len(s.Questions), "")
	m.weekly.UpdateChallenge(models.ChallengeStreak, s.MaxStreak, "")
	if len(s.Questions) > 0 && s.Score == len(s.Questions) {
		m.weekly.UpdateChallenge(models.ChallengePerfect, 1, "")
	}
	if label, ok := weeklyLabels[s.Category]; ok {
		m.weekly.UpdateChallenge(models.ChallengeCategory, s.Score, label)
	}

	m.transition(ScreenResults)
}

// transition changes screens, cancelling whatever timers were outstanding.
func (m *Machine) transition(next Screen) {
	m.screen = next
	m.bumpEpoch()
}

func (m *Machine) bumpEpoch() {
	m.epoch++
	if m.tickTimer != nil {
		m.tickTimer.Stop()
		m.tickTimer = nil
	}
	if m.advanceTimer != nil {
		m.advanceTimer.Stop()
		m.advanceTimer = nil
	}
}

func (m *Machine) scheduleTick(epoch uint64) {
	m.tickTimer = time.AfterFunc(m.tickInterval, func() { m.onTick(epoch) })
}

func (m *Machine) scheduleAdvance(epoch uint64) {
	m.advanceTimer = time.AfterFunc(m.advanceDelay, func() { m.onAdvance(epoch) })
}
