package quiz

import (
	"github.com/adamspd/bible-quiz-engine/bank"
	"github.com/adamspd/bible-quiz-engine/models"
	"github.com/adamspd/bible-quiz-engine/storage"
	"github.com/adamspd/bible-quiz-engine/utils"
)

// Snapshot is the read model the UI renders from. Question is nil outside
// an active session or when the drawn set came up empty.
type Snapshot struct {
	Screen         Screen
	Language       string
	SoundEnabled   bool
	Difficulty     models.Difficulty
	Category       string
	Question       *models.Question
	QuestionIndex  int
	TotalQuestions int
	Score          int
	Streak         int
	MaxStreak      int
	TimeLeft       int
	Answered       bool
	SelectedAnswer int
	Encouragement  string
	Percentage     int
}

func (m *Machine) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()

	snap := Snapshot{
		Screen:         m.screen,
		Language:       m.language,
		SoundEnabled:   m.soundEnabled,
		Difficulty:     m.difficulty,
		Encouragement:  m.encouragement,
		SelectedAnswer: -1,
	}

	s := m.session
	if s == nil {
		return snap
	}

	snap.Category = s.Category
	snap.QuestionIndex = s.CurrentIndex
	snap.TotalQuestions = len(s.Questions)
	snap.Score = s.Score
	snap.Streak = s.Streak
	snap.MaxStreak = s.MaxStreak
	snap.TimeLeft = s.TimeLeft
	snap.Answered = s.Answered
	snap.SelectedAnswer = s.SelectedAnswer

	if len(s.Questions) > 0 {
		q := s.Questions[s.CurrentIndex]
		q.Answers = append([]string(nil), q.Answers...)
		snap.Question = &q
		total := len(s.Questions)
		snap.Percentage = (s.Score*100 + total/2) / total
	}
	return snap
}

func (m *Machine) Screen() Screen {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.screen
}

// SetLanguage switches the player's language. Unsupported codes are
// ignored. The running session keeps the locale it was drawn with; the
// next draw picks up the new one.
func (m *Machine) SetLanguage(lang string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !bank.SupportedLanguage(lang) {
		utils.LogQuiz("Ignoring unsupported language '%s'", lang)
		return
	}
	m.language = lang
	if err := m.store.Save(storage.KeyLanguage, lang); err != nil {
		utils.LogError("Failed to persist language: %v", err)
	}
}

func (m *Machine) Language() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.language
}

func (m *Machine) SetSoundEnabled(enabled bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.soundEnabled = enabled
	if err := m.store.Save(storage.KeySound, enabled); err != nil {
		utils.LogError("Failed to persist sound preference: %v", err)
	}
}

func (m *Machine) SoundEnabled() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.soundEnabled
}
