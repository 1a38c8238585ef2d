package models

import "time"

type AchievementKind string

const (
	AchievementStreak   AchievementKind = "streak"
	AchievementQuizzes  AchievementKind = "quizzes"
	AchievementPerfect  AchievementKind = "perfect"
	AchievementScore    AchievementKind = "score"
	AchievementCategory AchievementKind = "category"
)

// Achievement is one catalogue entry. The catalogue itself is fixed at
// build time; only Unlocked, UnlockedAt and Progress are mutable, and an
// unlock is never reverted.
type Achievement struct {
	ID          string            `json:"id"`
	Name        map[string]string `json:"name"`
	Description map[string]string `json:"description"`
	Icon        string            `json:"icon"`
	Requirement int               `json:"requirement"`
	Kind        AchievementKind   `json:"type"`
	Category    string            `json:"category,omitempty"`
	Unlocked    bool              `json:"unlocked"`
	UnlockedAt  *time.Time        `json:"unlocked_at,omitempty"`
	Progress    int               `json:"progress"`
}

// LocalizedName returns the name for lang, falling back to Italian.
func (a Achievement) LocalizedName(lang string) string {
	if n, ok := a.Name[lang]; ok {
		return n
	}
	return a.Name["it"]
}

// LocalizedDescription returns the description for lang, falling back to Italian.
func (a Achievement) LocalizedDescription(lang string) string {
	if d, ok := a.Description[lang]; ok {
		return d
	}
	return a.Description["it"]
}
