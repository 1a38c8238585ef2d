package models

import "time"

type ChallengeKind string

const (
	ChallengeQuestions ChallengeKind = "questions"
	ChallengeStreak    ChallengeKind = "streak"
	ChallengePerfect   ChallengeKind = "perfect"
	ChallengeCategory  ChallengeKind = "category"
)

// WeeklyChallenge is one time-boxed goal. Current never exceeds Target,
// Completed holds exactly when Current reached Target, and Claimed implies
// Completed.
type WeeklyChallenge struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Target      int           `json:"target"`
	Current     int           `json:"current"`
	Reward      int           `json:"reward"`
	Kind        ChallengeKind `json:"type"`
	Category    string        `json:"category,omitempty"`
	Completed   bool          `json:"completed"`
	Claimed     bool          `json:"claimed"`
}

// WeeklyState is the persisted challenge set plus the week marker it was
// generated for. TotalRewardsClaimed survives regeneration.
type WeeklyState struct {
	Challenges          []WeeklyChallenge `json:"challenges"`
	WeekStart           time.Time         `json:"week_start"`
	TotalRewardsClaimed int               `json:"total_rewards_claimed"`
}
