package storage

// Storage keys, kept byte-identical to the web version so an exported
// localStorage dump imports cleanly.
const (
	KeyAchievements = "bible_quiz_achievements"
	KeyStats        = "bible_quiz_stats"
	KeyWeekly       = "bible-quiz-weekly-challenges"
	KeyLanguage     = "bible-quiz-language"
	KeySound        = "bible-quiz-sound-enabled"
	KeyBestStreak   = "bible-quiz-best-streak"
)
