package models

// Question is a single multiple-choice entry from the bank.
// CorrectIndex and Difficulty are stable across all locales.
type Question struct {
	Text         string     `json:"text"`
	Answers      []string   `json:"answers"`
	CorrectIndex int        `json:"correct_index"`
	Difficulty   Difficulty `json:"difficulty"`
}

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
	DifficultyAll    Difficulty = "all"
)

// QuestionCount returns how many questions a session draws for the difficulty.
func (d Difficulty) QuestionCount() int {
	switch d {
	case DifficultyEasy:
		return 10
	case DifficultyMedium:
		return 15
	case DifficultyHard:
		return 20
	default:
		return 15
	}
}

// SecondsPerQuestion returns the countdown armed for each question.
func (d Difficulty) SecondsPerQuestion() int {
	switch d {
	case DifficultyEasy:
		return 30
	case DifficultyMedium:
		return 20
	case DifficultyHard:
		return 15
	default:
		return 20
	}
}

func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard, DifficultyAll:
		return true
	}
	return false
}
