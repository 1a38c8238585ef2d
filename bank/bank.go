// Package bank is the static question catalogue. It is fixed at build time
// and immutable at runtime: accessors hand out copies, never the backing
// slices.
package bank

import "github.com/adamspd/bible-quiz-engine/models"

// Categories returns the published category list in display order.
func Categories() []string {
	return []string{
		CategoryPentateuco,
		CategoryVangeli,
		CategoryAnticoTestamento,
		CategoryNuovoTestamento,
	}
}

const (
	CategoryPentateuco       = "pentateuco"
	CategoryVangeli          = "vangeli"
	CategoryAnticoTestamento = "antico_testamento"
	CategoryNuovoTestamento  = "nuovo_testamento"
)

// Languages returns the language codes a player may select. Question text
// falls back to Italian for languages without a translation layer.
func Languages() []string {
	return []string{"it", "en", "es", "fr", "de", "pt", "zh", "ja", "ko", "ar", "ru", "hi"}
}

func SupportedLanguage(lang string) bool {
	for _, l := range Languages() {
		if l == lang {
			return true
		}
	}
	return false
}

// Questions returns the canonical (Italian) question set for a category.
// An unknown category yields an empty slice, never an error: callers are
// expected to validate against Categories.
func Questions(category string) []models.Question {
	return copyQuestions(questions[category])
}

// QuestionsLocalized returns the question set for a category with text and
// answers substituted for lang where a translation exists. CorrectIndex and
// Difficulty are invariant across locales.
func QuestionsLocalized(category, lang string) []models.Question {
	qs := copyQuestions(questions[category])

	byCategory, ok := translations[lang]
	if !ok {
		return qs
	}
	localized, ok := byCategory[category]
	if !ok {
		return qs
	}

	for i := range qs {
		if i >= len(localized) {
			break
		}
		qs[i].Text = localized[i].Text
		qs[i].Answers = append([]string(nil), localized[i].Answers...)
	}
	return qs
}

// localizedQuestion is a translation overlay, positionally aligned with the
// canonical set of its category.
type localizedQuestion struct {
	Text    string
	Answers []string
}

func copyQuestions(src []models.Question) []models.Question {
	out := make([]models.Question, len(src))
	for i, q := range src {
		out[i] = q
		out[i].Answers = append([]string(nil), q.Answers...)
	}
	return out
}
