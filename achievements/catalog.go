package achievements

import "github.com/adamspd/bible-quiz-engine/models"

// defaultCatalog returns the fixed badge catalogue, everything locked.
// Names and descriptions carry their own localization so the catalogue
// stays a single source of truth across languages.
func defaultCatalog() []models.Achievement {
	return []models.Achievement{
		{
			ID:          "streak_5",
			Name:        map[string]string{"it": "Prima Fiamma", "en": "First Flame", "es": "Primera Llama", "fr": "Première Flamme", "de": "Erste Flamme"},
			Description: map[string]string{"it": "Ottieni una serie di 5 risposte corrette", "en": "Get a 5 answer streak", "es": "Consigue una racha de 5", "fr": "Obtenez une série de 5", "de": "Erreiche eine Serie von 5"},
			Icon:        "🔥",
			Requirement: 5,
			Kind:        models.AchievementStreak,
		},
		{
			ID:          "streak_10",
			Name:        map[string]string{"it": "Fiamma Ardente", "en": "Burning Flame", "es": "Llama Ardiente", "fr": "Flamme Ardente", "de": "Brennende Flamme"},
			Description: map[string]string{"it": "Ottieni una serie di 10 risposte corrette", "en": "Get a 10 answer streak", "es": "Consigue una racha de 10", "fr": "Obtenez une série de 10", "de": "Erreiche eine Serie von 10"},
			Icon:        "🔥",
			Requirement: 10,
			Kind:        models.AchievementStreak,
		},
		{
			ID:          "streak_20",
			Name:        map[string]string{"it": "Inferno Biblico", "en": "Biblical Inferno", "es": "Infierno Bíblico", "fr": "Enfer Biblique", "de": "Biblisches Inferno"},
			Description: map[string]string{"it": "Ottieni una serie di 20 risposte corrette", "en": "Get a 20 answer streak", "es": "Consigue una racha de 20", "fr": "Obtenez une série de 20", "de": "Erreiche eine Serie von 20"},
			Icon:        "🌟",
			Requirement: 20,
			Kind:        models.AchievementStreak,
		},
		{
			ID:          "quizzes_1",
			Name:        map[string]string{"it": "Primo Passo", "en": "First Step", "es": "Primer Paso", "fr": "Premier Pas", "de": "Erster Schritt"},
			Description: map[string]string{"it": "Completa il tuo primo quiz", "en": "Complete your first quiz", "es": "Completa tu primer quiz", "fr": "Complétez votre premier quiz", "de": "Schließe dein erstes Quiz ab"},
			Icon:        "📖",
			Requirement: 1,
			Kind:        models.AchievementQuizzes,
		},
		{
			ID:          "quizzes_10",
			Name:        map[string]string{"it": "Studente Dedicato", "en": "Dedicated Student", "es": "Estudiante Dedicado", "fr": "Étudiant Dévoué", "de": "Engagierter Student"},
			Description: map[string]string{"it": "Completa 10 quiz", "en": "Complete 10 quizzes", "es": "Completa 10 cuestionarios", "fr": "Complétez 10 quiz", "de": "Schließe 10 Quiz ab"},
			Icon:        "📚",
			Requirement: 10,
			Kind:        models.AchievementQuizzes,
		},
		{
			ID:          "quizzes_50",
			Name:        map[string]string{"it": "Maestro Biblico", "en": "Bible Master", "es": "Maestro Bíblico", "fr": "Maître Biblique", "de": "Bibelmeister"},
			Description: map[string]string{"it": "Completa 50 quiz", "en": "Complete 50 quizzes", "es": "Completa 50 cuestionarios", "fr": "Complétez 50 quiz", "de": "Schließe 50 Quiz ab"},
			Icon:        "🎓",
			Requirement: 50,
			Kind:        models.AchievementQuizzes,
		},
		{
			ID:          "perfect_1",
			Name:        map[string]string{"it": "Perfezione", "en": "Perfection", "es": "Perfección", "fr": "Perfection", "de": "Perfektion"},
			Description: map[string]string{"it": "Ottieni un punteggio perfetto", "en": "Get a perfect score", "es": "Obtén una puntuación perfecta", "fr": "Obtenez un score parfait", "de": "Erreiche eine perfekte Punktzahl"},
			Icon:        "⭐",
			Requirement: 1,
			Kind:        models.AchievementPerfect,
		},
		{
			ID:          "perfect_5",
			Name:        map[string]string{"it": "Stella Nascente", "en": "Rising Star", "es": "Estrella Naciente", "fr": "Étoile Montante", "de": "Aufgehender Stern"},
			Description: map[string]string{"it": "Ottieni 5 punteggi perfetti", "en": "Get 5 perfect scores", "es": "Obtén 5 puntuaciones perfectas", "fr": "Obtenez 5 scores parfaits", "de": "Erreiche 5 perfekte Punktzahlen"},
			Icon:        "🌟",
			Requirement: 5,
			Kind:        models.AchievementPerfect,
		},
		{
			ID:          "perfect_10",
			Name:        map[string]string{"it": "Leggenda", "en": "Legend", "es": "Leyenda", "fr": "Légende", "de": "Legende"},
			Description: map[string]string{"it": "Ottieni 10 punteggi perfetti", "en": "Get 10 perfect scores", "es": "Obtén 10 puntuaciones perfectas", "fr": "Obtenez 10 scores parfaits", "de": "Erreiche 10 perfekte Punktzahlen"},
			Icon:        "👑",
			Requirement: 10,
			Kind:        models.AchievementPerfect,
		},
		{
			ID:          "score_50",
			Name:        map[string]string{"it": "Esploratore", "en": "Explorer", "es": "Explorador", "fr": "Explorateur", "de": "Entdecker"},
			Description: map[string]string{"it": "Rispondi correttamente a 50 domande", "en": "Answer 50 questions correctly", "es": "Responde 50 preguntas correctamente", "fr": "Répondez correctement à 50 questions", "de": "Beantworte 50 Fragen richtig"},
			Icon:        "🧭",
			Requirement: 50,
			Kind:        models.AchievementScore,
		},
		{
			ID:          "score_200",
			Name:        map[string]string{"it": "Conoscitore", "en": "Expert", "es": "Conocedor", "fr": "Connaisseur", "de": "Kenner"},
			Description: map[string]string{"it": "Rispondi correttamente a 200 domande", "en": "Answer 200 questions correctly", "es": "Responde 200 preguntas correctamente", "fr": "Répondez correctement à 200 questions", "de": "Beantworte 200 Fragen richtig"},
			Icon:        "🏆",
			Requirement: 200,
			Kind:        models.AchievementScore,
		},
		{
			ID:          "score_500",
			Name:        map[string]string{"it": "Saggio Biblico", "en": "Bible Sage", "es": "Sabio Bíblico", "fr": "Sage Biblique", "de": "Bibel-Weiser"},
			Description: map[string]string{"it": "Rispondi correttamente a 500 domande", "en": "Answer 500 questions correctly", "es": "Responde 500 preguntas correctamente", "fr": "Répondez correctement à 500 questions", "de": "Beantworte 500 Fragen richtig"},
			Icon:        "📜",
			Requirement: 500,
			Kind:        models.AchievementScore,
		},
		{
			ID:          "cat_pentateuco",
			Name:        map[string]string{"it": "Esperto del Pentateuco", "en": "Pentateuch Expert", "es": "Experto del Pentateuco", "fr": "Expert du Pentateuque", "de": "Pentateuch-Experte"},
			Description: map[string]string{"it": "Completa 5 quiz del Pentateuco", "en": "Complete 5 Pentateuch quizzes", "es": "Completa 5 cuestionarios del Pentateuco", "fr": "Complétez 5 quiz du Pentateuque", "de": "Schließe 5 Pentateuch-Quiz ab"},
			Icon:        "📕",
			Requirement: 5,
			Kind:        models.AchievementCategory,
			Category:    "pentateuco",
		},
		{
			ID:          "cat_vangeli",
			Name:        map[string]string{"it": "Discepolo dei Vangeli", "en": "Gospel Disciple", "es": "Discípulo de los Evangelios", "fr": "Disciple des Évangiles", "de": "Evangelien-Jünger"},
			Description: map[string]string{"it": "Completa 5 quiz dei Vangeli", "en": "Complete 5 Gospel quizzes", "es": "Completa 5 cuestionarios de los Evangelios", "fr": "Complétez 5 quiz des Évangiles", "de": "Schließe 5 Evangelien-Quiz ab"},
			Icon:        "📗",
			Requirement: 5,
			Kind:        models.AchievementCategory,
			Category:    "vangeli",
		},
		{
			ID:          "cat_profeti",
			Name:        map[string]string{"it": "Voce dei Profeti", "en": "Voice of Prophets", "es": "Voz de los Profetas", "fr": "Voix des Prophètes", "de": "Stimme der Propheten"},
			Description: map[string]string{"it": "Completa 5 quiz dei Profeti", "en": "Complete 5 Prophet quizzes", "es": "Completa 5 cuestionarios de los Profetas", "fr": "Complétez 5 quiz des Prophètes", "de": "Schließe 5 Propheten-Quiz ab"},
			Icon:        "📘",
			Requirement: 5,
			Kind:        models.AchievementCategory,
			Category:    "profeti",
		},
		{
			ID:          "cat_salmi",
			Name:        map[string]string{"it": "Cantore dei Salmi", "en": "Psalms Singer", "es": "Cantor de los Salmos", "fr": "Chanteur des Psaumes", "de": "Psalmen-Sänger"},
			Description: map[string]string{"it": "Completa 5 quiz dei Salmi", "en": "Complete 5 Psalms quizzes", "es": "Completa 5 cuestionarios de los Salmos", "fr": "Complétez 5 quiz des Psaumes", "de": "Schließe 5 Psalmen-Quiz ab"},
			Icon:        "🎵",
			Requirement: 5,
			Kind:        models.AchievementCategory,
			Category:    "salmi",
		},
	}
}
