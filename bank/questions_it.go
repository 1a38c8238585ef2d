package bank

import "github.com/adamspd/bible-quiz-engine/models"

// Canonical catalogue, Italian.
var questions = map[string][]models.Question{
	CategoryPentateuco: {
		{Text: "Chi costruì l'arca secondo il comando di Dio?", Answers: []string{"Abramo", "Mosè", "Noè", "Davide"}, CorrectIndex: 2, Difficulty: models.DifficultyEasy},
		{Text: "Quanti giorni durò il diluvio universale?", Answers: []string{"7 giorni", "40 giorni", "100 giorni", "1 anno"}, CorrectIndex: 1, Difficulty: models.DifficultyEasy},
		{Text: "Chi fu il primo uomo creato da Dio?", Answers: []string{"Noè", "Abramo", "Adamo", "Mosè"}, CorrectIndex: 2, Difficulty: models.DifficultyEasy},
		{Text: "In quale giorno Dio creò l'uomo?", Answers: []string{"Primo", "Terzo", "Sesto", "Settimo"}, CorrectIndex: 2, Difficulty: models.DifficultyMedium},
		{Text: "Chi guidò gli Israeliti fuori dall'Egitto?", Answers: []string{"Abramo", "Mosè", "Giosuè", "Davide"}, CorrectIndex: 1, Difficulty: models.DifficultyEasy},
		{Text: "Quante piaghe colpirono l'Egitto?", Answers: []string{"5", "7", "10", "12"}, CorrectIndex: 2, Difficulty: models.DifficultyMedium},
		{Text: "Su quale monte Mosè ricevette le tavole della Legge?", Answers: []string{"Ararat", "Sinai", "Nebo", "Carmelo"}, CorrectIndex: 1, Difficulty: models.DifficultyMedium},
		{Text: "Quanti figli ebbe Giacobbe?", Answers: []string{"10", "12", "13", "14"}, CorrectIndex: 1, Difficulty: models.DifficultyHard},
	},
	CategoryVangeli: {
		{Text: "In quale città nacque Gesù?", Answers: []string{"Nazareth", "Gerusalemme", "Betlemme", "Cafarnao"}, CorrectIndex: 2, Difficulty: models.DifficultyEasy},
		{Text: "Chi battezzò Gesù nel fiume Giordano?", Answers: []string{"Pietro", "Giovanni Battista", "Paolo", "Andrea"}, CorrectIndex: 1, Difficulty: models.DifficultyEasy},
		{Text: "Quanti apostoli scelse Gesù?", Answers: []string{"7", "10", "12", "15"}, CorrectIndex: 2, Difficulty: models.DifficultyEasy},
		{Text: "Chi rinnegò Gesù tre volte?", Answers: []string{"Giuda", "Pietro", "Giovanni", "Matteo"}, CorrectIndex: 1, Difficulty: models.DifficultyMedium},
		{Text: "Quanti pani usò Gesù per sfamare 5000 persone?", Answers: []string{"3", "5", "7", "12"}, CorrectIndex: 1, Difficulty: models.DifficultyMedium},
		{Text: "Quale fu il primo miracolo di Gesù?", Answers: []string{"Moltiplicazione dei pani", "Acqua trasformata in vino", "Guarigione di un cieco", "Risurrezione di Lazzaro"}, CorrectIndex: 1, Difficulty: models.DifficultyMedium},
		{Text: "Per quante monete d'argento Giuda tradì Gesù?", Answers: []string{"10", "20", "30", "40"}, CorrectIndex: 2, Difficulty: models.DifficultyHard},
		{Text: "In quale villaggio Gesù risuscitò Lazzaro?", Answers: []string{"Nazareth", "Betania", "Gerico", "Emmaus"}, CorrectIndex: 1, Difficulty: models.DifficultyHard},
	},
	CategoryAnticoTestamento: {
		{Text: "Chi uccise il gigante Golia?", Answers: []string{"Saul", "Davide", "Sansone", "Giosuè"}, CorrectIndex: 1, Difficulty: models.DifficultyEasy},
		{Text: "Chi fu inghiottito da un grande pesce?", Answers: []string{"Elia", "Eliseo", "Giona", "Daniele"}, CorrectIndex: 2, Difficulty: models.DifficultyEasy},
		{Text: "Chi interpretò i sogni del faraone?", Answers: []string{"Mosè", "Giuseppe", "Daniele", "Elia"}, CorrectIndex: 1, Difficulty: models.DifficultyMedium},
		{Text: "Quanti libri contiene l'Antico Testamento?", Answers: []string{"27", "39", "46", "66"}, CorrectIndex: 1, Difficulty: models.DifficultyHard},
		{Text: "Chi costruì il primo tempio di Gerusalemme?", Answers: []string{"Davide", "Salomone", "Mosè", "Esdra"}, CorrectIndex: 1, Difficulty: models.DifficultyMedium},
		{Text: "Chi fu gettato nella fossa dei leoni?", Answers: []string{"Giona", "Daniele", "Geremia", "Ezechiele"}, CorrectIndex: 1, Difficulty: models.DifficultyEasy},
		{Text: "A chi era legata una forza straordinaria ai capelli?", Answers: []string{"Saul", "Gedeone", "Sansone", "Elia"}, CorrectIndex: 2, Difficulty: models.DifficultyEasy},
		{Text: "Quale profeta salì al cielo su un carro di fuoco?", Answers: []string{"Eliseo", "Elia", "Enoc", "Isaia"}, CorrectIndex: 1, Difficulty: models.DifficultyHard},
	},
	CategoryNuovoTestamento: {
		{Text: "Chi scrisse la maggior parte delle lettere del NT?", Answers: []string{"Pietro", "Giovanni", "Paolo", "Giacomo"}, CorrectIndex: 2, Difficulty: models.DifficultyEasy},
		{Text: "Quale libro conclude la Bibbia?", Answers: []string{"Giovanni", "Ebrei", "Giuda", "Apocalisse"}, CorrectIndex: 3, Difficulty: models.DifficultyEasy},
		{Text: "Chi ebbe la visione dell'Apocalisse?", Answers: []string{"Paolo", "Pietro", "Giovanni", "Luca"}, CorrectIndex: 2, Difficulty: models.DifficultyMedium},
		{Text: "Quanti libri contiene il Nuovo Testamento?", Answers: []string{"21", "27", "33", "39"}, CorrectIndex: 1, Difficulty: models.DifficultyMedium},
		{Text: "Chi era il medico che scrisse un Vangelo?", Answers: []string{"Marco", "Matteo", "Luca", "Giovanni"}, CorrectIndex: 2, Difficulty: models.DifficultyHard},
		{Text: "Sulla via di quale città Paolo si convertì?", Answers: []string{"Roma", "Damasco", "Atene", "Corinto"}, CorrectIndex: 1, Difficulty: models.DifficultyEasy},
		{Text: "Chi fu il primo martire cristiano?", Answers: []string{"Pietro", "Giacomo", "Stefano", "Paolo"}, CorrectIndex: 2, Difficulty: models.DifficultyMedium},
		{Text: "A quante chiese sono indirizzate le lettere dell'Apocalisse?", Answers: []string{"3", "5", "7", "12"}, CorrectIndex: 2, Difficulty: models.DifficultyHard},
	},
}
