package bank

// English overlay, aligned positionally with the canonical set.
var translations = map[string]map[string][]localizedQuestion{
	"en": {
		CategoryPentateuco: {
			{Text: "Who built the ark at God's command?", Answers: []string{"Abraham", "Moses", "Noah", "David"}},
			{Text: "How many days did the great flood last?", Answers: []string{"7 days", "40 days", "100 days", "1 year"}},
			{Text: "Who was the first man created by God?", Answers: []string{"Noah", "Abraham", "Adam", "Moses"}},
			{Text: "On which day did God create man?", Answers: []string{"First", "Third", "Sixth", "Seventh"}},
			{Text: "Who led the Israelites out of Egypt?", Answers: []string{"Abraham", "Moses", "Joshua", "David"}},
			{Text: "How many plagues struck Egypt?", Answers: []string{"5", "7", "10", "12"}},
			{Text: "On which mountain did Moses receive the tablets of the Law?", Answers: []string{"Ararat", "Sinai", "Nebo", "Carmel"}},
			{Text: "How many sons did Jacob have?", Answers: []string{"10", "12", "13", "14"}},
		},
		CategoryVangeli: {
			{Text: "In which town was Jesus born?", Answers: []string{"Nazareth", "Jerusalem", "Bethlehem", "Capernaum"}},
			{Text: "Who baptized Jesus in the Jordan river?", Answers: []string{"Peter", "John the Baptist", "Paul", "Andrew"}},
			{Text: "How many apostles did Jesus choose?", Answers: []string{"7", "10", "12", "15"}},
			{Text: "Who denied Jesus three times?", Answers: []string{"Judas", "Peter", "John", "Matthew"}},
			{Text: "How many loaves did Jesus use to feed 5000 people?", Answers: []string{"3", "5", "7", "12"}},
			{Text: "What was Jesus' first miracle?", Answers: []string{"Multiplying the loaves", "Turning water into wine", "Healing a blind man", "Raising Lazarus"}},
			{Text: "For how many silver coins did Judas betray Jesus?", Answers: []string{"10", "20", "30", "40"}},
			{Text: "In which village did Jesus raise Lazarus?", Answers: []string{"Nazareth", "Bethany", "Jericho", "Emmaus"}},
		},
		CategoryAnticoTestamento: {
			{Text: "Who killed the giant Goliath?", Answers: []string{"Saul", "David", "Samson", "Joshua"}},
			{Text: "Who was swallowed by a great fish?", Answers: []string{"Elijah", "Elisha", "Jonah", "Daniel"}},
			{Text: "Who interpreted Pharaoh's dreams?", Answers: []string{"Moses", "Joseph", "Daniel", "Elijah"}},
			{Text: "How many books does the Old Testament contain?", Answers: []string{"27", "39", "46", "66"}},
			{Text: "Who built the first temple of Jerusalem?", Answers: []string{"David", "Solomon", "Moses", "Ezra"}},
			{Text: "Who was thrown into the lions' den?", Answers: []string{"Jonah", "Daniel", "Jeremiah", "Ezekiel"}},
			{Text: "Whose extraordinary strength was tied to his hair?", Answers: []string{"Saul", "Gideon", "Samson", "Elijah"}},
			{Text: "Which prophet rose to heaven on a chariot of fire?", Answers: []string{"Elisha", "Elijah", "Enoch", "Isaiah"}},
		},
		CategoryNuovoTestamento: {
			{Text: "Who wrote most of the New Testament letters?", Answers: []string{"Peter", "John", "Paul", "James"}},
			{Text: "Which book closes the Bible?", Answers: []string{"John", "Hebrews", "Jude", "Revelation"}},
			{Text: "Who had the vision of Revelation?", Answers: []string{"Paul", "Peter", "John", "Luke"}},
			{Text: "How many books does the New Testament contain?", Answers: []string{"21", "27", "33", "39"}},
			{Text: "Who was the physician that wrote a Gospel?", Answers: []string{"Mark", "Matthew", "Luke", "John"}},
			{Text: "On the road to which city was Paul converted?", Answers: []string{"Rome", "Damascus", "Athens", "Corinth"}},
			{Text: "Who was the first Christian martyr?", Answers: []string{"Peter", "James", "Stephen", "Paul"}},
			{Text: "How many churches are addressed in Revelation?", Answers: []string{"3", "5", "7", "12"}},
		},
	},
}
