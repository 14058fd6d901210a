package tagger

type Language string

const (
	French  Language = "fr"
	English Language = "en"
	// Auto picks French or English from stopword hits.
	Auto Language = "auto"
)

func wordSet(words ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

var frenchStopwords = wordSet(
	"a", "à", "ai", "aie", "aient", "aies", "ait", "alors", "as", "au", "aucun", "aucune", "aupres", "auprès",
	"auquel", "aussi", "autre", "autres", "aux", "auxquelles", "auxquels", "avaient", "avais", "avait", "avant",
	"avec", "avez", "aviez", "avions", "avoir", "avons", "ayant", "c'", "ça", "car", "ce", "ceci", "cela",
	"celle", "celles", "celui", "cependant", "certain", "certaine", "certaines", "certains", "ces", "cet",
	"cette", "ceux", "chacun", "chacune", "chaque", "chez", "ci", "comme", "comment", "d'", "dans", "de",
	"dedans", "dehors", "depuis", "des", "desquelles", "desquels", "deux", "devrait", "doit", "donc", "dont",
	"du", "duquel", "durant", "elle", "elles", "en", "encore", "entre", "es", "est", "et", "étaient", "étais",
	"était", "étant", "été", "être", "eu", "eux", "fait", "faire", "fois", "font", "hors", "ici", "il", "ils",
	"j'", "je", "jusqu'", "jusque", "l'", "la", "laquelle", "le", "lequel", "les", "lesquelles", "lesquels",
	"leur", "leurs", "lors", "lorsqu'", "lorsque", "lui", "m'", "ma", "mais", "me", "même", "mêmes", "mes",
	"moi", "moins", "mon", "n'", "ne", "ni", "non", "nos", "notre", "nous", "on", "ont", "ou", "où", "par",
	"parce", "pas", "peu", "peut", "peuvent", "plus", "pour", "pourquoi", "puis", "puisqu'", "puisque", "qu'",
	"quand", "que", "quel", "quelle", "quelles", "quels", "qui", "quoi", "s'", "sa", "sans", "se", "selon",
	"sera", "serait", "ses", "si", "sien", "soi", "soit", "son", "sont", "sous", "sur", "t'", "ta", "tandis",
	"te", "tel", "telle", "tels", "tes", "toi", "ton", "tous", "tout", "toute", "toutes", "très", "trop", "tu",
	"un", "une", "unes", "uns", "vers", "via", "voici", "voilà", "vos", "votre", "vous", "y",
)

var englishStopwords = wordSet(
	"a", "about", "above", "after", "again", "against", "all", "am", "an", "and", "any", "are", "as", "at",
	"be", "because", "been", "before", "being", "below", "between", "both", "but", "by", "can", "could",
	"did", "do", "does", "doing", "done", "down", "during", "each", "few", "for", "from", "further", "had",
	"has", "have", "having", "he", "her", "here", "hers", "herself", "him", "himself", "his", "how", "i",
	"if", "in", "into", "is", "it", "its", "itself", "just", "may", "me", "might", "more", "most", "must",
	"my", "myself", "no", "nor", "not", "now", "of", "off", "on", "once", "only", "or", "other", "our",
	"ours", "ourselves", "out", "over", "own", "same", "she", "should", "so", "some", "such", "than",
	"that", "the", "their", "theirs", "them", "themselves", "then", "there", "these", "they", "this",
	"those", "through", "to", "too", "under", "until", "up", "upon", "us", "very", "was", "we", "were",
	"what", "when", "where", "which", "while", "who", "whom", "why", "will", "with", "would", "you",
	"your", "yours", "yourself", "yourselves", "'s", "'t", "'re", "'ve", "'ll", "'d", "'m",
)

// elisions are French clitics written with an apostrophe before a vowel.
var elisions = wordSet("l", "d", "j", "m", "n", "s", "t", "c", "qu", "jusqu", "lorsqu", "puisqu", "quoiqu")

// contractions are English suffixes split off after an apostrophe.
var contractions = wordSet("s", "t", "re", "ve", "ll", "d", "m")

var frenchAdverbs = wordSet(
	"ainsi", "alors", "assez", "aujourd'hui", "beaucoup", "bien", "bientôt", "déjà", "demain", "désormais",
	"ensemble", "ensuite", "environ", "hier", "jamais", "là", "longtemps", "maintenant", "mieux", "parfois",
	"partout", "plutôt", "presque", "quelquefois", "souvent", "surtout", "tard", "tôt", "toujours", "vite",
)

var englishAdverbs = wordSet(
	"again", "almost", "already", "also", "always", "even", "ever", "however", "instead", "often",
	"perhaps", "quite", "rather", "really", "still", "therefore", "today", "together", "tomorrow", "yet",
)

func stopwords(lang Language) map[string]struct{} {
	if lang == English {
		return englishStopwords
	}
	return frenchStopwords
}

// IsStopword reports whether the lowercased word is a stopword in lang.
func IsStopword(word string, lang Language) bool {
	_, ok := stopwords(lang)[word]
	return ok
}
