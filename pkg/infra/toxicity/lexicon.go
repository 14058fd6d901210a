package toxicity

import "github.com/Setharkk/Skyent-dev/pkg/moderation"

// lexicon lists French and English surface forms per category. Entries are
// lowercased; matching is done on both the token and its lemma.
var lexicon = map[moderation.Category][]string{
	moderation.CategoryHate: {
		"racist", "raciste", "racism", "racisme", "nazi", "nazis", "xénophobe", "xenophobic",
		"homophobe", "homophobic", "antisémite", "antisemitic", "bougnoule", "youpin", "négro",
		"sous-race", "untermensch", "suprémaciste", "supremacist", "sexist", "sexiste",
		"discriminate", "discriminer", "hate", "haine", "haïr", "hais", "hait",
	},
	moderation.CategoryHarassment: {
		"idiot", "imbécile", "crétin", "débile", "stupid", "stupide", "moron", "loser", "nul",
		"minable", "abruti", "harass", "harceler", "harcèlement", "harassment", "humiliate",
		"humilier", "pathetic", "pathétique", "ugly", "moche", "worthless",
	},
	moderation.CategorySelfHarm: {
		"suicide", "suicider", "suicidal", "suicidaire", "self-harm", "automutilation",
		"scarifier", "scarification", "overdose", "pendre",
	},
	moderation.CategorySexual: {
		"porn", "porno", "pornographie", "pornography", "sexe", "sex", "nude", "nue",
		"nudes", "xxx", "érotique", "erotic", "orgasme", "orgasm", "prostitution", "escort",
	},
	moderation.CategoryViolence: {
		"kill", "tuer", "tue", "murder", "meurtre", "assassiner", "assassinate", "massacre",
		"massacrer", "attack", "attaquer", "bomb", "bombe", "terror", "terrorist", "terroriste",
		"terrorisme", "shoot", "fusiller", "égorger", "frapper", "violence", "violent",
		"threat", "menace", "menacer", "destroy", "détruire", "die", "crever",
	},
	moderation.CategoryProfanity: {
		"merde", "putain", "connard", "connasse", "salope", "enculé", "bordel", "foutre",
		"chier", "fuck", "fucking", "shit", "bitch", "bastard", "asshole", "damn", "crap",
		"dick", "cunt", "conne", "pute", "batard", "bâtard",
	},
}
