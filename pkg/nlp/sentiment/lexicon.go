package sentiment

// valences range from -4 to 4; keys are lemmas.
var lexicon = map[string]float64{
	// fr
	"bon": 1.9, "bien": 1.6, "excellent": 3.2, "super": 2.6, "génial": 3.1, "parfait": 3.0,
	"heureux": 2.7, "heureuse": 2.7, "content": 2.2, "contente": 2.2, "ravi": 2.6, "ravie": 2.6,
	"succès": 2.6, "réussite": 2.5, "innovant": 1.8, "innovante": 1.8, "efficace": 1.9,
	"fiable": 1.7, "magnifique": 3.0, "agréable": 2.0, "beau": 2.0, "belle": 2.0, "aimer": 2.2,
	"adorer": 3.0, "adore": 3.0, "aime": 2.2, "recommande": 1.8, "satisfait": 2.0, "satisfaite": 2.0,
	"croissance": 1.3, "gagnant": 2.0, "gagner": 1.8, "progrès": 1.7, "qualité": 1.5, "merci": 1.9,
	"mauvais": -2.5, "mauvaise": -2.5, "mal": -2.0, "terrible": -3.0, "horrible": -3.2, "nul": -2.6,
	"nulle": -2.6, "décevant": -2.2, "décevante": -2.2, "déçu": -2.2, "déçue": -2.2, "triste": -2.1,
	"problème": -1.7, "panne": -1.9, "échec": -2.6, "lent": -1.3, "lente": -1.3, "cher": -0.8,
	"chère": -0.8, "détester": -3.0, "déteste": -3.0, "arnaque": -3.1, "danger": -2.2, "dangereux": -2.3,
	"perte": -1.8, "crise": -2.0, "colère": -2.4, "inquiet": -1.6, "inquiète": -1.6, "pire": -3.0,
	// en
	"good": 1.9, "great": 3.1, "awesome": 3.1, "amazing": 2.8, "perfect": 2.7,
	"happy": 2.7, "glad": 2.0, "love": 3.2, "like": 1.5, "nice": 1.8, "best": 3.2, "success": 2.7,
	"win": 2.8, "innovative": 1.9, "reliable": 1.7, "efficient": 1.8, "recommend": 1.5, "thanks": 1.9,
	"growth": 1.2, "enjoy": 2.2, "beautiful": 2.9, "wonderful": 2.7, "impressive": 2.3,
	"bad": -2.5, "poor": -2.1, "awful": -3.1, "worst": -3.1, "hate": -2.7, "sad": -2.1,
	"angry": -2.3, "problem": -1.7, "failure": -2.3, "fail": -2.3, "slow": -1.2, "broken": -2.0,
	"scam": -3.1, "disappointing": -2.2, "disappointed": -2.1, "dangerous": -2.1, "loss": -1.3,
	"crisis": -3.1, "expensive": -0.9, "boring": -1.3, "ugly": -2.3,
}

var negators = map[string]struct{}{
	"ne": {}, "pas": {}, "jamais": {}, "aucun": {}, "aucune": {}, "rien": {}, "sans": {}, "ni": {},
	"not": {}, "no": {}, "never": {}, "none": {}, "nothing": {}, "without": {}, "n't": {}, "nor": {},
}

var boosters = map[string]float64{
	"très": 0.293, "trop": 0.293, "vraiment": 0.293, "extrêmement": 0.4, "tellement": 0.293,
	"absolument": 0.293, "peu": -0.293, "assez": 0.15, "plutôt": -0.1,
	"very": 0.293, "really": 0.293, "extremely": 0.4, "so": 0.293, "absolutely": 0.293,
	"totally": 0.293, "slightly": -0.293, "barely": -0.293, "quite": 0.15,
}
