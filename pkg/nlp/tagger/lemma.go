package tagger

import (
	"strings"
	"unicode/utf8"
)

// Lemmatize reduces inflected forms to a grouping key. It only undoes number
// inflection (plurals) and possessives; other forms are kept as written.
func Lemmatize(lower string, lang Language) string {
	if utf8.RuneCountInString(lower) <= 3 {
		return lower
	}
	if lang == English {
		return lemmatizeEnglish(lower)
	}
	return lemmatizeFrench(lower)
}

func lemmatizeFrench(w string) string {
	switch {
	case strings.HasSuffix(w, "eaux"):
		return strings.TrimSuffix(w, "x")
	case strings.HasSuffix(w, "aux") && utf8.RuneCountInString(w) > 5:
		return strings.TrimSuffix(w, "aux") + "al"
	case strings.HasSuffix(w, "ss"):
		return w
	case strings.HasSuffix(w, "s"), strings.HasSuffix(w, "x"):
		if isInvariantFrench(w) {
			return w
		}
		return w[:len(w)-1]
	}
	return w
}

func lemmatizeEnglish(w string) string {
	switch {
	case strings.HasSuffix(w, "'s"):
		return strings.TrimSuffix(w, "'s")
	case strings.HasSuffix(w, "ies") && utf8.RuneCountInString(w) > 4:
		return strings.TrimSuffix(w, "ies") + "y"
	case strings.HasSuffix(w, "sses"), strings.HasSuffix(w, "shes"), strings.HasSuffix(w, "ches"), strings.HasSuffix(w, "xes"):
		return strings.TrimSuffix(w, "es")
	case strings.HasSuffix(w, "ss"), strings.HasSuffix(w, "us"), strings.HasSuffix(w, "is"):
		return w
	case strings.HasSuffix(w, "s"):
		return strings.TrimSuffix(w, "s")
	}
	return w
}

// isInvariantFrench catches common words whose singular already ends in s or x.
func isInvariantFrench(w string) bool {
	switch w {
	case "prix", "choix", "voix", "paix", "croix", "temps", "corps", "succès", "process", "accès", "procès",
		"progrès", "discours", "cours", "concours", "parcours", "recours", "secours", "fois", "mois", "pays",
		"avis", "devis", "souris", "tapis", "bas", "gras", "repas", "index", "linux", "box", "fax", "mix":
		return true
	}
	return strings.HasSuffix(w, "ais") || strings.HasSuffix(w, "ois") && len(w) > 5
}
