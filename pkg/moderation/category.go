package moderation

import "strings"

// Category is one bucket of the closed toxicity taxonomy.
type Category string

const (
	CategoryHate       Category = "hate"
	CategoryHarassment Category = "harassment"
	CategorySelfHarm   Category = "self_harm"
	CategorySexual     Category = "sexual"
	CategoryViolence   Category = "violence"
	CategoryProfanity  Category = "profanity"
	CategoryOther      Category = "other"
)

// Categories lists the taxonomy in display order.
var Categories = []Category{
	CategoryHate,
	CategoryHarassment,
	CategorySelfHarm,
	CategorySexual,
	CategoryViolence,
	CategoryProfanity,
	CategoryOther,
}

// NormalizeCategory maps a provider category name onto the taxonomy. It never fails:
// unknown names land in CategoryOther so their score still counts.
// Sub-categories such as "hate/threatening" or "self-harm/intent" map on their prefix.
func NormalizeCategory(raw string) Category {
	name := strings.ToLower(strings.TrimSpace(raw))
	if i := strings.IndexByte(name, '/'); i > 0 {
		name = name[:i]
	}
	switch name {
	case "sexual", "sexual_explicit":
		return CategorySexual
	case "hate", "identity_attack":
		return CategoryHate
	case "harassment", "insult", "insults":
		return CategoryHarassment
	case "self-harm", "self_harm", "selfharm":
		return CategorySelfHarm
	case "violence", "violent", "threat":
		return CategoryViolence
	case "profanity", "profane", "obscene":
		return CategoryProfanity
	case "toxicity", "severe_toxicity":
		return CategoryOther
	default:
		return CategoryOther
	}
}
