package moderation

// Verdict is one provider's classification expressed in the normalized taxonomy.
type Verdict struct {
	Flagged        bool                   `json:"flagged" msgpack:"flagged"`
	Categories     map[Category]bool      `json:"categories" msgpack:"categories"`
	CategoryScores map[Category]float64   `json:"category_scores" msgpack:"category_scores"`
	Provider       string                 `json:"provider" msgpack:"provider"`
	Raw            map[string]interface{} `json:"original_response,omitempty" msgpack:"original_response,omitempty"`
}

func NewVerdict(provider string) *Verdict {
	return &Verdict{
		Categories:     make(map[Category]bool),
		CategoryScores: make(map[Category]float64),
		Provider:       provider,
	}
}

// Set records a category result. When several raw names collapse onto the same
// category, the flag is ORed and the highest score kept.
func (v *Verdict) Set(c Category, flagged bool, score float64) {
	score = clamp(score)
	if prev, ok := v.CategoryScores[c]; ok && prev > score {
		score = prev
	}
	v.CategoryScores[c] = score
	v.Categories[c] = v.Categories[c] || flagged
}

// SetRaw normalizes the provider name before recording it.
func (v *Verdict) SetRaw(rawCategory string, flagged bool, score float64) {
	v.Set(NormalizeCategory(rawCategory), flagged, score)
}

// Finalize enforces Flagged == any(Categories).
func (v *Verdict) Finalize() *Verdict {
	v.Flagged = false
	for _, flagged := range v.Categories {
		if flagged {
			v.Flagged = true
			break
		}
	}
	return v
}

// FlaggedCategories returns the flagged categories in taxonomy order.
func (v *Verdict) FlaggedCategories() []Category {
	out := make([]Category, 0, len(v.Categories))
	for _, c := range Categories {
		if v.Categories[c] {
			out = append(out, c)
		}
	}
	return out
}

// StringMaps converts to plain string-keyed maps for storage and JSON payloads.
func (v *Verdict) StringMaps() (map[string]bool, map[string]float64) {
	cats := make(map[string]bool, len(v.Categories))
	for c, f := range v.Categories {
		cats[string(c)] = f
	}
	scores := make(map[string]float64, len(v.CategoryScores))
	for c, s := range v.CategoryScores {
		scores[string(c)] = s
	}
	return cats, scores
}

func clamp(score float64) float64 {
	switch {
	case score != score: // NaN
		return 0
	case score < 0:
		return 0
	case score > 1:
		return 1
	default:
		return score
	}
}
