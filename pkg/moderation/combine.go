package moderation

const CombinedProviderName = "combined"

// Combine merges provider verdicts: the category set is the union of all keys,
// a category is flagged if any provider flagged it, and its score is the maximum
// reported. Missing categories count as unflagged with score 0. Nil verdicts are skipped.
func Combine(verdicts ...*Verdict) *Verdict {
	out := NewVerdict(CombinedProviderName)
	for _, v := range verdicts {
		if v == nil {
			continue
		}
		for c := range v.Categories {
			out.Set(c, v.Categories[c], v.CategoryScores[c])
		}
		// scores reported without a flag entry still widen the universe
		for c, s := range v.CategoryScores {
			if _, ok := v.Categories[c]; !ok {
				out.Set(c, false, s)
			}
		}
	}
	return out.Finalize()
}
