package keywords

import "strings"

// SourcedKeyword is a keyword tagged with the item it came from.
type SourcedKeyword struct {
	ScoredKeyword
	Source string
}

// Group aggregates keywords from several texts.
type Group struct {
	Text      string   `json:"text"`
	Score     float64  `json:"score"`
	Frequency int      `json:"frequency"`
	Sources   []string `json:"sources"`
}

// GroupKeywords merges keywords case-insensitively. Groups are ordered by
// frequency, ties in first-seen order; the score is the mean of the merged
// scores and the text keeps the casing of the first occurrence. Sources get
// one entry per sourced occurrence, so a keyword found twice in the same item
// lists that item twice.
func GroupKeywords(in []SourcedKeyword) []Group {
	type acc struct {
		group *Group
		sum   float64
	}
	var (
		order []*acc
		index = make(map[string]*acc)
	)
	for _, kw := range in {
		key := strings.ToLower(kw.Text)
		a, ok := index[key]
		if !ok {
			a = &acc{group: &Group{Text: kw.Text, Sources: []string{}}}
			index[key] = a
			order = append(order, a)
		}
		a.group.Frequency++
		a.sum += kw.Score
		if kw.Source != "" {
			a.group.Sources = append(a.group.Sources, kw.Source)
		}
	}

	out := make([]Group, 0, len(order))
	for _, a := range order {
		a.group.Score = a.sum / float64(a.group.Frequency)
		out = append(out, *a.group)
	}
	sortStableByFrequency(out)
	return out
}

func sortStableByFrequency(groups []Group) {
	// insertion sort keeps equal frequencies in first-seen order
	for i := 1; i < len(groups); i++ {
		for j := i; j > 0 && groups[j].Frequency > groups[j-1].Frequency; j-- {
			groups[j], groups[j-1] = groups[j-1], groups[j]
		}
	}
}
