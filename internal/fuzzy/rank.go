package fuzzy

import "sort"

// Scored pairs a candidate label with its similarity to the in-progress
// value.
type Scored struct {
	Label      string
	Similarity float64
}

// RankFilter scores every candidate against query, drops anything below
// threshold, sorts by descending similarity then ascending label, and caps
// the result at max items. The second return reports whether the result
// was truncated; callers mark their response incomplete when this is
// true.
func RankFilter(query string, candidates []string, threshold float64, max int) ([]Scored, bool) {
	scored := make([]Scored, 0, len(candidates))
	for _, c := range candidates {
		sim := Similarity(query, c)
		if sim >= threshold {
			scored = append(scored, Scored{Label: c, Similarity: sim})
		}
	}
	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].Similarity != scored[j].Similarity {
			return scored[i].Similarity > scored[j].Similarity
		}
		return scored[i].Label < scored[j].Label
	})
	incomplete := false
	if max > 0 && len(scored) > max {
		scored = scored[:max]
		incomplete = true
	}
	return scored, incomplete
}
