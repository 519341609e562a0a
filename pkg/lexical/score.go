package lexical

// Score is the Jaccard similarity |a∩b| / |a∪b|. Two empty sets score 0.
func Score(a, b TokenSet) float64 {
	small, large := a, b
	if len(small) > len(large) {
		small, large = large, small
	}

	inter := 0
	for tok := range small {
		if large.Has(tok) {
			inter++
		}
	}

	union := len(a) + len(b) - inter
	if union == 0 {
		return 0
	}
	return float64(inter) / float64(union)
}

// Match is the outcome of BestMatch.
type Match struct {
	Index int
	Score float64
}

// Accepted reports whether the match may be used as an answer.
func (m Match) Accepted() bool {
	return m.Index >= 0 && m.Score > 0
}

// BestMatch scores query against each candidate in order. Candidates with an
// empty token set are never considered. Ties keep the earliest candidate.
// Index is -1 when no candidate scored above zero.
func BestMatch(query TokenSet, candidates []TokenSet) Match {
	best := Match{Index: -1}
	for i, cand := range candidates {
		if len(cand) == 0 {
			continue
		}
		if s := Score(query, cand); s > best.Score {
			best = Match{Index: i, Score: s}
		}
	}
	return best
}
