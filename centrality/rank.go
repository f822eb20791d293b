package centrality

import "sort"

// Ranked is a list of scores ordered by value descending, then ID ascending.
type Ranked []Score

// Rank orders s for display in a bar chart or leaderboard.
func Rank(s Scores) Ranked {
	out := make(Ranked, 0, len(s))
	for id, v := range s {
		out = append(out, Score{ID: id, Value: v})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Value != out[j].Value {
			return out[i].Value > out[j].Value
		}
		return out[i].ID < out[j].ID
	})

	return out
}

// Top returns the first k entries; k <= 0 or k > len(r) returns all of them.
func (r Ranked) Top(k int) Ranked {
	if k <= 0 || k > len(r) {
		return r
	}

	return r[:k]
}

// ScaleToMax divides every score by the maximum so the largest becomes 1.
// An all-zero (or empty) input is returned as zeros.
func ScaleToMax(s Scores) Scores {
	maxV := 0.0
	for _, v := range s {
		if v > maxV {
			maxV = v
		}
	}
	out := make(Scores, len(s))
	for id, v := range s {
		if maxV > 0 {
			out[id] = v / maxV
		} else {
			out[id] = 0
		}
	}

	return out
}

// Gini measures how unevenly centrality is spread across vertices: 0 when
// every vertex scores the same, approaching 1 when one vertex holds it all.
// Empty, all-zero or single-vertex inputs return 0.
func Gini(s Scores) float64 {
	n := len(s)
	if n < 2 {
		return 0
	}
	vals := make([]float64, 0, n)
	for _, v := range s {
		vals = append(vals, v)
	}
	// Sort before summing so the result does not depend on map order.
	sort.Float64s(vals)

	sum, weighted := 0.0, 0.0
	for i, v := range vals {
		sum += v
		weighted += float64(i+1) * v
	}
	if sum <= 0 {
		return 0
	}
	fn := float64(n)

	return 2*weighted/(fn*sum) - (fn+1)/fn
}
