package payoff

import (
	"sort"
)

// Rank maps candidate actions to expected values (value weighted by
// confidence) sorted descending. The sort is stable: ties keep input order.
// Pure and deterministic; malformed numeric input is coerced, never rejected.
func Rank(actions []ActionEntry) []EVResult {
	results := make([]EVResult, 0, len(actions))
	for _, a := range actions {
		est := a.Estimate.Sanitize()
		results = append(results, EVResult{
			Actor:   a.Actor,
			Action:  a.Action,
			EV:      est.Value * est.Confidence,
			Sources: est.Sources,
		})
	}
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].EV > results[j].EV
	})
	return results
}

// TopEV returns the highest expected value in a ranking, or 0 for an empty set.
func TopEV(ranked []EVResult) float64 {
	if len(ranked) == 0 {
		return 0
	}
	return ranked[0].EV
}
