// Package search implements the best-first solving engine: the heuristic
// evaluator, the priority frontier, and the solver loop that ties them to
// the freecell package's state model.
package search

import "github.com/freecell-solver/freecell-solver/freecell"

// Heuristic scores a state: lower is better. It is deliberately not
// admissible (it mixes a progress reward with penalties), so the engine
// it drives is best-first, not optimal A*.
func Heuristic(gs freecell.GameState) int {
	remaining := 0
	for _, f := range gs.Foundations {
		remaining += int(f)
	}
	score := (52 - remaining) * 10

	sequenceBonus := 0
	inversionPenalty := 0
	for _, col := range gs.Cascades {
		for i := 1; i < len(col); i++ {
			lower, upper := col[i-1], col[i]
			if freecell.CanStackOn(lower, upper) {
				sequenceBonus += 3
			}
			if lower.Rank < upper.Rank {
				inversionPenalty += 5
			}
		}
	}
	score -= sequenceBonus

	score += (4 - gs.CountFreeCells()) * 5
	score += inversionPenalty

	return score
}
