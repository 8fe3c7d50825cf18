package search

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/freecell-solver/freecell-solver/cards"
	"github.com/freecell-solver/freecell-solver/deal"
	"github.com/freecell-solver/freecell-solver/freecell"
)

// descendingDeal deals rank-major descending (13D,13C,13S,13H,12D,...,1H).
// Round-robin, this leaves every ace and two on a cascade top, so
// construction-time auto-promotion chains all the way up and clears the
// whole board.
func descendingDeal(t *testing.T) [52]cards.Card {
	t.Helper()
	var d [52]cards.Card
	idx := 0
	for r := 13; r >= 1; r-- {
		for s := cards.Diamond; s <= cards.Heart; s++ {
			d[idx] = cards.Card{Rank: uint8(r), Suit: s}
			idx++
		}
	}
	return d
}

func TestSolveAlreadyWon(t *testing.T) {
	var gs freecell.GameState
	for i := range gs.Cascades {
		gs.Cascades[i] = []cards.Card{}
	}
	gs.Foundations = [4]uint8{13, 13, 13, 13}

	s := NewSolver(gs)
	result, err := s.Solve(context.Background(), 1000)
	require.NoError(t, err)

	assert.Equal(t, Solved, result.Outcome)
	assert.Empty(t, result.Moves)
	assert.Equal(t, 1, result.NodesExplored)
}

func TestSolveOneMoveWin(t *testing.T) {
	var gs freecell.GameState
	for i := range gs.Cascades {
		gs.Cascades[i] = []cards.Card{}
	}
	kingOfDiamonds, err := cards.ParseCard("13D")
	require.NoError(t, err)
	gs.Cascades[0] = []cards.Card{kingOfDiamonds}
	gs.Foundations = [4]uint8{12, 13, 13, 13}

	s := NewSolver(gs)
	result, err := s.Solve(context.Background(), 1000)
	require.NoError(t, err)

	assert.Equal(t, Solved, result.Outcome)
	require.Len(t, result.Moves, 1)
	assert.Equal(t, freecell.ColToFoundation, result.Moves[0].Kind)

	replayed := gs
	for _, m := range result.Moves {
		replayed, err = replayed.Apply(m)
		require.NoError(t, err)
	}
	assert.True(t, replayed.IsWon())
}

func TestSolveTrivialDescendingDeal(t *testing.T) {
	gs, err := freecell.NewGameState(descendingDeal(t))
	require.NoError(t, err)

	s := NewSolver(gs)
	result, err := s.Solve(context.Background(), 1000)
	require.NoError(t, err)

	assert.Equal(t, Solved, result.Outcome)
	assert.Empty(t, result.Moves, "auto-promotion clears the whole deal at construction")
	assert.Equal(t, 1, result.NodesExplored)
}

func TestSolveFindsPathAndReplayWins(t *testing.T) {
	// The descending deal with 1D and 3D swapped: clubs, spades, and
	// hearts still auto-clear at construction, but diamonds jam behind
	// the out-of-order 3D on cascade 0. A single move unburying 1D lets
	// promotion finish the suit.
	d := descendingDeal(t)
	d[40], d[48] = d[48], d[40] // 3D <-> 1D

	gs, err := freecell.NewGameState(d)
	require.NoError(t, err)
	require.False(t, gs.IsWon())

	s := NewSolver(gs)
	result, err := s.Solve(context.Background(), 10000)
	require.NoError(t, err)

	require.Equal(t, Solved, result.Outcome)
	assert.NotEmpty(t, result.Moves)
	assert.LessOrEqual(t, len(result.Moves), 20)

	replayed := gs
	for _, m := range result.Moves {
		replayed, err = replayed.Apply(m)
		require.NoError(t, err)
	}
	assert.True(t, replayed.IsWon())
}

func TestSolveBudgetCutoffOnRandomDeal(t *testing.T) {
	gs, err := freecell.NewGameState(deal.Random{Seed: 1}.Deal())
	require.NoError(t, err)

	s := NewSolver(gs)
	result, err := s.Solve(context.Background(), 10)
	require.NoError(t, err)

	assert.Equal(t, BudgetCut, result.Outcome)
	assert.Equal(t, 10, result.NodesExplored)
}

func TestSolveBudgetCutoff(t *testing.T) {
	gs, err := freecell.NewGameState(fullAscendingDeal(t))
	require.NoError(t, err)

	s := NewSolver(gs)
	result, err := s.Solve(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, BudgetCut, result.Outcome)
	assert.Equal(t, 1, result.NodesExplored)
}

func TestSolveRespectsContextCancellation(t *testing.T) {
	gs, err := freecell.NewGameState(fullAscendingDeal(t))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := NewSolver(gs)
	_, err = s.Solve(ctx, 1000000)
	assert.Error(t, err)
}
