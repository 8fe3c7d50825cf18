package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/freecell-solver/freecell-solver/cards"
	"github.com/freecell-solver/freecell-solver/freecell"
)

func parseCard(t *testing.T, s string) cards.Card {
	t.Helper()
	c, err := cards.ParseCard(s)
	require.NoError(t, err)
	return c
}

func fullAscendingDeal(t *testing.T) [52]cards.Card {
	var deal [52]cards.Card
	suits := []string{"D", "C", "S", "H"}
	idx := 0
	for _, s := range suits {
		for r := 1; r <= 13; r++ {
			var rs string
			switch {
			case r < 10:
				rs = string(rune('0' + r))
			default:
				rs = []string{"10", "11", "12", "13"}[r-10]
			}
			deal[idx] = parseCard(t, rs+s)
			idx++
		}
	}
	return deal
}

func TestHeuristicOfWonStateIsZero(t *testing.T) {
	var gs freecell.GameState
	for i := range gs.Cascades {
		gs.Cascades[i] = []cards.Card{}
	}
	gs.Foundations = [4]uint8{13, 13, 13, 13}
	assert.Equal(t, 0, Heuristic(gs))
}

func TestHeuristicPenalizesFreecellOccupancy(t *testing.T) {
	var empty, occupied freecell.GameState
	for i := range empty.Cascades {
		empty.Cascades[i] = []cards.Card{}
		occupied.Cascades[i] = []cards.Card{}
	}
	occupied.Freecells[0] = freecell.FreecellSlot{Card: parseCard(t, "5D"), Occupied: true}

	assert.Less(t, Heuristic(empty), Heuristic(occupied))
}

func TestHeuristicRewardsInSequenceRuns(t *testing.T) {
	var withRun, withoutRun freecell.GameState
	for i := range withRun.Cascades {
		withRun.Cascades[i] = []cards.Card{}
		withoutRun.Cascades[i] = []cards.Card{}
	}
	withRun.Cascades[0] = []cards.Card{parseCard(t, "10S"), parseCard(t, "9H")}
	withoutRun.Cascades[0] = []cards.Card{parseCard(t, "10S"), parseCard(t, "2H")}

	assert.Less(t, Heuristic(withRun), Heuristic(withoutRun))
}
