// Package deal implements the deal-acquisition sources that produce the
// initial 52-card deck: a reproducible random shuffle, and a
// screenshot/OCR source.
package deal

import (
	"math/rand/v2"

	"github.com/freecell-solver/freecell-solver/cards"
)

// Random yields a uniformly shuffled permutation of the standard 52-card
// deck. A fixed Seed makes a run reproducible, which is what lets a test
// or a bug report replay an exact deal.
type Random struct {
	Seed int64
}

// Deal returns a freshly shuffled 52-card deck.
func (r Random) Deal() [52]cards.Card {
	deck := cards.StandardDeck()
	src := rand.New(rand.NewPCG(uint64(r.Seed), uint64(r.Seed>>32)|1))
	src.Shuffle(len(deck), func(i, j int) {
		deck[i], deck[j] = deck[j], deck[i]
	})
	return deck
}
