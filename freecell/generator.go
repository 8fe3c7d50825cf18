package freecell

import "github.com/freecell-solver/freecell-solver/cards"

// LegalMoves enumerates every legal move from gs exactly once, in the
// fixed generation order the search layer depends on for determinism:
//
//  1. cascade-top to foundation
//  2. freecell to foundation
//  3. per source cascade: cascade-to-cascade blocks (capacity-bounded),
//     then at most one cascade-to-freecell
//  4. freecell to cascade, once per occupied freecell, over every
//     destination cascade (not nested inside the per-source-cascade loop;
//     a freecell card's destination cascade is independent of which
//     cascade is being examined as a block-move source)
//
// LegalMoves is a pure function of gs.
func (gs GameState) LegalMoves() []Move {
	var moves []Move

	for i, col := range gs.Cascades {
		if len(col) == 0 {
			continue
		}
		top := col[len(col)-1]
		if gs.CanMoveToFoundation(top) {
			moves = append(moves, Move{Kind: ColToFoundation, Source: i, PileSize: 1})
		}
	}

	for i, slot := range gs.Freecells {
		if slot.Occupied && gs.CanMoveToFoundation(slot.Card) {
			moves = append(moves, Move{Kind: FreecellToFoundation, Source: i, PileSize: 1})
		}
	}

	emptyFreecells := gs.CountFreeCells()
	emptyCascades := gs.CountEmptyCascades()

	for i, src := range gs.Cascades {
		if len(src) == 0 {
			continue
		}
		seqLen := sequenceLength(src)

		for j, dest := range gs.Cascades {
			if j == i {
				continue
			}
			destEmpty := len(dest) == 0
			if seqLen == len(src) && destEmpty {
				continue
			}

			capacity := moveCapacity(emptyFreecells, emptyCascades, destEmpty)
			maxPile := seqLen
			if capacity < maxPile {
				maxPile = capacity
			}

			for pileSize := 1; pileSize <= maxPile; pileSize++ {
				if destEmpty {
					moves = append(moves, Move{Kind: ColToCol, Source: i, Dest: j, PileSize: pileSize})
					continue
				}
				blockBottom := src[len(src)-pileSize]
				if CanStackOn(dest[len(dest)-1], blockBottom) {
					moves = append(moves, Move{Kind: ColToCol, Source: i, Dest: j, PileSize: pileSize})
				}
			}
		}

		if fc, ok := firstEmptyFreecell(gs.Freecells); ok {
			moves = append(moves, Move{Kind: ColToFreecell, Source: i, Dest: fc, PileSize: 1})
		}
	}

	for i, slot := range gs.Freecells {
		if !slot.Occupied {
			continue
		}
		for j, dest := range gs.Cascades {
			if len(dest) == 0 {
				moves = append(moves, Move{Kind: FreecellToCol, Source: i, Dest: j, PileSize: 1})
				continue
			}
			if CanStackOn(dest[len(dest)-1], slot.Card) {
				moves = append(moves, Move{Kind: FreecellToCol, Source: i, Dest: j, PileSize: 1})
			}
		}
	}

	return moves
}

// sequenceLength walks col from the top downward, counting the length of
// the maximal in-sequence suffix.
func sequenceLength(col []cards.Card) int {
	if len(col) == 0 {
		return 0
	}
	n := 1
	for i := len(col) - 1; i > 0; i-- {
		if CanStackOn(col[i-1], col[i]) {
			n++
		} else {
			break
		}
	}
	return n
}

func firstEmptyFreecell(freecells [numFreecells]FreecellSlot) (int, bool) {
	for i, f := range freecells {
		if !f.Occupied {
			return i, true
		}
	}
	return 0, false
}
