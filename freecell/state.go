// Package freecell implements the FreeCell game-state model: construction
// from a deal, the stacking and capacity rules, move application with
// automatic foundation promotion, and canonical hashing for deduplication.
package freecell

import (
	"fmt"
	"sort"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/pkg/errors"

	"github.com/freecell-solver/freecell-solver/cards"
)

const (
	numCascades   = 8
	numFreecells  = 4
	numFoundation = 4
)

// FreecellSlot is one of the four single-card holding slots. Occupied is
// false when the slot is empty; Card is only meaningful when Occupied.
type FreecellSlot struct {
	Card     cards.Card
	Occupied bool
}

// GameState is the full FreeCell position: eight cascades, four freecells,
// four foundation counters (indexed by cards.Suit). Values are immutable in
// practice: every operation that changes a GameState returns a new one,
// so a parent retained by the search frontier is never mutated by
// expanding it.
type GameState struct {
	Cascades    [numCascades][]cards.Card
	Freecells   [numFreecells]FreecellSlot
	Foundations [numFoundation]uint8
}

// NewGameState deals 52 distinct cards round-robin across the eight
// cascades (card i to cascade i mod 8, appended to its tail) and then runs
// automatic foundation promotion to a fixpoint. The result is the search
// root.
func NewGameState(deal [52]cards.Card) (GameState, error) {
	seen := make(map[cards.Card]bool, 52)
	for _, c := range deal {
		if c.Rank < 1 || c.Rank > 13 || c.Suit > cards.Heart {
			return GameState{}, errors.Errorf("freecell: invalid card %s in deal", c)
		}
		if seen[c] {
			return GameState{}, errors.Errorf("freecell: duplicate card %s in deal", c)
		}
		seen[c] = true
	}

	var gs GameState
	for i := range gs.Cascades {
		gs.Cascades[i] = make([]cards.Card, 0, 7)
	}
	for i, c := range deal {
		col := i % numCascades
		gs.Cascades[col] = append(gs.Cascades[col], c)
	}

	gs.promote()
	return gs, nil
}

// clone returns a deep copy of gs. Every cascade slice is freshly
// allocated with cap == len, so a later append on the clone always
// reallocates and never aliases the parent's backing array.
func (gs GameState) clone() GameState {
	var out GameState
	for i, col := range gs.Cascades {
		out.Cascades[i] = make([]cards.Card, len(col))
		copy(out.Cascades[i], col)
	}
	out.Freecells = gs.Freecells
	out.Foundations = gs.Foundations
	return out
}

// CanStackOn reports whether "above" may be placed directly on top of
// "below" within a cascade: opposite colors, descending by exactly one
// rank.
func CanStackOn(below, above cards.Card) bool {
	return below.Color() != above.Color() && below.Rank == above.Rank+1
}

// CanMoveToFoundation reports whether c may be placed on its suit's
// foundation given the current foundation counters.
func (gs GameState) CanMoveToFoundation(c cards.Card) bool {
	return gs.Foundations[c.Suit]+1 == c.Rank
}

// CountFreeCells returns the number of empty freecells.
func (gs GameState) CountFreeCells() int {
	n := 0
	for _, f := range gs.Freecells {
		if !f.Occupied {
			n++
		}
	}
	return n
}

// CountEmptyCascades returns the number of cascades with no cards.
func (gs GameState) CountEmptyCascades() int {
	n := 0
	for _, col := range gs.Cascades {
		if len(col) == 0 {
			n++
		}
	}
	return n
}

// IsWon reports whether every foundation holds all 13 ranks.
func (gs GameState) IsWon() bool {
	for _, f := range gs.Foundations {
		if f != 13 {
			return false
		}
	}
	return true
}

// moveCapacity computes the maximum block size movable between cascades
// given emptyFreecells and emptyCascades, per the (1+F)*2^E rule capped at
// 13. destEmpty shrinks the usable empty-cascade count by one, since the
// destination itself cannot serve as its own temporary.
func moveCapacity(emptyFreecells, emptyCascades int, destEmpty bool) int {
	e := emptyCascades
	if destEmpty {
		e = e - 1
		if e < 0 {
			e = 0
		}
	}
	capacity := (1 + emptyFreecells) * (1 << uint(e))
	if capacity > 13 {
		capacity = 13
	}
	return capacity
}

// promote mutates gs in place, repeatedly moving any cascade-top or
// freecell card that is foundation-eligible until no such card remains.
// Order is immaterial: each promotion consumes a distinct card, and a card
// that is eligible stays eligible until it is itself promoted.
func (gs *GameState) promote() {
	for {
		progressed := false

		for i := range gs.Cascades {
			col := gs.Cascades[i]
			if len(col) == 0 {
				continue
			}
			top := col[len(col)-1]
			if gs.CanMoveToFoundation(top) {
				gs.Cascades[i] = col[:len(col)-1]
				gs.Foundations[top.Suit] = top.Rank
				progressed = true
			}
		}

		for i := range gs.Freecells {
			slot := gs.Freecells[i]
			if !slot.Occupied {
				continue
			}
			if gs.CanMoveToFoundation(slot.Card) {
				gs.Foundations[slot.Card.Suit] = slot.Card.Rank
				gs.Freecells[i] = FreecellSlot{}
				progressed = true
			}
		}

		if !progressed {
			return
		}
	}
}

// Apply produces a new GameState by removing m.PileSize cards from the
// source, placing them at the destination, and running automatic
// foundation promotion to fixpoint. It validates the preconditions the
// generator guarantees, so it is safe to call with externally constructed
// moves (e.g. in tests) without corrupting invariants.
func (gs GameState) Apply(m Move) (GameState, error) {
	next := gs.clone()

	switch m.Kind {
	case ColToFoundation:
		col := next.Cascades[m.Source]
		if len(col) == 0 {
			return GameState{}, errors.Errorf("freecell: ColToFoundation from empty cascade %d", m.Source)
		}
		top := col[len(col)-1]
		if !next.CanMoveToFoundation(top) {
			return GameState{}, errors.Errorf("freecell: %s cannot move to foundation", top)
		}
		next.Cascades[m.Source] = col[:len(col)-1]
		next.Foundations[top.Suit] = top.Rank

	case FreecellToFoundation:
		slot := next.Freecells[m.Source]
		if !slot.Occupied {
			return GameState{}, errors.Errorf("freecell: FreecellToFoundation from empty freecell %d", m.Source)
		}
		if !next.CanMoveToFoundation(slot.Card) {
			return GameState{}, errors.Errorf("freecell: %s cannot move to foundation", slot.Card)
		}
		next.Foundations[slot.Card.Suit] = slot.Card.Rank
		next.Freecells[m.Source] = FreecellSlot{}

	case ColToFreecell:
		if m.PileSize != 1 {
			return GameState{}, errors.Errorf("freecell: ColToFreecell pile_size must be 1, got %d", m.PileSize)
		}
		col := next.Cascades[m.Source]
		if len(col) == 0 {
			return GameState{}, errors.Errorf("freecell: ColToFreecell from empty cascade %d", m.Source)
		}
		if next.Freecells[m.Dest].Occupied {
			return GameState{}, errors.Errorf("freecell: freecell %d already occupied", m.Dest)
		}
		top := col[len(col)-1]
		next.Cascades[m.Source] = col[:len(col)-1]
		next.Freecells[m.Dest] = FreecellSlot{Card: top, Occupied: true}

	case FreecellToCol:
		if m.PileSize != 1 {
			return GameState{}, errors.Errorf("freecell: FreecellToCol pile_size must be 1, got %d", m.PileSize)
		}
		slot := next.Freecells[m.Source]
		if !slot.Occupied {
			return GameState{}, errors.Errorf("freecell: FreecellToCol from empty freecell %d", m.Source)
		}
		dest := next.Cascades[m.Dest]
		if len(dest) > 0 && !CanStackOn(dest[len(dest)-1], slot.Card) {
			return GameState{}, errors.Errorf("freecell: %s cannot stack on %s", slot.Card, dest[len(dest)-1])
		}
		next.Cascades[m.Dest] = append(dest, slot.Card)
		next.Freecells[m.Source] = FreecellSlot{}

	case ColToCol:
		src := next.Cascades[m.Source]
		if m.PileSize < 1 || m.PileSize > len(src) {
			return GameState{}, errors.Errorf("freecell: ColToCol pile_size %d invalid for source length %d", m.PileSize, len(src))
		}
		block := src[len(src)-m.PileSize:]
		dest := next.Cascades[m.Dest]
		if len(dest) > 0 && !CanStackOn(dest[len(dest)-1], block[0]) {
			return GameState{}, errors.Errorf("freecell: block head %s cannot stack on %s", block[0], dest[len(dest)-1])
		}
		newDest := make([]cards.Card, len(dest)+m.PileSize)
		copy(newDest, dest)
		copy(newDest[len(dest):], block)
		next.Cascades[m.Dest] = newDest
		next.Cascades[m.Source] = src[:len(src)-m.PileSize]

	default:
		return GameState{}, errors.Errorf("freecell: unknown move kind %v", m.Kind)
	}

	next.promote()
	return next, nil
}

// Hash returns a 64-bit canonical fingerprint: the eight cascade encodings
// and the four freecell encodings are each sorted before hashing, so
// states that differ only by a permutation of cascade or freecell indices
// hash identically.
func (gs GameState) Hash() uint64 {
	colKeys := make([]string, numCascades)
	for i, col := range gs.Cascades {
		b := make([]byte, len(col))
		for j, c := range col {
			b[j] = c.Encode()
		}
		colKeys[i] = string(b)
	}
	sort.Strings(colKeys)

	fcKeys := make([]byte, numFreecells)
	for i, slot := range gs.Freecells {
		if slot.Occupied {
			fcKeys[i] = slot.Card.Encode()
		}
	}
	sort.Slice(fcKeys, func(i, j int) bool { return fcKeys[i] < fcKeys[j] })

	h := xxhash.New()
	for _, k := range colKeys {
		h.Write([]byte(k))
		h.Write([]byte{0xFF}) // cascade delimiter, distinct from any encoded byte (suit<<4|rank <= 0x3D)
	}
	h.Write(fcKeys)
	for _, f := range gs.Foundations {
		h.Write([]byte{f})
	}
	return h.Sum64()
}

// String renders a human-readable board dump: one line per cascade, then
// the freecells, then the foundation counters.
func (gs GameState) String() string {
	var b strings.Builder
	for i, col := range gs.Cascades {
		fmt.Fprintf(&b, "C%d:", i)
		for _, c := range col {
			fmt.Fprintf(&b, " %s", c.Display())
		}
		b.WriteByte('\n')
	}
	b.WriteString("FC:")
	for _, f := range gs.Freecells {
		if f.Occupied {
			fmt.Fprintf(&b, " %s", f.Card.Display())
		} else {
			b.WriteString(" --")
		}
	}
	b.WriteByte('\n')
	b.WriteString("FD:")
	for suit := cards.Diamond; suit <= cards.Heart; suit++ {
		fmt.Fprintf(&b, " %s:%d", suit.Display(), gs.Foundations[suit])
	}
	return b.String()
}
