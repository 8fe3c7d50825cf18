package freecell

// Kind identifies which of the five move shapes a Move represents.
type Kind uint8

const (
	ColToFoundation Kind = iota
	FreecellToFoundation
	ColToFreecell
	FreecellToCol
	ColToCol
)

func (k Kind) String() string {
	switch k {
	case ColToFoundation:
		return "ColToFoundation"
	case FreecellToFoundation:
		return "FreecellToFoundation"
	case ColToFreecell:
		return "ColToFreecell"
	case FreecellToCol:
		return "FreecellToCol"
	case ColToCol:
		return "ColToCol"
	default:
		return "Unknown"
	}
}

// Move is a single legal transition. Source and Dest are interpreted
// according to Kind: cascade indices (0..7) for Col-prefixed endpoints,
// freecell indices (0..3) for Freecell-prefixed endpoints. The foundation
// destination of a *ToFoundation move is implicit in the moved card's suit,
// so Dest is unused for those two kinds.
type Move struct {
	Kind     Kind
	Source   int
	Dest     int
	PileSize int
}
