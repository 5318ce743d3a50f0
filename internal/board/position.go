package board

// Position is the "Bitboards" record of the data model: everything a
// single parsed FEN-like string yields. Position values are constructed
// fresh per query (§5: "Position records are value-typed") — nothing here
// is shared or mutated concurrently once Parse returns.
type Position struct {
	// Occupancy is the union of every bitboard in PieceBoards (invariant
	// I1).
	Occupancy Bitboard
	// WhiteOccupancy and BlackOccupancy are the per-side occupancy
	// bitboards; their intersection is exactly the neutral squares
	// (invariant I3).
	WhiteOccupancy Bitboard
	BlackOccupancy Bitboard
	// PieceBoards maps each FEN piece letter seen in this position to its
	// bitboard. Keys are the exact byte that appeared in the FEN string
	// (case distinguishes color, per the FEN tradition).
	PieceBoards map[byte]Bitboard
	// QuantumState is an opaque, ordered sequence of auxiliary bitboard
	// planes. The core never interprets these beyond hashing them (J).
	QuantumState []Bitboard

	WhiteToMove bool
	WKCastle    bool
	WQCastle    bool
	BKCastle    bool
	BQCastle    bool

	// EnPassantSq has at most one bit set (invariant I4).
	EnPassantSq Bitboard

	HalfmoveClock  int
	FullmoveNumber int

	// ZobristHash caches the J-computed fingerprint of this position.
	// Parse does not populate it (hashing is a separate, composable
	// concern, per spec §2); callers that need it call zobrist.Hash and
	// store the result here themselves if they want the cache-consistency
	// invariant I5 to hold.
	ZobristHash uint64

	// RepetitionTable maps a position hash to the number of times it has
	// been observed; the core never writes to it, it is state a caller
	// threading positions through a game can maintain.
	RepetitionTable map[uint64]int
}

// NewPosition returns an empty Position with its maps allocated.
func NewPosition() *Position {
	return &Position{
		PieceBoards:     make(map[byte]Bitboard),
		RepetitionTable: make(map[uint64]int),
	}
}

// CheckInvariants verifies I1-I4 against the current field values and
// returns a description of the first violation found, or "" if the
// position is internally consistent. It never mutates p and is intended
// for tests and defensive callers, not the hot query path.
func (p *Position) CheckInvariants() string {
	var union Bitboard
	for _, bb := range p.PieceBoards {
		union |= bb
	}
	if union != p.Occupancy {
		return "I1 violated: occupancy is not the union of piece_boards"
	}
	neutral := p.WhiteOccupancy & p.BlackOccupancy
	// I2: outside the neutral squares, no square is set in two piece
	// boards.
	var seen Bitboard
	for _, bb := range p.PieceBoards {
		if bb&seen&^neutral != 0 {
			return "I2 violated: a non-neutral square holds more than one piece"
		}
		seen |= bb
	}
	// I3: white_occupancy & black_occupancy must equal the set of
	// neutral squares. We cannot re-derive "neutral" independently
	// without piece-level color metadata, so this checks the weaker but
	// still meaningful property that every neutral square is occupied by
	// some piece.
	if neutral&^p.Occupancy != 0 {
		return "I3 violated: neutral squares not present in occupancy"
	}
	if p.EnPassantSq.PopCount() > 1 {
		return "I4 violated: en_passant_sq has more than one bit set"
	}
	return ""
}
