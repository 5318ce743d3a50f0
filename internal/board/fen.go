package board

import (
	"fmt"
	"strings"

	"github.com/kopptools/variantmove/internal/logging"
	"github.com/kopptools/variantmove/internal/util"
)

var log = logging.GetLog("board")

// StartFen is the standard chess starting position's piece-placement
// field plus the usual trailing fields, kept here the way the teacher
// keeps position.StartFen.
const StartFen = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Parse ingests a FEN-like string (§4.6/§6) into a Position. Only the
// piece-placement field is mandatory; everything after the first space is
// optional and defaults the way the teacher's setupBoard defaults it
// (white to move, no castling rights, no en-passant square, clocks at
// their initial values).
//
// Every character other than '/', '+' and a digit is placed as a piece
// letter. Malformed input (too many or too few ranks, a rank with more or
// fewer than 8 files) is recoverable: Parse logs a diagnostic through
// internal/logging and returns the best-effort partial Position built up
// to the point of failure, alongside a non-nil error describing what went
// wrong. Position is never nil.
func Parse(fen string) (*Position, error) {
	p := NewPosition()

	placement := fen
	if i := strings.IndexByte(fen, ' '); i >= 0 {
		placement = fen[:i]
	}

	rank, file := 7, 0
	neutral := false

	for i := 0; i < len(placement); i++ {
		c := placement[i]
		switch {
		case c == '/':
			if file != 8 {
				err := fmt.Errorf("fen rank %d ended with %d files instead of 8", rank, file)
				log.Warningf("malformed fen: %v", err)
				return p, err
			}
			rank--
			file = 0
			if rank < 0 {
				err := fmt.Errorf("fen has more than 8 ranks")
				log.Warningf("malformed fen: %v", err)
				return p, err
			}
		case c == '+':
			neutral = true
		case util.IsDigit(c):
			file += int(c - '0')
			if file > 8 {
				err := fmt.Errorf("fen rank %d overflowed past file 8", rank)
				log.Warningf("malformed fen: %v", err)
				return p, err
			}
		default:
			if rank < 0 || file > 7 {
				err := fmt.Errorf("fen piece %q at rank %d file %d is out of bounds", string(c), rank, file)
				log.Warningf("malformed fen: %v", err)
				return p, err
			}
			sq := SquareOf(rank, file)
			p.placePiece(c, sq, neutral)
			neutral = false
			file++
		}
	}
	if rank != 0 || file != 8 {
		err := fmt.Errorf("fen did not cover all 64 squares (stopped at rank %d file %d)", rank, file)
		log.Warningf("malformed fen: %v", err)
		return p, err
	}

	// Optional fields: next-player, castling, en-passant, clocks.
	p.WhiteToMove = true
	fields := strings.Fields(fen)
	if len(fields) >= 2 {
		switch fields[1] {
		case "w":
			p.WhiteToMove = true
		case "b":
			p.WhiteToMove = false
		}
	}
	if len(fields) >= 3 && fields[2] != "-" {
		for _, c := range fields[2] {
			switch c {
			case 'K':
				p.WKCastle = true
			case 'Q':
				p.WQCastle = true
			case 'k':
				p.BKCastle = true
			case 'q':
				p.BQCastle = true
			}
		}
	}
	if len(fields) >= 4 && fields[3] != "-" {
		if sq, ok := parseAlgebraic(fields[3]); ok {
			p.EnPassantSq = p.EnPassantSq.PushSquare(sq)
		}
	}
	p.HalfmoveClock = 0
	if len(fields) >= 5 {
		fmt.Sscanf(fields[4], "%d", &p.HalfmoveClock)
	}
	p.FullmoveNumber = 1
	if len(fields) >= 6 {
		fmt.Sscanf(fields[5], "%d", &p.FullmoveNumber)
	}

	return p, nil
}

// placePiece implements the per-character rule of §4.6: a non-neutral
// piece marks the bitboard for its own side only; a neutral piece (the
// '+' prefix consumed by the caller) marks both sides' occupancy, per the
// neutral-piece extension.
func (p *Position) placePiece(c byte, sq int, neutral bool) {
	bb, ok := p.PieceBoards[c]
	if !ok {
		bb = 0
	}
	p.PieceBoards[c] = bb.PushSquare(sq)
	p.Occupancy = p.Occupancy.PushSquare(sq)
	if neutral {
		p.WhiteOccupancy = p.WhiteOccupancy.PushSquare(sq)
		p.BlackOccupancy = p.BlackOccupancy.PushSquare(sq)
		return
	}
	if util.IsLower(c) {
		p.BlackOccupancy = p.BlackOccupancy.PushSquare(sq)
	} else {
		p.WhiteOccupancy = p.WhiteOccupancy.PushSquare(sq)
	}
}

// parseAlgebraic parses a two-character algebraic square like "e3" into a
// square index.
func parseAlgebraic(s string) (int, bool) {
	if len(s) != 2 {
		return 0, false
	}
	file := int(s[0] - 'a')
	rank := int(s[1] - '1')
	if !OnBoard(rank, file) {
		return 0, false
	}
	return SquareOf(rank, file), true
}

// Serialize renders the piece-placement field of p back into FEN text,
// used by P6's round-trip property. It only reconstructs the placement
// field, not the trailing fields, and assumes (as P6 does) that every
// piece in p is non-neutral — a neutral square would need symbol
// information Serialize does not have access to.
func (p *Position) Serialize() string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			sq := SquareOf(rank, file)
			c, found := p.pieceAt(sq)
			if !found {
				empty++
				continue
			}
			if empty > 0 {
				fmt.Fprintf(&sb, "%d", empty)
				empty = 0
			}
			sb.WriteByte(c)
		}
		if empty > 0 {
			fmt.Fprintf(&sb, "%d", empty)
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
	return sb.String()
}

func (p *Position) pieceAt(sq int) (byte, bool) {
	for c, bb := range p.PieceBoards {
		if bb.Has(sq) {
			return c, true
		}
	}
	return 0, false
}
