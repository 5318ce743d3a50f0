// Package zobrist implements spec component J: fingerprinting a Position
// by XORing together a set of random keys chosen by which pieces,
// castling rights, en-passant file, quantum-layer bits, and side to move
// are present. It is grounded on the teacher's internal/position/zobrist.go
// and random.go: the same xorshift64star generator, here seeded once per
// process at first use from a high-resolution clock reading, per §3/scenario
// 6 ("across runs they may differ (seeded by clock)"). Keys stay fixed for
// the lifetime of one process, so hashes remain comparable within a run.
package zobrist

import (
	"sync"
	"time"

	"github.com/kopptools/variantmove/internal/board"
	"github.com/kopptools/variantmove/internal/logging"
)

var log = logging.GetLog("zobrist")

// clockSeed reads the current high-resolution clock into a non-zero
// uint64 seed for the xorshift64star generator.
func clockSeed() uint64 {
	s := uint64(time.Now().UnixNano())
	if s == 0 {
		s = 1
	}
	return s
}

// maxQuantumLayers bounds how many quantum-layer key planes are
// pre-generated. A Position with more quantum planes than this simply
// does not have its excess planes hashed (one warning is logged per
// skipped plane),
// matching §4's "skip gracefully, do not fail the whole hash" requirement
// for optional extensions.
const maxQuantumLayers = 8

// random is the xorshift64star generator, taken directly from the
// teacher's internal/position/random.go.
type random struct {
	s uint64
}

func newRandom(seed uint64) *random {
	return &random{s: seed}
}

func (r *random) rand64() uint64 {
	r.s ^= r.s >> 12
	r.s ^= r.s << 25
	r.s ^= r.s >> 27
	return r.s * uint64(2685821657736338717)
}

// Keys is a full set of Zobrist keys. The process-wide set is built
// exactly once, lazily, on the first call to defaultKeys; NewKeys builds
// a fresh, independent set on every call.
type Keys struct {
	pieceSquare    map[byte][64]uint64
	quantumSquare  [maxQuantumLayers][64]uint64
	castlingRights [4]uint64
	enPassantFile  [8]uint64
	sideToMove     uint64
}

// pieceAlphabet enumerates every FEN letter a variant's Pieces field can
// name (§3), upper and lower case, so Keys has a deterministic key for
// any piece letter a variant introduces without needing to know the
// variant's piece set in advance.
const pieceAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// NewKeys builds a fresh key set seeded from the current high-resolution
// clock reading. Exposed for callers (tests, or a multi-variant-config
// process) that want an independent key set rather than the process-wide
// default; ordinary callers should use Hash, which uses the lazily-built
// process-wide set.
func NewKeys() *Keys {
	return newKeysFromSeed(clockSeed())
}

// newKeysFromSeed builds a key set from an explicit seed, used internally
// by NewKeys and directly by tests that need two key sets derived from
// the same seed to compare against each other.
func newKeysFromSeed(seed uint64) *Keys {
	r := newRandom(seed)
	k := &Keys{pieceSquare: make(map[byte][64]uint64, len(pieceAlphabet))}
	for i := 0; i < len(pieceAlphabet); i++ {
		var sqs [64]uint64
		for sq := 0; sq < 64; sq++ {
			sqs[sq] = r.rand64()
		}
		k.pieceSquare[pieceAlphabet[i]] = sqs
	}
	for layer := 0; layer < maxQuantumLayers; layer++ {
		for sq := 0; sq < 64; sq++ {
			k.quantumSquare[layer][sq] = r.rand64()
		}
	}
	for i := range k.castlingRights {
		k.castlingRights[i] = r.rand64()
	}
	for i := range k.enPassantFile {
		k.enPassantFile[i] = r.rand64()
	}
	k.sideToMove = r.rand64()
	return k
}

var (
	defaultOnce sync.Once
	defaultSet  *Keys
)

// defaultKeys returns the process-wide key set, building it on first use.
func defaultKeys() *Keys {
	defaultOnce.Do(func() {
		defaultSet = NewKeys()
	})
	return defaultSet
}

// Hash computes the Zobrist fingerprint of pos using the process-wide key
// set, XORing together: one key per occupied (piece letter, square) pair,
// one key per set bit of each quantum plane present, one key per active
// castling right, the en-passant file's key if an en-passant square is
// set, and the side-to-move key if it is black's move. Key order does not
// matter (P5): XOR is commutative, so any iteration order over
// pos.PieceBoards yields the same result.
func Hash(pos *board.Position) uint64 {
	return hashWith(pos, defaultKeys())
}

// hashWith is Hash parameterized over an explicit key set, used by tests
// that want two independent Keys to cross-check determinism.
func hashWith(pos *board.Position, keys *Keys) uint64 {
	var h uint64

	for letter, bb := range pos.PieceBoards {
		sqs, ok := keys.pieceSquare[letter]
		if !ok {
			log.Warningf("no zobrist key for piece letter %q, skipping", string(letter))
			continue
		}
		for b := bb; b != 0; {
			sq := b.PopLsb()
			h ^= sqs[sq]
		}
	}

	for layer, bb := range pos.QuantumState {
		if layer >= maxQuantumLayers {
			log.Warningf("quantum layer %d exceeds %d pre-generated planes, skipping", layer, maxQuantumLayers)
			continue
		}
		for b := bb; b != 0; {
			sq := b.PopLsb()
			h ^= keys.quantumSquare[layer][sq]
		}
	}

	if pos.WKCastle {
		h ^= keys.castlingRights[0]
	}
	if pos.WQCastle {
		h ^= keys.castlingRights[1]
	}
	if pos.BKCastle {
		h ^= keys.castlingRights[2]
	}
	if pos.BQCastle {
		h ^= keys.castlingRights[3]
	}

	if pos.EnPassantSq != 0 {
		file := board.FileOf(pos.EnPassantSq.Lsb())
		h ^= keys.enPassantFile[file]
	}

	if !pos.WhiteToMove {
		h ^= keys.sideToMove
	}

	return h
}
