package attacks

import (
	"fmt"

	"github.com/kopptools/variantmove/internal/bitutil"
	"github.com/kopptools/variantmove/internal/board"
)

// Magic holds the per-square magic-bitboard record of spec §3: the
// relevant-occupancy mask, the discovered multiplier, the shift derived
// from it, and the perfect-hash attack table it indexes into.
type Magic struct {
	Mask    uint64
	Number  uint64
	Shift   uint
	Attacks []uint64
}

// index computes the perfect-hash slot for occupied, per §4.4:
// idx = (occ * magic) >> (64 - popcount(mask)).
func (m *Magic) index(occupied uint64) int {
	occ := occupied & m.Mask
	occ *= m.Number
	return int(occ >> m.Shift)
}

// Lookup returns the attack bitboard for sq under the given full
// occupancy, using the magic multiplication to find the table slot.
func (m *Magic) Lookup(occupied uint64) uint64 {
	return m.Attacks[m.index(occupied)]
}

// oracle computes the reference attack bitboard for a subset of the
// relevant-occupancy mask; it is the "on-the-fly" generator from §4.3
// the magic table is built against.
type oracle func(sq int, occupied board.Bitboard) board.Bitboard

// prng is the Stockfish xorshift64star generator, taken from the
// teacher's types.PrnG (internal/types/magic.go) verbatim in algorithm,
// renamed to this package's vocabulary.
type prng struct{ state uint64 }

func newPrng(seed uint64) *prng {
	if seed == 0 {
		seed = 1
	}
	return &prng{state: seed}
}

func (p *prng) next() uint64 {
	p.state ^= p.state >> 12
	p.state ^= p.state << 25
	p.state ^= p.state >> 27
	return p.state * 2685821657736338717
}

// sparse draws a candidate magic multiplier with roughly 1/8th of its
// bits set on average, the same "sparseness" trick the teacher uses to
// find good magics quickly.
func (p *prng) sparse() uint64 {
	return p.next() & p.next() & p.next()
}

// buildMagic finds a magic multiplier for sq producing a collision-free
// perfect hash from blocker-subsets of mask to the attack bitboards
// produced by fn, per §4.4. seed selects the PRNG's starting state; the
// teacher uses per-rank "optimal seeds" to shorten the search — this
// module uses a simpler per-square derived seed, since it targets three
// piece kinds across a much smaller corpus of magic numbers than a
// production engine needs to ship once and never regenerate.
func buildMagic(sq int, mask board.Bitboard, fn oracle, seed uint64) Magic {
	popcount := mask.PopCount()
	size := 1 << uint(popcount)
	shift := uint(64 - popcount)

	occupancies := make([]uint64, size)
	references := make([]uint64, size)
	it := bitutil.NewSubsetIter(uint64(mask))
	for i := 0; i < size; i++ {
		occ, _ := it.Next()
		occupancies[i] = occ
		references[i] = uint64(fn(sq, board.Bitboard(occ)))
	}

	rng := newPrng(seed)
	attacks := make([]uint64, size)
	epoch := make([]int, size)
	attempt := 0

	for {
		var candidate uint64
		for {
			candidate = rng.sparse()
			if bitutil.PopCount((candidate*uint64(mask))&0xFF00000000000000) >= 6 {
				break
			}
		}

		m := Magic{Mask: uint64(mask), Number: candidate, Shift: shift, Attacks: attacks}
		attempt++
		collision := false
		for i := 0; i < size; i++ {
			idx := m.index(occupancies[i])
			if epoch[idx] < attempt {
				epoch[idx] = attempt
				attacks[idx] = references[i]
			} else if attacks[idx] != references[i] {
				collision = true
				break
			}
		}
		if !collision {
			return m
		}
	}
}

// buildMagicsForKind builds all 64 per-square Magic records for one
// sliding-piece kind, using fn as the reference oracle and maskFn as the
// relevant-occupancy mask function.
func buildMagicsForKind(fn oracle, maskFn func(sq int) board.Bitboard) [64]Magic {
	var out [64]Magic
	// Per-square seeds, varied but fixed, so repeated builds (absent a
	// cache file) are deterministic within a process — useful for tests
	// that assert P1/P7 without relying on wall-clock timing.
	for sq := 0; sq < 64; sq++ {
		seed := uint64(0x9E3779B97F4A7C15) ^ (uint64(sq)*0x2545F4914F6CDD1D + 1)
		out[sq] = buildMagic(sq, maskFn(sq), fn, seed)
	}
	return out
}

// verifyMagic is a defensive re-check used by tests (P1): it confirms
// that m answers every subset of mask identically to fn.
func verifyMagic(sq int, mask board.Bitboard, m Magic, fn oracle) error {
	it := bitutil.NewSubsetIter(uint64(mask))
	for {
		occ, ok := it.Next()
		if !ok {
			return nil
		}
		want := uint64(fn(sq, board.Bitboard(occ)))
		got := m.Lookup(occ)
		if want != got {
			return fmt.Errorf("square %d: magic mismatch for occupancy %#x: want %#x got %#x", sq, occ, want, got)
		}
	}
}
