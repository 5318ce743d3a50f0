package attacks

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/kopptools/variantmove/internal/bitutil"
	"github.com/kopptools/variantmove/internal/board"
	"github.com/kopptools/variantmove/internal/logging"
)

var log = logging.GetLog("attacks")

// fileNameFor returns the binary cache file name for a piece kind, per
// §4.5: "rookMagics.bin", "bishopMagics.bin", "duckMagics.bin". The duck
// kind is named here for completeness even though this implementation
// never writes a duckMagics.bin (see the Open Question resolution): a
// future implementation that widens the duck's mask could persist one
// under this same name without changing the cache format.
func fileNameFor(kind PieceKind) string {
	return string(kind) + "Magics.bin"
}

// saveMagics writes 64 Magic records to path in the little-endian layout
// of §4.5: mask(u64) magic(u64) shift(i32) n(u64) attacks(n x u64), for
// each square in order.
func saveMagics(path string, magics [64]Magic) error {
	var buf bytes.Buffer
	for sq := 0; sq < 64; sq++ {
		m := magics[sq]
		n := uint64(len(m.Attacks))
		if err := binary.Write(&buf, binary.LittleEndian, m.Mask); err != nil {
			return err
		}
		if err := binary.Write(&buf, binary.LittleEndian, m.Number); err != nil {
			return err
		}
		if err := binary.Write(&buf, binary.LittleEndian, int32(m.Shift)); err != nil {
			return err
		}
		if err := binary.Write(&buf, binary.LittleEndian, n); err != nil {
			return err
		}
		for _, a := range m.Attacks {
			if err := binary.Write(&buf, binary.LittleEndian, a); err != nil {
				return err
			}
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}

// cacheCorruptionError marks the CacheCorruption error kind of §7: a
// magic file whose stored table length does not match
// 1 << popcount(mask). Per §4.5 this is fatal for that piece kind and the
// table is rebuilt from scratch, overwriting the file.
type cacheCorruptionError struct {
	path string
	sq   int
	err  string
}

func (e *cacheCorruptionError) Error() string {
	return fmt.Sprintf("cache corruption in %s at square %d: %s", e.path, e.sq, e.err)
}

// loadMagics reads 64 Magic records from path, validating n ==
// 1<<popcount(mask) for each as §4.5 requires, and returns a
// *cacheCorruptionError if the data is truncated or validation fails.
func loadMagics(path string) ([64]Magic, error) {
	var out [64]Magic
	data, err := os.ReadFile(path)
	if err != nil {
		return out, err
	}
	r := bytes.NewReader(data)
	for sq := 0; sq < 64; sq++ {
		var mask, magicNum, n uint64
		var shift int32
		if err := binary.Read(r, binary.LittleEndian, &mask); err != nil {
			return out, &cacheCorruptionError{path, sq, "truncated mask: " + err.Error()}
		}
		if err := binary.Read(r, binary.LittleEndian, &magicNum); err != nil {
			return out, &cacheCorruptionError{path, sq, "truncated magic: " + err.Error()}
		}
		if err := binary.Read(r, binary.LittleEndian, &shift); err != nil {
			return out, &cacheCorruptionError{path, sq, "truncated shift: " + err.Error()}
		}
		if err := binary.Read(r, binary.LittleEndian, &n); err != nil {
			return out, &cacheCorruptionError{path, sq, "truncated table length: " + err.Error()}
		}
		want := uint64(1) << uint(bitutil.PopCount(mask))
		if n != want {
			return out, &cacheCorruptionError{path, sq, fmt.Sprintf("table length %d does not match 1<<popcount(mask)=%d", n, want)}
		}
		attacks := make([]uint64, n)
		for i := range attacks {
			if err := binary.Read(r, binary.LittleEndian, &attacks[i]); err != nil {
				if err == io.EOF || err == io.ErrUnexpectedEOF {
					return out, &cacheCorruptionError{path, sq, "truncated attacks array"}
				}
				return out, &cacheCorruptionError{path, sq, err.Error()}
			}
		}
		out[sq] = Magic{Mask: mask, Number: magicNum, Shift: uint(shift), Attacks: attacks}
	}
	return out, nil
}

// loadOrBuild implements §4.5's query policy: if the cache file for kind
// is absent, build it via D for all 64 squares and write it; if present,
// load it, treating a size/layout mismatch as CacheCorruption and
// rebuilding from scratch, overwriting the file. The cache file is
// otherwise trusted once present (no checksum), per §4.5's stated
// correctness policy.
func loadOrBuild(kind PieceKind, cacheDir string, fn oracle, maskFn func(sq int) board.Bitboard) ([64]Magic, error) {
	path := filepath.Join(cacheDir, fileNameFor(kind))

	if _, err := os.Stat(path); err == nil {
		magics, loadErr := loadMagics(path)
		if loadErr == nil {
			return magics, nil
		}
		log.Warningf("rebuilding %s after cache corruption: %v", path, loadErr)
	} else if !os.IsNotExist(err) {
		return [64]Magic{}, err
	}

	magics := buildMagicsForKind(fn, maskFn)
	if err := saveMagics(path, magics); err != nil {
		log.Warningf("could not persist %s, continuing with in-memory table: %v", path, err)
	}
	return magics, nil
}
