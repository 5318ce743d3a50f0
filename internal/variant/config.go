package variant

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/kopptools/variantmove/internal/util"
)

var sectionHeader = regexp.MustCompile(`^\[(.+)\]$`)

// pendingPair tracks the deferred-binding state of §4.7: Pieces and
// Moveset may arrive in either order within a section; whichever arrives
// second triggers the pairing.
type pendingPair struct {
	rawPieces    string
	hasPieces    bool
	rawMovesList []string
	hasMoveset   bool
}

// ParseFile reads an INI file of variant definitions per §4.7/§6 and
// returns a map from variant name to *Variant. Malformed input (an
// unterminated section, a moveset/pieces length mismatch) is recoverable:
// diagnostics are logged and the affected variant is left partially
// populated, matching spec.md's documented recovery policy.
func ParseFile(path string) (map[string]*Variant, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open variants file %q: %w", path, err)
	}
	defer f.Close()
	return Parse(f)
}

// Parse reads variant definitions from r. Exposed separately from
// ParseFile so tests can parse an in-memory buffer.
func Parse(r io.Reader) (map[string]*Variant, error) {
	variants := make(map[string]*Variant)
	pending := make(map[string]*pendingPair)

	scanner := bufio.NewScanner(r)
	var current *Variant
	for scanner.Scan() {
		line := util.TrimComment(scanner.Text())
		if line == "" {
			continue
		}
		if m := sectionHeader.FindStringSubmatch(line); m != nil {
			name := strings.TrimSpace(m[1])
			current = newVariant(name)
			variants[name] = current
			pending[name] = &pendingPair{}
			continue
		}
		if current == nil {
			log.Warningf("ignoring line before any [Variant] section: %q", line)
			continue
		}
		key, value, ok := splitKeyValue(line)
		if !ok {
			log.Warningf("ignoring malformed line in variant %q: %q", current.GameMode, line)
			continue
		}
		applyKey(current, pending[current.GameMode], key, value)
	}
	if err := scanner.Err(); err != nil {
		return variants, err
	}
	return variants, nil
}

func splitKeyValue(line string) (key, value string, ok bool) {
	i := strings.IndexByte(line, '=')
	if i < 0 {
		return "", "", false
	}
	return strings.TrimSpace(line[:i]), strings.TrimSpace(line[i+1:]), true
}

// applyKey dispatches one recognized key onto v, or logs a warning for an
// unrecognized one, per §4.7/§6.
func applyKey(v *Variant, pend *pendingPair, key, value string) {
	switch key {
	case "Pieces":
		pend.rawPieces = value
		pend.hasPieces = true
		v.Pieces = parsePieces(value)
		tryPair(v, pend)
	case "Moveset":
		pend.rawMovesList = parseMovesetList(value)
		pend.hasMoveset = true
		tryPair(v, pend)
	case "Effects":
		v.Effects = value
	case "Board":
		v.Board = value
	case "StdPos":
		v.StdPos = value
	case "Move_num":
		if n, err := strconv.Atoi(value); err == nil {
			v.MoveNum = n
		} else {
			log.Warningf("variant %q: Move_num %q is not an integer", v.GameMode, value)
		}
	case "Board_num":
		if n, err := strconv.Atoi(value); err == nil {
			v.BoardNum = n
		} else {
			log.Warningf("variant %q: Board_num %q is not an integer", v.GameMode, value)
		}
	default:
		log.Warningf("variant %q: unknown key %q", v.GameMode, key)
	}
}

// tryPair performs the deferred binding of §4.7 once both Pieces and
// Moveset have been seen for the current section: zips v.Pieces with
// pend.rawMovesList into v.Movesets, requiring equal length. On mismatch
// it logs an error and leaves v.Movesets empty, per spec.
func tryPair(v *Variant, pend *pendingPair) {
	if !pend.hasPieces || !pend.hasMoveset {
		return
	}
	if len(v.Pieces) != len(pend.rawMovesList) {
		log.Errorf("variant %q: Pieces (%d) and Moveset (%d) length mismatch", v.GameMode, len(v.Pieces), len(pend.rawMovesList))
		v.Movesets = make(map[byte]string)
		return
	}
	v.Movesets = make(map[byte]string, len(v.Pieces))
	for i, p := range v.Pieces {
		v.Movesets[p] = pend.rawMovesList[i]
	}
}

// parsePieces implements §4.7: "Pieces parses as the non-whitespace,
// non-'+' characters of the value".
func parsePieces(value string) []byte {
	out := make([]byte, 0, len(value))
	for i := 0; i < len(value); i++ {
		c := value[i]
		if c == ' ' || c == '\t' || c == '+' {
			continue
		}
		out = append(out, c)
	}
	return out
}

// parseMovesetList implements §4.7: "Moveset parses as the bracketed,
// comma-separated list of expression strings".
func parseMovesetList(value string) []string {
	value = strings.TrimSpace(value)
	value = strings.TrimPrefix(value, "[")
	value = strings.TrimSuffix(value, "]")
	parts := strings.Split(value, ",")
	out := make([]string, len(parts))
	for i, p := range parts {
		out[i] = strings.TrimSpace(p)
	}
	return out
}
