// Package variant implements spec components G (variant configuration
// parser), H (expression evaluator), and K (variant registry). No INI
// parsing library is present anywhere in the retrieved corpus — the
// teacher and its siblings all use TOML (BurntSushi/toml) or raw
// bufio/regexp scanning for their own config formats — so the INI reader
// here is hand-rolled in the same regexp/bufio style FrankyGo's own FEN
// parser uses (internal/position/position.go's regexFenPos et al.),
// rather than introducing an unsupported dependency. See DESIGN.md.
package variant

import (
	"github.com/kopptools/variantmove/internal/logging"
)

var log = logging.GetLog("variant")

// Variant is the data-model record of spec §3: a single entry of the
// variants INI file.
type Variant struct {
	GameMode string
	// Pieces is the ordered sequence of piece letters, whitespace and '+'
	// already stripped.
	Pieces []byte
	// Movesets maps a piece letter to its move-expression string. Built
	// by pairing Pieces[i] with the i-th element of the Moveset list;
	// left empty if the lengths disagreed when the pairing was attempted
	// (a recoverable error, logged, per §3).
	Movesets map[byte]string
	Effects  string
	Board    string
	StdPos   string
	MoveNum  int
	BoardNum int
}

// newVariant returns a Variant with the spec's documented defaults
// (Move_num and Board_num default to 1).
func newVariant(name string) *Variant {
	return &Variant{
		GameMode: name,
		Movesets: make(map[byte]string),
		MoveNum:  1,
		BoardNum: 1,
	}
}
