// Package config holds globally available configuration, read from a TOML
// file or defaulted, the same role the teacher's internal/config package
// plays for FrankyGo's search/eval settings.
package config

import (
	"log"

	"github.com/BurntSushi/toml"

	"github.com/kopptools/variantmove/internal/util"
)

// ConfFile is the path to the config file used by Setup, overridable by
// the CLI before calling Setup.
var ConfFile = "./config.toml"

// Settings is the global configuration, populated by Setup.
var Settings = conf{
	Engine: engineConfiguration{
		CacheDir:     ".",
		VariantsFile: "variants.ini",
	},
	Log: logConfiguration{
		Level: "info",
	},
}

var initialized = false

type conf struct {
	Engine engineConfiguration
	Log    logConfiguration
}

// engineConfiguration holds paths the engine needs to locate its
// variant definitions and its magic-bitboard cache.
type engineConfiguration struct {
	// CacheDir is the directory magic-table binary files are read from
	// and written to.
	CacheDir string
	// VariantsFile is the path to the INI file describing known variants.
	VariantsFile string
}

type logConfiguration struct {
	// Level is one of critical|error|warning|notice|info|debug.
	Level string
}

// Setup reads ConfFile and overlays it on the defaults above. A missing
// or unparsable file is a recoverable condition: Setup logs a notice and
// keeps the defaults, matching the teacher's own Setup behavior.
func Setup() {
	if initialized {
		return
	}
	path, err := util.ResolveFile(ConfFile)
	if err == nil {
		if _, decodeErr := toml.DecodeFile(path, &Settings); decodeErr != nil {
			log.Println("config file not found or invalid, using defaults:", decodeErr)
		}
	}
	initialized = true
}

// Reset clears the initialized flag, for tests that want to call Setup
// more than once with different ConfFile values.
func Reset() {
	initialized = false
}
