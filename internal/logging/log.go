// Package logging wraps github.com/op/go-logging with the single stderr
// backend and format string used throughout this module. It mirrors the
// teacher's franky_logging package: one named logger per component,
// one process-wide backend, level configurable at startup.
package logging

import (
	"os"

	golog "github.com/op/go-logging"
)

var (
	backendLevel = golog.INFO
	configured   = false
)

var format = golog.MustStringFormatter(
	`%{time:15:04:05.000} %{shortfile}:%{shortfunc} %{level:7s}:  %{message}`,
)

// SetLevel sets the process-wide log level. Call it before the first
// GetLog if a level other than INFO is required; later calls affect all
// loggers obtained via GetLog since they share one backend.
func SetLevel(level golog.Level) {
	backendLevel = level
	if configured {
		golog.SetLevel(backendLevel, "")
	}
}

// LevelFromString maps the config-file vocabulary
// (critical|error|warning|notice|info|debug) onto a go-logging Level,
// defaulting to INFO for anything unrecognized.
func LevelFromString(s string) golog.Level {
	lvl, err := golog.LogLevel(s)
	if err != nil {
		return golog.INFO
	}
	return lvl
}

// GetLog returns a named logger backed by the shared stderr backend,
// configuring the backend on first call.
func GetLog(name string) *golog.Logger {
	log := golog.MustGetLogger(name)
	if !configured {
		backend := golog.NewLogBackend(os.Stderr, "", 0)
		backendFormatter := golog.NewBackendFormatter(backend, format)
		leveled := golog.AddModuleLevel(backendFormatter)
		leveled.SetLevel(backendLevel, "")
		golog.SetBackend(leveled)
		configured = true
	}
	return log
}
