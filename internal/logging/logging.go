// Package logging configures the global zerolog logger.
package logging

import (
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var logLevelMatches = map[string]zerolog.Level{
	"NONE":  zerolog.Disabled,
	"TRACE": zerolog.TraceLevel,
	"DEBUG": zerolog.DebugLevel,
	"INFO":  zerolog.InfoLevel,
	"WARN":  zerolog.WarnLevel,
	"ERROR": zerolog.ErrorLevel,
	"FATAL": zerolog.FatalLevel,
}

// Options for Setup.
type Options struct {
	Level string
	File  string
	// Fullscreen is set when a full-screen UI owns the terminal. Without a
	// log file, output is discarded so it does not tear the screen.
	Fullscreen bool
}

// ParseLevel maps a level name to a zerolog level, defaulting to info.
func ParseLevel(level string) zerolog.Level {
	l, ok := logLevelMatches[strings.ToUpper(strings.TrimSpace(level))]
	if !ok {
		return zerolog.InfoLevel
	}
	return l
}

// Setup installs the global logger. The returned func closes the log file,
// it is nil when there is nothing to close.
func Setup(opts Options) (func(), error) {
	zerolog.SetGlobalLevel(ParseLevel(opts.Level))

	if opts.File != "" {
		f, err := os.OpenFile(opts.File, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0644)
		if err != nil {
			return nil, err
		}
		log.Logger = zerolog.New(f).With().Timestamp().Logger()
		return func() { _ = f.Close() }, nil
	}
	if opts.Fullscreen {
		log.Logger = zerolog.New(io.Discard)
		return nil, nil
	}
	if isTerminalAttached(os.Stderr) {
		log.Logger = log.Output(zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: "2006-01-02 15:04:05",
		})
		return nil, nil
	}
	log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
	return nil, nil
}

// WithSession tags every following entry of the global logger with id.
func WithSession(id string) {
	log.Logger = log.With().Str("session", id).Logger()
}

func isTerminalAttached(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) && runtime.GOOS != "windows"
}
