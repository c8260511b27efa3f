// Package logger provides a configurable logger shared by every layer of the
// polyhedral kernel (arith, matrix, symbolic, polyhedra).
//
// The root logger defined by default uses github.com/rs/zerolog with a
// console writer.
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

var logger zerolog.Logger

// Verbose overrides the default auto-silencing of the logger under `go
// test`. It is read once, when the package initializes, so only its
// initial value (off) takes effect; a test that wants output installs a
// logger with Set.
var Verbose = false

func init() {
	output := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: "15:04:05"}
	logger = zerolog.New(output).With().Timestamp().Logger()

	if !Verbose && strings.HasSuffix(os.Args[0], ".test") {
		logger = zerolog.Nop()
	}

}

// SetOutput changes the output of the global logger
func SetOutput(w io.Writer) {
	logger = logger.Output(w)
}

// Set lets a caller install a differently configured logger globally.
func Set(l zerolog.Logger) {
	logger = l
}

// Disable disables logging
func Disable() {
	logger = zerolog.Nop()
}

// Logger returns a pointer to the global logger
func Logger() *zerolog.Logger {
	return &logger
}
