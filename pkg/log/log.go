// Package log provides debug logging for shl tools.
package log

import (
	"log"
	"os"
)

// Debug controls debug log output. Set by SHL_DEBUG environment variable by default.
var Debug = os.Getenv("SHL_DEBUG") != ""

// Debugf logs a debug message if Debug is true.
func Debugf(format string, v ...any) {
	if !Debug {
		return
	}

	log.Printf(format, v...)
}
