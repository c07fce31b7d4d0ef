package pasta

import (
	"io"

	"go.followtheprocess.codes/log"
)

// newLogger returns the application logger, writing to w.
//
// Debug logs are hidden unless debug is set.
func newLogger(debug bool, w io.Writer) *log.Logger {
	level := log.LevelInfo
	if debug {
		level = log.LevelDebug
	}

	return log.New(w, log.Prefix("pasta"), log.WithLevel(level))
}
